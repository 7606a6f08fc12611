package gateway_test

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/coiled/coiled-examples/cli/configs"
	"github.com/coiled/coiled-examples/cli/gateway"
)

type call struct {
	Operation string
	Variables map[string]interface{}
	Header    http.Header
	Files     map[string]string
}

// fakeCoiled is an in-memory stand-in for the service's GraphQL endpoint
type fakeCoiled struct {
	mu       sync.Mutex
	calls    []call
	software map[string]map[string]interface{}
	jobs     map[string]map[string]interface{}
	// nulls lists operations answered with a null payload and no error
	nulls map[string]bool
}

var operations = []string{
	"deleteSoftwareEnvironment",
	"createSoftwareEnvironment",
	"softwareEnvironments",
	"createJobConfiguration",
	"jobConfigurations",
	"deleteJobConfiguration",
	"sendTelemetry",
	"me",
}

func operationOf(query string) string {
	for _, op := range operations {
		if strings.Contains(query, op+"(") || strings.Contains(query, op+" {") {
			return op
		}
	}
	return ""
}

func writeData(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"data": data})
}

func writeError(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"data":   nil,
		"errors": []map[string]string{{"message": message}},
	})
}

func (f *fakeCoiled) decode(r *http.Request) (call, error) {
	c := call{Header: r.Header.Clone(), Files: map[string]string{}}
	var query string
	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			return c, err
		}
		query = r.FormValue("query")
		if vars := r.FormValue("variables"); vars != "" {
			if err := json.Unmarshal([]byte(vars), &c.Variables); err != nil {
				return c, err
			}
		}
		for _, fh := range r.MultipartForm.File["files"] {
			file, err := fh.Open()
			if err != nil {
				return c, err
			}
			b, err := ioutil.ReadAll(file)
			file.Close()
			if err != nil {
				return c, err
			}
			c.Files[fh.Filename] = string(b)
		}
	} else {
		var body struct {
			Query     string                 `json:"query"`
			Variables map[string]interface{} `json:"variables"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			return c, err
		}
		query = body.Query
		c.Variables = body.Variables
	}
	c.Operation = operationOf(query)
	return c, nil
}

func (f *fakeCoiled) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c, err := f.decode(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, c)

	if r.Header.Get("Authorization") != "Token secret" && c.Operation != "sendTelemetry" {
		writeError(w, "Invalid token")
		return
	}

	if f.nulls[c.Operation] {
		writeData(w, map[string]interface{}{c.Operation: nil})
		return
	}

	name, _ := c.Variables["name"].(string)
	switch c.Operation {
	case "deleteSoftwareEnvironment":
		if _, ok := f.software[name]; !ok {
			writeError(w, "Software environment "+name+" not found")
			return
		}
		delete(f.software, name)
		writeData(w, map[string]interface{}{"deleteSoftwareEnvironment": true})
	case "createSoftwareEnvironment":
		if _, ok := f.software[name]; ok {
			writeError(w, "Software environment "+name+" already exists")
			return
		}
		env := map[string]interface{}{
			"id":        "env-1",
			"name":      name,
			"container": c.Variables["container"],
			"conda":     c.Variables["conda"],
			"pip":       c.Variables["pip"],
			"state":     "built",
		}
		f.software[name] = env
		writeData(w, map[string]interface{}{"createSoftwareEnvironment": env})
	case "softwareEnvironments":
		envs := []interface{}{}
		for _, env := range f.software {
			envs = append(envs, env)
		}
		writeData(w, map[string]interface{}{"softwareEnvironments": envs})
	case "createJobConfiguration":
		software, _ := c.Variables["software"].(string)
		if _, ok := f.software[software]; !ok {
			writeError(w, "Software environment "+software+" not found")
			return
		}
		job := map[string]interface{}{
			"id":          "job-1",
			"name":        name,
			"software":    software,
			"command":     c.Variables["command"],
			"files":       c.Variables["files"],
			"ports":       c.Variables["ports"],
			"description": c.Variables["description"],
		}
		f.jobs[name] = job
		writeData(w, map[string]interface{}{"createJobConfiguration": job})
	case "jobConfigurations":
		jobs := []interface{}{}
		for _, job := range f.jobs {
			jobs = append(jobs, job)
		}
		writeData(w, map[string]interface{}{"jobConfigurations": jobs})
	case "deleteJobConfiguration":
		if _, ok := f.jobs[name]; !ok {
			writeError(w, "Job configuration "+name+" not found")
			return
		}
		delete(f.jobs, name)
		writeData(w, map[string]interface{}{"deleteJobConfiguration": true})
	case "sendTelemetry":
		writeData(w, map[string]interface{}{"sendTelemetry": true})
	case "me":
		writeData(w, map[string]interface{}{"me": map[string]interface{}{
			"username": "dask",
			"email":    "dask@example.com",
			"accounts": []string{"dask", "coiled-examples"},
		}})
	default:
		writeError(w, "Unknown operation")
	}
}

func (f *fakeCoiled) Calls() []call {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]call(nil), f.calls...)
}

func newFakeCoiled(t *testing.T) (*fakeCoiled, *configs.Configs) {
	fake := &fakeCoiled{
		software: map[string]map[string]interface{}{},
		jobs:     map[string]map[string]interface{}{},
		nulls:    map[string]bool{},
	}
	router := mux.NewRouter()
	router.Handle("/graphql", fake).Methods(http.MethodPost)
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	dir, err := ioutil.TempDir("", "gateway")
	require.NoError(t, err)
	t.Cleanup(func() { os.RemoveAll(dir) })

	cfg := configs.NewWithPath(dir + "/config.json")
	cfg.CoiledServer = srv.URL
	cfg.CoiledToken = "secret"
	cfg.CoiledRetries = ""
	return fake, cfg
}

func newGateway(cfg *configs.Configs) *gateway.Gateway {
	return gateway.New(cfg, zap.NewNop())
}
