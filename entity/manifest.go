package entity

import (
	"io"

	"gopkg.in/yaml.v3"
)

/* Manifest describes one provisioning run:
   - Software: the environment deleted and then recreated
   - Job: the job configuration registered against that environment
   The job has no software field of its own, it always runs on Software.Name.
*/
type Manifest struct {
	Software SoftwareManifest `yaml:"software"`
	Job      JobManifest      `yaml:"job"`
}

type SoftwareManifest struct {
	Name      string     `yaml:"name"`
	Container string     `yaml:"container"`
	Conda     *CondaSpec `yaml:"conda,omitempty"`
	Pip       []string   `yaml:"pip,omitempty"`
}

type JobManifest struct {
	Name        string   `yaml:"name"`
	Command     []string `yaml:"command"`
	Files       []string `yaml:"files"`
	Ports       []int    `yaml:"ports"`
	Description string   `yaml:"description"`
	Cpu         int      `yaml:"cpu,omitempty"`
	Memory      string   `yaml:"memory,omitempty"`
}

type ProvisionResult struct {
	Software         *SoftwareEnvironment
	JobConfiguration *JobConfiguration
}

// Quickstart returns the manifest for the quickstart notebook example
func Quickstart() *Manifest {
	return &Manifest{
		Software: SoftwareManifest{
			Name:      "coiled-examples/quickstart-notebook",
			Container: "coiled/notebook:latest",
			Conda: &CondaSpec{
				Channels:     []string{"conda-forge"},
				Dependencies: []string{"coiled==0.0.25"},
			},
		},
		Job: JobManifest{
			Name:        "coiled/quickstart",
			Command:     []string{"/bin/bash", "run.sh"},
			Files:       []string{"quickstart.ipynb", "workspace.json", "run.sh"},
			Ports:       []int{8888},
			Description: "Quickly launch a Dask cluster on the cloud with Coiled",
		},
	}
}

func DecodeManifest(r io.Reader) (*Manifest, error) {
	var m Manifest
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&m); err != nil {
		return nil, err
	}
	return &m, nil
}

func (m *Manifest) SoftwareRequest() *CreateSoftwareEnvironmentRequest {
	return &CreateSoftwareEnvironmentRequest{
		Name:      m.Software.Name,
		Container: m.Software.Container,
		Conda:     m.Software.Conda,
		Pip:       m.Software.Pip,
	}
}

func (m *Manifest) JobRequest() *CreateJobConfigurationRequest {
	return &CreateJobConfigurationRequest{
		Name:        m.Job.Name,
		Software:    m.Software.Name,
		Command:     m.Job.Command,
		Files:       m.Job.Files,
		Ports:       m.Job.Ports,
		Description: m.Job.Description,
		Cpu:         m.Job.Cpu,
		Memory:      m.Job.Memory,
	}
}
