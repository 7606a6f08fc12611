package constants

var DocsURLMap = map[string]string{
	"docs":       "https://docs.coiled.io",
	"quickstart": "https://docs.coiled.io/user_guide/getting_started.html",
	"software":   "https://docs.coiled.io/user_guide/software_environment.html",
	"jobs":       "https://docs.coiled.io/user_guide/job_configuration.html",
	"profile":    "https://cloud.coiled.io/profile",
	"dashboard":  "https://cloud.coiled.io/%s/jobs",
}
