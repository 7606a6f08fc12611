package entity

import "io"

type JobConfiguration struct {
	Id          string   `json:"id,omitempty"`
	Name        string   `json:"name,omitempty"`
	Software    string   `json:"software,omitempty"`
	Command     []string `json:"command,omitempty"`
	Files       []string `json:"files,omitempty"`
	Ports       []int    `json:"ports,omitempty"`
	Description string   `json:"description,omitempty"`
}

type CreateJobConfigurationRequest struct {
	Name        string   // Required
	Software    string   // Required
	Command     []string // Required
	Files       []string // Optional
	Ports       []int    // Optional
	Description string   // Optional
	Cpu         int      // Optional
	Memory      string   // Optional
}

// UploadFile is one file attached to a job configuration, uploaded verbatim
type UploadFile struct {
	Path    string
	Content io.Reader
}
