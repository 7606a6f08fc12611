package entity

type CondaSpec struct {
	Channels     []string `json:"channels" yaml:"channels"`
	Dependencies []string `json:"dependencies" yaml:"dependencies"`
}

type SoftwareEnvironment struct {
	Id        string     `json:"id,omitempty"`
	Name      string     `json:"name,omitempty"`
	Container string     `json:"container,omitempty"`
	Conda     *CondaSpec `json:"conda,omitempty"`
	Pip       []string   `json:"pip,omitempty"`
	State     string     `json:"state,omitempty"`
}

type CreateSoftwareEnvironmentRequest struct {
	Name      string     // Required
	Container string     // Required
	Conda     *CondaSpec // Optional
	Pip       []string   // Optional
}

// Dependencies returns every pinned requirement of the request, conda first.
func (r *CreateSoftwareEnvironmentRequest) Dependencies() []string {
	deps := []string{}
	if r.Conda != nil {
		deps = append(deps, r.Conda.Dependencies...)
	}
	return append(deps, r.Pip...)
}
