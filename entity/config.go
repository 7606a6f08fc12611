package entity

type RootConfig struct {
	User    UserConfig `json:"user"`
	Server  string     `json:"server,omitempty"`
	Retries int        `json:"retries,omitempty"`
}

type UserConfig struct {
	Token   string `json:"token"`
	Account string `json:"account,omitempty"`
}
