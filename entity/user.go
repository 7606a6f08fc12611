package entity

type User struct {
	Username string   `json:"username,omitempty"`
	Email    string   `json:"email,omitempty"`
	Accounts []string `json:"accounts,omitempty"`
}

type PanicRequest struct {
	Command    string
	PanicError string
	Stacktrace string
	Args       []string
}
