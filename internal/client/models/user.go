package models

// User is an account record in the remote store.
//
// Username is the login identifier (conventionally an email). The store
// keeps the password in clear text; the product performs credential
// matching by query, not by hashing. Name is optional display text.
type User struct {
	ID       ID     `json:"id,omitempty"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name,omitempty"`
}
