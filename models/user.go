package models

// User is the current-user record the mock login fabricates. It exists only
// for personalization; there is no real credential check behind it.
type User struct {
	UserID       string `json:"userId"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	SavedAddress string `json:"savedAddress,omitempty"`
	Reference    string `json:"reference,omitempty"`
}
