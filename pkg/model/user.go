package model

// User is a ledger account. Secret holds the bcrypt hash of the
// credential once the user has been persisted; it is never stored
// in plaintext.
type User struct {
	Username string
	Secret   string
	Name     string
	Admin    bool
	Wallet   float64
}

// Registration is the input for creating a passenger account.
type Registration struct {
	Username string `validate:"required,min=3,max=30,alphanum"`
	Name     string `validate:"required,min=2,max=60"`
	Secret   string `validate:"required,min=4,max=72"`
}
