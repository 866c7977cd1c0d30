package domain

// Account is a registered SkillPilot user.
//
// Username is the unique identifier of the record. The plaintext Password only
// lives in memory between the request and hashing; PasswordHash is what gets
// persisted.
type Account struct {
	Username     string `json:"username"`
	Password     string `json:"-"` // Plaintext, never persisted
	PasswordHash string `json:"-"` // bcrypt output, salt embedded
}

// NewAccount creates an Account holding the plaintext password.
//
// Empty usernames and passwords are accepted. The caller must hash the password before the account is persisted.
func NewAccount(username, password string) *Account {
	return &Account{
		Username: username,
		Password: password,
	}
}

// Validate checks that the account is ready to be persisted.
func (a *Account) Validate() error {
	if a.PasswordHash == "" {
		return ErrEmptyPasswordHash
	}
	return nil
}
