package core

// PasswordHasher hashes and verifies user passwords
type PasswordHasher interface {
	// Hash returns a salted one-way hash of plain
	Hash(plain string) (string, error)
	// Verify reports whether plain matches hash
	Verify(plain, hash string) bool
}

// TokenService issues and verifies bearer tokens carrying the user's email
type TokenService interface {
	// Issue signs a token for email that expires after the configured TTL
	Issue(email string) (string, error)
	// Verify returns the email carried by token.
	//
	// Possible errors:
	// - ErrInvalidToken: bad signature, unexpected algorithm, expired, or no email claim
	Verify(token string) (string, error)
}
