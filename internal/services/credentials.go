package services

import "golang.org/x/crypto/bcrypt"

// CredentialVerifier decides whether a supplied password matches the
// stored one. The store keeps whatever Create was given, so swapping the
// verifier (and hashing at signup) is enough to change the scheme without
// touching the service contract.
type CredentialVerifier interface {
	Verify(stored, supplied string) bool
}

// PlaintextVerifier compares passwords byte for byte. This matches the
// existing deployment, where passwords are stored unhashed.
type PlaintextVerifier struct{}

func (PlaintextVerifier) Verify(stored, supplied string) bool {
	return stored == supplied
}

// BcryptVerifier treats the stored value as a bcrypt hash. Substitute for
// PlaintextVerifier once signup hashes passwords.
type BcryptVerifier struct{}

func (BcryptVerifier) Verify(stored, supplied string) bool {
	return bcrypt.CompareHashAndPassword([]byte(stored), []byte(supplied)) == nil
}

// HashPassword produces a stored value for BcryptVerifier.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
