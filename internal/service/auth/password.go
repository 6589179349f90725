package auth

import "golang.org/x/crypto/bcrypt"

// PasswordHasher defines the interface for hashing passwords and comparing
// them against stored digests. No plaintext password crosses this boundary
// in any other form.
type PasswordHasher interface {
	// Hash generates a salted one-way hash from a plaintext password.
	Hash(password string) (string, error)

	// Compare compares a hashed password with its possible plaintext
	// equivalent. Returns nil on match, or an error on mismatch or when the
	// digest is malformed (both are treated as a failed verification).
	Compare(hashedPassword, password string) error
}

// BcryptHasher implements PasswordHasher using bcrypt.
type BcryptHasher struct {
	cost int
}

// NewBcryptHasher creates a new BcryptHasher with the given work factor.
// Costs outside bcrypt's supported range fall back to DefaultHashCost.
func NewBcryptHasher(cost int) *BcryptHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultHashCost
	}
	return &BcryptHasher{cost: cost}
}

// DefaultHashCost is the bcrypt work factor used when none is configured.
const DefaultHashCost = 10

// Hash implements the PasswordHasher interface using bcrypt. The salt is
// generated internally, so hashing the same password twice yields different
// digests.
func (h *BcryptHasher) Hash(password string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

// Compare implements the PasswordHasher interface using bcrypt.
func (h *BcryptHasher) Compare(hashedPassword, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
}
