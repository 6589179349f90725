package mocks

import "errors"

// MockPasswordHasher implements auth.PasswordHasher for testing.
type MockPasswordHasher struct {
	// ShouldSucceed determines whether password comparison succeeds
	ShouldSucceed bool

	// HashFn allows for custom hashing logic in tests
	HashFn func(password string) (string, error)

	// CompareFn allows for custom comparison logic in tests
	CompareFn func(hashedPassword, password string) error

	// HashErr is returned by Hash when set
	HashErr error

	// CompareCalledWith stores the arguments passed to Compare for verification
	CompareCalledWith struct {
		HashedPassword string
		Password       string
	}

	// CompareCallCount tracks how many times Compare was called
	CompareCallCount int
}

// Hash implements the auth.PasswordHasher interface. The default behavior
// prefixes the password so tests can assert the plaintext never leaks.
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	if m.HashFn != nil {
		return m.HashFn(password)
	}
	if m.HashErr != nil {
		return "", m.HashErr
	}
	return "hashed:" + password, nil
}

// Compare implements the auth.PasswordHasher interface.
func (m *MockPasswordHasher) Compare(hashedPassword, password string) error {
	m.CompareCalledWith.HashedPassword = hashedPassword
	m.CompareCalledWith.Password = password
	m.CompareCallCount++

	if m.CompareFn != nil {
		return m.CompareFn(hashedPassword, password)
	}

	if m.ShouldSucceed {
		return nil
	}
	return errors.New("password mismatch")
}
