package password

import (
	"golang.org/x/crypto/bcrypt"
)

// DefaultCost matches the cost the rest of the platform hashes with.
const DefaultCost = 12

// Hasher is the password hash/verify collaborator. The coordinator never
// reads digests itself; it only hands this to the user store on insert.
type Hasher struct {
	cost int
}

func NewHasher() *Hasher {
	return NewHasherWithCost(DefaultCost)
}

// NewHasherWithCost builds a hasher with an explicit bcrypt cost. Tests
// use a low cost to stay fast.
func NewHasherWithCost(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash generates a bcrypt digest of the given password.
func (h *Hasher) Hash(plain string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

// Verify reports whether plain matches the digest.
func (h *Hasher) Verify(plain, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(plain)) == nil
}
