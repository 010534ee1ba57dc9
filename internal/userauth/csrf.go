package userauth

import (
	"crypto/rand"
	"encoding/hex"
	"sync"
	"time"
)

const csrfTokenTtl = 15 * time.Minute

// csrfStore tracks the one-time-use 'state' tokens that we generate at the
// start of each OAuth authorization code grant flow, so that we can verify
// that any request hitting our redirect URI originated from a flow that we
// ourselves initiated
type csrfStore struct {
	mu        sync.Mutex
	expiresAt map[string]time.Time
	now       func() time.Time
}

func newCsrfStore() *csrfStore {
	return &csrfStore{
		expiresAt: make(map[string]time.Time),
		now:       time.Now,
	}
}

// issue generates a new token value and records it as valid until its TTL
// elapses
func (s *csrfStore) issue() string {
	bytes := make([]byte, 16)
	if _, err := rand.Read(bytes); err != nil {
		panic(err)
	}
	tokenValue := hex.EncodeToString(bytes)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.expiresAt[tokenValue] = s.now().Add(csrfTokenTtl)
	return tokenValue
}

// redeem checks whether the given token value was previously issued and has
// not yet expired, consuming it in the process: a token may only be redeemed
// once
func (s *csrfStore) redeem(tokenValue string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Purge any tokens that have outlived their TTL, including the one being
	// redeemed if it sat unused for too long
	for value, expiry := range s.expiresAt {
		if expiry.Before(s.now()) {
			delete(s.expiresAt, value)
		}
	}

	if _, ok := s.expiresAt[tokenValue]; !ok {
		return false
	}
	delete(s.expiresAt, tokenValue)
	return true
}
