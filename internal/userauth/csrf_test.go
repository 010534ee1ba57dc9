package userauth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_csrfStore(t *testing.T) {
	now := time.Date(1997, 9, 1, 12, 0, 0, 0, time.UTC)
	s := newCsrfStore()
	s.now = func() time.Time { return now }

	// An issued token can be redeemed exactly once
	tokenValue := s.issue()
	assert.Len(t, tokenValue, 32)
	assert.True(t, s.redeem(tokenValue))
	assert.False(t, s.redeem(tokenValue))

	// A value that was never issued is rejected
	assert.False(t, s.redeem("deadbeefdeadbeefdeadbeefdeadbeef"))

	// Tokens expire once their TTL elapses
	staleValue := s.issue()
	now = now.Add(csrfTokenTtl + time.Second)
	assert.False(t, s.redeem(staleValue))

	// Redeeming one token leaves others intact
	first := s.issue()
	second := s.issue()
	assert.True(t, s.redeem(second))
	assert.True(t, s.redeem(first))
}
