package eventsub

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_VerifyNotification(t *testing.T) {
	secret := "my-cool-webhook-secret"
	messageId := "e76c6bd4-55c9-4987-8304-da1588d8988b"
	timestamp := "2022-10-05T10:11:12.634234626Z"
	body := []byte(`{"subscription":{"type":"channel.cheer","version":"1"},"event":{"bits":200}}`)

	makeHeader := func(id, ts, signature string) http.Header {
		header := http.Header{}
		if id != "" {
			header.Set(HeaderMessageID, id)
		}
		if ts != "" {
			header.Set(HeaderMessageTimestamp, ts)
		}
		if signature != "" {
			header.Set(HeaderMessageSignature, signature)
		}
		return header
	}
	goodSignature := Signature(secret, messageId, timestamp, body)

	t.Run("accepts a correctly signed request", func(t *testing.T) {
		header := makeHeader(messageId, timestamp, goodSignature)
		assert.True(t, VerifyNotification(secret, header, body))
	})

	t.Run("rejects a tampered body", func(t *testing.T) {
		header := makeHeader(messageId, timestamp, goodSignature)
		tampered := []byte(`{"subscription":{"type":"channel.cheer","version":"1"},"event":{"bits":9999}}`)
		assert.False(t, VerifyNotification(secret, header, tampered))
	})

	t.Run("rejects a tampered message ID", func(t *testing.T) {
		header := makeHeader("a different message id", timestamp, goodSignature)
		assert.False(t, VerifyNotification(secret, header, body))
	})

	t.Run("rejects a tampered timestamp", func(t *testing.T) {
		header := makeHeader(messageId, "2023-01-01T00:00:00Z", goodSignature)
		assert.False(t, VerifyNotification(secret, header, body))
	})

	t.Run("rejects a signature computed with the wrong secret", func(t *testing.T) {
		header := makeHeader(messageId, timestamp, Signature("some-other-secret", messageId, timestamp, body))
		assert.False(t, VerifyNotification(secret, header, body))
	})

	t.Run("rejects a request with any signing header missing", func(t *testing.T) {
		assert.False(t, VerifyNotification(secret, makeHeader("", timestamp, goodSignature), body))
		assert.False(t, VerifyNotification(secret, makeHeader(messageId, "", goodSignature), body))
		assert.False(t, VerifyNotification(secret, makeHeader(messageId, timestamp, ""), body))
	})

	t.Run("rejects a signature without the sha256= prefix", func(t *testing.T) {
		header := makeHeader(messageId, timestamp, goodSignature[len("sha256="):])
		assert.False(t, VerifyNotification(secret, header, body))
	})

	t.Run("rejects a signature with a malformed hex digest", func(t *testing.T) {
		assert.False(t, VerifyNotification(secret, makeHeader(messageId, timestamp, "sha256=abc"), body))
		assert.False(t, VerifyNotification(secret, makeHeader(messageId, timestamp, "sha256=zzzz"), body))
	})

	t.Run("rejects a valid digest of a different length", func(t *testing.T) {
		header := makeHeader(messageId, timestamp, "sha256=deadbeef")
		assert.False(t, VerifyNotification(secret, header, body))
	})
}

func Test_Signature(t *testing.T) {
	// Signature output must be stable and must agree with what
	// VerifyNotification checks against
	got := Signature("s3cret", "id-1", "2020-01-01T00:00:00Z", []byte("{}"))
	assert.True(t, len(got) == len("sha256=")+64)
	assert.Contains(t, got, "sha256=")
	assert.Equal(t, got, Signature("s3cret", "id-1", "2020-01-01T00:00:00Z", []byte("{}")))
	assert.NotEqual(t, got, Signature("s3cret", "id-2", "2020-01-01T00:00:00Z", []byte("{}")))
}
