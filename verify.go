package eventsub

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"strings"
)

const signaturePrefix = "sha256="

// VerifyNotification reports whether a webhook request was signed by Twitch
// using the shared webhook secret. The HMAC-SHA256 message is the
// concatenation of the Twitch-Eventsub-Message-Id header, the
// Twitch-Eventsub-Message-Timestamp header, and the raw request body, with
// no separators; the expected signature header is "sha256=" followed by the
// lowercase hex digest.
//
// VerifyNotification never fails with an error: a missing header, a
// malformed signature, or a digest mismatch all simply yield false, and the
// caller must reject the request. The digest comparison is constant-time.
func VerifyNotification(secret string, header http.Header, body []byte) bool {
	id := header.Get(HeaderMessageID)
	timestamp := header.Get(HeaderMessageTimestamp)
	signature := header.Get(HeaderMessageSignature)
	if id == "" || timestamp == "" || signature == "" {
		return false
	}
	if !strings.HasPrefix(signature, signaturePrefix) {
		return false
	}
	claimed, err := hex.DecodeString(strings.TrimPrefix(signature, signaturePrefix))
	if err != nil {
		// Odd-length or non-hex signature suffix
		return false
	}
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(id))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	return hmac.Equal(claimed, mac.Sum(nil))
}

// Signature computes the value a sender would place in the
// Twitch-Eventsub-Message-Signature header for the given message identity
// and body. It exists so that tests and local simulation tooling can sign
// requests exactly the way Twitch does.
func Signature(secret, messageID, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(messageID))
	mac.Write([]byte(timestamp))
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}
