package webhook

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/gowebpki/jcs"

	"github.com/feral-file/realty-crm/internal/domain"
)

// CanonicalPayload serializes the event as RFC 8785 canonical JSON so receivers can re-derive the signed bytes
func CanonicalPayload(event domain.ReplyEvent) ([]byte, error) {
	raw, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal event: %w", err)
	}

	payload, err := jcs.Transform(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize event: %w", err)
	}

	return payload, nil
}

// GenerateSignedPayload generates a signed webhook payload with HMAC-SHA256 signature
// Returns the canonical JSON payload, signature header value, timestamp, and any error
func GenerateSignedPayload(secret string, event domain.ReplyEvent) (payload []byte, signature string, timestamp int64, err error) {
	payload, err = CanonicalPayload(event)
	if err != nil {
		return nil, "", 0, err
	}

	timestamp = time.Now().Unix()

	// Signature payload: {timestamp}.{eventId}.{json_body}
	signature = Sign(secret, fmt.Sprintf("%d.%s.%s", timestamp, event.EventID, string(payload)))

	return payload, signature, timestamp, nil
}

// Sign returns the "sha256=<hex>" HMAC of message under secret
func Sign(secret string, message string) string {
	h := hmac.New(sha256.New, []byte(secret))
	h.Write([]byte(message))
	return signaturePrefix + hex.EncodeToString(h.Sum(nil))
}

// VerifyBodySignature checks a "sha256=<hex>" header against the HMAC of the raw request body
func VerifyBodySignature(secret string, body []byte, header string) bool {
	if secret == "" || !strings.HasPrefix(header, signaturePrefix) {
		return false
	}

	provided, err := hex.DecodeString(strings.TrimPrefix(header, signaturePrefix))
	if err != nil {
		return false
	}

	h := hmac.New(sha256.New, []byte(secret))
	h.Write(body)
	return hmac.Equal(provided, h.Sum(nil))
}

// VerifySharedSecret compares the provided secret with the configured one in constant time
func VerifySharedSecret(secret string, provided string) bool {
	if secret == "" || provided == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(secret), []byte(provided)) == 1
}
