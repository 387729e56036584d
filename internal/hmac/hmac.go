package hmac

import (
	cryptoHMAC "crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// Header is the request header carrying the signature of a host request
const Header = "X-Signature"

// HMAC is a utility for creating and verifying HMACs of requests from the host runtime
type HMAC struct {
	Key []byte
}

// Enabled reports whether a key is configured
func (h *HMAC) Enabled() bool {
	return h != nil && len(h.Key) > 0
}

// Create creates a HMAC of the message, encoded as urlsafe base64
func (h *HMAC) Create(message []byte) (string, error) {
	mac := cryptoHMAC.New(sha256.New, h.Key)

	_, err := mac.Write(message)
	if err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil)), nil
}

// Validate validates that the message matches a given HMAC
func (h *HMAC) Validate(message []byte, mac string) (bool, error) {
	expectedMAC, err := h.Create(message)
	if err != nil {
		return false, err
	}

	return cryptoHMAC.Equal([]byte(mac), []byte(expectedMAC)), nil
}

// SignRequest signs the method, path and body of a request
func (h *HMAC) SignRequest(method, path string, body []byte) (string, error) {
	return h.Create(requestMessage(method, path, body))
}

// ValidateRequest validates the signature of the method, path and body of a request
func (h *HMAC) ValidateRequest(method, path string, body []byte, mac string) (bool, error) {
	return h.Validate(requestMessage(method, path, body), mac)
}

func requestMessage(method, path string, body []byte) []byte {
	message := make([]byte, 0, len(method)+len(path)+len(body)+2)
	message = append(message, method...)
	message = append(message, '\n')
	message = append(message, path...)
	message = append(message, '\n')
	return append(message, body...)
}
