package unsplash

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/twmb/murmur3"
)

// Credential is an Unsplash access key
// It is passed explicitly to every call instead of being stored on the client,
// so concurrent invocations with different keys never share mutable state
type Credential string

// Empty reports whether no access key was provided
func (c Credential) Empty() bool {
	return strings.TrimSpace(string(c)) == ""
}

// Fingerprint returns a stable, non-reversible identifier for the key, safe to log
func (c Credential) Fingerprint() string {
	if c.Empty() {
		return "none"
	}

	return fmt.Sprintf("%016x", murmur3.StringSum64(string(c)))
}

// String hides the key when a credential ends up in a format string
func (c Credential) String() string {
	return "credential:" + c.Fingerprint()
}

func (c Credential) authorize(r *http.Request) {
	r.Header.Set("Authorization", "Client-ID "+strings.TrimSpace(string(c)))
}
