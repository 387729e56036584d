package hmac_test

import (
	"testing"

	"github.com/DMarby/unsplash-tool/internal/hmac"
)

var key = []byte("foobar")
var body = []byte(`{"parameters":{"query":"mountains"}}`)

func TestHMAC(t *testing.T) {
	h := &hmac.HMAC{
		Key: key,
	}

	mac, err := h.SignRequest("POST", "/v1/tools/search_photos/invoke", body)
	if err != nil {
		t.Fatal(err)
	}

	matches, err := h.ValidateRequest("POST", "/v1/tools/search_photos/invoke", body, mac)
	if err != nil {
		t.Fatal(err)
	}

	if !matches {
		t.Error("hmac does not match")
	}

	tests := []struct {
		Name   string
		Method string
		Path   string
		Body   []byte
	}{
		{"different method", "GET", "/v1/tools/search_photos/invoke", body},
		{"different path", "POST", "/v1/tools/random_photos/invoke", body},
		{"different body", "POST", "/v1/tools/search_photos/invoke", []byte(`{"parameters":{"query":"sea"}}`)},
	}

	for _, test := range tests {
		matches, err := h.ValidateRequest(test.Method, test.Path, test.Body, mac)
		if err != nil {
			t.Fatal(err)
		}

		if matches {
			t.Errorf("%s: hmac matches when it should not", test.Name)
		}
	}
}

func TestEnabled(t *testing.T) {
	var nilHMAC *hmac.HMAC
	if nilHMAC.Enabled() {
		t.Error("nil hmac is enabled")
	}

	if (&hmac.HMAC{}).Enabled() {
		t.Error("hmac without key is enabled")
	}

	if !(&hmac.HMAC{Key: key}).Enabled() {
		t.Error("hmac with key is not enabled")
	}
}
