package params

import (
	"net/url"
	"sort"
	"strings"
)

// Utilities for building a URL with query params

// BuildQuery builds a query parameter string for the given values, prefixed with "?"
// Keys are sorted so the result is deterministic, and keys with an empty value are left out entirely
// instead of being encoded as "key=", so that absent optional parameters never reach the provider
func BuildQuery(v url.Values) string {
	var buf strings.Builder

	keys := make([]string, 0, len(v))
	for k := range v {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	for _, key := range keys {
		value := v.Get(key)
		if value == "" {
			continue
		}

		addQueryParam(&buf, url.QueryEscape(key)+"="+url.QueryEscape(value))
	}

	return buf.String()
}

// addQueryParam adds a query parameter to a byte buffer
func addQueryParam(buf *strings.Builder, param string) {
	if buf.Len() > 0 {
		buf.WriteByte('&')
	} else {
		buf.WriteByte('?')
	}

	buf.WriteString(param)
}
