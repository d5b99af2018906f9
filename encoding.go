package syskit

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodeBase64 encodes text using the standard padded alphabet, or the
// URL-safe alphabet when urlSafe is set.
func EncodeBase64(text string, urlSafe bool) string {
	if urlSafe {
		return base64.URLEncoding.EncodeToString([]byte(text))
	}
	return base64.StdEncoding.EncodeToString([]byte(text))
}

// DecodeBase64 decodes base64 text back into its original form. Surrounding
// whitespace is tolerated. Invalid input yields an error wrapping
// ErrInvalidBase64.
func DecodeBase64(encoded string, urlSafe bool) (string, error) {
	enc := base64.StdEncoding
	if urlSafe {
		enc = base64.URLEncoding
	}

	decoded, err := enc.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidBase64, err)
	}
	return string(decoded), nil
}
