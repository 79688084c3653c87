package opaque

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Certain remote mutations (archiveProducts, cloneProducts) accept only opaque
// tokens, never plain entity ids. A token is base64("reaction/<namespace>:<id>").

const prefix = "reaction/"

// Encode maps a (namespace, plain id) pair to the opaque token the remote API
// expects. Namespace is e.g. "product" or "shop".
func Encode(namespace, id string) (string, error) {
	if namespace == "" {
		return "", fmt.Errorf("opaque: namespace is required")
	}
	if id == "" {
		return "", fmt.Errorf("opaque: id is required")
	}
	return base64.StdEncoding.EncodeToString([]byte(prefix + namespace + ":" + id)), nil
}

// Decode reverses Encode. Returns namespace and plain id.
func Decode(token string) (string, string, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", "", fmt.Errorf("opaque: invalid token: %w", err)
	}
	s := string(raw)
	if !strings.HasPrefix(s, prefix) {
		return "", "", fmt.Errorf("opaque: unexpected token format")
	}
	namespace, id, ok := strings.Cut(strings.TrimPrefix(s, prefix), ":")
	if !ok || namespace == "" || id == "" {
		return "", "", fmt.Errorf("opaque: unexpected token format")
	}
	return namespace, id, nil
}
