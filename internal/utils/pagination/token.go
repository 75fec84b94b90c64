package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const fieldSeparator = "."

// EncodeMultiFieldToken creates an opaque token from any number of string fields.
// Each field is encoded separately, so fields may contain any character.
func EncodeMultiFieldToken(fields ...string) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = base64.RawURLEncoding.EncodeToString([]byte(f))
	}
	return strings.Join(parts, fieldSeparator)
}

// DecodeMultiFieldToken decodes a token into exactly want fields.
func DecodeMultiFieldToken(token string, want int) ([]string, error) {
	parts := strings.Split(token, fieldSeparator)
	if len(parts) != want {
		return nil, fmt.Errorf("invalid pagination token format (split): expected %d fields, got %d", want, len(parts))
	}
	fields := make([]string, len(parts))
	for i, p := range parts {
		b, err := base64.RawURLEncoding.DecodeString(p)
		if err != nil {
			return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
		}
		fields[i] = string(b)
	}
	return fields, nil
}

// EncodeProjectToken creates the keyset token of the project list, ordered by name then id.
func EncodeProjectToken(name, projectID string) string {
	return EncodeMultiFieldToken(name, projectID)
}

// DecodeProjectToken parses a token created by EncodeProjectToken.
func DecodeProjectToken(token string) (name string, projectID string, err error) {
	fields, err := DecodeMultiFieldToken(token, 2)
	if err != nil {
		return "", "", err
	}
	if fields[1] == "" {
		return "", "", fmt.Errorf("invalid pagination token format (empty id)")
	}
	return fields[0], fields[1], nil
}
