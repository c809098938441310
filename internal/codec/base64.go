package codec

import (
	"encoding/base64"
	"fmt"

	"sigcore/internal/domain"
)

// EncodeBase64 returns standard padded base64 without newlines.
func EncodeBase64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// DecodeBase64 decodes standard padded base64, rejecting non-zero padding bits.
func DecodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("base64: %v: %w", err, domain.ErrInvalidEncoding)
	}
	return b, nil
}
