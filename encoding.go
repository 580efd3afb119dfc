package crypto

import (
	"encoding/base64"
	"fmt"
)

// Encode returns the standard base64 encoding of b: RFC 4648 alphabet with
// padding, no line wrapping, not URL-safe. Total over any input, including
// empty.
func Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Decode reverses Encode. It fails with ErrDecode when s is not valid
// standard base64. Decode(Encode(b)) returns b for every b.
func Decode(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	return b, nil
}
