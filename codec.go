package crypto

import (
	"fmt"

	"github.com/rbaliyan/config/codec"
)

// Codec wraps an inner codec with symmetric encryption. On Encode, the
// inner codec serializes the value and the result is sealed into an
// IV || ciphertext frame under the codec's key. On Decode, the frame is
// opened and the inner codec deserializes the plaintext.
//
// Codec is safe for concurrent use if the inner codec is. The key handle
// must not be destroyed while the codec is in use.
type Codec struct {
	inner codec.Codec
	key   *SymmetricKey
	name  string
}

// Compile-time interface check.
var _ codec.Codec = (*Codec)(nil)

// NewCodec creates an encrypting codec that wraps the given inner codec.
// The codec name is "encrypted:<inner>", e.g. "encrypted:json".
// Returns an error if inner or key is nil.
func NewCodec(inner codec.Codec, key *SymmetricKey) (*Codec, error) {
	if inner == nil {
		return nil, fmt.Errorf("crypto: NewCodec inner codec is nil")
	}
	if key == nil {
		return nil, fmt.Errorf("crypto: NewCodec key is nil")
	}
	return &Codec{
		inner: inner,
		key:   key,
		name:  "encrypted:" + inner.Name(),
	}, nil
}

// Name returns the codec name, e.g. "encrypted:json".
func (c *Codec) Name() string {
	return c.name
}

// Encode serializes the value using the inner codec, then encrypts the result.
func (c *Codec) Encode(v any) ([]byte, error) {
	plaintext, err := c.inner.Encode(v)
	if err != nil {
		return nil, fmt.Errorf("crypto: inner encode failed: %w", err)
	}

	raw, err := c.key.bytes()
	if err != nil {
		return nil, err
	}
	if !c.key.can(UsageEncrypt) {
		return nil, fmt.Errorf("%w: key does not permit encrypt", ErrEncrypt)
	}
	return sealFrame(raw, plaintext)
}

// Decode decrypts the data, then deserializes the plaintext using the inner codec.
func (c *Codec) Decode(data []byte, v any) error {
	raw, err := c.key.bytes()
	if err != nil {
		return err
	}
	if !c.key.can(UsageDecrypt) {
		return fmt.Errorf("%w: key does not permit decrypt", ErrDecrypt)
	}
	plaintext, err := openFrame(raw, data)
	if err != nil {
		return err
	}

	if err := c.inner.Decode(plaintext, v); err != nil {
		return fmt.Errorf("crypto: inner decode failed: %w", err)
	}
	return nil
}
