package crypto

import (
	"context"
	"fmt"
	"time"
)

// Envelope carries a hybrid encrypted payload: a session AES key wrapped
// under an RSA public key, and the payload blob that session key encrypts.
// Both fields are base64.
type Envelope struct {
	// Key is the RSA-OAEP wrapped session key.
	Key string `json:"key"`

	// Ciphertext is the payload blob, IV || ciphertext base64 encoded.
	Ciphertext string `json:"ciphertext"`
}

// Seal encrypts plaintext under a fresh AES-256 session key and wraps that
// key for the public handle. The session key is destroyed before Seal
// returns; only the envelope leaves the call. Two seals of the same
// plaintext differ in both fields.
func Seal(ctx context.Context, plaintext string, pub *PublicKey) (env *Envelope, err error) {
	ctx, span := tracer.Start(ctx, opSeal)
	defer func() { endSpan(span, err) }()
	defer recordOpContext(ctx, opSeal, time.Now(), &err)

	if !pub.can(UsageEncrypt) {
		return nil, fmt.Errorf("%w: key does not permit encrypt", ErrEncrypt)
	}

	session, err := GenerateAESKey()
	if err != nil {
		return nil, err
	}
	defer session.Destroy()

	raw, err := session.bytes()
	if err != nil {
		return nil, err
	}
	wrapped, err := oaepEncrypt(pub.key, raw)
	if err != nil {
		return nil, fmt.Errorf("wrap session key: %w", err)
	}

	blob, err := EncryptAES(session, plaintext)
	if err != nil {
		return nil, err
	}

	return &Envelope{Key: Encode(wrapped), Ciphertext: blob}, nil
}

// Open unwraps the session key with the private handle and decrypts the
// payload. The unwrapped session key is destroyed before Open returns.
func Open(ctx context.Context, env *Envelope, priv *PrivateKey) (pt string, err error) {
	ctx, span := tracer.Start(ctx, opOpen)
	defer func() { endSpan(span, err) }()
	defer recordOpContext(ctx, opOpen, time.Now(), &err)

	if env == nil {
		return "", fmt.Errorf("%w: envelope is nil", ErrDecrypt)
	}
	if !priv.can(UsageDecrypt) {
		return "", fmt.Errorf("%w: key does not permit decrypt", ErrDecrypt)
	}

	wrapped, err := Decode(env.Key)
	if err != nil {
		return "", err
	}
	raw, err := oaepDecrypt(priv.key, wrapped)
	if err != nil {
		return "", fmt.Errorf("unwrap session key: %w", err)
	}
	switch len(raw) {
	case 16, 24, 32:
	default:
		clear(raw)
		return "", fmt.Errorf("%w: unwrapped session key has %d bytes", ErrDecrypt, len(raw))
	}

	session := newSymmetricKey(raw)
	defer session.Destroy()

	return DecryptAESWithKey(session, env.Ciphertext)
}
