package crypto

import (
	"crypto/rsa"
	"fmt"

	"github.com/awnumar/memguard"
)

// Algorithm identifies the cipher a key handle is bound to.
type Algorithm string

const (
	// AlgorithmRSAOAEP is RSA-2048 with OAEP and SHA-256.
	AlgorithmRSAOAEP Algorithm = "RSA-OAEP"

	// AlgorithmAESCBC is AES-CBC with PKCS#7 padding.
	AlgorithmAESCBC Algorithm = "AES-CBC"
)

// Usage is a bitmask of operations a key handle permits.
type Usage uint8

const (
	// UsageEncrypt permits encryption.
	UsageEncrypt Usage = 1 << iota

	// UsageDecrypt permits decryption.
	UsageDecrypt
)

func (u Usage) String() string {
	switch u {
	case 0:
		return "none"
	case UsageEncrypt:
		return "encrypt"
	case UsageDecrypt:
		return "decrypt"
	case UsageEncrypt | UsageDecrypt:
		return "encrypt|decrypt"
	}
	return fmt.Sprintf("Usage(%d)", uint8(u))
}

// PublicKey is a handle for the public half of an RSA keypair.
// Handles from GenerateKeyPair and ImportPublicKey are encrypt-only.
// The zero value carries no usage and is rejected by every operation.
type PublicKey struct {
	key    *rsa.PublicKey
	usages Usage
}

// Algorithm returns the cipher this handle is bound to.
func (k *PublicKey) Algorithm() Algorithm { return AlgorithmRSAOAEP }

// Usages returns the operations this handle permits.
func (k *PublicKey) Usages() Usage {
	if k == nil {
		return 0
	}
	return k.usages
}

func (k *PublicKey) can(u Usage) bool {
	return k != nil && k.key != nil && k.usages&u != 0
}

// PrivateKey is a handle for the private half of an RSA keypair.
// Handles from GenerateKeyPair and ImportPrivateKey are decrypt-only.
// The zero value carries no usage and is rejected by every operation.
type PrivateKey struct {
	key    *rsa.PrivateKey
	usages Usage
}

// Algorithm returns the cipher this handle is bound to.
func (k *PrivateKey) Algorithm() Algorithm { return AlgorithmRSAOAEP }

// Usages returns the operations this handle permits.
func (k *PrivateKey) Usages() Usage {
	if k == nil {
		return 0
	}
	return k.usages
}

func (k *PrivateKey) can(u Usage) bool {
	return k != nil && k.key != nil && k.usages&u != 0
}

// SymmetricKey is a handle for AES key material. The raw bytes live in a
// locked memory buffer and never leave it except through ExportAESKey.
// Handles permit both encrypt and decrypt. The zero value is unusable.
type SymmetricKey struct {
	buf    *memguard.LockedBuffer
	usages Usage
}

// newSymmetricKey seals raw key bytes into locked memory.
// The source slice is wiped as part of the transfer.
func newSymmetricKey(raw []byte) *SymmetricKey {
	return &SymmetricKey{
		buf:    memguard.NewBufferFromBytes(raw),
		usages: UsageEncrypt | UsageDecrypt,
	}
}

// Algorithm returns the cipher this handle is bound to.
func (k *SymmetricKey) Algorithm() Algorithm { return AlgorithmAESCBC }

// Usages returns the operations this handle permits.
func (k *SymmetricKey) Usages() Usage {
	if k == nil {
		return 0
	}
	return k.usages
}

// Len returns the key length in bytes, or 0 for a destroyed or zero handle.
func (k *SymmetricKey) Len() int {
	if k == nil || k.buf == nil || !k.buf.IsAlive() {
		return 0
	}
	return k.buf.Size()
}

// Destroy wipes the key material and invalidates the handle. Destroy is
// idempotent. It must not race an in-flight operation on the same handle.
func (k *SymmetricKey) Destroy() {
	if k == nil || k.buf == nil {
		return
	}
	k.buf.Destroy()
}

func (k *SymmetricKey) can(u Usage) bool {
	return k != nil && k.usages&u != 0
}

// bytes returns the live key material, or ErrKeyDestroyed for destroyed and
// zero-value handles. The returned slice aliases locked memory and must not
// be retained past the operation.
func (k *SymmetricKey) bytes() ([]byte, error) {
	if k == nil || k.buf == nil || !k.buf.IsAlive() {
		return nil, ErrKeyDestroyed
	}
	return k.buf.Bytes(), nil
}
