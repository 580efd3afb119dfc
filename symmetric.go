package crypto

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"
	"unicode/utf8"
)

// GenerateAESKey creates a random 256-bit symmetric key. The key material
// is sealed into locked memory and stays there until Destroy is called on
// the handle. Randomness failure is ErrKeyGen.
func GenerateAESKey() (key *SymmetricKey, err error) {
	defer recordOp(opGenerateAESKey, time.Now(), &err)

	raw := make([]byte, aesKeySize)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrKeyGen, err)
	}
	return newSymmetricKey(raw), nil
}

// ExportAESKey returns the raw key bytes base64 encoded.
func ExportAESKey(key *SymmetricKey) (s string, err error) {
	defer recordOp(opExportAESKey, time.Now(), &err)

	raw, err := key.bytes()
	if err != nil {
		return "", err
	}
	return Encode(raw), nil
}

// ImportAESKey decodes raw key bytes and seals them into a new handle.
// Keys of 16, 24 and 32 bytes are accepted (AES-128/192/256); any other
// length fails with ErrImport.
func ImportAESKey(s string) (key *SymmetricKey, err error) {
	defer recordOp(opImportAESKey, time.Now(), &err)

	raw, err := Decode(s)
	if err != nil {
		return nil, err
	}
	switch len(raw) {
	case 16, 24, 32:
	default:
		return nil, fmt.Errorf("%w: key must be 16, 24 or 32 bytes, got %d", ErrImport, len(raw))
	}
	return newSymmetricKey(raw), nil
}

// EncryptAES encrypts a UTF-8 string under the handle and returns the blob
// Encode(IV || ciphertext). The IV is fresh per call, so the same plaintext
// never encrypts to the same blob twice.
func EncryptAES(key *SymmetricKey, plaintext string) (ct string, err error) {
	defer recordOp(opEncryptAES, time.Now(), &err)

	raw, err := key.bytes()
	if err != nil {
		return "", err
	}
	if !key.can(UsageEncrypt) {
		return "", fmt.Errorf("%w: key does not permit encrypt", ErrEncrypt)
	}
	frame, err := sealFrame(raw, []byte(plaintext))
	if err != nil {
		return "", err
	}
	return Encode(frame), nil
}

// DecryptAES decrypts a blob produced by EncryptAES. The key is passed in
// its base64 export form, imported for the call and wiped afterwards.
// A key of invalid length fails with ErrImport; a blob that is malformed,
// encrypted under a different key, or does not decrypt to UTF-8 fails with
// ErrDecrypt.
func DecryptAES(key, ciphertext string) (pt string, err error) {
	defer recordOp(opDecryptAES, time.Now(), &err)

	raw, err := Decode(key)
	if err != nil {
		return "", err
	}
	defer clear(raw)
	switch len(raw) {
	case 16, 24, 32:
	default:
		return "", fmt.Errorf("%w: key must be 16, 24 or 32 bytes, got %d", ErrImport, len(raw))
	}
	frame, err := Decode(ciphertext)
	if err != nil {
		return "", err
	}
	return openPlaintext(raw, frame)
}

// DecryptAESWithKey is the handle form of DecryptAES.
func DecryptAESWithKey(key *SymmetricKey, ciphertext string) (pt string, err error) {
	defer recordOp(opDecryptAES, time.Now(), &err)

	raw, err := key.bytes()
	if err != nil {
		return "", err
	}
	if !key.can(UsageDecrypt) {
		return "", fmt.Errorf("%w: key does not permit decrypt", ErrDecrypt)
	}
	frame, err := Decode(ciphertext)
	if err != nil {
		return "", err
	}
	return openPlaintext(raw, frame)
}

// openPlaintext opens a frame and validates the recovered bytes as UTF-8.
func openPlaintext(key, frame []byte) (string, error) {
	b, err := openFrame(key, frame)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%w: plaintext is not valid UTF-8", ErrDecrypt)
	}
	return string(b), nil
}
