package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/subtle"
	"fmt"
	"io"
)

// Symmetric frame layout: a fresh 16-byte IV followed by the CBC ciphertext.
// The ciphertext is always at least one block because padding is always
// applied, a full extra block when the plaintext is already aligned.
const (
	// blockSize is the AES block and IV size in bytes.
	blockSize = aes.BlockSize

	// aesKeySize is the generated key size in bytes (AES-256).
	aesKeySize = 32
)

// sealFrame CBC-encrypts plaintext under key and returns IV || ciphertext.
// The IV is drawn fresh from the CSPRNG per call, so identical inputs
// produce distinct frames.
func sealFrame(key, plaintext []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncrypt, err)
	}

	padded := pad(plaintext)
	frame := make([]byte, blockSize+len(padded))
	iv := frame[:blockSize]
	if _, err := io.ReadFull(rand.Reader, iv); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncrypt, err)
	}

	cipher.NewCBCEncrypter(block, iv).CryptBlocks(frame[blockSize:], padded)
	return frame, nil
}

// openFrame splits IV || ciphertext, CBC-decrypts and unpads. Frames
// shorter than one block, bodies that are empty or not block aligned, and
// bad padding all fail with ErrDecrypt.
func openFrame(key, frame []byte) ([]byte, error) {
	if len(frame) < blockSize {
		return nil, fmt.Errorf("%w: frame shorter than %d bytes", ErrDecrypt, blockSize)
	}
	iv, body := frame[:blockSize], frame[blockSize:]
	if len(body) == 0 || len(body)%blockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d is not a positive multiple of %d", ErrDecrypt, len(body), blockSize)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}

	plaintext := make([]byte, len(body))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(plaintext, body)
	return unpad(plaintext)
}

// pad appends PKCS#7 padding up to the next block boundary.
func pad(b []byte) []byte {
	n := blockSize - len(b)%blockSize
	padded := make([]byte, len(b)+n)
	copy(padded, b)
	for i := len(b); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

// unpad strips PKCS#7 padding. The padding bytes are compared in constant
// time to avoid leaking their position through timing.
func unpad(b []byte) ([]byte, error) {
	if len(b) == 0 || len(b)%blockSize != 0 {
		return nil, fmt.Errorf("%w: invalid padded length %d", ErrDecrypt, len(b))
	}
	n := int(b[len(b)-1])
	if n == 0 || n > blockSize {
		return nil, fmt.Errorf("%w: invalid padding", ErrDecrypt)
	}
	ok := 1
	for _, p := range b[len(b)-n:] {
		ok &= subtle.ConstantTimeByteEq(p, byte(n))
	}
	if ok != 1 {
		return nil, fmt.Errorf("%w: invalid padding", ErrDecrypt)
	}
	return b[:len(b)-n], nil
}
