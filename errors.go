package crypto

import "errors"

var (
	// ErrDecode is returned when input is not valid standard base64.
	ErrDecode = errors.New("crypto: invalid base64 input")

	// ErrKeyGen is returned when key or keypair generation fails.
	ErrKeyGen = errors.New("crypto: key generation failed")

	// ErrImport is returned when key material cannot be imported
	// (malformed DER, wrong key type, invalid AES key length).
	ErrImport = errors.New("crypto: key import failed")

	// ErrEncrypt is returned when encryption fails (missing capability,
	// oversized RSA plaintext, unusable public key).
	ErrEncrypt = errors.New("crypto: encryption failed")

	// ErrDecrypt is returned when decryption fails (malformed ciphertext,
	// wrong key, bad padding, non-UTF-8 plaintext).
	ErrDecrypt = errors.New("crypto: decryption failed")

	// ErrKeyDestroyed is returned when operating on a destroyed or
	// uninitialized symmetric key handle.
	ErrKeyDestroyed = errors.New("crypto: key destroyed")
)

// IsDecode returns true if the error is or wraps ErrDecode.
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

// IsKeyGen returns true if the error is or wraps ErrKeyGen.
func IsKeyGen(err error) bool {
	return errors.Is(err, ErrKeyGen)
}

// IsImport returns true if the error is or wraps ErrImport.
func IsImport(err error) bool {
	return errors.Is(err, ErrImport)
}

// IsEncrypt returns true if the error is or wraps ErrEncrypt.
func IsEncrypt(err error) bool {
	return errors.Is(err, ErrEncrypt)
}

// IsDecrypt returns true if the error is or wraps ErrDecrypt.
func IsDecrypt(err error) bool {
	return errors.Is(err, ErrDecrypt)
}

// IsKeyDestroyed returns true if the error is or wraps ErrKeyDestroyed.
func IsKeyDestroyed(err error) bool {
	return errors.Is(err, ErrKeyDestroyed)
}
