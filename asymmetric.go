package crypto

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/sha256"
	"crypto/x509"
	"fmt"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// rsaKeyBits is the fixed modulus size. The public exponent is 65537.
const rsaKeyBits = 2048

// pubKeyCacheSize bounds the parsed public key cache used by EncryptRSA.
const pubKeyCacheSize = 128

// pubKeyCache maps encoded SPKI strings to their parsed keys so repeated
// encryptions under the same export skip the DER parse. Only public
// material is ever cached, and only after a successful parse.
var pubKeyCache, _ = lru.New[string, *rsa.PublicKey](pubKeyCacheSize)

// GenerateKeyPair creates a fresh RSA-2048 keypair for OAEP encryption.
// The public handle encrypts and the private handle decrypts, both usable
// immediately. Generation failure is ErrKeyGen.
func GenerateKeyPair() (pub *PublicKey, priv *PrivateKey, err error) {
	defer recordOp(opGenerateKeyPair, time.Now(), &err)

	key, err := rsa.GenerateKey(rand.Reader, rsaKeyBits)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrKeyGen, err)
	}
	return &PublicKey{key: &key.PublicKey, usages: UsageEncrypt},
		&PrivateKey{key: key, usages: UsageDecrypt}, nil
}

// ExportPublicKey encodes the public key in SPKI (PKIX) DER form, base64.
func ExportPublicKey(pub *PublicKey) (s string, err error) {
	defer recordOp(opExportPublicKey, time.Now(), &err)

	if pub == nil || pub.key == nil {
		return "", fmt.Errorf("crypto: ExportPublicKey key is nil")
	}
	der, err := x509.MarshalPKIXPublicKey(pub.key)
	if err != nil {
		return "", fmt.Errorf("crypto: marshal public key: %v", err)
	}
	return Encode(der), nil
}

// ExportPrivateKey encodes the private key in PKCS#8 DER form, base64.
// A nil handle is the absent value and exports as "" with no error.
func ExportPrivateKey(priv *PrivateKey) (s string, err error) {
	defer recordOp(opExportPrivateKey, time.Now(), &err)

	if priv == nil || priv.key == nil {
		return "", nil
	}
	der, err := x509.MarshalPKCS8PrivateKey(priv.key)
	if err != nil {
		return "", fmt.Errorf("crypto: marshal private key: %v", err)
	}
	return Encode(der), nil
}

// ImportPublicKey parses a base64 SPKI export into an encrypt-only handle.
// Malformed base64 fails with ErrDecode, anything that is not DER for an
// RSA public key with ErrImport.
func ImportPublicKey(s string) (pub *PublicKey, err error) {
	defer recordOp(opImportPublicKey, time.Now(), &err)

	key, err := parsePublicKey(s)
	if err != nil {
		return nil, err
	}
	return &PublicKey{key: key, usages: UsageEncrypt}, nil
}

// ImportPrivateKey parses a base64 PKCS#8 export into a decrypt-only handle.
func ImportPrivateKey(s string) (priv *PrivateKey, err error) {
	defer recordOp(opImportPrivateKey, time.Now(), &err)

	der, err := Decode(s)
	if err != nil {
		return nil, err
	}
	parsed, err := x509.ParsePKCS8PrivateKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImport, err)
	}
	key, ok := parsed.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA private key", ErrImport)
	}
	return &PrivateKey{key: key, usages: UsageDecrypt}, nil
}

// EncryptRSA encrypts base64 plaintext under a base64 SPKI public key and
// returns base64 ciphertext. Any failure to resolve the key surfaces as
// ErrEncrypt, as does plaintext over the OAEP bound (190 bytes for a
// 2048-bit modulus with SHA-256). Malformed plaintext fails with ErrDecode.
func EncryptRSA(plaintext, publicKey string) (ct string, err error) {
	defer recordOp(opEncryptRSA, time.Now(), &err)

	key, err := cachedPublicKey(publicKey)
	if err != nil {
		return "", fmt.Errorf("%w: import public key: %v", ErrEncrypt, err)
	}
	msg, err := Decode(plaintext)
	if err != nil {
		return "", err
	}
	out, err := oaepEncrypt(key, msg)
	if err != nil {
		return "", err
	}
	return Encode(out), nil
}

// EncryptRSAWithKey is the handle form of EncryptRSA.
func EncryptRSAWithKey(plaintext string, pub *PublicKey) (ct string, err error) {
	defer recordOp(opEncryptRSA, time.Now(), &err)

	if !pub.can(UsageEncrypt) {
		return "", fmt.Errorf("%w: key does not permit encrypt", ErrEncrypt)
	}
	msg, err := Decode(plaintext)
	if err != nil {
		return "", err
	}
	out, err := oaepEncrypt(pub.key, msg)
	if err != nil {
		return "", err
	}
	return Encode(out), nil
}

// DecryptRSA decrypts base64 OAEP ciphertext with the private handle and
// returns the recovered bytes base64 encoded. Ciphertext that does not
// decrypt under the handle fails with ErrDecrypt.
func DecryptRSA(ciphertext string, priv *PrivateKey) (pt string, err error) {
	defer recordOp(opDecryptRSA, time.Now(), &err)

	if !priv.can(UsageDecrypt) {
		return "", fmt.Errorf("%w: key does not permit decrypt", ErrDecrypt)
	}
	ct, err := Decode(ciphertext)
	if err != nil {
		return "", err
	}
	msg, err := oaepDecrypt(priv.key, ct)
	if err != nil {
		return "", err
	}
	return Encode(msg), nil
}

// parsePublicKey decodes and parses an SPKI export.
func parsePublicKey(s string) (*rsa.PublicKey, error) {
	der, err := Decode(s)
	if err != nil {
		return nil, err
	}
	parsed, err := x509.ParsePKIXPublicKey(der)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImport, err)
	}
	key, ok := parsed.(*rsa.PublicKey)
	if !ok {
		return nil, fmt.Errorf("%w: not an RSA public key", ErrImport)
	}
	return key, nil
}

// cachedPublicKey resolves an encoded public key through the parse cache.
func cachedPublicKey(s string) (*rsa.PublicKey, error) {
	if key, ok := pubKeyCache.Get(s); ok {
		return key, nil
	}
	key, err := parsePublicKey(s)
	if err != nil {
		return nil, err
	}
	pubKeyCache.Add(s, key)
	return key, nil
}

// oaepEncrypt applies the module's fixed asymmetric primitive: RSA-OAEP
// with SHA-256 for both the hash and MGF1, empty label.
func oaepEncrypt(pub *rsa.PublicKey, msg []byte) ([]byte, error) {
	out, err := rsa.EncryptOAEP(sha256.New(), rand.Reader, pub, msg, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncrypt, err)
	}
	return out, nil
}

func oaepDecrypt(priv *rsa.PrivateKey, ct []byte) ([]byte, error) {
	msg, err := rsa.DecryptOAEP(sha256.New(), nil, priv, ct, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDecrypt, err)
	}
	return msg, nil
}
