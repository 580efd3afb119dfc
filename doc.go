// Package crypto provides hybrid RSA/AES encryption building blocks: base64
// codec helpers, RSA-2048 OAEP keypair management with SPKI and PKCS#8
// transport forms, AES-CBC payload encryption with a fresh random IV per
// call, and an envelope layer that wraps a session AES key under an RSA
// public key.
//
// Key bytes cross the API boundary only in encoded export form. Symmetric
// key handles keep their material in locked memory until Destroy is called.
package crypto
