package encrypter

import "crypto/cipher"

// Encrypter seals small values at rest. Binding is authenticated but not encrypted,
// so a value sealed for one binding cannot be opened under another.
// Implementations are safe for concurrent use.
type Encrypter interface {
	Seal(plaintext, binding []byte) (string, error)
	Open(sealed string, binding []byte) ([]byte, error)
}

type implEncrypter struct {
	aead cipher.AEAD
}

// New derives an AES-256-GCM key from secret with HKDF-SHA256. Different info values give unrelated keys.
func New(secret, info string) (Encrypter, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	aead, err := newAEAD([]byte(secret), []byte(info))
	if err != nil {
		return nil, err
	}
	return &implEncrypter{aead: aead}, nil
}
