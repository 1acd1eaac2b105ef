package encrypter

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const keyLen = 32

// sealed values are base64url(nonce || ciphertext || tag)
var encoding = base64.RawURLEncoding

func newAEAD(secret, info []byte) (cipher.AEAD, error) {
	key := make([]byte, keyLen)
	if _, err := io.ReadFull(hkdf.New(sha256.New, secret, nil, info), key); err != nil {
		return nil, fmt.Errorf("derive key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("new cipher: %w", err)
	}
	return cipher.NewGCM(block)
}

func (e *implEncrypter) Seal(plaintext, binding []byte) (string, error) {
	nonce := make([]byte, e.aead.NonceSize(), e.aead.NonceSize()+len(plaintext)+e.aead.Overhead())
	if _, err := rand.Read(nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	return encoding.EncodeToString(e.aead.Seal(nonce, nonce, plaintext, binding)), nil
}

func (e *implEncrypter) Open(sealed string, binding []byte) ([]byte, error) {
	raw, err := encoding.DecodeString(sealed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	n := e.aead.NonceSize()
	if len(raw) < n+e.aead.Overhead() {
		return nil, ErrMalformed
	}
	plain, err := e.aead.Open(nil, raw[:n], raw[n:], binding)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plain, nil
}
