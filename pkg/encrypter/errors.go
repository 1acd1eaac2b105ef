package encrypter

import "errors"

var (
	ErrEmptySecret      = errors.New("encrypter: secret must not be empty")
	ErrMalformed        = errors.New("encrypter: malformed sealed value")
	ErrDecryptionFailed = errors.New("encrypter: wrong key, binding or tampered value")
)
