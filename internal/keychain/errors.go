package keychain

import "errors"

var (
	// ErrInvalidInput is returned by Set when the domain or secret is blank.
	ErrInvalidInput = errors.New("keychain: domain and secret must not be blank")
	// ErrTooLong is returned by Set when the secret exceeds the configured maximum length.
	ErrTooLong = errors.New("keychain: secret too long")
	// ErrIntegrity is returned by Load when the representation does not match its digest.
	ErrIntegrity = errors.New("keychain: integrity check failed")
	// ErrAuthentication is returned when the password is wrong or a ciphertext was modified.
	ErrAuthentication = errors.New("keychain: authentication failed")
	// ErrParse is returned by Load when the representation is malformed.
	ErrParse = errors.New("keychain: malformed representation")
	// ErrClosed is returned by every operation after Close.
	ErrClosed = errors.New("keychain: closed")
)
