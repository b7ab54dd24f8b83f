// Package crypto exposes the minimal primitives used by the keychain.
//
// Contents
//
//   - PBKDF2-HMAC-SHA256 key derivation from a master password and salt (DeriveKey)
//   - AES-256-GCM authenticated encryption to and from base64 text (Encrypt, Decrypt)
//   - SHA-256 content digests encoded as base64 text (Digest, Verify)
//   - Cryptographically secure random bytes behind a narrow interface (RandomSource)
//
// # Notes
//
// None of these functions log or retain their inputs. Callers own key material
// and should wipe it once it is no longer needed.
package crypto
