// Package keychain implements a password-locked key-value store of
// (domain, secret) pairs.
//
// A Keychain is created with Init or reconstructed with Load. Both derive a
// master key from the password and a per-vault salt with PBKDF2, and the key
// lives only in a memguard enclave. Every domain name and every secret is
// encrypted with AES-256-GCM under that key and the vault nonce, so lookups
// are deterministic: the encrypted domain name is the map key.
//
// Dump produces a JSON representation together with its SHA-256 digest. Load
// checks the digest (when one is given) before parsing, then accepts the vault
// only if the stored verifier decrypts to the supplied password.
//
// A Keychain is safe for concurrent use. Close wipes the key; the instance is
// unusable afterwards.
package keychain
