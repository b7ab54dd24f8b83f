// Package store provides file-based persistence for keychain snapshots.
//
// It writes the serialised keychain and its digest as separate files under the
// configured home directory, each replaced atomically through a temp file and
// rename. All methods are concurrency-safe via internal locking.
package store
