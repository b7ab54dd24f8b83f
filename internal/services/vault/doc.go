// Package vault opens, creates and saves the local keychain.
//
// It enforces the master password policy, checks snapshot integrity before a
// keychain is loaded, and writes snapshots to a domain.SnapshotStore on Save.
package vault
