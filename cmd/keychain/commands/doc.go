// Package commands defines the keychain CLI and wires dependencies for subcommands.
//
// Commands
//
//   - init     Create a new vault protected by a master password
//   - set      Store or replace the secret for a domain
//   - get      Print (or copy to the clipboard) the secret for a domain
//   - remove   Delete the entry for a domain
//   - dump     Print the stored representation and its digest
//   - verify   Check the stored vault against its digest without a password
//
// # Implementation
//
// The root command builds the dependency graph (logger, snapshot store, vault
// service) before any subcommand runs. The master password comes from
// --password, then $KEYCHAIN_PASSWORD, then an interactive prompt. Passing
// --digest pins the checksum a vault must match when it is opened.
package commands
