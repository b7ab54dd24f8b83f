package main

import (
	"github.com/awnumar/memguard"

	"keychain/cmd/keychain/commands"
)

func main() {
	memguard.CatchInterrupt()

	if err := commands.Execute(); err != nil {
		memguard.SafeExit(1)
	}
	memguard.Purge()
}
