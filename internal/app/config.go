package app

import "io"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home       string    // config directory, e.g. $HOME/.keychain
	Iterations int       // PBKDF2 work factor; 0 keeps the default
	Verbose    bool      // enable debug logging
	Log        io.Writer // optional; defaults to os.Stderr
}
