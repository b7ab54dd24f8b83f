package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/awnumar/memguard"
	"golang.org/x/term"
)

// masterPassword returns the password from flags/env or prompts for it.
func masterPassword(w io.Writer, confirm bool) (string, error) {
	if password != "" {
		return password, nil
	}
	pw, err := readHidden(w, "Master password: ")
	if err != nil {
		return "", err
	}
	if confirm {
		again, err := readHidden(w, "Confirm master password: ")
		if err != nil {
			return "", err
		}
		if again != pw {
			return "", fmt.Errorf("passwords do not match")
		}
	}
	return pw, nil
}

// readHidden prompts on w and reads a line from the terminal without echo.
func readHidden(w io.Writer, prompt string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return "", fmt.Errorf("no terminal for prompt; use --password or KEYCHAIN_PASSWORD")
	}
	fmt.Fprint(w, prompt)
	b, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return "", err
	}
	defer memguard.WipeBytes(b)
	return string(b), nil
}
