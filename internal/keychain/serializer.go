package keychain

import (
	"bytes"
	"encoding/json"
	"fmt"

	"keychain/internal/crypto"
)

// representation is the persisted JSON document.
type representation struct {
	Entries map[string]string `json:"entries"`
	Secrets *secretsBlock     `json:"secrets"`
}

// rawRepresentation defers decoding of entries so a missing or null value
// can be told apart from an empty map.
type rawRepresentation struct {
	Entries json.RawMessage `json:"entries"`
	Secrets *secretsBlock   `json:"secrets"`
}

type secretsBlock struct {
	Nonce    string `json:"nonce"`
	Salt     string `json:"salt"`
	Verifier string `json:"verifier"`
}

// persisted is the decoded form of a representation.
type persisted struct {
	entries  map[string]string
	nonce    []byte
	salt     []byte
	verifier string
}

// encodeRepresentation serialises p. Map keys are emitted in sorted order so
// equal state always yields equal bytes.
func encodeRepresentation(p persisted) (string, error) {
	entries := p.entries
	if entries == nil {
		entries = map[string]string{}
	}
	b, err := json.Marshal(representation{
		Entries: entries,
		Secrets: &secretsBlock{
			Nonce:    crypto.B64(p.nonce),
			Salt:     crypto.B64(p.salt),
			Verifier: p.verifier,
		},
	})
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// decodeRepresentation parses repr, rejecting unknown fields, missing blocks,
// and anything that is not valid base64 of the expected size.
func decodeRepresentation(repr string) (persisted, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(repr)))
	dec.DisallowUnknownFields()

	var r rawRepresentation
	if err := dec.Decode(&r); err != nil {
		return persisted{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if dec.More() {
		return persisted{}, fmt.Errorf("%w: trailing data", ErrParse)
	}
	if len(r.Entries) == 0 || bytes.Equal(r.Entries, []byte("null")) {
		return persisted{}, fmt.Errorf("%w: missing entries", ErrParse)
	}
	if r.Secrets == nil {
		return persisted{}, fmt.Errorf("%w: missing secrets block", ErrParse)
	}
	var rawEntries map[string]string
	if err := json.Unmarshal(r.Entries, &rawEntries); err != nil {
		return persisted{}, fmt.Errorf("%w: entries: %v", ErrParse, err)
	}

	nonce, err := crypto.FromB64(r.Secrets.Nonce)
	if err != nil || len(nonce) != crypto.NonceBytes {
		return persisted{}, fmt.Errorf("%w: bad nonce", ErrParse)
	}
	salt, err := crypto.FromB64(r.Secrets.Salt)
	if err != nil || len(salt) == 0 {
		return persisted{}, fmt.Errorf("%w: bad salt", ErrParse)
	}
	if _, err := crypto.FromB64(r.Secrets.Verifier); err != nil || r.Secrets.Verifier == "" {
		return persisted{}, fmt.Errorf("%w: bad verifier", ErrParse)
	}

	entries := make(map[string]string, len(rawEntries))
	for k, v := range rawEntries {
		if _, err := crypto.FromB64(k); err != nil {
			return persisted{}, fmt.Errorf("%w: bad entry key", ErrParse)
		}
		if _, err := crypto.FromB64(v); err != nil {
			return persisted{}, fmt.Errorf("%w: bad entry value", ErrParse)
		}
		entries[k] = v
	}

	return persisted{
		entries:  entries,
		nonce:    nonce,
		salt:     salt,
		verifier: r.Secrets.Verifier,
	}, nil
}
