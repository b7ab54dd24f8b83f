package domain

// Snapshot is a dumped keychain: the serialised representation and the
// base64 SHA-256 digest computed over its bytes.
type Snapshot struct {
	Repr   string
	Digest string
}
