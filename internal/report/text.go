package report

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/kamusis/jobmatch-cli/internal/records"
)

// TextHash returns a sha256 hash (hex) of text.
func TextHash(text string) string {
	h := sha256.Sum256([]byte(text))
	return hex.EncodeToString(h[:])
}

// StoreHash hashes every record text of s in order, one per line.
func StoreHash(s *records.Store) string {
	h := sha256.New()
	for _, r := range s.All() {
		h.Write([]byte(r.Text))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// InputOf describes s for the manifest.
func InputOf(s *records.Store) Input {
	return Input{
		Kind:     string(s.Kind),
		Path:     s.Path,
		Records:  s.Len(),
		TextHash: StoreHash(s),
	}
}
