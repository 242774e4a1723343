package hashutil

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

const shortLen = 12

// SHA256Hex returns a trimmed-input SHA-256 hash encoded in hex.
func SHA256Hex(input string) string {
	sum := sha256.Sum256([]byte(strings.TrimSpace(input)))
	return hex.EncodeToString(sum[:])
}

// Short returns the first 12 hex characters of SHA256Hex, enough to
// correlate log lines about one link without writing the link itself.
func Short(input string) string {
	return SHA256Hex(input)[:shortLen]
}
