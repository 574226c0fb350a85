package artifact

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// EncodePlayerName maps a player name to a flat, filesystem-safe filename
// stem. The encoding is injective and reversible: any name, including ones
// with path separators or dots, yields a unique stem with no traversal risk.
func EncodePlayerName(name string) string {
	return base64.RawURLEncoding.EncodeToString([]byte(name))
}

// DecodePlayerName recovers the player name from a filename stem produced by
// EncodePlayerName. A trailing ".json" is tolerated.
func DecodePlayerName(stem string) (string, error) {
	stem = strings.TrimSuffix(stem, ".json")
	raw, err := base64.RawURLEncoding.DecodeString(stem)
	if err != nil {
		return "", fmt.Errorf("failed to decode player filename %q: %w", stem, err)
	}
	return string(raw), nil
}
