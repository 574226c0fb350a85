package artifact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerNameCodec_RoundTrip(t *testing.T) {
	names := []string{
		"nameless tee",
		"brainless tee",
		"<3",
		"../../etc/passwd",
		"slash/back\\slash",
		"ünïcödé ☃",
		"dots...",
		"",
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			stem := EncodePlayerName(name)

			assert.NotContains(t, stem, "/")
			assert.NotContains(t, stem, "\\")
			assert.NotContains(t, stem, ".")

			decoded, err := DecodePlayerName(stem)
			require.NoError(t, err)
			assert.Equal(t, name, decoded)
		})
	}
}

func TestPlayerNameCodec_Injective(t *testing.T) {
	names := []string{"a", "a ", " a", "a/b", "a_b", "a-b", "A"}

	seen := make(map[string]string)
	for _, name := range names {
		stem := EncodePlayerName(name)
		if prev, ok := seen[stem]; ok {
			t.Fatalf("names %q and %q collide on %q", prev, name, stem)
		}
		seen[stem] = name
	}
}

func TestDecodePlayerName_ToleratesJSONSuffix(t *testing.T) {
	stem := EncodePlayerName("nameless tee") + ".json"

	decoded, err := DecodePlayerName(stem)

	require.NoError(t, err)
	assert.Equal(t, "nameless tee", decoded)
}

func TestDecodePlayerName_RejectsGarbage(t *testing.T) {
	_, err := DecodePlayerName("not!!valid@@base64")

	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to decode"))
}
