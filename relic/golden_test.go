package relic

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestGoldenCorpus pins the wire format against the corpus fixtures: every
// case file must encode to its golden stream and the golden stream must
// decode back to the case file. cmd/bench reports over the same corpus.
func TestGoldenCorpus(t *testing.T) {
	casesDir := filepath.Join("testdata", "corpus", "cases")
	goldenDir := filepath.Join("testdata", "corpus", "golden")

	entries, err := os.ReadDir(goldenDir)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	for _, entry := range entries {
		if !strings.HasSuffix(entry.Name(), ".relic") {
			continue
		}
		name := strings.TrimSuffix(entry.Name(), ".relic")

		t.Run(name, func(t *testing.T) {
			raw := readCorpusFile(t, filepath.Join(casesDir, name+".txt"))
			golden := readCorpusFile(t, filepath.Join(goldenDir, entry.Name()))

			encoded, stats, err := EncodeWithStats(raw)
			require.NoError(t, err)
			require.Equal(t, golden, encoded)
			require.Equal(t, len(golden), stats.EncodedBytes)

			decoded, err := Decode(golden)
			require.NoError(t, err)
			require.Equal(t, raw, decoded)
		})
	}
}

// readCorpusFile reads a fixture with its single trailing newline removed;
// the newline terminates the file, it is not part of the sample.
func readCorpusFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.TrimSuffix(string(data), "\n")
}
