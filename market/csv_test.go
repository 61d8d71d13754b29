package market

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePrices(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prices.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadCSV(t *testing.T) {
	t.Parallel()

	t.Run("with header", func(t *testing.T) {
		t.Parallel()

		path := writePrices(t, "date,close\n2024-01-02,100\n2024-01-03,101.25\n")
		s, err := LoadCSV(path, "GC=F")
		require.NoError(t, err)

		assert.Equal(t, "GC=F", s.Ticker)
		require.Equal(t, 2, s.Len())
		assert.True(t, s.Bar(0).Close.Equal(decimal.RequireFromString("100")))
		assert.True(t, s.Bar(1).Close.Equal(decimal.RequireFromString("101.25")))
	})

	t.Run("without header", func(t *testing.T) {
		t.Parallel()

		path := writePrices(t, "2024-01-02,100\n2024-01-03,101\n")
		s, err := LoadCSV(path, "GC=F")
		require.NoError(t, err)
		assert.Equal(t, 2, s.Len())
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), "GC=F")
		require.Error(t, err)
	})

	t.Run("bad close", func(t *testing.T) {
		t.Parallel()

		path := writePrices(t, "2024-01-02,abc\n")
		_, err := LoadCSV(path, "GC=F")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad close")
	})

	t.Run("bad date past header", func(t *testing.T) {
		t.Parallel()

		path := writePrices(t, "2024-01-02,100\nnot-a-date,101\n")
		_, err := LoadCSV(path, "GC=F")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bad date")
	})

	t.Run("short row", func(t *testing.T) {
		t.Parallel()

		path := writePrices(t, "2024-01-02\n")
		_, err := LoadCSV(path, "GC=F")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "want date,close")
	})

	t.Run("series invariants still apply", func(t *testing.T) {
		t.Parallel()

		path := writePrices(t, "2024-01-03,100\n2024-01-02,101\n")
		_, err := LoadCSV(path, "GC=F")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "strictly increasing")
	})
}
