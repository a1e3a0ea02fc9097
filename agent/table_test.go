package agent

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableValueIsExactSum(t *testing.T) {
	net := DefaultNetwork()
	table := NewTable(net)

	indices := []uint32{5, 17, 0, 65535, 1234, 42, 9999, 300}
	want := float32(0)
	for i, idx := range indices {
		w := float32(i+1) * 0.25
		table[i][idx] = w
		want += w
	}

	assert.Equal(t, want, table.Value(indices))

	// A different index in any plane must not contribute.
	other := make([]uint32, len(indices))
	copy(other, indices)
	other[3] = 1
	assert.Equal(t, want-1.0, table.Value(other))
}

func TestTableSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "weights.bin")

	net := DefaultNetwork()
	table := NewTable(net)
	table[0][123] = 1.5
	table[3][65535] = -0.75
	table[7][0] = 3.25

	require.NoError(t, table.Save(path))

	loaded, err := LoadTable(path)
	require.NoError(t, err)
	require.Len(t, loaded, len(table))
	for i := range table {
		require.Lenf(t, loaded[i], len(table[i]), "plane %d", i)
	}
	assert.Equal(t, float32(1.5), loaded[0][123])
	assert.Equal(t, float32(-0.75), loaded[3][65535])
	assert.Equal(t, float32(3.25), loaded[7][0])
	assert.Zero(t, loaded[0][122])

	// Re-saving an untouched table must reproduce the file byte for byte.
	path2 := filepath.Join(dir, "weights2.bin")
	require.NoError(t, loaded.Save(path2))
	b1, err := os.ReadFile(path)
	require.NoError(t, err)
	b2, err := os.ReadFile(path2)
	require.NoError(t, err)
	assert.Equal(t, b1, b2)
}

func TestLoadTableMissingFile(t *testing.T) {
	_, err := LoadTable(filepath.Join(t.TempDir(), "absent.bin"))
	require.Error(t, err)
}

func TestLoadTableTruncated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truncated.bin")
	table := NewTable(DefaultNetwork())
	require.NoError(t, table.Save(path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, raw[:len(raw)/2], 0o644))

	_, err = LoadTable(path)
	require.Error(t, err)
}

func TestNewTDSliderPlaneCountMismatch(t *testing.T) {
	// A 2-plane table cannot back the 8-tuple default network.
	table := Table{NewPlane(PlaneSize), NewPlane(PlaneSize)}
	_, err := NewTDSlider(Config{Table: table, Alpha: DefaultAlpha})
	require.Error(t, err)
}
