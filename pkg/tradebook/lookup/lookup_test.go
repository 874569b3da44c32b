package lookup

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	table := Default()
	require.Len(t, table.Entries, 4)

	e, ok := table.Find("73239990")
	require.True(t, ok)
	assert.Equal(t, "Household articles of iron or steel", e.Description)
	assert.Equal(t, "Steel", e.Category)

	_, ok = table.Find("99999999")
	assert.False(t, ok)

	rows := table.Rows()
	assert.Equal(t, []string{"HS Code", "HSN Description", "Main Category"}, rows[0])
	assert.Equal(t, []string{"73239300", "Kitchen or tableware", "Steel"}, rows[4])
}

func TestParse_DefaultsHeaders(t *testing.T) {
	table, err := Parse([]byte("entries:\n  - code: \" 8215 \"\n    description: Cutlery\n    category: Tableware\n"))
	require.NoError(t, err)
	assert.Equal(t, "HS Code", table.Headers.Code)
	assert.Equal(t, "8215", table.Entries[0].Code)
}

func TestParse_Errors(t *testing.T) {
	_, err := Parse([]byte("entries: []\n"))
	assert.ErrorIs(t, err, ErrNoEntries)

	_, err = Parse([]byte("entries:\n  - description: no code\n"))
	assert.EqualError(t, err, "entry 1: invalid code (required)")

	_, err = Parse([]byte("entries:\n  - code: \"7323\"\n  - code: \"73-23\"\n"))
	assert.EqualError(t, err, "entry 2: invalid code (numeric)")

	_, err = Parse([]byte("entries: [unterminated\n"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lookup.yaml")
	require.NoError(t, os.WriteFile(path, []byte("entries:\n  - code: \"39241090\"\n    description: Plastic tableware\n    category: Plastic\n"), 0644))

	table, err := Load(path)
	require.NoError(t, err)
	require.Len(t, table.Entries, 1)
	assert.Equal(t, "Plastic", table.Entries[0].Category)

	_, err = Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
