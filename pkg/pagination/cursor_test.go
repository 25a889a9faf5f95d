package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCursor_EncodeDecode(t *testing.T) {
	t.Parallel()

	c := Cursor{CreatedAt: time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC), ID: 42}

	encoded := c.Encode()
	require.NotNil(t, encoded)

	got, err := Decode(encoded)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, c.ID, got.ID)
	require.True(t, c.CreatedAt.Equal(got.CreatedAt))
}

func TestDecode_NilAndEmpty(t *testing.T) {
	t.Parallel()

	got, err := Decode(nil)
	require.NoError(t, err)
	require.Nil(t, got)

	empty := ""
	got, err = Decode(&empty)
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestDecode_Garbage(t *testing.T) {
	t.Parallel()

	bad := "not-base64!!!"
	_, err := Decode(&bad)
	require.Error(t, err)

	// valid base64, invalid JSON
	notJSON := "bm90IGpzb24="
	_, err = Decode(&notJSON)
	require.Error(t, err)
}
