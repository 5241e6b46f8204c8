package search

import (
	"errors"
	"testing"

	"gamecatalog/backend/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawPortal2() store.RawRow {
	return store.RawRow{
		int64(620), "Portal 2", "Apr 18, 2011", int64(0), 19.99, int64(1), "Co-op puzzles.",
		"English,French", int64(1), int64(1), int64(1), int64(300), int64(10), int64(97),
		"Valve", "Valve", "Single-player,Co-op", "Puzzle,Action", "Puzzle,Co-op,Sci-fi",
	}
}

func TestUnmarshal(t *testing.T) {
	e, err := Unmarshal(rawPortal2())
	require.NoError(t, err)

	assert.Equal(t, int64(620), e.AppID)
	assert.Equal(t, "Portal 2", e.Name)
	assert.Equal(t, 19.99, e.Price)
	assert.Equal(t, []string{"English", "French"}, e.SupportedLanguages)
	assert.Equal(t, []string{"Single-player", "Co-op"}, e.Categories)
	assert.Equal(t, []string{"Puzzle", "Action"}, e.Genres)
	assert.Equal(t, []string{"Puzzle", "Co-op", "Sci-fi"}, e.Tags)
	require.NotNil(t, e.ScoreRank)
	assert.Equal(t, int64(97), *e.ScoreRank)
}

func TestUnmarshalNullables(t *testing.T) {
	row := rawPortal2()
	row[13] = nil // Score_rank
	row[14] = nil // Developers
	row[16] = nil // Categories
	row[17] = ""  // Genres

	e, err := Unmarshal(row)
	require.NoError(t, err)
	assert.Nil(t, e.ScoreRank)
	assert.Equal(t, "", e.Developers)
	assert.NotNil(t, e.Categories)
	assert.Empty(t, e.Categories)
	assert.NotNil(t, e.Genres)
	assert.Empty(t, e.Genres)
}

func TestUnmarshalDriverVariants(t *testing.T) {
	row := rawPortal2()
	row[1] = []byte("Portal 2")
	row[4] = "19.99"
	row[8] = int32(1)

	e, err := Unmarshal(row)
	require.NoError(t, err)
	assert.Equal(t, "Portal 2", e.Name)
	assert.Equal(t, 19.99, e.Price)
	assert.Equal(t, int64(1), e.Windows)
}

func TestUnmarshalCorruptRow(t *testing.T) {
	cases := map[string]struct {
		col  int
		val  any
		name string
	}{
		"null name":     {col: 1, val: nil, name: "Name"},
		"null price":    {col: 4, val: nil, name: "Price"},
		"null flag":     {col: 9, val: nil, name: "Mac"},
		"flag range":    {col: 10, val: int64(3), name: "Linux"},
		"text positive": {col: 11, val: "many", name: "Positive"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			row := rawPortal2()
			row[tc.col] = tc.val

			_, err := Unmarshal(row)
			var rde *RowDecodeError
			require.True(t, errors.As(err, &rde), "got %v", err)
			assert.Equal(t, tc.name, rde.Column)
			assert.Equal(t, int64(620), rde.AppID)
		})
	}
}

func TestUnmarshalShortRow(t *testing.T) {
	_, err := Unmarshal(store.RawRow{int64(1)})
	var rde *RowDecodeError
	assert.True(t, errors.As(err, &rde))
}
