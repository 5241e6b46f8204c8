package store

import (
	"context"
	"sync"
	"testing"

	"gamecatalog/backend/internal/database"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/schema"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
	gormschema "gorm.io/gorm/schema"
)

func newTestCatalog(t *testing.T) *Catalog {
	t.Helper()
	db, err := database.Open(":memory:", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	c := NewCatalog(db, 2)
	require.NoError(t, c.Migrate(context.Background()))
	return c
}

func rowsWithIDs(ids ...int64) []models.GameRow {
	out := make([]models.GameRow, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.GameRow{
			AppID:              id,
			Name:               "Game",
			ReleaseDate:        "Jan 1, 2020",
			SupportedLanguages: "English",
			Windows:            1,
			Categories:         "Single-player",
			Genres:             "Action",
			Tags:               "Indie",
		})
	}
	return out
}

func ids(t *testing.T, rows []RawRow) []int64 {
	t.Helper()
	out := make([]int64, 0, len(rows))
	for _, r := range rows {
		id, ok := r[0].(int64)
		require.True(t, ok, "app_id has type %T", r[0])
		out = append(out, id)
	}
	return out
}

func TestColumnsMatchModel(t *testing.T) {
	s, err := gormschema.Parse(&models.GameRow{}, &sync.Map{}, gormschema.NamingStrategy{})
	require.NoError(t, err)
	assert.Equal(t, schema.Columns(), s.DBNames)
	assert.Equal(t, "game_data", s.Table)
}

func TestReplaceAllAndQuery(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)

	require.NoError(t, c.ReplaceAll(ctx, rowsWithIDs(3, 1, 2, 5, 4)))

	rows, err := c.Query(ctx, Predicate{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(t, rows))
	assert.Len(t, rows[0], len(schema.Columns()))

	rows, err = c.Query(ctx, Predicate{SQL: "app_id = ?", Args: []any{int64(4)}})
	require.NoError(t, err)
	assert.Equal(t, []int64{4}, ids(t, rows))

	require.NoError(t, c.ReplaceAll(ctx, rowsWithIDs(9)))
	n, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

func TestReplaceAllEmpty(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)

	require.NoError(t, c.ReplaceAll(ctx, rowsWithIDs(1, 2)))
	require.NoError(t, c.ReplaceAll(ctx, nil))

	rows, err := c.Query(ctx, Predicate{})
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestReplaceAllRollsBackOnFailure(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)
	require.NoError(t, c.ReplaceAll(ctx, rowsWithIDs(1, 2, 3)))

	// duplicate primary key in the third batch
	err := c.ReplaceAll(ctx, rowsWithIDs(10, 11, 12, 13, 14, 10))
	require.Error(t, err)

	rows, err := c.Query(ctx, Predicate{})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 2, 3}, ids(t, rows))
}

func TestQueryBindsSpecialCharacters(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)

	rows := rowsWithIDs(1, 2)
	rows[0].Name = "Don't Starve; DROP TABLE game_data"
	require.NoError(t, c.ReplaceAll(ctx, rows))

	got, err := c.Query(ctx, Predicate{SQL: "name = ?", Args: []any{"Don't Starve; DROP TABLE game_data"}})
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, ids(t, got))

	n, err := c.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestConcurrentQueryObservesWholeDataset(t *testing.T) {
	ctx := context.Background()
	c := newTestCatalog(t)

	setA := rowsWithIDs(1, 2, 3)
	setB := rowsWithIDs(10, 11, 12, 13, 14, 15, 16)
	require.NoError(t, c.ReplaceAll(ctx, setA))

	isSet := func(got []int64, want []models.GameRow) bool {
		if len(got) != len(want) {
			return false
		}
		for i := range got {
			if got[i] != want[i].AppID {
				return false
			}
		}
		return true
	}

	var g errgroup.Group
	g.Go(func() error {
		for i := 0; i < 20; i++ {
			next := setB
			if i%2 == 1 {
				next = setA
			}
			if err := c.ReplaceAll(ctx, next); err != nil {
				return err
			}
		}
		return nil
	})
	for r := 0; r < 4; r++ {
		g.Go(func() error {
			for i := 0; i < 25; i++ {
				rows, err := c.Query(ctx, Predicate{})
				if err != nil {
					return err
				}
				got := make([]int64, 0, len(rows))
				for _, row := range rows {
					id, _ := row[0].(int64)
					got = append(got, id)
				}
				if !isSet(got, setA) && !isSet(got, setB) {
					t.Errorf("query observed a partial dataset: %v", got)
				}
			}
			return nil
		})
	}
	require.NoError(t, g.Wait())
}
