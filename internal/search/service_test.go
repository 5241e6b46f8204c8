package search

import (
	"context"
	"errors"
	"testing"

	"gamecatalog/backend/internal/database"
	"gamecatalog/backend/internal/models"
	"gamecatalog/backend/internal/store"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubVerifier struct{ valid string }

func (v stubVerifier) Verify(credential string) (string, error) {
	if credential != v.valid {
		return "", errors.New("signature is invalid")
	}
	return "tester", nil
}

type countingQuerier struct {
	next  Querier
	calls int
}

func (q *countingQuerier) Query(ctx context.Context, p store.Predicate) ([]store.RawRow, error) {
	q.calls++
	return q.next.Query(ctx, p)
}

func fixtureRows() []models.GameRow {
	return []models.GameRow{
		{
			AppID: 1, Name: "Portal", ReleaseDate: "Oct 10, 2007", Price: 9.99,
			SupportedLanguages: "English", Windows: 1, Mac: 0, Linux: 0,
			Developers: "Valve", Publishers: "Valve",
			Categories: "Single-player", Genres: "Puzzle", Tags: "Puzzle,RPGMaker",
		},
		{
			AppID: 2, Name: "Portal 2", ReleaseDate: "Apr 18, 2011", Price: 19.99,
			SupportedLanguages: "English,French", Windows: 1, Mac: 1, Linux: 1,
			Developers: "Valve", Publishers: "Valve",
			Categories: "Single-player,Co-op", Genres: "Puzzle,Action", Tags: "Puzzle,Co-op",
		},
		{
			AppID: 3, Name: "100% Orange Juice", ReleaseDate: "May 16, 2014", Price: 6.99,
			SupportedLanguages: "English,Japanese", Windows: 1,
			Developers: "Orange_Juice", Publishers: "Fruitbat Factory",
			Categories: "Multi-player", Genres: "Indie,Strategy", Tags: "RPG,Board Game",
		},
		{
			AppID: 4, Name: "Élite Dangerous", ReleaseDate: "Apr 2, 2015", Price: 24.99,
			SupportedLanguages: "English,Русский", Windows: 1,
			Developers: "Frontier Developments", Publishers: "Frontier Developments",
			Categories: "Online PvP", Genres: "Simulation", Tags: "Space,Sandbox",
		},
	}
}

func newTestService(t *testing.T) (*Service, *countingQuerier) {
	t.Helper()
	ctx := context.Background()
	db, err := database.Open(":memory:", zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close(db) })

	catalog := store.NewCatalog(db, 0)
	require.NoError(t, catalog.Migrate(ctx))
	require.NoError(t, catalog.ReplaceAll(ctx, fixtureRows()))

	q := &countingQuerier{next: catalog}
	return NewService(stubVerifier{valid: "good-token"}, q), q
}

func appIDs(res *Result) []int64 {
	out := make([]int64, 0, len(res.Results))
	for _, e := range res.Results {
		out = append(out, e.AppID)
	}
	return out
}

func TestSearch(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	cases := map[string]struct {
		criteria Criteria
		want     []int64
	}{
		"unconstrained":           {criteria: Criteria{}, want: []int64{1, 2, 3, 4}},
		"name substring":          {criteria: Criteria{"Name": "Portal"}, want: []int64{1, 2}},
		"name case-insensitive":   {criteria: Criteria{"Name": "pORTAL 2"}, want: []int64{2}},
		"mac flag":                {criteria: Criteria{"Mac": int64(1)}, want: []int64{2}},
		"genre element":           {criteria: Criteria{"Genres": "Action"}, want: []int64{2}},
		"windows zero is ignored": {criteria: Criteria{"Windows": int64(0)}, want: []int64{1, 2, 3, 4}},
		"tag approximation":       {criteria: Criteria{"Tags": "RPG"}, want: []int64{1, 3}},
		"literal percent":         {criteria: Criteria{"Name": "100%"}, want: []int64{3}},
		"literal underscore":      {criteria: Criteria{"Developers": "e_J"}, want: []int64{3}},
		"underscore not wildcard": {criteria: Criteria{"Developers": "v_lve"}, want: []int64{}},
		"language":                {criteria: Criteria{"Supported_languages": "french"}, want: []int64{2}},
		"price exact":             {criteria: Criteria{"Price": 6.99}, want: []int64{3}},
		"conjunction":             {criteria: Criteria{"Name": "Portal", "Linux": int64(1), "AppID": int64(2)}, want: []int64{2}},
		"accented name":           {criteria: Criteria{"Name": "Élite"}, want: []int64{4}},
		"accented upper case":     {criteria: Criteria{"Name": "ÉLITE"}, want: []int64{4}},
		"accented lower case":     {criteria: Criteria{"Name": "élite dangerous"}, want: []int64{4}},
		"cyrillic language":       {criteria: Criteria{"Supported_languages": "Русский"}, want: []int64{4}},
		"cyrillic lower case":     {criteria: Criteria{"Supported_languages": "русский"}, want: []int64{4}},
		"no match":                {criteria: Criteria{"Name": "Half-Life"}, want: []int64{}},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			res, err := svc.Search(ctx, "good-token", tc.criteria)
			require.NoError(t, err)
			assert.Equal(t, tc.want, appIDs(res))
			assert.Equal(t, len(tc.want), res.Count)
		})
	}
}

func TestSearchDecodesLists(t *testing.T) {
	svc, _ := newTestService(t)

	res, err := svc.Search(context.Background(), "good-token", Criteria{"AppID": int64(2)})
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, []string{"Puzzle", "Action"}, res.Results[0].Genres)
	assert.Equal(t, []string{"English", "French"}, res.Results[0].SupportedLanguages)
	assert.Nil(t, res.Results[0].ScoreRank)
}

func TestSearchUnauthorized(t *testing.T) {
	svc, q := newTestService(t)

	for _, cred := range []string{"", "forged"} {
		res, err := svc.Search(context.Background(), cred, Criteria{"Name": "Portal"})
		assert.Nil(t, res)

		var ae *AuthorizationError
		require.True(t, errors.As(err, &ae))
	}
	assert.Zero(t, q.calls)
}

func TestSearchUnknownCriterion(t *testing.T) {
	svc, q := newTestService(t)

	_, err := svc.Search(context.Background(), "good-token", Criteria{"Rating": "M"})
	assert.True(t, errors.Is(err, ErrUnknownCriterion))
	assert.Zero(t, q.calls)
}

type rawQuerier []store.RawRow

func (r rawQuerier) Query(context.Context, store.Predicate) ([]store.RawRow, error) {
	return r, nil
}

func TestSearchCorruptRow(t *testing.T) {
	row := rawPortal2()
	row[1] = nil
	svc := NewService(stubVerifier{valid: "t"}, rawQuerier{row})

	_, err := svc.Search(context.Background(), "t", nil)
	var rde *RowDecodeError
	assert.True(t, errors.As(err, &rde))
}
