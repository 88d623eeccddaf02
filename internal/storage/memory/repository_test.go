package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ministry-jobs-parser/internal/storage"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSeedSourcesIsIdempotent(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	entries := []storage.Source{
		{Name: "외교부", URL: "https://www.mofa.go.kr", Active: true},
		{Name: "법무부", URL: "https://www.moj.go.kr", Active: true},
	}

	n, err := repo.SeedSources(ctx, entries)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	n, err = repo.SeedSources(ctx, entries)
	require.NoError(t, err)
	assert.Zero(t, n, "second seed must be a no-op")

	srcs, err := repo.ListActiveSources(ctx)
	require.NoError(t, err)
	assert.Len(t, srcs, 2)
	for _, src := range srcs {
		assert.NotEmpty(t, src.ID)
		assert.Nil(t, src.LastChecked)
	}
}

func TestListActiveSourcesSkipsInactive(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	_, err := repo.SeedSources(ctx, []storage.Source{
		{Name: "외교부", URL: "https://www.mofa.go.kr", Active: true},
		{Name: "폐지된 부처", URL: "https://old.go.kr", Active: false},
	})
	require.NoError(t, err)

	srcs, err := repo.ListActiveSources(ctx)
	require.NoError(t, err)
	require.Len(t, srcs, 1)
	assert.Equal(t, "외교부", srcs[0].Name)
}

func TestTouchSourceLastChecked(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	repo := NewRepository()
	repo.now = fixedClock(now)
	ctx := context.Background()

	_, err := repo.SeedSources(ctx, []storage.Source{
		{Name: "외교부", URL: "https://www.mofa.go.kr", Active: true},
	})
	require.NoError(t, err)

	src := repo.Sources()[0]
	require.NoError(t, repo.TouchSourceLastChecked(ctx, src.ID))

	touched := repo.Sources()[0]
	require.NotNil(t, touched.LastChecked)
	assert.Equal(t, now, *touched.LastChecked)
}

func TestRetentionBoundaryIsStrict(t *testing.T) {
	now := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	repo := NewRepository()
	repo.now = fixedClock(now)
	ctx := context.Background()

	insert := func(title string, createdAt time.Time) {
		require.NoError(t, repo.InsertPosting(ctx, &storage.Posting{
			Title:     title,
			Ministry:  "외교부",
			Positions: 1,
			CreatedAt: createdAt,
		}))
	}

	insert("older than threshold", now.AddDate(0, 0, -61))
	insert("exactly at threshold", now.AddDate(0, 0, -60))
	insert("younger than threshold", now.AddDate(0, 0, -1))

	deleted, err := repo.DeletePostingsOlderThan(ctx, 60)
	require.NoError(t, err)
	assert.Equal(t, 1, deleted)

	remaining := repo.Postings()
	require.Len(t, remaining, 2)
	titles := []string{remaining[0].Title, remaining[1].Title}
	assert.Contains(t, titles, "exactly at threshold")
	assert.Contains(t, titles, "younger than threshold")
}

func TestPostingExistsKeyedOnTitleAndMinistry(t *testing.T) {
	repo := NewRepository()
	ctx := context.Background()

	require.NoError(t, repo.InsertPosting(ctx, &storage.Posting{
		Title:    "신규 채용",
		Ministry: "외교부",
	}))

	exists, err := repo.PostingExists(ctx, "신규 채용", "외교부")
	require.NoError(t, err)
	assert.True(t, exists)

	// Same title under a different source is a different posting.
	exists, err = repo.PostingExists(ctx, "신규 채용", "법무부")
	require.NoError(t, err)
	assert.False(t, exists)
}
