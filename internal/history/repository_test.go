package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *DBRepository {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return NewDBRepository(db)
}

func TestDBRepository_AppendAndList(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	current := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time { return current }

	require.NoError(t, repo.Append(ctx, "bonjour", "fr"))
	current = current.Add(time.Minute)
	require.NoError(t, repo.Append(ctx, "hello", "en"))
	current = current.Add(time.Minute)
	require.NoError(t, repo.Append(ctx, "hallo", "de"))

	records, err := repo.List(ctx, 50)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "hallo", records[0].Word, "newest entry comes first")
	assert.Equal(t, "hello", records[1].Word)
	assert.Equal(t, "bonjour", records[2].Word)
	assert.Equal(t, "fr", records[2].SourceLang)
	assert.Equal(t, time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC), records[2].CreatedAt)
}

func TestDBRepository_ListLimit(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	for _, word := range []string{"un", "deux", "trois", "quatre"} {
		require.NoError(t, repo.Append(ctx, word, "fr"))
	}

	records, err := repo.List(ctx, 2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "quatre", records[0].Word)
	assert.Equal(t, "trois", records[1].Word)

	records, err = repo.List(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, records, 4, "non-positive limit falls back to the default")
}

func TestDBRepository_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "bonjour", "fr"))
	require.NoError(t, repo.Append(ctx, "hello", "en"))

	records, err := repo.List(ctx, 50)
	require.NoError(t, err)
	require.Len(t, records, 2)

	require.NoError(t, repo.Delete(ctx, records[0].ID))

	records, err = repo.List(ctx, 50)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "bonjour", records[0].Word)

	assert.NoError(t, repo.Delete(ctx, 9999), "deleting an unknown id is a no-op")
}

func TestDBRepository_Clear(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Append(ctx, "bonjour", "fr"))
	require.NoError(t, repo.Append(ctx, "hello", "en"))
	require.NoError(t, repo.Clear(ctx))

	records, err := repo.List(ctx, 50)
	require.NoError(t, err)
	assert.Empty(t, records)
}
