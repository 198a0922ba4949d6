package store_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nycschools/internal/domain"
	"nycschools/internal/store"
)

func stores(t *testing.T) map[string]domain.SelectionStore {
	t.Helper()
	sq, err := store.OpenSQLite(store.SQLitePath(t.TempDir()))
	require.NoError(t, err)
	t.Cleanup(func() { _ = sq.Close() })

	return map[string]domain.SelectionStore{
		"file":   store.NewFileStore(t.TempDir()),
		"sqlite": sq,
		"memory": store.NewMemoryStore(),
	}
}

func TestSelectionStore_GetSetContains(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			ok, err := s.Contains("id")
			require.NoError(t, err)
			assert.False(t, ok)

			require.NoError(t, s.Set("id", "97f"))
			require.NoError(t, s.Set("id", "w3"))

			v, ok, err := s.Get("id")
			require.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, "w3", v)

			ok, err = s.Contains("id")
			require.NoError(t, err)
			assert.True(t, ok)
		})
	}
}

func TestSelection_RoundTripAndPartialWrite(t *testing.T) {
	for name, s := range stores(t) {
		t.Run(name, func(t *testing.T) {
			_, ok, err := store.LoadSelection(s)
			require.NoError(t, err)
			assert.False(t, ok)

			// Only the id made it to disk.
			require.NoError(t, s.Set(store.KeySelectedID, "97f"))
			_, ok, err = store.LoadSelection(s)
			require.NoError(t, err)
			assert.False(t, ok, "half-written selection must read as none")

			want := domain.Selection{ID: "97f", Name: "S School 2"}
			require.NoError(t, store.SaveSelection(s, want))
			got, ok, err := store.LoadSelection(s)
			require.NoError(t, err)
			require.True(t, ok)
			assert.Equal(t, want, got)
		})
	}
}

func TestFileStore_SurvivesReopen(t *testing.T) {
	home := t.TempDir()
	require.NoError(t, store.SaveSelection(store.NewFileStore(home), domain.Selection{ID: "w3", Name: "A School 3"}))

	got, ok, err := store.LoadSelection(store.NewFileStore(home))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.SchoolID("w3"), got.ID)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := store.SQLitePath(t.TempDir())
	s, err := store.OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, store.SaveSelection(s, domain.Selection{ID: "342", Name: "Z School 1"}))
	require.NoError(t, s.Close())

	s, err = store.OpenSQLite(path)
	require.NoError(t, err)
	defer s.Close()
	got, ok, err := store.LoadSelection(s)
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "Z School 1", got.Name)
}

func TestFileStore_TamperedDocumentReadsEmpty(t *testing.T) {
	home := t.TempDir()
	fs := store.NewFileStore(home)
	require.NoError(t, store.SaveSelection(fs, domain.Selection{ID: "w3", Name: "A School 3"}))

	raw, err := os.ReadFile(fs.Path())
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(raw, &doc))
	doc["entries"].(map[string]any)["id"] = "342"
	raw, err = json.Marshal(doc)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(fs.Path(), raw, 0o600))

	_, ok, err := store.LoadSelection(fs)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStore_NoTempFilesLeftBehind(t *testing.T) {
	home := t.TempDir()
	fs := store.NewFileStore(home)
	require.NoError(t, fs.Set("id", "97f"))

	matches, err := filepath.Glob(filepath.Join(home, "*.tmp-*"))
	require.NoError(t, err)
	assert.Empty(t, matches)

	info, err := os.Stat(fs.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestFileStore_CreatesMissingDirectory(t *testing.T) {
	home := filepath.Join(t.TempDir(), "nested", "home")
	fs := store.NewFileStore(home)
	require.NoError(t, store.SaveSelection(fs, domain.Selection{ID: "97f", Name: "S School 2"}))

	got, ok, err := store.LoadSelection(store.NewFileStore(home))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, domain.SchoolID("97f"), got.ID)
}

func TestFileStore_CorruptDocumentIsAnError(t *testing.T) {
	home := t.TempDir()
	fs := store.NewFileStore(home)
	require.NoError(t, os.WriteFile(fs.Path(), []byte(`{"v":1,"entries":`), 0o600))

	_, _, err := fs.Get(store.KeySelectedID)
	assert.Error(t, err)
}

func TestOpenSQLite_RequiresPath(t *testing.T) {
	_, err := store.OpenSQLite("  ")
	assert.Error(t, err)
}
