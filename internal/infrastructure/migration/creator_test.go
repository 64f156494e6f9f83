package migration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "Add Budget Plans")
	require.NoError(t, err)

	assert.Contains(t, filepath.Base(mf.UpPath), "add_budget_plans.up.sql")
	assert.Contains(t, filepath.Base(mf.DownPath), "add_budget_plans.down.sql")

	for _, path := range []string{mf.UpPath, mf.DownPath} {
		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Add Budget Plans")
	}
}

func TestListMigrations(t *testing.T) {
	t.Run("missing directory yields empty list", func(t *testing.T) {
		migrations, err := ListMigrations(filepath.Join(t.TempDir(), "nope"))
		require.NoError(t, err)
		assert.Empty(t, migrations)
	})

	t.Run("pairs are deduplicated and sorted", func(t *testing.T) {
		dir := t.TempDir()
		for _, name := range []string{
			"002_second.up.sql",
			"002_second.down.sql",
			"001_first.up.sql",
			"001_first.down.sql",
			"notes.txt",
		} {
			require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("--"), 0644))
		}

		migrations, err := ListMigrations(dir)
		require.NoError(t, err)
		assert.Equal(t, []string{"001_first", "002_second"}, migrations)
	})
}

func TestSanitizeName(t *testing.T) {
	assert.Equal(t, "add_orders_table", sanitizeName("Add Orders  Table"))
	assert.Equal(t, "fix_aging_buckets", sanitizeName("fix-aging-buckets-"))
	assert.Equal(t, "v2", sanitizeName("V2!"))
}
