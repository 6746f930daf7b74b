package postgres

import (
	"io/fs"
	"strings"
	"testing"

	"wishlist/internal/infra/persistence/testdb"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationsFS(t *testing.T) {
	files, err := fs.Glob(MigrationsFS(), "*.sql")
	require.NoError(t, err)
	assert.Equal(t, []string{"00001_create_users.sql", "00002_create_wishlists.sql"}, files)
}

func TestMigrations_TextColumnsAreUnbounded(t *testing.T) {
	files, err := fs.Glob(MigrationsFS(), "*.sql")
	require.NoError(t, err)

	for _, name := range files {
		content, err := fs.ReadFile(MigrationsFS(), name)
		require.NoError(t, err)
		assert.NotContains(t, strings.ToUpper(string(content)), "VARCHAR", name)
	}
}

func TestMigrationsAreRecognisedByGoose(t *testing.T) {
	sqlDB, err := testdb.New(t).DB()
	require.NoError(t, err)

	provider, err := goose.NewProvider(goose.DialectPostgres, sqlDB, MigrationsFS())
	require.NoError(t, err)

	sources := provider.ListSources()
	require.Len(t, sources, 2)
	assert.Equal(t, int64(1), sources[0].Version)
	assert.Equal(t, int64(2), sources[1].Version)
	assert.Equal(t, goose.TypeSQL, sources[0].Type)
}
