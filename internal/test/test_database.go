package test

import (
	"context"
	"crypto/md5" //nolint:gosec
	"database/sql"
	"encoding/hex"
	"io/fs"
	"sort"
	"sync"
	"testing"

	integresql "github.com/allaboutapps/integresql-client-go"
	"github.com/stretchr/testify/require"
	"github/kontos/connect/migrations"
)

var (
	client *integresql.Client

	// hash fingerprints the embedded migrations, integresql rebuilds the
	// template database whenever it changes.
	hash string

	doOnce          sync.Once
	templateInitErr error
)

// WithTestDatabase returns an isolated, fully migrated test database.
func WithTestDatabase(t *testing.T, closure func(db *sql.DB)) {
	t.Helper()

	ctx := context.Background()

	doOnce.Do(func() {
		templateInitErr = initializeTemplate(ctx)
	})
	require.NoError(t, templateInitErr, "failed to initialize test database template")

	testDatabase, err := client.GetTestDatabase(ctx, hash)
	require.NoError(t, err, "failed to get test database")

	db, err := sql.Open("postgres", testDatabase.Config.ConnectionString())
	require.NoError(t, err, "failed to open test database connection")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.PingContext(ctx), "failed to ping test database")

	closure(db)
}

func initializeTemplate(ctx context.Context) error {
	c, err := integresql.DefaultClientFromEnv()
	if err != nil {
		return err
	}
	client = c

	h, err := migrationsHash()
	if err != nil {
		return err
	}
	hash = h

	return client.SetupTemplateWithDBClient(ctx, hash, func(db *sql.DB) error {
		_, err := migrations.Apply(db)
		return err
	})
}

func migrationsHash() (string, error) {
	entries, err := fs.ReadDir(migrations.Migrations, ".")
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	sort.Strings(names)

	h := md5.New() //nolint:gosec
	for _, name := range names {
		content, err := fs.ReadFile(migrations.Migrations, name)
		if err != nil {
			return "", err
		}

		h.Write([]byte(name))
		h.Write(content)
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}
