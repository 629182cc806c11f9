package test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	"github/kontos/connect/internal/api"
	"github/kontos/connect/internal/api/router"
	"github/kontos/connect/internal/config"
)

// WithTestServer returns a fully initialized server bound to an isolated test
// database, configured from the environment.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerConfigurable(t, config.DefaultServiceConfigFromEnv(), closure)
}

// WithTestServerConfigurable is WithTestServer with a caller supplied config.
func WithTestServerConfigurable(t *testing.T, config config.Server, closure func(s *api.Server)) {
	t.Helper()

	WithTestDatabase(t, func(db *sql.DB) {
		t.Helper()
		execClosureNewTestServer(t, config, db, closure)
	})
}

func execClosureNewTestServer(t *testing.T, config config.Server, db *sql.DB, closure func(s *api.Server)) {
	t.Helper()

	// Echo is never started, requests are served directly via ServeHTTP.
	config.Echo.ListenAddress = ":0"

	s, err := api.InitNewServerWithDB(config, db)
	require.NoError(t, err, "failed to init test server")

	router.Init(s)

	closure(s)
}
