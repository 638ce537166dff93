// A shared test server setup utility, which simplifies all API tests.

package testutil

import (
	"database/sql"
	"testing"

	"github.com/arjunrn/binge-go/internal/config"
	"github.com/arjunrn/binge-go/internal/core"
)

// SetupTestApp builds a core.App with an in-memory database and a default
// configuration. Tests that scrape mutate the config's upstream URLs before
// constructing the API server.
func SetupTestApp(t *testing.T) *core.App {
	t.Helper()

	cfg := &config.Config{}
	cfg.Scraper.TimeoutSeconds = 10
	cfg.Scraper.Blacklist = []string{"doodstream", "mixdrop", "mp4upload"}
	cfg.Cache.Size = 32
	cfg.Cache.TTLMinutes = 1

	return &core.App{
		Config: cfg,
		DB:     SetupTestDB(t),
	}
}

// SetupTestDBAndApp is a convenience wrapper for tests that need direct
// database access alongside the app.
func SetupTestDBAndApp(t *testing.T) (*core.App, *sql.DB) {
	t.Helper()
	app := SetupTestApp(t)
	return app, app.DB
}
