// Package testutil provides in-memory databases for repository tests.
package testutil

import (
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/aymanabdelsalam/ai-summarized-rss/internal/db"
	"github.com/aymanabdelsalam/ai-summarized-rss/pkg/snowflake"

	_ "modernc.org/sqlite"
)

// snowflakeOnce makes sure the ID node is initialized once across parallel tests.
var snowflakeOnce sync.Once

// NewTestDB creates an in-memory SQLite database with the schema applied.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	snowflakeOnce.Do(func() {
		if err := snowflake.Init(0); err != nil {
			// t.Fatalf is not usable inside sync.Once
			panic("failed to initialize snowflake: " + err.Error())
		}
	})

	// Shared cache so the pooled connections see the same memory database;
	// a unique name per test avoids cross-test bleed.
	dbName := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", t.Name(), time.Now().UnixNano())
	database, err := sql.Open("sqlite", dbName)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.Migrate(database); err != nil {
		database.Close()
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		database.Close()
	})

	return database
}
