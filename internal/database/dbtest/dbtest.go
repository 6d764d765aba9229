// Package dbtest opens isolated in-memory sqlite databases with the storehouse
// schema for tests.
package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Additional-Code/storehouse/internal/config"
	"github.com/Additional-Code/storehouse/internal/database"
)

var seq atomic.Int64

// Open returns connections to a fresh in-memory database that is closed when the
// test finishes.
func Open(t testing.TB) *database.Connections {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, seq.Add(1))

	conns, err := database.Open(config.Database{
		Driver:       "sqlite",
		WriterDSN:    dsn,
		MaxOpenConns: 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = conns.Close() })

	require.NoError(t, database.CreateSchema(context.Background(), conns.Writer))
	return conns
}
