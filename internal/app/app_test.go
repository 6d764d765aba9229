package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/fx"
)

func TestModuleGraphResolves(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("DB_WRITER_DSN", "file:app_graph?mode=memory&cache=shared")
	t.Setenv("OBS_ENABLE_METRICS", "false")
	t.Setenv("OBS_ENABLE_TRACING", "false")

	assert.NoError(t, fx.ValidateApp(Module))
}
