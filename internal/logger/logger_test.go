package logger_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/pageinsights/internal/logger"
)

func TestNew(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		config logger.Config
	}{
		{name: "defaults", config: logger.Config{}},
		{name: "json encoding", config: logger.Config{Level: logger.DebugLevel, Encoding: "json"}},
		{name: "development console", config: logger.Config{Development: true}},
		{name: "unknown level falls back", config: logger.Config{Level: "verbose"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			log, err := logger.New(&tt.config)
			require.NoError(t, err)
			require.NotNil(t, log)

			// Exercise the field helpers; none of these may panic.
			log.WithComponent("test").
				WithPageID("globex").
				WithError(errors.New("boom")).
				Debug("message", "key", "value", "count", 3)
		})
	}
}

func TestNoOp(t *testing.T) {
	t.Parallel()

	log := logger.NewNoOp()
	assert.Same(t, log, log.With("key", "value"))
	assert.Same(t, log, log.WithComponent("test"))

	log.Info("never emitted", "odd-key-without-value")
}
