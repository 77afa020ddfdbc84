package app

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/figtrack/figtrack"
	"github.com/figtrack/figtrack/pkg/reconcile"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Chdir(t.TempDir()) // away from any real .figtrack.yaml or .env

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, figtrack.DefaultStorePath, config.CatalogPath)
	assert.Equal(t, figtrack.DefaultCacheTTL, config.CacheTTL())
	assert.Equal(t, reconcile.DefaultMinSimilarity, config.MinSimilarity)
	assert.Equal(t, reconcile.DefaultBackfillThreshold, config.BackfillThreshold)
}

func TestConfigCacheTTL(t *testing.T) {
	c := Config{CacheHours: 12}
	assert.Equal(t, 12*time.Hour, c.CacheTTL())
}

func TestUpdateFromFlags(t *testing.T) {
	c := Config{}
	c.UpdateFromFlags(true, false, true)

	assert.True(t, c.Verbose)
	assert.False(t, c.Quiet)
	assert.True(t, c.NoColor)
}
