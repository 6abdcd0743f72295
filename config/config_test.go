package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	cfg, err := InitConfig()

	require.NoError(t, err)
	assert.Equal(t, "8000", cfg.Server.HTTPPort)
	assert.Equal(t, 60*time.Second, cfg.Server.Timeout)
	assert.Equal(t, "9090", cfg.Handlers.Prometheus.Port)
	assert.Equal(t, "https://maps.googleapis.com/maps/api", cfg.Places.BaseURL)
	assert.Equal(t, 1000, cfg.Places.DefaultRadius)
	assert.Equal(t, 1500, cfg.Crawl.SearchRadius)
	assert.Equal(t, 10, cfg.Crawl.MaxWaitTimeLookups)
}
