package app

import (
	"testing"

	"go-gin-parking/config"

	"github.com/stretchr/testify/assert"
)

func TestValidateDrivers(t *testing.T) {
	cases := []struct {
		name    string
		cfg     config.ServerConfig
		wantErr bool
	}{
		{"redis everywhere", config.ServerConfig{QueueDriver: "redis", SpotPool: "redis"}, false},
		{"memory queue with db pool", config.ServerConfig{QueueDriver: "memory", SpotPool: "db"}, false},
		{"unknown queue", config.ServerConfig{QueueDriver: "kafka", SpotPool: "db"}, true},
		{"unknown pool", config.ServerConfig{QueueDriver: "memory", SpotPool: "memcached"}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := validateDrivers(tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNeedsRedis(t *testing.T) {
	assert.True(t, needsRedis(config.ServerConfig{QueueDriver: "redis", SpotPool: "db"}))
	assert.True(t, needsRedis(config.ServerConfig{QueueDriver: "memory", SpotPool: "redis"}))
	assert.False(t, needsRedis(config.ServerConfig{QueueDriver: "memory", SpotPool: "db"}))
}
