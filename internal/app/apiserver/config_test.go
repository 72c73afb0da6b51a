package apiserver

import (
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_DecodeTOML(t *testing.T) {
	config := NewConfig()
	_, err := toml.Decode(`
bind_addr = ":9090"
store = "redis"
jwtsignkey = "k"

[Redis]
addr = "redis:6379"
db = 2
`, config)
	require.NoError(t, err)

	assert.Equal(t, ":9090", config.BindAddr)
	assert.Equal(t, "debug", config.LogLevel)
	assert.Equal(t, "redis", config.Store)
	assert.Equal(t, "k", config.JwtSignKey)
	assert.Equal(t, Redis{Addr: "redis:6379", DB: 2}, config.Redis)
	assert.Empty(t, config.NotificationURL)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		c := NewConfig()
		c.JwtSignKey = "k"
		return c
	}

	assert.NoError(t, valid().Validate())

	testCases := []struct {
		name   string
		modify func(*Config)
	}{
		{name: "no sign key", modify: func(c *Config) { c.JwtSignKey = "" }},
		{name: "unknown store", modify: func(c *Config) { c.Store = "cassandra" }},
		{name: "postgres without url", modify: func(c *Config) { c.Store = "postgres" }},
		{name: "bad notification url", modify: func(c *Config) { c.NotificationURL = "not a url" }},
		{name: "no bind addr", modify: func(c *Config) { c.BindAddr = "" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := valid()
			tc.modify(c)
			assert.Error(t, c.Validate())
		})
	}

	c := valid()
	c.NotificationURL = "http://localhost:3078"
	assert.NoError(t, c.Validate())
}
