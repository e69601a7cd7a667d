package internal

import (
	"group-chat/errors"
	"testing"

	"github.com/Netflix/go-env"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	req := require.New(t)
	config, err := Load(env.EnvSet{})
	req.NoError(err)

	req.Equal("Matteo", config.Username)
	req.Equal("230.19.6.5", config.GroupAddress)
	req.Equal(19065, config.GroupPort)
	req.False(config.Logging)
	req.Equal(1, config.MulticastTTL)
	req.NoError(config.Validate())
}

func TestLoad_From_Environment(t *testing.T) {
	req := require.New(t)
	config, err := Load(env.EnvSet{
		"CHAT_USERNAME":      "alice",
		"CHAT_GROUP_ADDRESS": "239.1.2.3",
		"CHAT_GROUP_PORT":    "4000",
		"CHAT_LOGGING":       "true",
		"LOG_LEVEL":          "INFO",
	})
	req.NoError(err)
	req.Equal("alice", config.Username)
	req.Equal("239.1.2.3", config.GroupAddress)
	req.Equal(4000, config.GroupPort)
	req.True(config.Logging)
	req.NoError(config.Validate())

	_, err = Load(env.EnvSet{"CHAT_GROUP_PORT": "many"})
	req.ErrorIs(err, errors.ErrInvalidArgument)
}

func TestConfig_ApplyArgs(t *testing.T) {
	req := require.New(t)
	config, err := Load(env.EnvSet{})
	req.NoError(err)

	req.NoError(config.ApplyArgs(nil))
	req.Equal("Matteo", config.Username)

	req.NoError(config.ApplyArgs([]string{"bob", "230.0.0.9", "5000", "true"}))
	req.Equal("bob", config.Username)
	req.Equal("230.0.0.9", config.GroupAddress)
	req.Equal(5000, config.GroupPort)
	req.True(config.Logging)

	req.ErrorIs(config.ApplyArgs([]string{"bob"}), errors.ErrInvalidArgument)
	req.ErrorIs(config.ApplyArgs([]string{"bob", "230.0.0.9", "port", "true"}), errors.ErrInvalidArgument)
	req.ErrorIs(config.ApplyArgs([]string{"bob", "230.0.0.9", "5000", "maybe"}), errors.ErrInvalidArgument)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		config, err := Load(env.EnvSet{})
		require.NoError(t, err)
		return config
	}

	testCases := []struct {
		name   string
		mutate func(c *Config)
		want   error
	}{
		{"unicast group address", func(c *Config) { c.GroupAddress = "192.168.0.1" }, errors.ErrInvalidMulticast},
		{"not an address", func(c *Config) { c.GroupAddress = "group" }, errors.ErrInvalidArgument},
		{"port zero", func(c *Config) { c.GroupPort = 0 }, errors.ErrInvalidArgument},
		{"port too high", func(c *Config) { c.GroupPort = 70000 }, errors.ErrInvalidArgument},
		{"blank username", func(c *Config) { c.Username = "" }, errors.ErrInvalidArgument},
		{"separator in username", func(c *Config) { c.Username = "a|b" }, errors.ErrInvalidArgument},
		{"unknown log level", func(c *Config) { c.LogLevel = "LOUD" }, errors.ErrInvalidArgument},
		{"bad unicast address", func(c *Config) { c.UnicastAddress = "anywhere" }, errors.ErrInvalidArgument},
		{"bad debug address", func(c *Config) { c.DebugAddress = "8090" }, errors.ErrInvalidArgument},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			config := valid()
			tc.mutate(&config)
			require.ErrorIs(t, config.Validate(), tc.want)
		})
	}
}
