package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Run("overrides only what is set", func(t *testing.T) {
		t.Setenv("PROJECTHUB_DATABASE_DSN", "postgres://env")
		t.Setenv("PROJECTHUB_BCRYPT_COST", "12")
		t.Setenv("PROJECTHUB_ACCESS_TOKEN_TTL", "45m")

		c := &Config{SecretKey: "keep", LogLevel: "debug"}
		parseEnv(c)

		assert.Equal(t, "postgres://env", c.DatabaseDSN)
		assert.Equal(t, 12, c.BcryptCost)
		assert.Equal(t, 45*time.Minute, c.AccessTokenValidityDuration)
		assert.Equal(t, "keep", c.SecretKey)
		assert.Equal(t, "debug", c.LogLevel)
	})

	t.Run("malformed value panics", func(t *testing.T) {
		t.Setenv("PROJECTHUB_BCRYPT_COST", "lots")

		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
