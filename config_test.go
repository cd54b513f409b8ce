package main

import (
	"testing"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfigDefaults(t *testing.T) {
	c, err := parseConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8888", c.listen)
	assert.Equal(t, log.InfoLevel, c.logLevel)
	assert.Equal(t, 5*time.Second, c.tick)
	assert.Equal(t, 5.0, c.lowRange)
	assert.False(t, c.cpuprofile)
}

func TestParseConfigFlags(t *testing.T) {
	c, err := parseConfig([]string{
		"-listen", ":9000",
		"-log-level", "debug",
		"-tick", "0",
		"-low-range", "12.5",
		"-xmpp-jid", "bot@example.org",
	})
	require.NoError(t, err)

	assert.Equal(t, ":9000", c.listen)
	assert.Equal(t, log.DebugLevel, c.logLevel)
	assert.Equal(t, time.Duration(0), c.tick)
	assert.Equal(t, 12.5, c.lowRange)
	assert.Equal(t, "bot@example.org", c.xmpp.Jid)
}

func TestParseConfigEnv(t *testing.T) {
	t.Setenv("XMPP_TO", "ops@example.org")

	c, err := parseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.org", c.xmpp.To)
}

func TestParseConfigBadLevel(t *testing.T) {
	_, err := parseConfig([]string{"-log-level", "loud"})
	assert.Error(t, err)
}
