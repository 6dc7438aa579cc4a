package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("overrides from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-a", "http://10.0.0.5:8000", "-t", "30", "-s", "/tmp/s.json"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, "http://10.0.0.5:8000", cfg.APIOrigin)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
		assert.Equal(t, "/tmp/s.json", cfg.SessionFile)
	})

	t.Run("no flags keeps defaults", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseFlags(cfg)

		assert.Equal(t, "http://localhost:8000", cfg.APIOrigin)
		assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	})
}
