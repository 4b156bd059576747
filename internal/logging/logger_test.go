package logging_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Click-facil/fitclick/internal/config"
	"github.com/Click-facil/fitclick/internal/logging"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetLevel(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, logging.GetLevel("DEBUG"))
	assert.Equal(t, logrus.WarnLevel, logging.GetLevel("warning"))
	assert.Equal(t, logrus.InfoLevel, logging.GetLevel("nonsense"))
}

func TestSetup_WritesRotatedFile(t *testing.T) {
	defer func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
	}()

	path := filepath.Join(t.TempDir(), "fitclick")
	closer := logging.Setup(config.LogConfig{Level: "debug", File: path, JSON: true})

	logrus.Debug("hello from the test")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path + ".log")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"hello from the test"`)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())
}
