package logging

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParsesLevel(t *testing.T) {
	logger, cleanup, err := New("warn", "")
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, logrus.WarnLevel, logger.GetLevel())
}

func TestNewFallsBackToInfo(t *testing.T) {
	logger, cleanup, err := New("loud", "")
	require.NoError(t, err)
	defer cleanup()

	assert.Equal(t, logrus.InfoLevel, logger.GetLevel())
}

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")

	logger, cleanup, err := New("info", path)
	require.NoError(t, err)

	logger.WithField("email", "client@example.com").Info("booking created")
	cleanup()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"booking created"`)
	assert.Contains(t, string(data), `"email":"client@example.com"`)
}
