package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.Nil(t, err)
	require.Nil(t, os.Chdir(dir))
	defer func() {
		_ = os.Chdir(wd)
		_ = os.Unsetenv("BACKEND_URL")
		Conf = nil
	}()
	require.Nil(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("BACKEND_URL=http://backend:5000\nCHART_WIDTH=800\n"), 0o600))
	t.Setenv("CHART_WIDTH", "700")

	Conf = nil
	InitConfig()
	require.Equal(t, "http://backend:5000", Conf.Backend.BaseURL)
	require.Equal(t, 700, Conf.Charts.Width)
	require.Equal(t, 400, Conf.Charts.Height)
	require.Equal(t, 250, Conf.Print.DelayMs)
	require.False(t, *Conf.S3.Enabled)
}
