package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DATA_FILE_PATH", "")
	t.Setenv("DATA_BASE_DIR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("LOG_FORMAT", "")

	cfg, err := Load()
	require.NoError(t, err)

	wd, err := os.Getwd()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "data.json", cfg.Data.FilePath)
	assert.Equal(t, wd, cfg.Data.BaseDir)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadServerAddr(t *testing.T) {
	cases := []struct {
		name string
		port string
		want string
	}{
		{"bare port", "3000", ":3000"},
		{"colon prefixed", ":9090", ":9090"},
		{"host and port", "127.0.0.1:8080", "127.0.0.1:8080"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PORT", tc.port)
			cfg, err := Load()
			require.NoError(t, err)
			assert.Equal(t, tc.want, cfg.Server.Addr)
		})
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	t.Setenv("PORT", "80 80")
	_, err := Load()
	assert.Error(t, err)
}

func TestDataFilePathReRead(t *testing.T) {
	t.Setenv("DATA_FILE_PATH", "one.json")
	assert.Equal(t, "one.json", DataFilePath())

	t.Setenv("DATA_FILE_PATH", "two.json")
	assert.Equal(t, "two.json", DataFilePath())
}

func TestLoadDataOverrides(t *testing.T) {
	t.Setenv("DATA_FILE_PATH", "records/schools.json")
	t.Setenv("DATA_BASE_DIR", "/srv/dataserve")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "records/schools.json", cfg.Data.FilePath)
	assert.Equal(t, "/srv/dataserve", cfg.Data.BaseDir)
}
