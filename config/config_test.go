package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadFromFile(t *testing.T) {
	cfg, err := Load("./config.yml")
	require.NoError(t, err, "error must be nil.")
	require.Equal(t, ":8000", cfg.HTTPServer.Address)
	require.Equal(t, "fs", cfg.Media.Backend)
	require.Equal(t, "emogo_db", cfg.DBConfig.DBName)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("./no-such-config.yml")
	require.Error(t, err)
}

func TestBasicCheckRejectsUnknownBackend(t *testing.T) {
	cfg := &Config{
		HTTPServer: HTTPServerConfig{Address: ":8000"},
	}
	cfg.Media.Backend = "ftp"

	require.Error(t, cfg.basicCheck())
}
