package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
	SetDefaults()
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	resetViper(t)

	cfg, err := Load[Full]()
	require.NoError(t, err)

	assert.Equal(t, DefaultSecret, cfg.OnlyOffice.Secret)
	assert.True(t, cfg.OnlyOffice.AllowPrivateIP)
	assert.True(t, cfg.OnlyOffice.AllowMetaIP)
	assert.True(t, cfg.OnlyOffice.UseUnauthorizedStorage)
	assert.True(t, cfg.OnlyOffice.JWTEnabled)

	assert.Equal(t, "onlyoffice-documentserver", cfg.Container.Name)
	assert.Equal(t, "onlyoffice/documentserver:latest", cfg.Container.Image)
	assert.Equal(t, uint(8080), cfg.Container.HostPort)
	assert.Equal(t, "http://localhost:8080", cfg.Container.ServerURL())
}

func TestLoad_FromFile(t *testing.T) {
	resetViper(t)

	path := writeConfigFile(t, `{
		"onlyoffice": {
			"secret": "abc123",
			"allow_private_ip": false,
			"allow_meta_ip": true,
			"use_unauthorized_storage": false,
			"jwt_enabled": true
		}
	}`)
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := Load[Full]()
	require.NoError(t, err)

	assert.Equal(t, "abc123", cfg.OnlyOffice.Secret)
	assert.False(t, cfg.OnlyOffice.AllowPrivateIP)
	assert.True(t, cfg.OnlyOffice.AllowMetaIP)
	assert.False(t, cfg.OnlyOffice.UseUnauthorizedStorage)
	assert.True(t, cfg.OnlyOffice.JWTEnabled)

	// sections absent from the file keep their defaults
	assert.Equal(t, "onlyoffice-documentserver", cfg.Container.Name)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	resetViper(t)

	path := writeConfigFile(t, `{"onlyoffice": {"secret": "filesecret"}}`)
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	cfg, err := Load[Full]()
	require.NoError(t, err)

	assert.Equal(t, "filesecret", cfg.OnlyOffice.Secret)
	assert.True(t, cfg.OnlyOffice.JWTEnabled)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	resetViper(t)

	// mirror the environment wiring the root command sets up
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.SetEnvPrefix("DSCTL")

	path := writeConfigFile(t, `{"onlyoffice": {"secret": "filesecret"}}`)
	viper.SetConfigFile(path)
	require.NoError(t, viper.ReadInConfig())

	t.Setenv("DSCTL_ONLYOFFICE_SECRET", "envsecret")
	t.Setenv("DSCTL_CONTAINER_HOST_PORT", "9443")

	cfg, err := Load[Full]()
	require.NoError(t, err)

	assert.Equal(t, "envsecret", cfg.OnlyOffice.Secret)
	assert.Equal(t, uint(9443), cfg.Container.HostPort)
}

func TestLoad_MalformedFileFailsFast(t *testing.T) {
	resetViper(t)

	path := writeConfigFile(t, `{"onlyoffice": {`)
	viper.SetConfigFile(path)
	assert.Error(t, viper.ReadInConfig())
}

func TestDocumentServer_Validate(t *testing.T) {
	t.Run("missing secret", func(t *testing.T) {
		cfg := DocumentServer{}
		assert.Error(t, cfg.Validate())
	})

	t.Run("valid", func(t *testing.T) {
		cfg := DocumentServer{Secret: "s3cret"}
		assert.NoError(t, cfg.Validate())
	})
}

func TestContainer_Validate(t *testing.T) {
	valid := Container{
		Name:     "onlyoffice-documentserver",
		Image:    "onlyoffice/documentserver:latest",
		Host:     "localhost",
		HostPort: 8080,
	}

	t.Run("valid", func(t *testing.T) {
		assert.NoError(t, valid.Validate())
	})

	t.Run("missing image", func(t *testing.T) {
		cfg := valid
		cfg.Image = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("port out of range", func(t *testing.T) {
		cfg := valid
		cfg.HostPort = 90000
		assert.Error(t, cfg.Validate())
	})
}

func TestContainer_URLs(t *testing.T) {
	cfg := Container{Host: "10.0.51.143", HostPort: 8080}
	assert.Equal(t, "http://10.0.51.143:8080", cfg.ServerURL())
	assert.Equal(t, "http://10.0.51.143:8080/healthcheck", cfg.HealthcheckURL())
}
