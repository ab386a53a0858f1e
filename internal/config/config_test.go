package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv zera as variáveis lidas por Load durante o teste
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"SISGENFE_APP", "SISGENFE_PRESTADOR", "SISGENFE_USERNAME", "SISGENFE_PASSWORD",
		"SISGENFE_TOKEN", "SISGENFE_BASE_URL", "SISGENFE_TIMEOUT",
		"SISGENFE_CERTIFICATE_PATH", "SISGENFE_CERTIFICATE_PASSWORD",
		"SISGENFE_RATE_LIMIT", "SISGENFE_DEBUG",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoad_Credentials(t *testing.T) {
	clearEnv(t)
	t.Setenv("SISGENFE_APP", "app")
	t.Setenv("SISGENFE_PRESTADOR", "42")
	t.Setenv("SISGENFE_USERNAME", "joao")
	t.Setenv("SISGENFE_PASSWORD", "segredo")
	t.Setenv("SISGENFE_TIMEOUT", "5s")
	t.Setenv("SISGENFE_RATE_LIMIT", "2.5")

	cfg, err := Load(filepath.Join(t.TempDir(), "nao-existe.env"))
	require.NoError(t, err)

	assert.Equal(t, "https://nota.systemainformatica.com.br/api/", cfg.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 2.5, cfg.RateLimit)
	assert.False(t, cfg.HasToken())
	assert.False(t, cfg.HasCertificate())

	creds := cfg.Credentials()
	assert.Equal(t, "app", creds.App)
	assert.Equal(t, "42", creds.Prestador)
	assert.Equal(t, "joao", creds.Username)
	assert.Equal(t, "segredo", creds.Password)
}

func TestLoad_TokenOnly(t *testing.T) {
	clearEnv(t)
	t.Setenv("SISGENFE_TOKEN", "Bearer abc")

	cfg, err := Load(filepath.Join(t.TempDir(), "nao-existe.env"))
	require.NoError(t, err)
	assert.True(t, cfg.HasToken())
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoad_DotEnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("SISGENFE_TOKEN=Bearer do-arquivo\nSISGENFE_DEBUG=true\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Bearer do-arquivo", cfg.Token)
	assert.True(t, cfg.Debug)
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"nothing configured", map[string]string{}},
		{"missing prestador", map[string]string{"SISGENFE_APP": "a", "SISGENFE_USERNAME": "u", "SISGENFE_PASSWORD": "p"}},
		{"missing password", map[string]string{"SISGENFE_APP": "a", "SISGENFE_PRESTADOR": "1", "SISGENFE_USERNAME": "u"}},
		{"negative rate limit", map[string]string{"SISGENFE_TOKEN": "Bearer x", "SISGENFE_RATE_LIMIT": "-1"}},
		{"invalid timeout", map[string]string{"SISGENFE_TOKEN": "Bearer x", "SISGENFE_TIMEOUT": "depois"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			cfg, err := Load(filepath.Join(t.TempDir(), "nao-existe.env"))
			assert.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}

func TestLoad_IgnoresUnprefixedVariables(t *testing.T) {
	clearEnv(t)
	t.Setenv("TOKEN", "Bearer vazado")
	t.Setenv("USERNAME", "outro-usuario")
	t.Setenv("PASSWORD", "outra-senha")
	t.Setenv("TIMEOUT", "1s")
	t.Setenv("DEBUG", "true")
	t.Setenv("BASE_URL", "http://outro-host/")

	_, err := Load(filepath.Join(t.TempDir(), "nao-existe.env"))
	require.Error(t, err)

	t.Setenv("SISGENFE_APP", "app")
	t.Setenv("SISGENFE_PRESTADOR", "7")
	t.Setenv("SISGENFE_USERNAME", "joao")
	t.Setenv("SISGENFE_PASSWORD", "segredo")

	cfg, err := Load(filepath.Join(t.TempDir(), "nao-existe.env"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Token)
	assert.Equal(t, "joao", cfg.Username)
	assert.Equal(t, "segredo", cfg.Password)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "https://nota.systemainformatica.com.br/api/", cfg.BaseURL)
}

func TestLoad_SplitWordsKeys(t *testing.T) {
	clearEnv(t)
	t.Setenv("SISGENFE_TOKEN", "Bearer abc")
	t.Setenv("SISGENFE_BASE_URL", "http://localhost:8080/api")
	t.Setenv("SISGENFE_CERTIFICATE_PATH", "/tmp/cliente.pfx")
	t.Setenv("SISGENFE_CERTIFICATE_PASSWORD", "senha")

	cfg, err := Load(filepath.Join(t.TempDir(), "nao-existe.env"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.BaseURL)
	assert.Equal(t, "/tmp/cliente.pfx", cfg.CertificatePath)
	assert.Equal(t, "senha", cfg.CertificatePassword)
	assert.True(t, cfg.HasCertificate())
}

func TestRequireCredentials(t *testing.T) {
	cfg := &Config{Token: "Bearer abc"}
	assert.NoError(t, cfg.validate())
	assert.EqualError(t, cfg.RequireCredentials(), "SISGENFE_APP é obrigatório para o login")

	cfg = &Config{App: "a", Prestador: "1", Username: "u", Password: "p"}
	assert.NoError(t, cfg.RequireCredentials())
}
