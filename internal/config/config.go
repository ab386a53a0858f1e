// Package config gerencia as configurações do CLI
// carregando variáveis de ambiente do arquivo .env
package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/deltagestor/sisgenfe/sisgenfe"
)

// envPrefix é o prefixo das variáveis de ambiente (SISGENFE_APP, ...)
const envPrefix = "sisgenfe"

// Config armazena todas as configurações do CLI
type Config struct {
	// Credenciais de login
	App       string
	Prestador string
	Username  string
	Password  string

	// Token já obtido (com prefixo "Bearer "); dispensa o login
	Token string

	// Webservice
	BaseURL string        `split_words:"true" default:"https://nota.systemainformatica.com.br/api/"`
	Timeout time.Duration `default:"30s"`

	// Certificado A1 opcional para mTLS
	CertificatePath     string `split_words:"true"`
	CertificatePassword string `split_words:"true"`

	// Requisições por segundo (0 = sem limite)
	RateLimit float64 `split_words:"true" default:"0"`

	Debug bool `default:"false"`
}

// Load carrega as configurações do arquivo .env e variáveis de ambiente.
// O arquivo .env é opcional; variáveis de ambiente têm prioridade.
func Load(files ...string) (*Config, error) {
	// Tenta carregar .env (ignora erro se não existir)
	_ = godotenv.Load(files...)

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("erro ao ler variáveis de ambiente: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate exige um token ou o conjunto completo de credenciais
func (c *Config) validate() error {
	if c.RateLimit < 0 {
		return fmt.Errorf("SISGENFE_RATE_LIMIT não pode ser negativo")
	}
	if c.Token != "" {
		return nil
	}
	return c.RequireCredentials()
}

// RequireCredentials exige APP, PRESTADOR, USERNAME e PASSWORD, mesmo com token
func (c *Config) RequireCredentials() error {
	if c.App == "" {
		return fmt.Errorf("SISGENFE_APP é obrigatório para o login")
	}
	if c.Prestador == "" {
		return fmt.Errorf("SISGENFE_PRESTADOR é obrigatório para o login")
	}
	if c.Username == "" || c.Password == "" {
		return fmt.Errorf("SISGENFE_USERNAME e SISGENFE_PASSWORD são obrigatórios para o login")
	}
	return nil
}

// Credentials retorna as credenciais de login
func (c *Config) Credentials() sisgenfe.Credentials {
	return sisgenfe.Credentials{
		App:       c.App,
		Prestador: c.Prestador,
		Username:  c.Username,
		Password:  c.Password,
	}
}

// HasToken retorna true se um token foi configurado
func (c *Config) HasToken() bool {
	return c.Token != ""
}

// HasCertificate retorna true se um certificado A1 foi configurado
func (c *Config) HasCertificate() bool {
	return c.CertificatePath != ""
}
