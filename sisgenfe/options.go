package sisgenfe

// Opções funcionais aceitas por New e Authenticate. Ficam separadas de
// client.go para que todos os ajustes possíveis fiquem visíveis em um lugar.

import (
	"crypto/tls"
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/pkcs12"
)

// Option configura o cliente durante a construção
type Option func(*options) error

// options acumula as opções antes de montar o transporte
type options struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	tlsConfig  *tls.Config
	transport  Transport
	logger     zerolog.Logger
	debug      bool
}

func newOptions(opts []Option) (*options, error) {
	o := &options{
		baseURL: BaseURL,
		logger:  log.Logger,
		debug:   debugLoggingRequested(),
	}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// WithBaseURL troca a URL base (homologação ou servidor de testes)
func WithBaseURL(baseURL string) Option {
	return func(o *options) error {
		if baseURL == "" {
			return errors.New("baseURL não pode ser vazia")
		}
		o.baseURL = baseURL
		return nil
	}
}

// WithHTTPClient usa um *http.Client próprio (proxy, rate limit, etc).
// O cliente informado não é modificado.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(o *options) error {
		if httpClient == nil {
			return errors.New("http client não pode ser nil")
		}
		o.httpClient = httpClient
		return nil
	}
}

// WithTimeout limita o tempo total de cada requisição.
// Sem esta opção vale o padrão do net/http (sem timeout).
func WithTimeout(d time.Duration) Option {
	return func(o *options) error {
		if d <= 0 {
			return fmt.Errorf("timeout deve ser > 0")
		}
		o.timeout = d
		return nil
	}
}

// WithCertificate carrega um certificado A1 (.pfx/.p12) para mTLS
func WithCertificate(certPath, password string) Option {
	return func(o *options) error {
		tlsConfig, err := loadCertificate(certPath, password)
		if err != nil {
			return fmt.Errorf("erro ao carregar certificado: %w", err)
		}
		o.tlsConfig = tlsConfig
		return nil
	}
}

// WithTransport substitui toda a camada HTTP.
// As opções de URL, http client, timeout, certificado e debug são ignoradas.
func WithTransport(t Transport) Option {
	return func(o *options) error {
		if t == nil {
			return errors.New("transport não pode ser nil")
		}
		o.transport = t
		return nil
	}
}

// WithDebugLogging registra cada requisição/resposta via zerolog
func WithDebugLogging(enabled bool) Option {
	return func(o *options) error {
		o.debug = enabled
		return nil
	}
}

// WithLogger define o logger usado pelo log de debug
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) error {
		o.logger = logger
		return nil
	}
}

// buildTransport monta o Transport final com os headers padrão
func (o *options) buildTransport(header http.Header) (Transport, error) {
	if o.transport != nil {
		return o.transport, nil
	}

	httpClient, err := o.buildHTTPClient()
	if err != nil {
		return nil, err
	}

	return NewHTTPTransport(o.baseURL, httpClient, header), nil
}

// buildHTTPClient copia o http.Client base e aplica timeout, mTLS e debug
func (o *options) buildHTTPClient() (*http.Client, error) {
	httpClient := &http.Client{}
	if o.httpClient != nil {
		copied := *o.httpClient
		httpClient = &copied
	}

	if o.timeout > 0 {
		httpClient.Timeout = o.timeout
	}

	if o.tlsConfig != nil {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		ht, ok := base.(*http.Transport)
		if !ok {
			return nil, fmt.Errorf("certificado requer *http.Transport, recebido %T", base)
		}
		ht = ht.Clone()
		ht.TLSClientConfig = o.tlsConfig
		httpClient.Transport = ht
	}

	if o.debug {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		httpClient.Transport = &debugTransport{base: base, logger: o.logger}
	}

	return httpClient, nil
}

// loadCertificate carrega um certificado .p12/.pfx para mTLS
func loadCertificate(certPath, password string) (*tls.Config, error) {
	certData, err := os.ReadFile(certPath)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler certificado: %w", err)
	}

	privateKey, certificate, err := pkcs12.Decode(certData, password)
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar certificado PKCS12: %w", err)
	}

	tlsCert := tls.Certificate{
		Certificate: [][]byte{certificate.Raw},
		PrivateKey:  privateKey,
		Leaf:        certificate,
	}

	return &tls.Config{
		Certificates: []tls.Certificate{tlsCert},
		MinVersion:   tls.VersionTLS12,
	}, nil
}
