package sisgenfe

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Transport é a camada HTTP usada pelo Client.
// Permite substituir a rede por um stub nos testes.
type Transport interface {
	// Get envia um GET para o caminho relativo com headers extras
	Get(ctx context.Context, path string, header http.Header) ([]byte, error)

	// PostJSON envia um POST com o body serializado em JSON
	PostJSON(ctx context.Context, path string, body interface{}) ([]byte, error)
}

// HTTPTransport implementa Transport sobre net/http.
// Os headers padrão são anexados a todas as requisições.
type HTTPTransport struct {
	baseURL    string
	httpClient *http.Client
	header     http.Header
}

// NewHTTPTransport cria um transporte para a URL base informada
func NewHTTPTransport(baseURL string, httpClient *http.Client, header http.Header) *HTTPTransport {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &HTTPTransport{
		baseURL:    strings.TrimRight(baseURL, "/") + "/",
		httpClient: httpClient,
		header:     header.Clone(),
	}
}

// Get implementa Transport
func (t *HTTPTransport) Get(ctx context.Context, path string, header http.Header) ([]byte, error) {
	return t.do(ctx, http.MethodGet, path, nil, header)
}

// PostJSON implementa Transport
func (t *HTTPTransport) PostJSON(ctx context.Context, path string, body interface{}) ([]byte, error) {
	jsonBody, err := json.Marshal(body)
	if err != nil {
		return nil, &TransportError{Method: http.MethodPost, URL: t.url(path), Err: fmt.Errorf("erro ao serializar body: %w", err)}
	}

	header := http.Header{}
	header.Set(headerContentType, contentTypeJSON)

	return t.do(ctx, http.MethodPost, path, bytes.NewReader(jsonBody), header)
}

// do executa a requisição e devolve o corpo bruto da resposta
func (t *HTTPTransport) do(ctx context.Context, method, path string, body io.Reader, header http.Header) ([]byte, error) {
	url := t.url(path)

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: fmt.Errorf("erro ao criar requisição: %w", err)}
	}

	for k, v := range t.header {
		req.Header[k] = v
	}
	for k, v := range header {
		req.Header[k] = v
	}

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		observeRequest(path, "error", time.Since(start))
		return nil, &TransportError{Method: method, URL: url, Err: err}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	observeRequest(path, strconv.Itoa(resp.StatusCode), time.Since(start))
	if err != nil {
		return nil, &TransportError{Method: method, URL: url, Err: fmt.Errorf("erro ao ler resposta: %w", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			Method:     method,
			URL:        url,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	return respBody, nil
}

func (t *HTTPTransport) url(path string) string {
	return t.baseURL + strings.TrimLeft(path, "/")
}

// Garante que HTTPTransport implementa Transport
var _ Transport = (*HTTPTransport)(nil)
