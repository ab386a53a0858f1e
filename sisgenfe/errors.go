package sisgenfe

import (
	"errors"
	"fmt"
	"net/http"
)

// Erros sentinela para as duas categorias de falha do cliente
var (
	// ErrTransport indica falha de rede ou status HTTP fora da faixa 2xx
	ErrTransport = errors.New("sisgenfe: erro de transporte")

	// ErrDecode indica que a resposta não é um JSON válido
	ErrDecode = errors.New("sisgenfe: erro ao decodificar resposta")
)

// TransportError representa uma falha ao montar ou enviar a requisição (rede,
// URL inválida, body não serializável)
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("erro na requisição HTTP %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrTransport)
func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// APIError representa uma resposta da API com status diferente de 2xx
type APIError struct {
	Method     string
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("erro da API: %s %s: status %d - %s", e.Method, e.URL, e.StatusCode, e.Body)
	}
	return fmt.Sprintf("erro da API: %s %s: status %d", e.Method, e.URL, e.StatusCode)
}

// Is permite errors.Is(err, ErrTransport)
func (e *APIError) Is(target error) bool { return target == ErrTransport }

// DecodeError representa um corpo de resposta que não pôde ser decodificado
type DecodeError struct {
	Path string
	Body []byte
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("erro ao decodificar resposta de %s: %v", e.Path, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrDecode)
func (e *DecodeError) Is(target error) bool { return target == ErrDecode }

// IsTransport retorna true se o erro veio da camada HTTP (rede ou status)
func IsTransport(err error) bool {
	return errors.Is(err, ErrTransport)
}

// IsDecode retorna true se a resposta não era um JSON válido
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

// StatusCode retorna o status HTTP de um APIError, ou 0
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound retorna true se a API respondeu 404
func IsNotFound(err error) bool {
	return StatusCode(err) == http.StatusNotFound
}

// IsUnauthorized retorna true se o token foi rejeitado.
// O chamador deve autenticar novamente e criar um novo Client.
func IsUnauthorized(err error) bool {
	code := StatusCode(err)
	return code == http.StatusUnauthorized || code == http.StatusForbidden
}

// IsRateLimited retorna true se a API respondeu 429
func IsRateLimited(err error) bool {
	return StatusCode(err) == http.StatusTooManyRequests
}

// IsServerError retorna true se o erro é do servidor (5xx)
func IsServerError(err error) bool {
	return StatusCode(err) >= 500
}
