package sisgenfe

import (
	"net/http"
	"net/http/httputil"
	"os"

	"github.com/rs/zerolog"
)

// debugTransport registra requisições e respostas com zerolog.
//
// Ative com WithDebugLogging(true) ou com SISGENFE_DEBUG=true / DEBUG=true.
// O header Authorization é mascarado, mas os corpos são registrados
// integralmente (inclusive a senha enviada no login). Não use em produção.
type debugTransport struct {
	base   http.RoundTripper
	logger zerolog.Logger
}

func (dt *debugTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if reqDump, err := httputil.DumpRequestOut(redactedCopy(req), true); err == nil {
		dt.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Str("request_dump", string(reqDump)).
			Msg("HTTP request")
	}

	resp, err := dt.base.RoundTrip(req)
	if err != nil {
		dt.logger.Error().Err(err).
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Msg("HTTP request failed")
		return nil, err
	}

	if respDump, err := httputil.DumpResponse(resp, true); err == nil {
		dt.logger.Debug().
			Str("method", req.Method).
			Str("url", req.URL.String()).
			Int("status_code", resp.StatusCode).
			Str("response_dump", string(respDump)).
			Msg("HTTP response")
	}
	return resp, nil
}

// redactedCopy clona a requisição com o token mascarado.
// O body é reaberto via GetBody para não consumir o original.
func redactedCopy(req *http.Request) *http.Request {
	cloned := req.Clone(req.Context())
	cloned.Body = nil
	cloned.ContentLength = 0
	if req.Body != nil && req.GetBody != nil {
		if body, err := req.GetBody(); err == nil {
			cloned.Body = body
			cloned.ContentLength = req.ContentLength
		}
	}
	if cloned.Header.Get(headerAuthorization) != "" {
		cloned.Header.Set(headerAuthorization, "[REDACTED]")
	}
	return cloned
}

// debugLoggingRequested verifica se o log HTTP foi pedido via ambiente
func debugLoggingRequested() bool {
	return os.Getenv("SISGENFE_DEBUG") == "true" || os.Getenv("DEBUG") == "true"
}
