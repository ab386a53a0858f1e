package sisgenfe

import (
	"context"
	"net/http"
)

// Authenticate faz login e retorna o token pronto para New ("Bearer <token>").
//
// A API responde o token como texto puro, por isso o corpo não passa pelo
// decodificador JSON como nos demais endpoints. Não há controle de expiração:
// quando a API rejeitar o token (IsUnauthorized), autentique novamente.
func Authenticate(ctx context.Context, creds Credentials, opts ...Option) (string, error) {
	o, err := newOptions(opts)
	if err != nil {
		return "", err
	}

	transport, err := o.buildTransport(http.Header{})
	if err != nil {
		return "", err
	}

	respBody, err := transport.PostJSON(ctx, PathLogin, creds)
	if err != nil {
		return "", err
	}

	return bearerPrefix + string(respBody), nil
}
