package sisgenfe

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorClassification(t *testing.T) {
	netErr := &TransportError{Method: "POST", URL: "https://x/login", Err: errors.New("connection refused")}
	decErr := &DecodeError{Path: "cnae", Body: []byte("<html>"), Err: errors.New("invalid character")}

	tests := []struct {
		name          string
		err           error
		transport     bool
		decode        bool
		notFound      bool
		unauthorized  bool
		rateLimited   bool
		serverError   bool
		wantStatusErr int
	}{
		{name: "network failure", err: netErr, transport: true},
		{name: "wrapped network failure", err: fmt.Errorf("cnaes: %w", netErr), transport: true},
		{name: "decode error", err: decErr, decode: true},
		{name: "404", err: &APIError{StatusCode: 404}, transport: true, notFound: true, wantStatusErr: 404},
		{name: "401", err: &APIError{StatusCode: 401}, transport: true, unauthorized: true, wantStatusErr: 401},
		{name: "403", err: &APIError{StatusCode: 403}, transport: true, unauthorized: true, wantStatusErr: 403},
		{name: "429", err: &APIError{StatusCode: 429}, transport: true, rateLimited: true, wantStatusErr: 429},
		{name: "502", err: &APIError{StatusCode: 502}, transport: true, serverError: true, wantStatusErr: 502},
		{name: "400", err: &APIError{StatusCode: 400}, transport: true, wantStatusErr: 400},
		{name: "other error", err: errors.New("x")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.transport, IsTransport(tt.err), "IsTransport")
			assert.Equal(t, tt.decode, IsDecode(tt.err), "IsDecode")
			assert.Equal(t, tt.notFound, IsNotFound(tt.err), "IsNotFound")
			assert.Equal(t, tt.unauthorized, IsUnauthorized(tt.err), "IsUnauthorized")
			assert.Equal(t, tt.rateLimited, IsRateLimited(tt.err), "IsRateLimited")
			assert.Equal(t, tt.serverError, IsServerError(tt.err), "IsServerError")
			assert.Equal(t, tt.wantStatusErr, StatusCode(tt.err), "StatusCode")
		})
	}
}

func TestErrorMessages(t *testing.T) {
	assert.Equal(t,
		"erro da API: POST https://x/nfs: status 422 - numero inválido",
		(&APIError{Method: "POST", URL: "https://x/nfs", StatusCode: 422, Body: "numero inválido"}).Error(),
	)
	assert.Equal(t,
		"erro da API: GET https://x/cnae: status 500",
		(&APIError{Method: "GET", URL: "https://x/cnae", StatusCode: 500}).Error(),
	)
	assert.Equal(t,
		"erro ao decodificar resposta de cnae: boom",
		(&DecodeError{Path: "cnae", Err: errors.New("boom")}).Error(),
	)
}
