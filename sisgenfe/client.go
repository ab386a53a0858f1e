package sisgenfe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
)

// Client é o cliente autenticado do webservice Sisgenfe.
// Os campos são definidos em New e nunca mudam, então o mesmo
// Client pode ser usado por várias goroutines.
type Client struct {
	transport Transport
}

// New cria um cliente que envia `Authorization: <token>` em toda requisição.
// O token é o valor retornado por Authenticate (já com o prefixo "Bearer ").
func New(token string, opts ...Option) (*Client, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	header := http.Header{}
	header.Set(headerAuthorization, token)

	transport, err := o.buildTransport(header)
	if err != nil {
		return nil, err
	}

	return &Client{transport: transport}, nil
}

// post envia o body como JSON e decodifica a resposta
func (c *Client) post(ctx context.Context, path string, body interface{}) (Result, error) {
	respBody, err := c.transport.PostJSON(ctx, path, body)
	if err != nil {
		return nil, err
	}
	return decode(path, respBody)
}

// get envia um GET e decodifica a resposta
func (c *Client) get(ctx context.Context, path string, header http.Header) (Result, error) {
	respBody, err := c.transport.Get(ctx, path, header)
	if err != nil {
		return nil, err
	}
	return decode(path, respBody)
}

// query envia o envelope de consulta para `<recurso>/query`
func (c *Client) query(ctx context.Context, path string, q *Query) (Result, error) {
	return c.post(ctx, path, q)
}

// decode interpreta o corpo como JSON. Números viram json.Number para não
// perder precisão em inteiros grandes. Um corpo `null` resulta em (nil, nil).
func decode(path string, body []byte) (Result, error) {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var result Result
	if err := dec.Decode(&result); err != nil {
		return nil, &DecodeError{Path: path, Body: body, Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &DecodeError{Path: path, Body: body, Err: errors.New("conteúdo após o valor JSON")}
	}
	return result, nil
}
