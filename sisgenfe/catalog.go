package sisgenfe

import (
	"context"
	"net/http"
)

// GetCnaes retorna os CNAEs atribuídos ao prestador
func (c *Client) GetCnaes(ctx context.Context) (Result, error) {
	header := http.Header{}
	header.Set(headerContentType, contentTypeJSON)

	return c.get(ctx, PathCnae, header)
}

// SearchCnae consulta um CNAE pelo código do item da LC 116.
// Padrão: limit 10, sem offset.
func (c *Client) SearchCnae(ctx context.Context, code string, opts ...QueryOption) (Result, error) {
	q := newQuery(DefaultLimit, OperatorEqual, "lei116.codigo", code).apply(opts)

	return c.query(ctx, PathCnaeQuery, q)
}

// SearchCity consulta municípios de uma UF.
// Os campos de params entram no mesmo filtro "eq" depois de estado.uf,
// então uma chave "estado.uf" em params substitui a UF informada.
// Padrão: limit 10, sem offset.
func (c *Client) SearchCity(ctx context.Context, uf string, params map[string]interface{}, opts ...QueryOption) (Result, error) {
	q := newQuery(DefaultLimit, OperatorEqual, "estado.uf", uf).
		Merge(OperatorEqual, params).
		apply(opts)

	return c.query(ctx, PathCityQuery, q)
}

// SearchUnitOfMeasurement consulta uma unidade de medida pelo nome.
// Padrão: limit 1, sem offset.
func (c *Client) SearchUnitOfMeasurement(ctx context.Context, unit string, opts ...QueryOption) (Result, error) {
	q := newQuery(DefaultUnitLimit, OperatorEqual, "nome", unit).apply(opts)

	return c.query(ctx, PathUnitQuery, q)
}
