package sisgenfe

import "context"

// NewTaker cadastra um tomador
func (c *Client) NewTaker(ctx context.Context, data map[string]interface{}) (Result, error) {
	return c.post(ctx, PathTaker, data)
}

// SearchTaker consulta tomadores pelo documento (CPF/CNPJ).
// Padrão: limit 10, offset 0.
func (c *Client) SearchTaker(ctx context.Context, document string, opts ...QueryOption) (Result, error) {
	q := newQuery(DefaultLimit, OperatorEqual, "documento", document).
		withOffset(0).
		apply(opts)

	return c.query(ctx, PathTakerQuery, q)
}
