package sisgenfe

import "context"

// NewNfs cadastra uma NFS-e
func (c *Client) NewNfs(ctx context.Context, data map[string]interface{}) (Result, error) {
	return c.post(ctx, PathNfs, data)
}

// SearchNfs consulta NFS-e com número maior ou igual ao informado.
// Padrão: limit 10, offset 0.
func (c *Client) SearchNfs(ctx context.Context, number string, opts ...QueryOption) (Result, error) {
	q := newQuery(DefaultLimit, OperatorGreaterEqual, "numero", number).
		withOffset(0).
		apply(opts)

	return c.query(ctx, PathNfsQuery, q)
}

// EditNfs envia a correção de uma NFS-e
func (c *Client) EditNfs(ctx context.Context, data map[string]interface{}) (Result, error) {
	return c.post(ctx, PathNfsCorrect, data)
}

// CancelNfs cancela uma NFS-e
func (c *Client) CancelNfs(ctx context.Context, data map[string]interface{}) (Result, error) {
	return c.post(ctx, PathNfsCancel, data)
}
