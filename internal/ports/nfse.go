// Package ports define as interfaces (portas) para adaptadores externos
// Seguindo o padrão Hexagonal Architecture / Ports & Adapters
package ports

import (
	"context"

	"github.com/deltagestor/sisgenfe/sisgenfe"
)

// ──────────────────────────────────────────────
// Provider interfaces
// ──────────────────────────────────────────────

// TakerService define as operações de tomador
type TakerService interface {
	// NewTaker cadastra um tomador
	NewTaker(ctx context.Context, data map[string]interface{}) (sisgenfe.Result, error)

	// SearchTaker consulta tomadores pelo documento
	SearchTaker(ctx context.Context, document string, opts ...sisgenfe.QueryOption) (sisgenfe.Result, error)
}

// InvoiceService define as operações de NFS-e
type InvoiceService interface {
	// NewNfs cadastra uma NFS-e
	NewNfs(ctx context.Context, data map[string]interface{}) (sisgenfe.Result, error)

	// SearchNfs consulta NFS-e a partir do número informado
	SearchNfs(ctx context.Context, number string, opts ...sisgenfe.QueryOption) (sisgenfe.Result, error)

	// EditNfs corrige uma NFS-e
	EditNfs(ctx context.Context, data map[string]interface{}) (sisgenfe.Result, error)

	// CancelNfs cancela uma NFS-e
	CancelNfs(ctx context.Context, data map[string]interface{}) (sisgenfe.Result, error)
}

// CatalogService define as consultas de tabelas auxiliares
type CatalogService interface {
	// GetCnaes lista os CNAEs do prestador
	GetCnaes(ctx context.Context) (sisgenfe.Result, error)

	// SearchCnae consulta um CNAE pelo código da LC 116
	SearchCnae(ctx context.Context, code string, opts ...sisgenfe.QueryOption) (sisgenfe.Result, error)

	// SearchCity consulta municípios de uma UF
	SearchCity(ctx context.Context, uf string, params map[string]interface{}, opts ...sisgenfe.QueryOption) (sisgenfe.Result, error)

	// SearchUnitOfMeasurement consulta uma unidade de medida
	SearchUnitOfMeasurement(ctx context.Context, unit string, opts ...sisgenfe.QueryOption) (sisgenfe.Result, error)
}

// NFSeService agrupa todas as operações do webservice de NFS-e
type NFSeService interface {
	TakerService
	InvoiceService
	CatalogService
}

// Garante que o cliente Sisgenfe implementa NFSeService
var _ NFSeService = (*sisgenfe.Client)(nil)
