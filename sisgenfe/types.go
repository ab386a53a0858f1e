package sisgenfe

// Credentials representa os dados de acesso enviados ao endpoint de login
type Credentials struct {
	App       string `json:"app"`
	Prestador string `json:"prestador"` // Identificador do prestador
	Username  string `json:"username"`
	Password  string `json:"password"`
}

// Result é o JSON retornado pela API já decodificado
// (map[string]interface{}, []interface{} ou escalar). Números chegam como
// json.Number; a resposta `null` chega como nil sem erro.
type Result = interface{}

// Operator define a comparação aplicada no filtro de uma consulta
type Operator string

const (
	OperatorEqual        Operator = "eq"
	OperatorGreaterEqual Operator = "ge"
)

// Query é o envelope das consultas `<recurso>/query`
type Query struct {
	Limit  int                                 `json:"limit"`
	Offset *int                                `json:"offset,omitempty"` // Nem todo endpoint envia offset
	Where  map[Operator]map[string]interface{} `json:"where"`
}

// QueryOption altera os valores padrão de paginação de uma consulta
type QueryOption func(*Query)

// WithLimit define o limite de registros retornados
func WithLimit(limit int) QueryOption {
	return func(q *Query) {
		q.Limit = limit
	}
}

// WithOffset define o deslocamento da consulta
func WithOffset(offset int) QueryOption {
	return func(q *Query) {
		q.Offset = &offset
	}
}

// newQuery monta o envelope com um único filtro
func newQuery(limit int, op Operator, field string, value interface{}) *Query {
	return &Query{
		Limit: limit,
		Where: map[Operator]map[string]interface{}{
			op: {field: value},
		},
	}
}

// withOffset inicializa o offset para endpoints que sempre o enviam
func (q *Query) withOffset(offset int) *Query {
	q.Offset = &offset
	return q
}

// apply aplica as opções do chamador sobre os valores padrão
func (q *Query) apply(opts []QueryOption) *Query {
	for _, opt := range opts {
		opt(q)
	}
	return q
}

// Merge adiciona campos ao filtro do operador informado.
// Campos já existentes são sobrescritos.
func (q *Query) Merge(op Operator, fields map[string]interface{}) *Query {
	if len(fields) == 0 {
		return q
	}
	if q.Where == nil {
		q.Where = make(map[Operator]map[string]interface{})
	}
	filter, ok := q.Where[op]
	if !ok {
		filter = make(map[string]interface{}, len(fields))
		q.Where[op] = filter
	}
	for k, v := range fields {
		filter[k] = v
	}
	return q
}
