package sisgenfe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryMerge(t *testing.T) {
	q := newQuery(DefaultLimit, OperatorEqual, "estado.uf", "SP")

	q.Merge(OperatorEqual, map[string]interface{}{"nome": "Campinas", "estado.uf": "RJ"})
	q.Merge(OperatorGreaterEqual, map[string]interface{}{"codigo": 3500000})
	q.Merge(OperatorEqual, nil)

	b, err := json.Marshal(q)
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"limit":10,"where":{"eq":{"estado.uf":"RJ","nome":"Campinas"},"ge":{"codigo":3500000}}}`,
		string(b),
	)
}

func TestQueryOptions(t *testing.T) {
	q := newQuery(DefaultUnitLimit, OperatorEqual, "nome", "KG").apply([]QueryOption{WithLimit(3)})
	assert.Equal(t, 3, q.Limit)
	assert.Nil(t, q.Offset)

	q = newQuery(DefaultLimit, OperatorEqual, "documento", "1").withOffset(0).apply([]QueryOption{WithOffset(30)})
	require.NotNil(t, q.Offset)
	assert.Equal(t, 30, *q.Offset)
}

func TestOperatorConstants(t *testing.T) {
	assert.Equal(t, "eq", string(OperatorEqual))
	assert.Equal(t, "ge", string(OperatorGreaterEqual))
}
