package dto_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/erp-inventory/internal/application/dto"
)

func unmarshalSize(t *testing.T, raw string) dto.SizeInput {
	t.Helper()
	var s dto.SizeInput
	require.NoError(t, json.Unmarshal([]byte(raw), &s))
	return s
}

func TestSizeInput_EtiquetaPlana(t *testing.T) {
	s := unmarshalSize(t, `"sm"`)
	assert.Equal(t, "SM", s.Label)
}

func TestSizeInput_ObjetoConCampoSize(t *testing.T) {
	s := unmarshalSize(t, `{"size": " m ", "stock": 5, "_id": "64f0"}`)
	assert.Equal(t, "M", s.Label)
	assert.True(t, s.Stock.Equal(decimal.NewFromInt(5)))
}

// Objeto con la etiqueta partida en claves numeradas: se concatena en orden
// numérico, ignorando claves internas.
func TestSizeInput_ClavesNumeradas(t *testing.T) {
	s := unmarshalSize(t, `{"0": "S", "1": "M", "_id": "64f0", "stock": 3}`)
	assert.Equal(t, "SM", s.Label)
	assert.True(t, s.Stock.Equal(decimal.NewFromInt(3)))
}

func TestSizeInput_ClavesNumeradasOrdenNumericoNoLexicografico(t *testing.T) {
	s := unmarshalSize(t, `{"2": "X", "10": "L"}`)
	assert.Equal(t, "XL", s.Label)
}

func TestSizeInput_SizeVacioCaeAClavesRestantes(t *testing.T) {
	s := unmarshalSize(t, `{"size": "", "0": "X", "1": "L"}`)
	// "size" vacío no es etiqueta válida; tampoco es clave interna, así que
	// participa en la unión con valor vacío.
	assert.Equal(t, "XL", s.Label)
}

func TestSizeInput_StockComoString(t *testing.T) {
	s := unmarshalSize(t, `{"size": "XL", "stock": "7"}`)
	assert.Equal(t, "XL", s.Label)
	assert.True(t, s.Stock.Equal(decimal.NewFromInt(7)))
}
