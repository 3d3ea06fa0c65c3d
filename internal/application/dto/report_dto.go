package dto

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// SizeInput es una talla recibida en la frontera del sistema. El upstream
// entrega tallas con forma inconsistente: a veces una etiqueta plana ("SM"),
// a veces un objeto {"size": "SM"}, y a veces un objeto con la etiqueta
// partida en claves numeradas ({"0": "S", "1": "M", "_id": ...}). La
// deserialización tolerante normaliza todas las formas a una etiqueta, en vez
// de fallar el reporte completo por datos sucios.
type SizeInput struct {
	Label string
	Stock decimal.Decimal
}

// claves internas del upstream que no forman parte de la etiqueta.
var sizeInternalKeys = map[string]bool{"_id": true, "stock": true}

// UnmarshalJSON acepta una etiqueta plana o un objeto. Para objetos sin campo
// "size", la etiqueta se deriva concatenando los valores restantes en orden
// fijo de campo (claves numéricas en orden numérico, el resto alfabético),
// excluyendo claves internas.
func (s *SizeInput) UnmarshalJSON(data []byte) error {
	// Forma 1: etiqueta plana
	var plain string
	if err := json.Unmarshal(data, &plain); err == nil {
		s.Label = normalizeSizeLabel(plain)
		return nil
	}

	// Forma 2/3: objeto
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["stock"]; ok {
		// El stock puede venir como número o string; ignorar si no parsea.
		_ = json.Unmarshal(v, &s.Stock)
	}

	if v, ok := raw["size"]; ok {
		var label string
		if err := json.Unmarshal(v, &label); err == nil && label != "" {
			s.Label = normalizeSizeLabel(label)
			return nil
		}
	}

	// Unir claves numeradas/restantes en orden fijo
	keys := make([]string, 0, len(raw))
	for k := range raw {
		if !sizeInternalKeys[k] {
			keys = append(keys, k)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, erri := strconv.Atoi(keys[i])
		nj, errj := strconv.Atoi(keys[j])
		if erri == nil && errj == nil {
			return ni < nj
		}
		if erri == nil {
			return true
		}
		if errj == nil {
			return false
		}
		return keys[i] < keys[j]
	})

	var b strings.Builder
	for _, k := range keys {
		var part string
		if err := json.Unmarshal(raw[k], &part); err != nil {
			// Valores no string (números sueltos): representarlos tal cual
			part = strings.Trim(string(raw[k]), `"`)
		}
		b.WriteString(part)
	}
	s.Label = normalizeSizeLabel(b.String())
	return nil
}

func normalizeSizeLabel(label string) string {
	return strings.ToUpper(strings.TrimSpace(label))
}

// SizeBucketDTO bucket de talla con su conteo disponible.
type SizeBucketDTO struct {
	Label  string          `json:"size"`
	OnHand decimal.Decimal `json:"stock"`
}

// CategoryReportDTO reporte de una categoría: buckets en orden estable,
// incluidos los de stock cero.
type CategoryReportDTO struct {
	CategoryID   string          `json:"category_id"`
	CategoryName string          `json:"category_name"`
	Sizes        []SizeBucketDTO `json:"sizes"`
}

// StockPositionResponse respuesta del reporte de posición de stock.
type StockPositionResponse struct {
	Data []CategoryReportDTO `json:"data"`
}

// CreateCategoryRequest entrada para crear una categoría con sus buckets.
type CreateCategoryRequest struct {
	Name  string      `json:"name"`
	Sizes []SizeInput `json:"sizes"`
}

// CategoryResponse representación HTTP de una categoría.
type CategoryResponse struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Position int      `json:"position"`
	Sizes    []string `json:"sizes"`
}
