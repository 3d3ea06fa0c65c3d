package dto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/erp-inventory/internal/application/dto"
)

func TestPageRequest_DefaultPage(t *testing.T) {
	cases := []struct {
		name       string
		in         dto.PageRequest
		wantLimit  int
		wantOffset int
	}{
		{"sin valores usa el límite por defecto", dto.PageRequest{}, dto.DefaultPageLimit, 0},
		{"límite explícito se respeta", dto.PageRequest{Limit: 50, Offset: 10}, 50, 10},
		{"límite excesivo se recorta al tope", dto.PageRequest{Limit: 5000}, dto.MaxPageLimit, 0},
		{"offset negativo se corrige a cero", dto.PageRequest{Limit: 20, Offset: -5}, 20, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			tc.in.DefaultPage()
			assert.Equal(t, tc.wantLimit, tc.in.Limit)
			assert.Equal(t, tc.wantOffset, tc.in.Offset)
		})
	}
}
