package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Zero", input: 0, expected: 0},
		{name: "Dízima periódica arredondada para cima", input: 428.5714285714286, expected: 428.57},
		{name: "Arredondamento para cima", input: 10.006, expected: 10.01},
		{name: "Valor já com duas casas", input: 3000.00, expected: 3000.00},
		{name: "Valor negativo", input: -1.004, expected: -1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RoundWithTwoDecimalPlace(tt.input), 0.0001)
		})
	}
}

func TestRoundWithOneDecimalPlace(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected float64
	}{
		{name: "Zero", input: 0, expected: 0},
		{name: "Arredonda para baixo", input: 12.34, expected: 12.3},
		{name: "Arredonda para cima", input: 12.36, expected: 12.4},
		{name: "Preço unitário médio típico", input: 149.9833, expected: 150.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, RoundWithOneDecimalPlace(tt.input), 0.0001)
		})
	}
}
