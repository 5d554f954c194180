package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMonthsBetween(t *testing.T) {
	tests := []struct {
		name     string
		from     time.Time
		to       time.Time
		expected int
	}{
		{
			name:     "Mesma data - zero meses",
			from:     time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "Mesmo mês em dias diferentes - zero meses",
			from:     time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			expected: 0,
		},
		{
			name:     "Virada de mês conta um mês mesmo com um dia de diferença",
			from:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC),
			expected: 1,
		},
		{
			name:     "Virada de ano",
			from:     time.Date(2023, 11, 10, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
			expected: 3,
		},
		{
			name:     "Quatorze meses de vida útil",
			from:     time.Date(2023, 1, 20, 0, 0, 0, 0, time.UTC),
			to:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
			expected: 14,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MonthsBetween(tt.from, tt.to))
		})
	}
}

func TestAgeAt(t *testing.T) {
	reference := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthdate time.Time
		expected  int
	}{
		{
			name:      "Aniversário já ocorreu no ano de referência",
			birthdate: time.Date(1990, 3, 10, 0, 0, 0, 0, time.UTC),
			expected:  34,
		},
		{
			name:      "Aniversário ainda não ocorreu no ano de referência",
			birthdate: time.Date(1990, 9, 10, 0, 0, 0, 0, time.UTC),
			expected:  33,
		},
		{
			name:      "Aniversário no dia da referência",
			birthdate: time.Date(1990, 6, 15, 0, 0, 0, 0, time.UTC),
			expected:  34,
		},
		{
			name:      "Aniversário no dia seguinte à referência",
			birthdate: time.Date(1990, 6, 16, 0, 0, 0, 0, time.UTC),
			expected:  33,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, AgeAt(tt.birthdate, reference))
		})
	}
}
