package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitDate(t *testing.T) {
	tests := []struct {
		date  string
		month string
		year  int
	}{
		{"2024-03-15", "03", 2024},
		{"2024-12-31", "12", 2024},
		{"1999-01-01", "01", 1999},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			month, year, err := SplitDate(tt.date)
			require.NoError(t, err)
			assert.Equal(t, tt.month, month)
			assert.Equal(t, tt.year, year)
		})
	}
}

func TestSplitDateInvalid(t *testing.T) {
	for _, date := range []string{"", "2024-13-01", "2024-02-30", "15/03/2024", "2024-3-5"} {
		t.Run(date, func(t *testing.T) {
			_, _, err := SplitDate(date)
			assert.ErrorIs(t, err, ErrInvalidDate)
		})
	}
}

func TestPreviousMonth(t *testing.T) {
	tests := []struct {
		month     string
		year      int
		wantMonth string
		wantYear  int
	}{
		{"01", 2025, "12", 2024},
		{"02", 2025, "01", 2025},
		{"12", 2024, "11", 2024},
	}

	for _, tt := range tests {
		month, year := PreviousMonth(tt.month, tt.year)
		assert.Equal(t, tt.wantMonth, month)
		assert.Equal(t, tt.wantYear, year)
	}
}
