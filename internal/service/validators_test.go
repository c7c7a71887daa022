package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateTaxID(t *testing.T) {
	tests := []struct {
		name    string
		taxID   string
		wantErr bool
	}{
		{
			name:    "valid 11 digits",
			taxID:   "12345678900",
			wantErr: false,
		},
		{
			name:    "too short",
			taxID:   "1234567890",
			wantErr: true,
		},
		{
			name:    "too long",
			taxID:   "123456789001",
			wantErr: true,
		},
		{
			name:    "non-numeric",
			taxID:   "1234567890a",
			wantErr: true,
		},
		{
			name:    "empty",
			taxID:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTaxID(tt.taxID)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateBirthDate(t *testing.T) {
	now := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		birthDate string
		wantErr   bool
	}{
		{
			name:      "valid date",
			birthDate: "01/02/1990",
			wantErr:   false,
		},
		{
			name:      "wrong layout",
			birthDate: "1990-02-01",
			wantErr:   true,
		},
		{
			name:      "not a date",
			birthDate: "yesterday",
			wantErr:   true,
		},
		{
			name:      "future date",
			birthDate: "01/01/2030",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBirthDate(tt.birthDate, now)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
