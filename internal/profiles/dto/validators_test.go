package dto

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOathRequestValidation(t *testing.T) {
	validate := validator.New()
	require.NoError(t, RegisterCustomValidators(validate))

	tests := []struct {
		name    string
		dto     OathRequest
		wantErr bool
	}{
		{
			name:    "valid request",
			dto:     OathRequest{Pseudo: "Jon of the Vale", House: "stark", Culture: "north"},
			wantErr: false,
		},
		{
			name:    "pseudo too short",
			dto:     OathRequest{Pseudo: "Jo", House: "stark", Culture: "north"},
			wantErr: true,
		},
		{
			name:    "pseudo with illegal characters",
			dto:     OathRequest{Pseudo: "Jon<script>", House: "stark", Culture: "north"},
			wantErr: true,
		},
		{
			name:    "missing house",
			dto:     OathRequest{Pseudo: "Jon Snow", Culture: "north"},
			wantErr: true,
		},
		{
			name:    "missing culture",
			dto:     OathRequest{Pseudo: "Jon Snow", House: "stark"},
			wantErr: true,
		},
		{
			name:    "realm key optional",
			dto:     OathRequest{Pseudo: "Jon Snow", House: "stark", Culture: "north", RealmKey: ""},
			wantErr: false,
		},
		{
			name:    "name punctuation allowed",
			dto:     OathRequest{Pseudo: "Ser Jorah-Mormont Jr.", House: "stark", Culture: "north"},
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateStruct(validate, tt.dto)
			if tt.wantErr {
				assert.NotEmpty(t, errs)
			} else {
				assert.Empty(t, errs)
			}
		})
	}
}
