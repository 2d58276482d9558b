package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type dated struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Note string `json:"note" validate:"notblank"`
}

func TestDateValidation(t *testing.T) {
	tests := []struct {
		date  string
		valid bool
	}{
		{date: "2024-01-15", valid: true},
		{date: "2024-12-31", valid: true},
		{date: "2024-13-01"},
		{date: "2024-00-10"},
		{date: "2024-01-32"},
		{date: "2024-02-31"},
		{date: "2023-02-29"},
		{date: "2024-02-29", valid: true},
		{date: "2024-1-5"},
		{date: "15/01/2024"},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			err := Validate.Struct(dated{Date: tt.date, Note: "x"})
			assert.Equal(t, tt.valid, err == nil, "Validate.Struct() error = %v", err)
		})
	}
}

func TestAsValidationError(t *testing.T) {
	err := AsValidationError(Validate.Struct(dated{Date: "nope", Note: "   "}), "invalid input")

	assert.True(t, IsValidationError(err))
	vErr, ok := err.(*ValidationError)
	if !assert.True(t, ok) {
		return
	}
	assert.Equal(t, "invalid input", vErr.Error())
	assert.Equal(t, []FieldError{
		{Field: "date", Error: "date must be a date formatted as YYYY-MM-DD"},
		{Field: "note", Error: "this field is required"},
	}, vErr.Fields)
	assert.Equal(t, "date: date must be a date formatted as YYYY-MM-DD; note: this field is required", vErr.Messages())
}

func TestAsValidationError_passThrough(t *testing.T) {
	assert.NoError(t, AsValidationError(nil, "x"))

	other := assert.AnError
	assert.Equal(t, other, AsValidationError(other, "x"))
	assert.False(t, IsValidationError(other))
}

func TestRequiredTranslation(t *testing.T) {
	err := AsValidationError(Validate.Struct(dated{Note: "x"}), "invalid input")
	vErr := err.(*ValidationError)
	assert.Equal(t, []FieldError{{Field: "date", Error: "this field is required"}}, vErr.Fields)
}
