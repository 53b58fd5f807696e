package validator_test

import (
	"net/http"
	"roombook/shared/failure"
	"roombook/shared/validator"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type colour string

func (c colour) IsValid() bool {
	return c == "red" || c == "blue"
}

type slotRequest struct {
	Date      string `json:"date"      validate:"required,day"`
	StartTime string `json:"startTime" validate:"required,clock"`
	Colour    colour `json:"colour"    validate:"omitempty,enum"`
	Attendees *int   `json:"attendees" validate:"omitempty,gte=0"`
}

func intPtr(v int) *int {
	return &v
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name    string
		data    slotRequest
		wantMsg string
	}{
		{
			name: "valid struct",
			data: slotRequest{Date: "2025-03-14", StartTime: "09:30", Colour: "red", Attendees: intPtr(4)},
		},
		{
			name:    "missing date reports json name",
			data:    slotRequest{StartTime: "09:30"},
			wantMsg: "date is required",
		},
		{
			name:    "impossible calendar day",
			data:    slotRequest{Date: "2025-02-30", StartTime: "09:30"},
			wantMsg: "date must be a valid date (YYYY-MM-DD)",
		},
		{
			name:    "unpadded time",
			data:    slotRequest{Date: "2025-03-14", StartTime: "9:30"},
			wantMsg: "startTime must be a valid time (HH:MM)",
		},
		{
			name:    "hour out of range",
			data:    slotRequest{Date: "2025-03-14", StartTime: "24:00"},
			wantMsg: "startTime must be a valid time (HH:MM)",
		},
		{
			name:    "unknown enum value",
			data:    slotRequest{Date: "2025-03-14", StartTime: "09:30", Colour: "green"},
			wantMsg: "colour is not a valid option",
		},
		{
			name:    "negative attendees",
			data:    slotRequest{Date: "2025-03-14", StartTime: "09:30", Attendees: intPtr(-1)},
			wantMsg: "attendees must be greater than or equal to 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantMsg == "" {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}

func TestValidateReportsFirstFieldInDeclarationOrder(t *testing.T) {
	err := validator.ValidateStruct(&slotRequest{})

	require.Error(t, err)
	assert.Equal(t, "date is required", err.Error())
}

func TestValidateVar(t *testing.T) {
	assert.NoError(t, validator.ValidateVar("2025-01-31", "day"))
	assert.Error(t, validator.ValidateVar("31-01-2025", "day"))
	assert.NoError(t, validator.ValidateVar("23:59", "clock"))
	assert.Error(t, validator.ValidateVar("", "required"))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		jsonBody    string
		expectError bool
	}{
		{
			name:     "valid JSON",
			jsonBody: `{"date":"2025-03-14","startTime":"08:00"}`,
		},
		{
			name:        "invalid field",
			jsonBody:    `{"date":"2025-03-14","startTime":"8am"}`,
			expectError: true,
		},
		{
			name:        "malformed JSON",
			jsonBody:    `{"date":}`,
			expectError: true,
		},
		{
			name:        "empty JSON",
			jsonBody:    `{}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var data slotRequest
			err := validator.Validate(strings.NewReader(tt.jsonBody), &data)

			if tt.expectError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
