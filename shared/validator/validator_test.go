package validator_test

import (
	"net/http"
	"strings"
	"testing"

	"todos/shared/failure"
	"todos/shared/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type textRequest struct {
	Text string `json:"text" validate:"required"`
}

type rangedRequest struct {
	Name     string `json:"name"     validate:"required,max=5"`
	Category string `json:"category" validate:"oneof=home work"`
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		wantErr     bool
		wantMessage string
		wantText    string
	}{
		{
			name:     "valid body",
			body:     `{"text":"buy milk"}`,
			wantText: "buy milk",
		},
		{
			name:     "whitespace text is present",
			body:     `{"text":"   "}`,
			wantText: "   ",
		},
		{
			name:        "missing text",
			body:        `{}`,
			wantErr:     true,
			wantMessage: "Text is required",
		},
		{
			name:        "empty text",
			body:        `{"text":""}`,
			wantErr:     true,
			wantMessage: "Text is required",
		},
		{
			name:        "empty body",
			body:        ``,
			wantErr:     true,
			wantMessage: "Text is required",
		},
		{
			name:        "null body",
			body:        `null`,
			wantErr:     true,
			wantMessage: "Text is required",
		},
		{
			name:    "malformed body",
			body:    `{"text":`,
			wantErr: true,
		},
		{
			name:        "false text",
			body:        `{"text":false}`,
			wantErr:     true,
			wantMessage: "Text is required",
		},
		{
			name:        "numeric text",
			body:        `{"text":123}`,
			wantErr:     true,
			wantMessage: "Text is required",
		},
		{
			name:        "null text",
			body:        `{"text":null}`,
			wantErr:     true,
			wantMessage: "Text is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req textRequest
			err := validator.Validate(strings.NewReader(tt.body), &req)

			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.wantText, req.Text)

				return
			}

			require.Error(t, err)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))

			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, err.Error())
			}
		})
	}
}

func TestValidate_NilReader(t *testing.T) {
	var req textRequest

	err := validator.Validate(nil, &req)

	assert.EqualError(t, err, "Text is required")
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name        string
		data        rangedRequest
		wantMessage string
	}{
		{
			name: "valid struct",
			data: rangedRequest{Name: "abc", Category: "home"},
		},
		{
			name:        "too long",
			data:        rangedRequest{Name: "abcdefg", Category: "home"},
			wantMessage: "Name must be at most 5",
		},
		{
			name:        "rule without a sentence falls back to the validator text",
			data:        rangedRequest{Name: "abc", Category: "garden"},
			wantMessage: "Key: 'rangedRequest.Category' Error:Field validation for 'Category' failed on the 'oneof' tag",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateStruct(&tt.data)

			if tt.wantMessage == "" {
				assert.NoError(t, err)

				return
			}

			assert.EqualError(t, err, tt.wantMessage)
			assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		})
	}
}
