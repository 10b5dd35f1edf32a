package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unclebandit/smscampaign-backend/internal/service"
)

func strPtr(s string) *string { return &s }

func TestRenderMessage(t *testing.T) {
	cases := []struct {
		name      string
		template  string
		firstName *string
		want      string
	}{
		{"single token", "Hi {first_name}", strPtr("Ana"), "Hi Ana"},
		{"missing name", "Hi {first_name}", nil, "Hi "},
		{"no token", "no token", strPtr("Ana"), "no token"},
		{"many tokens", "{first_name} and {first_name}", strPtr("Leo"), "Leo and Leo"},
		{"empty template", "", strPtr("Ana"), ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, service.RenderMessage(tc.template, tc.firstName))
		})
	}
}
