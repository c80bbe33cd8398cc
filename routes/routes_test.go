package routes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToColonPath(t *testing.T) {
	tests := []struct {
		name     string
		template string
		expected string
	}{
		{
			name:     "two parameters",
			template: "/widgets/{widgetId}/parts/{partId}",
			expected: "/widgets/:widgetId/parts/:partId",
		},
		{
			name:     "single parameter",
			template: "/pets/{petId}",
			expected: "/pets/:petId",
		},
		{
			name:     "no parameters",
			template: "/pets",
			expected: "/pets",
		},
		{
			name:     "root",
			template: "/",
			expected: "/",
		},
		{
			name:     "trailing static segment",
			template: "/users/{userId}/avatar",
			expected: "/users/:userId/avatar",
		},
		{
			name:     "unclosed brace left untouched",
			template: "/users/{userId",
			expected: "/users/{userId",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToColonPath(tt.template))
		})
	}
}

func TestParamNames(t *testing.T) {
	assert.Equal(t, []string{"widgetId", "partId"}, ParamNames("/widgets/{widgetId}/parts/{partId}"))
	assert.Nil(t, ParamNames("/plain/path"))
}

func TestEscapePointerToken(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected string
	}{
		{name: "slash", token: "/pets", expected: "~1pets"},
		{name: "tilde", token: "a~b", expected: "a~0b"},
		{name: "both", token: "/a~b/c", expected: "~1a~0b~1c"},
		{name: "tilde before slash ordering", token: "~/", expected: "~0~1"},
		{name: "plain", token: "plain", expected: "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, EscapePointerToken(tt.token))
			assert.Equal(t, tt.token, UnescapePointerToken(tt.expected))
		})
	}
}

func TestParamRef(t *testing.T) {
	ref := ParamRef("PetAPI", "/pets/{petId}", "GET", 0, false)
	assert.Equal(t, "PetAPI#/paths/~1pets~1{petId}/get/parameters/0", ref)

	withSchema := ParamRef("PetAPI", "/pets", "POST", 1, true)
	assert.Equal(t, "PetAPI#/paths/~1pets/post/parameters/1/schema", withSchema)
}

func TestResponseRef(t *testing.T) {
	ref := ResponseRef("PetAPI", "/pets/{petId}", "get", 200)
	assert.Equal(t, "PetAPI#/paths/~1pets~1{petId}/get/responses/200", ref)
}
