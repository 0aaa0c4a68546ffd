package eda

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
)

type promptArgs map[string]string

func (a promptArgs) GetArguments() map[string]string { return a }

func getPrompt(t *testing.T, name string) api.ServerPrompt {
	for _, p := range initPrompts() {
		if p.Prompt.Name == name {
			return p
		}
	}
	t.Fatalf("prompt %s not found", name)
	return api.ServerPrompt{}
}

func render(t *testing.T, name string, args promptArgs) (*api.PromptCallResult, error) {
	return getPrompt(t, name).Handler(api.PromptHandlerParams{Context: context.Background(), PromptCallRequest: args})
}

func TestInitPrompts(t *testing.T) {
	prompts := (&Toolset{}).GetPrompts()
	require.Len(t, prompts, 2)
	assert.Equal(t, "k8s-diagnose", prompts[0].Prompt.Name)
	assert.Equal(t, "load-eda-context", prompts[1].Prompt.Name)
	for _, p := range prompts {
		assert.NotEmpty(t, p.Prompt.Description)
		assert.NotNil(t, p.Handler)
	}
}

func TestDiagnosePrompt(t *testing.T) {
	t.Run("requires keyword", func(t *testing.T) {
		_, err := render(t, "k8s-diagnose", promptArgs{})
		require.Error(t, err)
		assert.True(t, api.IsInvalidArgument(err))
		assert.Equal(t, "Keyword parameter is required for k8s-diagnose prompt", err.Error())
	})
	t.Run("empty keyword is missing", func(t *testing.T) {
		_, err := render(t, "k8s-diagnose", promptArgs{"keyword": ""})
		assert.True(t, api.IsInvalidArgument(err))
	})
	t.Run("namespace defaults to all", func(t *testing.T) {
		result, err := render(t, "k8s-diagnose", promptArgs{"keyword": "foo"})
		require.NoError(t, err)
		require.Len(t, result.Messages, 1)
		assert.Equal(t, "user", result.Messages[0].Role)
		assert.Equal(t, "text", result.Messages[0].Content.Type)
		assert.Contains(t, result.Messages[0].Content.Text, `containing keyword "foo" in their names within namespace "all"`)
	})
	t.Run("explicit namespace", func(t *testing.T) {
		result, err := render(t, "k8s-diagnose", promptArgs{"keyword": "leaf", "namespace": "eda-system"})
		require.NoError(t, err)
		assert.Contains(t, result.Messages[0].Content.Text, `within namespace "eda-system"`)
	})
	t.Run("placeholders in values are not expanded", func(t *testing.T) {
		result, err := render(t, "k8s-diagnose", promptArgs{"keyword": "{{namespace}}"})
		require.NoError(t, err)
		assert.Contains(t, result.Messages[0].Content.Text, `containing keyword "{{namespace}}"`)
	})
	t.Run("no placeholders survive", func(t *testing.T) {
		result, err := render(t, "k8s-diagnose", promptArgs{"keyword": "foo"})
		require.NoError(t, err)
		assert.NotContains(t, result.Messages[0].Content.Text, "{{")
		assert.False(t, result.Messages[0].Content.Text[len(result.Messages[0].Content.Text)-1] == '\n')
	})
}

func TestLoadContextPrompt(t *testing.T) {
	cases := []struct {
		name string
		args promptArgs
		want string
	}{
		{"defaults", promptArgs{}, "Focus on all namespaces, including configuration templates."},
		{"namespace", promptArgs{"namespace": "eda"}, "Focus on eda, including configuration templates."},
		{"templates excluded", promptArgs{"include_templates": "false"}, "Focus on all namespaces, excluding templates."},
		{"anything but false includes templates", promptArgs{"include_templates": "no"}, "Focus on all namespaces, including configuration templates."},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := render(t, "load-eda-context", tc.args)
			require.NoError(t, err)
			require.Len(t, result.Messages, 1)
			assert.Contains(t, result.Messages[0].Content.Text, tc.want)
			assert.NotContains(t, result.Messages[0].Content.Text, "{{")
		})
	}
}
