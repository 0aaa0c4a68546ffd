package eda

import (
	"embed"
	"strings"

	"github.com/eda-labs/k8s-eda-mcp-server/pkg/api"
)

//go:embed prompts/*.md
var promptTemplates embed.FS

func initPrompts() []api.ServerPrompt {
	return []api.ServerPrompt{
		diagnosePrompt(),
		loadContextPrompt(),
	}
}

func diagnosePrompt() api.ServerPrompt {
	prompt := api.Prompt{
		Name:        "k8s-diagnose",
		Description: "Diagnose Kubernetes Resources.",
		Arguments: []api.PromptArgument{
			{
				Name:        "keyword",
				Description: "A keyword to search pod/node names.",
				Required:    true,
			},
			{
				Name:        "namespace",
				Description: "Optional: Specify a namespace to narrow down the search.",
			},
		},
	}
	body := mustTemplate("k8s-diagnose.md")
	return api.ServerPrompt{
		Prompt: prompt,
		Handler: func(params api.PromptHandlerParams) (*api.PromptCallResult, error) {
			args := params.GetArguments()
			if args["keyword"] == "" {
				return nil, api.NewInvalidArgumentError("Keyword parameter is required for k8s-diagnose prompt")
			}
			text := api.SubstituteArguments(body, map[string]string{
				"keyword":   args["keyword"],
				"namespace": valueOr(args["namespace"], "all"),
			})
			return api.NewPromptCallResult(prompt.Description, []api.PromptMessage{api.NewUserTextMessage(text)}), nil
		},
	}
}

func loadContextPrompt() api.ServerPrompt {
	prompt := api.Prompt{
		Name:        "load-eda-context",
		Description: "Load comprehensive EDA context by reading all EDA-related resources, analyzing CRDs, and understanding their interdependencies to prime the client for EDA task execution.",
		Arguments: []api.PromptArgument{
			{
				Name:        "namespace",
				Description: "Optional: Specific namespace to focus EDA context loading. If not provided, searches across all namespaces.",
			},
			{
				Name:        "include_templates",
				Description: "Optional: Include EDA configuration templates in the context (default: true).",
			},
		},
	}
	body := mustTemplate("load-eda-context.md")
	return api.ServerPrompt{
		Prompt: prompt,
		Handler: func(params api.PromptHandlerParams) (*api.PromptCallResult, error) {
			args := params.GetArguments()
			// only the literal "false" opts out
			templates := "including configuration templates"
			if args["include_templates"] == "false" {
				templates = "excluding templates"
			}
			text := api.SubstituteArguments(body, map[string]string{
				"namespace": valueOr(args["namespace"], "all namespaces"),
				"templates": templates,
			})
			return api.NewPromptCallResult(prompt.Description, []api.PromptMessage{api.NewUserTextMessage(text)}), nil
		},
	}
}

func mustTemplate(name string) string {
	data, err := promptTemplates.ReadFile("prompts/" + name)
	if err != nil {
		panic(err)
	}
	return strings.TrimRight(string(data), "\n")
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
