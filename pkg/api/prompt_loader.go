package api

import (
	"fmt"
	"strings"
)

// PromptDefinition represents a prompt definition loaded from config
type PromptDefinition struct {
	Name        string                  `toml:"name"`
	Description string                  `toml:"description"`
	Arguments   []PromptArgument        `toml:"arguments,omitempty"`
	Messages    []PromptMessageTemplate `toml:"messages"`
}

// PromptMessageTemplate represents a message template
type PromptMessageTemplate struct {
	Role    string `toml:"role"`
	Content string `toml:"content"`
}

// PromptLoader turns prompt definitions into ServerPrompt instances
type PromptLoader struct {
	definitions []PromptDefinition
}

// NewPromptLoader creates a new prompt loader
func NewPromptLoader(definitions ...PromptDefinition) *PromptLoader {
	return &PromptLoader{
		definitions: append(make([]PromptDefinition, 0, len(definitions)), definitions...),
	}
}

// GetServerPrompts converts loaded definitions to ServerPrompt instances
func (l *PromptLoader) GetServerPrompts() []ServerPrompt {
	prompts := make([]ServerPrompt, 0, len(l.definitions))
	for _, def := range l.definitions {
		prompts = append(prompts, ServerPrompt{
			Prompt: Prompt{
				Name:        def.Name,
				Description: def.Description,
				Arguments:   def.Arguments,
			},
			Handler: newDefinitionHandler(def),
		})
	}
	return prompts
}

func newDefinitionHandler(def PromptDefinition) PromptHandlerFunc {
	return func(params PromptHandlerParams) (*PromptCallResult, error) {
		args := params.GetArguments()
		if err := ValidatePromptArguments(def.Name, def.Arguments, args); err != nil {
			return nil, err
		}

		messages := make([]PromptMessage, 0, len(def.Messages))
		for _, msgTemplate := range def.Messages {
			messages = append(messages, PromptMessage{
				Role: msgTemplate.Role,
				Content: PromptContent{
					Type: "text",
					Text: SubstituteArguments(msgTemplate.Content, args),
				},
			})
		}

		return NewPromptCallResult(def.Description, messages), nil
	}
}

// ValidatePromptArguments returns an InvalidArgument error for the first required argument that is
// missing or empty.
func ValidatePromptArguments(promptName string, defs []PromptArgument, args map[string]string) error {
	for _, argDef := range defs {
		if argDef.Required && args[argDef.Name] == "" {
			return NewInvalidArgumentError(fmt.Sprintf("required argument '%s' is missing for prompt %s", argDef.Name, promptName))
		}
	}
	return nil
}

// SubstituteArguments replaces {{argument}} placeholders in content with actual values.
// Replacement happens in a single pass, so values containing placeholders are left as-is.
func SubstituteArguments(content string, args map[string]string) string {
	if len(args) == 0 {
		return content
	}
	oldNew := make([]string, 0, len(args)*2)
	for key, value := range args {
		oldNew = append(oldNew, fmt.Sprintf("{{%s}}", key), value)
	}
	return strings.NewReplacer(oldNew...).Replace(content)
}
