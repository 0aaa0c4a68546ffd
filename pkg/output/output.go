package output

import (
	"encoding/json"
	"fmt"

	"sigs.k8s.io/yaml"
)

// Output renders cluster objects returned by list operations.
type Output interface {
	// GetName returns the name of the output format, will be used by the CLI to identify the output format.
	GetName() string
	// PrintObj prints the given object as a string.
	PrintObj(obj any) (string, error)
}

var Outputs = []Output{
	Json,
	Yaml,
}

var Names []string

func FromString(name string) Output {
	for _, output := range Outputs {
		if output.GetName() == name {
			return output
		}
	}
	return nil
}

var Json = &jsonOutput{}

type jsonOutput struct{}

func (p *jsonOutput) GetName() string {
	return "json"
}

// PrintObj renders obj as JSON indented with two spaces.
func (p *jsonOutput) PrintObj(obj any) (string, error) {
	return MarshalJson(obj)
}

var Yaml = &yamlOutput{}

type yamlOutput struct{}

func (p *yamlOutput) GetName() string {
	return "yaml"
}

func (p *yamlOutput) PrintObj(obj any) (string, error) {
	return MarshalYaml(obj)
}

func MarshalJson(v any) (string, error) {
	ret, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(ret), nil
}

func MarshalYaml(v any) (string, error) {
	ret, err := yaml.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("failed to marshal YAML: %w", err)
	}
	return string(ret), nil
}

func init() {
	Names = make([]string, 0, len(Outputs))
	for _, output := range Outputs {
		Names = append(Names, output.GetName())
	}
}
