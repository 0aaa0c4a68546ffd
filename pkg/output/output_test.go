package output

import (
	"encoding/json"
	"strings"
	"testing"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

func testNamespaces() []corev1.Namespace {
	return []corev1.Namespace{
		{ObjectMeta: metav1.ObjectMeta{Name: "clab-clabmcp", Labels: map[string]string{"eda.nokia.com/managed": "true"}}},
		{ObjectMeta: metav1.ObjectMeta{Name: "default"}},
	}
}

func TestJsonPrintObj(t *testing.T) {
	out, err := Json.PrintObj(testNamespaces())
	t.Run("processes the list", func(t *testing.T) {
		if err != nil {
			t.Fatalf("Error printing namespace list as JSON: %v", err)
		}
	})
	t.Run("outputs valid JSON", func(t *testing.T) {
		var result []map[string]any
		if err := json.Unmarshal([]byte(out), &result); err != nil {
			t.Errorf("Output is not valid JSON: %v\nOutput: %s", err, out)
		}
		if len(result) != 2 {
			t.Errorf("Expected 2 items, got %d", len(result))
		}
	})
	t.Run("is indented with two spaces", func(t *testing.T) {
		if !strings.Contains(out, "\n  {") {
			t.Errorf("Expected two-space indentation in JSON output: %s", out)
		}
	})
	t.Run("empty list renders as an empty array", func(t *testing.T) {
		empty, err := Json.PrintObj([]corev1.Namespace{})
		if err != nil || empty != "[]" {
			t.Errorf("Expected [] for empty list, got %q (%v)", empty, err)
		}
	})
}

func TestYamlPrintObj(t *testing.T) {
	out, err := Yaml.PrintObj(testNamespaces())
	if err != nil {
		t.Fatalf("Error printing namespace list as YAML: %v", err)
	}
	t.Run("contains expected namespace data", func(t *testing.T) {
		if !strings.Contains(out, "name: clab-clabmcp") {
			t.Errorf("Expected namespace name in YAML output: %s", out)
		}
		if !strings.Contains(out, "eda.nokia.com/managed: \"true\"") {
			t.Errorf("Expected quoted label value in YAML output: %s", out)
		}
	})
}

func TestFromString(t *testing.T) {
	t.Run("resolves known outputs", func(t *testing.T) {
		if FromString("json") != Json {
			t.Errorf("Expected json output")
		}
		if FromString("yaml") != Yaml {
			t.Errorf("Expected yaml output")
		}
	})
	t.Run("returns nil for unknown outputs", func(t *testing.T) {
		if FromString("table") != nil {
			t.Errorf("Expected nil for unknown output")
		}
	})
	t.Run("names are registered", func(t *testing.T) {
		if strings.Join(Names, ",") != "json,yaml" {
			t.Errorf("Unexpected output names: %v", Names)
		}
	})
}
