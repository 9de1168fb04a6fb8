// Package describe renders the function description the orchestrator uploads
// alongside the wasm binary: exports, parameter types, results and mounts.
package describe

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"wasmiot-abc/internal/config"
)

// ModuleName is the name the module is registered under.
const ModuleName = "abc"

// Mount stages, as understood by the orchestrator.
const (
	StageDeployment = "deployment" // provisioned once when the module is deployed
	StageExecution  = "execution"  // provisioned before every call
	StageOutput     = "output"     // collected after the call returns
)

const octetStream = "application/octet-stream"

type Export struct {
	Name           string `json:"name" yaml:"name"`
	ParameterCount int    `json:"parameterCount" yaml:"parameterCount"`
}

type Parameter struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

type Mount struct {
	MediaType string `json:"mediaType" yaml:"mediaType"`
	Stage     string `json:"stage" yaml:"stage"`
}

type Function struct {
	Parameters []Parameter      `json:"parameters" yaml:"parameters"`
	Method     string           `json:"method" yaml:"method"`
	Output     string           `json:"output" yaml:"output"`
	Mounts     map[string]Mount `json:"mounts" yaml:"mounts"`
}

type Module struct {
	Name      string              `json:"name" yaml:"name"`
	Exports   []Export            `json:"exports" yaml:"exports"`
	Functions map[string]Function `json:"functions" yaml:"functions"`
}

// Build describes the exports for the mount names in cfg.
func Build(cfg *config.Config) Module {
	if cfg == nil {
		cfg = config.Default()
	}
	m := cfg.Mounts

	fns := map[string]Function{
		"a": {
			Parameters: []Parameter{{Name: "p0", Type: "u32"}, {Name: "p1", Type: "f32"}},
			Method:     "GET",
			Output:     "i32",
			Mounts: map[string]Mount{
				m.Deploy: {MediaType: octetStream, Stage: StageDeployment},
				m.Exec:   {MediaType: octetStream, Stage: StageExecution},
			},
		},
		"b": {
			Parameters: []Parameter{},
			Method:     "GET",
			Output:     "f32",
			Mounts:     map[string]Mount{},
		},
		"c": {
			Parameters: []Parameter{},
			Method:     "POST",
			Output:     "u32",
			Mounts: map[string]Mount{
				m.Out: {MediaType: octetStream, Stage: StageOutput},
			},
		},
	}

	exports := make([]Export, 0, len(fns))
	for _, name := range []string{"a", "b", "c"} {
		exports = append(exports, Export{Name: name, ParameterCount: len(fns[name].Parameters)})
	}

	return Module{Name: ModuleName, Exports: exports, Functions: fns}
}

// Render encodes m as "json" or "yaml".
func Render(m Module, format string) ([]byte, error) {
	switch format {
	case "json":
		out, err := json.MarshalIndent(m, "", "    ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(out, '\n'), nil
	case "yaml":
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(m); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return buf.Bytes(), nil
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
}
