package driver

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ribbon-lang/ribbon/internal/ir"
)

// Manifest represents the parsed contents of ribbon.yml: a named set
// of build targets executed in declaration order.
type Manifest struct {
	Path        string
	Name        string
	Targets     map[string]*TargetSpec
	TargetOrder []string
}

// TargetSpec describes one runnable target from the manifest.
type TargetSpec struct {
	Name   string
	Mode   Mode
	Source string
	Output string
}

// ValidationError aggregates manifest validation failures.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	if len(e.Issues) == 0 {
		return "manifest: invalid configuration"
	}
	var b strings.Builder
	b.WriteString("manifest validation failed:")
	for _, issue := range e.Issues {
		b.WriteString("\n- ")
		b.WriteString(issue)
	}
	return b.String()
}

type rawTarget struct {
	Mode   string `yaml:"mode"`
	Source string `yaml:"source"`
	Output string `yaml:"output"`
}

type rawManifest struct {
	Name    string    `yaml:"name"`
	Targets yaml.Node `yaml:"targets"`
}

// LoadManifest parses a manifest from disk, returning a validated
// manifest with targets in declaration order. Relative source and
// output paths are resolved against the manifest's directory.
func LoadManifest(path string) (*Manifest, error) {
	if path == "" {
		return nil, fmt.Errorf("manifest: empty path")
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(absPath)
	if err != nil {
		return nil, fmt.Errorf("manifest: read %s: %w", absPath, err)
	}

	var raw rawManifest
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("manifest: parse %s: %w", absPath, err)
	}

	m := &Manifest{
		Path:    absPath,
		Name:    raw.Name,
		Targets: map[string]*TargetSpec{},
	}

	var issues []string
	if m.Name == "" {
		issues = append(issues, "missing name")
	}

	baseDir := filepath.Dir(absPath)
	content := raw.Targets.Content
	if raw.Targets.Kind != 0 && raw.Targets.Kind != yaml.MappingNode {
		issues = append(issues, "targets must be a mapping")
		content = nil
	}
	for i := 0; i+1 < len(content); i += 2 {
		name := content[i].Value
		var rt rawTarget
		if err := content[i+1].Decode(&rt); err != nil {
			issues = append(issues, fmt.Sprintf("target %s: %v", name, err))
			continue
		}
		issues = append(issues, validateTarget(name, rt)...)

		mode, _ := ParseMode(rt.Mode)
		spec := &TargetSpec{
			Name:   name,
			Mode:   mode,
			Source: resolvePath(baseDir, rt.Source),
			Output: resolvePath(baseDir, rt.Output),
		}
		m.Targets[name] = spec
		m.TargetOrder = append(m.TargetOrder, name)
	}
	if len(m.TargetOrder) == 0 {
		issues = append(issues, "no targets defined")
	}

	if len(issues) > 0 {
		return nil, &ValidationError{Issues: issues}
	}
	return m, nil
}

func validateTarget(name string, rt rawTarget) []string {
	var issues []string
	mode, err := ParseMode(rt.Mode)
	if err != nil {
		issues = append(issues, fmt.Sprintf("target %s: %v", name, err))
	}
	if rt.Source == "" {
		issues = append(issues, fmt.Sprintf("target %s: missing source", name))
	}
	if err == nil {
		if mode.IsAOT() && rt.Output == "" {
			issues = append(issues, fmt.Sprintf("target %s: mode %s requires an output", name, mode))
		}
		if !mode.IsAOT() && rt.Output != "" {
			issues = append(issues, fmt.Sprintf("target %s: mode %s takes no output", name, mode))
		}
	}
	return issues
}

func resolvePath(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

// Run executes every target in declaration order, stopping at the
// first failure. Interpreted and jitted targets stream to out.
func (m *Manifest) Run(out ir.OutputSink) error {
	for _, name := range m.TargetOrder {
		t := m.Targets[name]
		if err := RunFile(t.Mode, t.Source, t.Output, out); err != nil {
			return fmt.Errorf("target %s: %w", name, err)
		}
	}
	return nil
}
