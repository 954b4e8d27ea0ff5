package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// fileHeader is written above the generated config.
const fileHeader = `audiobar configuration
Colors are ANSI numbers (0-255) or hex (#RRGGBB).
bar.style: normal keeps each bar's height, dynamic re-rolls every frame.`

// fileConfig mirrors Config with a string interval so the file stays readable.
type fileConfig struct {
	Version int          `yaml:"version"`
	Bar     BarConfig    `yaml:"bar"`
	Demo    fileDemo     `yaml:"demo"`
	Output  OutputConfig `yaml:"output"`
}

type fileDemo struct {
	Interval string `yaml:"interval"`
	Steps    int    `yaml:"steps"`
	Loop     bool   `yaml:"loop"`
}

// Marshal renders cfg as commented YAML.
func Marshal(cfg *Config) ([]byte, error) {
	fc := fileConfig{
		Version: cfg.Version,
		Bar:     cfg.Bar,
		Demo: fileDemo{
			Interval: cfg.Demo.Interval.String(),
			Steps:    cfg.Demo.Steps,
			Loop:     cfg.Demo.Loop,
		},
		Output: cfg.Output,
	}

	var root yaml.Node
	if err := root.Encode(fc); err != nil {
		return nil, fmt.Errorf("failed to encode config: %w", err)
	}
	root.HeadComment = fileHeader

	// Colors like "0" must stay quoted or they read back as numbers.
	quoteColors(&root)

	data, err := yaml.Marshal(&root)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}

// Write saves cfg to path, replacing any existing file.
func Write(path string, cfg *Config) error {
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

func quoteColors(root *yaml.Node) {
	barNode := findMapValue(root, "bar")
	if barNode == nil {
		return
	}
	for _, key := range []string{"primary_color", "progress_color"} {
		if n := findMapValue(barNode, key); n != nil && n.Kind == yaml.ScalarNode {
			n.Style = yaml.DoubleQuotedStyle
		}
	}
}

// findMapValue finds the value node for a key in a mapping node.
func findMapValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}
