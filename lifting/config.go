// SPDX-License-Identifier: MIT
//
// File: config.go
// Role: Construction-time configuration and its strict YAML decoding.
// AI-HINT (file):
//   - feature_lifting absent → domain default; null → None; string → Some(name).
//   - Any other key is ErrUnknownOption.

package lifting

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/topolift/feature"
)

// Config keys.
const (
	KeyFeatureLifting   = "feature_lifting"
	KeyPreserveEdgeAttr = "preserve_edge_attr"
)

// Config enumerates the recognized construction-time options.
// The zero value selects the domain's default strategy and does not
// preserve edge attributes.
type Config struct {
	// FeatureLifting selects the strategy; nil means the domain default.
	FeatureLifting *feature.Name

	// PreserveEdgeAttr carries edge_attr onto the graph (Graph domain only).
	PreserveEdgeAttr bool
}

// WithFeatureLifting returns a copy of c selecting strategy n.
func (c Config) WithFeatureLifting(n feature.Name) Config {
	c.FeatureLifting = &n

	return c
}

// featureLifting resolves the strategy name for domain d.
func (c Config) featureLifting(d Domain) feature.Name {
	if c.FeatureLifting == nil {
		return d.DefaultFeatureLifting()
	}

	return *c.FeatureLifting
}

// UnmarshalYAML decodes a mapping of recognized keys and rejects others.
func (c *Config) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("Config: line %d: expected mapping: %w", node.Line, ErrUnknownOption)
	}
	var out Config
	for i := 0; i+1 < len(node.Content); i += 2 {
		key, val := node.Content[i], node.Content[i+1]
		switch key.Value {
		case KeyFeatureLifting:
			n, err := decodeName(val)
			if err != nil {
				return err
			}
			out.FeatureLifting = &n
		case KeyPreserveEdgeAttr:
			if err := val.Decode(&out.PreserveEdgeAttr); err != nil {
				return fmt.Errorf("Config: %s: %w", KeyPreserveEdgeAttr, err)
			}
		default:
			return fmt.Errorf("Config: line %d: %q: %w", key.Line, key.Value, ErrUnknownOption)
		}
	}
	*c = out

	return nil
}

// decodeName maps a YAML null to None and a string scalar to Some.
func decodeName(val *yaml.Node) (feature.Name, error) {
	if val.Kind == yaml.ScalarNode && val.ShortTag() == "!!null" {
		return feature.None, nil
	}
	var s string
	if val.Kind != yaml.ScalarNode || val.Decode(&s) != nil || s == "" {
		return feature.None, fmt.Errorf("Config: line %d: %s must be a name or null: %w",
			val.Line, KeyFeatureLifting, ErrUnknownOption)
	}

	return feature.Some(s), nil
}

// MarshalYAML emits only the keys that differ from the defaults.
func (c Config) MarshalYAML() (any, error) {
	out := map[string]any{}
	if c.FeatureLifting != nil {
		if name, ok := c.FeatureLifting.Get(); ok {
			out[KeyFeatureLifting] = name
		} else {
			out[KeyFeatureLifting] = nil
		}
	}
	if c.PreserveEdgeAttr {
		out[KeyPreserveEdgeAttr] = true
	}

	return out, nil
}

// LoadConfig decodes a YAML document from r. An empty document yields the
// zero Config.
func LoadConfig(r io.Reader) (Config, error) {
	var c Config
	if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("LoadConfig: %w", err)
	}

	return c, nil
}

// ParseConfig decodes a YAML document held in b.
func ParseConfig(b []byte) (Config, error) {
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return Config{}, fmt.Errorf("ParseConfig: %w", err)
	}

	return c, nil
}
