package config

import (
	"strconv"

	"gopkg.in/yaml.v3"
)

// Suitefile represents the structure of a utext.yaml suite file.
type Suitefile struct {
	Version string             `yaml:"version"`
	Cases   map[string]CaseDTO `yaml:"cases"`
}

// CaseDTO represents a case definition in the suite file.
type CaseDTO struct {
	Source SourceDTO   `yaml:"source"`
	Expect []ExpectDTO `yaml:"expect"`
}

// SourceDTO describes how a case constructs its text.
// Bytes may be given as a list of integers or as a hex string.
type SourceDTO struct {
	Kind     string   `yaml:"kind"`
	Literal  string   `yaml:"literal"`
	Char     string   `yaml:"char"`
	Count    int      `yaml:"count"`
	Units    []uint16 `yaml:"units"`
	Start    int      `yaml:"start"`
	Bytes    []int    `yaml:"bytes"`
	Hex      string   `yaml:"hex"`
	Offset   int      `yaml:"offset"`
	Length   *int     `yaml:"length"`
	Encoding string   `yaml:"encoding"`
}

// ExpectDTO represents one expectation of a case.
type ExpectDTO struct {
	Op   string `yaml:"op"`
	Arg  Scalar `yaml:"arg"`
	Mode string `yaml:"mode"`
	Want Scalar `yaml:"want"`
}

// Scalar accepts any YAML scalar and keeps its literal text, so that
// `want: -1` and `want: "-1"` decode the same way.
type Scalar string

// UnmarshalYAML implements yaml.Unmarshaler.
func (s *Scalar) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return &yaml.TypeError{Errors: []string{"expected a scalar value at line " + strconv.Itoa(node.Line)}}
	}
	*s = Scalar(node.Value)
	return nil
}
