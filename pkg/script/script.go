package script

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type OpType string

const (
	OpPut      OpType = "put"
	OpGet      OpType = "get"
	OpUpdate   OpType = "update"
	OpDelete   OpType = "delete"
	OpSize     OpType = "size"
	OpMin      OpType = "min"
	OpMax      OpType = "max"
	OpHeight   OpType = "height"
	OpValidate OpType = "validate"
)

var keyedOps = map[OpType]bool{
	OpPut:    true,
	OpGet:    true,
	OpUpdate: true,
	OpDelete: true,
}

func (o OpType) Valid() bool {
	switch o {
	case OpSize, OpMin, OpMax, OpHeight, OpValidate:
		return true
	}

	return keyedOps[o]
}

// Keyed reports whether the operation takes a key.
func (o OpType) Keyed() bool {
	return keyedOps[o]
}

// Operation is one step of a script. Key is nil when the document omits
// it or sets it to null.
type Operation struct {
	Op    OpType  `yaml:"op"`
	Key   *string `yaml:"key,omitempty"`
	Value string  `yaml:"value,omitempty"`
}

type Script struct {
	Name       string      `yaml:"name"`
	Operations []Operation `yaml:"operations"`
}

func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrap(err, "unable to parse script")
	}

	for i, op := range s.Operations {
		if !op.Op.Valid() {
			return nil, errors.Errorf("operation #%d: unknown op %q", i, op.Op)
		}
	}

	return &s, nil
}

func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read script %s", path)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrapf(err, "script %s", path)
	}

	return s, nil
}

// KeyString formats an operation key for display.
func KeyString(key *string) string {
	if key == nil {
		return "<nil>"
	}

	return *key
}
