package bt

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Load reads a tree spec from a .json, .yaml or .yml file.
func Load(path string) (*TreeSpec, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return LoadJSON(f)
	}
}

// LoadJSON decodes and checks a tree spec from JSON.
func LoadJSON(r io.Reader) (*TreeSpec, error) {
	data, err := readNonEmpty(r)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err = json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode json: %w", err)
	}
	return Decode(raw)
}

// LoadYAML decodes and checks a tree spec from YAML.
func LoadYAML(r io.Reader) (*TreeSpec, error) {
	data, err := readNonEmpty(r)
	if err != nil {
		return nil, err
	}
	var raw map[string]any
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode yaml: %w", err)
	}
	return Decode(raw)
}

// Decode maps an already-parsed key/value tree onto a TreeSpec. Missing
// required keys and unknown discriminants are reported with the path of the
// offending node.
func Decode(raw map[string]any) (*TreeSpec, error) {
	if raw == nil {
		return nil, ErrEmptyInput
	}
	if err := checkTree(raw); err != nil {
		return nil, err
	}

	var spec TreeSpec
	if err := mapstructure.Decode(raw, &spec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	if err := spec.Validate(); err != nil {
		return nil, err
	}
	return &spec, nil
}

func readNonEmpty(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, ErrEmptyInput
	}
	return data, nil
}

func checkTree(raw map[string]any) error {
	if _, ok := raw["title"].(string); !ok {
		return missing("", "title")
	}
	root, ok := raw["root"]
	if !ok {
		return missing("", "root")
	}
	return checkNode(root, "root")
}

func checkNode(v any, path string) error {
	node, ok := v.(map[string]any)
	if !ok {
		return fmt.Errorf("%w: %s is not an object", ErrInvalidSpec, path)
	}

	rawType, ok := node["type"]
	if !ok {
		return missing(path, "type")
	}
	t, ok := asInt(rawType)
	if !ok {
		return fmt.Errorf("%w: %s.type is not an integer", ErrInvalidSpec, path)
	}

	var required []string
	switch NodeType(t) {
	case NodeSelector:
		required = []string{"description", "id", "children"}
	case NodeSequence:
		required = []string{"id", "children"}
	case NodeAction:
		required = []string{"description", "id", "parameters"}
	case NodeRandomSelector:
		required = []string{"children"}
	default:
		return fmt.Errorf("%w: %s.type = %d", ErrUnknownNodeType, path, t)
	}
	for _, key := range required {
		if _, ok = node[key]; !ok {
			return missing(path, key)
		}
	}

	if id, present := node["id"]; present {
		if _, ok = asInt(id); !ok {
			return fmt.Errorf("%w: %s.id is not an integer", ErrInvalidSpec, path)
		}
	}
	if d, present := node["description"]; present {
		if _, ok = d.(string); !ok {
			return fmt.Errorf("%w: %s.description is not a string", ErrInvalidSpec, path)
		}
	}

	if NodeType(t) == NodeAction {
		params, isMap := node["parameters"].(map[string]any)
		if !isMap {
			return fmt.Errorf("%w: %s.parameters is not an object", ErrInvalidSpec, path)
		}
		p, present := params["probabilityOfSuccess"]
		if !present {
			return missing(path+".parameters", "probabilityOfSuccess")
		}
		if _, ok = asFloat(p); !ok {
			return fmt.Errorf("%w: %s.parameters.probabilityOfSuccess is not a number", ErrInvalidSpec, path)
		}
		return nil
	}

	children, isList := node["children"].([]any)
	if !isList {
		return fmt.Errorf("%w: %s.children is not a list", ErrInvalidSpec, path)
	}
	for i, child := range children {
		if err := checkNode(child, fmt.Sprintf("%s.children[%d]", path, i)); err != nil {
			return err
		}
	}
	return nil
}

func missing(path, key string) error {
	if path == "" {
		return fmt.Errorf("%w: %s", ErrMissingField, key)
	}
	return fmt.Errorf("%w: %s.%s", ErrMissingField, path, key)
}

// asInt accepts the integer shapes produced by encoding/json and yaml.v3.
func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		if n < math.MinInt || n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case uint64:
		if n > math.MaxInt {
			return 0, false
		}
		return int(n), true
	case float64:
		// float64(math.MaxInt) rounds up to 2^63 on 64-bit platforms.
		if n != math.Trunc(n) || n < math.MinInt || n >= -float64(math.MinInt) {
			return 0, false
		}
		return int(n), true
	default:
		return 0, false
	}
}

func asFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint64:
		return float64(n), true
	default:
		return 0, false
	}
}
