package bt

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/go-playground/validator/v10"
)

// NodeType is the integer discriminant of a declarative node.
type NodeType int

const (
	NodeSelector       NodeType = 0
	NodeSequence       NodeType = 1
	NodeAction         NodeType = 2
	NodeRandomSelector NodeType = 3
)

func (t NodeType) String() string {
	switch t {
	case NodeSelector:
		return "Selector"
	case NodeSequence:
		return "Sequence"
	case NodeAction:
		return "Action"
	case NodeRandomSelector:
		return "RandomSelector"
	default:
		return "NodeType(" + strconv.Itoa(int(t)) + ")"
	}
}

// TreeSpec is the declarative description of a whole tree.
type TreeSpec struct {
	Title string   `json:"title" yaml:"title" mapstructure:"title"`
	Root  NodeSpec `json:"root" yaml:"root" mapstructure:"root"`
}

// NodeSpec describes one node and, for composites, its children in order.
// Type 3 (RandomSelector) extends the Breakfast format, whose readers only
// know 0, 1 and 2; files using it are not portable to those readers.
type NodeSpec struct {
	Type        NodeType    `json:"type" yaml:"type" mapstructure:"type"`
	ID          int         `json:"id" yaml:"id" mapstructure:"id"`
	Description string      `json:"description,omitempty" yaml:"description,omitempty" mapstructure:"description"`
	Children    []NodeSpec  `json:"children,omitempty" yaml:"children,omitempty" mapstructure:"children" validate:"dive"`
	Parameters  *Parameters `json:"parameters,omitempty" yaml:"parameters,omitempty" mapstructure:"parameters"`
}

type Parameters struct {
	ProbabilityOfSuccess float64 `json:"probabilityOfSuccess" yaml:"probabilityOfSuccess" mapstructure:"probabilityOfSuccess" validate:"gte=0,lte=1"`
}

var validate = validator.New()

// Validate checks field ranges; key presence is checked while decoding.
func (s *TreeSpec) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSpec, err)
	}
	return nil
}

// Fingerprint is a stable hash of the TreeSpec, logged so a run can be tied to the
// exact tree it executed.
func (s *TreeSpec) Fingerprint() uint64 {
	data, err := json.Marshal(s)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}

// Count returns the number of nodes in the subtree rooted at s.
func (s *NodeSpec) Count() int {
	n := 1
	for i := range s.Children {
		n += s.Children[i].Count()
	}
	return n
}
