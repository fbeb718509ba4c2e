package bt

import (
	"fmt"
	"math"
)

// Builder turns declarative specs into node graphs. It carries the
// collaborators every built node is wired with and never evaluates nodes.
type Builder struct {
	oracle Oracle
	opts   []Option
}

// NewBuilder creates a builder whose Selectors consult oracle. All nodes
// built by one builder share the same observer and random source.
func NewBuilder(oracle Oracle, opts ...Option) *Builder {
	o := newOptions(opts)
	return &Builder{
		oracle: oracle,
		opts:   []Option{WithObserver(o.observer), WithRand(o.rand)},
	}
}

// BuildTree builds the root node of spec and installs it in a Tree named by
// its Title. Nothing is returned on failure.
func (b *Builder) BuildTree(spec *TreeSpec) (*Tree, error) {
	if spec == nil {
		return nil, ErrEmptyInput
	}
	root, err := b.build(spec.Root, "root")
	if err != nil {
		return nil, err
	}
	tree := NewTree(spec.Title)
	if err = tree.SetRootChild(root); err != nil {
		return nil, err
	}
	return tree, nil
}

// Build builds a single subtree.
func (b *Builder) Build(spec NodeSpec) (Node, error) {
	return b.build(spec, "root")
}

func (b *Builder) build(spec NodeSpec, path string) (Node, error) {
	switch spec.Type {
	case NodeSelector:
		if b.oracle == nil {
			return nil, fmt.Errorf("%s: %w", path, ErrNoOracle)
		}
		sel := NewSelector(spec.ID, spec.Description, b.oracle, b.opts...)
		if err := b.attach(sel, spec.Children, path); err != nil {
			return nil, err
		}
		return sel, nil

	case NodeSequence:
		seq := NewSequence(spec.ID)
		if err := b.attach(seq, spec.Children, path); err != nil {
			return nil, err
		}
		return seq, nil

	case NodeAction:
		if spec.Parameters == nil {
			return nil, fmt.Errorf("%w: %s.parameters", ErrMissingField, path)
		}
		p := spec.Parameters.ProbabilityOfSuccess
		if math.IsNaN(p) || p < 0 || p > 1 {
			return nil, fmt.Errorf("%w: %s.parameters.probabilityOfSuccess = %v", ErrInvalidSpec, path, p)
		}
		return NewAction(spec.ID, spec.Description, p, b.opts...), nil

	case NodeRandomSelector:
		rs := NewRandomSelector(b.opts...)
		rs.SetID(spec.ID)
		if err := b.attach(rs, spec.Children, path); err != nil {
			return nil, err
		}
		return rs, nil

	default:
		return nil, fmt.Errorf("%w: %s.type = %d", ErrUnknownNodeType, path, int(spec.Type))
	}
}

func (b *Builder) attach(parent Composite, children []NodeSpec, path string) error {
	for i, childSpec := range children {
		child, err := b.build(childSpec, fmt.Sprintf("%s.children[%d]", path, i))
		if err != nil {
			return err
		}
		if err = parent.AddChild(child); err != nil {
			return fmt.Errorf("%s.children[%d]: %w", path, i, err)
		}
	}
	return nil
}
