package bt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const breakfastJSON = `{"title":"Breakfast","root":{"type":1,"id":0,"children":[{"type":2,"id":1,"description":"MakeCoffee","parameters":{"probabilityOfSuccess":1.0}},{"type":2,"id":2,"description":"ToastBread","parameters":{"probabilityOfSuccess":1.0}}]}}`

func TestBuildBreakfast(t *testing.T) {
	spec, err := LoadJSON(strings.NewReader(breakfastJSON))
	require.NoError(t, err)

	seen := &notices{}
	tree, err := NewBuilder(nil, WithObserver(seen), WithRand(NewRand(1))).BuildTree(spec)
	require.NoError(t, err)

	assert.Equal(t, "Breakfast", tree.Name())
	assert.True(t, tree.Run())
	assert.Equal(t, []Notice{
		{Kind: NoticeActionSuccess, ID: 1, Name: "MakeCoffee"},
		{Kind: NoticeActionSuccess, ID: 2, Name: "ToastBread"},
	}, seen.got)
}

func TestBuildShape(t *testing.T) {
	spec, err := Load("testdata/mood.yaml")
	require.NoError(t, err)

	oracle := OracleFunc(func() int { return 1 })
	tree, err := NewBuilder(oracle, WithRand(NewRand(1))).BuildTree(spec)
	require.NoError(t, err)

	sel, ok := tree.Root().Child().(*Selector)
	require.True(t, ok)
	assert.Equal(t, "HowDoIFeel", sel.Name())
	assert.Equal(t, 0, sel.ID())

	children := sel.Children()
	require.Len(t, children, 3)

	smile, ok := children[0].(*Action)
	require.True(t, ok)
	assert.Equal(t, "Smile", smile.Description())
	assert.Equal(t, 1.0, smile.Probability())

	seq, ok := children[1].(*Sequence)
	require.True(t, ok)
	assert.Equal(t, 2, seq.ID())
	assert.Len(t, seq.Children(), 2)

	rs, ok := children[2].(*RandomSelector)
	require.True(t, ok)
	assert.Equal(t, 5, rs.ID())
	assert.Len(t, rs.Children(), 2)
}

func TestBuildDispatchesThroughOracle(t *testing.T) {
	spec, err := Load("testdata/mood.yaml")
	require.NoError(t, err)

	signal := 0
	seen := &notices{}
	tree, err := NewBuilder(OracleFunc(func() int { return signal }), WithObserver(seen), WithRand(NewRand(5))).BuildTree(spec)
	require.NoError(t, err)

	names := func() []string {
		out := make([]string, 0, len(seen.got))
		for _, n := range seen.got {
			out = append(out, n.Kind.String()+":"+n.Name)
		}
		seen.got = nil
		return out
	}

	assert.True(t, tree.Run())
	assert.Equal(t, []string{"select:HowDoIFeel", "succeeded:Smile"}, names())

	// the sequence fails on Shrug but the selector still reports success
	signal = 1
	assert.True(t, tree.Run())
	assert.Equal(t, []string{"select:HowDoIFeel", "succeeded:Sigh", "failed:Shrug"}, names())

	signal = 2
	assert.True(t, tree.Run())
	got := names()
	assert.Equal(t, "select:HowDoIFeel", got[0])
	assert.Equal(t, "succeeded:StompFeet", got[len(got)-1])
}

func TestBuildRequiresOracleForSelector(t *testing.T) {
	spec := NodeSpec{Type: NodeSelector, Description: "s", Children: []NodeSpec{
		{Type: NodeAction, Description: "a", Parameters: &Parameters{ProbabilityOfSuccess: 1}},
		{Type: NodeAction, Description: "b", Parameters: &Parameters{ProbabilityOfSuccess: 1}},
	}}
	node, err := NewBuilder(nil).Build(spec)
	assert.ErrorIs(t, err, ErrNoOracle)
	assert.Nil(t, node)
}

func TestBuildUnknownType(t *testing.T) {
	spec := NodeSpec{Type: NodeSequence, Children: []NodeSpec{
		{Type: NodeAction, Description: "a", Parameters: &Parameters{ProbabilityOfSuccess: 1}},
		{Type: NodeType(9)},
	}}
	node, err := NewBuilder(nil).Build(spec)
	require.ErrorIs(t, err, ErrUnknownNodeType)
	assert.Contains(t, err.Error(), "root.children[1]")
	assert.Nil(t, node)
}

func TestBuildTreeNoPartialTree(t *testing.T) {
	spec := &TreeSpec{Title: "broken", Root: NodeSpec{Type: NodeSequence, Children: []NodeSpec{
		{Type: NodeAction, Description: "a"},
	}}}
	tree, err := NewBuilder(nil).BuildTree(spec)
	assert.ErrorIs(t, err, ErrMissingField)
	assert.Nil(t, tree)

	_, err = NewBuilder(nil).BuildTree(nil)
	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestBuildRejectsProbabilityOutOfRange(t *testing.T) {
	for _, p := range []float64{-0.1, 1.5} {
		_, err := NewBuilder(nil).Build(NodeSpec{Type: NodeAction, Parameters: &Parameters{ProbabilityOfSuccess: p}})
		assert.ErrorIs(t, err, ErrInvalidSpec)
	}
}

func TestBuilderSharesRand(t *testing.T) {
	spec := NodeSpec{Type: NodeSequence, Children: []NodeSpec{
		{Type: NodeAction, Parameters: &Parameters{ProbabilityOfSuccess: 0.5}},
		{Type: NodeAction, Parameters: &Parameters{ProbabilityOfSuccess: 0.5}},
	}}
	src := NewRand(1)
	node, err := NewBuilder(nil, WithRand(src)).Build(spec)
	require.NoError(t, err)

	for _, child := range node.(*Sequence).Children() {
		assert.Same(t, src, child.(*Action).rand)
	}
}
