package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/kelvaren/waypath/core"
)

type GraphSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *GraphSuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *GraphSuite) TestNewGraphIsEmpty() {
	require := require.New(s.T())
	require.Zero(s.g.NodeCount(), "fresh graph should have no nodes")
	require.Zero(s.g.ArcCount(), "fresh graph should have no arcs")
	require.Empty(s.g.Nodes(), "fresh graph should list no nodes")
}

func (s *GraphSuite) TestAddNodeAndLookup() {
	require := require.New(s.T())
	require.False(s.g.HasNode(1), "empty graph should not have node 1")

	s.g.AddNode(core.Node{ID: 1, X: 10, Y: 20})
	require.True(s.g.HasNode(1), "graph should have node 1 after AddNode")

	n, ok := s.g.Node(1)
	require.True(ok, "Node(1) should report existence")
	require.Equal(int64(10), n.X, "X coordinate should round-trip")
	require.Equal(int64(20), n.Y, "Y coordinate should round-trip")

	// Unknown ID yields the zero Node and ok=false.
	_, ok = s.g.Node(99)
	require.False(ok, "Node(99) should not exist")
}

func (s *GraphSuite) TestAddNodeLastWriteWins() {
	require := require.New(s.T())
	s.g.AddNode(core.Node{ID: 7, X: 1, Y: 1})
	s.g.AddNode(core.Node{ID: 7, X: 5, Y: 6})

	require.Equal(1, s.g.NodeCount(), "duplicate insertion should not increase count")
	n, ok := s.g.Node(7)
	require.True(ok)
	require.Equal(int64(5), n.X, "second insertion's X should win")
	require.Equal(int64(6), n.Y, "second insertion's Y should win")
}

func (s *GraphSuite) TestAddEdgeMaterializesBothArcs() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(1, 2, 4))

	fwd := s.g.Arcs(1)
	require.Len(fwd, 1, "node 1 should have one outgoing arc")
	require.Equal(core.Edge{From: 1, To: 2, Weight: 4}, fwd[0])

	rev := s.g.Arcs(2)
	require.Len(rev, 1, "node 2 should have the mirror arc")
	require.Equal(core.Edge{From: 2, To: 1, Weight: 4}, rev[0])

	require.Equal(2, s.g.ArcCount(), "one logical edge stores two arcs")
}

func (s *GraphSuite) TestAddEdgeParallelEdgesAccumulate() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(1, 2, 7))
	require.NoError(s.g.AddEdge(1, 2, 3))

	arcs := s.g.Arcs(1)
	require.Len(arcs, 2, "parallel edges should both be stored")
	require.Equal(int64(7), arcs[0].Weight, "insertion order should be preserved")
	require.Equal(int64(3), arcs[1].Weight, "insertion order should be preserved")
	require.Equal(4, s.g.ArcCount(), "two logical edges store four arcs")
}

func (s *GraphSuite) TestAddEdgeUnknownEndpointsTolerated() {
	require := require.New(s.T())
	// No AddNode calls at all: adjacency for unknown IDs is legal.
	require.NoError(s.g.AddEdge(100, 200, 1))
	require.False(s.g.HasNode(100), "AddEdge should not create node entries")
	require.Len(s.g.Arcs(100), 1, "arc should exist despite missing node entry")
}

func (s *GraphSuite) TestAddEdgeRejectsNegativeWeight() {
	require := require.New(s.T())
	err := s.g.AddEdge(1, 2, -5)
	require.ErrorIs(err, core.ErrNegativeWeight, "negative weight must be rejected")
	require.Zero(s.g.ArcCount(), "rejected edge should leave no arcs behind")
}

func (s *GraphSuite) TestAddEdgeZeroWeightAllowed() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(1, 2, 0), "zero weight is a valid non-negative weight")
	require.Equal(2, s.g.ArcCount())
}

func (s *GraphSuite) TestSelfLoopStoresBothArcs() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(9, 9, 10))
	require.Len(s.g.Arcs(9), 2, "undirected self-loop stores arc and mirror")
}

func (s *GraphSuite) TestNodesSortedByID() {
	require := require.New(s.T())
	s.g.AddNode(core.Node{ID: 3})
	s.g.AddNode(core.Node{ID: 1})
	s.g.AddNode(core.Node{ID: 2})

	ids := make([]int64, 0, 3)
	for _, n := range s.g.Nodes() {
		ids = append(ids, n.ID)
	}
	require.Equal([]int64{1, 2, 3}, ids, "Nodes should be sorted by ascending ID")
}

func (s *GraphSuite) TestArcsReturnsCopy() {
	require := require.New(s.T())
	require.NoError(s.g.AddEdge(1, 2, 5))

	arcs := s.g.Arcs(1)
	arcs[0].Weight = 999
	require.Equal(int64(5), s.g.Arcs(1)[0].Weight, "mutating the returned slice must not touch the graph")

	require.Nil(s.g.Arcs(42), "Arcs of an ID with no adjacency should be nil")
}

func (s *GraphSuite) TestClear() {
	require := require.New(s.T())
	s.g.AddNode(core.Node{ID: 1})
	require.NoError(s.g.AddEdge(1, 2, 3))

	s.g.Clear()
	require.Zero(s.g.NodeCount(), "Clear should drop all nodes")
	require.Zero(s.g.ArcCount(), "Clear should drop all arcs")

	// Graph remains usable after Clear.
	s.g.AddNode(core.Node{ID: 4})
	require.True(s.g.HasNode(4))
}

func (s *GraphSuite) TestCloneIsDeep() {
	require := require.New(s.T())
	s.g.AddNode(core.Node{ID: 1, X: 2, Y: 3})
	require.NoError(s.g.AddEdge(1, 2, 8))

	c := s.g.Clone()
	require.Equal(s.g.NodeCount(), c.NodeCount(), "clone should carry all nodes")
	require.Equal(s.g.ArcCount(), c.ArcCount(), "clone should carry all arcs")

	// Mutating the clone must not leak into the original.
	c.AddNode(core.Node{ID: 99})
	require.NoError(c.AddEdge(1, 3, 1))
	require.False(s.g.HasNode(99), "clone node must not appear in original")
	require.Len(s.g.Arcs(1), 1, "clone edge must not appear in original")
}

func TestGraphSuite(t *testing.T) {
	suite.Run(t, new(GraphSuite))
}
