package residual_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/flownet/residual"
)

// BuildSuite covers construction: validation, slot pairing, and the
// duplicate/antiparallel/self-loop rules.
type BuildSuite struct {
	suite.Suite
}

// TestSingleEdge: one input edge yields a forward arc plus an empty paired
// reverse arc.
func (s *BuildSuite) TestSingleEdge() {
	net, err := residual.Build(2, []residual.Edge{{From: 0, To: 1, Cap: 5}})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 2, net.VertexCount())
	require.Equal(s.T(), 1, net.Degree(0))
	require.Equal(s.T(), 1, net.Degree(1))

	fwd := net.Arc(0, 0)
	require.Equal(s.T(), 1, fwd.To)
	require.Equal(s.T(), 5.0, fwd.Cap)

	rev := net.Arc(1, fwd.Rev)
	require.Equal(s.T(), 0, rev.To)
	require.Equal(s.T(), 0.0, rev.Cap, "reverse arc starts empty")
}

// TestMutualPairing: following Rev from any arc lands on an arc pointing
// straight back.
func (s *BuildSuite) TestMutualPairing() {
	edges := []residual.Edge{
		{From: 0, To: 1, Cap: 10},
		{From: 0, To: 2, Cap: 5},
		{From: 1, To: 3, Cap: 10},
		{From: 2, To: 3, Cap: 10},
	}
	net, err := residual.Build(4, edges)
	require.NoError(s.T(), err)

	for u := 0; u < net.VertexCount(); u++ {
		for i := 0; i < net.Degree(u); i++ {
			a := net.Arc(u, i)
			pair := net.Arc(a.To, a.Rev)
			require.Equal(s.T(), u, pair.To, "pair of arc %d→%d must point back", u, a.To)
			require.Equal(s.T(), i, pair.Rev, "Rev links must be mutual")
		}
	}
}

// TestDuplicateEdgesAccumulate: repeated ordered pairs fold into one slot
// instead of orphaning the first occurrence.
func (s *BuildSuite) TestDuplicateEdgesAccumulate() {
	edges := []residual.Edge{
		{From: 0, To: 1, Cap: 3},
		{From: 0, To: 1, Cap: 2},
		{From: 0, To: 1, Cap: 0},
	}
	net, err := residual.Build(2, edges)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, net.Degree(0), "one slot per ordered pair")
	require.Equal(s.T(), 5.0, net.Arc(0, 0).Cap)
}

// TestAntiparallelShare: opposite edges reuse each other's reverse slots,
// each carrying its own capacity.
func (s *BuildSuite) TestAntiparallelShare() {
	edges := []residual.Edge{
		{From: 0, To: 1, Cap: 5},
		{From: 1, To: 0, Cap: 3},
	}
	net, err := residual.Build(2, edges)
	require.NoError(s.T(), err)
	require.Equal(s.T(), 1, net.Degree(0))
	require.Equal(s.T(), 1, net.Degree(1))

	fwd, bwd := net.Arc(0, 0), net.Arc(1, 0)
	require.Equal(s.T(), 5.0, fwd.Cap)
	require.Equal(s.T(), 3.0, bwd.Cap)
	require.Equal(s.T(), 0, fwd.Rev)
	require.Equal(s.T(), 0, bwd.Rev)
}

// TestSelfLoop: a loop owns a single arc that is its own reverse.
func (s *BuildSuite) TestSelfLoop() {
	net, err := residual.Build(2, []residual.Edge{{From: 1, To: 1, Cap: 4}})
	require.NoError(s.T(), err)
	require.Equal(s.T(), 0, net.Degree(0))
	require.Equal(s.T(), 1, net.Degree(1))

	loop := net.Arc(1, 0)
	require.Equal(s.T(), 1, loop.To)
	require.Equal(s.T(), 4.0, loop.Cap)
	require.Equal(s.T(), 0, loop.Rev, "loop pairs with itself")
}

// TestZeroCapacityEdge still claims its pair of slots.
func (s *BuildSuite) TestZeroCapacityEdge() {
	net, err := residual.Build(2, []residual.Edge{{From: 0, To: 1, Cap: 0}})
	require.NoError(s.T(), err)

	c, ok := net.Capacity(0, 1)
	require.True(s.T(), ok)
	require.Equal(s.T(), 0.0, c)
}

// TestInputUntouched: Build treats the edge slice as read-only.
func (s *BuildSuite) TestInputUntouched() {
	edges := []residual.Edge{
		{From: 0, To: 1, Cap: 3},
		{From: 0, To: 1, Cap: 2},
		{From: 1, To: 0, Cap: 7},
	}
	orig := append([]residual.Edge(nil), edges...)

	_, err := residual.Build(2, edges)
	require.NoError(s.T(), err)
	require.Equal(s.T(), orig, edges)
}

// TestBadOrder rejects vertex counts below 1.
func (s *BuildSuite) TestBadOrder() {
	_, err := residual.Build(0, nil)
	require.True(s.T(), errors.Is(err, residual.ErrBadOrder))

	_, err = residual.Build(-3, nil)
	require.True(s.T(), errors.Is(err, residual.ErrBadOrder))
}

// TestEndpointOutOfRange rejects edges referencing unknown vertices,
// never clamping them.
func (s *BuildSuite) TestEndpointOutOfRange() {
	_, err := residual.Build(2, []residual.Edge{{From: 0, To: 2, Cap: 1}})
	require.True(s.T(), errors.Is(err, residual.ErrVertexOutOfRange))

	_, err = residual.Build(2, []residual.Edge{{From: -1, To: 1, Cap: 1}})
	require.True(s.T(), errors.Is(err, residual.ErrVertexOutOfRange))
}

// TestNegativeCapacity yields EdgeError carrying the offending triple.
func (s *BuildSuite) TestNegativeCapacity() {
	_, err := residual.Build(2, []residual.Edge{{From: 0, To: 1, Cap: -2.5}})
	var ee residual.EdgeError
	require.Error(s.T(), err)
	require.True(s.T(), errors.As(err, &ee), "error must be EdgeError")
	require.Equal(s.T(), 0, ee.From)
	require.Equal(s.T(), 1, ee.To)
	require.Equal(s.T(), -2.5, ee.Cap)
}

func TestBuildSuite(t *testing.T) {
	suite.Run(t, new(BuildSuite))
}
