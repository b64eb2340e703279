package network_test

import (
	"bytes"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/roadnet/edgelist"
	"github.com/katalvlaran/roadnet/matrix"
	"github.com/katalvlaran/roadnet/network"
)

func load(t *testing.T, file string) *network.Network {
	t.Helper()
	n := network.New(network.WithSearchDirs("testdata"))
	require.NoError(t, n.Load(file))

	return n
}

func loadString(t *testing.T, in string) *network.Network {
	t.Helper()
	n := network.New()
	require.NoError(t, n.LoadReader(strings.NewReader(in)))

	return n
}

func at(t *testing.T, m *matrix.Dense, i, j int) int64 {
	t.Helper()
	v, err := m.At(i, j)
	require.NoError(t, err)

	return v
}

// ------------------------------------------------------------------------
// Empty state
// ------------------------------------------------------------------------

func TestNetwork_EmptyAnswers(t *testing.T) {
	n := network.New()

	assert.False(t, n.Loaded())
	assert.Nil(t, n.Vertices())
	assert.Nil(t, n.DirectDistances())
	assert.Nil(t, n.AllShortestDistances())
	assert.False(t, n.IsStronglyConnected())
	assert.Equal(t, network.NotFound, n.ShortestDistance("A", "B"))

	_, _, err := n.ShortestRoute("A", "B")
	assert.ErrorIs(t, err, network.ErrNoNetwork)
}

// ------------------------------------------------------------------------
// Construction
// ------------------------------------------------------------------------

func TestLoad_SortedDistinctVertices(t *testing.T) {
	n := load(t, "city.txt")
	assert.Equal(t, []string{"Harbour", "Market", "Station", "University"}, n.Vertices())
	assert.Equal(t, 4, n.DirectDistances().Rows())
	assert.Equal(t, 7, n.Roads())

	i, ok := n.Index("Station")
	assert.True(t, ok)
	assert.Equal(t, 2, i)
	_, ok = n.Index("Airport")
	assert.False(t, ok)
}

func TestLoad_LastWriteWins(t *testing.T) {
	n := loadString(t, "A,B,3\nA,B,7\n")
	assert.Equal(t, int64(7), at(t, n.DirectDistances(), 0, 1))

	// city.txt lists Harbour→Market as 4 then 6.
	c := load(t, "city.txt")
	assert.Equal(t, int64(6), at(t, c.DirectDistances(), 0, 1))
}

func TestLoad_DirectedNotSymmetric(t *testing.T) {
	n := loadString(t, "A,B,5\n")
	d := n.DirectDistances()
	assert.Equal(t, int64(5), at(t, d, 0, 1))
	assert.Equal(t, matrix.Inf, at(t, d, 1, 0))
	assert.Equal(t, int64(5), n.ShortestDistance("A", "B"))
	assert.Equal(t, network.Unreachable, n.ShortestDistance("B", "A"))
}

func TestLoad_DiagonalAlwaysInf(t *testing.T) {
	n := loadString(t, "A,A,4\nA,B,1\nB,A,2\n")
	d := n.DirectDistances()
	assert.Equal(t, matrix.Inf, at(t, d, 0, 0))
	assert.Equal(t, matrix.Inf, at(t, d, 1, 1))
}

func TestLoad_SingleVertexNoEdges(t *testing.T) {
	n := load(t, "single.txt")
	assert.Equal(t, []string{"Depot"}, n.Vertices())
	assert.Equal(t, 0, n.Roads())
	assert.True(t, n.IsStronglyConnected())

	all := n.AllShortestDistances()
	require.NotNil(t, all)
	assert.Equal(t, 1, all.Rows())
	assert.Equal(t, matrix.Inf, at(t, all, 0, 0))
}

func TestLoad_EmptyInput(t *testing.T) {
	n := loadString(t, "")
	assert.True(t, n.Loaded())
	assert.Empty(t, n.Vertices())
	assert.NotNil(t, n.Vertices())
	assert.True(t, n.IsStronglyConnected())
	assert.Equal(t, 0, n.AllShortestDistances().Rows())
}

func TestLoadRecords(t *testing.T) {
	n := network.New()
	require.NoError(t, n.LoadRecords([]edgelist.Record{{From: "Y", To: "X", Weight: 2}}))
	assert.Equal(t, []string{"X", "Y"}, n.Vertices())
	assert.Equal(t, int64(2), at(t, n.DirectDistances(), 1, 0))
}

func TestBuild(t *testing.T) {
	vertices, dist, err := network.Build([]edgelist.Record{
		{From: "C", To: "A", Weight: 1},
		{From: "B", To: "C", Weight: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, vertices)
	assert.Equal(t, int64(1), at(t, dist, 2, 0))
	assert.Equal(t, int64(2), at(t, dist, 1, 2))
	assert.Equal(t, matrix.Inf, at(t, dist, 0, 2))
}

// ------------------------------------------------------------------------
// Failed loads
// ------------------------------------------------------------------------

func TestLoad_OneMalformedLineLoadsNothing(t *testing.T) {
	n := network.New(network.WithSearchDirs("testdata"))
	err := n.Load("one_bad_line.txt")
	require.ErrorIs(t, err, edgelist.ErrMalformedRecord)
	assert.False(t, n.Loaded())
	assert.Nil(t, n.Vertices())
}

func TestLoad_FailureClearsPreviousNetwork(t *testing.T) {
	n := load(t, "cycle.txt")
	require.True(t, n.IsStronglyConnected())

	err := n.Load("one_bad_line.txt")
	require.ErrorIs(t, err, edgelist.ErrMalformedRecord)
	assert.Nil(t, n.Vertices())
	assert.Nil(t, n.DirectDistances())

	require.NoError(t, n.Load("cycle.txt"))
	err = n.Load("missing.txt")
	require.ErrorIs(t, err, edgelist.ErrSourceNotFound)
	assert.False(t, n.Loaded())
}

func TestLoad_ReplacesPreviousNetwork(t *testing.T) {
	n := load(t, "cycle.txt")
	require.NoError(t, n.Load("city.txt"))
	assert.Equal(t, "Harbour", n.Vertices()[0])
}

func TestLoad_LogsOutcome(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	n := network.New(network.WithLogger(logger), network.WithSearchDirs("testdata"))

	require.NoError(t, n.Load("path.txt"))
	assert.Contains(t, buf.String(), "network loaded")
	assert.Contains(t, buf.String(), "intersections=3")

	buf.Reset()
	require.Error(t, n.Load(filepath.Join("testdata", "one_bad_line.txt")))
	assert.Contains(t, buf.String(), "malformed data")
}

// ------------------------------------------------------------------------
// Connectivity
// ------------------------------------------------------------------------

func TestIsStronglyConnected(t *testing.T) {
	assert.False(t, load(t, "path.txt").IsStronglyConnected())
	assert.True(t, load(t, "cycle.txt").IsStronglyConnected())
	assert.True(t, load(t, "city.txt").IsStronglyConnected())
}

// ------------------------------------------------------------------------
// Shortest distances
// ------------------------------------------------------------------------

func TestShortestDistance(t *testing.T) {
	n := load(t, "city.txt")

	cases := []struct {
		from, to string
		want     int64
	}{
		{"Harbour", "Market", 3},     // via Station
		{"Harbour", "University", 8}, // Station→Market→University
		{"University", "Station", 5},
		{"Market", "Harbour", 8},
		{"Harbour", "Harbour", 0},
		{"Harbour", "Airport", network.NotFound},
		{"X", "Y", network.NotFound},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, n.ShortestDistance(tc.from, tc.to), "%s→%s", tc.from, tc.to)
	}
}

func TestShortestDistance_UnreachableDistinctFromNotFound(t *testing.T) {
	n := load(t, "path.txt")
	assert.Equal(t, network.Unreachable, n.ShortestDistance("C", "A"))
	assert.Equal(t, network.NotFound, n.ShortestDistance("C", "Z"))
	assert.NotEqual(t, network.Unreachable, network.NotFound)
}

func TestShortestRoute(t *testing.T) {
	n := load(t, "city.txt")

	route, d, err := n.ShortestRoute("Harbour", "University")
	require.NoError(t, err)
	assert.Equal(t, int64(8), d)
	assert.Equal(t, []string{"Harbour", "Station", "Market", "University"}, route)

	_, _, err = n.ShortestRoute("Harbour", "Airport")
	assert.ErrorIs(t, err, network.ErrUnknownVertex)

	p := load(t, "path.txt")
	_, _, err = p.ShortestRoute("C", "A")
	assert.ErrorIs(t, err, network.ErrUnreachable)
}

func TestShortestRoute_ZeroLengthIsNotUnreachable(t *testing.T) {
	n := loadString(t, "A,B,0\n")
	route, d, err := n.ShortestRoute("A", "B")
	require.NoError(t, err)
	assert.Equal(t, int64(0), d)
	assert.Equal(t, []string{"A", "B"}, route)
}

func TestAllShortestDistances_DoesNotMutateDirect(t *testing.T) {
	n := load(t, "city.txt")
	before := n.DirectDistances().Clone()

	all := n.AllShortestDistances()
	require.NotNil(t, all)
	assert.True(t, before.Equal(n.DirectDistances()))

	require.NoError(t, all.Set(0, 1, 999))
	assert.Equal(t, int64(6), at(t, n.DirectDistances(), 0, 1))
}

func TestAllShortestDistances_NeverExceedsDirect(t *testing.T) {
	n := load(t, "city.txt")
	direct, all := n.DirectDistances(), n.AllShortestDistances()

	for i := range n.Vertices() {
		for j := range n.Vertices() {
			assert.LessOrEqual(t, at(t, all, i, j), at(t, direct, i, j), "(%d,%d)", i, j)
		}
	}
}

func TestAllShortestDistances_AgreesWithShortestDistance(t *testing.T) {
	n := load(t, "city.txt")
	all := n.AllShortestDistances()
	labels := n.Vertices()

	for i, from := range labels {
		for j, to := range labels {
			if i == j {
				continue
			}
			want := at(t, all, i, j)
			if want == matrix.Inf {
				assert.Equal(t, network.Unreachable, n.ShortestDistance(from, to))
				continue
			}
			assert.Equal(t, want, n.ShortestDistance(from, to), "%s→%s", from, to)
		}
	}
}

func TestAllShortestDistances_PreservesNoPath(t *testing.T) {
	n := load(t, "path.txt")
	all := n.AllShortestDistances()
	assert.Equal(t, int64(2), at(t, all, 0, 2))
	assert.Equal(t, matrix.Inf, at(t, all, 2, 0))
}
