package network

import (
	"errors"
	"fmt"
	"io"

	"github.com/katalvlaran/roadnet/dfs"
	"github.com/katalvlaran/roadnet/dijkstra"
	"github.com/katalvlaran/roadnet/edgelist"
	"github.com/katalvlaran/roadnet/matrix"
)

// Load reads the road list at path (falling back to the configured search
// directories) and replaces the current network with it.
//
// On any failure the Network is left empty, including when a previous load
// had succeeded. The returned error wraps edgelist.ErrSourceNotFound or
// edgelist.ErrMalformedRecord.
func (n *Network) Load(path string) error {
	records, err := edgelist.ReadFile(path, n.searchDirs...)
	if err != nil {
		return n.fail(path, err)
	}

	return n.install(path, records)
}

// LoadReader is Load for an already-open source.
func (n *Network) LoadReader(r io.Reader) error {
	records, err := edgelist.Parse(r)
	if err != nil {
		return n.fail("reader", err)
	}

	return n.install("reader", records)
}

// LoadRecords builds the network from records that were parsed elsewhere.
func (n *Network) LoadRecords(records []edgelist.Record) error {
	return n.install("records", records)
}

func (n *Network) install(source string, records []edgelist.Record) error {
	b, err := build(records)
	if err != nil {
		return n.fail(source, err)
	}
	n.vertices, n.index, n.dist, n.edges = b.vertices, b.index, b.dist, b.edges
	n.log.Info("network loaded", "source", source, "intersections", len(b.vertices), "roads", b.edges)

	return nil
}

func (n *Network) fail(source string, err error) error {
	n.clear()
	switch {
	case errors.Is(err, edgelist.ErrMalformedRecord):
		n.log.Warn("malformed data, network cleared", "source", source, "err", err)
	case errors.Is(err, edgelist.ErrSourceNotFound):
		n.log.Warn("source unavailable, network cleared", "source", source, "err", err)
	default:
		n.log.Error("load failed, network cleared", "source", source, "err", err)
	}

	return fmt.Errorf("network: load %s: %w", source, err)
}

func (n *Network) clear() {
	n.vertices, n.index, n.dist, n.edges = nil, nil, nil, 0
}

// Loaded reports whether a network is currently held.
func (n *Network) Loaded() bool { return n.dist != nil }

// Vertices returns the sorted intersection labels, or nil if nothing is loaded.
// The slice is the Network's own storage; do not modify it.
func (n *Network) Vertices() []string { return n.vertices }

// DirectDistances returns the direct-distance matrix, or nil if nothing is
// loaded. The matrix is the Network's own storage; do not modify it.
func (n *Network) DirectDistances() *matrix.Dense { return n.dist }

// Roads returns the number of directed roads in the loaded network.
func (n *Network) Roads() int { return n.edges }

// Index returns the matrix position of label.
func (n *Network) Index(label string) (int, bool) {
	i, ok := n.index[label]

	return i, ok
}

// IsStronglyConnected reports whether every intersection can reach every
// other one. It is false when nothing is loaded.
func (n *Network) IsStronglyConnected() bool {
	if !n.Loaded() {
		return false
	}
	ok, err := dfs.StronglyConnected(n.dist)
	if err != nil {
		n.log.Error("connectivity check failed", "err", err)
		return false
	}

	return ok
}

// ShortestDistance returns the length of the shortest route from → to.
//
// NotFound is returned when nothing is loaded or either label is unknown;
// Unreachable when there is no route. A route from a label to itself has
// length 0.
func (n *Network) ShortestDistance(from, to string) int64 {
	_, d, err := n.route(from, to, false)
	switch {
	case errors.Is(err, ErrNoNetwork), errors.Is(err, ErrUnknownVertex):
		return NotFound
	case errors.Is(err, ErrUnreachable):
		return Unreachable
	case err != nil:
		n.log.Error("shortest distance failed", "from", from, "to", to, "err", err)
		return NotFound
	}

	return d
}

// ShortestRoute returns the intersections along one shortest route from → to
// (both ends included) and its length.
func (n *Network) ShortestRoute(from, to string) ([]string, int64, error) {
	return n.route(from, to, true)
}

func (n *Network) route(from, to string, withPath bool) ([]string, int64, error) {
	if !n.Loaded() {
		return nil, 0, ErrNoNetwork
	}
	src, ok := n.index[from]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownVertex, from)
	}
	dst, ok := n.index[to]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %q", ErrUnknownVertex, to)
	}

	var opts []dijkstra.Option
	if withPath {
		opts = append(opts, dijkstra.WithReturnPath())
	}
	res, err := dijkstra.FromSource(n.dist, src, opts...)
	if err != nil {
		return nil, 0, err
	}
	if !res.Reachable(dst) {
		return nil, 0, fmt.Errorf("%w: %q → %q", ErrUnreachable, from, to)
	}
	if !withPath {
		return nil, res.Dist[dst], nil
	}

	idx := res.PathTo(dst)
	labels := make([]string, len(idx))
	for i, v := range idx {
		labels[i] = n.vertices[v]
	}

	return labels, res.Dist[dst], nil
}

// AllShortestDistances returns a new matrix of shortest distances between
// every pair of intersections (matrix.Inf where no route exists), or nil if
// nothing is loaded. The direct-distance matrix is not modified.
//
// Diagonal cells hold the shortest cycle through that intersection, or
// matrix.Inf when it lies on no cycle.
func (n *Network) AllShortestDistances() *matrix.Dense {
	if !n.Loaded() {
		return nil
	}
	out := n.dist.Clone()
	if err := matrix.FloydWarshall(out); err != nil {
		n.log.Error("all-pairs shortest distances failed", "err", err)
		return nil
	}

	return out
}
