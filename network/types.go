package network

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/roadnet/matrix"
)

// Sentinel results of ShortestDistance.
const (
	// NotFound is returned when no network is loaded or a label is unknown.
	NotFound int64 = -1

	// Unreachable is returned when no route exists between two known labels.
	// It coincides with a genuine zero-length route; use ShortestRoute to
	// tell them apart.
	Unreachable int64 = 0
)

// Sentinel errors for ShortestRoute.
var (
	// ErrNoNetwork indicates a query against an empty Network.
	ErrNoNetwork = errors.New("network: no network loaded")

	// ErrUnknownVertex indicates a label outside the loaded vertex universe.
	ErrUnknownVertex = errors.New("network: unknown intersection")

	// ErrUnreachable indicates that no route connects the two intersections.
	ErrUnreachable = errors.New("network: destination unreachable")
)

// Option configures a Network.
type Option func(*Network)

// WithLogger sets the logger used to report loads.
// A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(n *Network) {
		if l != nil {
			n.log = l
		}
	}
}

// WithSearchDirs sets the directories Load tries, in order, when the given
// path does not exist as written.
func WithSearchDirs(dirs ...string) Option {
	return func(n *Network) {
		n.searchDirs = append([]string(nil), dirs...)
	}
}

// Network holds one loaded road network.
//
// vertices, index and dist are set together by a successful build and are
// all nil otherwise.
type Network struct {
	vertices []string       // sorted labels; rank == matrix index
	index    map[string]int // label → rank
	dist     *matrix.Dense  // direct distances, matrix.Inf when no road
	edges    int            // non-Inf cells in dist

	searchDirs []string
	log        *slog.Logger
}

// New returns an empty Network.
func New(opts ...Option) *Network {
	n := &Network{
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(n)
	}

	return n
}
