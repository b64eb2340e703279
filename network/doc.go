// Package network is the transportation network engine: it turns a road
// list into a dense distance matrix over alphabetically sorted intersection
// names and answers connectivity and shortest-distance queries on it.
//
// A Network is either empty or holds a complete network (vertex list and
// matrix together). Load replaces the current network on success and clears
// it on any failure, so a half-read file never leaves partial state behind.
//
// Queries never fail. Each has a defined answer when nothing is loaded or a
// label is unknown:
//
//	Vertices()                 nil
//	DirectDistances()          nil
//	IsStronglyConnected()      false
//	ShortestDistance(a, b)     NotFound (-1); Unreachable (0) when no route
//	AllShortestDistances()     nil
//
// ShortestRoute is the error-returning variant for callers that need to tell
// "unreachable" apart from a genuine zero-length route.
//
// A Network is not safe for concurrent use. Vertices and DirectDistances
// return the live backing storage and must be treated as read-only;
// AllShortestDistances always returns a fresh matrix.
package network
