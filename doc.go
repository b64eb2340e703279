// Package roadnet models a transportation network as a weighted directed
// graph and answers structural and shortest-path questions about it.
//
// 🚦 What is in the box?
//
//	A small, dependency-light engine built around one dense distance matrix:
//		• Input: plain-text road lists, one "source,target,weight" per line
//		• Storage: n×n int64 matrix over alphabetically sorted intersections
//		• Connectivity: strong-connectivity check via repeated DFS
//		• Shortest paths: Dijkstra (one pair) and Floyd–Warshall (all pairs)
//		• Output: fixed-width tables and YAML
//
// Under the hood, everything is organized into small packages:
//
//	edgelist/  — parsing and locating road lists (all-or-nothing)
//	matrix/    — Dense int64 matrix, Inf sentinel, Floyd–Warshall
//	dfs/       — reachability and strong connectivity over a matrix
//	dijkstra/  — single-source shortest distances and routes
//	network/   — the engine: Load + the query surface
//	render/    — table and YAML presentation
//	cmd/roadnet — command-line front end
//
// Quick ASCII example:
//
//	    Mill ──4──▶ Bridge
//	      ▲           │
//	      3           2
//	      │           ▼
//	      └──────── Church
//
//	is strongly connected; the shortest distance Mill → Church is 6.
//
//	go install github.com/katalvlaran/roadnet/cmd/roadnet@latest
package roadnet
