// Topology Validation
//
// Copyright (c) 2023, 2024  Philip Kaludercic
//
// This file is part of go-ipd.
//
// go-ipd is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License,
// version 3, as published by the Free Software Foundation.
//
// go-ipd is distributed in the hope that it will be useful, but
// WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the GNU
// Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public
// License, version 3, along with go-ipd. If not, see
// <http://www.gnu.org/licenses/>

package tourn

// Edge designates a pairing between two roster positions.  I == J is
// a self-pairing, where an agent plays an independent copy of itself.
type Edge struct {
	I, J int
}

// Connected reports whether EDGES, read as an undirected graph over
// the roster positions 0 to N-1, touches every position and forms a
// single connected component.  A self-loop marks its node as present
// in the topology, but does not connect distinct nodes.
func Connected(edges []Edge, n int) bool {
	if n == 0 {
		return true
	}

	// Build the adjacency structure.  Nodes that only appear in
	// self-loops are recorded without neighbours.
	adj := make(map[int][]int, n)
	for _, e := range edges {
		if _, ok := adj[e.I]; !ok {
			adj[e.I] = nil
		}
		if _, ok := adj[e.J]; !ok {
			adj[e.J] = nil
		}
		if e.I == e.J {
			continue
		}
		adj[e.I] = append(adj[e.I], e.J)
		adj[e.J] = append(adj[e.J], e.I)
	}

	// Every roster position has to occur in some edge.
	for i := 0; i < n; i++ {
		if _, ok := adj[i]; !ok {
			return false
		}
	}

	// Breadth-first traversal from an arbitrary covered node.
	var (
		start   = edges[0].I
		queue   = []int{start}
		visited = map[int]struct{}{start: {}}
	)
	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]
		for _, next := range adj[node] {
			if _, ok := visited[next]; ok {
				continue
			}
			visited[next] = struct{}{}
			queue = append(queue, next)
		}
	}

	for i := 0; i < n; i++ {
		if _, ok := visited[i]; !ok {
			return false
		}
	}
	return true
}
