// Match Generation
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

import (
	"errors"
	"fmt"

	"go-ipd"
)

var (
	// ErrNoLength is returned when neither a turn count nor an
	// end probability was given.
	ErrNoLength = errors.New("tourn: match length is unspecified")
	// ErrRepetitions is returned for a zero repetition count.
	ErrRepetitions = errors.New("tourn: repetitions must be positive")
	// ErrNoise is returned when the noise probability is not in [0, 1].
	ErrNoise = errors.New("tourn: noise must be a probability")
	// ErrProbEnd is returned when the end probability is not in (0, 1].
	ErrProbEnd = errors.New("tourn: end probability must be in (0, 1]")
	// ErrEdgeRange is returned when an edge references a position
	// outside the roster.
	ErrEdgeRange = errors.New("tourn: edge outside the roster")
	// ErrTopology is returned when the explicit topology does not
	// reach all players, or is disconnected.
	ErrTopology = errors.New("tourn: topology does not reach all players")
)

// Generator derives the pairings of a tournament and packages them
// into independently executable chunks.  All fields are fixed at
// construction; a generator holds no iteration state.
type Generator struct {
	players []ipd.Agent
	game    *ipd.Game
	reps    uint
	turns   *uint
	probEnd *float64
	noise   float64
	edges   []Edge // nil means full round robin
}

// Chunk is a self-contained unit of schedulable work: one pairing,
// its match parameters and the repetition count.  Given only a
// chunk, the execution layer can run all repetitions without
// consulting the generator again.
type Chunk struct {
	Pair        Edge
	Players     [2]ipd.Agent
	Params      ipd.MatchParams
	Repetitions uint
}

// Option adjusts the construction of a generator.
type Option func(*Generator)

// WithTurns fixes every match in every chunk at N rounds.  Combined
// with WithProbEnd, N becomes an upper bound instead.
func WithTurns(n uint) Option {
	return func(g *Generator) { g.turns = &n }
}

// WithProbEnd terminates each round of a match independently with
// probability P.  Without WithTurns the match length is undefined
// ahead of time.
func WithProbEnd(p float64) Option {
	return func(g *Generator) { g.probEnd = &p }
}

// WithNoise flips every realized action independently with
// probability P.  The value is carried through to the matches and
// not interpreted by the generator.
func WithNoise(p float64) Option {
	return func(g *Generator) { g.noise = p }
}

// WithEdges replaces the full round robin topology with an explicit
// edge set.  The edge set must cover every roster position and be
// connected.
func WithEdges(edges []Edge) Option {
	return func(g *Generator) { g.edges = edges }
}

// MakeGenerator validates the tournament configuration and returns a
// generator for it.  All misconfigurations are reported here, before
// any chunk is built.
func MakeGenerator(players []ipd.Agent, game *ipd.Game, repetitions uint, opts ...Option) (*Generator, error) {
	g := &Generator{
		players: players,
		game:    game,
		reps:    repetitions,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.reps < 1 {
		return nil, ErrRepetitions
	}
	if g.turns == nil && g.probEnd == nil {
		return nil, ErrNoLength
	}
	if g.probEnd != nil && (*g.probEnd <= 0 || *g.probEnd > 1) {
		return nil, fmt.Errorf("%w: %v", ErrProbEnd, *g.probEnd)
	}
	if g.noise < 0 || g.noise > 1 {
		return nil, fmt.Errorf("%w: %v", ErrNoise, g.noise)
	}
	if g.edges != nil {
		for _, e := range g.edges {
			if e.I < 0 || e.I >= len(g.players) ||
				e.J < 0 || e.J >= len(g.players) {
				return nil, fmt.Errorf("%w: (%d, %d) with %d players",
					ErrEdgeRange, e.I, e.J, len(g.players))
			}
		}
		if !Connected(g.edges, len(g.players)) {
			return nil, fmt.Errorf("%w: %d players, %d edges",
				ErrTopology, len(g.players), len(g.edges))
		}
	}

	return g, nil
}

// MatchParams returns the match-level parameters shared by every
// pairing, without participants.  Repeated calls return equal
// bundles.
func (g *Generator) MatchParams() ipd.MatchParams {
	return ipd.MatchParams{
		Turns:   g.turns,
		ProbEnd: g.probEnd,
		Noise:   g.noise,
		Game:    g.game,
	}
}

// Edges returns the active topology: the explicit edge set if one
// was given, and otherwise all pairs (i, j) with i <= j, self-pairs
// included.
func (g *Generator) Edges() []Edge {
	if g.edges != nil {
		// Hand out a copy, so the validated topology cannot
		// be modified behind the generator's back.
		edges := make([]Edge, len(g.edges))
		copy(edges, g.edges)
		return edges
	}
	edges := make([]Edge, 0, g.Len())
	for i := 0; i < len(g.players); i++ {
		for j := i; j < len(g.players); j++ {
			edges = append(edges, Edge{i, j})
		}
	}
	return edges
}

// Chunks builds one chunk per topology edge, in no particular order.
// The sequence is recomputed from the immutable generator state on
// every call, so it can be consumed any number of times.  Each side
// of a chunk receives a fresh agent instance, also when an agent is
// paired with itself.
func (g *Generator) Chunks() []Chunk {
	var (
		chunks = make([]Chunk, 0, g.Len())
		params = g.MatchParams()
	)
	for _, e := range g.Edges() {
		chunks = append(chunks, Chunk{
			Pair: e,
			Players: [2]ipd.Agent{
				g.players[e.I].Fresh(),
				g.players[e.J].Fresh(),
			},
			Params:      params,
			Repetitions: g.reps,
		})
	}
	return chunks
}

// Len returns the number of chunks that Chunks produces, without
// building them.
func (g *Generator) Len() int {
	if g.edges != nil {
		return len(g.edges)
	}
	n := len(g.players)
	return n * (n + 1) / 2
}

// Players returns the roster.  The slice must not be modified.
func (g *Generator) Players() []ipd.Agent { return g.players }

// Game returns the payoff table handed to every match.
func (g *Generator) Game() *ipd.Game { return g.game }

// Repetitions returns the number of independent matches run per
// pairing.
func (g *Generator) Repetitions() uint { return g.reps }
