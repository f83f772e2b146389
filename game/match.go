// Match Execution
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

package game

import (
	"errors"
	"math"
	"math/rand"

	"go-ipd"
)

// ErrUnboundedLength is returned when the length of a match that is
// governed only by an end probability is queried.
var ErrUnboundedLength = errors.New("game: match length is not fixed")

// Match is a single pairing of two agents over a number of rounds.
// The two agents must be fresh instances owned by the match.
type Match struct {
	players [2]ipd.Agent
	params  ipd.MatchParams

	// Realized number of rounds, when one is defined.  With both
	// a turn count and an end probability, the stochastic length
	// is drawn once at construction and capped at the turn count.
	length *uint
	rng    *rand.Rand
}

// Result holds the realized moves and accumulated scores of a
// finished match.
type Result struct {
	Moves  [][2]ipd.Action
	Scores [2]float64
	Turns  uint
}

func MakeMatch(a, b ipd.Agent, params ipd.MatchParams) *Match {
	return MakeMatchSeed(a, b, params, rand.Int63())
}

// MakeMatchSeed is MakeMatch with a pinned source of randomness for
// noise and stochastic termination.
func MakeMatchSeed(a, b ipd.Agent, params ipd.MatchParams, seed int64) *Match {
	m := &Match{
		players: [2]ipd.Agent{a, b},
		params:  params,
		rng:     rand.New(rand.NewSource(seed)),
	}

	switch {
	case params.Turns != nil && params.ProbEnd != nil:
		n := sampleLength(*params.ProbEnd, m.rng)
		if n > *params.Turns {
			n = *params.Turns
		}
		m.length = &n
	case params.Turns != nil:
		n := *params.Turns
		m.length = &n
	}
	return m
}

// sampleLength draws a match length from the geometric distribution
// with per-round termination probability P.
func sampleLength(p float64, rng *rand.Rand) uint {
	if p >= 1 {
		return 1
	}
	x := rng.Float64()
	n := math.Ceil(math.Log(1-x) / math.Log(1-p))
	if n < 1 {
		return 1
	}
	return uint(n)
}

// Len returns the number of rounds the match will run.  The query
// fails with ErrUnboundedLength if the match is governed only by an
// end probability, since no length can be promised ahead of time.
func (m *Match) Len() (uint, error) {
	if m.length == nil {
		return 0, ErrUnboundedLength
	}
	return *m.length, nil
}

// Play runs the match to completion.  Without a turn count the
// number of rounds is unbounded in the worst case.
func (m *Match) Play() *Result {
	var (
		res  = &Result{}
		hist [2][]ipd.Action
	)

	for round := uint(0); m.length == nil || round < *m.length; round++ {
		a := m.players[0].Act(hist[0], hist[1])
		b := m.players[1].Act(hist[1], hist[0])
		if m.params.Noise > 0 {
			if m.rng.Float64() < m.params.Noise {
				a = a.Flip()
			}
			if m.rng.Float64() < m.params.Noise {
				b = b.Flip()
			}
		}
		hist[0] = append(hist[0], a)
		hist[1] = append(hist[1], b)

		sa, sb := m.params.Game.Score(a, b)
		res.Scores[0] += sa
		res.Scores[1] += sb
		res.Moves = append(res.Moves, [2]ipd.Action{a, b})

		if m.length == nil && m.rng.Float64() < *m.params.ProbEnd {
			break
		}
	}

	res.Turns = uint(len(res.Moves))
	return res
}

// Player returns the agent on side I of the match.
func (m *Match) Player(i int) ipd.Agent {
	return m.players[i]
}
