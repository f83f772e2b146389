// Common Interfaces and constants
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

package ipd

import "fmt"

type Action uint8

const (
	// Possible actions in a single round
	Cooperate Action = iota
	Defect
)

func (a Action) String() string {
	switch a {
	case Cooperate:
		return "C"
	case Defect:
		return "D"
	default:
		panic(fmt.Sprintf("Illegal action: %d", a))
	}
}

// Flip returns the opposite action.
func (a Action) Flip() Action {
	switch a {
	case Cooperate:
		return Defect
	case Defect:
		return Cooperate
	}
	panic("Illegal action")
}

// Agent is an opaque tournament participant.  The scheduler never
// inspects an agent beyond asking it to act and requesting fresh
// instances of it.
type Agent interface {
	fmt.Stringer

	// Act decides on the next action, given the actions the agent
	// itself and its opponent have played so far in this match.
	Act(own, opp []Action) Action

	// Fresh returns an independent instance of the same strategy
	// definition.  Instances share no per-match state, so the two
	// sides of a self-pairing and the repetitions of a pairing
	// cannot influence each other.
	Fresh() Agent
}

// MatchRecord describes one finished repetition of a pairing, as
// handed to the database manager.
type MatchRecord struct {
	Pair       [2]int
	Names      [2]string
	Repetition uint
	Turns      uint
	Scores     [2]float64
}
