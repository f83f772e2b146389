// Match parameters
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

// MatchParams bundles everything a match needs besides its two
// participants.  The bundle is read-only after construction.
type MatchParams struct {
	// Fixed number of rounds, or nil if the length is not fixed.
	// When both Turns and ProbEnd are set, Turns is an upper
	// bound on the stochastic length.
	Turns *uint
	// Per-round termination probability in (0, 1], or nil if
	// matches only end after a fixed number of rounds.
	ProbEnd *float64
	// Probability in [0, 1] that a realized action is flipped.
	Noise float64
	// Payoff table, passed through to the match untouched.
	Game *Game
}
