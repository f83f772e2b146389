// Payoff table
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

// Game is the payoff table of a single round.  The conventional
// parameter names are kept: R is the reward for mutual cooperation, S
// the sucker's payoff, T the temptation to defect and P the
// punishment for mutual defection.
type Game struct {
	r, s, t, p float64
}

func MakeGame(r, s, t, p float64) *Game {
	return &Game{r: r, s: s, t: t, p: p}
}

// MakeDefaultGame returns the usual prisoner's dilemma table, with
// (R, S, T, P) = (3, 0, 5, 1).
func MakeDefaultGame() *Game {
	return MakeGame(3, 0, 5, 1)
}

// RPST returns the table entries in the conventional order.
func (g *Game) RPST() (r, p, s, t float64) {
	return g.r, g.p, g.s, g.t
}

// Score maps the actions of both sides onto their payoffs.
func (g *Game) Score(a, b Action) (float64, float64) {
	switch {
	case a == Cooperate && b == Cooperate:
		return g.r, g.r
	case a == Cooperate && b == Defect:
		return g.s, g.t
	case a == Defect && b == Cooperate:
		return g.t, g.s
	default:
		return g.p, g.p
	}
}
