// Payoff table tests
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

import "testing"

func TestScore(t *testing.T) {
	for _, test := range []struct {
		name string
		game *Game
		a, b Action
		sa   float64
		sb   float64
	}{
		{"mutual cooperation", MakeDefaultGame(), Cooperate, Cooperate, 3, 3},
		{"exploited", MakeDefaultGame(), Cooperate, Defect, 0, 5},
		{"exploiting", MakeDefaultGame(), Defect, Cooperate, 5, 0},
		{"mutual defection", MakeDefaultGame(), Defect, Defect, 1, 1},
		{"custom table", MakeGame(2, -1, 4, 0), Cooperate, Defect, -1, 4},
	} {
		t.Run(test.name, func(t *testing.T) {
			sa, sb := test.game.Score(test.a, test.b)
			if sa != test.sa || sb != test.sb {
				t.Errorf("Score(%v, %v) = (%v, %v); want (%v, %v)",
					test.a, test.b, sa, sb, test.sa, test.sb)
			}
		})
	}
}

func TestRPST(t *testing.T) {
	r, p, s, td := MakeDefaultGame().RPST()
	if r != 3 || p != 1 || s != 0 || td != 5 {
		t.Errorf("RPST() = (%v, %v, %v, %v); want (3, 1, 0, 5)", r, p, s, td)
	}
}

func TestFlip(t *testing.T) {
	if Cooperate.Flip() != Defect || Defect.Flip() != Cooperate {
		t.Error("Flip is not an involution")
	}
}

func TestActionString(t *testing.T) {
	if Cooperate.String() != "C" || Defect.String() != "D" {
		t.Error("Unexpected action formatting")
	}
}
