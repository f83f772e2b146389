// Random Agent
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

package bot

import (
	"math/rand"

	"go-ipd"
)

type random struct {
	rng *rand.Rand
}

func (r *random) Act(own, opp []ipd.Action) ipd.Action {
	if r.rng.Intn(2) == 0 {
		return ipd.Cooperate
	}
	return ipd.Defect
}

func (r *random) Fresh() ipd.Agent {
	return &random{rng: rand.New(rand.NewSource(r.rng.Int63()))}
}

func (*random) String() string { return "random" }

// MakeRandom returns an agent that only makes random moves.
func MakeRandom() ipd.Agent {
	return &random{rng: rand.New(rand.NewSource(rand.Int63()))}
}
