// Reactive Strategies
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
	"go-ipd"
)

type titfortat struct{}

func (titfortat) Act(own, opp []ipd.Action) ipd.Action {
	if len(opp) == 0 {
		return ipd.Cooperate
	}
	return opp[len(opp)-1]
}
func (titfortat) Fresh() ipd.Agent { return &titfortat{} }
func (titfortat) String() string   { return "tit-for-tat" }

// MakeTitForTat returns an agent that cooperates on the first round
// and then repeats the opponent's previous action.
func MakeTitForTat() ipd.Agent {
	return &titfortat{}
}

// grudger cooperates until the opponent defects once, and defects
// from then on.  The grudge is per-match state, so every match has
// to receive a fresh instance.
type grudger struct {
	grudge bool
}

func (g *grudger) Act(own, opp []ipd.Action) ipd.Action {
	if g.grudge {
		return ipd.Defect
	}
	if len(opp) > 0 && opp[len(opp)-1] == ipd.Defect {
		g.grudge = true
		return ipd.Defect
	}
	return ipd.Cooperate
}
func (*grudger) Fresh() ipd.Agent { return &grudger{} }
func (*grudger) String() string   { return "grudger" }

// MakeGrudger returns an agent that holds a grudge.
func MakeGrudger() ipd.Agent {
	return &grudger{}
}
