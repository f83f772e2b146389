// Basic Strategies
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

type cooperator struct{}

func (cooperator) Act(own, opp []ipd.Action) ipd.Action { return ipd.Cooperate }
func (cooperator) Fresh() ipd.Agent                     { return &cooperator{} }
func (cooperator) String() string                       { return "cooperator" }

// MakeCooperator returns an agent that always cooperates.
func MakeCooperator() ipd.Agent {
	return &cooperator{}
}

type defector struct{}

func (defector) Act(own, opp []ipd.Action) ipd.Action { return ipd.Defect }
func (defector) Fresh() ipd.Agent                     { return &defector{} }
func (defector) String() string                       { return "defector" }

// MakeDefector returns an agent that always defects.
func MakeDefector() ipd.Agent {
	return &defector{}
}

type alternator struct{}

func (alternator) Act(own, opp []ipd.Action) ipd.Action {
	if len(own)%2 == 0 {
		return ipd.Cooperate
	}
	return ipd.Defect
}
func (alternator) Fresh() ipd.Agent { return &alternator{} }
func (alternator) String() string   { return "alternator" }

// MakeAlternator returns an agent that alternates between
// cooperating and defecting, starting with cooperation.
func MakeAlternator() ipd.Agent {
	return &alternator{}
}

// All returns one instance of every built-in strategy.
func All() []ipd.Agent {
	return []ipd.Agent{
		MakeCooperator(),
		MakeDefector(),
		MakeAlternator(),
		MakeTitForTat(),
		MakeGrudger(),
		MakeRandom(),
	}
}
