// Scheduler Tests
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

package sched

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ipd"
	"go-ipd/bot"
	"go-ipd/cmd"
	"go-ipd/tourn"
)

func run(t *testing.T, reps uint, opts ...tourn.Option) *tournament {
	t.Helper()

	players := []ipd.Agent{
		bot.MakeCooperator(),
		bot.MakeDefector(),
		bot.MakeTitForTat(),
	}
	gen, err := tourn.MakeGenerator(players, ipd.MakeDefaultGame(),
		reps, opts...)
	require.NoError(t, err)

	var (
		st   = cmd.MakeState()
		conf = &cmd.Conf{Tourn: cmd.TournConf{Workers: 2}}
		tour = MakeTournament(gen).(*tournament)
	)
	tour.Start(st, conf)
	tour.Shutdown()
	return tour
}

func TestTournamentRuns(t *testing.T) {
	tour := run(t, 4, tourn.WithTurns(10))

	// Three players give six pairings, self-pairs included.
	recs := tour.Records()
	assert.Len(t, recs, 6*4)

	count := make(map[[2]int]int)
	for _, rec := range recs {
		assert.Equal(t, uint(10), rec.Turns)
		count[rec.Pair]++
	}
	for pair, n := range count {
		assert.Equal(t, 4, n, "pair %v", pair)
	}
}

func TestScoresMatchRecords(t *testing.T) {
	tour := run(t, 2, tourn.WithTurns(10))

	// The per-position aggregates have to account for every
	// recorded point.
	var total float64
	for _, rec := range tour.Records() {
		total += rec.Scores[0] + rec.Scores[1]
	}

	var sum float64
	for i := 0; i < 3; i++ {
		s, turns, matches := tour.Score(i)
		sum += s
		assert.NotZero(t, matches)
		assert.NotZero(t, turns)
	}
	assert.Equal(t, total, sum)
}

func TestStochasticTermination(t *testing.T) {
	tour := run(t, 2, tourn.WithProbEnd(0.5))

	for _, rec := range tour.Records() {
		assert.GreaterOrEqual(t, rec.Turns, uint(1))
	}
}

func TestPrintResults(t *testing.T) {
	tour := run(t, 1, tourn.WithTurns(5))

	var buf bytes.Buffer
	tour.PrintResults(cmd.MakeState(), &buf)

	out := buf.String()
	assert.True(t, strings.Contains(out, ".TS"), "missing table preamble")
	for _, name := range []string{"cooperator", "defector", "tit-for-tat"} {
		assert.True(t, strings.Contains(out, name), "missing %q", name)
	}
}
