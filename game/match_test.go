// Match Execution Tests
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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-ipd"
	"go-ipd/bot"
)

func params(turns *uint, probEnd *float64, noise float64) ipd.MatchParams {
	return ipd.MatchParams{
		Turns:   turns,
		ProbEnd: probEnd,
		Noise:   noise,
		Game:    ipd.MakeDefaultGame(),
	}
}

func uptr(n uint) *uint       { return &n }
func fptr(f float64) *float64 { return &f }

func TestFixedLength(t *testing.T) {
	m := MakeMatch(bot.MakeCooperator(), bot.MakeCooperator(),
		params(uptr(20), nil, 0))

	n, err := m.Len()
	require.NoError(t, err)
	assert.Equal(t, uint(20), n)

	res := m.Play()
	assert.Equal(t, uint(20), res.Turns)
	// Mutual cooperation is worth R = 3 per round.
	assert.Equal(t, [2]float64{60, 60}, res.Scores)
}

func TestUnboundedLength(t *testing.T) {
	m := MakeMatch(bot.MakeCooperator(), bot.MakeDefector(),
		params(nil, fptr(0.5), 0))

	// No length can be promised ahead of time.
	_, err := m.Len()
	require.ErrorIs(t, err, ErrUnboundedLength)

	res := m.Play()
	assert.GreaterOrEqual(t, res.Turns, uint(1))
}

func TestCappedLength(t *testing.T) {
	for i := 0; i < 50; i++ {
		m := MakeMatch(bot.MakeCooperator(), bot.MakeCooperator(),
			params(uptr(5), fptr(0.5), 0))

		n, err := m.Len()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, uint(1))
		assert.LessOrEqual(t, n, uint(5))

		res := m.Play()
		assert.Equal(t, n, res.Turns)
	}
}

func TestCertainEnd(t *testing.T) {
	m := MakeMatch(bot.MakeCooperator(), bot.MakeCooperator(),
		params(nil, fptr(1), 0))
	res := m.Play()
	assert.Equal(t, uint(1), res.Turns)
}

func TestScoring(t *testing.T) {
	for _, test := range []struct {
		name string
		a, b ipd.Agent
		want [2]float64
	}{
		{
			// Exploitation is worth T = 5 per round for
			// the defector, S = 0 for the cooperator.
			name: "cooperator vs defector",
			a:    bot.MakeCooperator(),
			b:    bot.MakeDefector(),
			want: [2]float64{0, 50},
		}, {
			// One exploited round, then P = 1 for both.
			name: "tit-for-tat vs defector",
			a:    bot.MakeTitForTat(),
			b:    bot.MakeDefector(),
			want: [2]float64{9, 14},
		}, {
			name: "defector vs defector",
			a:    bot.MakeDefector(),
			b:    bot.MakeDefector(),
			want: [2]float64{10, 10},
		},
	} {
		t.Run(test.name, func(t *testing.T) {
			m := MakeMatch(test.a, test.b, params(uptr(10), nil, 0))
			res := m.Play()
			assert.Equal(t, test.want, res.Scores)
		})
	}
}

func TestNoise(t *testing.T) {
	// With certain noise every realized action is flipped, so two
	// cooperators end up defecting on every round.
	m := MakeMatch(bot.MakeCooperator(), bot.MakeCooperator(),
		params(uptr(10), nil, 1))
	res := m.Play()

	assert.Equal(t, [2]float64{10, 10}, res.Scores)
	for _, moves := range res.Moves {
		assert.Equal(t, [2]ipd.Action{ipd.Defect, ipd.Defect}, moves)
	}
}

func TestSeededLength(t *testing.T) {
	p := params(uptr(100), fptr(0.1), 0)

	a := MakeMatchSeed(bot.MakeCooperator(), bot.MakeCooperator(), p, 42)
	b := MakeMatchSeed(bot.MakeCooperator(), bot.MakeCooperator(), p, 42)

	na, err := a.Len()
	require.NoError(t, err)
	nb, err := b.Len()
	require.NoError(t, err)
	assert.Equal(t, na, nb)
}

func TestMoveLog(t *testing.T) {
	m := MakeMatch(bot.MakeAlternator(), bot.MakeTitForTat(),
		params(uptr(4), nil, 0))
	res := m.Play()

	// The alternator leads, tit-for-tat trails one round behind.
	assert.Equal(t, [][2]ipd.Action{
		{ipd.Cooperate, ipd.Cooperate},
		{ipd.Defect, ipd.Cooperate},
		{ipd.Cooperate, ipd.Defect},
		{ipd.Defect, ipd.Cooperate},
	}, res.Moves)
}
