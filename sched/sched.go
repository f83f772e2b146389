// Tournament Scheduler Pool
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
	"fmt"
	"io"
	"log"
	"math/rand"
	"runtime"
	"sort"
	"sync"

	"go-ipd"
	"go-ipd/cmd"
	"go-ipd/game"
	"go-ipd/tourn"
)

// score aggregates the results of one roster position.
type score struct {
	total   float64
	turns   uint
	matches uint
}

type tournament struct {
	gen  *tourn.Generator
	wait sync.WaitGroup

	lock   sync.Mutex
	played []*ipd.MatchRecord
	score  map[int]*score
}

func (t *tournament) String() string { return "Tournament Scheduler" }

func (t *tournament) Start(st *cmd.State, conf *cmd.Conf) {
	chunks := t.gen.Chunks()
	rand.Shuffle(len(chunks), func(i, j int) {
		chunks[i], chunks[j] = chunks[j], chunks[i]
	})
	queue := make(chan tourn.Chunk, len(chunks))
	for _, c := range chunks {
		queue <- c
	}
	close(queue)
	t.wait.Add(len(chunks))
	ipd.Debug.Println("Starting", t, "with", len(chunks), "chunks")

	workers := int(conf.Tourn.Workers)
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		lock sync.Mutex
		done int
	)
	for i := 0; i < workers; i++ {
		go func() {
			for c := range queue {
				// Every repetition and every side gets
				// its own agent instance, so no state
				// leaks between runs.
				for r := uint(0); r < c.Repetitions; r++ {
					m := game.MakeMatch(
						c.Players[0].Fresh(),
						c.Players[1].Fresh(),
						c.Params)
					res := m.Play()

					rec := &ipd.MatchRecord{
						Pair: [2]int{c.Pair.I, c.Pair.J},
						Names: [2]string{
							c.Players[0].String(),
							c.Players[1].String(),
						},
						Repetition: r,
						Turns:      res.Turns,
						Scores:     res.Scores,
					}
					if st.Database != nil {
						st.Database.SaveMatch(st.Context, st.Tournament, rec)
					}

					t.lock.Lock()
					t.played = append(t.played, rec)
					t.lock.Unlock()
				}

				lock.Lock()
				done++
				log.Printf("%d/%d (%s vs. %s)", done, len(chunks),
					c.Players[0], c.Players[1])
				lock.Unlock()
				t.wait.Done()
			}
		}()
	}

	// Request a shutdown as soon as everything was played
	go func() {
		t.wait.Wait()
		st.Kill()
	}()
}

func (t *tournament) Shutdown() {
	t.wait.Wait()
	ipd.Debug.Println("Completed", t)
}

// scores computes the per-position aggregates, once.
func (t *tournament) scores() map[int]*score {
	t.lock.Lock()
	defer t.lock.Unlock()
	if t.score == nil {
		t.score = make(map[int]*score)

		for i := range t.gen.Players() {
			t.score[i] = &score{}
		}

		for _, rec := range t.played {
			for side, pos := range rec.Pair {
				sc, ok := t.score[pos]
				if !ok {
					continue
				}
				sc.total += rec.Scores[side]
				sc.turns += rec.Turns
				sc.matches++
			}
		}
	}
	return t.score
}

// Score returns the accumulated score, played rounds and match count
// of the agent at roster position I.
func (t *tournament) Score(i int) (float64, uint, uint) {
	if sc, ok := t.scores()[i]; ok {
		return sc.total, sc.turns, sc.matches
	}
	return 0, 0, 0
}

// Records returns every finished repetition.  Only meaningful after
// the scheduler has shut down.
func (t *tournament) Records() []*ipd.MatchRecord {
	t.lock.Lock()
	defer t.lock.Unlock()
	return t.played
}

func (t *tournament) PrintResults(st *cmd.State, W io.Writer) {
	t.wait.Wait()

	fmt.Fprintln(W, `.NH 1`)
	fmt.Fprintln(W, "Tournament")
	if len(t.Records()) == 0 {
		fmt.Fprintln(W, `.LP`)
		fmt.Fprintln(W, `No matches took place.`)
		return
	}

	var (
		players = t.gen.Players()
		perTurn = func(i int) float64 {
			total, turns, _ := t.Score(i)
			if turns == 0 {
				return 0
			}
			return total / float64(turns)
		}
		order = make([]int, len(players))
	)
	for i := range order {
		order[i] = i
	}

	// Order agents by their mean score per round
	sort.SliceStable(order, func(i, j int) bool {
		return perTurn(order[i]) > perTurn(order[j])
	})

	fmt.Fprintln(W, `.NH 2`)
	fmt.Fprintln(W, "Scores")

	fmt.Fprintln(W, `.TS`)
	fmt.Fprintln(W, `tab(/) box center;`)
	fmt.Fprintln(W, `c | c c | c`)
	fmt.Fprintln(W, `----`)
	fmt.Fprintln(W, `l | n n | n`)
	fmt.Fprintln(W, `.`)
	fmt.Fprintln(W, `Agent/Matches/Score/Per Round`)

	for _, i := range order {
		total, _, matches := t.Score(i)
		fmt.Fprintf(W, "%s/%d/%g/%.3f\n",
			players[i], matches, total, perTurn(i))
	}
	fmt.Fprintln(W, `.TE`)
}

// MakeTournament returns a scheduler that plays out all chunks of
// GEN over a pool of workers.
func MakeTournament(gen *tourn.Generator) cmd.Scheduler {
	return &tournament{gen: gen}
}
