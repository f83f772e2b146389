// Shared State
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

package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	"go-ipd"
)

type Manager interface {
	fmt.Stringer
	Start(*State, *Conf)
	Shutdown()
}

type Scheduler interface {
	Manager

	// Write a report on the finished matches
	PrintResults(*State, io.Writer)
}

type Database interface {
	Manager

	// Store interface
	RegisterTournament(context.Context, string) int64
	SaveMatch(context.Context, int64, *ipd.MatchRecord)

	// Access interface
	QueryMatches(context.Context, int64, chan<- *ipd.MatchRecord)
}

type State struct {
	Context context.Context
	Kill    context.CancelFunc
	Running bool

	// Database identifier of the current tournament, assigned by
	// the main program before the managers are started.
	Tournament int64

	Scheduler Scheduler
	Database  Database
	Managers  []Manager
}

func MakeState() *State {
	ctx, kill := context.WithCancel(context.Background())
	return &State{
		Context: ctx,
		Kill:    kill,
	}
}

func (st *State) Register(m Manager) {
	if st.Running {
		panic(fmt.Sprintf("Late register: %#v", m))
	}

	switch s := m.(type) {
	case Database:
		st.Database = s
	case Scheduler:
		st.Scheduler = s
	}

	st.Managers = append(st.Managers, m)
}

func (st *State) Start(c *Conf) {
	// Start the managers
	for _, m := range st.Managers {
		ipd.Debug.Printf("Starting %s", m)
		go m.Start(st, c)
	}
	st.Running = true

	// Catch an interrupt request...
	intr := make(chan os.Signal, 1)
	signal.Notify(intr, os.Interrupt)
	select {
	case <-intr:
		log.Println("Caught interrupt")
	case <-st.Context.Done():
		log.Println("Requested shutdown")
	}

	done := make(chan struct{})
	go func() {
		// ...and request all managers to shut down.
		ipd.Debug.Println("Waiting for managers to shutdown...")
		for i := len(st.Managers) - 1; i >= 0; i-- {
			m := st.Managers[i]
			ipd.Debug.Printf("Shutting %s down", m)
			m.Shutdown()
		}
		done <- struct{}{}
	}()

	select {
	case <-intr:
		log.Println("Forced shutdown")
	case <-done:
		log.Println("Shutting down regularly")
	}
}
