// Entry point
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

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"go-ipd"
	"go-ipd/bot"
	"go-ipd/cmd"
	"go-ipd/db"
	"go-ipd/sched"
	"go-ipd/tourn"
)

func main() {
	name := flag.String("name", "tournament",
		"Name to register the tournament under")

	flag.Parse()
	if flag.NArg() != 0 {
		fmt.Fprintf(flag.CommandLine.Output(),
			"Too many arguments passed to %s.\nUsage:\n",
			os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}

	// Create the shared state and load the configuration
	st := cmd.MakeState()
	conf := cmd.LoadConf()

	// Assemble the roster and the generator configuration
	players := bot.All()

	var opts []tourn.Option
	if conf.Game.Turns > 0 {
		opts = append(opts, tourn.WithTurns(conf.Game.Turns))
	}
	if conf.Game.ProbEnd > 0 {
		opts = append(opts, tourn.WithProbEnd(conf.Game.ProbEnd))
	}
	if conf.Game.Noise > 0 {
		opts = append(opts, tourn.WithNoise(conf.Game.Noise))
	}
	if len(conf.Tourn.Edges) > 0 {
		var edges []tourn.Edge
		for i, e := range conf.Tourn.Edges {
			if len(e) != 2 {
				log.Fatalf("Invalid edge %v (%d)", e, i+1)
			}
			edges = append(edges, tourn.Edge{I: e[0], J: e[1]})
		}
		opts = append(opts, tourn.WithEdges(edges))
	}

	// All misconfigurations surface here, before any match is
	// scheduled.
	gen, err := tourn.MakeGenerator(players, ipd.MakeDefaultGame(),
		conf.Game.Repetitions, opts...)
	if err != nil {
		log.Fatal(err)
	}

	// Load components
	db.Register(st, conf)
	tour := sched.MakeTournament(gen)
	st.Register(tour)
	st.Tournament = st.Database.RegisterTournament(st.Context, *name)

	// Decide where the report goes
	out := io.Writer(os.Stdout)
	if res := conf.Tourn.Result; res != "" {
		ipd.Debug.Println("Writing results to", res)
		file, err := os.Create(res)
		if err != nil {
			log.Fatal(err)
		}
		defer file.Close()
		out = file
	}

	// Start the tournament
	st.Start(conf)

	// Print results
	tour.PrintResults(st, out)
}
