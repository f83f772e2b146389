// Configuration
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
	"flag"
	"io"
	"log"
	"os"
	"runtime"

	"go-ipd"

	"github.com/BurntSushi/toml"
)

const defconf = "go-ipd.toml"

func init() {
	def := &defaultConfig

	flag.UintVar(&def.Game.Turns, "turns", def.Game.Turns,
		"Fixed number of rounds per match (0 leaves the length to -prob-end)")
	flag.Float64Var(&def.Game.ProbEnd, "prob-end", def.Game.ProbEnd,
		"Probability that a round ends the match")
	flag.Float64Var(&def.Game.Noise, "noise", def.Game.Noise,
		"Probability that a realized action is flipped")
	flag.UintVar(&def.Game.Repetitions, "repetitions", def.Game.Repetitions,
		"Number of independent matches per pairing")

	flag.UintVar(&def.Tourn.Workers, "workers", def.Tourn.Workers,
		"Number of concurrent match workers")
	flag.StringVar(&def.Tourn.Result, "result", def.Tourn.Result,
		"File to write the result table to")

	flag.StringVar(&def.Database.File, "db", def.Database.File,
		"File to use for the database")

	flag.BoolVar(&debug, "debug", debug, "Enable debug output")
	flag.BoolVar(&silent, "silent", silent, "Disable verbose output")
	flag.BoolVar(&dump, "dump-config", dump, "Dump configuration to standard output")
	flag.StringVar(&cfile, "conf", cfile, "Path to configuration file")
}

type DatabaseConf struct {
	File string `toml:"file"`
}

type GameConf struct {
	Turns       uint    `toml:"turns"`
	ProbEnd     float64 `toml:"prob-end"`
	Noise       float64 `toml:"noise"`
	Repetitions uint    `toml:"repetitions"`
}

type TournConf struct {
	Workers uint `toml:"workers"`
	// Explicit topology as pairs of roster positions.  An empty
	// list requests a full round robin.
	Edges  [][]int `toml:"edges"`
	Result string  `toml:"result"`
}

// Internal representation
type Conf struct {
	Database DatabaseConf `toml:"database"`
	Game     GameConf     `toml:"game"`
	Tourn    TournConf    `toml:"tournament"`
}

// Configuration object used by default
var defaultConfig = Conf{
	Database: DatabaseConf{
		File: "data.db",
	},
	Game: GameConf{
		Turns:       200,
		Repetitions: 10,
	},
	Tourn: TournConf{
		Workers: uint(runtime.NumCPU()),
	},
}

var (
	debug  = false
	silent = false
	dump   = false
	cfile  = defconf
)

// Open a configuration file and return it
func LoadConf() (c *Conf) {
	file, err := os.Open(cfile)
	if err != nil {
		if !os.IsNotExist(err) || cfile != defconf {
			log.Fatal(err)
		}
		c = &defaultConfig
	} else {
		defer file.Close()
		conf := defaultConfig
		if _, err := toml.NewDecoder(file).Decode(&conf); err != nil {
			log.Print(err)
			conf = defaultConfig
		}
		c = &conf
	}

	switch {
	case debug:
		ipd.Debug.SetOutput(os.Stderr)
		log.Default().SetFlags(log.LstdFlags | log.Lshortfile)
		ipd.Debug.Println("Debug logging has been enabled")
	case silent:
		log.Default().SetOutput(io.Discard)
	}

	// Dump the configuration onto the disk if requested
	if dump {
		err = c.Dump(os.Stdout)
		if err != nil {
			log.Fatalln("Failed to dump default configuration:", err)
		}
		os.Exit(0)
	}

	return c
}

// Serialise the configuration into a writer
func (c *Conf) Dump(wr io.Writer) error {
	return toml.NewEncoder(wr).Encode(c)
}
