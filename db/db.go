// Database management
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

package db

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"
	"log"
	"path"
	"strings"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"go-ipd"
	"go-ipd/cmd"
)

//go:embed *.sql
var sql_dir embed.FS

type db struct {
	// The database connections
	read  *sql.DB
	write *sql.DB

	// The SQL queries are stored as ./*.sql, and they are loaded
	// by the database manager.  QUERIES are the statements handled
	// by READ, and COMMANDS are the statements handled by WRITE.
	queries  map[string]*sql.Stmt
	commands map[string]*sql.Stmt
}

func (db *db) RegisterTournament(ctx context.Context, name string) int64 {
	token := uuid.NewString()
	res, err := db.commands["insert-tournament"].ExecContext(ctx, token, name)
	if err != nil {
		log.Fatal(err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		log.Fatal(err)
	}
	ipd.Debug.Printf("Registered tournament %q (%s) as %d", name, token, id)
	return id
}

func (db *db) SaveMatch(ctx context.Context, tid int64, rec *ipd.MatchRecord) {
	_, err := db.commands["insert-match"].ExecContext(ctx,
		tid,
		rec.Pair[0], rec.Pair[1],
		rec.Names[0], rec.Names[1],
		rec.Repetition, rec.Turns,
		rec.Scores[0], rec.Scores[1])
	if err != nil {
		log.Print(err)
	}
}

func (db *db) QueryMatches(ctx context.Context, tid int64, c chan<- *ipd.MatchRecord) {
	defer close(c)
	rows, err := db.queries["select-matches"].QueryContext(ctx, tid)
	if err != nil {
		log.Print(err)
		return
	}
	defer rows.Close()

	for rows.Next() {
		rec := &ipd.MatchRecord{}
		err = rows.Scan(
			&rec.Pair[0], &rec.Pair[1],
			&rec.Names[0], &rec.Names[1],
			&rec.Repetition, &rec.Turns,
			&rec.Scores[0], &rec.Scores[1])
		if err != nil {
			log.Print(err)
			return
		}
		c <- rec
	}
	if err = rows.Err(); err != nil {
		log.Print(err)
	}
}

func (db *db) Start(st *cmd.State, conf *cmd.Conf) {
	// The database performs no periodic work, but has to stay
	// usable until the other managers have shut down.
	<-st.Context.Done()
}

func (db *db) Shutdown() {
	var err error

	// https://www.sqlite.org/pragma.html#pragma_optimize
	_, err = db.write.Exec("PRAGMA optimize;")
	if err != nil {
		log.Print(err)
	}

	err = db.write.Close()
	if err != nil {
		log.Print(err)
	}

	err = db.read.Close()
	if err != nil {
		log.Print(err)
	}
}

func (*db) String() string { return "Database Manager" }

// Initialise the database and the database manager
func Register(st *cmd.State, conf *cmd.Conf) {
	read, err := sql.Open("sqlite3", conf.Database.File)
	if err != nil {
		log.Fatal(err, ": ", conf.Database)
	}
	read.SetConnMaxLifetime(0)
	read.SetMaxIdleConns(1)

	write, err := sql.Open("sqlite3", conf.Database.File)
	if err != nil {
		log.Fatal(err, ": ", conf.Database)
	}
	write.SetConnMaxLifetime(0)
	write.SetMaxIdleConns(1)
	write.SetMaxOpenConns(1)

	db := &db{
		queries:  make(map[string]*sql.Stmt),
		commands: make(map[string]*sql.Stmt),
		write:    write,
		read:     read,
	}

	for _, pragma := range []string{
		// https://www.sqlite.org/pragma.html#pragma_journal_mode
		"journal_mode = WAL",
		// https://www.sqlite.org/pragma.html#pragma_synchronous
		"synchronous = normal",
		// https://www.sqlite.org/pragma.html#pragma_temp_store
		"temp_store = memory",
		// https://www.sqlite.org/pragma.html#pragma_foreign_keys
		"foreign_keys = on",
	} {
		ipd.Debug.Printf("Run PRAGMA %v", pragma)
		_, err = db.write.Exec("PRAGMA " + pragma + ";")
		if err != nil {
			log.Fatal(err)
		}
	}

	entries, err := sql_dir.ReadDir(".")
	if err != nil {
		log.Fatal(err)
	}
	for _, entry := range entries {
		if !entry.Type().IsRegular() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}

		base := path.Base(entry.Name())
		data, err := fs.ReadFile(sql_dir, entry.Name())
		if err != nil {
			log.Fatal(err)
		}

		if strings.HasPrefix(base, "create-") || strings.HasPrefix(base, "run-") {
			_, err = db.write.Exec(string(data))
			ipd.Debug.Printf("Executed query %v", base)
		} else {
			query := strings.TrimSuffix(base, ".sql")
			if strings.HasPrefix(query, "select-") {
				db.queries[query], err = db.read.Prepare(string(data))
				ipd.Debug.Printf("Registered query %v", query)
			} else {
				db.commands[query], err = db.write.Prepare(string(data))
				ipd.Debug.Printf("Registered command %v", query)
			}
		}
		if err != nil {
			log.Fatal(entry.Name(), ": ", err)
		}
	}

	if len(db.queries) == 0 {
		panic("No queries loaded")
	}

	st.Register(cmd.Database(db))
}
