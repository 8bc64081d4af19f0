package main

import (
	"log"
	"os"

	"github.com/metarama/workboard/core"
	"github.com/metarama/workboard/core/board"
	"github.com/metarama/workboard/storage/records"
)

var logger *log.Logger

func main() {
	defer os.Exit(0)

	logger = log.New(os.Stdout, "ADMIN : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)

	conf := core.NewConfig()

	// set up the record store
	store, err := records.Open(conf.DataDir)
	errAndDie(err)
	repo := records.NewBoardRepository(store)

	// start CLI
	cli := commandLine{
		owner:    conf.BoardOwner,
		store:    store,
		repo:     repo,
		boardSvc: board.NewService(repo, nil),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			logger.Printf("\nerror: %s\n", err)
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		logger.Fatal(err)
	}
}
