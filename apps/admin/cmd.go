package main

import (
	"errors"
	"flag"
	"fmt"

	"github.com/metarama/workboard/core/board"
	"github.com/metarama/workboard/storage/records"
)

var errHelp = errors.New("help provided")

type commandLine struct {
	owner    string
	store    *records.Store
	repo     board.Repository
	boardSvc *board.Service
}

func (cli *commandLine) printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  seed [-force] - write a starter data set into the record store")
	fmt.Println("  cleartasks -report REPORTID - clear a daily report's task list")
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	seedCmd := flag.NewFlagSet("seed", flag.ExitOnError)
	seedForce := seedCmd.Bool("force", false, "Overwrite collections that already hold data.")

	clearTasksCmd := flag.NewFlagSet("cleartasks", flag.ExitOnError)
	clearTasksReport := clearTasksCmd.String("report", "", "The daily report id whose task list will be cleared.")

	switch args[1] {
	case "seed":
		if err := seedCmd.Parse(args[2:]); err != nil {
			return err
		}
		return cli.seed(*seedForce)
	case "cleartasks":
		if err := clearTasksCmd.Parse(args[2:]); err != nil {
			return err
		}
		if *clearTasksReport == "" {
			clearTasksCmd.Usage()
			return errHelp
		}
		return cli.clearTasks(*clearTasksReport)
	default:
		cli.printUsage()
		return errHelp
	}
}

// clearTasks empties a daily report's task list through the report mutator,
// so the edit-path rules apply (an unknown id is an error, nothing saved).
func (cli *commandLine) clearTasks(reportID string) error {
	if _, err := cli.boardSvc.UpdateReport(cli.owner, board.ReportUpdate{ReportID: reportID}); err != nil {
		return err
	}
	fmt.Printf("tasks cleared on report %s\n", reportID)
	return nil
}
