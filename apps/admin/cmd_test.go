package main

import (
	"testing"

	"github.com/metarama/workboard/core/board"
	"github.com/metarama/workboard/storage/records"
)

func setup(t *testing.T) *commandLine {
	store, err := records.Open(t.TempDir())
	if err != nil {
		t.Fatalf("records.Open(): %v", err)
	}
	repo := records.NewBoardRepository(store)

	return &commandLine{
		owner:    "metarama",
		store:    store,
		repo:     repo,
		boardSvc: board.NewService(repo, nil),
	}
}

type cliTest struct {
	name    string
	args    []string // without program name
	wantErr error
}

func Test_commandLine_seed(t *testing.T) {
	cli := setup(t)

	tests := []cliTest{
		{name: "no command", wantErr: errHelp},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "seed empty store", args: []string{"seed"}},
		{name: "seed again", args: []string{"seed"}, wantErr: errDataPresent},
		{name: "seed again with -force", args: []string{"seed", "-force"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	// every collection landed
	users, err := cli.repo.QueryAllUsers()
	if err != nil {
		t.Fatalf("QueryAllUsers(): %v", err)
	}
	if len(users) != 1 || users[0].ID != cli.owner {
		t.Errorf("users = %+v; want the owner only", users)
	}
	projects, _ := cli.repo.QueryAllProjects()
	if len(projects) == 0 {
		t.Error("no projects seeded")
	}
	reports, _ := cli.repo.QueryAllDailyReports()
	if len(reports) != 1 || len(reports[0].Tasks) == 0 {
		t.Errorf("daily reports = %+v; want one with tasks", reports)
	}
	edus, _ := cli.repo.QueryAllEducationRecommendations()
	if len(edus) == 0 {
		t.Error("no education recommendations seeded")
	}
}

func Test_commandLine_clearTasks(t *testing.T) {
	cli := setup(t)

	if err := cli.run([]string{"admin", "seed"}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	tests := []cliTest{
		{name: "no report id", args: []string{"cleartasks"}, wantErr: errHelp},
		{name: "unknown report id", args: []string{"cleartasks", "-report", "dr-nope"}, wantErr: board.ErrReportNotFound},
		{name: "clear seeded report", args: []string{"cleartasks", "-report", "dr-20250915100000-seeded01"}},
	}
	for _, tt := range tests {
		args := append([]string{"admin"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			if err := cli.run(args); err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}

	reports, err := cli.repo.QueryAllDailyReports()
	if err != nil {
		t.Fatalf("QueryAllDailyReports(): %v", err)
	}
	if len(reports) != 1 {
		t.Fatalf("daily reports = %v; want 1", len(reports))
	}
	if len(reports[0].Tasks) != 0 {
		t.Errorf("tasks = %+v; want cleared", reports[0].Tasks)
	}
}
