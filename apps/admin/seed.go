package main

import (
	"errors"
	"fmt"

	"github.com/metarama/workboard/core/board"
	"github.com/metarama/workboard/storage/records"
)

var errDataPresent = errors.New("record store already holds data; re-run with -force to overwrite")

// seed writes a starter data set for the board owner.
func (cli *commandLine) seed(force bool) error {
	if !force {
		users, err := cli.repo.QueryAllUsers()
		if err != nil {
			return err
		}
		if len(users) > 0 {
			return errDataPresent
		}
	}

	owner := cli.owner
	saves := map[string]interface{}{
		records.Users: []board.User{
			{
				ID:               owner,
				Name:             "Meta Rama",
				AssignedProjects: []string{"PRJ-APOLLO", "PRJ-HELIOS"},
				Strengths:        []string{"data-analysis", "facilitation"},
			},
		},
		records.Projects: []board.Project{
			{
				Code: "PRJ-APOLLO",
				Name: "Apollo Rollout",
				Tasks: []board.ProjectTask{
					{Name: "Draft rollout checklist", AssignedTo: []string{owner}},
					{Name: "Review telemetry dashboards", AssignedTo: []string{owner, "jklee"}},
				},
			},
			{
				Code: "PRJ-HELIOS",
				Name: "Helios Migration",
				Tasks: []board.ProjectTask{
					{Name: "Map legacy schemas", AssignedTo: []string{"jklee"}},
				},
			},
		},
		records.Schedules: []board.Schedule{
			{
				UserID: owner,
				Date:   "2025-09-16",
				Items: []board.ScheduleItem{
					{Time: "09:30", Period: board.PeriodMorning, Title: "Stand-up"},
					{Time: "14:00", Period: board.PeriodAfternoon, Title: "Apollo sync"},
				},
			},
		},
		records.DailyReports: []board.DailyReport{
			{
				ID:          "dr-20250915100000-seeded01",
				UserID:      owner,
				Date:        "2025-09-15",
				ProjectCode: "PRJ-APOLLO",
				Tasks: []board.ReportTask{
					{Task: "Checked rollout blockers", Status: board.TaskStatusUpdated},
				},
			},
		},
		records.WeeklyReports: []board.WeeklyReport{
			{UserID: owner, WeekOf: "2025-09-15", Summary: "Apollo rollout on track"},
		},
		records.MonthlyReports: []board.MonthlyReport{
			{
				UserID:  owner,
				Month:   "2025-09",
				Summary: "Milestones holding",
				Chart: &board.ChartData{
					Labels: []string{"PRJ-APOLLO", "PRJ-HELIOS"},
					Data:   []float64{72, 35},
				},
			},
		},
		records.EducationRecommendations: []board.EducationRecommendation{
			{RelatedStrength: "data-analysis", Title: "Practical SQL for Analysts", Provider: "in-house"},
			{RelatedStrength: "facilitation", Title: "Workshop Facilitation Basics", Provider: "in-house"},
		},
	}

	for name, data := range saves {
		if err := cli.store.Save(name, data); err != nil {
			return err
		}
	}

	fmt.Printf("starter data written for %s\n", owner)
	return nil
}
