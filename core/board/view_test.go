package board_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/metarama/workboard/core/board"
)

var viewDay = time.Date(2025, 9, 16, 0, 0, 0, 0, time.UTC)

func TestService_BuildView_userNotFound(t *testing.T) {
	svc, _, _ := setup(t)

	_, err := svc.BuildView("ghost", viewDay)
	assert.Equal(t, board.ErrUserNotFound, errCause(err))
}

func TestService_BuildView_projectsAndMyTasks(t *testing.T) {
	svc, _, db := setup(t)
	db.SetUsers(board.User{ID: "u1", Name: "Ann", AssignedProjects: []string{"P1"}, Strengths: []string{"S1"}})
	db.SetProjects(
		board.Project{Code: "P1", Tasks: []board.ProjectTask{{Name: "T1", AssignedTo: []string{"Ann"}}}},
		board.Project{Code: "P2", Tasks: []board.ProjectTask{{Name: "T2", AssignedTo: []string{"Ann"}}}},
	)

	view, err := svc.BuildView("u1", viewDay)
	assert.NoError(t, err)

	// only the assigned project shows up, with exactly the user's tasks
	assert.Len(t, view.Projects, 1)
	assert.Equal(t, "P1", view.Projects[0].Code)
	assert.Equal(t, []string{"T1"}, view.Projects[0].MyTasks)
}

func TestService_BuildView_taskAssignmentAcceptsStableID(t *testing.T) {
	svc, _, db := setup(t)
	db.SetUsers(board.User{ID: "u1", Name: "Ann", AssignedProjects: []string{"P1"}})
	db.SetProjects(board.Project{Code: "P1", Tasks: []board.ProjectTask{
		{Name: "by id", AssignedTo: []string{"u1"}},
		{Name: "by legacy display name", AssignedTo: []string{"Ann"}},
		{Name: "someone else", AssignedTo: []string{"u2"}},
	}})

	view, err := svc.BuildView("u1", viewDay)
	assert.NoError(t, err)
	assert.Equal(t, []string{"by id", "by legacy display name"}, view.Projects[0].MyTasks)
}

func TestService_BuildView_scheduleBuckets(t *testing.T) {
	svc, _, db := setup(t)
	db.SetUsers(board.User{ID: "u1", Name: "Ann"})
	db.SetSchedules(
		board.Schedule{UserID: "u1", Date: "2025-09-16", Items: []board.ScheduleItem{
			{Time: "09:00", Period: board.PeriodMorning, Title: "standup"},
			{Time: "14:00", Period: board.PeriodAfternoon, Title: "sync"},
			{Time: "20:00", Period: "저녁", Title: "unknown period, dropped"},
		}},
		board.Schedule{UserID: "u1", Date: "2025-09-17", Items: []board.ScheduleItem{
			{Time: "09:00", Period: board.PeriodMorning, Title: "other day"},
		}},
	)

	view, err := svc.BuildView("u1", viewDay)
	assert.NoError(t, err)

	assert.Len(t, view.TodaySchedule.Morning, 1)
	assert.Equal(t, "standup", view.TodaySchedule.Morning[0].Title)
	assert.Len(t, view.TodaySchedule.Afternoon, 1)
	assert.Equal(t, "sync", view.TodaySchedule.Afternoon[0].Title)
}

func TestService_BuildView_emptyStore(t *testing.T) {
	svc, _, db := setup(t)
	db.SetUsers(board.User{ID: "u1", Name: "Ann"})

	// everything else missing: the view renders empty, it does not fail
	view, err := svc.BuildView("u1", viewDay)
	assert.NoError(t, err)
	assert.Empty(t, view.Projects)
	assert.Empty(t, view.DailyReports)
	assert.Nil(t, view.WeeklyReport)
	assert.Nil(t, view.MonthlyReport)
	assert.Empty(t, view.Education)
	assert.Empty(t, view.TodaySchedule.Morning)
	assert.Empty(t, view.TodaySchedule.Afternoon)
}

func TestService_BuildView_reportsAndReportedDates(t *testing.T) {
	svc, _, db := setup(t)
	db.SetUsers(board.User{ID: "u1", Name: "Ann"})
	db.SetDailyReports(
		board.DailyReport{ID: "dr-2", UserID: "u1", Date: "2025-09-15"},
		board.DailyReport{ID: "dr-1", UserID: "u1", Date: "2025-09-10"},
		board.DailyReport{ID: "dr-3", UserID: "u2", Date: "2025-09-16"},
		board.DailyReport{ID: "dr-4", UserID: "u1", Date: "2025-09-15"}, // same date twice
	)

	view, err := svc.BuildView("u1", viewDay)
	assert.NoError(t, err)

	// stored order preserved for the user's reports
	ids := make([]string, 0)
	for _, r := range view.DailyReports {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"dr-2", "dr-1", "dr-4"}, ids)

	// reported dates are a sorted set
	assert.Equal(t, []string{"2025-09-10", "2025-09-15"}, view.ReportedDates)
}

func TestService_BuildView_firstWeeklyAndMonthlyWin(t *testing.T) {
	svc, _, db := setup(t)
	db.SetUsers(board.User{ID: "u1", Name: "Ann"})
	db.SetWeeklyReports(
		board.WeeklyReport{UserID: "u1", Summary: "first"},
		board.WeeklyReport{UserID: "u1", Summary: "duplicate, invisible"},
	)
	db.SetMonthlyReports(
		board.MonthlyReport{UserID: "u2", Summary: "someone else"},
		board.MonthlyReport{UserID: "u1", Summary: "mine"},
	)

	view, err := svc.BuildView("u1", viewDay)
	assert.NoError(t, err)
	assert.Equal(t, "first", view.WeeklyReport.Summary)
	assert.Equal(t, "mine", view.MonthlyReport.Summary)
}

func TestService_BuildView_educationMatchesStrengths(t *testing.T) {
	svc, _, db := setup(t)
	db.SetUsers(board.User{ID: "u1", Name: "Ann", Strengths: []string{"S1", "S2"}})
	db.SetEducationRecommendations(
		board.EducationRecommendation{RelatedStrength: "S1", Title: "match one"},
		board.EducationRecommendation{RelatedStrength: "S3", Title: "no match"},
		board.EducationRecommendation{RelatedStrength: "S2", Title: "match two"},
	)

	view, err := svc.BuildView("u1", viewDay)
	assert.NoError(t, err)
	assert.Len(t, view.Education, 2)
	assert.Equal(t, "match one", view.Education[0].Title)
	assert.Equal(t, "match two", view.Education[1].Title)
}

func TestService_BuildView_calendarAndEchoedDate(t *testing.T) {
	svc, _, db := setup(t)
	db.SetUsers(board.User{ID: "u1", Name: "Ann"})

	view, err := svc.BuildView("u1", viewDay)
	assert.NoError(t, err)

	assert.Equal(t, 2025, view.Year)
	assert.Equal(t, 9, view.Month)
	assert.Equal(t, 16, view.Day)
	assert.Len(t, view.CalendarWeeks, 5)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, view.CalendarWeeks[0]) // Monday first
}

func TestService_BuildView_isPure(t *testing.T) {
	svc, repo, db := setup(t)
	db.SetUsers(board.User{ID: "u1", Name: "Ann", AssignedProjects: []string{"P1"}, Strengths: []string{"S1"}})
	db.SetProjects(board.Project{Code: "P1", Tasks: []board.ProjectTask{{Name: "T1", AssignedTo: []string{"Ann"}}}})
	db.SetSchedules(board.Schedule{UserID: "u1", Date: "2025-09-16", Items: []board.ScheduleItem{{Time: "09:00", Period: board.PeriodMorning}}})
	db.SetDailyReports(board.DailyReport{ID: "dr-1", UserID: "u1", Date: "2025-09-15"})

	first, err := svc.BuildView("u1", viewDay)
	assert.NoError(t, err)
	second, err := svc.BuildView("u1", viewDay)
	assert.NoError(t, err)
	assert.Equal(t, first, second)

	// and it writes nothing back
	schedules, _ := repo.QueryAllSchedules()
	assert.Len(t, schedules, 1)
	reports, _ := repo.QueryAllDailyReports()
	assert.Len(t, reports, 1)
}
