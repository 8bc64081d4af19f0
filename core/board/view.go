package board

import (
	"sort"
	"time"

	"github.com/metarama/workboard/core"
)

type (
	// ProjectView is a project narrowed to one user: my_tasks holds the names
	// of the project tasks assigned to them, in the project's own task order.
	ProjectView struct {
		Project
		MyTasks []string `json:"my_tasks"`
	}

	// DaySchedule partitions a day's items into the two fixed period buckets.
	DaySchedule struct {
		Morning   []ScheduleItem `json:"오전"`
		Afternoon []ScheduleItem `json:"오후"`
	}

	// View is the aggregated, read-only projection of one user's board for
	// one day, shaped for the rendering layer.
	View struct {
		User          User                      `json:"user"`
		Projects      []ProjectView             `json:"projects"`
		TodaySchedule DaySchedule               `json:"today_schedule"`
		DailyReports  []DailyReport             `json:"daily_reports"`
		WeeklyReport  *WeeklyReport             `json:"weekly_report"`
		MonthlyReport *MonthlyReport            `json:"monthly_report"`
		Education     []EducationRecommendation `json:"education"`
		CalendarWeeks [][]int                   `json:"calendar_weeks"`
		ReportedDates []string                  `json:"reported_dates"`
		Year          int                       `json:"current_year"`
		Month         int                       `json:"current_month"`
		Day           int                       `json:"today_day"`
	}
)

// BuildView loads all collections and joins them into the user's view for
// the given day. Read-only: identical data always yields an identical view.
func (svc *Service) BuildView(userID string, day time.Time) (View, error) {
	users, err := svc.repo.QueryAllUsers()
	if err != nil {
		return View{}, err
	}
	projects, err := svc.repo.QueryAllProjects()
	if err != nil {
		return View{}, err
	}
	schedules, err := svc.repo.QueryAllSchedules()
	if err != nil {
		return View{}, err
	}
	dailyReports, err := svc.repo.QueryAllDailyReports()
	if err != nil {
		return View{}, err
	}
	weeklyReports, err := svc.repo.QueryAllWeeklyReports()
	if err != nil {
		return View{}, err
	}
	monthlyReports, err := svc.repo.QueryAllMonthlyReports()
	if err != nil {
		return View{}, err
	}
	educations, err := svc.repo.QueryAllEducationRecommendations()
	if err != nil {
		return View{}, err
	}
	return buildView(userID, day, users, projects, schedules, dailyReports, weeklyReports, monthlyReports, educations)
}

// buildView is a pure function of its inputs; it performs no I/O.
func buildView(
	userID string,
	day time.Time,
	users []User,
	projects []Project,
	schedules []Schedule,
	dailyReports []DailyReport,
	weeklyReports []WeeklyReport,
	monthlyReports []MonthlyReport,
	educations []EducationRecommendation,
) (View, error) {
	date := day.Format("2006-01-02")

	var usr *User
	for i := range users {
		if users[i].ID == userID {
			usr = &users[i]
			break
		}
	}
	if usr == nil {
		return View{}, ErrUserNotFound
	}

	// assigned projects, each project's own task order preserved
	projectViews := make([]ProjectView, 0)
	for _, project := range projects {
		if !containsString(usr.AssignedProjects, project.Code) {
			continue
		}
		pv := ProjectView{Project: project, MyTasks: make([]string, 0)}
		for _, task := range project.Tasks {
			if task.AssignedToUser(*usr) {
				pv.MyTasks = append(pv.MyTasks, task.Name)
			}
		}
		projectViews = append(projectViews, pv)
	}

	// the day's schedule, bucketed by period; unrecognized periods are
	// dropped from the view (they stay in the stored record untouched)
	todaySchedule := DaySchedule{
		Morning:   make([]ScheduleItem, 0),
		Afternoon: make([]ScheduleItem, 0),
	}
	for _, sched := range schedules {
		if sched.UserID != userID || sched.Date != date {
			continue
		}
		for _, item := range sched.Items {
			switch item.Period {
			case PeriodMorning:
				todaySchedule.Morning = append(todaySchedule.Morning, item)
			case PeriodAfternoon:
				todaySchedule.Afternoon = append(todaySchedule.Afternoon, item)
			}
		}
		break // at most one record per (userId, date)
	}

	userReports := make([]DailyReport, 0)
	reportedSet := make(map[string]struct{})
	for _, report := range dailyReports {
		if report.UserID == userID {
			userReports = append(userReports, report)
			reportedSet[report.Date] = struct{}{}
		}
	}
	reportedDates := make([]string, 0, len(reportedSet))
	for d := range reportedSet {
		reportedDates = append(reportedDates, d)
	}
	sort.Strings(reportedDates)

	// at most one weekly/monthly report per user is expected; should
	// duplicates sneak in, the first wins and the rest stay invisible
	var weekly *WeeklyReport
	for i := range weeklyReports {
		if weeklyReports[i].UserID == userID {
			weekly = &weeklyReports[i]
			break
		}
	}
	var monthly *MonthlyReport
	for i := range monthlyReports {
		if monthlyReports[i].UserID == userID {
			monthly = &monthlyReports[i]
			break
		}
	}

	recommended := make([]EducationRecommendation, 0)
	for _, edu := range educations {
		if containsString(usr.Strengths, edu.RelatedStrength) {
			recommended = append(recommended, edu)
		}
	}

	return View{
		User:          *usr,
		Projects:      projectViews,
		TodaySchedule: todaySchedule,
		DailyReports:  userReports,
		WeeklyReport:  weekly,
		MonthlyReport: monthly,
		Education:     recommended,
		CalendarWeeks: core.MonthGrid(day.Year(), day.Month()),
		ReportedDates: reportedDates,
		Year:          day.Year(),
		Month:         int(day.Month()),
		Day:           day.Day(),
	}, nil
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
