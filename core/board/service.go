package board

import (
	"fmt"
	"net/mail"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/metarama/workboard/core"
)

var (
	// errors
	ErrUserNotFound    = errors.New("user not found")
	ErrProjectNotFound = errors.New("project not found")
	ErrReportNotFound  = errors.New("report not found")
	ErrInvalidTime     = errors.New("invalid schedule time; want HH:MM")

	NowFunc = time.Now // mockable
)

type (
	// Repository is the named-collection record store, typed per collection.
	// Loads substitute an empty collection for a missing or corrupt source;
	// saves rewrite a whole collection at once.
	Repository interface {
		QueryAllUsers() ([]User, error)
		QueryAllProjects() ([]Project, error)
		QueryAllSchedules() ([]Schedule, error)
		QueryAllDailyReports() ([]DailyReport, error)
		QueryAllWeeklyReports() ([]WeeklyReport, error)
		QueryAllMonthlyReports() ([]MonthlyReport, error)
		QueryAllEducationRecommendations() ([]EducationRecommendation, error)

		SaveSchedules([]Schedule) error
		SaveDailyReports([]DailyReport) error
	}

	Service struct {
		repo    Repository
		mailSvc core.EmailService
	}
)

func NewService(repo Repository, mailSvc core.EmailService) *Service {
	return &Service{repo: repo, mailSvc: mailSvc}
}

// GetProject returns the single project with the given code.
func (svc *Service) GetProject(code string) (Project, error) {
	projects, err := svc.repo.QueryAllProjects()
	if err != nil {
		return Project{}, err
	}
	for _, p := range projects {
		if p.Code == code {
			return p, nil
		}
	}
	return Project{}, ErrProjectNotFound
}

// AddSchedule inserts item into the user's schedule for the given day,
// keeping the day's entries time-ordered. The whole save is aborted when any
// entry's time cannot be parsed; nothing is persisted in that case.
func (svc *Service) AddSchedule(userID, date string, item ScheduleItem) (ScheduleItem, error) {
	schedules, err := svc.repo.QueryAllSchedules()
	if err != nil {
		return ScheduleItem{}, err
	}

	var found bool
	for i := range schedules {
		sched := &schedules[i]
		if sched.UserID == userID && sched.Date == date {
			sched.Items = append(sched.Items, item)
			if err := sortScheduleItems(sched.Items); err != nil {
				return ScheduleItem{}, err
			}
			found = true
			break
		}
	}
	if !found {
		if _, err := parseClock(item.Time); err != nil {
			return ScheduleItem{}, err
		}
		schedules = append(schedules, Schedule{UserID: userID, Date: date, Items: []ScheduleItem{item}})
	}

	if err := svc.repo.SaveSchedules(schedules); err != nil {
		return ScheduleItem{}, errors.Wrap(err, "saving schedules")
	}
	return item, nil
}

// UpdateReport applies a parsed task list to an existing report (edit path;
// never creates) or appends a new report for a date (create path).
func (svc *Service) UpdateReport(userID string, ru ReportUpdate) (DailyReport, error) {
	tasks := ParseTasks(ru.Tasks)

	reports, err := svc.repo.QueryAllDailyReports()
	if err != nil {
		return DailyReport{}, err
	}

	var report DailyReport
	var created bool
	switch {
	case ru.ReportID != "":
		var found bool
		for i := range reports {
			if reports[i].ID == ru.ReportID {
				reports[i].Tasks = tasks
				report = reports[i]
				found = true
				break
			}
		}
		if !found {
			return DailyReport{}, ErrReportNotFound
		}
	case ru.Date != "":
		report = DailyReport{
			ID:          newReportID(NowFunc()),
			UserID:      userID,
			Date:        ru.Date,
			ProjectCode: ProjectCodePersonal,
			Tasks:       tasks,
		}
		reports = append(reports, report)
		created = true
	default:
		return DailyReport{}, core.NewValidationError(errReportTarget)
	}

	if err := svc.repo.SaveDailyReports(reports); err != nil {
		return DailyReport{}, errors.Wrap(err, "saving daily reports")
	}

	if created {
		svc.notifyReportCreated(userID, report)
	}
	return report, nil
}

// ParseTasks splits newline-separated free text into task records: lines are
// trimmed, blank lines dropped. Empty input yields an empty list, not an error.
func ParseTasks(text string) []ReportTask {
	tasks := make([]ReportTask, 0)
	for _, line := range strings.Split(text, "\n") {
		if desc := core.CleanString(line); desc != "" {
			tasks = append(tasks, ReportTask{Task: desc, Status: TaskStatusUpdated})
		}
	}
	return tasks
}

// newReportID keeps ids chronologically sortable like the historical
// dr-<timestamp> scheme while staying unique within a second.
func newReportID(now time.Time) string {
	return fmt.Sprintf("dr-%s-%s", now.Format("20060102150405"), uuid.New().String()[:8])
}

// sortScheduleItems orders items ascending by wall-clock time; items with
// identical times keep their relative order.
func sortScheduleItems(items []ScheduleItem) error {
	type keyedItem struct {
		minutes int
		item    ScheduleItem
	}
	keyed := make([]keyedItem, len(items))
	for i, item := range items {
		minutes, err := parseClock(item.Time)
		if err != nil {
			return err
		}
		keyed[i] = keyedItem{minutes, item}
	}
	sort.SliceStable(keyed, func(i, j int) bool { return keyed[i].minutes < keyed[j].minutes })
	for i := range keyed {
		items[i] = keyed[i].item
	}
	return nil
}

func parseClock(s string) (int, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, errors.Wrapf(ErrInvalidTime, "%q", s)
	}
	return t.Hour()*60 + t.Minute(), nil
}

// notifyReportCreated emails the owner a copy of the saved tasks.
// Best-effort: failures never fail the mutation.
func (svc *Service) notifyReportCreated(userID string, report DailyReport) {
	if svc.mailSvc == nil {
		return
	}
	users, err := svc.repo.QueryAllUsers()
	if err != nil {
		return
	}
	var usr *User
	for i := range users {
		if users[i].ID == userID {
			usr = &users[i]
			break
		}
	}
	if usr == nil || usr.Email == "" {
		return
	}

	body := new(strings.Builder)
	fmt.Fprintf(body, "Daily report for %s:\n", report.Date)
	if len(report.Tasks) == 0 {
		body.WriteString("(no tasks)\n")
	}
	for _, task := range report.Tasks {
		fmt.Fprintf(body, "- %s\n", task.Task)
	}

	svc.mailSvc.SendMessages(&core.EmailMessage{
		To:      []mail.Address{{Name: usr.Name, Address: usr.Email}},
		Subject: "Daily report saved - " + report.Date,
		BodyStr: body.String(),
	})
}
