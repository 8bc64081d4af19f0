package board

import (
	"errors"

	"github.com/metarama/workboard/core"
)

// Period labels for a day's schedule buckets; stored verbatim on the wire.
const (
	PeriodMorning   = "오전"
	PeriodAfternoon = "오후"
)

// ProjectCodePersonal marks a daily report not tied to any assigned project.
const ProjectCodePersonal = "개인"

// TaskStatusUpdated is the status stamped on every task parsed from free text.
const TaskStatusUpdated = "Updated"

// User is a board member. Read-only from this core's perspective.
type User struct {
	ID               string   `json:"userId"`
	Name             string   `json:"userName"`
	Email            string   `json:"email,omitempty"`
	AssignedProjects []string `json:"assignedProjects"`
	Strengths        []string `json:"strengths"`
}

type ProjectTask struct {
	Name       string   `json:"taskName"`
	AssignedTo []string `json:"assignedTo"`
}

// AssignedToUser reports whether the task references the user by stable id,
// or by display name for rows predating the id migration.
func (t ProjectTask) AssignedToUser(usr User) bool {
	for _, ref := range t.AssignedTo {
		if ref == usr.ID || ref == usr.Name {
			return true
		}
	}
	return false
}

type Project struct {
	Code  string        `json:"projectCode"`
	Name  string        `json:"projectName,omitempty"`
	Tasks []ProjectTask `json:"tasks"`
}

type ScheduleItem struct {
	Time   string `json:"time"`
	Period string `json:"period"`
	Title  string `json:"title,omitempty"`
}

// Schedule holds one user's items for one day.
// At most one record exists per (userId, date) pair.
type Schedule struct {
	UserID string         `json:"userId"`
	Date   string         `json:"date"`
	Items  []ScheduleItem `json:"schedules"`
}

type ReportTask struct {
	Task   string `json:"task"`
	Status string `json:"status"`
}

type DailyReport struct {
	ID          string       `json:"reportId"`
	UserID      string       `json:"userId"`
	Date        string       `json:"date"`
	ProjectCode string       `json:"projectCode"`
	Tasks       []ReportTask `json:"tasks"`
}

type WeeklyReport struct {
	UserID  string `json:"userId"`
	WeekOf  string `json:"weekOf,omitempty"`
	Summary string `json:"summary,omitempty"`
}

// ChartData feeds the monthly progress bar chart.
type ChartData struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

type MonthlyReport struct {
	UserID  string     `json:"userId"`
	Month   string     `json:"month,omitempty"`
	Summary string     `json:"summary,omitempty"`
	Chart   *ChartData `json:"chart,omitempty"`
}

type EducationRecommendation struct {
	RelatedStrength string `json:"relatedStrength"`
	Title           string `json:"title,omitempty"`
	Provider        string `json:"provider,omitempty"`
	Link            string `json:"link,omitempty"`
}

// NewScheduleItem contains information needed to add a schedule entry.
type NewScheduleItem struct {
	Time   string `json:"time" validate:"required,hhmm"`
	Period string `json:"period" validate:"required"`
	Title  string `json:"title"`
	Date   string `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (ns *NewScheduleItem) Validate() error {
	ns.Time = core.CleanString(ns.Time)
	ns.Period = core.CleanString(ns.Period)
	ns.Title = core.CleanString(ns.Title)
	ns.Date = core.CleanString(ns.Date)
	return core.Validate.Struct(ns)
}

// ReportUpdate edits an existing daily report's task list (ReportID set) or
// creates a new report for a date. Tasks is newline-separated free text.
type ReportUpdate struct {
	ReportID string `json:"reportId"`
	Date     string `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Tasks    string `json:"tasks"`
}

var errReportTarget = errors.New("either reportId or date is required")

func (ru *ReportUpdate) Validate() error {
	ru.ReportID = core.CleanString(ru.ReportID)
	ru.Date = core.CleanString(ru.Date)

	if err := core.Validate.Struct(ru); err != nil {
		return err
	}
	if ru.ReportID == "" && ru.Date == "" {
		return core.NewValidationError(errReportTarget)
	}
	return nil
}
