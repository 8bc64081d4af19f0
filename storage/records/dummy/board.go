package dummydb

import (
	"github.com/metarama/workboard/core/board"
)

type boardRepository struct {
	db *DB
}

var _ board.Repository = (*boardRepository)(nil) // interface compliance check

func NewBoardRepository(db *DB) board.Repository {
	return &boardRepository{db: db}
}

func (repo *boardRepository) QueryAllUsers() ([]board.User, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return copyUsers(repo.db.users), nil
}

func (repo *boardRepository) QueryAllProjects() ([]board.Project, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return copyProjects(repo.db.projects), nil
}

func (repo *boardRepository) QueryAllSchedules() ([]board.Schedule, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return copySchedules(repo.db.schedules), nil
}

func (repo *boardRepository) QueryAllDailyReports() ([]board.DailyReport, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return copyDailyReports(repo.db.dailyReports), nil
}

func (repo *boardRepository) QueryAllWeeklyReports() ([]board.WeeklyReport, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return append([]board.WeeklyReport(nil), repo.db.weeklyReports...), nil
}

func (repo *boardRepository) QueryAllMonthlyReports() ([]board.MonthlyReport, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return append([]board.MonthlyReport(nil), repo.db.monthlyReports...), nil
}

func (repo *boardRepository) QueryAllEducationRecommendations() ([]board.EducationRecommendation, error) {
	repo.db.mutex.RLock()
	defer repo.db.mutex.RUnlock()
	return append([]board.EducationRecommendation(nil), repo.db.educations...), nil
}

func (repo *boardRepository) SaveSchedules(schedules []board.Schedule) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	repo.db.schedules = copySchedules(schedules)
	return nil
}

func (repo *boardRepository) SaveDailyReports(reports []board.DailyReport) error {
	repo.db.mutex.Lock()
	defer repo.db.mutex.Unlock()
	repo.db.dailyReports = copyDailyReports(reports)
	return nil
}

// deep copies so callers cannot mutate the stored state behind the lock

func copyUsers(users []board.User) []board.User {
	out := make([]board.User, len(users))
	for i, u := range users {
		u.AssignedProjects = append([]string(nil), u.AssignedProjects...)
		u.Strengths = append([]string(nil), u.Strengths...)
		out[i] = u
	}
	return out
}

func copyProjects(projects []board.Project) []board.Project {
	out := make([]board.Project, len(projects))
	for i, p := range projects {
		tasks := make([]board.ProjectTask, len(p.Tasks))
		for j, t := range p.Tasks {
			t.AssignedTo = append([]string(nil), t.AssignedTo...)
			tasks[j] = t
		}
		p.Tasks = tasks
		out[i] = p
	}
	return out
}

func copySchedules(schedules []board.Schedule) []board.Schedule {
	out := make([]board.Schedule, len(schedules))
	for i, s := range schedules {
		s.Items = append([]board.ScheduleItem(nil), s.Items...)
		out[i] = s
	}
	return out
}

func copyDailyReports(reports []board.DailyReport) []board.DailyReport {
	out := make([]board.DailyReport, len(reports))
	for i, r := range reports {
		r.Tasks = append([]board.ReportTask(nil), r.Tasks...)
		out[i] = r
	}
	return out
}
