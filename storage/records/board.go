package records

import (
	"github.com/metarama/workboard/core/board"
)

type boardRepository struct {
	store *Store
}

var _ board.Repository = (*boardRepository)(nil) // interface compliance check

func NewBoardRepository(store *Store) board.Repository {
	return &boardRepository{store: store}
}

func (repo *boardRepository) QueryAllUsers() ([]board.User, error) {
	var users []board.User
	err := repo.store.Load(Users, &users)
	return users, err
}

func (repo *boardRepository) QueryAllProjects() ([]board.Project, error) {
	var projects []board.Project
	err := repo.store.Load(Projects, &projects)
	return projects, err
}

func (repo *boardRepository) QueryAllSchedules() ([]board.Schedule, error) {
	var schedules []board.Schedule
	err := repo.store.Load(Schedules, &schedules)
	return schedules, err
}

func (repo *boardRepository) QueryAllDailyReports() ([]board.DailyReport, error) {
	var reports []board.DailyReport
	err := repo.store.Load(DailyReports, &reports)
	return reports, err
}

func (repo *boardRepository) QueryAllWeeklyReports() ([]board.WeeklyReport, error) {
	var reports []board.WeeklyReport
	err := repo.store.Load(WeeklyReports, &reports)
	return reports, err
}

func (repo *boardRepository) QueryAllMonthlyReports() ([]board.MonthlyReport, error) {
	var reports []board.MonthlyReport
	err := repo.store.Load(MonthlyReports, &reports)
	return reports, err
}

func (repo *boardRepository) QueryAllEducationRecommendations() ([]board.EducationRecommendation, error) {
	var edus []board.EducationRecommendation
	err := repo.store.Load(EducationRecommendations, &edus)
	return edus, err
}

func (repo *boardRepository) SaveSchedules(schedules []board.Schedule) error {
	return repo.store.Save(Schedules, schedules)
}

func (repo *boardRepository) SaveDailyReports(reports []board.DailyReport) error {
	return repo.store.Save(DailyReports, reports)
}
