// Package dummydb is an in-memory board.Repository for tests.
package dummydb

import (
	"sync"

	"github.com/metarama/workboard/core/board"
)

type DB struct {
	mutex sync.RWMutex

	users          []board.User
	projects       []board.Project
	schedules      []board.Schedule
	dailyReports   []board.DailyReport
	weeklyReports  []board.WeeklyReport
	monthlyReports []board.MonthlyReport
	educations     []board.EducationRecommendation
}

func Open() (*DB, error) {
	return &DB{}, nil
}

// Seed helpers for the collections the board core treats as read-only.

func (db *DB) SetUsers(users ...board.User) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.users = users
}

func (db *DB) SetProjects(projects ...board.Project) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.projects = projects
}

func (db *DB) SetWeeklyReports(reports ...board.WeeklyReport) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.weeklyReports = reports
}

func (db *DB) SetMonthlyReports(reports ...board.MonthlyReport) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.monthlyReports = reports
}

func (db *DB) SetEducationRecommendations(edus ...board.EducationRecommendation) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.educations = edus
}

func (db *DB) SetSchedules(schedules ...board.Schedule) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.schedules = schedules
}

func (db *DB) SetDailyReports(reports ...board.DailyReport) {
	db.mutex.Lock()
	defer db.mutex.Unlock()
	db.dailyReports = reports
}
