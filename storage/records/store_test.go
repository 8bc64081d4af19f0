package records

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/metarama/workboard/core/board"
)

func openStore(t *testing.T) *Store {
	store, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("openStore() failed: %v", err)
	}
	return store
}

func TestStore_Load_missingSource(t *testing.T) {
	store := openStore(t)

	var schedules []board.Schedule
	err := store.Load(Schedules, &schedules)

	assert.NoError(t, err)
	assert.Empty(t, schedules)
}

func TestStore_Load_malformedSource(t *testing.T) {
	store := openStore(t)
	raw := []byte(`[{"userId": "u1", "date": ]`) // truncated JSON
	if err := ioutil.WriteFile(filepath.Join(store.dir, "schedules.json"), raw, 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	var schedules []board.Schedule
	err := store.Load(Schedules, &schedules)

	assert.NoError(t, err)
	assert.Empty(t, schedules)
}

func TestStore_Save_overwritesWholeCollection(t *testing.T) {
	store := openStore(t)

	first := []board.Schedule{
		{UserID: "u1", Date: "2025-09-16", Items: []board.ScheduleItem{{Time: "09:00", Period: board.PeriodMorning}}},
		{UserID: "u1", Date: "2025-09-17"},
	}
	assert.NoError(t, store.Save(Schedules, first))

	second := []board.Schedule{
		{UserID: "u1", Date: "2025-09-18"},
	}
	assert.NoError(t, store.Save(Schedules, second))

	var got []board.Schedule
	assert.NoError(t, store.Load(Schedules, &got))
	assert.Equal(t, second, got)
}

func TestStore_Save_leavesNoTempFiles(t *testing.T) {
	store := openStore(t)
	assert.NoError(t, store.Save(Users, []board.User{{ID: "u1", Name: "Ann"}}))

	matches, err := filepath.Glob(filepath.Join(store.dir, "*.tmp"))
	assert.NoError(t, err)
	assert.Empty(t, matches)
}

func TestBoardRepository_roundTrip(t *testing.T) {
	store := openStore(t)
	repo := NewBoardRepository(store)

	reports := []board.DailyReport{
		{ID: "dr-1", UserID: "u1", Date: "2025-09-16", ProjectCode: board.ProjectCodePersonal, Tasks: []board.ReportTask{}},
	}
	assert.NoError(t, repo.SaveDailyReports(reports))

	got, err := repo.QueryAllDailyReports()
	assert.NoError(t, err)
	assert.Equal(t, reports, got)

	// collections never written load empty, not as errors
	users, err := repo.QueryAllUsers()
	assert.NoError(t, err)
	assert.Empty(t, users)
}
