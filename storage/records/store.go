// Package records persists named collections of JSON records, one file per
// collection, with whole-collection load/save semantics.
package records

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"reflect"
	"sync"

	"github.com/pkg/errors"
)

// Collection names recognized by the store.
const (
	Users                    = "users"
	Projects                 = "projects"
	DailyReports             = "daily_reports"
	WeeklyReports            = "weekly_reports"
	MonthlyReports           = "monthly_reports"
	EducationRecommendations = "education_recommendations"
	Schedules                = "schedules"
)

type Store struct {
	dir string

	mu    sync.Mutex
	locks map[string]*sync.Mutex // one lock per collection
}

func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "creating data dir %s", dir)
	}
	return &Store{dir: dir, locks: make(map[string]*sync.Mutex)}, nil
}

// Load fills dst (a pointer to a slice of records) with the named collection.
// A missing or malformed source leaves dst empty and reports no error: the
// board must render partial data rather than fail.
func (s *Store) Load(name string, dst interface{}) error {
	lock := s.lock(name)
	lock.Lock()
	defer lock.Unlock()

	data, err := ioutil.ReadFile(s.path(name))
	if err != nil {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		// a partial decode may have filled some of dst; reset it
		v := reflect.ValueOf(dst).Elem()
		v.Set(reflect.Zero(v.Type()))
	}
	return nil
}

// Save rewrites the whole named collection. The new content lands in a temp
// file first and is swapped in by rename, so loads never observe a partial
// write; writers of the same collection are serialized.
func (s *Store) Save(name string, src interface{}) error {
	lock := s.lock(name)
	lock.Lock()
	defer lock.Unlock()

	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "encoding %s", name)
	}

	tmp, err := ioutil.TempFile(s.dir, name+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "creating temp file for %s", name)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "writing %s", name)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "closing %s", name)
	}
	if err := os.Rename(tmp.Name(), s.path(name)); err != nil {
		return errors.Wrapf(err, "replacing %s", name)
	}
	return nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.dir, name+".json")
}

func (s *Store) lock(name string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[name]
	if !ok {
		lock = new(sync.Mutex)
		s.locks[name] = lock
	}
	return lock
}
