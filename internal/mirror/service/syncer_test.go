package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	athdomain "github.com/clubnatacion/swimclub-backend/internal/athletes/domain"
	attdomain "github.com/clubnatacion/swimclub-backend/internal/attendance/domain"
	"github.com/clubnatacion/swimclub-backend/internal/meta"
	"github.com/clubnatacion/swimclub-backend/internal/mirror/domain"
)

type fakeStamps struct {
	stamps map[string]time.Time
}

func (f *fakeStamps) Get(_ context.Context, collection string) (*meta.Stamp, error) {
	return &meta.Stamp{Collection: collection, UpdatedAt: f.stamps[collection]}, nil
}

type fakeAthletes struct {
	roster []*athdomain.Athlete
	calls  int
}

func (f *fakeAthletes) List(context.Context, athdomain.Status) ([]*athdomain.Athlete, error) {
	f.calls++
	return f.roster, nil
}

type fakeAttendance struct {
	delta     []*attdomain.Attendance
	histories map[string][]*attdomain.Attendance
}

func (f *fakeAttendance) ListSince(context.Context, time.Time) ([]*attdomain.Attendance, error) {
	return f.delta, nil
}

func (f *fakeAttendance) ListByAthlete(_ context.Context, athleteID string) ([]*attdomain.Attendance, error) {
	return f.histories[athleteID], nil
}

type memStore struct {
	athletes []*domain.AthleteRow
	rollups  []*domain.AttendanceRollup
	syncs    map[string]time.Time
}

func newMemStore() *memStore {
	return &memStore{syncs: make(map[string]time.Time)}
}

func (s *memStore) UpsertAthlete(row *domain.AthleteRow) error {
	s.athletes = append(s.athletes, row)
	return nil
}

func (s *memStore) UpsertRollup(roll *domain.AttendanceRollup) error {
	s.rollups = append(s.rollups, roll)
	return nil
}

func (s *memStore) LastSync(collection string) (time.Time, error) {
	return s.syncs[collection], nil
}

func (s *memStore) SetLastSync(collection string, syncedAt time.Time) error {
	s.syncs[collection] = syncedAt
	return nil
}

func TestSyncerMirrorsChangedCollections(t *testing.T) {
	now := time.Now()
	stamps := &fakeStamps{stamps: map[string]time.Time{
		"athletes":   now,
		"attendance": now,
	}}
	athletes := &fakeAthletes{roster: []*athdomain.Athlete{
		{ID: "a1", Name: "Ana", Status: athdomain.StatusActive},
		{ID: "a2", Name: "Beto", Status: athdomain.StatusPending},
	}}
	attendance := &fakeAttendance{
		delta: []*attdomain.Attendance{{AthleteID: "a1", Date: "2025-06-02", Present: true}},
		histories: map[string][]*attdomain.Attendance{
			"a1": {
				{AthleteID: "a1", Date: "2025-06-02", Present: true},
				{AthleteID: "a1", Date: "2025-06-04"},
			},
		},
	}
	store := newMemStore()

	syncer := NewSyncer(stamps, athletes, attendance, store)
	syncer.SyncOnce(context.Background())

	require.Len(t, store.athletes, 2)
	assert.Equal(t, "a1", store.athletes[0].AthleteID)
	assert.Equal(t, "active", store.athletes[0].Status)

	require.Len(t, store.rollups, 1)
	assert.Equal(t, "2025-06", store.rollups[0].Month)
	assert.Equal(t, 1, store.rollups[0].Present)
	assert.Equal(t, 1, store.rollups[0].Absent)

	assert.False(t, store.syncs["athletes"].IsZero())
	assert.False(t, store.syncs["attendance"].IsZero())
}

func TestSyncerSkipsUnchangedCollections(t *testing.T) {
	stamped := time.Now().Add(-time.Hour)
	stamps := &fakeStamps{stamps: map[string]time.Time{
		"athletes":   stamped,
		"attendance": stamped,
	}}
	athletes := &fakeAthletes{}
	store := newMemStore()
	store.syncs["athletes"] = time.Now()
	store.syncs["attendance"] = time.Now()

	syncer := NewSyncer(stamps, athletes, &fakeAttendance{}, store)
	syncer.SyncOnce(context.Background())

	assert.Zero(t, athletes.calls)
	assert.Empty(t, store.athletes)
	assert.Empty(t, store.rollups)
}
