package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/clubnatacion/swimclub-backend/internal/attendance/domain"
)

const (
	attendanceCollection = "attendance"
	metaCollection       = "attendanceMeta"
)

type AttendanceRepository struct {
	client *firestore.Client
}

func NewAttendanceRepository(client *firestore.Client) *AttendanceRepository {
	return &AttendanceRepository{client: client}
}

// Upsert writes one record under its composite id; re-saving the same
// (athlete, date, group) overwrites (last write wins).
func (r *AttendanceRepository) Upsert(ctx context.Context, a *domain.Attendance) error {
	data := map[string]interface{}{
		"athleteId":  a.AthleteID,
		"date":       a.Date,
		"groupId":    a.GroupID,
		"present":    a.Present,
		"justified":  a.Justified,
		"note":       a.Note,
		"recordedBy": a.RecordedBy,
		"updatedAt":  firestore.ServerTimestamp,
	}

	_, err := r.client.Collection(attendanceCollection).Doc(a.DocID()).Set(ctx, data, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("upsert attendance %s: %w", a.DocID(), err)
	}
	return nil
}

// ListByDateAndGroup returns the records of one session.
func (r *AttendanceRepository) ListByDateAndGroup(ctx context.Context, dateISO, groupID string) ([]*domain.Attendance, error) {
	iter := r.client.Collection(attendanceCollection).
		Where("date", "==", dateISO).
		Where("groupId", "==", groupID).
		Documents(ctx)
	defer iter.Stop()

	var out []*domain.Attendance
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list attendance: %w", err)
		}

		var a domain.Attendance
		if err := snap.DataTo(&a); err != nil {
			return nil, fmt.Errorf("decode attendance %s: %w", snap.Ref.ID, err)
		}
		out = append(out, &a)
	}
	return out, nil
}

// ListByAthlete returns an athlete's full attendance history.
func (r *AttendanceRepository) ListByAthlete(ctx context.Context, athleteID string) ([]*domain.Attendance, error) {
	iter := r.client.Collection(attendanceCollection).
		Where("athleteId", "==", athleteID).
		OrderBy("date", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var out []*domain.Attendance
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list attendance for %s: %w", athleteID, err)
		}

		var a domain.Attendance
		if err := snap.DataTo(&a); err != nil {
			return nil, fmt.Errorf("decode attendance %s: %w", snap.Ref.ID, err)
		}
		out = append(out, &a)
	}
	return out, nil
}

// ListSince returns records touched after the given instant, for delta
// readers such as the reporting mirror.
func (r *AttendanceRepository) ListSince(ctx context.Context, since time.Time) ([]*domain.Attendance, error) {
	iter := r.client.Collection(attendanceCollection).
		Where("updatedAt", ">", since).
		Documents(ctx)
	defer iter.Stop()

	var out []*domain.Attendance
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list attendance since %s: %w", since.Format(time.RFC3339), err)
		}

		var a domain.Attendance
		if err := snap.DataTo(&a); err != nil {
			return nil, fmt.Errorf("decode attendance %s: %w", snap.Ref.ID, err)
		}
		out = append(out, &a)
	}
	return out, nil
}

// UpsertSessionMeta writes the per-date session metadata, keyed by ISO date.
func (r *AttendanceRepository) UpsertSessionMeta(ctx context.Context, m *domain.SessionMeta) error {
	data := map[string]interface{}{
		"date":              m.Date,
		"cancelled":         m.Cancelled,
		"exceptionalGroups": m.ExceptionalGroups,
		"updatedAt":         firestore.ServerTimestamp,
	}

	_, err := r.client.Collection(metaCollection).Doc(m.Date).Set(ctx, data, firestore.MergeAll)
	if err != nil {
		return fmt.Errorf("upsert session meta %s: %w", m.Date, err)
	}
	return nil
}

// GetSessionMeta reads one date's metadata; a missing doc returns nil.
func (r *AttendanceRepository) GetSessionMeta(ctx context.Context, dateISO string) (*domain.SessionMeta, error) {
	snap, err := r.client.Collection(metaCollection).Doc(dateISO).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get session meta %s: %w", dateISO, err)
	}

	var m domain.SessionMeta
	if err := snap.DataTo(&m); err != nil {
		return nil, fmt.Errorf("decode session meta %s: %w", dateISO, err)
	}
	return &m, nil
}
