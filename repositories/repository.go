// Package repositories stores login events and feedback in a document
// database. Each backend keeps two independent collections, users and
// feedbacks; records are only ever inserted and listed.
package repositories

import (
	"CampusTour/models"
	"context"
	"errors"
	"time"
)

const (
	UsersCollection     = "users"
	FeedbacksCollection = "feedbacks"
)

// Timestamp resolution each backend keeps. BSON dates hold milliseconds and
// Firestore timestamps hold microseconds.
const (
	mongoTimePrecision     = time.Millisecond
	firestoreTimePrecision = time.Microsecond
)

// ErrUnavailable marks failures caused by the database being unreachable.
var ErrUnavailable = errors.New("database unavailable")

// UserRepository is the users collection.
//
// Create assigns the record ID and, when LoginTime is zero, the current time.
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	ListByLoginTime(ctx context.Context) ([]models.User, error)
}

// FeedbackRepository is the feedbacks collection.
//
// Create assigns the record ID and, when SubmittedAt is zero, the current time.
type FeedbackRepository interface {
	Create(ctx context.Context, feedback *models.Feedback) error
	ListBySubmittedAt(ctx context.Context) ([]models.Feedback, error)
}

// Manager hands out the repositories of one backend and owns its client.
type Manager interface {
	Users() UserRepository
	Feedbacks() FeedbackRepository
	Close(ctx context.Context) error
}

// stampTime defaults a zero t to now and truncates it to precision, so the
// value handed back from Create is the value later listed.
func stampTime(t time.Time, now func() time.Time, precision time.Duration) time.Time {
	if t.IsZero() {
		t = now()
	}
	return t.UTC().Truncate(precision)
}
