package repositories

import (
	"CampusTour/models"
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type FirestoreManager struct {
	client    *firestore.Client
	users     *FirestoreUserRepository
	feedbacks *FirestoreFeedbackRepository
}

func NewFirestoreManager(client *firestore.Client) *FirestoreManager {
	return &FirestoreManager{
		client:    client,
		users:     &FirestoreUserRepository{FirestoreClient: client, now: time.Now},
		feedbacks: &FirestoreFeedbackRepository{FirestoreClient: client, now: time.Now},
	}
}

func (m *FirestoreManager) Users() UserRepository         { return m.users }
func (m *FirestoreManager) Feedbacks() FeedbackRepository { return m.feedbacks }

func (m *FirestoreManager) Close(context.Context) error {
	return m.client.Close()
}

type FirestoreUserRepository struct {
	FirestoreClient *firestore.Client
	now             func() time.Time
}

func (r *FirestoreUserRepository) Create(ctx context.Context, user *models.User) error {
	user.LoginTime = stampTime(user.LoginTime, r.now, firestoreTimePrecision)

	// Firestore generates the document ID
	userRef := r.FirestoreClient.Collection(UsersCollection).NewDoc()
	if _, err := userRef.Set(ctx, user); err != nil {
		return firestoreError("create user", err)
	}
	user.ID = userRef.ID
	return nil
}

func (r *FirestoreUserRepository) ListByLoginTime(ctx context.Context) ([]models.User, error) {
	iter := r.FirestoreClient.Collection(UsersCollection).OrderBy("loginTime", firestore.Desc).Documents(ctx)
	return collectDocuments(iter, func(u *models.User, id string) { u.ID = id })
}

type FirestoreFeedbackRepository struct {
	FirestoreClient *firestore.Client
	now             func() time.Time
}

func (r *FirestoreFeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	feedback.SubmittedAt = stampTime(feedback.SubmittedAt, r.now, firestoreTimePrecision)

	feedbackRef := r.FirestoreClient.Collection(FeedbacksCollection).NewDoc()
	if _, err := feedbackRef.Set(ctx, feedback); err != nil {
		return firestoreError("create feedback", err)
	}
	feedback.ID = feedbackRef.ID
	return nil
}

func (r *FirestoreFeedbackRepository) ListBySubmittedAt(ctx context.Context) ([]models.Feedback, error) {
	iter := r.FirestoreClient.Collection(FeedbacksCollection).OrderBy("submittedAt", firestore.Desc).Documents(ctx)
	return collectDocuments(iter, func(f *models.Feedback, id string) { f.ID = id })
}

// collectDocuments drains iter into a non-nil slice, stamping each record with
// its document ID.
func collectDocuments[T any](iter *firestore.DocumentIterator, setID func(*T, string)) ([]T, error) {
	defer iter.Stop()

	records := []T{}
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, firestoreError("list documents", err)
		}

		var record T
		if err := doc.DataTo(&record); err != nil {
			return nil, fmt.Errorf("decode document %s: %w", doc.Ref.ID, err)
		}
		setID(&record, doc.Ref.ID)
		records = append(records, record)
	}
	return records, nil
}

func firestoreError(op string, err error) error {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%s: %w: %v", op, ErrUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
