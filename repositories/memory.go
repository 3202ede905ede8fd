package repositories

import (
	"CampusTour/models"
	"context"
	"slices"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryManager keeps both collections in process memory. It backs the
// "memory" driver for local development and the tests.
type MemoryManager struct {
	users     *MemoryUserRepository
	feedbacks *MemoryFeedbackRepository
}

// NewMemoryManager uses now for default timestamps; nil means time.Now.
func NewMemoryManager(now func() time.Time) *MemoryManager {
	if now == nil {
		now = time.Now
	}
	return &MemoryManager{
		users:     &MemoryUserRepository{now: now},
		feedbacks: &MemoryFeedbackRepository{now: now},
	}
}

func (m *MemoryManager) Users() UserRepository         { return m.users }
func (m *MemoryManager) Feedbacks() FeedbackRepository { return m.feedbacks }
func (m *MemoryManager) Close(context.Context) error   { return nil }

type MemoryUserRepository struct {
	mu      sync.RWMutex
	records []models.User
	now     func() time.Time
}

func (r *MemoryUserRepository) Create(ctx context.Context, user *models.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if user.LoginTime.IsZero() {
		user.LoginTime = r.now().UTC()
	}
	user.ID = uuid.NewString()

	r.mu.Lock()
	r.records = append(r.records, *user)
	r.mu.Unlock()
	return nil
}

func (r *MemoryUserRepository) ListByLoginTime(ctx context.Context) ([]models.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	users := make([]models.User, len(r.records))
	copy(users, r.records)
	r.mu.RUnlock()

	// newest first; ties keep the later insert first
	slices.Reverse(users)
	sort.SliceStable(users, func(i, j int) bool {
		return users[i].LoginTime.After(users[j].LoginTime)
	})
	return users, nil
}

type MemoryFeedbackRepository struct {
	mu      sync.RWMutex
	records []models.Feedback
	now     func() time.Time
}

func (r *MemoryFeedbackRepository) Create(ctx context.Context, feedback *models.Feedback) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if feedback.SubmittedAt.IsZero() {
		feedback.SubmittedAt = r.now().UTC()
	}
	feedback.ID = uuid.NewString()

	r.mu.Lock()
	r.records = append(r.records, *feedback)
	r.mu.Unlock()
	return nil
}

func (r *MemoryFeedbackRepository) ListBySubmittedAt(ctx context.Context) ([]models.Feedback, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	feedbacks := make([]models.Feedback, len(r.records))
	copy(feedbacks, r.records)
	r.mu.RUnlock()

	slices.Reverse(feedbacks)
	sort.SliceStable(feedbacks, func(i, j int) bool {
		return feedbacks[i].SubmittedAt.After(feedbacks[j].SubmittedAt)
	})
	return feedbacks, nil
}
