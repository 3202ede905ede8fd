package repositories

import (
	"CampusTour/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runUserRepositoryContract checks the behaviour every users backend shares.
// The repository must start empty.
func runUserRepositoryContract(t *testing.T, repo UserRepository) {
	t.Helper()
	ctx := context.Background()

	before, err := repo.ListByLoginTime(ctx)
	require.NoError(t, err)
	require.NotNil(t, before)

	start := time.Now().Truncate(time.Millisecond)

	first := &models.User{Username: "a@x.com", Password: "digest-1"}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.LoginTime.Before(start), "loginTime must default to now")

	// same username again is a new record
	second := &models.User{Username: "a@x.com", Password: "digest-2", LoginTime: first.LoginTime.Add(time.Minute)}
	require.NoError(t, repo.Create(ctx, second))
	assert.NotEqual(t, first.ID, second.ID)

	older := &models.User{Username: "b@x.com", Password: "digest-3", LoginTime: first.LoginTime.Add(-time.Hour)}
	require.NoError(t, repo.Create(ctx, older))

	users, err := repo.ListByLoginTime(ctx)
	require.NoError(t, err)
	require.Len(t, users, len(before)+3)

	assert.Equal(t, second.ID, users[0].ID)
	assert.Equal(t, first.ID, users[1].ID)
	assert.Equal(t, older.ID, users[2].ID)
	assert.Equal(t, "digest-2", users[0].Password)
	assert.True(t, users[1].LoginTime.Equal(first.LoginTime), "listed %v, created %v", users[1].LoginTime, first.LoginTime)
	assert.False(t, users[1].LoginTime.Before(start))
	for i := 1; i < len(users); i++ {
		assert.False(t, users[i].LoginTime.After(users[i-1].LoginTime), "logins out of order at %d", i)
	}
}

func runFeedbackRepositoryContract(t *testing.T, repo FeedbackRepository) {
	t.Helper()
	ctx := context.Background()

	start := time.Now().Truncate(time.Millisecond)
	image := "/uploads/1717000000000-quad.png"

	plain := &models.Feedback{Name: "Ana", Email: "a@x.com", Message: "Great tour!"}
	require.NoError(t, repo.Create(ctx, plain))
	assert.NotEmpty(t, plain.ID)
	assert.False(t, plain.SubmittedAt.Before(start))

	withImage := &models.Feedback{
		Name:        "Ben",
		Email:       "b@x.com",
		Message:     "See photo",
		ImageURL:    &image,
		SubmittedAt: plain.SubmittedAt.Add(time.Second),
	}
	require.NoError(t, repo.Create(ctx, withImage))

	feedbacks, err := repo.ListBySubmittedAt(ctx)
	require.NoError(t, err)
	require.Len(t, feedbacks, 2)

	assert.Equal(t, withImage.ID, feedbacks[0].ID)
	require.NotNil(t, feedbacks[0].ImageURL)
	assert.Equal(t, image, *feedbacks[0].ImageURL)

	assert.Equal(t, plain.ID, feedbacks[1].ID)
	assert.Equal(t, "Ana", feedbacks[1].Name)
	assert.Equal(t, "a@x.com", feedbacks[1].Email)
	assert.Equal(t, "Great tour!", feedbacks[1].Message)
	assert.Nil(t, feedbacks[1].ImageURL)
	assert.True(t, feedbacks[1].SubmittedAt.Equal(plain.SubmittedAt), "listed %v, created %v", feedbacks[1].SubmittedAt, plain.SubmittedAt)
	assert.False(t, feedbacks[1].SubmittedAt.Before(start))
	assert.True(t, feedbacks[0].SubmittedAt.Equal(withImage.SubmittedAt))
}
