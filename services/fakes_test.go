package services

import (
	"CampusTour/models"
	"CampusTour/storage"
	"bytes"
	"context"
	"errors"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

var errDBDown = errors.New("connection refused")

type fakeUserRepo struct {
	users []models.User
	err   error
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if f.err != nil {
		return f.err
	}
	user.ID = "u1"
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) ListByLoginTime(context.Context) ([]models.User, error) {
	return f.users, f.err
}

type fakeFeedbackRepo struct {
	feedbacks []models.Feedback
	err       error
}

func (f *fakeFeedbackRepo) Create(_ context.Context, feedback *models.Feedback) error {
	if f.err != nil {
		return f.err
	}
	feedback.ID = "f1"
	f.feedbacks = append(f.feedbacks, *feedback)
	return nil
}

func (f *fakeFeedbackRepo) ListBySubmittedAt(context.Context) ([]models.Feedback, error) {
	return f.feedbacks, f.err
}

type fakeStorage struct {
	mu      sync.Mutex
	files   map[string][]byte
	deleted []string
	saveErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{files: map[string][]byte{}}
}

func (f *fakeStorage) Save(_ context.Context, name string, r io.Reader) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	b, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.files[name] = b
	return nil
}

func (f *fakeStorage) Open(_ context.Context, name string) (io.ReadCloser, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.files[name]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return io.NopCloser(bytes.NewReader(b)), nil
}

func (f *fakeStorage) Delete(_ context.Context, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.files, name)
	f.deleted = append(f.deleted, name)
	return nil
}

type fakeNotifier struct {
	sent []models.Feedback
	err  error
}

func (f *fakeNotifier) NotifyFeedback(_ context.Context, feedback models.Feedback) error {
	f.sent = append(f.sent, feedback)
	return f.err
}

// fileHeader builds a multipart.FileHeader the way gin hands one to a handler.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))
	t.Cleanup(func() { _ = req.MultipartForm.RemoveAll() })

	return req.MultipartForm.File["image"][0]
}

type notifierFunc func(ctx context.Context) error

func (f notifierFunc) NotifyFeedback(ctx context.Context, _ models.Feedback) error {
	return f(ctx)
}
