package services

import (
	"CampusTour/logging"
	"CampusTour/models"
	"CampusTour/repositories"
	"context"
	"fmt"
	"mime/multipart"
)

// FeedbackInput is one submission from the feedback form.
type FeedbackInput struct {
	Name    string
	Email   string
	Message string
	Image   *multipart.FileHeader
}

// FeedbackService stores feedback and notifies the administrator.
//
// Order: image intake, then the database write, then the email. A failed
// write removes the stored image and sends nothing. A failed email after a
// successful write is logged only; the feedback is saved and the caller sees
// success.
type FeedbackService struct {
	feedbacks repositories.FeedbackRepository
	uploads   *UploadService
	notifier  Notifier
	logger    logging.Logger
}

func NewFeedbackService(
	feedbacks repositories.FeedbackRepository,
	uploads *UploadService,
	notifier Notifier,
	logger logging.Logger,
) *FeedbackService {
	return &FeedbackService{feedbacks: feedbacks, uploads: uploads, notifier: notifier, logger: logger}
}

func (s *FeedbackService) RecordFeedback(ctx context.Context, in FeedbackInput) (*models.Feedback, error) {
	feedback := &models.Feedback{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
	}

	if in.Image != nil {
		url, err := s.uploads.Save(ctx, in.Image)
		if err != nil {
			return nil, fmt.Errorf("save image: %w", err)
		}
		feedback.ImageURL = &url
	}

	if err := s.feedbacks.Create(ctx, feedback); err != nil {
		if feedback.ImageURL != nil {
			if derr := s.uploads.Discard(context.WithoutCancel(ctx), *feedback.ImageURL); derr != nil {
				s.logger.Warn(ctx, "failed to remove orphaned upload", "image_url", *feedback.ImageURL, "error", derr)
			}
		}
		return nil, fmt.Errorf("save feedback: %w", err)
	}

	// the record is stored; a client hanging up must not cancel the email
	if err := s.notifier.NotifyFeedback(context.WithoutCancel(ctx), *feedback); err != nil {
		s.logger.Warn(ctx, "feedback saved but notification failed", "feedback_id", feedback.ID, "error", err)
	}

	return feedback, nil
}

// ListFeedback returns every submission, newest first.
func (s *FeedbackService) ListFeedback(ctx context.Context) ([]models.Feedback, error) {
	feedbacks, err := s.feedbacks.ListBySubmittedAt(ctx)
	if err != nil {
		return nil, fmt.Errorf("list feedback: %w", err)
	}
	return feedbacks, nil
}
