package models

import "time"

// Feedback is a visitor submission from the feedback form.
// ImageURL is nil when no image was attached.
type Feedback struct {
	ID          string    `json:"id" firestore:"-"`
	Name        string    `json:"name" firestore:"name"`
	Email       string    `json:"email" firestore:"email"`
	Message     string    `json:"message" firestore:"message"`
	ImageURL    *string   `json:"imageUrl" firestore:"imageUrl"`
	SubmittedAt time.Time `json:"submittedAt" firestore:"submittedAt"`
}
