package models

import "time"

// User is a single login event. Every login submission creates a new record,
// even for a username that already exists.
type User struct {
	ID        string    `json:"id" firestore:"-"`
	Username  string    `json:"username" firestore:"username"`
	Password  string    `json:"password" firestore:"password"`
	LoginTime time.Time `json:"loginTime" firestore:"loginTime"`
}
