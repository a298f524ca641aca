package models

import "time"

// Task is a to-do item bound to exactly one owner. OwnerID is set at
// creation and never changes.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	OwnerID   string    `json:"ownerId"`
	CreatedAt time.Time `json:"createdAt"`
}
