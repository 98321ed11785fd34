package model

import (
	"slices"
	"time"
)

// Workspace is a named group of users owning zero or more boards.
// Users never contains duplicates and is never empty while the
// workspace exists; removing the last member deletes the document.
type Workspace struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Users     []int64   `json:"users"`
	Boards    []int64   `json:"boards"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (w *Workspace) HasUser(userID int64) bool {
	return slices.Contains(w.Users, userID)
}
