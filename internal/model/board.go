package model

import "time"

// Board is a named collection of labels and lists scoped to exactly one
// workspace. Access is always authorized through that workspace's
// membership, never through the board itself.
type Board struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	WorkspaceID int64     `json:"workspace"`
	Labels      []Label   `json:"labels"`
	Lists       []List    `json:"lists"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type Label struct {
	ID     int64  `json:"id"`
	Colour string `json:"colour"`
	Title  string `json:"title"`
}

type List struct {
	ID     int64  `json:"id"`
	Header string `json:"header"`
	Cards  []Card `json:"cards"`
}

// Card is modeled for the document layout but not yet exposed through
// the API.
type Card struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Assign      []int64 `json:"assign"`
	Labels      []int64 `json:"labels"`
}
