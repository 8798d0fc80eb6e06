package models

import "time"

// File describes metadata of a single file. The content itself is not
// stored anywhere by the server.
type File struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	DateModified time.Time `json:"date_modified"`
	// ParentID references the containing folder; nil means root level.
	// It is not guaranteed to point at an existing folder.
	ParentID  *int64    `json:"parent_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
