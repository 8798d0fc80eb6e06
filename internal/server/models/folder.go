package models

import "time"

// Folder groups files. DateModified is supplied by the caller on creation
// and is not touched by renames.
type Folder struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DateModified time.Time `json:"date_modified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
