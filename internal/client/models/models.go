// Package models holds the client-side view of server resources, decoded
// from the REST API responses.
package models

import "time"

type Folder struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	DateModified time.Time `json:"date_modified"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type File struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Size         int64     `json:"size"`
	DateModified time.Time `json:"date_modified"`
	ParentID     *int64    `json:"parent_id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
