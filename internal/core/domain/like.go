package domain

import "time"

// Like joins a user to a project's external id. At most one may exist per
// (user, project) pair at any time.
type Like struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	ProjectExternalID string    `json:"projectId"`
	CreatedAt         time.Time `json:"createdAt"`
}
