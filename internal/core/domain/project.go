package domain

import "time"

// Project is a read-only portfolio entry from the remote store. ExternalID is
// the human-facing numeric identifier used when linking likes; Likes is derived
// from the size of the record's linked-like set, never stored independently.
type Project struct {
	ID          string    `json:"id"`
	ExternalID  int64     `json:"airtableId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt,omitzero"`
	Likes       int       `json:"likes"`
	Picture     *string   `json:"picture"`
	IsLiked     *bool     `json:"isLiked,omitempty"`
}
