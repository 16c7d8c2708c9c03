package models

import "time"

// LinkBookmark is a client-side pointer to a tip page the client created.
// It is kept only for the owner's convenience list and has a lifecycle
// independent of the record it points at: deleting a bookmark never touches
// the authoritative store.
type LinkBookmark struct {
	Token       string    `json:"token"`
	DisplayName string    `json:"displayName"`
	CreatedAt   time.Time `json:"createdAt"`
}
