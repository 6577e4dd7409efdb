package domain

import "fmt"

// Employee is a lightweight record of an individual associated with an
// entity page. Name is required: cards without a resolvable name are
// discarded during extraction and never persisted.
type Employee struct {
	UserID         string `json:"user_id" bson:"user_id"`
	Name           string `json:"name" bson:"name"`
	ProfileURL     string `json:"profile_url,omitempty" bson:"profile_url,omitempty"`
	ProfilePicture string `json:"profile_picture,omitempty" bson:"profile_picture,omitempty"`
	Title          string `json:"title,omitempty" bson:"title,omitempty"`
	PageID         string `json:"page_id" bson:"page_id"`
}

// NewEmployee returns a defaulted employee record with a synthesized
// identity unique within the owning page.
func NewEmployee(pageID string, idx int) *Employee {
	return &Employee{
		UserID: fmt.Sprintf("%s_user_%d", pageID, idx),
		PageID: pageID,
	}
}
