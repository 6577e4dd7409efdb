// Package domain provides domain models used across the application.
package domain

import "time"

// Page is the root scraped record for one entity page. PageID and PageURL
// are always present; every other field is best-effort and may stay at its
// zero value when extraction misses.
type Page struct {
	PageID         string    `json:"page_id" bson:"page_id"`
	PageName       string    `json:"page_name,omitempty" bson:"page_name,omitempty"`
	PageURL        string    `json:"page_url" bson:"page_url"`
	ProfilePicture string    `json:"profile_picture,omitempty" bson:"profile_picture,omitempty"`
	CoverImage     string    `json:"cover_image,omitempty" bson:"cover_image,omitempty"`
	Description    string    `json:"description,omitempty" bson:"description,omitempty"`
	Website        string    `json:"website,omitempty" bson:"website,omitempty"`
	Industry       string    `json:"industry,omitempty" bson:"industry,omitempty"`
	CompanySize    string    `json:"company_size,omitempty" bson:"company_size,omitempty"`
	Headquarters   string    `json:"headquarters,omitempty" bson:"headquarters,omitempty"`
	Founded        string    `json:"founded,omitempty" bson:"founded,omitempty"`
	Specialties    []string  `json:"specialties" bson:"specialties"`
	FollowerCount  int       `json:"follower_count" bson:"follower_count"`
	EmployeeCount  int       `json:"employee_count" bson:"employee_count"`
	ScrapedAt      time.Time `json:"scraped_at" bson:"-"`
	UpdatedAt      time.Time `json:"updated_at" bson:"-"`
}

// NewPage returns a fully defaulted page record for the given identity key
// and canonical URL. Specialties is always a non-nil slice.
func NewPage(pageID, pageURL string, now time.Time) *Page {
	return &Page{
		PageID:      pageID,
		PageURL:     pageURL,
		Specialties: []string{},
		ScrapedAt:   now,
		UpdatedAt:   now,
	}
}

// FollowerSummary is the follower count view of a page. The full follower
// list is not extractable from the rendered property.
type FollowerSummary struct {
	PageID        string `json:"page_id"`
	FollowerCount int    `json:"follower_count"`
	Note          string `json:"note"`
}
