package domain

import (
	"fmt"
	"time"
)

// MaxPostContentLen caps the stored post body length in runes.
const MaxPostContentLen = 500

// Post is one unit of published content attributed to an entity page.
// Posts are created only as a side effect of a fetch and never updated in
// place; a re-fetch produces a fresh batch.
type Post struct {
	PostID        string   `json:"post_id" bson:"post_id"`
	PageID        string   `json:"page_id" bson:"page_id"`
	Content       string   `json:"content,omitempty" bson:"content,omitempty"`
	PostedDate    string   `json:"posted_date,omitempty" bson:"posted_date,omitempty"`
	Likes         int      `json:"likes" bson:"likes"`
	CommentsCount int      `json:"comments_count" bson:"comments_count"`
	Shares        int      `json:"shares" bson:"shares"`
	PostURL       string   `json:"post_url,omitempty" bson:"post_url,omitempty"`
	MediaURLs     []string `json:"media_urls" bson:"media_urls"`
}

// NewPost returns a fully defaulted post record. The source provides no
// stable post identifier, so identity is synthesized from the owning key,
// the ordinal position and the fetch time to stay unique across re-fetches.
func NewPost(pageID string, idx int, fetchedAt time.Time) *Post {
	return &Post{
		PostID:    fmt.Sprintf("%s_post_%d_%d", pageID, idx, fetchedAt.Unix()),
		PageID:    pageID,
		MediaURLs: []string{},
	}
}

// CapContent truncates text to MaxPostContentLen runes.
func CapContent(text string) string {
	runes := []rune(text)
	if len(runes) <= MaxPostContentLen {
		return text
	}
	return string(runes[:MaxPostContentLen])
}
