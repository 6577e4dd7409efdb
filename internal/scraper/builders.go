package scraper

import (
	"time"

	"github.com/jonesrussell/pageinsights/internal/domain"
	"github.com/jonesrussell/pageinsights/internal/extract"
)

// buildPage composes the entity page record from the main view. It starts
// from a fully defaulted record and overwrites fields as individual
// extractions succeed; the record stays schema-valid even when every
// optional extraction misses.
func (s *Scraper) buildPage(doc extract.Finder, pageID, pageURL string) *domain.Page {
	page := domain.NewPage(pageID, pageURL, s.now())

	s.setText(doc, s.sel.PageName, &page.PageName, "page_name")
	s.setText(doc, s.sel.ProfilePicture, &page.ProfilePicture, "profile_picture")
	s.setText(doc, s.sel.CoverImage, &page.CoverImage, "cover_image")
	s.setText(doc, s.sel.Description, &page.Description, "description")
	s.setInt(doc, s.sel.Followers, &page.FollowerCount, "follower_count")

	return page
}

// enrichAbout overwrites page fields exposed only on the about view.
func (s *Scraper) enrichAbout(doc extract.Finder, page *domain.Page) {
	s.setText(doc, s.sel.AboutIndustry, &page.Industry, "industry")
	s.setText(doc, s.sel.AboutHeadquarters, &page.Headquarters, "headquarters")
	s.setText(doc, s.sel.AboutFounded, &page.Founded, "founded")
	s.setText(doc, s.sel.AboutWebsite, &page.Website, "website")

	// The size bucket doubles as the employee count source.
	if s.setText(doc, s.sel.AboutCompanySize, &page.CompanySize, "company_size") {
		if n, err := extract.IntFromText(page.CompanySize); err == nil {
			page.EmployeeCount = n
		}
	}

	var specialties string
	if s.setText(doc, s.sel.AboutSpecialties, &specialties, "specialties") {
		page.Specialties = extract.SplitList(specialties)
	}
}

// buildPost composes one post record from a content card. It returns
// errEmptyCard when nothing on the card is extractable, so the caller can
// skip malformed cards and keep enumerating.
func (s *Scraper) buildPost(card extract.Finder, pageID string, idx int, fetchedAt time.Time) (*domain.Post, error) {
	post := domain.NewPost(pageID, idx, fetchedAt)

	hits := 0
	if s.setCappedText(card, s.sel.PostContent, &post.Content, "content") {
		hits++
	}
	if s.setText(card, s.sel.PostDate, &post.PostedDate, "posted_date") {
		hits++
	}
	if s.setInt(card, s.sel.PostLikes, &post.Likes, "likes") {
		hits++
	}
	if s.setInt(card, s.sel.PostComments, &post.CommentsCount, "comments_count") {
		hits++
	}
	if s.setInt(card, s.sel.PostShares, &post.Shares, "shares") {
		hits++
	}
	if s.setText(card, s.sel.PostLink, &post.PostURL, "post_url") {
		hits++
	}
	if media, err := extract.List(card, s.sel.PostMedia); err == nil && len(media) > 0 {
		post.MediaURLs = media
		hits++
	}

	if hits == 0 {
		return nil, errEmptyCard
	}
	return post, nil
}

// buildEmployee composes one employee record from a person card. The name
// is the only fatal field: cards without a resolvable name yield nothing.
func (s *Scraper) buildEmployee(card extract.Finder, pageID string, idx int) (*domain.Employee, bool) {
	employee := domain.NewEmployee(pageID, idx)

	if !s.setText(card, s.sel.EmployeeLink, &employee.Name, "name") {
		return nil, false
	}

	profileLoc := s.sel.EmployeeLink
	profileLoc.Attr = "href"
	s.setText(card, profileLoc, &employee.ProfileURL, "profile_url")
	s.setText(card, s.sel.EmployeeImage, &employee.ProfilePicture, "profile_picture")
	s.setText(card, s.sel.EmployeeTitle, &employee.Title, "title")

	return employee, true
}

// setText overwrites dst when the locator resolves to a non-empty value.
// A miss is not an error, just an absent value logged at debug level.
func (s *Scraper) setText(root extract.Finder, loc extract.Locator, dst *string, field string) bool {
	value, err := extract.Text(root, loc)
	if err != nil || value == "" {
		s.log.Debug("Field miss", "field", field, "selector", loc.Selector, "error", err)
		return false
	}
	*dst = value
	return true
}

// setCappedText is setText with the post body length cap applied.
func (s *Scraper) setCappedText(root extract.Finder, loc extract.Locator, dst *string, field string) bool {
	var value string
	if !s.setText(root, loc, &value, field) {
		return false
	}
	*dst = domain.CapContent(value)
	return true
}

// setInt overwrites dst when the locator resolves to text holding an
// integer-like group; otherwise the field keeps its default.
func (s *Scraper) setInt(root extract.Finder, loc extract.Locator, dst *int, field string) bool {
	value, err := extract.Int(root, loc)
	if err != nil {
		s.log.Debug("Field miss", "field", field, "selector", loc.Selector, "error", err)
		return false
	}
	*dst = value
	return true
}
