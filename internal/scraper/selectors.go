// Package scraper turns a rendered entity page into structured records:
// one page record, a bounded batch of posts and a bounded batch of
// employees. Partial failure is the norm here; every field and every card
// is extracted in isolation so that fragile markup never aborts the rest
// of the pipeline.
package scraper

import "github.com/jonesrussell/pageinsights/internal/extract"

// Selectors locates every extractable field on the rendered property. The
// markup changes without notice, so each locator is best-effort.
type Selectors struct {
	PageName       extract.Locator
	ProfilePicture extract.Locator
	CoverImage     extract.Locator
	Description    extract.Locator
	Followers      extract.Locator

	AboutIndustry     extract.Locator
	AboutCompanySize  extract.Locator
	AboutHeadquarters extract.Locator
	AboutFounded      extract.Locator
	AboutWebsite      extract.Locator
	AboutSpecialties  extract.Locator

	PostCard     string
	PostContent  extract.Locator
	PostDate     extract.Locator
	PostLikes    extract.Locator
	PostComments extract.Locator
	PostShares   extract.Locator
	PostLink     extract.Locator
	PostMedia    extract.Locator

	EmployeeCard  string
	EmployeeLink  extract.Locator
	EmployeeImage extract.Locator
	EmployeeTitle extract.Locator
}

// DefaultSelectors returns the locator set for the currently rendered
// markup of the scraped property.
func DefaultSelectors() Selectors {
	return Selectors{
		PageName:       extract.Locator{Selector: "h1.org-top-card-summary__title"},
		ProfilePicture: extract.Locator{Selector: "img.org-top-card-primary-content__logo", Attr: "src"},
		CoverImage:     extract.Locator{Selector: "img.org-top-card-module__cover-image", Attr: "src"},
		Description:    extract.Locator{Selector: "p.org-top-card-summary__tagline"},
		Followers:      extract.Locator{Selector: ".org-top-card-summary-info-list__info-item"},

		AboutIndustry:     extract.Locator{Selector: "dd.org-about-company-module__industry"},
		AboutCompanySize:  extract.Locator{Selector: "dd.org-about-company-module__company-size-definition-text"},
		AboutHeadquarters: extract.Locator{Selector: "dd.org-about-company-module__headquarters"},
		AboutFounded:      extract.Locator{Selector: "dd.org-about-company-module__founded"},
		AboutWebsite:      extract.Locator{Selector: "a.org-about-us-company-module__website", Attr: "href"},
		AboutSpecialties:  extract.Locator{Selector: "dd.org-about-company-module__specialities"},

		PostCard:     ".feed-shared-update-v2",
		PostContent:  extract.Locator{Selector: ".feed-shared-text"},
		PostDate:     extract.Locator{Selector: ".feed-shared-actor__sub-description"},
		PostLikes:    extract.Locator{Selector: ".social-details-social-counts__reactions-count"},
		PostComments: extract.Locator{Selector: ".social-details-social-counts__comments"},
		PostShares:   extract.Locator{Selector: ".social-details-social-counts__shares"},
		PostLink:     extract.Locator{Selector: "a.app-aware-link[href*='/feed/update/']", Attr: "href"},
		PostMedia:    extract.Locator{Selector: ".update-components-image img", Attr: "src"},

		EmployeeCard:  ".org-people-profile-card",
		EmployeeLink:  extract.Locator{Selector: "a.app-aware-link"},
		EmployeeImage: extract.Locator{Selector: "img", Attr: "src"},
		EmployeeTitle: extract.Locator{Selector: ".org-people-profile-card__profile-title"},
	}
}
