package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jonesrussell/pageinsights/internal/domain"
	"github.com/jonesrussell/pageinsights/internal/storage"
)

// Demo data shape.
const (
	demoPostCount     = 15
	demoEmployeeCount = 8
)

var (
	demoTitles = []string{
		"Software Engineer", "Product Manager", "Data Scientist",
		"Marketing Manager", "Sales Director",
	}
	demoNames = []string{
		"John Smith", "Sarah Johnson", "Michael Chen", "Emily Davis",
		"David Wilson", "Lisa Anderson", "James Brown", "Maria Garcia",
	}
	demoSpecialties = []string{
		"Cloud Computing", "Artificial Intelligence",
		"Software Development", "Data Analytics",
	}
)

// CreateDemoPage seeds a page with generated data, for demonstrations when
// live scraping is blocked. It reports whether the page was created; an
// already-stored key is left untouched.
func (s *InsightsService) CreateDemoPage(ctx context.Context, pageID string) (bool, error) {
	_, err := s.pages.FindByID(ctx, pageID)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		return false, err
	}

	now := time.Now().UTC()
	display := capitalize(pageID)

	page := domain.NewPage(pageID, fmt.Sprintf("https://www.linkedin.com/company/%s/", pageID), now)
	page.PageName = display + " Corporation"
	page.ProfilePicture = fmt.Sprintf("https://media.example.com/%s/company-logo_200_200.png", pageID)
	page.Description = fmt.Sprintf(
		"Leading technology company specializing in innovative solutions. %s is transforming the industry with cutting-edge products and services.",
		display,
	)
	page.Website = fmt.Sprintf("https://www.%s.com", pageID)
	page.Industry = "Technology, Information and Internet"
	page.CompanySize = "10,001+ employees"
	page.Headquarters = "San Francisco, CA"
	page.Founded = "2010"
	page.Specialties = append([]string{}, demoSpecialties...)
	page.FollowerCount = 50000 + rand.Intn(450001)
	page.EmployeeCount = 1000 + rand.Intn(9001)

	if insertErr := s.pages.Insert(ctx, page); insertErr != nil {
		if errors.Is(insertErr, storage.ErrDuplicateKey) {
			return false, nil
		}
		return false, insertErr
	}

	posts := make([]domain.Post, 0, demoPostCount)
	for i := 0; i < demoPostCount; i++ {
		post := domain.Post{
			PostID: fmt.Sprintf("%s_post_%d", pageID, i),
			PageID: pageID,
			Content: fmt.Sprintf(
				"Exciting update #%d from %s! We're proud to announce our latest innovations and continue to drive excellence in our industry.",
				i+1, display,
			),
			PostedDate:    fmt.Sprintf("%d days ago", 1+rand.Intn(30)),
			Likes:         100 + rand.Intn(4901),
			CommentsCount: 10 + rand.Intn(491),
			Shares:        5 + rand.Intn(196),
			PostURL:       fmt.Sprintf("https://www.linkedin.com/feed/update/%s/", uuid.NewString()),
			MediaURLs:     []string{},
		}
		posts = append(posts, post)
	}
	if insertErr := s.posts.InsertMany(ctx, posts); insertErr != nil {
		return false, insertErr
	}

	employees := make([]domain.Employee, 0, demoEmployeeCount)
	for i, name := range demoNames[:demoEmployeeCount] {
		employees = append(employees, domain.Employee{
			UserID:         fmt.Sprintf("%s_user_%d", pageID, i),
			Name:           name,
			ProfileURL:     fmt.Sprintf("https://www.linkedin.com/in/%s/", strings.ReplaceAll(strings.ToLower(name), " ", "-")),
			ProfilePicture: fmt.Sprintf("https://media.example.com/profile-%d/photo.jpg", i),
			Title:          demoTitles[rand.Intn(len(demoTitles))],
			PageID:         pageID,
		})
	}
	if insertErr := s.employees.InsertMany(ctx, employees); insertErr != nil {
		return false, insertErr
	}

	s.log.Info("Seeded demo page", "page_id", pageID)
	return true, nil
}

// capitalize upper-cases the first rune of a key for display use.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + string(runes[1:])
}
