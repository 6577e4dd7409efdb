package testutils

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/jonesrussell/pageinsights/internal/scraper"
)

// MockFetcher is a testify mock for scraper.Fetcher.
type MockFetcher struct {
	mock.Mock
}

// FetchAll implements scraper.Fetcher.
func (m *MockFetcher) FetchAll(ctx context.Context, pageID string) (*scraper.FetchResult, error) {
	args := m.Called(ctx, pageID)
	if result := args.Get(0); result != nil {
		return result.(*scraper.FetchResult), args.Error(1)
	}
	return nil, args.Error(1)
}
