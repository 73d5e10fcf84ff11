package analytics

import (
	"context"
	"fmt"

	"github.com/securewithdom/Dom-Creator-Dashboard/internal/platform"
)

// Provider fetches account metrics for one platform. The real TikTok,
// YouTube, Instagram, Facebook, LinkedIn and Threads API clients slot in
// here; MockProvider stands in until those exist.
type Provider interface {
	Metrics(ctx context.Context, p platform.Platform) (Metrics, error)
}

// MockProvider returns fixed numbers for UI development and testing.
type MockProvider struct{}

var mockFollowers = map[platform.Platform]int{
	platform.TikTok:    15000,
	platform.YouTube:   8500,
	platform.Instagram: 12000,
	platform.Facebook:  5000,
	platform.LinkedIn:  3200,
	platform.Threads:   2100,
}

var mockViews7d = map[platform.Platform]int{
	platform.TikTok:    125000,
	platform.YouTube:   45000,
	platform.Instagram: 38000,
	platform.Facebook:  12000,
	platform.LinkedIn:  5600,
	platform.Threads:   8900,
}

var mockEngagement = []int{450, 380, 290}

func (MockProvider) Metrics(_ context.Context, p platform.Platform) (Metrics, error) {
	m := Metrics{
		Followers: mockFollowers[p],
		Views7d:   mockViews7d[p],
	}
	for i, engagement := range mockEngagement {
		m.TopPosts = append(m.TopPosts, TopPost{
			Title:      fmt.Sprintf("Top post #%d", i+1),
			Engagement: engagement,
			Date:       "2024-01-20",
		})
	}
	return m, nil
}
