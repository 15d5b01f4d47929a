package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/griffin1995/gift-sync/internal/entities"
)

func TestDashboardCountsAreCapped(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{}
	for i := 0; i < dashboardQueryCap+500; i++ {
		categoryRepo.categories = append(categoryRepo.categories, &entities.Category{
			ID:       fmt.Sprintf("cat-%d", i),
			IsActive: i%2 == 0,
		})
	}

	productRepo := &fakeProductRepo{}
	for i := 0; i < 10; i++ {
		productRepo.products = append(productRepo.products, &entities.Product{
			ID:       fmt.Sprintf("prod-%d", i),
			IsActive: i != 0, // one inactive product is excluded
		})
	}

	svc := NewAnalyticsService(categoryRepo, productRepo, newFakeSwipeRepo(), zap.NewNop())

	dashboard, err := svc.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, dashboardQueryCap, dashboard.TotalCategories)
	assert.Equal(t, 9, dashboard.TotalProducts)
	assert.Equal(t, 0, dashboard.TotalSessions)
	assert.Equal(t, "operational", dashboard.Status)
}

func TestTrackAcknowledgesAnyEvent(t *testing.T) {
	svc := NewAnalyticsService(&fakeCategoryRepo{}, &fakeProductRepo{}, newFakeSwipeRepo(), zap.NewNop())

	resp := svc.Track(context.Background(), map[string]interface{}{"event_name": "swipe_completed", "extra": 1})
	assert.Equal(t, "tracked", resp.Status)
	assert.Equal(t, "swipe_completed", resp.Event)

	resp = svc.Track(context.Background(), map[string]interface{}{"foo": "bar"})
	assert.Equal(t, "tracked", resp.Status)
	assert.Equal(t, "unknown", resp.Event)
}
