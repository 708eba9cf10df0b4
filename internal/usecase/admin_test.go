package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xavierca1/marketmind/internal/entity"
)

func fixedNow() time.Time {
	return time.Date(2026, 10, 15, 18, 30, 0, 0, time.Local)
}

func TestAdminMetricsEmptyStores(t *testing.T) {
	uc := NewAdminUseCase(newMemoryStores())

	metrics, err := uc.Metrics(context.Background())

	require.NoError(t, err)
	assert.Equal(t, &AdminMetricsOutput{ActiveUsers: 4}, metrics)
}

func TestAdminMetrics(t *testing.T) {
	ctx := context.Background()
	stores := newMemoryStores()
	seedStores(t, stores, 1, 2, []LeadInput{{Name: "hot", Engagement: 9, Budget: 9000}})
	require.NoError(t, stores.Usage.Append(ctx, entity.NewUsageEvent(entity.UsageCampaign, fixedNow())))
	require.NoError(t, stores.Usage.Append(ctx, entity.NewUsageEvent(entity.UsagePitch, fixedNow())))

	metrics, err := NewAdminUseCase(stores).Metrics(ctx)

	require.NoError(t, err)
	assert.Equal(t, &AdminMetricsOutput{
		TotalAPICalls:    2,
		CampaignsCreated: 1,
		PitchesCreated:   2,
		LeadsScored:      1,
		ActiveUsers:      4,
		EstimatedRevenue: 2000 + 3000 + 10000,
	}, metrics)
}

func TestAdminDailyAPICalls(t *testing.T) {
	ctx := context.Background()
	stores := newMemoryStores()
	now := fixedNow()

	for _, at := range []time.Time{
		now,
		now,
		now.AddDate(0, 0, -1),
		now.AddDate(0, 0, -6),
		now.AddDate(0, 0, -7), // outside the window
	} {
		require.NoError(t, stores.Usage.Append(ctx, entity.NewUsageEvent(entity.UsageCampaign, at)))
	}

	uc := NewAdminUseCase(stores)
	uc.Now = fixedNow

	points, err := uc.DailyAPICalls(ctx)

	require.NoError(t, err)
	assert.Equal(t, []DailyCallsPoint{
		{Date: "2026-10-09", Calls: 1},
		{Date: "2026-10-10", Calls: 0},
		{Date: "2026-10-11", Calls: 0},
		{Date: "2026-10-12", Calls: 0},
		{Date: "2026-10-13", Calls: 0},
		{Date: "2026-10-14", Calls: 1},
		{Date: "2026-10-15", Calls: 2},
	}, points)
}

func TestAdminDailyAPICallsEmpty(t *testing.T) {
	uc := NewAdminUseCase(newMemoryStores())
	uc.Now = fixedNow

	points, err := uc.DailyAPICalls(context.Background())

	require.NoError(t, err)
	require.Len(t, points, 7)
	for _, p := range points {
		assert.Zero(t, p.Calls)
	}
}

func TestAdminToggleUser(t *testing.T) {
	ctx := context.Background()
	uc := NewAdminUseCase(newMemoryStores())

	user, err := uc.ToggleUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, &entity.User{ID: 1, Name: "Alex Johnson", Role: "Admin", Status: entity.UserInactive}, user)

	metrics, _ := uc.Metrics(ctx)
	assert.Equal(t, 3, metrics.ActiveUsers)
}

func TestAdminToggleUnknownUser(t *testing.T) {
	ctx := context.Background()
	uc := NewAdminUseCase(newMemoryStores())
	before, _ := uc.Users(ctx)

	user, err := uc.ToggleUser(ctx, 42)

	assert.Nil(t, user)
	var de *DomainError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, "USER_NOT_FOUND", de.Code)
	assert.Equal(t, "User not found", de.Message)

	after, _ := uc.Users(ctx)
	assert.Equal(t, before, after)
}

func TestAdminRevenue(t *testing.T) {
	stores := newMemoryStores()
	seedStores(t, stores, 1, 1, nil)

	points, err := NewAdminUseCase(stores).Revenue(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []RevenuePoint{
		{Month: "Jan", Revenue: 583.33},
		{Month: "Feb", Revenue: 1166.67},
		{Month: "Mar", Revenue: 1750},
		{Month: "Apr", Revenue: 2333.33},
		{Month: "May", Revenue: 2916.67},
		{Month: "Jun", Revenue: 3500},
	}, points)
}

func TestAdminRevenueEmpty(t *testing.T) {
	points, err := NewAdminUseCase(newMemoryStores()).Revenue(context.Background())

	require.NoError(t, err)
	require.Len(t, points, 6)
	for _, p := range points {
		assert.Zero(t, p.Revenue)
	}
}
