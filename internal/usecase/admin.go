package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/xavierca1/marketmind/internal/entity"
)

// trailingDays is the window of the daily API call chart, today included.
const trailingDays = 7

type AdminUseCase struct {
	Stores Stores
	Now    func() time.Time
}

func NewAdminUseCase(stores Stores) *AdminUseCase {
	return &AdminUseCase{
		Stores: stores,
		Now:    time.Now,
	}
}

func (uc *AdminUseCase) Metrics(ctx context.Context) (*AdminMetricsOutput, error) {
	t, err := readTotals(ctx, uc.Stores)
	if err != nil {
		return nil, err
	}

	events, err := uc.Stores.Usage.List(ctx)
	if err != nil {
		return nil, storeError("list usage", err)
	}

	users, err := uc.Stores.Users.List(ctx)
	if err != nil {
		return nil, storeError("list users", err)
	}

	active := 0
	for _, u := range users {
		if u.IsActive() {
			active++
		}
	}

	return &AdminMetricsOutput{
		TotalAPICalls:    len(events),
		CampaignsCreated: t.campaigns,
		PitchesCreated:   t.pitches,
		LeadsScored:      len(t.leads),
		ActiveUsers:      active,
		EstimatedRevenue: t.revenue(),
	}, nil
}

// DailyAPICalls counts usage events per day for the trailing week, oldest first.
func (uc *AdminUseCase) DailyAPICalls(ctx context.Context) ([]DailyCallsPoint, error) {
	events, err := uc.Stores.Usage.List(ctx)
	if err != nil {
		return nil, storeError("list usage", err)
	}

	perDay := make(map[string]int, len(events))
	for _, ev := range events {
		perDay[ev.Date]++
	}

	today := uc.Now()
	points := make([]DailyCallsPoint, 0, trailingDays)
	for i := trailingDays - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i).Format(entity.DateLayout)
		points = append(points, DailyCallsPoint{Date: day, Calls: perDay[day]})
	}
	return points, nil
}

func (uc *AdminUseCase) Users(ctx context.Context) ([]entity.User, error) {
	users, err := uc.Stores.Users.List(ctx)
	if err != nil {
		return nil, storeError("list users", err)
	}
	return users, nil
}

func (uc *AdminUseCase) ToggleUser(ctx context.Context, id int) (*entity.User, error) {
	user, err := uc.Stores.Users.Toggle(ctx, id)
	if errors.Is(err, entity.ErrUserNotFound) {
		return nil, &DomainError{Code: "USER_NOT_FOUND", Message: "User not found"}
	}
	if err != nil {
		return nil, storeError("toggle user", err)
	}
	return user, nil
}

// Revenue spreads the current revenue estimate linearly over six months.
func (uc *AdminUseCase) Revenue(ctx context.Context) ([]RevenuePoint, error) {
	t, err := readTotals(ctx, uc.Stores)
	if err != nil {
		return nil, err
	}

	total := float64(t.revenue())
	points := make([]RevenuePoint, 0, len(reportMonths))
	for i, month := range reportMonths {
		points = append(points, RevenuePoint{
			Month:   month,
			Revenue: round2(total * float64(i+1) / float64(len(reportMonths))),
		})
	}
	return points, nil
}
