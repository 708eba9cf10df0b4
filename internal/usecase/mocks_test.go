package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/xavierca1/marketmind/internal/entity"
	"github.com/xavierca1/marketmind/internal/infra/integration/huggingface"
	"github.com/xavierca1/marketmind/internal/infra/memory"
)

type MockTextProvider struct {
	mock.Mock
	name string
}

func newMockProvider(name string) *MockTextProvider {
	return &MockTextProvider{name: name}
}

func (m *MockTextProvider) Name() string {
	return m.name
}

func (m *MockTextProvider) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

type MockTextGenerator struct {
	mock.Mock
}

func (m *MockTextGenerator) Generate(ctx context.Context, prompt string) string {
	args := m.Called(ctx, prompt)
	return args.String(0)
}

type MockSentimentClassifier struct {
	mock.Mock
}

func (m *MockSentimentClassifier) Classify(ctx context.Context, text string) ([]huggingface.LabelScore, error) {
	args := m.Called(ctx, text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]huggingface.LabelScore), args.Error(1)
}

type MockUsageRepository struct {
	mock.Mock
}

func (m *MockUsageRepository) Append(ctx context.Context, ev entity.UsageEvent) error {
	args := m.Called(ctx, ev)
	return args.Error(0)
}

func (m *MockUsageRepository) List(ctx context.Context) ([]entity.UsageEvent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.UsageEvent), args.Error(1)
}

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Append(ctx context.Context, leads ...*entity.Lead) error {
	args := m.Called(ctx, leads)
	return args.Error(0)
}

func (m *MockLeadRepository) List(ctx context.Context) ([]entity.Lead, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Lead), args.Error(1)
}

func newMemoryStores() Stores {
	return Stores{
		Campaigns: memory.NewGenerationRepository(),
		Pitches:   memory.NewGenerationRepository(),
		Leads:     memory.NewLeadRepository(),
		Usage:     memory.NewUsageRepository(),
		Users:     memory.NewUserRepository(entity.SeedUsers()),
	}
}
