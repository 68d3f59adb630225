package mockrepository

import (
	"context"
	"time"

	"complaint-trends-service/internal/model"
	"complaint-trends-service/internal/repository"

	"github.com/stretchr/testify/mock"
)

type Repository struct {
	mock.Mock
}

// Interface compliance check
var _ repository.ComplaintRepository = &Repository{}

func (m *Repository) FetchCategoryComplaints(ctx context.Context, category model.Category, since *time.Time) ([]model.ComplaintRecord, error) {
	args := m.Called(ctx, category, since)
	if v := args.Get(0); v != nil {
		return v.([]model.ComplaintRecord), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Repository) CreateNotifications(ctx context.Context, notifications []model.Notification) error {
	args := m.Called(ctx, notifications)
	return args.Error(0)
}
