package mockservice

import (
	"context"

	"complaint-trends-service/internal/model"
	"complaint-trends-service/internal/service"

	"github.com/stretchr/testify/mock"
)

type Service struct {
	mock.Mock
}

var _ service.TrendService = &Service{}

func (m *Service) GetTrendingAlerts(ctx context.Context, query model.TrendQuery) ([]model.Alert, error) {
	args := m.Called(ctx, query)
	if v := args.Get(0); v != nil {
		return v.([]model.Alert), args.Error(1)
	}
	return nil, args.Error(1)
}
