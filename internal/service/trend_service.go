package service

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"complaint-trends-service/internal/logger"
	"complaint-trends-service/internal/model"
	"complaint-trends-service/internal/repository"
)

// ValidationError represents user input issues.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// roleCategories is the fixed role-to-category authorization map. Master
// Admin is handled separately and resolves to every category.
var roleCategories = map[string]model.Category{
	"Facility Admin":             model.CategoryFacility,
	"Academic Admin":             model.CategoryAcademic,
	"Technical Admin":            model.CategoryTechnical,
	"Student Disciplinary Admin": model.CategoryDisciplinary,
	"Administrative Admin":       model.CategoryAdministrative,
	"General Admin":              model.CategoryOther,
}

const roleMasterAdmin = "Master Admin"

// resolveCategories maps an admin role to the categories it may see trends
// for. Unrecognized roles resolve to nothing; that is not an error, the
// caller just gets zero alerts.
func resolveCategories(role string) []model.Category {
	if role == roleMasterAdmin {
		return model.Categories
	}
	if cat, ok := roleCategories[role]; ok {
		return []model.Category{cat}
	}
	return nil
}

// TrendService computes trending complaint alerts for administrator roles.
type TrendService interface {
	GetTrendingAlerts(ctx context.Context, query model.TrendQuery) ([]model.Alert, error)
}

type trendService struct {
	repo   repository.ComplaintRepository
	worker NotificationWorker
	log    *logger.Logger
	now    func() time.Time

	// facilityIgnoreWindow keeps the Facility fetch unbounded by the
	// lookback window, matching the original dashboard.
	facilityIgnoreWindow bool
	notifyEnabled        bool
}

// NewTrendService constructs a trendService.
func NewTrendService(repo repository.ComplaintRepository, worker NotificationWorker, log *logger.Logger, facilityIgnoreWindow, notifyEnabled bool) TrendService {
	return &trendService{
		repo:                 repo,
		worker:               worker,
		log:                  log,
		now:                  time.Now,
		facilityIgnoreWindow: facilityIgnoreWindow,
		notifyEnabled:        notifyEnabled,
	}
}

// GetTrendingAlerts aggregates complaints for every category the role is
// authorized for, keeps buckets at or above the threshold, and returns
// enriched alerts sorted by count descending. A failing category contributes
// zero alerts but does not abort the others.
func (s *trendService) GetTrendingAlerts(ctx context.Context, query model.TrendQuery) ([]model.Alert, error) {
	if query.Role == "" {
		return nil, &ValidationError{Message: "role is required"}
	}
	if query.Days <= 0 {
		return nil, &ValidationError{Message: "days must be positive"}
	}
	if query.Threshold < 1 {
		return nil, &ValidationError{Message: "threshold must be positive"}
	}

	log := s.log.WithRun().WithFields(logrus.Fields{
		"role":      query.Role,
		"days":      query.Days,
		"threshold": query.Threshold,
	})

	alerts := []model.Alert{}

	categories := resolveCategories(query.Role)
	if len(categories) == 0 {
		log.Debug("role has no trend categories")
		return alerts, nil
	}

	start := s.now().AddDate(0, 0, -query.Days)

	for _, category := range categories {
		spec, ok := categorySpecs[category]
		if !ok {
			// Other has no detail table and no trend extractor.
			continue
		}

		since := &start
		if category == model.CategoryFacility && s.facilityIgnoreWindow {
			since = nil
		}

		records, err := s.repo.FetchCategoryComplaints(ctx, category, since)
		if err != nil {
			log.WithField("category", category).WithError(err).Error("fetch category complaints failed")
			continue
		}

		for _, bucket := range buildBuckets(category, spec, records, query.Threshold, log) {
			alerts = append(alerts, buildAlert(bucket))
		}
	}

	sort.SliceStable(alerts, func(i, j int) bool {
		return alerts[i].Count > alerts[j].Count
	})

	if s.notifyEnabled && s.worker != nil && query.AdminID != "" {
		for _, alert := range alerts {
			s.worker.Enqueue(model.Notification{
				UserID:  query.AdminID,
				Type:    "Trend Alert",
				Message: alert.UrgencyMessage,
			})
		}
	}

	log.WithField("alerts", len(alerts)).Info("trend aggregation complete")

	return alerts, nil
}
