package service

import (
	"context"

	commonerrors "github.com/AlibekovAA/course-advisor/backend/internal/common/errors"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/logger"
	"github.com/AlibekovAA/course-advisor/backend/internal/observability/metrics"
	recdomain "github.com/AlibekovAA/course-advisor/backend/internal/recommendation/domain"
	"github.com/AlibekovAA/course-advisor/backend/internal/store"
	userdomain "github.com/AlibekovAA/course-advisor/backend/internal/user/domain"
)

type Service struct {
	courses store.CourseLister
	log     *logger.Logger
}

func NewService(courses store.CourseLister, log *logger.Logger) *Service {
	return &Service{courses: courses, log: log}
}

// ForUser reads the current catalog and recommends from it for user.
func (s *Service) ForUser(ctx context.Context, user userdomain.User) ([]recdomain.Recommendation, error) {
	catalog, err := s.courses.ListCourses(ctx)
	if err != nil {
		s.log.WithFields(ctx, logger.Fields{
			"user_id": int64(user.ID),
			"action":  "recommendation_catalog_failed",
		}).Errorf("failed to list courses: %v", err)
		return nil, commonerrors.ErrStoreUnavailable.WithCause(err)
	}

	recs := Recommend(user, catalog)

	metrics.RecommendationsServed.Inc()
	metrics.RecommendationListSize.Observe(float64(len(recs)))

	if s.log.ShouldLog(logger.DEBUG) {
		s.log.WithFields(ctx, logger.Fields{
			"user_id":  int64(user.ID),
			"enrolled": len(user.EnrolledCourseIDs),
			"count":    len(recs),
			"action":   "recommendations_served",
		}).Debug("recommendations served")
	}
	return recs, nil
}
