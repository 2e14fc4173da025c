package domain

import catalogdomain "github.com/AlibekovAA/course-advisor/backend/internal/catalog/domain"

type Recommendation struct {
	catalogdomain.Course
	Reason string `json:"reason"`
}
