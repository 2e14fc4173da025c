package service

import (
	"fmt"

	catalogdomain "github.com/AlibekovAA/course-advisor/backend/internal/catalog/domain"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/constants"
	recdomain "github.com/AlibekovAA/course-advisor/backend/internal/recommendation/domain"
	userdomain "github.com/AlibekovAA/course-advisor/backend/internal/user/domain"
)

// Recommend suggests up to MaxRecommendations catalog courses the user is
// not enrolled in that share a category with a course they are enrolled in.
// Results follow catalog order. Enrolled ids missing from the catalog are
// ignored.
func Recommend(user userdomain.User, catalog []catalogdomain.Course) []recdomain.Recommendation {
	enrolled := make(map[int64]struct{}, len(user.EnrolledCourseIDs))
	for _, id := range user.EnrolledCourseIDs {
		enrolled[id] = struct{}{}
	}

	// category -> title of the first enrolled course in catalog order
	because := make(map[string]string)
	for _, c := range catalog {
		if _, ok := enrolled[c.ID]; !ok {
			continue
		}
		if _, seen := because[c.Category]; !seen {
			because[c.Category] = c.Title
		}
	}

	recs := []recdomain.Recommendation{}
	for _, c := range catalog {
		if len(recs) == constants.MaxRecommendations {
			break
		}
		if _, ok := enrolled[c.ID]; ok {
			continue
		}
		title, ok := because[c.Category]
		if !ok {
			continue
		}
		recs = append(recs, recdomain.Recommendation{
			Course: c,
			Reason: fmt.Sprintf("Because you are taking '%s'", title),
		})
	}
	return recs
}
