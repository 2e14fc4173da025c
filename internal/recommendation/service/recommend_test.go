package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalogdomain "github.com/AlibekovAA/course-advisor/backend/internal/catalog/domain"
	commonerrors "github.com/AlibekovAA/course-advisor/backend/internal/common/errors"
	"github.com/AlibekovAA/course-advisor/backend/internal/common/logger"
	recdomain "github.com/AlibekovAA/course-advisor/backend/internal/recommendation/domain"
	"github.com/AlibekovAA/course-advisor/backend/internal/recommendation/service"
	userdomain "github.com/AlibekovAA/course-advisor/backend/internal/user/domain"
)

var sampleCatalog = []catalogdomain.Course{
	{ID: 1, Title: "Intro Go", Category: "Systems", Difficulty: "Beginner"},
	{ID: 2, Title: "Intro Rust", Category: "Systems", Difficulty: "Beginner"},
	{ID: 3, Title: "Oil Painting", Category: "Art", Difficulty: "Intermediate"},
}

func enrolledIn(ids ...int64) userdomain.User {
	return userdomain.User{ID: 1, Username: "alice", EnrolledCourseIDs: ids}
}

func TestRecommend_SameCategory(t *testing.T) {
	recs := service.Recommend(enrolledIn(1), sampleCatalog)

	require.Len(t, recs, 1)
	assert.Equal(t, recdomain.Recommendation{
		Course: sampleCatalog[1],
		Reason: "Because you are taking 'Intro Go'",
	}, recs[0])
}

func TestRecommend_CategoryExhausted(t *testing.T) {
	recs := service.Recommend(enrolledIn(1, 2), sampleCatalog)

	assert.NotNil(t, recs)
	assert.Empty(t, recs)
}

func TestRecommend_NoEnrollment(t *testing.T) {
	recs := service.Recommend(enrolledIn(), sampleCatalog)

	assert.NotNil(t, recs)
	assert.Empty(t, recs)

	data, err := json.Marshal(recs)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(data))
}

func TestRecommend_IsolatedCategory(t *testing.T) {
	recs := service.Recommend(enrolledIn(3), sampleCatalog)
	assert.Empty(t, recs)
}

func TestRecommend_DanglingEnrollmentIgnored(t *testing.T) {
	recs := service.Recommend(enrolledIn(404, 1), sampleCatalog)

	require.Len(t, recs, 1)
	assert.Equal(t, int64(2), recs[0].ID)

	assert.Empty(t, service.Recommend(enrolledIn(404), sampleCatalog))
}

func TestRecommend_TruncatesToFiveInCatalogOrder(t *testing.T) {
	catalog := []catalogdomain.Course{{ID: 100, Title: "Base", Category: "Data"}}
	for i := int64(1); i <= 8; i++ {
		catalog = append(catalog, catalogdomain.Course{ID: i, Title: fmt.Sprintf("Data %d", i), Category: "Data"})
	}

	recs := service.Recommend(enrolledIn(100), catalog)

	require.Len(t, recs, 5)
	for i, r := range recs {
		assert.Equal(t, int64(i+1), r.ID)
	}
}

func TestRecommend_ReasonUsesFirstEnrolledInCatalogOrder(t *testing.T) {
	catalog := []catalogdomain.Course{
		{ID: 10, Title: "Algorithms", Category: "CS"},
		{ID: 11, Title: "Compilers", Category: "CS"},
		{ID: 12, Title: "Databases", Category: "CS"},
		{ID: 13, Title: "Sculpture", Category: "Art"},
		{ID: 14, Title: "Drawing", Category: "Art"},
	}

	// enrollment order must not matter, only catalog order
	recs := service.Recommend(enrolledIn(13, 11, 10), catalog)

	require.Len(t, recs, 2)
	assert.Equal(t, int64(12), recs[0].ID)
	assert.Equal(t, "Because you are taking 'Algorithms'", recs[0].Reason)
	assert.Equal(t, int64(14), recs[1].ID)
	assert.Equal(t, "Because you are taking 'Sculpture'", recs[1].Reason)
}

func TestRecommend_Idempotent(t *testing.T) {
	user := enrolledIn(1, 3)

	first, err := json.Marshal(service.Recommend(user, sampleCatalog))
	require.NoError(t, err)
	second, err := json.Marshal(service.Recommend(user, sampleCatalog))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

type mockCourseLister struct {
	listCoursesFunc func(ctx context.Context) ([]catalogdomain.Course, error)
}

func (m *mockCourseLister) ListCourses(ctx context.Context) ([]catalogdomain.Course, error) {
	return m.listCoursesFunc(ctx)
}

func TestService_ForUser(t *testing.T) {
	svc := service.NewService(&mockCourseLister{
		listCoursesFunc: func(context.Context) ([]catalogdomain.Course, error) { return sampleCatalog, nil },
	}, logger.Discard())

	recs, err := svc.ForUser(context.Background(), enrolledIn(1))
	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Intro Rust", recs[0].Title)
}

func TestService_ForUser_StoreError(t *testing.T) {
	boom := errors.New("read failed")
	svc := service.NewService(&mockCourseLister{
		listCoursesFunc: func(context.Context) ([]catalogdomain.Course, error) { return nil, boom },
	}, logger.Discard())

	_, err := svc.ForUser(context.Background(), enrolledIn(1))
	assert.ErrorIs(t, err, commonerrors.ErrStoreUnavailable)
	assert.ErrorIs(t, err, boom)
}
