package store

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/models"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}, &models.Review{}))
	return New(db)
}

func seedEmployer(t *testing.T, s *Store) *models.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), models.UserTypeEmployer, "Acme HR", "hr@acme.com", "secret1")
	require.NoError(t, err)
	return u
}

func seedSeeker(t *testing.T, s *Store) *models.User {
	t.Helper()
	u, err := s.CreateUser(context.Background(), models.UserTypeJobSeeker, "Jane", "jane@x.com", "secret1")
	require.NoError(t, err)
	return u
}

func seedJob(t *testing.T, s *Store, employerID uint) *models.Job {
	t.Helper()
	deadline := time.Now().AddDate(0, 1, 0)
	job, err := s.CreateJob(context.Background(), "Engineer", "Acme", "Build things", "Remote", deadline, employerID)
	require.NoError(t, err)
	return job
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CreateUser(ctx, models.UserTypeJobSeeker, "Jane", "jane@x.com", "secret1")
	require.NoError(t, err)

	_, err = s.CreateUser(ctx, models.UserTypeEmployer, "Other", "jane@x.com", "secret2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestCreateUserInvalidType(t *testing.T) {
	s := newTestStore(t)
	_, err := s.CreateUser(context.Background(), "wizard", "Merlin", "m@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidUserType)
}

func TestPasswordNeverStoredPlaintext(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	u, err := s.CreateUser(ctx, models.UserTypeJobSeeker, "Jane", "jane@x.com", "secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", u.Password)
	assert.NotEmpty(t, u.Password)

	got, err := s.Authenticate(ctx, "jane@x.com", "secret1")
	require.NoError(t, err)
	assert.Equal(t, u.ID, got.ID)

	_, err = s.Authenticate(ctx, "jane@x.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Authenticate(ctx, "nobody@x.com", "secret1")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestCreateJobRequiresEmployer(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	seeker := seedSeeker(t, s)
	deadline := time.Now().AddDate(0, 1, 0)

	_, err := s.CreateJob(ctx, "Engineer", "Acme", "desc", "Remote", deadline, seeker.ID)
	assert.ErrorIs(t, err, ErrInvalidEmployer)

	_, err = s.CreateJob(ctx, "Engineer", "Acme", "desc", "Remote", deadline, 999)
	assert.ErrorIs(t, err, ErrInvalidEmployer)
}

func TestCreateJobPastDeadline(t *testing.T) {
	s := newTestStore(t)
	employer := seedEmployer(t, s)

	past := time.Date(2000, 1, 1, 0, 0, 0, 0, time.Local)
	_, err := s.CreateJob(context.Background(), "Engineer", "Acme", "desc", "Remote", past, employer.ID)
	assert.ErrorIs(t, err, ErrInvalidDeadline)
}

func TestCreateJobDeadlineTodayAllowed(t *testing.T) {
	s := newTestStore(t)
	employer := seedEmployer(t, s)

	_, err := s.CreateJob(context.Background(), "Engineer", "Acme", "desc", "Remote", startOfToday(), employer.ID)
	assert.NoError(t, err)
}

func TestCreateApplicationDefaultsPending(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	employer := seedEmployer(t, s)
	seeker := seedSeeker(t, s)
	job := seedJob(t, s, employer.ID)

	app, err := s.CreateApplication(ctx, seeker.Name, seeker.Email, job.ID, seeker.ID, "hire me", "", "")
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, app.Status)
}

func TestCreateApplicationDanglingReferences(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	employer := seedEmployer(t, s)
	seeker := seedSeeker(t, s)
	job := seedJob(t, s, employer.ID)

	_, err := s.CreateApplication(ctx, "Jane", "jane@x.com", 999, seeker.ID, "", "", "")
	assert.ErrorIs(t, err, ErrJobNotFound)

	_, err = s.CreateApplication(ctx, "Jane", "jane@x.com", job.ID, 999, "", "", "")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestCreateApplicationDeadlinePassed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	employer := seedEmployer(t, s)
	seeker := seedSeeker(t, s)
	job := seedJob(t, s, employer.ID)

	// Backdate the deadline underneath the store.
	require.NoError(t, s.db.Model(&models.Job{}).Where("id = ?", job.ID).
		Update("deadline", time.Now().AddDate(0, 0, -2)).Error)

	_, err := s.CreateApplication(ctx, seeker.Name, seeker.Email, job.ID, seeker.ID, "", "", "")
	assert.ErrorIs(t, err, ErrDeadlinePassed)
}

func TestCreateApplicationOncePerJob(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	employer := seedEmployer(t, s)
	seeker := seedSeeker(t, s)
	job := seedJob(t, s, employer.ID)

	_, err := s.CreateApplication(ctx, seeker.Name, seeker.Email, job.ID, seeker.ID, "first", "", "")
	require.NoError(t, err)

	_, err = s.CreateApplication(ctx, seeker.Name, seeker.Email, job.ID, seeker.ID, "second", "", "")
	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestUpdateApplicationStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	employer := seedEmployer(t, s)
	seeker := seedSeeker(t, s)
	job := seedJob(t, s, employer.ID)

	app, err := s.CreateApplication(ctx, seeker.Name, seeker.Email, job.ID, seeker.ID, "", "", "")
	require.NoError(t, err)

	_, err = s.UpdateApplicationStatus(ctx, app.ID, employer.ID, "Shortlisted")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = s.UpdateApplicationStatus(ctx, app.ID, seeker.ID, models.StatusAccepted)
	assert.ErrorIs(t, err, ErrNotJobOwner)

	updated, err := s.UpdateApplicationStatus(ctx, app.ID, employer.ID, models.StatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusAccepted, updated.Status)

	_, err = s.UpdateApplicationStatus(ctx, 999, employer.ID, models.StatusRejected)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestUpdateApplicationStatusAdminAllowed(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	employer := seedEmployer(t, s)
	seeker := seedSeeker(t, s)
	job := seedJob(t, s, employer.ID)
	admin, err := s.EnsureAdmin(ctx, "Admin", "admin@jobportal.com", "admin123")
	require.NoError(t, err)

	app, err := s.CreateApplication(ctx, seeker.Name, seeker.Email, job.ID, seeker.ID, "", "", "")
	require.NoError(t, err)

	updated, err := s.UpdateApplicationStatus(ctx, app.ID, admin.ID, models.StatusReviewed)
	require.NoError(t, err)
	assert.Equal(t, models.StatusReviewed, updated.Status)
}

func TestJobApplicationsOwnerOnly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	employer := seedEmployer(t, s)
	seeker := seedSeeker(t, s)
	job := seedJob(t, s, employer.ID)

	other, err := s.CreateUser(ctx, models.UserTypeEmployer, "Rival", "rival@co.com", "secret1")
	require.NoError(t, err)

	_, err = s.CreateApplication(ctx, seeker.Name, seeker.Email, job.ID, seeker.ID, "", "cv.pdf", "")
	require.NoError(t, err)

	apps, err := s.JobApplications(ctx, job.ID, employer.ID)
	require.NoError(t, err)
	assert.Len(t, apps, 1)

	_, err = s.JobApplications(ctx, job.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotJobOwner)
}

func TestDeleteJobCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	employer := seedEmployer(t, s)
	seeker := seedSeeker(t, s)
	job := seedJob(t, s, employer.ID)

	_, err := s.CreateApplication(ctx, seeker.Name, seeker.Email, job.ID, seeker.ID, "", "cv.pdf", "")
	require.NoError(t, err)

	cvFiles, err := s.DeleteJob(ctx, job.ID, employer.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"cv.pdf"}, cvFiles)

	_, err = s.GetJobByID(ctx, job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)

	apps, err := s.UserApplications(ctx, seeker.ID)
	require.NoError(t, err)
	assert.Empty(t, apps)
}

func TestDeleteJobOwnerOnly(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	employer := seedEmployer(t, s)
	job := seedJob(t, s, employer.ID)

	other, err := s.CreateUser(ctx, models.UserTypeEmployer, "Rival", "rival@co.com", "secret1")
	require.NoError(t, err)

	_, err = s.DeleteJob(ctx, job.ID, other.ID)
	assert.ErrorIs(t, err, ErrNotJobOwner)
}

func TestListJobsSearch(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	employer := seedEmployer(t, s)
	deadline := time.Now().AddDate(0, 1, 0)

	_, err := s.CreateJob(ctx, "Go Engineer", "Acme", "backend services", "Remote", deadline, employer.ID)
	require.NoError(t, err)
	_, err = s.CreateJob(ctx, "Accountant", "Beta Corp", "numbers", "London", deadline, employer.ID)
	require.NoError(t, err)

	jobs, err := s.ListJobs(ctx, "")
	require.NoError(t, err)
	assert.Len(t, jobs, 2)

	jobs, err = s.ListJobs(ctx, "engineer")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Go Engineer", jobs[0].Title)

	jobs, err = s.ListJobs(ctx, "london")
	require.NoError(t, err)
	require.Len(t, jobs, 1)
	assert.Equal(t, "Accountant", jobs[0].Title)
}

func TestCreateReviewRatingBounds(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	for _, rating := range []int{0, -1, 6} {
		_, err := s.CreateReview(ctx, "Visitor", rating, "nope")
		assert.ErrorIs(t, err, ErrInvalidRating, "rating %d", rating)
	}

	review, err := s.CreateReview(ctx, "Visitor", 5, "great site")
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)

	reviews, err := s.ListReviews(ctx)
	require.NoError(t, err)
	assert.Len(t, reviews, 1)
}

func TestDeleteReview(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	review, err := s.CreateReview(ctx, "Visitor", 3, "fine")
	require.NoError(t, err)

	require.NoError(t, s.DeleteReview(ctx, review.ID))
	assert.ErrorIs(t, s.DeleteReview(ctx, review.ID), ErrReviewNotFound)
}

func TestEnsureAdminIdempotent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first, err := s.EnsureAdmin(ctx, "Admin", "admin@jobportal.com", "admin123")
	require.NoError(t, err)
	assert.True(t, first.IsAdmin)

	second, err := s.EnsureAdmin(ctx, "Admin", "admin@jobportal.com", "admin123")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestDeleteUserCascades(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	employer := seedEmployer(t, s)
	seeker := seedSeeker(t, s)
	job := seedJob(t, s, employer.ID)

	_, err := s.CreateApplication(ctx, seeker.Name, seeker.Email, job.ID, seeker.ID, "", "cv.pdf", "")
	require.NoError(t, err)

	cvFiles, err := s.DeleteUser(ctx, employer.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"cv.pdf"}, cvFiles)

	_, err = s.GetUserByID(ctx, employer.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = s.GetJobByID(ctx, job.ID)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestDeleteUserRefusesAdmin(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	admin, err := s.EnsureAdmin(ctx, "Admin", "admin@jobportal.com", "admin123")
	require.NoError(t, err)

	_, err = s.DeleteUser(ctx, admin.ID)
	assert.ErrorIs(t, err, ErrAdminUser)
}
