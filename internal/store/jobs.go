package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/models"
)

// Deadlines are calendar dates: a job is open through the end of its deadline
// day. startOfToday is the cutoff both creation checks compare against.
func startOfToday() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// CreateJob posts a job on behalf of employerID. The referenced account must
// exist and hold the employer role, and the deadline must not be in the past.
func (s *Store) CreateJob(ctx context.Context, title, company, description, location string, deadline time.Time, employerID uint) (*models.Job, error) {
	employer, err := s.GetUserByID(ctx, employerID)
	if errors.Is(err, ErrUserNotFound) {
		return nil, ErrInvalidEmployer
	}
	if err != nil {
		return nil, err
	}
	if employer.UserType != models.UserTypeEmployer {
		return nil, ErrInvalidEmployer
	}
	if deadline.Before(startOfToday()) {
		return nil, ErrInvalidDeadline
	}

	job := &models.Job{
		Title:       title,
		Company:     company,
		Description: description,
		Location:    location,
		Deadline:    deadline,
		EmployerID:  employerID,
	}
	if err := s.db.WithContext(ctx).Create(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

func (s *Store) GetJobByID(ctx context.Context, id uint) (*models.Job, error) {
	var job models.Job
	err := s.db.WithContext(ctx).First(&job, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrJobNotFound
	}
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// ListJobs returns all jobs newest-first. A non-empty search term matches
// title, company, description or location, case-insensitively.
func (s *Store) ListJobs(ctx context.Context, search string) ([]models.Job, error) {
	var jobs []models.Job
	q := s.db.WithContext(ctx).Order("created_at DESC")
	if search != "" {
		like := "%" + search + "%"
		q = q.Where(
			"LOWER(title) LIKE LOWER(?) OR LOWER(company) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR LOWER(location) LIKE LOWER(?)",
			like, like, like, like,
		)
	}
	if err := q.Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *Store) EmployerJobs(ctx context.Context, employerID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.WithContext(ctx).
		Where("employer_id = ?", employerID).
		Order("created_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}
	return jobs, nil
}

// UpdateJob edits a posting. Only the owning employer or an admin may do so.
func (s *Store) UpdateJob(ctx context.Context, jobID, actorID uint, title, company, description, location string, deadline time.Time) (*models.Job, error) {
	job, err := s.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := s.requireJobOwner(ctx, job, actorID); err != nil {
		return nil, err
	}
	if deadline.IsZero() {
		return nil, ErrInvalidDeadline
	}

	job.Title = title
	job.Company = company
	job.Description = description
	job.Location = location
	job.Deadline = deadline
	if err := s.db.WithContext(ctx).Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// DeleteJob removes a posting and all applications against it in one
// transaction. It returns the CV filenames of the removed applications so the
// caller can clean up the upload directory.
func (s *Store) DeleteJob(ctx context.Context, jobID, actorID uint) ([]string, error) {
	job, err := s.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := s.requireJobOwner(ctx, job, actorID); err != nil {
		return nil, err
	}

	var cvFiles []string
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var apps []models.Application
		if err := tx.Where("job_id = ?", jobID).Find(&apps).Error; err != nil {
			return err
		}
		for _, a := range apps {
			if a.CVFile != "" {
				cvFiles = append(cvFiles, a.CVFile)
			}
		}
		if err := tx.Where("job_id = ?", jobID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Job{}, jobID).Error
	})
	if err != nil {
		return nil, err
	}
	return cvFiles, nil
}

// requireJobOwner allows the posting employer and admins through.
func (s *Store) requireJobOwner(ctx context.Context, job *models.Job, actorID uint) error {
	actor, err := s.GetUserByID(ctx, actorID)
	if err != nil {
		return err
	}
	if actor.IsAdmin || job.EmployerID == actorID {
		return nil
	}
	return ErrNotJobOwner
}
