package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/models"
)

// CreateApplication submits an application for jobID by jobSeekerID. Both
// references must resolve, the job's deadline must not have passed, and a
// second application for the same (job, job_seeker) pair is rejected. Status
// always starts at Pending.
func (s *Store) CreateApplication(ctx context.Context, name, email string, jobID, jobSeekerID uint, coverLetter, cvFile, cvText string) (*models.Application, error) {
	var app *models.Application
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var job models.Job
		if err := tx.First(&job, jobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrJobNotFound
			}
			return err
		}
		var seeker models.User
		if err := tx.First(&seeker, jobSeekerID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if job.Deadline.Before(startOfToday()) {
			return ErrDeadlinePassed
		}

		var count int64
		if err := tx.Model(&models.Application{}).
			Where("job_id = ? AND job_seeker_id = ?", jobID, jobSeekerID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyApplied
		}

		app = &models.Application{
			Name:        name,
			Email:       email,
			JobID:       jobID,
			JobSeekerID: jobSeekerID,
			Status:      models.StatusPending,
			CVFile:      cvFile,
			CVText:      cvText,
			CoverLetter: coverLetter,
			AppliedDate: time.Now(),
		}
		return tx.Create(app).Error
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

// UpdateApplicationStatus moves an application to newStatus. Only the employer
// who posted the job (or an admin) may do so, and newStatus must be one of the
// defined statuses.
func (s *Store) UpdateApplicationStatus(ctx context.Context, applicationID, actorID uint, newStatus string) (*models.Application, error) {
	if !models.ValidStatus(newStatus) {
		return nil, ErrInvalidStatus
	}

	app, err := s.getApplication(ctx, applicationID)
	if err != nil {
		return nil, err
	}
	job, err := s.GetJobByID(ctx, app.JobID)
	if err != nil {
		return nil, err
	}
	if err := s.requireJobOwner(ctx, job, actorID); err != nil {
		return nil, err
	}

	app.Status = newStatus
	if err := s.db.WithContext(ctx).Save(app).Error; err != nil {
		return nil, err
	}
	return app, nil
}

// JobApplications lists the applications against a job, visible only to the
// posting employer or an admin.
func (s *Store) JobApplications(ctx context.Context, jobID, actorID uint) ([]models.Application, error) {
	job, err := s.GetJobByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if err := s.requireJobOwner(ctx, job, actorID); err != nil {
		return nil, err
	}

	var apps []models.Application
	err = s.db.WithContext(ctx).
		Where("job_id = ?", jobID).
		Order("applied_date DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *Store) UserApplications(ctx context.Context, userID uint) ([]models.Application, error) {
	var apps []models.Application
	err := s.db.WithContext(ctx).
		Where("job_seeker_id = ?", userID).
		Order("applied_date DESC").
		Find(&apps).Error
	if err != nil {
		return nil, err
	}
	return apps, nil
}

// ApplicationByCVFile resolves a stored CV filename back to its application,
// for download permission checks.
func (s *Store) ApplicationByCVFile(ctx context.Context, filename string) (*models.Application, error) {
	var app models.Application
	err := s.db.WithContext(ctx).Where("cv_file = ?", filename).First(&app).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// DeleteApplication removes one application and returns its CV filename, if
// any, for cleanup. Admin surface.
func (s *Store) DeleteApplication(ctx context.Context, applicationID uint) (string, error) {
	app, err := s.getApplication(ctx, applicationID)
	if err != nil {
		return "", err
	}
	if err := s.db.WithContext(ctx).Delete(&models.Application{}, applicationID).Error; err != nil {
		return "", err
	}
	return app.CVFile, nil
}

func (s *Store) getApplication(ctx context.Context, id uint) (*models.Application, error) {
	var app models.Application
	err := s.db.WithContext(ctx).First(&app, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrApplicationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}
