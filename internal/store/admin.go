package store

import (
	"context"

	"gorm.io/gorm"

	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/models"
)

// Whole-table reads for the admin database view.

func (s *Store) AllUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.db.WithContext(ctx).Order("id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Store) AllJobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.db.WithContext(ctx).Order("id").Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

func (s *Store) AllApplications(ctx context.Context) ([]models.Application, error) {
	var apps []models.Application
	if err := s.db.WithContext(ctx).Order("id").Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// DeleteUser removes a non-admin account together with its jobs, the
// applications against those jobs, and the user's own applications, all in one
// transaction. Returns the CV filenames of every removed application so the
// caller can clean up uploads.
func (s *Store) DeleteUser(ctx context.Context, userID uint) ([]string, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.IsAdmin {
		return nil, ErrAdminUser
	}

	var cvFiles []string
	collect := func(apps []models.Application) {
		for _, a := range apps {
			if a.CVFile != "" {
				cvFiles = append(cvFiles, a.CVFile)
			}
		}
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var jobs []models.Job
		if err := tx.Where("employer_id = ?", userID).Find(&jobs).Error; err != nil {
			return err
		}
		for _, job := range jobs {
			var apps []models.Application
			if err := tx.Where("job_id = ?", job.ID).Find(&apps).Error; err != nil {
				return err
			}
			collect(apps)
			if err := tx.Where("job_id = ?", job.ID).Delete(&models.Application{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("employer_id = ?", userID).Delete(&models.Job{}).Error; err != nil {
			return err
		}

		var own []models.Application
		if err := tx.Where("job_seeker_id = ?", userID).Find(&own).Error; err != nil {
			return err
		}
		collect(own)
		if err := tx.Where("job_seeker_id = ?", userID).Delete(&models.Application{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.User{}, userID).Error
	})
	if err != nil {
		return nil, err
	}
	return cvFiles, nil
}
