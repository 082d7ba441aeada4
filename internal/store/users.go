package store

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/MMoizSiddiqui/JOB-PORTAL-fullstack/internal/models"
)

// CreateUser registers a new account. The password is bcrypt-hashed before it
// touches the database; plaintext is never stored.
func (s *Store) CreateUser(ctx context.Context, userType, name, email, password string) (*models.User, error) {
	if !models.ValidUserType(userType) {
		return nil, ErrInvalidUserType
	}

	var existing models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, ErrDuplicateEmail
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		UserType: userType,
		Name:     name,
		Email:    email,
		Password: string(hash),
		IsAdmin:  userType == models.UserTypeAdmin,
	}
	if err := s.db.WithContext(ctx).Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies email/password and returns the account on success.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *Store) Authenticate(ctx context.Context, email, password string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return &user, nil
}

func (s *Store) GetUserByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// EnsureAdmin seeds the admin account if no user exists under email yet.
func (s *Store) EnsureAdmin(ctx context.Context, name, email, password string) (*models.User, error) {
	existing, err := s.GetUserByEmail(ctx, email)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, ErrUserNotFound) {
		return nil, err
	}
	return s.CreateUser(ctx, models.UserTypeAdmin, name, email, password)
}
