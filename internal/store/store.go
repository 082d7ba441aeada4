package store

import (
	"errors"

	"gorm.io/gorm"
)

// Validation and constraint failures surfaced to the request layer. All are
// recoverable; handlers map them to HTTP status codes.
var (
	ErrDuplicateEmail      = errors.New("email already registered")
	ErrInvalidUserType     = errors.New("invalid user type")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrInvalidEmployer     = errors.New("employer_id does not reference an employer account")
	ErrInvalidDeadline     = errors.New("deadline is in the past")
	ErrUserNotFound        = errors.New("user not found")
	ErrJobNotFound         = errors.New("job not found")
	ErrApplicationNotFound = errors.New("application not found")
	ErrReviewNotFound      = errors.New("review not found")
	ErrDeadlinePassed      = errors.New("job deadline has passed")
	ErrAlreadyApplied      = errors.New("already applied for this job")
	ErrInvalidStatus       = errors.New("invalid application status")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")
	ErrNotJobOwner         = errors.New("not the owner of this job")
	ErrAdminUser           = errors.New("admin accounts cannot be deleted")
)

// Store is the data-access layer. Every lifecycle invariant of the schema is
// enforced here, regardless of which handler calls in.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}
