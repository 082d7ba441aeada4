package models

import "time"

const (
	UserTypeJobSeeker = "job_seeker"
	UserTypeEmployer  = "employer"
	UserTypeAdmin     = "admin"
)

const (
	StatusPending  = "Pending"
	StatusReviewed = "Reviewed"
	StatusAccepted = "Accepted"
	StatusRejected = "Rejected"
)

// ValidUserType reports whether t is one of the known account roles.
func ValidUserType(t string) bool {
	return t == UserTypeJobSeeker || t == UserTypeEmployer || t == UserTypeAdmin
}

// ValidStatus reports whether s is one of the defined application statuses.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusReviewed || s == StatusAccepted || s == StatusRejected
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserType  string    `gorm:"type:varchar(20);not null" json:"user_type"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(120);unique;not null" json:"email"`
	Password  string    `gorm:"type:varchar(200);not null" json:"-"`
	IsAdmin   bool      `gorm:"default:false" json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
}

type Job struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Company     string    `gorm:"type:varchar(100);not null" json:"company"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Location    string    `gorm:"type:varchar(100);not null" json:"location"`
	Deadline    time.Time `gorm:"type:date;not null" json:"deadline"`
	EmployerID  uint      `gorm:"not null;index" json:"employer_id"`
	CreatedAt   time.Time `json:"created_at"`
}

type Application struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Email       string    `gorm:"type:varchar(120);not null" json:"email"`
	JobID       uint      `gorm:"not null;index" json:"job_id"`
	JobSeekerID uint      `gorm:"not null;index" json:"job_seeker_id"`
	Status      string    `gorm:"type:varchar(20);default:'Pending'" json:"status"`
	CVFile      string    `gorm:"type:varchar(255)" json:"cv_file,omitempty"`
	CVText      string    `gorm:"type:text" json:"cv_text,omitempty"`
	CoverLetter string    `gorm:"type:text" json:"cover_letter,omitempty"`
	AppliedDate time.Time `json:"applied_date"`
}

// Review is standalone: the schema carries no foreign keys to jobs or users.
type Review struct {
	ID      uint      `gorm:"primaryKey" json:"id"`
	Name    string    `gorm:"type:varchar(100);not null" json:"name"`
	Rating  int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment string    `gorm:"type:text;not null" json:"comment"`
	Date    time.Time `json:"date"`
}
