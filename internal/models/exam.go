package models

import "time"

type ExamStatus string

const (
	ExamStatusPending   ExamStatus = "pending"
	ExamStatusConfirmed ExamStatus = "confirmed"
	ExamStatusCompleted ExamStatus = "completed"
	ExamStatusCancelled ExamStatus = "cancelled"
)

// Exam is a practical-exam booking. Records are soft-deleted: cancellation
// flips the status, the record itself is never removed.
type Exam struct {
	ID         int        `json:"id"`
	UserEmail  string     `json:"user_email"`
	CourseID   string     `json:"course_id"`
	CourseName string     `json:"course_name"`
	Date       string     `json:"date"`
	Time       string     `json:"time"`
	Status     ExamStatus `json:"status"`
	Notes      string     `json:"notes"`
	CreatedAt  time.Time  `json:"created_at"`
}
