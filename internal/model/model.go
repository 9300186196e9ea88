// Package model defines the plain record types shared by the store, the
// analytics engine and the HTTP service.
package model

import "time"

// Income represents one credited amount.
type Income struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Amount    float64    `json:"amount"`
	Category  string     `json:"category"`
	Source    string     `json:"source,omitempty"`
	Date      *time.Time `json:"date,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// When resolves the record's effective date: Date wins, CreatedAt is the
// fallback. Records arrive from multiple clients that disagree on the field
// name, so both are accepted.
func (i *Income) When() (time.Time, bool) {
	if i.Date != nil {
		return *i.Date, true
	}
	if i.CreatedAt != nil {
		return *i.CreatedAt, true
	}
	return time.Time{}, false
}

// Expense represents one debited amount.
type Expense struct {
	ID        string     `json:"id"`
	UserID    string     `json:"userId"`
	Amount    float64    `json:"amount"`
	Category  string     `json:"category"`
	Date      *time.Time `json:"date,omitempty"`
	CreatedAt *time.Time `json:"createdAt,omitempty"`
	DateTime  *time.Time `json:"dateTime,omitempty"`
}

// When resolves the record's effective date, first of Date, CreatedAt,
// DateTime.
func (e *Expense) When() (time.Time, bool) {
	if e.Date != nil {
		return *e.Date, true
	}
	if e.CreatedAt != nil {
		return *e.CreatedAt, true
	}
	if e.DateTime != nil {
		return *e.DateTime, true
	}
	return time.Time{}, false
}

// Goal is a targeted savings objective.
type Goal struct {
	ID            string     `json:"id"`
	UserID        string     `json:"userId"`
	Title         string     `json:"title"`
	TargetAmount  float64    `json:"targetAmount"`
	CurrentAmount float64    `json:"currentAmount"`
	Deadline      *time.Time `json:"deadline,omitempty"`
	CreatedAt     *time.Time `json:"createdAt,omitempty"`
	UpdatedAt     *time.Time `json:"updatedAt,omitempty"`
}

// User is the read-only profile context for analysis.
type User struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email,omitempty"`
	MonthlyIncome float64 `json:"monthlyIncome,omitempty"`
	Currency      string  `json:"currency,omitempty"`
}

// Notification is a stored message for a user (digest, goal milestone).
type Notification struct {
	ID            string            `json:"id"`
	UserID        string            `json:"userId"`
	Type          string            `json:"type"`
	Title         string            `json:"title"`
	Message       string            `json:"message"`
	IsRead        bool              `json:"isRead"`
	ReferenceID   string            `json:"referenceId,omitempty"`
	ReferenceType string            `json:"referenceType,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// Notification types.
const (
	NotificationWeeklyDigest  = "weekly_digest"
	NotificationGoalMilestone = "goal_milestone"
)
