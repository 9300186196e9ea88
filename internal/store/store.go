// Package store defines the persistence boundary for user records. The
// analytics engine never touches a Store; it receives already-fetched
// collections from the service layer.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/moneylens/backend/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the database operations used by the service.
type Store interface {
	// Income operations
	CreateIncome(ctx context.Context, income *model.Income) error
	ListIncomes(ctx context.Context, userID string, startDate, endDate *time.Time) ([]*model.Income, error)
	DeleteIncome(ctx context.Context, incomeID string) error

	// Expense operations
	CreateExpense(ctx context.Context, expense *model.Expense) error
	ListExpenses(ctx context.Context, userID string, startDate, endDate *time.Time) ([]*model.Expense, error)
	DeleteExpense(ctx context.Context, expenseID string) error

	// Goal operations
	CreateGoal(ctx context.Context, goal *model.Goal) error
	GetGoal(ctx context.Context, goalID string) (*model.Goal, error)
	UpdateGoal(ctx context.Context, goal *model.Goal) error
	DeleteGoal(ctx context.Context, goalID string) error
	ListGoals(ctx context.Context, userID string) ([]*model.Goal, error)

	// User operations
	GetUser(ctx context.Context, userID string) (*model.User, error)
	UpdateUser(ctx context.Context, user *model.User) error
	ListUsers(ctx context.Context) ([]*model.User, error)

	// Notification operations
	CreateNotification(ctx context.Context, n *model.Notification) error
	ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]*model.Notification, error)
	MarkNotificationRead(ctx context.Context, notificationID string) error
	MarkAllNotificationsRead(ctx context.Context, userID string) error
	UnreadNotificationCount(ctx context.Context, userID string) (int, error)
	// HasNotification reports whether a notification of the given type with
	// the given reference and metadata value was created within the last
	// withinHours hours. Used for trigger deduplication.
	HasNotification(ctx context.Context, userID, notificationType, referenceID, metaKey, metaValue string, withinHours int) (bool, error)
}
