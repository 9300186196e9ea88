package store

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"github.com/moneylens/backend/internal/model"
)

// Firestore collection names.
const (
	colIncomes       = "incomes"
	colExpenses      = "expenses"
	colGoals         = "goals"
	colUsers         = "users"
	colNotifications = "notifications"
)

// FirestoreStore implements Store using Firestore.
type FirestoreStore struct {
	client *firestore.Client
}

// NewFirestoreStore creates a Firestore-backed store.
func NewFirestoreStore(client *firestore.Client) Store {
	return &FirestoreStore{client: client}
}

func (s *FirestoreStore) CreateIncome(ctx context.Context, income *model.Income) error {
	_, err := s.client.Collection(colIncomes).Doc(income.ID).Set(ctx, income)
	return err
}

func (s *FirestoreStore) ListIncomes(ctx context.Context, userID string, startDate, endDate *time.Time) ([]*model.Income, error) {
	query := s.client.Collection(colIncomes).Query.Where("UserID", "==", userID)
	iter := query.Documents(ctx)
	defer iter.Stop()

	var out []*model.Income
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list incomes: %w", err)
		}
		var income model.Income
		if err := doc.DataTo(&income); err != nil {
			return nil, fmt.Errorf("parse income %s: %w", doc.Ref.ID, err)
		}
		when, ok := income.When()
		if !inRange(when, ok, startDate, endDate) {
			continue
		}
		out = append(out, &income)
	}
	return out, nil
}

func (s *FirestoreStore) DeleteIncome(ctx context.Context, incomeID string) error {
	_, err := s.client.Collection(colIncomes).Doc(incomeID).Delete(ctx)
	return err
}

func (s *FirestoreStore) CreateExpense(ctx context.Context, expense *model.Expense) error {
	_, err := s.client.Collection(colExpenses).Doc(expense.ID).Set(ctx, expense)
	return err
}

func (s *FirestoreStore) ListExpenses(ctx context.Context, userID string, startDate, endDate *time.Time) ([]*model.Expense, error) {
	query := s.client.Collection(colExpenses).Query.Where("UserID", "==", userID)
	iter := query.Documents(ctx)
	defer iter.Stop()

	var out []*model.Expense
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list expenses: %w", err)
		}
		var expense model.Expense
		if err := doc.DataTo(&expense); err != nil {
			return nil, fmt.Errorf("parse expense %s: %w", doc.Ref.ID, err)
		}
		when, ok := expense.When()
		if !inRange(when, ok, startDate, endDate) {
			continue
		}
		out = append(out, &expense)
	}
	return out, nil
}

func (s *FirestoreStore) DeleteExpense(ctx context.Context, expenseID string) error {
	_, err := s.client.Collection(colExpenses).Doc(expenseID).Delete(ctx)
	return err
}

func (s *FirestoreStore) CreateGoal(ctx context.Context, goal *model.Goal) error {
	_, err := s.client.Collection(colGoals).Doc(goal.ID).Set(ctx, goal)
	return err
}

func (s *FirestoreStore) GetGoal(ctx context.Context, goalID string) (*model.Goal, error) {
	doc, err := s.client.Collection(colGoals).Doc(goalID).Get(ctx)
	if err != nil {
		return nil, ErrNotFound
	}
	var goal model.Goal
	if err := doc.DataTo(&goal); err != nil {
		return nil, fmt.Errorf("parse goal %s: %w", goalID, err)
	}
	return &goal, nil
}

func (s *FirestoreStore) UpdateGoal(ctx context.Context, goal *model.Goal) error {
	_, err := s.client.Collection(colGoals).Doc(goal.ID).Set(ctx, goal)
	return err
}

func (s *FirestoreStore) DeleteGoal(ctx context.Context, goalID string) error {
	_, err := s.client.Collection(colGoals).Doc(goalID).Delete(ctx)
	return err
}

func (s *FirestoreStore) ListGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	iter := s.client.Collection(colGoals).Query.Where("UserID", "==", userID).Documents(ctx)
	defer iter.Stop()

	var out []*model.Goal
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list goals: %w", err)
		}
		var goal model.Goal
		if err := doc.DataTo(&goal); err != nil {
			return nil, fmt.Errorf("parse goal %s: %w", doc.Ref.ID, err)
		}
		out = append(out, &goal)
	}
	return out, nil
}

func (s *FirestoreStore) GetUser(ctx context.Context, userID string) (*model.User, error) {
	doc, err := s.client.Collection(colUsers).Doc(userID).Get(ctx)
	if err != nil {
		return nil, ErrNotFound
	}
	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, fmt.Errorf("parse user %s: %w", userID, err)
	}
	return &user, nil
}

func (s *FirestoreStore) UpdateUser(ctx context.Context, user *model.User) error {
	_, err := s.client.Collection(colUsers).Doc(user.ID).Set(ctx, user)
	return err
}

func (s *FirestoreStore) ListUsers(ctx context.Context) ([]*model.User, error) {
	iter := s.client.Collection(colUsers).Documents(ctx)
	defer iter.Stop()

	var out []*model.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list users: %w", err)
		}
		var user model.User
		if err := doc.DataTo(&user); err != nil {
			return nil, fmt.Errorf("parse user %s: %w", doc.Ref.ID, err)
		}
		out = append(out, &user)
	}
	return out, nil
}

func (s *FirestoreStore) CreateNotification(ctx context.Context, n *model.Notification) error {
	_, err := s.client.Collection(colNotifications).Doc(n.ID).Set(ctx, n)
	return err
}

func (s *FirestoreStore) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]*model.Notification, error) {
	query := s.client.Collection(colNotifications).Query.
		Where("UserID", "==", userID).
		OrderBy("CreatedAt", firestore.Desc)
	if unreadOnly {
		query = query.Where("IsRead", "==", false)
	}
	iter := query.Documents(ctx)
	defer iter.Stop()

	var out []*model.Notification
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("list notifications: %w", err)
		}
		var n model.Notification
		if err := doc.DataTo(&n); err != nil {
			return nil, fmt.Errorf("parse notification %s: %w", doc.Ref.ID, err)
		}
		out = append(out, &n)
	}
	return out, nil
}

func (s *FirestoreStore) MarkNotificationRead(ctx context.Context, notificationID string) error {
	_, err := s.client.Collection(colNotifications).Doc(notificationID).Update(ctx, []firestore.Update{
		{Path: "IsRead", Value: true},
	})
	return err
}

func (s *FirestoreStore) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	iter := s.client.Collection(colNotifications).Query.
		Where("UserID", "==", userID).
		Where("IsRead", "==", false).
		Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return fmt.Errorf("list unread notifications: %w", err)
		}
		if _, err := doc.Ref.Update(ctx, []firestore.Update{{Path: "IsRead", Value: true}}); err != nil {
			return fmt.Errorf("mark notification %s read: %w", doc.Ref.ID, err)
		}
	}
	return nil
}

func (s *FirestoreStore) UnreadNotificationCount(ctx context.Context, userID string) (int, error) {
	iter := s.client.Collection(colNotifications).Query.
		Where("UserID", "==", userID).
		Where("IsRead", "==", false).
		Documents(ctx)
	defer iter.Stop()

	count := 0
	for {
		_, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("count unread notifications: %w", err)
		}
		count++
	}
	return count, nil
}

func (s *FirestoreStore) HasNotification(ctx context.Context, userID, notificationType, referenceID, metaKey, metaValue string, withinHours int) (bool, error) {
	cutoff := time.Now().Add(-time.Duration(withinHours) * time.Hour)
	query := s.client.Collection(colNotifications).Query.
		Where("UserID", "==", userID).
		Where("Type", "==", notificationType).
		Where("CreatedAt", ">", cutoff)
	if referenceID != "" {
		query = query.Where("ReferenceID", "==", referenceID)
	}
	iter := query.Documents(ctx)
	defer iter.Stop()

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return false, fmt.Errorf("check notifications: %w", err)
		}
		if metaKey == "" {
			return true, nil
		}
		var n model.Notification
		if err := doc.DataTo(&n); err != nil {
			continue
		}
		if n.Metadata[metaKey] == metaValue {
			return true, nil
		}
	}
	return false, nil
}
