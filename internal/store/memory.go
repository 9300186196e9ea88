package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/moneylens/backend/internal/model"
)

// MemoryStore implements Store with in-memory maps. It backs local
// development and tests.
type MemoryStore struct {
	mu sync.RWMutex

	incomes       map[string]*model.Income
	expenses      map[string]*model.Expense
	goals         map[string]*model.Goal
	users         map[string]*model.User
	notifications map[string]*model.Notification
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		incomes:       make(map[string]*model.Income),
		expenses:      make(map[string]*model.Expense),
		goals:         make(map[string]*model.Goal),
		users:         make(map[string]*model.User),
		notifications: make(map[string]*model.Notification),
	}
}

// inRange applies optional date bounds against a record's resolved date.
// Records without a resolvable date pass an unbounded filter only.
func inRange(when time.Time, ok bool, start, end *time.Time) bool {
	if start == nil && end == nil {
		return true
	}
	if !ok {
		return false
	}
	if start != nil && when.Before(*start) {
		return false
	}
	if end != nil && when.After(*end) {
		return false
	}
	return true
}

func (s *MemoryStore) CreateIncome(ctx context.Context, income *model.Income) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.incomes[income.ID] = income
	return nil
}

func (s *MemoryStore) ListIncomes(ctx context.Context, userID string, startDate, endDate *time.Time) ([]*model.Income, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.Income
	for _, in := range s.incomes {
		if in.UserID != userID {
			continue
		}
		when, ok := in.When()
		if !inRange(when, ok, startDate, endDate) {
			continue
		}
		out = append(out, in)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) DeleteIncome(ctx context.Context, incomeID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.incomes[incomeID]; !ok {
		return ErrNotFound
	}
	delete(s.incomes, incomeID)
	return nil
}

func (s *MemoryStore) CreateExpense(ctx context.Context, expense *model.Expense) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.expenses[expense.ID] = expense
	return nil
}

func (s *MemoryStore) ListExpenses(ctx context.Context, userID string, startDate, endDate *time.Time) ([]*model.Expense, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.Expense
	for _, e := range s.expenses {
		if e.UserID != userID {
			continue
		}
		when, ok := e.When()
		if !inRange(when, ok, startDate, endDate) {
			continue
		}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) DeleteExpense(ctx context.Context, expenseID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.expenses[expenseID]; !ok {
		return ErrNotFound
	}
	delete(s.expenses, expenseID)
	return nil
}

func (s *MemoryStore) CreateGoal(ctx context.Context, goal *model.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.goals[goal.ID] = goal
	return nil
}

func (s *MemoryStore) GetGoal(ctx context.Context, goalID string) (*model.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	goal, ok := s.goals[goalID]
	if !ok {
		return nil, ErrNotFound
	}
	return goal, nil
}

func (s *MemoryStore) UpdateGoal(ctx context.Context, goal *model.Goal) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.goals[goal.ID]; !ok {
		return ErrNotFound
	}
	s.goals[goal.ID] = goal
	return nil
}

func (s *MemoryStore) DeleteGoal(ctx context.Context, goalID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.goals[goalID]; !ok {
		return ErrNotFound
	}
	delete(s.goals, goalID)
	return nil
}

func (s *MemoryStore) ListGoals(ctx context.Context, userID string) ([]*model.Goal, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.Goal
	for _, g := range s.goals {
		if g.UserID == userID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) GetUser(ctx context.Context, userID string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return user, nil
}

func (s *MemoryStore) UpdateUser(ctx context.Context, user *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = user
	return nil
}

func (s *MemoryStore) ListUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*model.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *MemoryStore) CreateNotification(ctx context.Context, n *model.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.notifications[n.ID] = n
	return nil
}

func (s *MemoryStore) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]*model.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*model.Notification
	for _, n := range s.notifications {
		if n.UserID != userID {
			continue
		}
		if unreadOnly && n.IsRead {
			continue
		}
		out = append(out, n)
	}
	// Newest first, ID as the tie-break so order is stable.
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (s *MemoryStore) MarkNotificationRead(ctx context.Context, notificationID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	n, ok := s.notifications[notificationID]
	if !ok {
		return ErrNotFound
	}
	n.IsRead = true
	return nil
}

func (s *MemoryStore) MarkAllNotificationsRead(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.notifications {
		if n.UserID == userID {
			n.IsRead = true
		}
	}
	return nil
}

func (s *MemoryStore) UnreadNotificationCount(ctx context.Context, userID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	count := 0
	for _, n := range s.notifications {
		if n.UserID == userID && !n.IsRead {
			count++
		}
	}
	return count, nil
}

func (s *MemoryStore) HasNotification(ctx context.Context, userID, notificationType, referenceID, metaKey, metaValue string, withinHours int) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cutoff := time.Now().Add(-time.Duration(withinHours) * time.Hour)
	for _, n := range s.notifications {
		if n.UserID != userID || n.Type != notificationType {
			continue
		}
		if referenceID != "" && n.ReferenceID != referenceID {
			continue
		}
		if metaKey != "" && n.Metadata[metaKey] != metaValue {
			continue
		}
		if n.CreatedAt.After(cutoff) {
			return true, nil
		}
	}
	return false, nil
}
