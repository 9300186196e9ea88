package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moneylens/backend/internal/model"
)

func ts(t time.Time) *time.Time { return &t }

func TestMemoryStoreIncomeDateFilter(t *testing.T) {
	s := NewMemoryStore()
	ctx := t.Context()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.CreateIncome(ctx, &model.Income{ID: "a", UserID: "u1", Amount: 100, Date: ts(base)}))
	require.NoError(t, s.CreateIncome(ctx, &model.Income{ID: "b", UserID: "u1", Amount: 200, Date: ts(base.AddDate(0, 0, 10))}))
	require.NoError(t, s.CreateIncome(ctx, &model.Income{ID: "c", UserID: "u2", Amount: 300, Date: ts(base)}))
	// Dateless record: only visible without bounds.
	require.NoError(t, s.CreateIncome(ctx, &model.Income{ID: "d", UserID: "u1", Amount: 400}))

	all, err := s.ListIncomes(ctx, "u1", nil, nil)
	require.NoError(t, err)
	assert.Len(t, all, 3)

	start := base.AddDate(0, 0, 5)
	end := base.AddDate(0, 0, 15)
	windowed, err := s.ListIncomes(ctx, "u1", &start, &end)
	require.NoError(t, err)
	require.Len(t, windowed, 1)
	assert.Equal(t, "b", windowed[0].ID)
}

func TestMemoryStoreExpenseWhenFallback(t *testing.T) {
	s := NewMemoryStore()
	ctx := t.Context()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	// No Date, but CreatedAt inside the window.
	require.NoError(t, s.CreateExpense(ctx, &model.Expense{ID: "a", UserID: "u1", Amount: 50, CreatedAt: ts(base)}))

	start := base.AddDate(0, 0, -1)
	end := base.AddDate(0, 0, 1)
	out, err := s.ListExpenses(ctx, "u1", &start, &end)
	require.NoError(t, err)
	assert.Len(t, out, 1)
}

func TestMemoryStoreGoalCRUD(t *testing.T) {
	s := NewMemoryStore()
	ctx := t.Context()

	goal := &model.Goal{ID: "g1", UserID: "u1", Title: "Car", TargetAmount: 1000}
	require.NoError(t, s.CreateGoal(ctx, goal))

	got, err := s.GetGoal(ctx, "g1")
	require.NoError(t, err)
	assert.Equal(t, "Car", got.Title)

	goal.CurrentAmount = 250
	require.NoError(t, s.UpdateGoal(ctx, goal))

	assert.ErrorIs(t, s.UpdateGoal(ctx, &model.Goal{ID: "missing"}), ErrNotFound)

	require.NoError(t, s.DeleteGoal(ctx, "g1"))
	_, err = s.GetGoal(ctx, "g1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, s.DeleteGoal(ctx, "g1"), ErrNotFound)
}

func TestMemoryStoreNotificationOrderingAndRead(t *testing.T) {
	s := NewMemoryStore()
	ctx := t.Context()

	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, s.CreateNotification(ctx, &model.Notification{ID: "old", UserID: "u1", Type: "x", CreatedAt: base}))
	require.NoError(t, s.CreateNotification(ctx, &model.Notification{ID: "new", UserID: "u1", Type: "x", CreatedAt: base.Add(time.Hour)}))

	out, err := s.ListNotifications(ctx, "u1", false)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "new", out[0].ID)

	require.NoError(t, s.MarkNotificationRead(ctx, "new"))
	unread, err := s.ListNotifications(ctx, "u1", true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "old", unread[0].ID)

	count, err := s.UnreadNotificationCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, s.MarkAllNotificationsRead(ctx, "u1"))
	count, err = s.UnreadNotificationCount(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestMemoryStoreHasNotification(t *testing.T) {
	s := NewMemoryStore()
	ctx := t.Context()

	recent := time.Now().Add(-time.Hour)
	stale := time.Now().Add(-100 * 24 * time.Hour)

	require.NoError(t, s.CreateNotification(ctx, &model.Notification{
		ID: "n1", UserID: "u1", Type: "goal_milestone", ReferenceID: "g1",
		Metadata: map[string]string{"milestone": "50"}, CreatedAt: recent,
	}))
	require.NoError(t, s.CreateNotification(ctx, &model.Notification{
		ID: "n2", UserID: "u1", Type: "goal_milestone", ReferenceID: "g2",
		Metadata: map[string]string{"milestone": "25"}, CreatedAt: stale,
	}))

	t.Run("matches type, reference and metadata", func(t *testing.T) {
		ok, err := s.HasNotification(ctx, "u1", "goal_milestone", "g1", "milestone", "50", 24)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("different milestone does not match", func(t *testing.T) {
		ok, err := s.HasNotification(ctx, "u1", "goal_milestone", "g1", "milestone", "75", 24)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("outside the window does not match", func(t *testing.T) {
		ok, err := s.HasNotification(ctx, "u1", "goal_milestone", "g2", "milestone", "25", 720)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("empty metaKey matches on type and reference alone", func(t *testing.T) {
		ok, err := s.HasNotification(ctx, "u1", "goal_milestone", "g1", "", "", 24)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestMemoryStoreUsers(t *testing.T) {
	s := NewMemoryStore()
	ctx := t.Context()

	_, err := s.GetUser(ctx, "u1")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.UpdateUser(ctx, &model.User{ID: "u2", Name: "B"}))
	require.NoError(t, s.UpdateUser(ctx, &model.User{ID: "u1", Name: "A"}))

	users, err := s.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "u1", users[0].ID)
}
