package service

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/moneylens/backend/internal/model"
)

func (s *FinanceService) ListNotifications(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	unreadOnly, _ := strconv.ParseBool(r.URL.Query().Get("unreadOnly"))

	notifications, err := s.store.ListNotifications(r.Context(), claims.UID, unreadOnly)
	if err != nil {
		s.log.WithError(err).Error("[Notification] list failed")
		writeError(w, http.StatusInternalServerError, "failed to list notifications")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"notifications": notifications})
}

func (s *FinanceService) UnreadNotificationCount(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	count, err := s.store.UnreadNotificationCount(r.Context(), claims.UID)
	if err != nil {
		s.log.WithError(err).Error("[Notification] unread count failed")
		writeError(w, http.StatusInternalServerError, "failed to count notifications")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"count": count})
}

func (s *FinanceService) MarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAuth(w, r); !ok {
		return
	}
	id := mux.Vars(r)["id"]
	if err := s.store.MarkNotificationRead(r.Context(), id); err != nil {
		s.log.WithError(err).Error("[Notification] mark read failed")
		writeError(w, http.StatusInternalServerError, "failed to mark notification read")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func (s *FinanceService) MarkAllNotificationsRead(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	if err := s.store.MarkAllNotificationsRead(r.Context(), claims.UID); err != nil {
		s.log.WithError(err).Error("[Notification] mark all read failed")
		writeError(w, http.StatusInternalServerError, "failed to mark notifications read")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// checkGoalMilestone creates a notification when a goal crosses 25/50/75/100
// percent funded. One notification per goal and milestone per year; failures
// are logged, never surfaced to the caller.
func (s *FinanceService) checkGoalMilestone(ctx context.Context, userID string, goal *model.Goal) {
	if goal.TargetAmount <= 0 {
		return
	}

	pct := goal.CurrentAmount / goal.TargetAmount * 100
	var milestone string
	switch {
	case pct >= 100:
		milestone = "100"
	case pct >= 75:
		milestone = "75"
	case pct >= 50:
		milestone = "50"
	case pct >= 25:
		milestone = "25"
	default:
		return
	}

	exists, err := s.store.HasNotification(ctx, userID,
		model.NotificationGoalMilestone, goal.ID, "milestone", milestone, 8760)
	if err != nil {
		s.log.WithError(err).Error("[Notification] milestone dedup check failed")
		return
	}
	if exists {
		return
	}

	notification := &model.Notification{
		ID:            uuid.New().String(),
		UserID:        userID,
		Type:          model.NotificationGoalMilestone,
		Title:         fmt.Sprintf("Goal Milestone: %s", goal.Title),
		Message:       fmt.Sprintf("You've reached %s%% of your %s goal!", milestone, goal.Title),
		IsRead:        false,
		ReferenceID:   goal.ID,
		ReferenceType: "goal",
		Metadata:      map[string]string{"milestone": milestone},
		CreatedAt:     s.nowFn(),
	}
	if err := s.store.CreateNotification(ctx, notification); err != nil {
		s.log.WithError(err).Error("[Notification] milestone create failed")
	}
}
