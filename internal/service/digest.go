package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/moneylens/backend/internal/model"
)

// weeklyDigestData is the structured payload stored in the notification
// metadata. Clients render it themselves; the Message field is only a
// plain-text fallback.
type weeklyDigestData struct {
	TotalSpent    float64             `json:"totalSpent"`
	TotalIncome   float64             `json:"totalIncome"`
	Net           float64             `json:"net"`
	TopCategories []categoryAmount    `json:"topCategories,omitempty"`
	Goals         []digestGoalSummary `json:"goals,omitempty"`
	PeriodStart   string              `json:"periodStart"`
	PeriodEnd     string              `json:"periodEnd"`
}

type categoryAmount struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type digestGoalSummary struct {
	Title           string  `json:"title"`
	CurrentAmount   float64 `json:"currentAmount"`
	TargetAmount    float64 `json:"targetAmount"`
	PercentComplete float64 `json:"percentComplete"`
}

// GenerateWeeklyDigest builds a digest notification for the calling user on
// demand. The scheduled path goes through RunWeeklyDigests instead.
func (s *FinanceService) GenerateWeeklyDigest(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAuth(w, r)
	if !ok {
		return
	}

	end := s.nowFn()
	start := end.AddDate(0, 0, -7)
	if err := s.generateDigestForUser(r.Context(), claims.UID, start, end); err != nil {
		s.log.WithError(err).Error("[WeeklyDigest] generation failed")
		writeError(w, http.StatusInternalServerError, "failed to generate digest")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"usersProcessed": 1, "digestsSent": 1})
}

// RunWeeklyDigests generates a digest for every known user. Wired to the
// cron scheduler in cmd/server.
func (s *FinanceService) RunWeeklyDigests(ctx context.Context) error {
	users, err := s.store.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("list users: %w", err)
	}

	end := s.nowFn()
	start := end.AddDate(0, 0, -7)

	sent := 0
	for _, u := range users {
		if err := s.generateDigestForUser(ctx, u.ID, start, end); err != nil {
			s.log.WithError(err).WithField("user", u.ID).Error("[WeeklyDigest] per-user generation failed")
			continue
		}
		sent++
	}
	s.log.WithFields(map[string]any{"users": len(users), "sent": sent}).Info("[WeeklyDigest] run complete")
	return nil
}

func (s *FinanceService) generateDigestForUser(ctx context.Context, userID string, start, end time.Time) error {
	expenses, err := s.store.ListExpenses(ctx, userID, &start, &end)
	if err != nil {
		return fmt.Errorf("list expenses: %w", err)
	}
	incomes, err := s.store.ListIncomes(ctx, userID, &start, &end)
	if err != nil {
		return fmt.Errorf("list incomes: %w", err)
	}

	var totalSpent float64
	categoryTotals := make(map[string]float64)
	for _, e := range expenses {
		totalSpent += e.Amount
		categoryTotals[e.Category] += e.Amount
	}
	var totalIncome float64
	for _, i := range incomes {
		totalIncome += i.Amount
	}

	topCategories := make([]categoryAmount, 0, len(categoryTotals))
	for cat, amount := range categoryTotals {
		topCategories = append(topCategories, categoryAmount{Category: cat, Amount: amount})
	}
	sort.Slice(topCategories, func(i, j int) bool {
		if topCategories[i].Amount != topCategories[j].Amount {
			return topCategories[i].Amount > topCategories[j].Amount
		}
		return topCategories[i].Category < topCategories[j].Category
	})
	if len(topCategories) > 5 {
		topCategories = topCategories[:5]
	}

	goals, err := s.store.ListGoals(ctx, userID)
	if err != nil {
		s.log.WithError(err).WithField("user", userID).Error("[WeeklyDigest] goal listing failed")
	}
	var goalSummaries []digestGoalSummary
	for _, g := range goals {
		pct := float64(0)
		if g.TargetAmount > 0 {
			pct = g.CurrentAmount / g.TargetAmount * 100
		}
		goalSummaries = append(goalSummaries, digestGoalSummary{
			Title:           g.Title,
			CurrentAmount:   g.CurrentAmount,
			TargetAmount:    g.TargetAmount,
			PercentComplete: pct,
		})
	}

	digest := weeklyDigestData{
		TotalSpent:    totalSpent,
		TotalIncome:   totalIncome,
		Net:           totalIncome - totalSpent,
		TopCategories: topCategories,
		Goals:         goalSummaries,
		PeriodStart:   start.Format("2006-01-02"),
		PeriodEnd:     end.Format("2006-01-02"),
	}
	digestJSON, err := json.Marshal(digest)
	if err != nil {
		return fmt.Errorf("serialize digest: %w", err)
	}

	notification := &model.Notification{
		ID:            uuid.New().String(),
		UserID:        userID,
		Type:          model.NotificationWeeklyDigest,
		Title:         "Your Weekly Financial Summary",
		Message:       fmt.Sprintf("You spent %.2f and earned %.2f this week.", totalSpent, totalIncome),
		IsRead:        false,
		ReferenceType: "weekly_digest",
		Metadata:      map[string]string{"digest_data": string(digestJSON)},
		CreatedAt:     s.nowFn(),
	}
	if err := s.store.CreateNotification(ctx, notification); err != nil {
		return fmt.Errorf("create digest notification: %w", err)
	}
	return nil
}
