// Package service exposes the HTTP JSON API: record CRUD, on-demand
// analysis, advice, digests and notifications.
package service

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/moneylens/backend/internal/advisor"
	"github.com/moneylens/backend/internal/auth"
	"github.com/moneylens/backend/internal/engine"
	"github.com/moneylens/backend/internal/model"
	"github.com/moneylens/backend/internal/store"
)

// FinanceService wires the store, the analytics engine and the advisor
// behind HTTP handlers.
type FinanceService struct {
	store   store.Store
	engine  *engine.Engine
	advisor *advisor.Advisor
	log     *logrus.Logger

	// nowFn is the injectable clock; tests pin it for reproducible output.
	nowFn func() time.Time
}

// NewFinanceService creates the service. advisor may be nil (advice
// disabled).
func NewFinanceService(st store.Store, eng *engine.Engine, adv *advisor.Advisor, log *logrus.Logger) *FinanceService {
	return &FinanceService{
		store:   st,
		engine:  eng,
		advisor: adv,
		log:     log,
		nowFn:   time.Now,
	}
}

// Routes registers all handlers on the given router.
func (s *FinanceService) Routes(r *mux.Router) {
	r.HandleFunc("/incomes", s.CreateIncome).Methods(http.MethodPost)
	r.HandleFunc("/incomes", s.ListIncomes).Methods(http.MethodGet)
	r.HandleFunc("/incomes/{id}", s.DeleteIncome).Methods(http.MethodDelete)

	r.HandleFunc("/expenses", s.CreateExpense).Methods(http.MethodPost)
	r.HandleFunc("/expenses", s.ListExpenses).Methods(http.MethodGet)
	r.HandleFunc("/expenses/{id}", s.DeleteExpense).Methods(http.MethodDelete)

	r.HandleFunc("/goals", s.CreateGoal).Methods(http.MethodPost)
	r.HandleFunc("/goals", s.ListGoals).Methods(http.MethodGet)
	r.HandleFunc("/goals/{id}", s.UpdateGoal).Methods(http.MethodPut)
	r.HandleFunc("/goals/{id}", s.DeleteGoal).Methods(http.MethodDelete)

	r.HandleFunc("/profile", s.GetProfile).Methods(http.MethodGet)
	r.HandleFunc("/profile", s.UpdateProfile).Methods(http.MethodPut)

	r.HandleFunc("/analysis", s.GetAnalysis).Methods(http.MethodGet)
	r.HandleFunc("/advice", s.GetAdvice).Methods(http.MethodGet)
	r.HandleFunc("/digest", s.GenerateWeeklyDigest).Methods(http.MethodPost)

	r.HandleFunc("/notifications", s.ListNotifications).Methods(http.MethodGet)
	r.HandleFunc("/notifications/unread-count", s.UnreadNotificationCount).Methods(http.MethodGet)
	r.HandleFunc("/notifications/read-all", s.MarkAllNotificationsRead).Methods(http.MethodPost)
	r.HandleFunc("/notifications/{id}/read", s.MarkNotificationRead).Methods(http.MethodPost)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": http.StatusText(status), "message": message})
}

func (s *FinanceService) requireAuth(w http.ResponseWriter, r *http.Request) (*auth.UserClaims, bool) {
	claims, err := auth.RequireAuth(r.Context())
	if err != nil {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return nil, false
	}
	return claims, true
}

// ----------------------------------------------------------------------------
// Incomes
// ----------------------------------------------------------------------------

type incomeRequest struct {
	Amount   float64    `json:"amount"`
	Category string     `json:"category"`
	Source   string     `json:"source"`
	Date     *time.Time `json:"date"`
}

func (s *FinanceService) CreateIncome(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAuth(w, r)
	if !ok {
		return
	}

	var req incomeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount < 0 {
		writeError(w, http.StatusBadRequest, "amount must be non-negative")
		return
	}

	now := s.nowFn()
	income := &model.Income{
		ID:        uuid.New().String(),
		UserID:    claims.UID,
		Amount:    req.Amount,
		Category:  req.Category,
		Source:    req.Source,
		Date:      req.Date,
		CreatedAt: &now,
	}
	if err := s.store.CreateIncome(r.Context(), income); err != nil {
		s.log.WithError(err).Error("[Income] create failed")
		writeError(w, http.StatusInternalServerError, "failed to create income")
		return
	}
	writeJSON(w, http.StatusCreated, income)
}

func (s *FinanceService) ListIncomes(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	incomes, err := s.store.ListIncomes(r.Context(), claims.UID, nil, nil)
	if err != nil {
		s.log.WithError(err).Error("[Income] list failed")
		writeError(w, http.StatusInternalServerError, "failed to list incomes")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"incomes": incomes})
}

func (s *FinanceService) DeleteIncome(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAuth(w, r); !ok {
		return
	}
	id := mux.Vars(r)["id"]
	if err := s.store.DeleteIncome(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "income not found")
			return
		}
		s.log.WithError(err).Error("[Income] delete failed")
		writeError(w, http.StatusInternalServerError, "failed to delete income")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ----------------------------------------------------------------------------
// Expenses
// ----------------------------------------------------------------------------

type expenseRequest struct {
	Amount   float64    `json:"amount"`
	Category string     `json:"category"`
	Date     *time.Time `json:"date"`
	DateTime *time.Time `json:"dateTime"`
}

func (s *FinanceService) CreateExpense(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAuth(w, r)
	if !ok {
		return
	}

	var req expenseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount < 0 {
		writeError(w, http.StatusBadRequest, "amount must be non-negative")
		return
	}

	now := s.nowFn()
	expense := &model.Expense{
		ID:        uuid.New().String(),
		UserID:    claims.UID,
		Amount:    req.Amount,
		Category:  req.Category,
		Date:      req.Date,
		DateTime:  req.DateTime,
		CreatedAt: &now,
	}
	if err := s.store.CreateExpense(r.Context(), expense); err != nil {
		s.log.WithError(err).Error("[Expense] create failed")
		writeError(w, http.StatusInternalServerError, "failed to create expense")
		return
	}
	writeJSON(w, http.StatusCreated, expense)
}

func (s *FinanceService) ListExpenses(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	expenses, err := s.store.ListExpenses(r.Context(), claims.UID, nil, nil)
	if err != nil {
		s.log.WithError(err).Error("[Expense] list failed")
		writeError(w, http.StatusInternalServerError, "failed to list expenses")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"expenses": expenses})
}

func (s *FinanceService) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAuth(w, r); !ok {
		return
	}
	id := mux.Vars(r)["id"]
	if err := s.store.DeleteExpense(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "expense not found")
			return
		}
		s.log.WithError(err).Error("[Expense] delete failed")
		writeError(w, http.StatusInternalServerError, "failed to delete expense")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ----------------------------------------------------------------------------
// Goals
// ----------------------------------------------------------------------------

type goalRequest struct {
	Title         string     `json:"title"`
	TargetAmount  float64    `json:"targetAmount"`
	CurrentAmount float64    `json:"currentAmount"`
	Deadline      *time.Time `json:"deadline"`
}

func (s *FinanceService) CreateGoal(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAuth(w, r)
	if !ok {
		return
	}

	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" {
		writeError(w, http.StatusBadRequest, "title is required")
		return
	}
	if req.TargetAmount <= 0 {
		writeError(w, http.StatusBadRequest, "targetAmount must be positive")
		return
	}
	if req.CurrentAmount < 0 {
		writeError(w, http.StatusBadRequest, "currentAmount must be non-negative")
		return
	}

	now := s.nowFn()
	goal := &model.Goal{
		ID:            uuid.New().String(),
		UserID:        claims.UID,
		Title:         req.Title,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: req.CurrentAmount,
		Deadline:      req.Deadline,
		CreatedAt:     &now,
		UpdatedAt:     &now,
	}
	if err := s.store.CreateGoal(r.Context(), goal); err != nil {
		s.log.WithError(err).Error("[Goal] create failed")
		writeError(w, http.StatusInternalServerError, "failed to create goal")
		return
	}
	writeJSON(w, http.StatusCreated, goal)
}

func (s *FinanceService) ListGoals(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	goals, err := s.store.ListGoals(r.Context(), claims.UID)
	if err != nil {
		s.log.WithError(err).Error("[Goal] list failed")
		writeError(w, http.StatusInternalServerError, "failed to list goals")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"goals": goals})
}

func (s *FinanceService) UpdateGoal(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	id := mux.Vars(r)["id"]

	goal, err := s.store.GetGoal(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusNotFound, "goal not found")
		return
	}
	if goal.UserID != claims.UID {
		writeError(w, http.StatusForbidden, "goal belongs to another user")
		return
	}

	var req goalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title != "" {
		goal.Title = req.Title
	}
	if req.TargetAmount > 0 {
		goal.TargetAmount = req.TargetAmount
	}
	if req.CurrentAmount >= 0 {
		goal.CurrentAmount = req.CurrentAmount
	}
	if req.Deadline != nil {
		goal.Deadline = req.Deadline
	}
	now := s.nowFn()
	goal.UpdatedAt = &now

	if err := s.store.UpdateGoal(r.Context(), goal); err != nil {
		s.log.WithError(err).Error("[Goal] update failed")
		writeError(w, http.StatusInternalServerError, "failed to update goal")
		return
	}

	s.checkGoalMilestone(r.Context(), claims.UID, goal)
	writeJSON(w, http.StatusOK, goal)
}

func (s *FinanceService) DeleteGoal(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireAuth(w, r); !ok {
		return
	}
	id := mux.Vars(r)["id"]
	if err := s.store.DeleteGoal(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "goal not found")
			return
		}
		s.log.WithError(err).Error("[Goal] delete failed")
		writeError(w, http.StatusInternalServerError, "failed to delete goal")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ----------------------------------------------------------------------------
// Profile
// ----------------------------------------------------------------------------

func (s *FinanceService) GetProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	user, err := s.store.GetUser(r.Context(), claims.UID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "profile not found")
			return
		}
		s.log.WithError(err).Error("[Profile] get failed")
		writeError(w, http.StatusInternalServerError, "failed to get profile")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type profileRequest struct {
	Name          string  `json:"name"`
	MonthlyIncome float64 `json:"monthlyIncome"`
	Currency      string  `json:"currency"`
}

func (s *FinanceService) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAuth(w, r)
	if !ok {
		return
	}

	var req profileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.MonthlyIncome < 0 {
		writeError(w, http.StatusBadRequest, "monthlyIncome must be non-negative")
		return
	}

	user := &model.User{
		ID:            claims.UID,
		Name:          req.Name,
		Email:         claims.Email,
		MonthlyIncome: req.MonthlyIncome,
		Currency:      req.Currency,
	}
	if err := s.store.UpdateUser(r.Context(), user); err != nil {
		s.log.WithError(err).Error("[Profile] update failed")
		writeError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// ----------------------------------------------------------------------------
// Analysis and advice
// ----------------------------------------------------------------------------

// analyze fetches the user's collections and runs the engine once.
func (s *FinanceService) analyze(r *http.Request, userID string) (*engine.Result, *model.User, error) {
	ctx := r.Context()

	incomes, err := s.store.ListIncomes(ctx, userID, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	expenses, err := s.store.ListExpenses(ctx, userID, nil, nil)
	if err != nil {
		return nil, nil, err
	}
	goals, err := s.store.ListGoals(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := s.store.GetUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, nil, err
		}
		profile = nil // analysis works without a profile
	}

	return s.engine.Analyze(incomes, expenses, goals, profile, s.nowFn()), profile, nil
}

func (s *FinanceService) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAuth(w, r)
	if !ok {
		return
	}

	result, _, err := s.analyze(r, claims.UID)
	if err != nil {
		s.log.WithError(err).Error("[Analysis] record fetch failed")
		writeError(w, http.StatusInternalServerError, "failed to load records")
		return
	}
	if !result.Success {
		s.log.WithField("error", result.Error).Error("[Analysis] engine failure")
		writeJSON(w, http.StatusInternalServerError, result)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *FinanceService) GetAdvice(w http.ResponseWriter, r *http.Request) {
	claims, ok := s.requireAuth(w, r)
	if !ok {
		return
	}
	if s.advisor == nil {
		writeError(w, http.StatusServiceUnavailable, "advice is not configured")
		return
	}

	result, profile, err := s.analyze(r, claims.UID)
	if err != nil {
		s.log.WithError(err).Error("[Advice] record fetch failed")
		writeError(w, http.StatusInternalServerError, "failed to load records")
		return
	}
	if !result.Success {
		writeJSON(w, http.StatusInternalServerError, result)
		return
	}

	name := claims.Name
	if profile != nil && profile.Name != "" {
		name = profile.Name
	}
	advice, err := s.advisor.Advise(r.Context(), name, result.Summary)
	if err != nil {
		s.log.WithError(err).Error("[Advice] advisor call failed")
		writeError(w, http.StatusBadGateway, "advisor unavailable")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"advice": advice, "summary": result.Summary})
}
