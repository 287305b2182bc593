package interfaces

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/IreshEranga/Finance-Tracker/internal/finance/application"
	"github.com/IreshEranga/Finance-Tracker/internal/finance/domain"
	"github.com/IreshEranga/Finance-Tracker/internal/finance/infrastructure"
	"github.com/stretchr/testify/assert"
)

func newBudgetFixture() (*BudgetHandler, *infrastructure.MockBudgetRepository) {
	transactionRepo := &infrastructure.MockTransactionRepository{}
	budgetRepo := &infrastructure.MockBudgetRepository{}
	service := application.NewBudgetService(budgetRepo, transactionRepo)
	return NewBudgetHandler(service, respondJSON, respondError), budgetRepo
}

func TestCreateBudget_Success(t *testing.T) {
	handler, repo := newBudgetFixture()

	req := newAuthedRequest(http.MethodPost, "/api/budgets", jsonBody(t, map[string]interface{}{
		"category": "Food",
		"limit":    250,
	}), regularUser)
	w := httptest.NewRecorder()

	handler.CreateBudget(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusCreated, res.StatusCode)

	response := decodeResponse(t, res)
	assert.Equal(t, "Budget created successfully", response["message"])
	assert.Len(t, repo.Budgets, 1)
	assert.Equal(t, "user-1", repo.Budgets[0].UserID)
}

func TestCreateBudget_DuplicatePair(t *testing.T) {
	handler, repo := newBudgetFixture()
	repo.Budgets = []domain.Budget{
		{ID: "b1", UserID: "user-1", Category: "Food", Limit: mustDecimal(t, "100")},
	}

	req := newAuthedRequest(http.MethodPost, "/api/budgets", jsonBody(t, map[string]interface{}{
		"category": "Food",
		"limit":    50,
	}), regularUser)
	w := httptest.NewRecorder()

	handler.CreateBudget(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	assert.Len(t, repo.Budgets, 1)
}

func TestGetBudgets_ScopeAware(t *testing.T) {
	handler, repo := newBudgetFixture()
	repo.Budgets = []domain.Budget{
		{ID: "b1", UserID: "user-1", Category: "Food", Limit: mustDecimal(t, "100")},
		{ID: "b2", UserID: "user-2", Category: "Rent", Limit: mustDecimal(t, "500")},
	}

	req := newAuthedRequest(http.MethodGet, "/api/budgets", nil, regularUser)
	w := httptest.NewRecorder()
	handler.GetBudgets(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusOK, res.StatusCode)
	response := decodeResponse(t, res)
	assert.Len(t, response["budgets"].([]interface{}), 1)

	req = newAuthedRequest(http.MethodGet, "/api/budgets", nil, adminUser)
	w = httptest.NewRecorder()
	handler.GetBudgets(w, req)

	res = w.Result()
	defer res.Body.Close()
	response = decodeResponse(t, res)
	assert.Len(t, response["budgets"].([]interface{}), 2)
}

func TestUpdateBudget_NotOwner(t *testing.T) {
	handler, repo := newBudgetFixture()
	repo.Budgets = []domain.Budget{
		{ID: "b1", UserID: "user-1", Category: "Food", Limit: mustDecimal(t, "100")},
	}

	req := newAuthedRequest(http.MethodPut, "/api/budgets/b1", jsonBody(t, map[string]interface{}{
		"limit": 500,
	}), otherUser)
	req.SetPathValue("id", "b1")
	w := httptest.NewRecorder()

	handler.UpdateBudget(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusForbidden, res.StatusCode)
}

func TestDeleteBudget_NotFound(t *testing.T) {
	handler, _ := newBudgetFixture()

	req := newAuthedRequest(http.MethodDelete, "/api/budgets/missing", nil, regularUser)
	req.SetPathValue("id", "missing")
	w := httptest.NewRecorder()

	handler.DeleteBudget(w, req)

	res := w.Result()
	defer res.Body.Close()
	assert.Equal(t, http.StatusNotFound, res.StatusCode)
}
