package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"crebito/internal/services/ledger"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) Apply(ctx context.Context, accountID int64, candidate ledger.TransactionRequest) (*ledger.Balance, error) {
	args := m.Called(ctx, accountID, candidate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Balance), args.Error(1)
}

func (m *MockLedgerService) Statement(ctx context.Context, accountID int64) (*ledger.Statement, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*ledger.Statement), args.Error(1)
}

func newTestApp(svc ledger.Service) *fiber.App {
	app := fiber.New()
	handler := NewAccountHandler(svc)
	app.Post("/accounts/:id/transactions", handler.CreateTransaction)
	app.Get("/accounts/:id/statement", handler.GetStatement)
	return app
}

func postTransaction(t *testing.T, app *fiber.App, id, body string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", "/accounts/"+id+"/transactions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp.StatusCode, decoded
}

func TestAccountHandler_CreateTransaction(t *testing.T) {
	t.Run("successful credit", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("Apply", mock.Anything, int64(1), ledger.TransactionRequest{
			Value: 100, Kind: "credit", Description: "dep",
		}).Return(&ledger.Balance{Limit: 1000, Balance: 100}, nil)

		status, body := postTransaction(t, newTestApp(svc),
			"1", `{"value":100,"kind":"credit","description":"dep"}`)

		assert.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, float64(1000), body["limit"])
		assert.Equal(t, float64(100), body["balance"])
		svc.AssertExpectations(t)
	})

	t.Run("fractional value rejected before service", func(t *testing.T) {
		svc := new(MockLedgerService)

		status, _ := postTransaction(t, newTestApp(svc),
			"1", `{"value":1.2,"kind":"debit","description":"dep"}`)

		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		svc.AssertNotCalled(t, "Apply")
	})

	t.Run("malformed body", func(t *testing.T) {
		svc := new(MockLedgerService)

		status, _ := postTransaction(t, newTestApp(svc), "1", `{"value":`)

		assert.Equal(t, fiber.StatusUnprocessableEntity, status)
		svc.AssertNotCalled(t, "Apply")
	})

	t.Run("non-numeric account id", func(t *testing.T) {
		svc := new(MockLedgerService)

		status, _ := postTransaction(t, newTestApp(svc),
			"abc", `{"value":100,"kind":"credit","description":"dep"}`)

		assert.Equal(t, fiber.StatusNotFound, status)
		svc.AssertNotCalled(t, "Apply")
	})

	t.Run("service error mapping", func(t *testing.T) {
		tests := []struct {
			name       string
			err        error
			wantStatus int
		}{
			{"insufficient funds", ledger.ErrInsufficientFunds, fiber.StatusUnprocessableEntity},
			{"invalid kind", ledger.ErrInvalidTransactionKind, fiber.StatusUnprocessableEntity},
			{"invalid description", ledger.ErrInvalidDescription, fiber.StatusUnprocessableEntity},
			{"invalid amount", ledger.ErrInvalidAmount, fiber.StatusUnprocessableEntity},
			{"account not found", ledger.ErrAccountNotFound, fiber.StatusNotFound},
			{"lock timeout", ledger.ErrLockTimeout, fiber.StatusServiceUnavailable},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				svc := new(MockLedgerService)
				svc.On("Apply", mock.Anything, int64(1), mock.Anything).Return(nil, tt.err)

				status, body := postTransaction(t, newTestApp(svc),
					"1", `{"value":100,"kind":"credit","description":"dep"}`)

				assert.Equal(t, tt.wantStatus, status)
				assert.NotEmpty(t, body["error"])
				svc.AssertExpectations(t)
			})
		}
	})
}

func TestAccountHandler_GetStatement(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("Statement", mock.Anything, int64(3)).Return(&ledger.Statement{
			Balance: ledger.StatementBalance{Total: -50, Limit: 1000},
			RecentTransactions: []ledger.StatementEntry{
				{Value: 50, Kind: "debit", Description: "rent"},
			},
		}, nil)

		req := httptest.NewRequest("GET", "/accounts/3/statement", nil)
		resp, err := newTestApp(svc).Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)

		var decoded ledger.Statement
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
		assert.Equal(t, int64(-50), decoded.Balance.Total)
		require.Len(t, decoded.RecentTransactions, 1)
		svc.AssertExpectations(t)
	})

	t.Run("account not found", func(t *testing.T) {
		svc := new(MockLedgerService)
		svc.On("Statement", mock.Anything, int64(9)).Return(nil, ledger.ErrAccountNotFound)

		req := httptest.NewRequest("GET", "/accounts/9/statement", nil)
		resp, err := newTestApp(svc).Test(req)
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
		svc.AssertExpectations(t)
	})
}
