package dto

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/moneykeeper/backend/internal/domain/entity"
)

func bindCreateTransaction(t *testing.T, body string) (CreateTransactionRequest, error) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/transactions", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	var req CreateTransactionRequest
	err := c.ShouldBindJSON(&req)
	return req, err
}

func TestCreateTransactionRequestAmountBinding(t *testing.T) {
	userID := uuid.New().String()
	categoryID := uuid.New().String()

	t.Run("a zero amount is accepted", func(t *testing.T) {
		body := `{"userId":"` + userID + `","categoryId":"` + categoryID + `","amount":0,"kind":"expense"}`
		req, err := bindCreateTransaction(t, body)
		if err != nil {
			t.Fatalf("binding rejected a zero amount: %v", err)
		}
		if req.Amount == nil {
			t.Fatal("expected amount to be set")
		}
		if *req.Amount != 0 {
			t.Errorf("expected amount 0, got %v", *req.Amount)
		}
	})

	t.Run("a negative amount is accepted", func(t *testing.T) {
		body := `{"userId":"` + userID + `","categoryId":"` + categoryID + `","amount":-50000,"kind":"expense"}`
		req, err := bindCreateTransaction(t, body)
		if err != nil {
			t.Fatalf("binding rejected a negative amount: %v", err)
		}
		if req.Amount == nil || *req.Amount != -50000 {
			t.Errorf("unexpected amount: %v", req.Amount)
		}
	})

	t.Run("a missing amount is rejected", func(t *testing.T) {
		body := `{"userId":"` + userID + `","categoryId":"` + categoryID + `","kind":"expense"}`
		if _, err := bindCreateTransaction(t, body); err == nil {
			t.Fatal("binding accepted a request without an amount")
		}
	})
}

func marshalledData(t *testing.T, payload any) any {
	t.Helper()
	raw, err := json.Marshal(NewSuccessResponse(payload))
	if err != nil {
		t.Fatalf("failed to marshal envelope: %v", err)
	}
	var envelope map[string]any
	if err := json.Unmarshal(raw, &envelope); err != nil {
		t.Fatalf("failed to unmarshal envelope: %v", err)
	}
	return envelope["data"]
}

func TestListResponsesAreBareArrays(t *testing.T) {
	ownerID := uuid.New()
	categories := []*entity.Category{
		entity.NewCategory("Du lịch", entity.CategoryKindExpense, "flight", "0xFF29B6F6", ownerID),
	}

	t.Run("category listing", func(t *testing.T) {
		data, ok := marshalledData(t, ToCategoryListResponse(categories)).([]any)
		if !ok {
			t.Fatal("expected data to be an array")
		}
		if len(data) != 1 {
			t.Fatalf("expected 1 element, got %d", len(data))
		}
		first, ok := data[0].(map[string]any)
		if !ok {
			t.Fatal("expected array elements to be objects")
		}
		if first["name"] != "Du lịch" {
			t.Errorf("unexpected category name: %v", first["name"])
		}
	})

	t.Run("transaction listing", func(t *testing.T) {
		txn := entity.NewTransaction(
			ownerID,
			categories[0].ID,
			decimal.NewFromInt(85000),
			entity.TransactionKindExpense,
			time.Date(2026, 2, 10, 12, 15, 0, 0, time.UTC),
			"ăn trưa",
			nil,
			entity.DefaultCurrency,
		)
		listing := []*entity.TransactionWithCategory{
			{Transaction: txn, Category: categories[0]},
		}

		data, ok := marshalledData(t, ToTransactionListResponse(listing)).([]any)
		if !ok {
			t.Fatal("expected data to be an array")
		}
		first, ok := data[0].(map[string]any)
		if !ok {
			t.Fatal("expected array elements to be objects")
		}
		if first["amount"] != "85000" {
			t.Errorf("unexpected amount: %v", first["amount"])
		}
		category, ok := first["category"].(map[string]any)
		if !ok {
			t.Fatalf("expected a resolved category object, got %v", first["category"])
		}
		if category["name"] != "Du lịch" {
			t.Errorf("unexpected category name: %v", category["name"])
		}
	})

	t.Run("empty listing stays an array", func(t *testing.T) {
		data, ok := marshalledData(t, ToCategoryListResponse(nil)).([]any)
		if !ok {
			t.Fatal("expected data to be an array")
		}
		if len(data) != 0 {
			t.Fatalf("expected no elements, got %d", len(data))
		}
	})
}
