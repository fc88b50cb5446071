package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"finledger/internal/ledger"
	"finledger/internal/services"
	"finledger/internal/testutil"
)

func setupTransactionRouter(store *ledger.Store) *gin.Engine {
	handler := NewTransactionHandler(services.NewTransactionService(store))
	r := newTestRouter()
	r.POST("/transactions", handler.CreateTransaction)
	r.GET("/transactions", handler.GetTransactions)
	r.GET("/transactions/:id", handler.GetTransactionByID)
	r.DELETE("/transactions/:id", handler.DeleteTransaction)
	return r
}

func TestTransactionHandler_CreateTransaction(t *testing.T) {
	t.Run("returns 201 with normalized tags", func(t *testing.T) {
		r := setupTransactionRouter(testutil.NewTestStore(t))

		rec := doRequest(r, "POST", "/transactions",
			`{"date":"2024-01-05","description":"  Lunch ","amount":"-12.5","tags":"food, lunch,,food"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["description"] != "Lunch" {
			t.Errorf("expected trimmed description, got %v", tx["description"])
		}
		tags := tx["tags"].([]interface{})
		if len(tags) != 2 || tags[0] != "food" || tags[1] != "lunch" {
			t.Errorf("unexpected tags %v", tags)
		}
	})

	t.Run("accepts a numeric amount and a tag list", func(t *testing.T) {
		r := setupTransactionRouter(testutil.NewTestStore(t))

		rec := doRequest(r, "POST", "/transactions",
			`{"date":"2024-01-05","description":"Coffee","amount":-3.25,"tags":["food"," cafe ","food"]}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["amount"] != -3.25 {
			t.Errorf("expected amount -3.25, got %v", tx["amount"])
		}
		tags := tx["tags"].([]interface{})
		if len(tags) != 2 || tags[0] != "food" || tags[1] != "cafe" {
			t.Errorf("unexpected tags %v", tags)
		}
	})

	t.Run("returns 400 on a boolean amount", func(t *testing.T) {
		r := setupTransactionRouter(testutil.NewTestStore(t))

		rec := doRequest(r, "POST", "/transactions", `{"description":"Coffee","amount":true}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("defaults the date to today", func(t *testing.T) {
		r := setupTransactionRouter(testutil.NewTestStore(t))

		rec := doRequest(r, "POST", "/transactions", `{"description":"Coffee","amount":"-3"}`)

		tx := parseJSON(t, rec)["transaction"].(map[string]interface{})
		if tx["date"] != "2024-03-15" {
			t.Errorf("expected 2024-03-15, got %v", tx["date"])
		}
	})

	t.Run("returns 400 on non-numeric amount", func(t *testing.T) {
		r := setupTransactionRouter(testutil.NewTestStore(t))

		rec := doRequest(r, "POST", "/transactions", `{"description":"Coffee","amount":"abc"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
	})

	t.Run("returns 400 on recurring without frequency", func(t *testing.T) {
		r := setupTransactionRouter(testutil.NewTestStore(t))

		rec := doRequest(r, "POST", "/transactions", `{"description":"Rent","amount":"-400","isRecurring":true}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
	})
}

func TestTransactionHandler_GetTransactions(t *testing.T) {
	store := testutil.NewTestStore(t)
	a := testutil.CreateTestAccount(t, store, "0")
	b := testutil.CreateTestAccount(t, store, "0")
	testutil.CreateTestTransaction(t, store, a.ID, "2024-01-01", "-10", "food")
	testutil.CreateTestTransaction(t, store, a.ID, "2024-02-01", "-60", "food", "dinner")
	testutil.CreateTestTransaction(t, store, b.ID, "2024-02-10", "900", "salary")
	r := setupTransactionRouter(store)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"no filters", "", 3},
		{"by account", "?account_ids=" + b.ID, 1},
		{"by date range", "?from=2024-02-01&to=2024-02-28", 2},
		{"by tags", "?tags=food,dinner", 1},
		{"by amount", "?amount_op=lt&amount=-20", 1},
		{"by amount between", "?amount_op=between&amount=-70,-5", 2},
		{"selected with empty selection", "?scope=selected", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doRequest(r, "GET", "/transactions"+tt.query, "")

			if rec.Code != http.StatusOK {
				t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
			}
			if got := parseJSON(t, rec)["total_items"]; got != float64(tt.want) {
				t.Errorf("expected %d transactions, got %v", tt.want, got)
			}
		})
	}

	t.Run("returns 400 on unknown amount operator", func(t *testing.T) {
		rec := doRequest(r, "GET", "/transactions?amount_op=eq&amount=1", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})

	t.Run("returns 400 on malformed dates", func(t *testing.T) {
		for _, query := range []string{"?from=garbage", "?to=2024-13-01", "?from=01/02/2024"} {
			rec := doRequest(r, "GET", "/transactions"+query, "")

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("%s: expected 400, got %d", query, rec.Code)
			}
			result := parseJSON(t, rec)
			assertErrorCode(t, result, "INVALID_INPUT")
			if msg := result["error"].(map[string]interface{})["message"]; msg != "from must be a date in YYYY-MM-DD format" && msg != "to must be a date in YYYY-MM-DD format" {
				t.Errorf("%s: unexpected message %v", query, msg)
			}
		}
	})

	t.Run("returns 400 on unknown scope", func(t *testing.T) {
		rec := doRequest(r, "GET", "/transactions?scope=mine", "")

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "INVALID_INPUT")
	})
}

func TestTransactionHandler_GetAndDelete(t *testing.T) {
	store := testutil.NewTestStore(t)
	tx := testutil.CreateTestTransaction(t, store, "", "2024-01-01", "-10")
	r := setupTransactionRouter(store)

	if rec := doRequest(r, "GET", "/transactions/"+tx.ID, ""); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := doRequest(r, "DELETE", "/transactions/"+tx.ID, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec := doRequest(r, "GET", "/transactions/"+tx.ID, "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	assertErrorCode(t, parseJSON(t, rec), "TRANSACTION_NOT_FOUND")
}
