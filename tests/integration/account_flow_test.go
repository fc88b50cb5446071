package integration

import (
	"net/http"
	"testing"
)

func TestAccountFlow_BalancesAndSelection(t *testing.T) {
	app := setupApp(t)

	checking := app.mustCreate(t, "/api/v1/accounts", `{"name":"Checking","startingBalance":"100"}`, "account")
	savings := app.mustCreate(t, "/api/v1/accounts", `{"name":"Savings","startingBalance":"0"}`, "account")
	checkingID := checking["id"].(string)
	savingsID := savings["id"].(string)

	// Without a selection a transaction must name its account.
	rec := app.request("POST", "/api/v1/transactions", `{"description":"Coffee","amount":"-3"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	// Selecting savings makes it the default account.
	if rec := app.request("POST", "/api/v1/selection/"+savingsID+"/toggle", ""); rec.Code != http.StatusOK {
		t.Fatalf("toggle failed: %d", rec.Code)
	}
	tx := app.mustCreate(t, "/api/v1/transactions", `{"description":"Interest","amount":"5","date":"2024-01-31"}`, "transaction")
	if tx["accountId"] != savingsID {
		t.Errorf("expected default account %s, got %v", savingsID, tx["accountId"])
	}

	app.mustCreate(t, "/api/v1/transactions",
		`{"description":"Groceries","amount":"-30","date":"2024-02-01","accountId":"`+checkingID+`","tags":"food"}`, "transaction")

	rec = app.request("GET", "/api/v1/accounts/"+checkingID, "")
	if got := parseJSON(t, rec)["account"].(map[string]interface{})["balance"]; got != 70.0 {
		t.Errorf("expected checking balance 70, got %v", got)
	}

	// Scoped to the selection only the savings transaction is visible.
	rec = app.request("GET", "/api/v1/transactions?scope=selected", "")
	if got := parseJSON(t, rec)["total_items"]; got != 1.0 {
		t.Errorf("expected 1 selected transaction, got %v", got)
	}

	// Deleting an account keeps its transactions and drops it from the selection.
	if rec := app.request("DELETE", "/api/v1/accounts/"+savingsID, ""); rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	rec = app.request("GET", "/api/v1/transactions", "")
	if got := parseJSON(t, rec)["total_items"]; got != 2.0 {
		t.Errorf("expected transactions to survive, got %v", got)
	}
	rec = app.request("GET", "/api/v1/selection", "")
	if ids := parseJSON(t, rec)["accountIds"].([]interface{}); len(ids) != 0 {
		t.Errorf("expected empty selection, got %v", ids)
	}
}
