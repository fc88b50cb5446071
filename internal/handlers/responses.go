package handlers

// ErrorDetail represents the inner error object in an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// SelectionResponse lists the selected account ids in selection order.
type SelectionResponse struct {
	AccountIDs []string `json:"accountIds"`
}

// ToggleResponse reports the selection state of one account after a toggle.
type ToggleResponse struct {
	AccountID string `json:"accountId"`
	Selected  bool   `json:"selected"`
}

// HealthResponse is returned by the health check.
type HealthResponse struct {
	Status string `json:"status"`
}
