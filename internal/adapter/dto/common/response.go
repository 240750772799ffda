package common

// ErrorResponse is the body of every error response
type ErrorResponse struct {
	Code    interface{}       `json:"code,omitempty"`
	Message string            `json:"message,omitempty"`
	Detail  string            `json:"detail,omitempty"`
	Info    string            `json:"info,omitempty"`
	Details map[string]string `json:"details,omitempty"`
}

// HealthResponse is the health check body
type HealthResponse struct {
	Status      string `json:"status"`
	Environment string `json:"environment"`
	Store       string `json:"store"`
}
