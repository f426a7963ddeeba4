package models

// VerifyRequest is the body accepted by the verification relay
type VerifyRequest struct {
	Token string `json:"token"`
}

// VerifyResponse is the body returned by the verification relay
type VerifyResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// HealthCheckResponse returns the health check response duh
type HealthCheckResponse struct {
	Alive bool `json:"alive"`
}
