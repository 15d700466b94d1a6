package response

import (
	"encoding/json"
	"net/http"
)

// The wire format is intentionally flat: success bodies are the resource (or a
// {message, payslip} pair on creation) and error bodies are {"error": "..."}.

type ErrorBody struct {
	Error string `json:"error"`
}

type CreatedBody struct {
	Message string      `json:"message"`
	Payslip interface{} `json:"payslip"`
}

func writeJSON(w http.ResponseWriter, statusCode int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		_ = json.NewEncoder(w).Encode(ErrorBody{Error: "Failed to encode response"})
	}
}

// OK writes a 200 with the payload as the whole body.
func OK(w http.ResponseWriter, payload interface{}) {
	writeJSON(w, http.StatusOK, payload)
}

// Created writes a 201 with the stored payslip.
func Created(w http.ResponseWriter, message string, payslip interface{}) {
	writeJSON(w, http.StatusCreated, CreatedBody{Message: message, Payslip: payslip})
}

// Error writes an error body with the given status code.
func Error(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, ErrorBody{Error: message})
}
