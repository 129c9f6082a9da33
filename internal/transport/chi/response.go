package chi

import (
	"encoding/json"
	"net/http"
)

type errorCode string

const (
	codeBadRequest             errorCode = "bad_request"
	codeValidationFailed       errorCode = "validation_failed"
	codeUnauthorized           errorCode = "unauthorized"
	codeEmbeddingProviderError errorCode = "embedding_provider_error"
	codeConfigurationError     errorCode = "configuration_error"
	codeInternalError          errorCode = "internal_error"
)

// errorResponse is the wire shape for all error replies. Messages stay
// generic; internal causes live in server logs only.
type errorResponse struct {
	Code    errorCode `json:"code"`
	Message string    `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, code errorCode, message string) {
	writeJSON(w, status, errorResponse{Code: code, Message: message})
}
