package middleware

import (
	"encoding/json"
	"net/http"
)

// writeJSONError emits the middleware layer's error body. It matches the
// handler package's {"error": ...} shape so clients see one format
// regardless of which layer rejected the request.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
