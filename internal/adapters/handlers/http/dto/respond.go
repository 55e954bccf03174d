package dto

import (
	"encoding/json"
	"net/http"
)

// Cache policies of the gallery responses
const (
	CacheListing = "public, s-maxage=3600, stale-while-revalidate=86400"
	CacheUsage   = "public, s-maxage=60, stale-while-revalidate=300"
	CacheNone    = "no-store"
)

// WriteJSON writes body as JSON with status
func WriteJSON(w http.ResponseWriter, status int, body interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}
