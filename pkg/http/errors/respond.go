package errors

import (
	"encoding/json"
	"net/http"
)

// RespondSuccess writes a JSON body containing "status":"success" plus the
// given fields. Clients (including the smoke-test driver) match on that exact
// marker, so every 2xx response must go through here.
func RespondSuccess(w http.ResponseWriter, status int, fields map[string]interface{}) {
	body := map[string]interface{}{"status": "success"}
	for k, v := range fields {
		if k == "status" {
			continue
		}
		body[k] = v
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
