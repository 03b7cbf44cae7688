// Package testutil provides utility functions for testing HTTP handlers.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
)

// MakeJSONRequest is a helper function for making JSON requests in tests. A nil body sends no
// payload and an empty authToken sends no Authorization header. The body is decoded as an object.
func MakeJSONRequest(body interface{}, authToken string, r http.Handler, endpoint string, method string) (*httptest.ResponseRecorder, map[string]interface{}) {
	rec := send(body, authToken, r, endpoint, method)

	resp := map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

// MakeJSONListRequest is MakeJSONRequest for endpoints answering with a JSON array.
func MakeJSONListRequest(body interface{}, authToken string, r http.Handler, endpoint string, method string) (*httptest.ResponseRecorder, []map[string]interface{}) {
	rec := send(body, authToken, r, endpoint, method)

	resp := []map[string]interface{}{}
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)

	return rec, resp
}

func send(body interface{}, authToken string, r http.Handler, endpoint string, method string) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}

	req, _ := http.NewRequest(method, endpoint, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

// IDs collects the numeric field key of every item, in order.
func IDs(items []map[string]interface{}, key string) []uint {
	ids := make([]uint, 0, len(items))
	for _, item := range items {
		if v, ok := item[key].(float64); ok {
			ids = append(ids, uint(v))
		}
	}
	return ids
}
