package utilities

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
)

// SimulateAPICall is a helper function to simulate an API call to a gin handler function.
// Each setup func runs on the test context before the handler, e.g. to set path params or the caller.
// It returns the HTTP response recorder, the JSON object response (nil for an empty body), and any
// error encountered.
func SimulateAPICall(
	handlerFunc gin.HandlerFunc,
	route string,
	method string,
	body interface{},
	setup ...func(*gin.Context),
) (*httptest.ResponseRecorder, map[string]interface{}, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, nil, err
	}
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	req, err := http.NewRequest(method, route, bytes.NewReader(b))
	if err != nil {
		return nil, nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	for _, fn := range setup {
		fn(c)
	}
	handlerFunc(c)

	if rec.Body.Len() == 0 {
		return rec, nil, nil
	}
	var resp map[string]interface{}
	err = json.Unmarshal(rec.Body.Bytes(), &resp)
	if err != nil {
		return rec, nil, err
	}
	return rec, resp, nil
}
