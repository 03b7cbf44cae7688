// Command smoke runs an end-to-end check against a running server: it signs up, posts a job,
// applies to it until the daily limit is hit and walks the paginated job list.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

type client struct {
	base  string
	token string
	http  *http.Client
}

func (c *client) do(method, path string, body interface{}, out interface{}) (*http.Response, error) {
	var payload io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, strings.TrimRight(c.base, "/")+path, payload)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp, err
	}
	if out != nil && len(raw) > 0 {
		if err := json.Unmarshal(raw, out); err != nil {
			return resp, fmt.Errorf("%s %s: decode %q: %w", method, path, raw, err)
		}
	}
	return resp, nil
}

func (c *client) expect(method, path string, body interface{}, out interface{}, status int) *http.Response {
	resp, err := c.do(method, path, body, out)
	if err != nil {
		log.Fatalf("%s %s: %v", method, path, err)
	}
	if resp.StatusCode != status {
		log.Fatalf("%s %s: status %d, want %d", method, path, resp.StatusCode, status)
	}
	return resp
}

func main() {
	base := flag.String("base", "http://localhost:8080", "Server base URL")
	limit := flag.Int("limit", 5, "Expected applications per job per day")
	flag.Parse()

	c := &client{base: *base, http: &http.Client{Timeout: 10 * time.Second}}
	username := "smoke_" + uuid.NewString()[:8]
	password := uuid.NewString()

	c.expect(http.MethodPost, "/v1/users", map[string]string{
		"username": username, "password": password, "first_name": "Smoke", "last_name": "Test",
	}, nil, http.StatusCreated)

	var tokens struct {
		Access string `json:"access"`
	}
	c.expect(http.MethodPost, "/v1/token", map[string]string{"username": username, "password": password}, &tokens, http.StatusOK)
	c.token = tokens.Access

	var business struct {
		ID uint `json:"business_id"`
	}
	c.expect(http.MethodPost, "/v1/business", map[string]string{
		"company_name": "Smoke " + username, "website": "https://smoke.example",
	}, &business, http.StatusCreated)

	var job struct {
		ID   uint   `json:"job_id"`
		Rate string `json:"daily_rate_range"`
	}
	resp := c.expect(http.MethodPost, fmt.Sprintf("/v1/business/%d/jobs", business.ID), map[string]interface{}{
		"title": "Smoke Tester", "daily_rate_range": 22.45,
		"availability_ids": []string{"1"}, "location_ids": []string{"2"}, "skills": []string{"go"},
	}, &job, http.StatusCreated)
	log.Printf("job %d created at %s with rate %s", job.ID, resp.Header.Get("Location"), job.Rate)

	var professional struct {
		ID uint `json:"professional_id"`
	}
	c.expect(http.MethodPost, "/v1/professionals", map[string]interface{}{
		"full_name": "Smoke Tester", "email": username + "@example.com", "title": "QA",
		"daily_rate_range": "100", "availability_ids": []string{}, "location_ids": []string{},
	}, &professional, http.StatusCreated)

	apply := fmt.Sprintf("/v1/professionals/%d/job-apply/%d", professional.ID, job.ID)
	for i := 0; i < *limit; i++ {
		c.expect(http.MethodPut, apply, nil, nil, http.StatusOK)
	}
	var rejected []string
	c.expect(http.MethodPut, apply, nil, &rejected, http.StatusBadRequest)
	log.Printf("application %d rejected: %v", *limit+1, rejected)

	resp = c.expect(http.MethodGet, "/v1/jobs?page_size=1", nil, nil, http.StatusOK)
	log.Printf("jobs total %s, links %s", resp.Header.Get("X-Total-Count"), resp.Header.Get("Link"))

	c.expect(http.MethodPost, "/v1/token/logout", nil, nil, http.StatusOK)
	c.expect(http.MethodGet, "/v1/jobs", nil, nil, http.StatusUnauthorized)

	log.Println("smoke test passed")
}
