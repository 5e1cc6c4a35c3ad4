package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// portalClient talks to a running portal server. Each form submission is
// made from a fresh view that is closed afterwards.
type portalClient struct {
	base string
	http *http.Client
}

func newPortalClient(base string) *portalClient {
	return &portalClient{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

type apiError struct {
	Status int
	Error  string              `json:"error"`
	Errors map[string][]string `json:"errors"`
}

func (e *apiError) String() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("status %d: %s", e.Status, e.Error)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "status %d:", e.Status)
	for field, msgs := range e.Errors {
		fmt.Fprintf(&b, "\n  %s: %s", field, strings.Join(msgs, "; "))
	}
	return b.String()
}

type notification struct {
	IsOpen  bool   `json:"isOpen"`
	Kind    string `json:"type"`
	Title   string `json:"title"`
	Message string `json:"message"`
}

type submitResult struct {
	Result       string       `json:"result"`
	Notification notification `json:"notification"`
}

func (c *portalClient) do(method, path string, in, out any) error {
	var body io.Reader
	if in != nil {
		data, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, c.base+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		ae := &apiError{Status: resp.StatusCode}
		_ = json.NewDecoder(resp.Body).Decode(ae)
		return fmt.Errorf("%s", ae.String())
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// submit posts form to the view-scoped action.
func (c *portalClient) submit(action string, form any) (*submitResult, error) {
	var view struct {
		ID string `json:"id"`
	}
	if err := c.do(http.MethodPost, "/views", nil, &view); err != nil {
		return nil, fmt.Errorf("open view: %w", err)
	}
	defer c.do(http.MethodDelete, "/views/"+view.ID, nil, nil)

	var res submitResult
	if err := c.do(http.MethodPost, "/views/"+view.ID+"/"+action, form, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
