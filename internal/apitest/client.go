package apitest

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// client is a thin JSON helper over the blog-post endpoints.
type client struct {
	baseURL    string
	httpClient *http.Client
}

func newClient(baseURL string, httpClient *http.Client) *client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &client{baseURL: baseURL, httpClient: httpClient}
}

// do issues a request with an optional JSON body and returns the status
// code and raw response body.
func (c *client) do(method, path string, payload interface{}) (int, []byte, error) {
	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		body = bytes.NewReader(data)
	}
	req, err := http.NewRequest(method, c.baseURL+path, body)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, data, nil
}

func (c *client) createPost(fields map[string]interface{}) (int, map[string]interface{}, error) {
	status, data, err := c.do(http.MethodPost, "/blog-posts", fields)
	if err != nil {
		return 0, nil, err
	}
	return status, decodeObject(data), nil
}

func (c *client) updatePost(id interface{}, fields map[string]interface{}) (int, map[string]interface{}, error) {
	status, data, err := c.do(http.MethodPut, fmt.Sprintf("/blog-posts/%v", id), fields)
	if err != nil {
		return 0, nil, err
	}
	return status, decodeObject(data), nil
}

func (c *client) deletePost(id interface{}) (int, []byte, error) {
	return c.do(http.MethodDelete, fmt.Sprintf("/blog-posts/%v", id), nil)
}

func (c *client) listPosts() (int, []map[string]interface{}, error) {
	status, data, err := c.do(http.MethodGet, "/blog-posts", nil)
	if err != nil {
		return 0, nil, err
	}
	var posts []map[string]interface{}
	if err := json.Unmarshal(data, &posts); err != nil {
		return status, nil, fmt.Errorf("list response is not a JSON array: %w", err)
	}
	return status, posts, nil
}

func decodeObject(data []byte) map[string]interface{} {
	var obj map[string]interface{}
	if json.Unmarshal(data, &obj) != nil {
		return nil
	}
	return obj
}
