package apitest

import (
	"fmt"
	"net/http"
	"reflect"
)

// A scenario exercises one observable contract of the blog-post API
// against a live service.
type scenario struct {
	name string
	run  func(c *client) error
}

var scenarios = []scenario{
	{"create/assigns-unique-ids", testCreateAssignsUniqueIDs},
	{"create/echoes-fields-plus-id", testCreateEchoesFields},
	{"create/missing-field-returns-400", testCreateMissingField},
	{"list/contains-created-posts", testListContainsCreated},
	{"update/full-replace", testUpdateFullReplace},
	{"update/unknown-id-returns-404", testUpdateUnknownID},
	{"delete/removes-post-and-retires-id", testDeleteRemovesPost},
}

// RunSuite executes every scenario against the service at baseURL and
// returns one result per scenario. Scenarios mutate the target store, so
// the suite should run against a disposable service instance.
func RunSuite(baseURL string, httpClient *http.Client) Results {
	c := newClient(baseURL, httpClient)
	results := make(Results, 0, len(scenarios))
	for _, s := range scenarios {
		results = append(results, Result{Name: s.name, Err: s.run(c)})
	}
	return results
}

func testCreateAssignsUniqueIDs(c *client) error {
	seen := map[float64]bool{}
	for i := 0; i < 3; i++ {
		status, body, err := c.createPost(map[string]interface{}{
			"title":   fmt.Sprintf("post %d", i),
			"content": "some content",
			"author":  "suite",
		})
		if err != nil {
			return err
		}
		if status != http.StatusCreated {
			return fmt.Errorf("expected 201, got %d", status)
		}
		id, ok := body["id"].(float64)
		if !ok || id == 0 {
			return fmt.Errorf("created post has no usable id: %v", body["id"])
		}
		if seen[id] {
			return fmt.Errorf("id %v assigned twice", id)
		}
		seen[id] = true
	}
	return nil
}

func testCreateEchoesFields(c *client) error {
	fields := map[string]interface{}{
		"title":   "blogpost 1",
		"content": "my first blog post",
		"author":  "steve romm",
	}
	status, body, err := c.createPost(fields)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("expected 201, got %d", status)
	}
	return equalsWithID(body, fields, body["id"])
}

func testCreateMissingField(c *client) error {
	for _, missing := range []string{"title", "content", "author"} {
		fields := map[string]interface{}{
			"title":   "t",
			"content": "c",
			"author":  "a",
		}
		delete(fields, missing)
		status, _, err := c.createPost(fields)
		if err != nil {
			return err
		}
		if status != http.StatusBadRequest {
			return fmt.Errorf("create without %s: expected 400, got %d", missing, status)
		}
	}
	return nil
}

func testListContainsCreated(c *client) error {
	fields := map[string]interface{}{
		"title":       "listed post",
		"content":     "should appear in list",
		"author":      "suite",
		"publishdate": "march 1, 2019",
	}
	status, created, err := c.createPost(fields)
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("expected 201, got %d", status)
	}
	status, posts, err := c.listPosts()
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("expected 200, got %d", status)
	}
	for _, p := range posts {
		if p["id"] == created["id"] {
			return equalsWithID(p, fields, created["id"])
		}
	}
	return fmt.Errorf("created post %v missing from list", created["id"])
}

func testUpdateFullReplace(c *client) error {
	status, created, err := c.createPost(map[string]interface{}{
		"title":   "blogpost 1",
		"content": "my first blog post",
		"author":  "steve romm",
	})
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("expected 201, got %d", status)
	}
	id := created["id"]

	replacement := map[string]interface{}{
		"title":       "Blog post EDIT",
		"content":     "This is a revised blogpost",
		"author":      "Steve Romm",
		"publishdate": "april 7, 2018",
	}
	status, updated, err := c.updatePost(id, replacement)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("expected 200, got %d", status)
	}
	if err := equalsWithID(updated, replacement, id); err != nil {
		return err
	}

	// replacing again without publishdate must drop the field, not retain it
	trimmed := map[string]interface{}{
		"title":   "Blog post EDIT 2",
		"content": "publishdate removed",
		"author":  "Steve Romm",
	}
	status, updated, err = c.updatePost(id, trimmed)
	if err != nil {
		return err
	}
	if status != http.StatusOK {
		return fmt.Errorf("expected 200, got %d", status)
	}
	if _, present := updated["publishdate"]; present {
		return fmt.Errorf("publishdate retained after full replace: %v", updated)
	}
	return equalsWithID(updated, trimmed, id)
}

func testUpdateUnknownID(c *client) error {
	status, _, err := c.updatePost(999999, map[string]interface{}{
		"title":   "t",
		"content": "c",
		"author":  "a",
	})
	if err != nil {
		return err
	}
	if status != http.StatusNotFound {
		return fmt.Errorf("expected 404, got %d", status)
	}
	return nil
}

func testDeleteRemovesPost(c *client) error {
	status, created, err := c.createPost(map[string]interface{}{
		"title":   "doomed post",
		"content": "will be deleted",
		"author":  "suite",
	})
	if err != nil {
		return err
	}
	if status != http.StatusCreated {
		return fmt.Errorf("expected 201, got %d", status)
	}
	id := created["id"]

	status, body, err := c.deletePost(id)
	if err != nil {
		return err
	}
	if status != http.StatusNoContent {
		return fmt.Errorf("expected 204, got %d", status)
	}
	if len(body) != 0 {
		return fmt.Errorf("expected empty body on delete, got %q", body)
	}

	_, posts, err := c.listPosts()
	if err != nil {
		return err
	}
	for _, p := range posts {
		if p["id"] == id {
			return fmt.Errorf("deleted post %v still listed", id)
		}
	}

	status, _, err = c.deletePost(id)
	if err != nil {
		return err
	}
	if status != http.StatusNotFound {
		return fmt.Errorf("second delete: expected 404, got %d", status)
	}
	return nil
}

// equalsWithID checks that got deep-equals want merged with the given id.
func equalsWithID(got, want map[string]interface{}, id interface{}) error {
	expected := map[string]interface{}{"id": id}
	for k, v := range want {
		expected[k] = v
	}
	if !reflect.DeepEqual(got, expected) {
		return fmt.Errorf("response mismatch:\n  got  %v\n  want %v", got, expected)
	}
	return nil
}
