package api

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/inkwellhq/inkwell/internal/auth"
	"github.com/inkwellhq/inkwell/internal/models"
)

type commentTestEnv struct {
	engine   *gin.Engine
	comments *fakeCommentStore
	auth     *auth.Service
}

func newCommentTestEnv() *commentTestEnv {
	gin.SetMode(gin.TestMode)
	comments := newFakeCommentStore()
	authService := newTestAuth()
	handler := NewCommentHandler(comments)

	engine := gin.New()
	engine.GET("/api/posts/:id/comments", handler.ListByPost)

	authorized := engine.Group("/api")
	authorized.Use(RequireAuth(authService))
	authorized.POST("/comments", handler.Create)

	return &commentTestEnv{engine: engine, comments: comments, auth: authService}
}

func (env *commentTestEnv) bearer(t *testing.T, user *models.User) map[string]string {
	t.Helper()
	env.comments.authors[user.ID] = user.Username
	token, err := env.auth.IssueToken(user)
	if err != nil {
		t.Fatalf("Failed to issue token: %v", err)
	}
	return map[string]string{"Authorization": "Bearer " + token}
}

func TestCreateComment(t *testing.T) {
	env := newCommentTestEnv()
	headers := env.bearer(t, &models.User{ID: 5, Username: "a", Role: models.RoleUser})

	w := doJSON(t, env.engine, http.MethodPost, "/api/comments", map[string]interface{}{
		"content": "Great insights!",
		"postId":  3,
	}, headers)
	if w.Code != http.StatusCreated {
		t.Fatalf("Expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Content        string `json:"content"`
		AuthorID       int64  `json:"author_id"`
		PostID         int64  `json:"post_id"`
		AuthorUsername string `json:"author_username"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if resp.Content != "Great insights!" || resp.AuthorID != 5 || resp.PostID != 3 {
		t.Errorf("Unexpected comment projection: %+v", resp)
	}
	if resp.AuthorUsername != "a" {
		t.Errorf("Expected author_username 'a', got %q", resp.AuthorUsername)
	}
}

func TestCreateCommentValidation(t *testing.T) {
	env := newCommentTestEnv()
	headers := env.bearer(t, &models.User{ID: 5, Username: "a", Role: models.RoleUser})

	tests := []struct {
		name string
		body map[string]interface{}
	}{
		{name: "missing content", body: map[string]interface{}{"postId": 3}},
		{name: "missing postId", body: map[string]interface{}{"content": "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(t, env.engine, http.MethodPost, "/api/comments", tt.body, headers)
			if w.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", w.Code)
			}
		})
	}
}

func TestListCommentsByPost(t *testing.T) {
	env := newCommentTestEnv()
	headers := env.bearer(t, &models.User{ID: 5, Username: "a", Role: models.RoleUser})

	for _, content := range []string{"Great insights!", "Very informative."} {
		w := doJSON(t, env.engine, http.MethodPost, "/api/comments", map[string]interface{}{
			"content": content,
			"postId":  3,
		}, headers)
		if w.Code != http.StatusCreated {
			t.Fatalf("Setup comment failed: %d", w.Code)
		}
	}

	w := doJSON(t, env.engine, http.MethodGet, "/api/posts/3/comments", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}

	var resp []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(resp) != 2 {
		t.Errorf("Expected 2 comments, got %d", len(resp))
	}

	// A post with no comments yields an empty list, not an error
	w = doJSON(t, env.engine, http.MethodGet, "/api/posts/99/comments", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(resp) != 0 {
		t.Errorf("Expected empty list, got %d", len(resp))
	}
}
