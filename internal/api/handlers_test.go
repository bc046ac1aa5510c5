package api

import (
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todobot/internal/db/task"
	"todobot/internal/db/task/sqlite"
)

func setupTestApp(t *testing.T) (*fiber.App, task.Repository) {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	repo := sqlite.NewRepositorySQlite(db)
	require.NoError(t, repo.Init())

	return New(repo), repo
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, []byte) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	_ = resp.Body.Close()
	return resp, data
}

func TestRoot(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Telegram Todo Bot API is running")
}

func TestCreateTask(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodPost, "/tasks/", `{"user_id": 7, "task": "buy milk"}`)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got TaskResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, int64(7), got.UserID)
	assert.Equal(t, "buy milk", got.Task)
	assert.False(t, got.IsCompleted)
}

func TestCreateTaskInvalid(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPost, "/tasks/", `{"user_id": 7, "task": "   "}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/tasks/", `{"user_id": 7, "task": "`+strings.Repeat("x", 300)+`"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/tasks/", `{not json`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListTasks(t *testing.T) {
	app, repo := setupTestApp(t)

	resp, body := doJSON(t, app, http.MethodGet, "/tasks/7", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `[]`, string(body))

	_, err := repo.Create(context.Background(), 7, "buy milk")
	require.NoError(t, err)
	_, err = repo.Create(context.Background(), 8, "other owner")
	require.NoError(t, err)

	resp, body = doJSON(t, app, http.MethodGet, "/tasks/7", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got []TaskResponse
	require.NoError(t, json.Unmarshal(body, &got))
	require.Len(t, got, 1)
	assert.Equal(t, "buy milk", got[0].Task)
}

func TestListTasksBadID(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := doJSON(t, app, http.MethodGet, "/tasks/abc", "")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCompleteTask(t *testing.T) {
	app, repo := setupTestApp(t)

	created, err := repo.Create(context.Background(), 7, "buy milk")
	require.NoError(t, err)

	resp, body := doJSON(t, app, http.MethodPut, "/tasks/1/complete", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var got TaskResponse
	require.NoError(t, json.Unmarshal(body, &got))
	assert.Equal(t, created.ID, got.ID)
	assert.True(t, got.IsCompleted)
}

func TestCompleteTaskNotFound(t *testing.T) {
	app, _ := setupTestApp(t)

	resp, _ := doJSON(t, app, http.MethodPut, "/tasks/99/complete", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteTask(t *testing.T) {
	app, repo := setupTestApp(t)

	_, err := repo.Create(context.Background(), 7, "buy milk")
	require.NoError(t, err)

	resp, body := doJSON(t, app, http.MethodDelete, "/tasks/1", "")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "Task deleted successfully")

	resp, _ = doJSON(t, app, http.MethodDelete, "/tasks/1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPut, "/tasks/1/complete", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
