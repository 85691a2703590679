package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
)

type taskPayload struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	DueDate   time.Time `json:"dueDate"`
}

func createTaskViaAPI(t *testing.T, app *fiber.App, token string, title string, dueDate time.Time) taskPayload {
	t.Helper()

	request := authedJSONRequest(t, http.MethodPost, "/planner", token, map[string]any{
		"title":   title,
		"dueDate": dueDate.Format(time.RFC3339),
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("create task failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", response.StatusCode)
	}

	task := taskPayload{}
	decodeBody(t, response.Body, &task)
	return task
}

func TestCreateTask(t *testing.T) {
	app, _ := newTestApp(t)
	token := signupTestUser(t, app, "sam@example.com", "sam")

	due := time.Date(2026, time.September, 1, 15, 0, 0, 0, time.UTC)
	task := createTaskViaAPI(t, app, token, "Write essay", due)

	if task.Title != "Write essay" || task.Completed {
		t.Fatalf("unexpected task %+v", task)
	}
	if !task.DueDate.Equal(due) {
		t.Fatalf("expected due date %s, got %s", due, task.DueDate)
	}
}

func TestCreateTask_Validation(t *testing.T) {
	app, _ := newTestApp(t)
	token := signupTestUser(t, app, "sam@example.com", "sam")

	tests := []struct {
		name    string
		payload map[string]any
	}{
		{name: "missing title", payload: map[string]any{"dueDate": "2026-09-01T15:00:00Z"}},
		{name: "blank title", payload: map[string]any{"title": " ", "dueDate": "2026-09-01T15:00:00Z"}},
		{name: "missing due date", payload: map[string]any{"title": "Write essay"}},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			request := authedJSONRequest(t, http.MethodPost, "/planner", token, testCase.payload)
			response, err := app.Test(request, -1)
			if err != nil {
				t.Fatalf("request failed: %v", err)
			}
			defer response.Body.Close()

			if response.StatusCode != http.StatusBadRequest {
				t.Fatalf("expected status 400, got %d", response.StatusCode)
			}
		})
	}
}

func TestListTasks_DateFilterCoversWholeDay(t *testing.T) {
	app, _ := newTestApp(t)
	token := signupTestUser(t, app, "sam@example.com", "sam")

	createTaskViaAPI(t, app, token, "Early", time.Date(2026, time.September, 1, 0, 10, 0, 0, time.UTC))
	createTaskViaAPI(t, app, token, "Late", time.Date(2026, time.September, 1, 23, 45, 0, 0, time.UTC))
	createTaskViaAPI(t, app, token, "Next day", time.Date(2026, time.September, 2, 0, 5, 0, 0, time.UTC))

	request := authedJSONRequest(t, http.MethodGet, "/planner?date=2026-09-01", token, nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("list tasks failed: %v", err)
	}
	defer response.Body.Close()

	var tasks []taskPayload
	decodeBody(t, response.Body, &tasks)
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks on the day, got %d", len(tasks))
	}
	if tasks[0].Title != "Early" || tasks[1].Title != "Late" {
		t.Fatalf("expected due-date ascending order, got %+v", tasks)
	}

	// No filter returns everything.
	request = authedJSONRequest(t, http.MethodGet, "/planner", token, nil)
	response, err = app.Test(request, -1)
	if err != nil {
		t.Fatalf("list tasks failed: %v", err)
	}
	defer response.Body.Close()

	decodeBody(t, response.Body, &tasks)
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks without filter, got %d", len(tasks))
	}
}

func TestListTasks_RejectsMalformedDate(t *testing.T) {
	app, _ := newTestApp(t)
	token := signupTestUser(t, app, "sam@example.com", "sam")

	request := authedJSONRequest(t, http.MethodGet, "/planner?date=01-09-2026", token, nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", response.StatusCode)
	}
}

func TestUpdateTask(t *testing.T) {
	app, _ := newTestApp(t)
	token := signupTestUser(t, app, "sam@example.com", "sam")

	task := createTaskViaAPI(t, app, token, "Write essay", time.Date(2026, time.September, 1, 15, 0, 0, 0, time.UTC))

	request := authedJSONRequest(t, http.MethodPut, fmt.Sprintf("/planner/%d", task.ID), token, map[string]any{
		"completed": true,
		"title":     "Write final essay",
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("update task failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	updated := taskPayload{}
	decodeBody(t, response.Body, &updated)
	if !updated.Completed || updated.Title != "Write final essay" {
		t.Fatalf("unexpected updated task %+v", updated)
	}
}

func TestUpdateTask_ForeignTaskIsNotFound(t *testing.T) {
	app, _ := newTestApp(t)
	token := signupTestUser(t, app, "sam@example.com", "sam")
	otherToken := signupTestUser(t, app, "kim@example.com", "kim")

	task := createTaskViaAPI(t, app, token, "Private", time.Date(2026, time.September, 1, 15, 0, 0, 0, time.UTC))

	request := authedJSONRequest(t, http.MethodPut, fmt.Sprintf("/planner/%d", task.ID), otherToken, map[string]any{
		"completed": true,
	})
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
}

func TestDeleteTask(t *testing.T) {
	app, _ := newTestApp(t)
	token := signupTestUser(t, app, "sam@example.com", "sam")

	task := createTaskViaAPI(t, app, token, "Temporary", time.Date(2026, time.September, 1, 15, 0, 0, 0, time.UTC))

	request := authedJSONRequest(t, http.MethodDelete, fmt.Sprintf("/planner/%d", task.ID), token, nil)
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("delete task failed: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}

	// Deleting again answers 404.
	request = authedJSONRequest(t, http.MethodDelete, fmt.Sprintf("/planner/%d", task.ID), token, nil)
	response, err = app.Test(request, -1)
	if err != nil {
		t.Fatalf("repeat delete failed: %v", err)
	}
	response.Body.Close()
	if response.StatusCode != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", response.StatusCode)
	}
}
