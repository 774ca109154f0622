package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/steinfletcher/apitest"
	jsonpath "github.com/steinfletcher/apitest-jsonpath"
	"github.com/stretchr/testify/require"
)

// createTodo creates a todo over HTTP and returns its ID
func createTodo(t *testing.T, a *API, token, text string) string {
	t.Helper()

	res := apitest.New().
		Handler(a.Router).
		Post("/todos").
		Header("x-auth", token).
		JSON(map[string]string{"text": text}).
		Expect(t).
		Status(http.StatusOK).
		End()

	var body struct {
		ID string `json:"id"`
	}
	res.JSON(&body)
	require.NotEmpty(t, body.ID)

	return body.ID
}

func TestTodoCreate(t *testing.T) {
	a := newTestAPI(t)
	token := registerUser(t, a, "alice@example.com", "secret123")

	apitest.New().
		Handler(a.Router).
		Post("/todos").
		Header("x-auth", token).
		JSON(map[string]string{"text": "buy milk"}).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.text", "buy milk")).
		Assert(jsonpath.Equal("$.completed", false)).
		Assert(jsonpath.Present("$.id")).
		End()
}

func TestTodoCreateEmptyText(t *testing.T) {
	a := newTestAPI(t)
	token := registerUser(t, a, "alice@example.com", "secret123")

	apitest.New().
		Handler(a.Router).
		Post("/todos").
		Header("x-auth", token).
		JSON(map[string]string{"text": "   "}).
		Expect(t).
		Status(http.StatusBadRequest).
		Assert(jsonpath.Equal("$.field", "text")).
		End()
}

func TestTodoRequiresAuth(t *testing.T) {
	a := newTestAPI(t)

	apitest.New().
		Handler(a.Router).
		Get("/todos").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestTodoFetchBulk(t *testing.T) {
	a := newTestAPI(t)
	token := registerUser(t, a, "alice@example.com", "secret123")

	apitest.New().
		Handler(a.Router).
		Get("/todos").
		Header("x-auth", token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$.todos", 0)).
		End()

	createTodo(t, a, token, "first")
	createTodo(t, a, token, "second")

	apitest.New().
		Handler(a.Router).
		Get("/todos").
		Header("x-auth", token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$.todos", 2)).
		End()
}

func TestTodoFetch(t *testing.T) {
	a := newTestAPI(t)
	token := registerUser(t, a, "alice@example.com", "secret123")
	todoID := createTodo(t, a, token, "buy milk")

	apitest.New().
		Handler(a.Router).
		Get("/todos/" + todoID).
		Header("x-auth", token).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.id", todoID)).
		Assert(jsonpath.Equal("$.text", "buy milk")).
		End()

	apitest.New().
		Handler(a.Router).
		Get("/todos/does-not-exist").
		Header("x-auth", token).
		Expect(t).
		Status(http.StatusNotFound).
		End()
}

func TestTodoOwnership(t *testing.T) {
	a := newTestAPI(t)
	alice := registerUser(t, a, "alice@example.com", "secret123")
	bob := registerUser(t, a, "bob@example.com", "secret456")

	todoID := createTodo(t, a, alice, "alice's todo")

	// Another user's todos look like they don't exist
	apitest.New().
		Handler(a.Router).
		Get("/todos/" + todoID).
		Header("x-auth", bob).
		Expect(t).
		Status(http.StatusNotFound).
		End()

	apitest.New().
		Handler(a.Router).
		Patch("/todos/"+todoID).
		Header("x-auth", bob).
		JSON(map[string]any{"completed": true}).
		Expect(t).
		Status(http.StatusNotFound).
		End()

	apitest.New().
		Handler(a.Router).
		Delete("/todos/" + todoID).
		Header("x-auth", bob).
		Expect(t).
		Status(http.StatusNotFound).
		End()

	apitest.New().
		Handler(a.Router).
		Get("/todos").
		Header("x-auth", bob).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Len("$.todos", 0)).
		End()
}

func TestTodoEdit(t *testing.T) {
	a := newTestAPI(t)
	token := registerUser(t, a, "alice@example.com", "secret123")
	todoID := createTodo(t, a, token, "buy milk")

	apitest.New().
		Handler(a.Router).
		Patch("/todos/"+todoID).
		Header("x-auth", token).
		JSON(map[string]any{"completed": true}).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.completed", true)).
		Assert(jsonpath.Present("$.completedAt")).
		End()

	// Un-completing clears the completion timestamp
	res := apitest.New().
		Handler(a.Router).
		Patch("/todos/"+todoID).
		Header("x-auth", token).
		JSON(map[string]any{"completed": false}).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.completed", false)).
		End()

	var todo struct {
		Completed   bool   `json:"completed"`
		CompletedAt *int64 `json:"completedAt"`
	}
	res.JSON(&todo)
	require.False(t, todo.Completed)
	require.Nil(t, todo.CompletedAt)

	apitest.New().
		Handler(a.Router).
		Patch("/todos/"+todoID).
		Header("x-auth", token).
		JSON(map[string]string{"text": "buy oat milk"}).
		Expect(t).
		Status(http.StatusOK).
		Assert(jsonpath.Equal("$.text", "buy oat milk")).
		End()
}

func TestTodoDelete(t *testing.T) {
	a := newTestAPI(t)
	token := registerUser(t, a, "alice@example.com", "secret123")
	todoID := createTodo(t, a, token, "buy milk")

	path := fmt.Sprintf("/todos/%s", todoID)

	apitest.New().
		Handler(a.Router).
		Delete(path).
		Header("x-auth", token).
		Expect(t).
		Status(http.StatusOK).
		End()

	apitest.New().
		Handler(a.Router).
		Get(path).
		Header("x-auth", token).
		Expect(t).
		Status(http.StatusNotFound).
		End()

	apitest.New().
		Handler(a.Router).
		Delete(path).
		Header("x-auth", token).
		Expect(t).
		Status(http.StatusNotFound).
		End()
}
