package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/sessions"
	"github.com/pkg/errors"

	"github.com/harshrai654/notes-api/internal/adapter/memory"
	"github.com/harshrai654/notes-api/internal/core/service"
	"github.com/harshrai654/notes-api/internal/http/middleware/authn/session"
	"github.com/harshrai654/notes-api/internal/http/middleware/authn/token"
)

func createTestHandler(t *testing.T) *Handler {
	userStore := memory.NewUserStore()

	noteManager := service.NewNoteManager(memory.NewNoteStore(), userStore, memory.NewIndex())
	accountManager := service.NewAccountManager(userStore)

	sessionAuth := session.NewAuthenticator(sessions.NewCookieStore([]byte("test-signing-key")), userStore)
	tokenAuth := token.NewAuthenticator(accountManager)

	return NewHandler(noteManager, accountManager, sessionAuth, tokenAuth, sessionAuth)
}

func doRequest(t *testing.T, handler http.Handler, method string, path string, token string, payload any) *httptest.ResponseRecorder {
	var body *bytes.Buffer = bytes.NewBuffer(nil)

	if payload != nil {
		if err := json.NewEncoder(body).Encode(payload); err != nil {
			t.Fatalf("could not encode payload: %+v", errors.WithStack(err))
		}
	}

	req := httptest.NewRequest(method, path, body)

	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	return res
}

func signUp(t *testing.T, handler http.Handler, username string) AuthResponse {
	res := doRequest(t, handler, "POST", "/auth/signup", "", CredentialsRequest{
		Username: username,
		Password: "s3cret",
	})

	if e, g := http.StatusCreated, res.Code; e != g {
		t.Fatalf("signup status: expected %d, got %d (%s)", e, g, res.Body.String())
	}

	var auth AuthResponse
	if err := json.Unmarshal(res.Body.Bytes(), &auth); err != nil {
		t.Fatalf("could not decode response: %+v", errors.WithStack(err))
	}

	return auth
}

func TestSignUpAndLogIn(t *testing.T) {
	handler := createTestHandler(t)

	auth := signUp(t, handler, "alice")

	if auth.Token == "" {
		t.Errorf("auth.Token: expected non-empty token")
	}

	if e, g := "User created successfully.", auth.Message; e != g {
		t.Errorf("auth.Message: expected %q, got %q", e, g)
	}

	res := doRequest(t, handler, "POST", "/auth/signup", "", CredentialsRequest{
		Username: "alice",
		Password: "other",
	})

	if e, g := http.StatusConflict, res.Code; e != g {
		t.Errorf("duplicate signup status: expected %d, got %d", e, g)
	}

	res = doRequest(t, handler, "POST", "/auth/login", "", CredentialsRequest{
		Username: "alice",
		Password: "s3cret",
	})

	if e, g := http.StatusOK, res.Code; e != g {
		t.Errorf("login status: expected %d, got %d", e, g)
	}

	res = doRequest(t, handler, "POST", "/auth/login", "", CredentialsRequest{
		Username: "alice",
		Password: "wrong",
	})

	if e, g := http.StatusUnauthorized, res.Code; e != g {
		t.Errorf("bad login status: expected %d, got %d", e, g)
	}
}

func TestNotesRequireAuthentication(t *testing.T) {
	handler := createTestHandler(t)

	res := doRequest(t, handler, "GET", "/notes", "", nil)

	if e, g := http.StatusUnauthorized, res.Code; e != g {
		t.Errorf("status: expected %d, got %d", e, g)
	}

	res = doRequest(t, handler, "GET", "/notes", "bogus-token", nil)

	if e, g := http.StatusUnauthorized, res.Code; e != g {
		t.Errorf("status: expected %d, got %d", e, g)
	}
}

func TestNoteLifecycle(t *testing.T) {
	handler := createTestHandler(t)

	alice := signUp(t, handler, "alice")
	bob := signUp(t, handler, "bob")

	// Create
	res := doRequest(t, handler, "POST", "/notes", alice.Token, CreateNoteRequest{
		Title:   "Groceries",
		Content: "milk, eggs",
	})

	if e, g := http.StatusCreated, res.Code; e != g {
		t.Fatalf("create status: expected %d, got %d (%s)", e, g, res.Body.String())
	}

	var created NoteResponse
	if err := json.Unmarshal(res.Body.Bytes(), &created); err != nil {
		t.Fatalf("could not decode response: %+v", errors.WithStack(err))
	}

	if e, g := alice.UserID, created.Note.User; e != g {
		t.Errorf("created.Note.User: expected %s, got %s", e, g)
	}

	noteURL := fmt.Sprintf("/notes/%s", created.Note.ID)

	// Bob cannot see it yet
	res = doRequest(t, handler, "GET", noteURL, bob.Token, nil)

	if e, g := http.StatusForbidden, res.Code; e != g {
		t.Errorf("read status: expected %d, got %d", e, g)
	}

	// Share it with bob
	res = doRequest(t, handler, "POST", noteURL+"/share", alice.Token, ShareNoteRequest{
		UserID: bob.UserID,
	})

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("share status: expected %d, got %d (%s)", e, g, res.Body.String())
	}

	res = doRequest(t, handler, "GET", noteURL, bob.Token, nil)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Errorf("read status: expected %d, got %d", e, g)
	}

	// Sharing does not grant write
	res = doRequest(t, handler, "PATCH", noteURL, bob.Token, UpdateNoteRequest{
		Title: "hijacked",
	})

	if e, g := http.StatusForbidden, res.Code; e != g {
		t.Errorf("update status: expected %d, got %d", e, g)
	}

	// No-op update is reported as such
	res = doRequest(t, handler, "PATCH", noteURL, alice.Token, UpdateNoteRequest{
		Title: "Groceries",
	})

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("update status: expected %d, got %d (%s)", e, g, res.Body.String())
	}

	var updated NoteResponse
	if err := json.Unmarshal(res.Body.Bytes(), &updated); err != nil {
		t.Fatalf("could not decode response: %+v", errors.WithStack(err))
	}

	if e, g := "No data to update.", updated.Message; e != g {
		t.Errorf("updated.Message: expected %q, got %q", e, g)
	}

	// Delete
	res = doRequest(t, handler, "DELETE", noteURL, alice.Token, nil)

	if e, g := http.StatusNoContent, res.Code; e != g {
		t.Errorf("delete status: expected %d, got %d", e, g)
	}

	res = doRequest(t, handler, "GET", noteURL, alice.Token, nil)

	if e, g := http.StatusNotFound, res.Code; e != g {
		t.Errorf("read status: expected %d, got %d", e, g)
	}
}

func TestSearch(t *testing.T) {
	handler := createTestHandler(t)

	alice := signUp(t, handler, "alice")

	for _, note := range []CreateNoteRequest{
		{Title: "Pasta recipes", Content: "pasta with tomato sauce, pasta carbonara"},
		{Title: "Groceries", Content: "buy pasta and milk"},
		{Title: "Meeting notes", Content: "quarterly planning"},
	} {
		res := doRequest(t, handler, "POST", "/notes", alice.Token, note)
		if e, g := http.StatusCreated, res.Code; e != g {
			t.Fatalf("create status: expected %d, got %d (%s)", e, g, res.Body.String())
		}
	}

	res := doRequest(t, handler, "GET", "/search?q=pasta", alice.Token, nil)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("search status: expected %d, got %d (%s)", e, g, res.Body.String())
	}

	var search SearchResponse
	if err := json.Unmarshal(res.Body.Bytes(), &search); err != nil {
		t.Fatalf("could not decode response: %+v", errors.WithStack(err))
	}

	if e, g := 2, len(search.Hits); e != g {
		t.Fatalf("len(search.Hits): expected %d, got %d", e, g)
	}

	if e, g := "Pasta recipes", search.Hits[0].Note.Title; e != g {
		t.Errorf("search.Hits[0].Note.Title: expected %s, got %s", e, g)
	}

	// A missing query is a client error
	res = doRequest(t, handler, "GET", "/search", alice.Token, nil)

	if e, g := http.StatusBadRequest, res.Code; e != g {
		t.Errorf("search status: expected %d, got %d", e, g)
	}
}

func TestListNotesRejectsInvalidPagination(t *testing.T) {
	handler := createTestHandler(t)

	alice := signUp(t, handler, "alice")

	res := doRequest(t, handler, "POST", "/notes", alice.Token, CreateNoteRequest{
		Title:   "Groceries",
		Content: "milk, eggs",
	})
	if e, g := http.StatusCreated, res.Code; e != g {
		t.Fatalf("create status: expected %d, got %d (%s)", e, g, res.Body.String())
	}

	for _, path := range []string{
		"/notes?page=-1&limit=5",
		"/notes?page=0&limit=-5",
		"/notes?page=abc",
		"/notes?limit=abc",
	} {
		res := doRequest(t, handler, "GET", path, alice.Token, nil)

		if e, g := http.StatusBadRequest, res.Code; e != g {
			t.Errorf("list status for %s: expected %d, got %d (%s)", path, e, g, res.Body.String())
		}
	}

	res = doRequest(t, handler, "GET", "/notes?page=0&limit=5", alice.Token, nil)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("list status: expected %d, got %d (%s)", e, g, res.Body.String())
	}

	var list NoteListResponse
	if err := json.Unmarshal(res.Body.Bytes(), &list); err != nil {
		t.Fatalf("could not decode response: %+v", errors.WithStack(err))
	}

	if e, g := 1, len(list.Notes); e != g {
		t.Errorf("len(list.Notes): expected %d, got %d", e, g)
	}
}

func TestListTokens(t *testing.T) {
	handler := createTestHandler(t)

	alice := signUp(t, handler, "alice")

	login := doRequest(t, handler, "POST", "/auth/login", "", CredentialsRequest{
		Username: "alice",
		Password: "s3cret",
	})
	if e, g := http.StatusOK, login.Code; e != g {
		t.Fatalf("login status: expected %d, got %d (%s)", e, g, login.Body.String())
	}

	res := doRequest(t, handler, "GET", "/auth/tokens", alice.Token, nil)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("tokens status: expected %d, got %d (%s)", e, g, res.Body.String())
	}

	var list TokenListResponse
	if err := json.Unmarshal(res.Body.Bytes(), &list); err != nil {
		t.Fatalf("could not decode response: %+v", errors.WithStack(err))
	}

	// One token from the registration, one from the login
	if e, g := 2, len(list.Tokens); e != g {
		t.Fatalf("len(list.Tokens): expected %d, got %d", e, g)
	}

	for _, token := range list.Tokens {
		if token.ID == "" {
			t.Errorf("token.ID: expected non-empty id")
		}

		if token.CreatedAt.IsZero() {
			t.Errorf("token.CreatedAt: expected non-zero time")
		}
	}
}

func TestLogOut(t *testing.T) {
	handler := createTestHandler(t)

	alice := signUp(t, handler, "alice")

	res := doRequest(t, handler, "GET", "/notes", alice.Token, nil)
	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("list status: expected %d, got %d (%s)", e, g, res.Body.String())
	}

	res = doRequest(t, handler, "POST", "/auth/logout", alice.Token, nil)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Fatalf("logout status: expected %d, got %d (%s)", e, g, res.Body.String())
	}

	var auth AuthResponse
	if err := json.Unmarshal(res.Body.Bytes(), &auth); err != nil {
		t.Fatalf("could not decode response: %+v", errors.WithStack(err))
	}

	if e, g := "Logged out successfully.", auth.Message; e != g {
		t.Errorf("auth.Message: expected %q, got %q", e, g)
	}

	// The revoked token no longer authenticates
	res = doRequest(t, handler, "GET", "/notes", alice.Token, nil)

	if e, g := http.StatusUnauthorized, res.Code; e != g {
		t.Errorf("list status: expected %d, got %d", e, g)
	}
}
