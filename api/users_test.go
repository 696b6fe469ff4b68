package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/avdeev/workboard/api"
	dbfs "github.com/avdeev/workboard/db"
	"github.com/avdeev/workboard/internal/db"
)

// setupServer starts the full router over an empty schema; tests create
// the rows they need through the API itself.
func setupServer(t *testing.T, name string) *httptest.Server {
	t.Helper()
	ctx := context.Background()
	d, err := db.New(ctx, "file:"+name+"?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("db.New: %v", err)
	}

	if _, err := d.Exec(ctx, dbfs.Schema); err != nil {
		d.Close()
		t.Fatalf("setup schema: %v", err)
	}

	srv := httptest.NewServer(api.SetupRoutes("test", "test", d))
	t.Cleanup(func() {
		srv.Close()
		// drop keep-alive conns so the goleak check stays quiet
		http.DefaultClient.CloseIdleConnections()
		d.Close()
	})

	return srv
}

func doJSON(t *testing.T, method, url string, body string) *http.Response {
	t.Helper()
	var rd *bytes.Reader
	if body == "" {
		rd = bytes.NewReader(nil)
	} else {
		rd = bytes.NewReader([]byte(body))
	}

	req, err := http.NewRequest(method, url, rd)
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, url, err)
	}
	t.Cleanup(func() { res.Body.Close() })

	return res
}

func decode(t *testing.T, res *http.Response, dst any) {
	t.Helper()
	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

const kimBody = `{"id":5,"first_name":"Kim","last_name":"Lee","age":30,"email":"k@x.com","role":"executor","phone":"555"}`

func TestUserCreateAndGet(t *testing.T) {
	srv := setupServer(t, "api-users-create")

	res := doJSON(t, http.MethodPost, srv.URL+"/users", kimBody)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 got %d", res.StatusCode)
	}

	res = doJSON(t, http.MethodGet, srv.URL+"/users/5", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	var got map[string]any
	decode(t, res, &got)
	want := map[string]any{
		"id": float64(5), "first_name": "Kim", "last_name": "Lee",
		"age": float64(30), "email": "k@x.com", "role": "executor", "phone": "555",
	}
	for k, v := range want {
		if got[k] != v {
			t.Fatalf("field %s: expected %v got %v", k, v, got[k])
		}
	}
}

func TestUserDuplicateIDConflicts(t *testing.T) {
	srv := setupServer(t, "api-users-conflict")

	if res := doJSON(t, http.MethodPost, srv.URL+"/users", kimBody); res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 got %d", res.StatusCode)
	}
	if res := doJSON(t, http.MethodPost, srv.URL+"/users", kimBody); res.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409 got %d", res.StatusCode)
	}
}

func TestUserMissingFieldRejected(t *testing.T) {
	srv := setupServer(t, "api-users-badreq")

	// no email key
	body := `{"id":7,"first_name":"Kim","last_name":"Lee","age":30,"role":"executor","phone":"555"}`
	res := doJSON(t, http.MethodPost, srv.URL+"/users", body)
	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", res.StatusCode)
	}
}

func TestUserUpdateReplacesEveryField(t *testing.T) {
	srv := setupServer(t, "api-users-update")

	if res := doJSON(t, http.MethodPost, srv.URL+"/users", kimBody); res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 got %d", res.StatusCode)
	}

	upd := `{"id":5,"first_name":"Kim","last_name":"Park","age":31,"email":"kim@y.com","role":"customer","phone":"777"}`
	res := doJSON(t, http.MethodPut, srv.URL+"/users/5", upd)
	if res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 got %d", res.StatusCode)
	}

	res = doJSON(t, http.MethodGet, srv.URL+"/users/5", "")
	var got map[string]any
	decode(t, res, &got)
	if got["last_name"] != "Park" || got["email"] != "kim@y.com" || got["age"] != float64(31) {
		t.Fatalf("expected old values gone got %v", got)
	}
}

func TestUserDeleteThenGetNotFound(t *testing.T) {
	srv := setupServer(t, "api-users-delete")

	if res := doJSON(t, http.MethodPost, srv.URL+"/users", kimBody); res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 got %d", res.StatusCode)
	}

	res := doJSON(t, http.MethodDelete, srv.URL+"/users/5", "")
	if res.StatusCode != http.StatusNoContent {
		t.Fatalf("expected 204 got %d", res.StatusCode)
	}

	res = doJSON(t, http.MethodGet, srv.URL+"/users/5", "")
	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", res.StatusCode)
	}
	var body map[string]string
	decode(t, res, &body)
	if body["error"] != "not found" {
		t.Fatalf("expected not found body got %v", body)
	}

	if res := doJSON(t, http.MethodDelete, srv.URL+"/users/5", ""); res.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404 deleting twice got %d", res.StatusCode)
	}
}

func TestUserListKeepsNonASCII(t *testing.T) {
	srv := setupServer(t, "api-users-utf8")

	body := `{"id":1,"first_name":"Мария","last_name":"Иванова","age":41,"email":"m@x.com","role":"customer","phone":"88"}`
	if res := doJSON(t, http.MethodPost, srv.URL+"/users", body); res.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201 got %d", res.StatusCode)
	}

	res := doJSON(t, http.MethodGet, srv.URL+"/users", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(res.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	if !strings.Contains(buf.String(), "Мария") {
		t.Fatalf("expected raw cyrillic in body got %s", buf.String())
	}

	var list []map[string]any
	if err := json.Unmarshal(buf.Bytes(), &list); err != nil {
		t.Fatalf("parse list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 user got %d", len(list))
	}
}

func TestUserListEmptyIsArray(t *testing.T) {
	srv := setupServer(t, "api-users-empty")

	res := doJSON(t, http.MethodGet, srv.URL+"/users", "")
	buf := new(bytes.Buffer)
	if _, err := buf.ReadFrom(res.Body); err != nil {
		t.Fatalf("read body: %v", err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Fatalf("expected [] got %s", buf.String())
	}
}

func TestHealthAndVersion(t *testing.T) {
	srv := setupServer(t, "api-system")

	res := doJSON(t, http.MethodGet, srv.URL+"/health", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}

	res = doJSON(t, http.MethodGet, srv.URL+"/version", "")
	if res.StatusCode != http.StatusOK {
		t.Fatalf("expected 200 got %d", res.StatusCode)
	}
	var v map[string]string
	decode(t, res, &v)
	if v["version"] != "test" {
		t.Fatalf("expected version test got %v", v)
	}
}

func seedUser(t *testing.T, srv *httptest.Server, id int, firstName string) {
	t.Helper()
	body := fmt.Sprintf(`{"id":%d,"first_name":"%s","last_name":"L","age":20,"email":"u%d@x.com","role":"executor","phone":"1"}`, id, firstName, id)
	if res := doJSON(t, http.MethodPost, srv.URL+"/users", body); res.StatusCode != http.StatusCreated {
		t.Fatalf("seed user %d: expected 201 got %d", id, res.StatusCode)
	}
}
