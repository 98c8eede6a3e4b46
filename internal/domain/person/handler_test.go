package person

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

func newTestServer(seed []Person) *echo.Echo {
	e := echo.New()
	svc := NewService(NewRepository(seed), &mockRecords{}, zerolog.Nop())
	NewHandler(svc).RegisterRoutes(e)
	return e
}

func do(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

const boydJSON = `{
  "firstName": "John", "lastName": "Boyd",
  "address": "1509 Culver St", "city": "Culver", "zip": 97451,
  "phone": "841-874-6512", "email": "jaboyd@email.com"
}`

func TestCreateGetDelete(t *testing.T) {
	e := newTestServer(nil)

	if rec := do(e, http.MethodPost, "/person", boydJSON); rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec := do(e, http.MethodGet, "/person/Boyd/John", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get: expected 200, got %d", rec.Code)
	}
	var got Person
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Zip != 97451 || got.Email != "jaboyd@email.com" {
		t.Errorf("unexpected person: %+v", got)
	}

	if rec := do(e, http.MethodDelete, "/person/Boyd/John", ""); rec.Code != http.StatusNoContent {
		t.Fatalf("delete: expected 204, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/person/Boyd/John", ""); rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: expected 404, got %d", rec.Code)
	}
}

func TestCreate_Conflict(t *testing.T) {
	e := newTestServer([]Person{boyd()})
	if rec := do(e, http.MethodPost, "/person", boydJSON); rec.Code != http.StatusConflict {
		t.Errorf("expected 409, got %d", rec.Code)
	}
}

func TestCreate_InvalidPayload(t *testing.T) {
	e := newTestServer(nil)

	if rec := do(e, http.MethodPost, "/person", `{"firstName": ""}`); rec.Code != http.StatusBadRequest {
		t.Errorf("blank fields: expected 400, got %d", rec.Code)
	}
	if rec := do(e, http.MethodPost, "/person", `{not json`); rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body: expected 400, got %d", rec.Code)
	}
}

func TestUpdate(t *testing.T) {
	e := newTestServer([]Person{boyd()})

	moved := `{
	  "firstName": "John", "lastName": "Boyd",
	  "address": "112 Steppes Pl", "city": "Culver", "zip": 97451,
	  "phone": "841-874-6874", "email": "jaboyd@email.com"
	}`
	rec := do(e, http.MethodPut, "/person/Boyd/John", moved)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var got Person
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if got.Address != "112 Steppes Pl" {
		t.Errorf("unexpected person after update: %+v", got)
	}

	if rec := do(e, http.MethodPut, "/person/Nobody/Here", moved); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestListAll(t *testing.T) {
	other := boyd()
	other.FirstName = "Jacob"
	e := newTestServer([]Person{boyd(), other})

	rec := do(e, http.MethodGet, "/person/all", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var got []Person
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].FirstName != "John" {
		t.Errorf("unexpected list: %+v", got)
	}
}
