package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

func decodeToast(t *testing.T, rec *httptest.ResponseRecorder) map[string]string {
	t.Helper()

	trigger := rec.Header().Get("HX-Trigger")
	if trigger == "" {
		t.Fatal("expected HX-Trigger header to be set")
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trigger), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}

	raw, ok := parsed["showToast"]
	if !ok {
		t.Fatal("expected showToast key in HX-Trigger JSON")
	}

	var toast map[string]string
	if err := json.Unmarshal(raw, &toast); err != nil {
		t.Fatalf("showToast value is not valid JSON: %v", err)
	}
	return toast
}

func TestSetToast_Basic(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	SetToast(e, "success", "Added to cart")

	toast := decodeToast(t, rec)
	if toast["message"] != "Added to cart" {
		t.Errorf("expected message %q, got %q", "Added to cart", toast["message"])
	}
	if toast["type"] != "success" {
		t.Errorf("expected type %q, got %q", "success", toast["type"])
	}
}

func TestSetToast_LastWins(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	SetToast(e, "success", "Added to cart")
	SetToast(e, "error", "Invalid Product ID")

	toast := decodeToast(t, rec)
	if toast["message"] != "Invalid Product ID" {
		t.Errorf("expected message %q, got %q", "Invalid Product ID", toast["message"])
	}
	if toast["type"] != "error" {
		t.Errorf("expected type %q, got %q", "error", toast["type"])
	}
}

func TestErrorToast(t *testing.T) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec

	if err := ErrorToast(e, http.StatusNotFound, "Invalid Product ID"); err != nil {
		t.Fatalf("ErrorToast returned error: %v", err)
	}

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
	if reswap := rec.Header().Get("HX-Reswap"); reswap != "none" {
		t.Errorf("expected HX-Reswap none, got %q", reswap)
	}
	toast := decodeToast(t, rec)
	if toast["type"] != "error" {
		t.Errorf("expected error toast, got %q", toast["type"])
	}
	if rec.Body.String() != "Invalid Product ID" {
		t.Errorf("body = %q", rec.Body.String())
	}
}
