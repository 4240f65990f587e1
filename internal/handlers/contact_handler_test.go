package handlers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestContact_Create(t *testing.T) {
	ts := newTestServer(t)

	// Public endpoint, no auth required.
	w := ts.request(t, http.MethodPost, "/contact/", gin.H{
		"name":    "Pat",
		"email":   "pat@example.com",
		"message": "When does the next cruise depart?",
	}, nil)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}
	if len(ts.contacts.messages) != 1 {
		t.Fatalf("stored messages = %d, want 1", len(ts.contacts.messages))
	}
	if ts.contacts.messages[0].Email != "pat@example.com" {
		t.Errorf("email = %q, want %q", ts.contacts.messages[0].Email, "pat@example.com")
	}
}

func TestContact_MissingFields(t *testing.T) {
	ts := newTestServer(t)

	w := ts.request(t, http.MethodPost, "/contact/", gin.H{
		"name": "Pat",
	}, nil)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
	var resp struct {
		Errors map[string][]string `json:"errors"`
	}
	decodeBody(t, w, &resp)
	if len(resp.Errors["email"]) == 0 || len(resp.Errors["message"]) == 0 {
		t.Errorf("errors = %v, want email and message entries", resp.Errors)
	}
	if len(ts.contacts.messages) != 0 {
		t.Errorf("rejected request still stored %d message(s)", len(ts.contacts.messages))
	}
}
