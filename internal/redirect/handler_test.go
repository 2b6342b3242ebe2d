// internal/redirect/handler_test.go

package redirect

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

var errTest = errors.New("search backend down")

type fakeLister struct {
	recs []Record
	err  error
}

func (f *fakeLister) AllActive(context.Context) ([]Record, error) { return f.recs, f.err }

func TestListHandler(t *testing.T) {
	lister := &fakeLister{recs: []Record{
		{ID: 2, SourceURL: "/b", TargetURL: "/b2", Type: TypeTemporary, Active: true},
		{ID: 1, SourceURL: "/a", TargetURL: "/a2", Type: TypePermanent, Active: true},
	}}

	req := httptest.NewRequest(http.MethodGet, "/admin/redirects", nil)
	rr := httptest.NewRecorder()
	ListHandler(lister).ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var body struct {
		Redirects []Record `json:"redirects"`
		Total     int      `json:"total"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Total != 2 || len(body.Redirects) != 2 {
		t.Fatalf("body = %+v", body)
	}
	if body.Redirects[0].SourceURL != "/b" {
		t.Fatalf("listing order lost: %+v", body.Redirects)
	}
}

func TestListHandler_StoreError(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/admin/redirects", nil)
	rr := httptest.NewRecorder()
	ListHandler(&fakeLister{err: errTest}).ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500 (explicit path surfaces errors)", rr.Code)
	}
}

func TestLookupHandler(t *testing.T) {
	finder := &fakeFinder{records: map[string]*Record{
		"/old": {SourceURL: "/old", TargetURL: "/new", Type: TypeTemporary, Active: true},
	}}
	res := NewResolver(finder, 16, time.Minute)
	h := LookupHandler(res)

	// Hit → 302 with Location.
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/redirects/lookup?path=/old", nil))
	if rr.Code != http.StatusFound || rr.Header().Get("Location") != "/new" {
		t.Fatalf("hit: status = %d, Location = %q", rr.Code, rr.Header().Get("Location"))
	}

	// Miss → 404.
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/redirects/lookup?path=/missing", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("miss: status = %d, want 404", rr.Code)
	}

	// No parameter → 400.
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/admin/redirects/lookup", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("no param: status = %d, want 400", rr.Code)
	}
}

func TestLookupHandler_StoreError(t *testing.T) {
	res := NewResolver(&fakeFinder{err: errTest}, 16, time.Minute)

	rr := httptest.NewRecorder()
	LookupHandler(res).ServeHTTP(rr,
		httptest.NewRequest(http.MethodGet, "/admin/redirects/lookup?path=/old", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
}
