// internal/langswitch/handler_test.go

package langswitch

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/yanizio/localeroute/internal/content"
)

type fakeItemSource struct {
	items map[uint64]*content.Item
	err   error
}

func (f *fakeItemSource) ByID(_ context.Context, id uint64) (*content.Item, error) {
	if f.err != nil {
		return nil, f.err
	}
	it, ok := f.items[id]
	if !ok {
		return nil, content.ErrNotFound
	}
	return it, nil
}

func TestHandler(t *testing.T) {
	src := &fakeItemSource{items: map[uint64]*content.Item{
		42: {
			ID:      42,
			Title:   "Breaking News",
			Type:    "news",
			Initial: "eng-GB",
			Locales: []string{"eng-GB", "tha-TH"},
		},
	}}
	h := Handler(src, newSwitcher())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/languages?content=42&siteaccess=th-th", nil))

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d", rr.Code)
	}

	var body struct {
		Languages map[string]Entry `json:"languages"`
		Markets   []string         `json:"markets"`
		Displayed string           `json:"displayed"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body.Languages) != 4 {
		t.Fatalf("languages = %d, want 4", len(body.Languages))
	}
	if got := body.Languages["tha-TH"].URL; got != "/th-th/news/breaking-news" {
		t.Fatalf("tha-TH URL = %q", got)
	}
	if body.Displayed != "tha-TH" {
		t.Fatalf("displayed = %q, want tha-TH", body.Displayed)
	}
}

func TestHandler_NotFoundAndBadRequest(t *testing.T) {
	h := Handler(&fakeItemSource{items: map[uint64]*content.Item{}}, newSwitcher())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/languages?content=9", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("missing item: status = %d, want 404", rr.Code)
	}

	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/languages", nil))
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("missing param: status = %d, want 400", rr.Code)
	}
}

func TestHandler_StoreError(t *testing.T) {
	h := Handler(&fakeItemSource{err: errors.New("replica down")}, newSwitcher())

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/languages?content=42", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
}
