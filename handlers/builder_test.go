package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tably/models"
	"tably/services/menubuilder"

	"github.com/gin-gonic/gin"
)

// fakeSessionService returns a canned session or error for every mutation.
type fakeSessionService struct {
	session *menubuilder.BuilderSession
	err     error
}

func (f *fakeSessionService) Start(tenantID, locationID, userID string, reorder *models.Order) (*menubuilder.BuilderSession, error) {
	return f.session, f.err
}
func (f *fakeSessionService) Get(sessionID string) (*menubuilder.BuilderSession, error) {
	return f.session, f.err
}
func (f *fakeSessionService) Select(sessionID, sectionID, itemID string) (*menubuilder.BuilderSession, error) {
	return f.session, f.err
}
func (f *fakeSessionService) Adjust(sessionID, itemID string, delta int) (*menubuilder.BuilderSession, error) {
	return f.session, f.err
}
func (f *fakeSessionService) SetQuantity(sessionID, itemID string, quantity int) (*menubuilder.BuilderSession, error) {
	return f.session, f.err
}
func (f *fakeSessionService) SetSlider(sessionID, itemID string, value int) (*menubuilder.BuilderSession, error) {
	return f.session, f.err
}
func (f *fakeSessionService) Advance(sessionID string) (*menubuilder.BuilderSession, error) {
	return f.session, f.err
}
func (f *fakeSessionService) Cancel(sessionID string) error   { return f.err }
func (f *fakeSessionService) Complete(sessionID string) error { return f.err }

func builderRouter(svc menubuilder.SessionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewBuilderHandler(svc, nil)
	r := gin.New()
	r.POST("/builder/session/:sessionID/select", h.SelectHandler)
	r.POST("/builder/session/:sessionID/adjust", h.AdjustHandler)
	r.POST("/builder/session/:sessionID/quantity", h.SetQuantityHandler)
	r.POST("/builder/session/:sessionID/slider", h.SliderHandler)
	r.POST("/builder/session/:sessionID/advance", h.AdvanceHandler)
	return r
}

func postJSON(t *testing.T, r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestMutationHandlersReturnUpdatedSession(t *testing.T) {
	session := &menubuilder.BuilderSession{
		SessionID:  "sess-1",
		State:      menubuilder.NewSelectionState(),
		TotalCents: 1350,
	}
	r := builderRouter(&fakeSessionService{session: session})

	cases := []struct {
		path string
		body string
	}{
		{"/builder/session/sess-1/select", `{"sectionId":"sec-base","itemId":"base-ramen"}`},
		{"/builder/session/sess-1/adjust", `{"itemId":"extra-egg","delta":1}`},
		{"/builder/session/sess-1/quantity", `{"itemId":"extra-egg","quantity":2}`},
		{"/builder/session/sess-1/slider", `{"itemId":"slider-spice","value":3}`},
	}
	for _, tc := range cases {
		w := postJSON(t, r, tc.path, tc.body)
		if w.Code != http.StatusOK {
			t.Fatalf("%s: status %d, want 200: %s", tc.path, w.Code, w.Body.String())
		}
		var got menubuilder.BuilderSession
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("%s: invalid response body: %v", tc.path, err)
		}
		if got.SessionID != "sess-1" || got.TotalCents != 1350 {
			t.Errorf("%s: unexpected session in response: %+v", tc.path, got)
		}
	}
}

func TestMutationHandlersMapMissingSessionTo404(t *testing.T) {
	r := builderRouter(&fakeSessionService{err: menubuilder.ErrSessionNotFound})

	w := postJSON(t, r, "/builder/session/gone/select", `{"sectionId":"sec-base","itemId":"base-ramen"}`)
	if w.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404: %s", w.Code, w.Body.String())
	}
}

func TestAdvanceHandlerReportsBlockingSections(t *testing.T) {
	r := builderRouter(&fakeSessionService{
		err: menubuilder.NewValidationError("step is missing required selections", []string{"Base"}),
	})

	w := postJSON(t, r, "/builder/session/sess-1/advance", "")
	if w.Code != http.StatusConflict {
		t.Fatalf("status %d, want 409: %s", w.Code, w.Body.String())
	}
	var body struct {
		BlockingSections []string `json:"blockingSections"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(body.BlockingSections) != 1 || body.BlockingSections[0] != "Base" {
		t.Errorf("blockingSections = %v, want [Base]", body.BlockingSections)
	}
}
