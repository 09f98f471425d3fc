package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"wearable_display/internal/display"
	"wearable_display/internal/models"
	"wearable_display/internal/service"

	"github.com/gin-gonic/gin"
)

func doJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var buf *bytes.Buffer
	if body != "" {
		buf = bytes.NewBufferString(body)
	} else {
		buf = &bytes.Buffer{}
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, buf)
	req.Header.Set("Content-Type", "application/json")
	for k, vv := range authHeader("valid") {
		for _, v := range vv {
			req.Header.Add(k, v)
		}
	}
	r.ServeHTTP(w, req)
	return w
}

func newDisplayRouter(nav *mockNavigation, mon *mockMonitoring) *gin.Engine {
	return newTestRouter(&service.Service{
		Authorization: &mockAuth{parseID: 1},
		Navigation:    nav,
		Monitoring:    mon,
	})
}

func TestDisplayHandlers_Screen(t *testing.T) {
	nav := &mockNavigation{screen: models.ScreenHome}
	r := newDisplayRouter(nav, &mockMonitoring{})

	w := doJSON(t, r, http.MethodPut, "/api/v1/display/screen", `{"screen":"spl_plot_ecg"}`)
	if w.Code != http.StatusOK {
		t.Fatalf("put status=%d body=%s", w.Code, w.Body.String())
	}
	if nav.screen != models.ScreenSplPlotECG {
		t.Fatalf("screen = %v", nav.screen)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/display/screen", "")
	var out struct {
		Screen string `json:"screen"`
	}
	_ = json.Unmarshal(w.Body.Bytes(), &out)
	if w.Code != http.StatusOK || out.Screen != "SPL_PLOT_ECG" {
		t.Fatalf("get status=%d body=%s", w.Code, w.Body.String())
	}
}

func TestDisplayHandlers_ScreenErrors(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		navErr error
		want   int
	}{
		{"unknown name", `{"screen":"WATCHFACE"}`, nil, http.StatusBadRequest},
		{"malformed json", `{"screen":`, nil, http.StatusBadRequest},
		{"out of range id", `{"screen":99}`, display.ErrInvalidScreen, http.StatusBadRequest},
		{"missing screen", `{}`, nil, http.StatusBadRequest},
		{"null screen", `{"screen":null}`, nil, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newDisplayRouter(&mockNavigation{err: tt.navErr}, &mockMonitoring{})
			w := doJSON(t, r, http.MethodPut, "/api/v1/display/screen", tt.body)
			if w.Code != tt.want {
				t.Fatalf("status=%d want %d body=%s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestDisplayHandlers_NavigateAndGesture(t *testing.T) {
	nav := &mockNavigation{}
	r := newDisplayRouter(nav, &mockMonitoring{})

	w := doJSON(t, r, http.MethodPost, "/api/v1/display/navigate", `{"screen":"SPL_SPO2_MEASURE","direction":"up","args":[1,2,3,4]}`)
	if w.Code != http.StatusAccepted {
		t.Fatalf("navigate status=%d body=%s", w.Code, w.Body.String())
	}
	want := models.NavContext{Screen: models.ScreenSplSpO2Measure, Direction: models.ScrollUp, Args: [4]uint32{1, 2, 3, 4}}
	if nav.lastNav != want {
		t.Fatalf("nav = %+v", nav.lastNav)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/display/gesture", `{"gesture":"swipe_left"}`)
	if w.Code != http.StatusAccepted || nav.lastG != models.GestureSwipeLeft {
		t.Fatalf("gesture status=%d g=%v", w.Code, nav.lastG)
	}

	w = doJSON(t, r, http.MethodPost, "/api/v1/display/activity", "")
	if w.Code != http.StatusOK || nav.activity != 1 {
		t.Fatalf("activity status=%d n=%d", w.Code, nav.activity)
	}
}

func TestDisplayHandlers_ScreenRequired(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{"put without screen", http.MethodPut, "/api/v1/display/screen", `{}`},
		{"navigate without screen", http.MethodPost, "/api/v1/display/navigate", `{"direction":"up"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nav := &mockNavigation{screen: models.ScreenHR}
			r := newDisplayRouter(nav, &mockMonitoring{})
			w := doJSON(t, r, tt.method, tt.path, tt.body)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("status=%d body=%s", w.Code, w.Body.String())
			}
			if nav.screen != models.ScreenHR || nav.lastNav != (models.NavContext{}) {
				t.Fatalf("request reached the service: screen=%v nav=%+v", nav.screen, nav.lastNav)
			}
		})
	}
}

func TestDisplayHandlers_CommandErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"busy", fmt.Errorf("gesture: %w", service.ErrDisplayBusy), http.StatusTooManyRequests},
		{"invalid", fmt.Errorf("%w: gesture NONE", service.ErrInvalidInput), http.StatusBadRequest},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
		{"powered off", fmt.Errorf("navigate: %w", display.ErrDisplayOff), http.StatusConflict},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newDisplayRouter(&mockNavigation{err: tt.err}, &mockMonitoring{})
			w := doJSON(t, r, http.MethodPost, "/api/v1/display/gesture", `{"gesture":"TAP"}`)
			if w.Code != tt.want {
				t.Fatalf("status=%d want %d body=%s", w.Code, tt.want, w.Body.String())
			}
		})
	}
}

func TestDisplayHandlers_StatusAndSnapshot(t *testing.T) {
	at := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	mon := &mockMonitoring{
		status: models.DisplayStatus{State: models.StateSleep, Screen: models.ScreenSpO2, LowBattery: true},
		snap: models.SavedSnapshot{
			Context:   models.NavContext{Screen: models.ScreenSpO2},
			Saved:     true,
			UpdatedAt: at,
		},
	}
	r := newDisplayRouter(&mockNavigation{}, mon)

	w := doJSON(t, r, http.MethodGet, "/api/v1/display/status", "")
	var st models.DisplayStatus
	if err := json.Unmarshal(w.Body.Bytes(), &st); err != nil || w.Code != http.StatusOK {
		t.Fatalf("status=%d err=%v", w.Code, err)
	}
	if st.State != models.StateSleep || !st.LowBattery {
		t.Fatalf("status = %+v", st)
	}

	w = doJSON(t, r, http.MethodGet, "/api/v1/display/snapshot", "")
	var snap models.SavedSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil || w.Code != http.StatusOK {
		t.Fatalf("snapshot status=%d err=%v", w.Code, err)
	}
	if !snap.Saved || snap.Context.Screen != models.ScreenSpO2 || !snap.UpdatedAt.Equal(at) {
		t.Fatalf("snapshot = %+v", snap)
	}

	mon.snapErr = errors.New("db down")
	if w = doJSON(t, r, http.MethodGet, "/api/v1/display/snapshot", ""); w.Code != http.StatusInternalServerError {
		t.Fatalf("snapshot error status=%d", w.Code)
	}
}

func TestDisplayHandlers_RequireAuth(t *testing.T) {
	r := newDisplayRouter(&mockNavigation{}, &mockMonitoring{})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/display/status", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}
