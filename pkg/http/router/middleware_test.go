package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	da "github.com/lintang-b-s/Wayfindx/pkg/datastructure"
	"github.com/lintang-b-s/Wayfindx/pkg/engine/routing"
	"github.com/lintang-b-s/Wayfindx/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type stubRoutingService struct{}

func (stubRoutingService) ComputeRoute(ctx context.Context, userID, buildingID, from, to string,
	preferences routing.Preferences, algorithm string) (*da.Route, error) {
	return &da.Route{Algorithm: "dijkstra"}, nil
}

func (stubRoutingService) NearestLandmark(ctx context.Context, buildingID, floor string, x, y float64) (da.Landmark,
	float64, error) {
	return da.Landmark{}, 0, nil
}

func (stubRoutingService) History(userID string) []storage.HistoryEntry {
	return nil
}

type stubCatalog struct{}

func (stubCatalog) ListBuildings() []storage.BuildingInfo {
	return []storage.BuildingInfo{{ID: "eng", Name: "Engineering"}}
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestHandler(t *testing.T) {
	handler := NewAPI(zap.NewNop()).Handler(RateLimit{}, stubRoutingService{}, stubCatalog{})

	testCases := []struct {
		name       string
		target     string
		wantStatus int
		wantBody   string
	}{
		{name: "heartbeat", target: "/healthz", wantStatus: http.StatusOK, wantBody: "."},
		{name: "buildings", target: "/api/buildings", wantStatus: http.StatusOK, wantBody: `"engineering"`},
		{name: "metrics", target: "/metrics", wantStatus: http.StatusOK, wantBody: "go_goroutines"},
		{name: "unknown route", target: "/api/unknown", wantStatus: http.StatusNotFound},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, strings.ToLower(rec.Body.String()), strings.ToLower(tt.wantBody))
			assert.NotEmpty(t, rec.Header().Get(REQUEST_ID_HEADER))
		})
	}
}

func TestRequestID(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	generated := rec.Header().Get(REQUEST_ID_HEADER)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, seen)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(REQUEST_ID_HEADER, "abc-123")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, "abc-123", rec.Header().Get(REQUEST_ID_HEADER))
	assert.Equal(t, "abc-123", seen)
}

func TestRealIP(t *testing.T) {
	testCases := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{name: "forwarded for", headers: map[string]string{"X-Forwarded-For": "10.0.0.7, 172.16.0.1"}, want: "10.0.0.7"},
		{name: "real ip", headers: map[string]string{"X-Real-IP": " 10.0.0.9 "}, want: "10.0.0.9"},
		{name: "forwarded for wins", headers: map[string]string{"X-Forwarded-For": "10.0.0.7", "X-Real-IP": "10.0.0.9"},
			want: "10.0.0.7"},
		{name: "garbage is ignored", headers: map[string]string{"X-Real-IP": "not-an-ip"}, want: "192.0.2.1:1234"},
		{name: "no headers", want: "192.0.2.1:1234"},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			var got string
			handler := RealIP(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				got = r.RemoteAddr
			}))
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEnforceJSONHandler(t *testing.T) {
	testCases := []struct {
		name        string
		method      string
		body        string
		contentType string
		wantStatus  int
	}{
		{name: "get without body", method: http.MethodGet, wantStatus: http.StatusOK},
		{name: "json body", method: http.MethodPost, body: "{}", contentType: "application/json; charset=utf-8",
			wantStatus: http.StatusOK},
		{name: "missing content type", method: http.MethodPost, body: "{}", wantStatus: http.StatusBadRequest},
		{name: "wrong content type", method: http.MethodPost, body: "a=b", contentType: "text/plain",
			wantStatus: http.StatusUnsupportedMediaType},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/", strings.NewReader(tt.body))
			if tt.contentType != "" {
				req.Header.Set("Content-Type", tt.contentType)
			}
			rec := httptest.NewRecorder()
			EnforceJSONHandler(okHandler).ServeHTTP(rec, req)
			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestRecoverPanic(t *testing.T) {
	core, logs := observer.New(zapcore.ErrorLevel)
	api := NewAPI(zap.New(core))
	handler := api.recoverPanic(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	require.NotPanics(t, func() {
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/buildings", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "internal_error")
	assert.Equal(t, 1, logs.FilterMessage("panic while serving request").Len())
}

func TestLimit(t *testing.T) {
	handler := Limit(0.001, 2)(okHandler)

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
		statuses = append(statuses, rec.Code)
		if rec.Code == http.StatusTooManyRequests {
			assert.Equal(t, "1", rec.Header().Get("Retry-After"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

func TestLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	handler := RequestID(Logger(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte("missing"))
	})))

	req := httptest.NewRequest(http.MethodGet, "/api/buildings/x/route", nil)
	req.Header.Set(REQUEST_ID_HEADER, "req-1")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request completed").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "req-1", fields["request_id"])
	assert.Equal(t, "/api/buildings/x/route", fields["path"])
	assert.EqualValues(t, http.StatusNotFound, fields["status"])
	assert.EqualValues(t, len("missing"), fields["bytes"])
}
