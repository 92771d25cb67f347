package routes

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"paystand_bridge/internal/adapter/http/handlers"
	"paystand_bridge/internal/adapter/http/handlers/mocks"
	"paystand_bridge/internal/domain/entities"
	"paystand_bridge/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("ping", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newRouter(handlers.NewPaystandHandler(mocks.NewMockIPaystandUseCase(ctrl)))

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || w.Body.String() != `{"message":"pong"}` {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
		if w.Header().Get(RequestIDHeader) == "" {
			t.Fatalf("expected request id header")
		}
	})

	t.Run("request id is propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newRouter(handlers.NewPaystandHandler(mocks.NewMockIPaystandUseCase(ctrl)))

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set(RequestIDHeader, "req-123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if got := w.Header().Get(RequestIDHeader); got != "req-123" {
			t.Fatalf("expected req-123, got %q", got)
		}
	})

	t.Run("authenticated route without header", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newRouter(handlers.NewPaystandHandler(mocks.NewMockIPaystandUseCase(ctrl)))

		req := httptest.NewRequest(http.MethodPost, "/payer", bytes.NewBufferString(`{"namep":"Jane","email":"j@x.test"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("token route is public", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIPaystandUseCase(ctrl)
		r := newRouter(handlers.NewPaystandHandler(uc))

		uc.EXPECT().ExchangeToken(gomock.Any(), gomock.Any()).Return(usecase.ProxyReply{
			Result: entities.UpstreamResult{Kind: entities.UpstreamSuccess, Raw: []byte(`{"access_token":"t"}`), Status: http.StatusOK},
		}, nil)

		req := httptest.NewRequest(http.MethodPost, "/paystand/token", bytes.NewBufferString(`{"grant_type":"client_credentials","client_id":"c","client_secret":"s"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("cors preflight", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newRouter(handlers.NewPaystandHandler(mocks.NewMockIPaystandUseCase(ctrl)))

		req := httptest.NewRequest(http.MethodOptions, "/payer", nil)
		req.Header.Set("Origin", "https://app.example.test")
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		req.Header.Set("Access-Control-Request-Headers", "Authorization, Content-Type")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
		if w.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Fatalf("expected wildcard origin, got %q", w.Header().Get("Access-Control-Allow-Origin"))
		}
	})

	t.Run("gzip", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newRouter(handlers.NewPaystandHandler(mocks.NewMockIPaystandUseCase(ctrl)))

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("Accept-Encoding", "gzip")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Header().Get("Content-Encoding") != "gzip" {
			t.Fatalf("expected gzip encoding, got %q", w.Header().Get("Content-Encoding"))
		}
	})

	t.Run("swagger doc", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := newRouter(handlers.NewPaystandHandler(mocks.NewMockIPaystandUseCase(ctrl)))

		req := httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK || !bytes.Contains(w.Body.Bytes(), []byte("/payer/addBank")) {
			t.Fatalf("unexpected swagger response %d", w.Code)
		}
	})
}
