package server_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/subvault/subvault-api/internal/api/rest"
	"github.com/subvault/subvault-api/internal/api/server"
	"github.com/subvault/subvault-api/internal/mocks"
	"github.com/subvault/subvault-api/internal/ratelimit"
)

var testNow = time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)

// newRouter builds the full router with a local-only limiter allowing one
// nonce request per minute per client IP
func newRouter(t *testing.T, trustedProxies []string) *gin.Engine {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	clock := mocks.NewMockClock(ctrl)
	clock.EXPECT().Now().Return(testNow).AnyTimes()

	limiter, err := ratelimit.NewLimiter(ratelimit.Config{
		Policies: []ratelimit.Policy{
			{Name: rest.POLICY_NONCE, RequestsPerMinute: 1, Burst: 1},
			{Name: rest.POLICY_VERIFY, RequestsPerMinute: 1, Burst: 1},
		},
	}, nil, clock)
	require.NoError(t, err)
	t.Cleanup(func() { _ = limiter.Close() })

	authService := mocks.NewMockAuthService(ctrl)
	authService.EXPECT().IssueNonce(gomock.Any()).Return("0123456789abcdef0123", nil).AnyTimes()

	srv := server.New(server.Config{TrustedProxies: trustedProxies},
		mocks.NewMockAPIExecutor(ctrl), authService, limiter)
	return srv.Router()
}

func requestNonce(router *gin.Engine, remoteAddr, forwardedFor string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/nonce", nil)
	req.RemoteAddr = remoteAddr
	if forwardedFor != "" {
		req.Header.Set("X-Forwarded-For", forwardedFor)
		req.Header.Set("X-Real-IP", forwardedFor)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRouter_ForwardedForIsIgnoredWithoutTrustedProxies(t *testing.T) {
	router := newRouter(t, nil)

	w := requestNonce(router, "203.0.113.7:41000", "198.51.100.1")
	assert.Equal(t, http.StatusOK, w.Code)

	// rotating the forwarded address must not reset the budget of the real peer
	for i := 2; i <= 4; i++ {
		w = requestNonce(router, "203.0.113.7:41000", fmt.Sprintf("198.51.100.%d", i))
		assert.Equal(t, http.StatusTooManyRequests, w.Code, "forwarded address 198.51.100.%d", i)
		assert.NotEmpty(t, w.Header().Get("Retry-After"))
	}

	// another peer still has its own budget
	w = requestNonce(router, "203.0.113.8:41000", "")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_ForwardedForFromTrustedProxy(t *testing.T) {
	router := newRouter(t, []string{"10.0.0.0/8"})

	w := requestNonce(router, "10.1.2.3:5000", "198.51.100.1")
	assert.Equal(t, http.StatusOK, w.Code)

	w = requestNonce(router, "10.1.2.3:5000", "198.51.100.2")
	assert.Equal(t, http.StatusOK, w.Code)

	w = requestNonce(router, "10.1.2.3:5000", "198.51.100.1")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	// an untrusted peer cannot borrow a forwarded identity
	w = requestNonce(router, "203.0.113.7:41000", "198.51.100.9")
	assert.Equal(t, http.StatusOK, w.Code)
	w = requestNonce(router, "203.0.113.7:41000", "198.51.100.10")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRouter_InvalidTrustedProxiesTrustNone(t *testing.T) {
	router := newRouter(t, []string{"not-an-ip"})

	w := requestNonce(router, "203.0.113.7:41000", "198.51.100.1")
	assert.Equal(t, http.StatusOK, w.Code)

	w = requestNonce(router, "203.0.113.7:41000", "198.51.100.2")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}
