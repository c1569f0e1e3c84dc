package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/SscSPs/mma_audit/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureMetadata(t *testing.T, userAgent string) middleware.RequestMetadata {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var got middleware.RequestMetadata
	r := gin.New()
	r.Use(middleware.RequestMetadataMiddleware())
	r.GET("/md", func(c *gin.Context) {
		md, ok := middleware.GetRequestMetadataFromCtx(c.Request.Context())
		require.True(t, ok)
		got = md
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/md", nil)
	req.Header.Set("User-Agent", userAgent)
	req.RemoteAddr = "203.0.113.7:51234"
	r.ServeHTTP(httptest.NewRecorder(), req)
	return got
}

func TestRequestMetadata_CapturesProvenance(t *testing.T) {
	md := captureMetadata(t, "ledger-tests/1.0")

	assert.Equal(t, "ledger-tests/1.0", md.DeviceInfo)
	assert.Equal(t, "203.0.113.7", md.SourceAddress)
}

func TestRequestMetadata_TruncatesOnRuneBoundary(t *testing.T) {
	// one ASCII byte shifts every two-byte rune so byte 512 lands mid-rune
	md := captureMetadata(t, "a"+strings.Repeat("é", 300))

	assert.True(t, utf8.ValidString(md.DeviceInfo))
	assert.LessOrEqual(t, len(md.DeviceInfo), 512)
	assert.Equal(t, 511, len(md.DeviceInfo))
	assert.True(t, strings.HasPrefix(md.DeviceInfo, "aé"))
}

func TestRequestMetadata_ShortUserAgentUnchanged(t *testing.T) {
	ua := "Mozilla/5.0 (X11; Linux x86_64) Ünïcode"
	assert.Equal(t, ua, captureMetadata(t, ua).DeviceInfo)
}
