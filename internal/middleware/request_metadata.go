package middleware

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
)

const requestMetadataKey = contextKey("requestMetadata")

// RequestMetadata is the provenance recorded alongside audit entries.
type RequestMetadata struct {
	SourceAddress string
	DeviceInfo    string
}

// maxDeviceInfoLen bounds the User-Agent stored per entry.
const maxDeviceInfoLen = 512

// RequestMetadataMiddleware captures the client address and User-Agent of
// each request into the request context.
func RequestMetadataMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		md := RequestMetadata{
			SourceAddress: c.ClientIP(),
			DeviceInfo:    truncateUTF8(c.Request.UserAgent(), maxDeviceInfoLen),
		}
		c.Request = c.Request.WithContext(WithRequestMetadata(c.Request.Context(), md))
		c.Next()
	}
}

// WithRequestMetadata returns a copy of ctx carrying md.
func WithRequestMetadata(ctx context.Context, md RequestMetadata) context.Context {
	return context.WithValue(ctx, requestMetadataKey, md)
}

// GetRequestMetadataFromCtx returns the provenance stored in ctx, if any.
func GetRequestMetadataFromCtx(ctx context.Context) (RequestMetadata, bool) {
	if ctx == nil {
		return RequestMetadata{}, false
	}
	md, ok := ctx.Value(requestMetadataKey).(RequestMetadata)
	return md, ok
}

// truncateUTF8 cuts s to at most maxBytes without splitting a rune. Invalid
// sequences in the input are dropped so the result is always valid UTF-8.
func truncateUTF8(s string, maxBytes int) string {
	if !utf8.ValidString(s) {
		s = strings.ToValidUTF8(s, "")
	}
	if len(s) <= maxBytes {
		return s
	}
	cut := maxBytes
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
