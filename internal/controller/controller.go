package controller

import (
	"net/http"
	"strconv"

	"classpoint_backend/internal/dto"
	"classpoint_backend/internal/service"

	"github.com/gin-gonic/gin"
)

const callerIDKey = "callerUserID"

// IdentityMiddleware resolves the caller identity from the X-User-ID
// header into the request context. Identity is always explicit and
// request-scoped; handlers read it with CallerID. The header stands in
// for the session layer, which is outside this subsystem.
func IdentityMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		raw := ctx.GetHeader("X-User-ID")
		if raw != "" {
			if v, err := strconv.ParseUint(raw, 10, 32); err == nil && v > 0 {
				ctx.Set(callerIDKey, uint(v))
			}
		}
		ctx.Next()
	}
}

// CallerID returns the authenticated caller's user ID, or false when the
// request carried no usable identity.
func CallerID(ctx *gin.Context) (uint, bool) {
	v, ok := ctx.Get(callerIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// ParamUint parses a positive numeric path parameter.
func ParamUint(ctx *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || v == 0 {
		return 0, false
	}
	return uint(v), true
}

// RenderError maps a service error to an HTTP status and a structured
// body. Unclassified errors become an opaque 500; no internals leak.
func RenderError(ctx *gin.Context, err error) {
	kind := service.KindOf(err)
	status := http.StatusInternalServerError
	switch kind {
	case service.KindUnauthenticated:
		status = http.StatusUnauthorized
	case service.KindForbidden, service.KindNotAMember:
		status = http.StatusForbidden
	case service.KindInvalidBatch, service.KindInvalidGrade:
		status = http.StatusBadRequest
	case service.KindResponseNotFound, service.KindAttemptNotFound, service.KindNotFound:
		status = http.StatusNotFound
	}
	ctx.JSON(status, dto.ErrorResponse{Code: string(kind), Message: service.MessageOf(err)})
}

// RenderUnauthenticated is the response for requests with no caller
// identity.
func RenderUnauthenticated(ctx *gin.Context) {
	ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
		Code:    string(service.KindUnauthenticated),
		Message: "caller identity is required",
	})
}
