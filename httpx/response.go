// Package httpx provides the unified HTTP request/response envelope and
// centralized error-to-response mapping.
package httpx

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/KOMKZ/go-pubsite-service/database"
	"github.com/KOMKZ/go-pubsite-service/errcode"
)

// Response unified response envelope
type Response struct {
	Code int         `json:"code"`
	Msg  string      `json:"msg,omitempty"`
	Data interface{} `json:"data,omitempty"`
}

// OkJson successful response
func OkJson(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Code: 0,
		Msg:  "success",
		Data: data,
	})
}

// BadRequestJson 400 error response
func BadRequestJson(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Response{
		Code: 400,
		Msg:  err.Error(),
	})
}

// NotFoundJson 404 error response
func NotFoundJson(c *gin.Context, msg string) {
	c.JSON(http.StatusNotFound, Response{
		Code: 404,
		Msg:  msg,
	})
}

// InternalErrorJson 500 error response
func InternalErrorJson(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, Response{
		Code: 500,
		Msg:  msg,
	})
}

// NoRouteHandler 404 handler for engine.NoRoute()
func NoRouteHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, Response{
			Code: 404,
			Msg:  "route not found: " + c.Request.Method + " " + c.Request.URL.Path,
		})
	}
}

// NoMethodHandler 405 handler for engine.NoMethod()
func NoMethodHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, Response{
			Code: 405,
			Msg:  "method not allowed: " + c.Request.Method + " " + c.Request.URL.Path,
		})
	}
}

// HandleError maps an error to the unified envelope.
// LayeredError answers with its own HTTP status, code and optional data;
// a bare record-not-found answers 404; anything else answers 500.
// Server-side logging follows the configuration injected by
// ErrorLoggingMiddleware and is off without it.
func HandleError(c *gin.Context, err error) {
	if err == nil {
		return
	}

	ctx := c.Request.Context()
	state := getErrorLoggingState(c)

	var layeredErr *errcode.LayeredError
	if errors.As(err, &layeredErr) {
		if state.Enable && !state.IgnoreStatusMap[layeredErr.HTTPStatus()] {
			fields := []zap.Field{
				zap.Int("error_code", layeredErr.Code()),
				zap.String("error_msg", layeredErr.Message()),
				zap.Error(err),
			}
			switch state.LogLevel {
			case "warn":
				state.Logger.WarnCtx(ctx, "business error", fields...)
			case "info":
				state.Logger.InfoCtx(ctx, "business error", fields...)
			default:
				state.Logger.ErrorCtx(ctx, "business error", fields...)
			}
		}

		c.JSON(layeredErr.HTTPStatus(), Response{
			Code: layeredErr.Code(),
			Msg:  layeredErr.Message(),
			Data: layeredErr.Data(),
		})
		return
	}

	// errors from the repository layer that carry no code
	if errors.Is(err, database.ErrRecordNotFound) {
		if state.Enable {
			state.Logger.WarnCtx(ctx, "resource not found", zap.Error(err))
		}
		NotFoundJson(c, err.Error())
		return
	}

	if state.Enable {
		state.Logger.ErrorCtx(ctx, "unhandled error", zap.Error(err))
	}
	InternalErrorJson(c, err.Error())
}
