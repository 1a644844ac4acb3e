package httpx

import (
	"github.com/gin-gonic/gin"

	"github.com/KOMKZ/go-pubsite-service/validator"
)

// HandlerFunc generic handler signature
// Req is parsed from the request (uri/form/json tags), Resp is wrapped
// in the response envelope
type HandlerFunc[Req any, Resp any] func(c *gin.Context, req *Req) (Resp, error)

// Wrap turns a typed handler into a gin handler
// Parsing, validation, error mapping and the response envelope are
// handled here so business handlers stay free of HTTP details
func Wrap[Req any, Resp any](handler HandlerFunc[Req, Resp]) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req Req
		if err := Parse(c, &req); err != nil {
			HandleError(c, err)
			return
		}

		if validatableReq, ok := any(&req).(validator.Validatable); ok {
			if err := validator.ValidateRequest(validatableReq); err != nil {
				HandleError(c, err)
				return
			}
		}

		resp, err := handler(c, &req)
		if err != nil {
			HandleError(c, err)
			return
		}

		OkJson(c, resp)
	}
}
