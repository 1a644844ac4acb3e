package publisher

import (
	"github.com/gin-gonic/gin"

	"github.com/KOMKZ/go-pubsite-service/httpx"
)

type listRequest struct {
	IncludeWebsites bool `form:"includeWebsites"`
}

type detailRequest struct {
	ID              int64 `uri:"id"`
	IncludeWebsites bool  `form:"includeWebsites"`
}

type deleteRequest struct {
	ID int64 `uri:"id"`
}

// RegisterRoutes registers the publisher endpoints
func RegisterRoutes(rg gin.IRouter, svc *Service) {
	rg.GET("/publishers", httpx.Wrap(func(c *gin.Context, req *listRequest) ([]Response, error) {
		return svc.List(c.Request.Context(), req.IncludeWebsites)
	}))

	rg.GET("/publishers/:id", httpx.Wrap(func(c *gin.Context, req *detailRequest) (*Response, error) {
		return svc.GetByID(c.Request.Context(), req.ID, req.IncludeWebsites)
	}))

	rg.PUT("/publishers", httpx.Wrap(func(c *gin.Context, req *UpsertInput) (*Response, error) {
		return svc.Upsert(c.Request.Context(), req)
	}))

	rg.DELETE("/publishers/:id", httpx.Wrap(func(c *gin.Context, req *deleteRequest) (gin.H, error) {
		if err := svc.Delete(c.Request.Context(), req.ID); err != nil {
			return nil, err
		}
		return gin.H{"deleted": req.ID}, nil
	}))
}
