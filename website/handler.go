package website

import (
	"github.com/gin-gonic/gin"

	"github.com/KOMKZ/go-pubsite-service/httpx"
)

type listRequest struct {
	PublisherID      int64 `form:"publisherId"`
	IncludePublisher bool  `form:"includePublisher"`
}

type detailRequest struct {
	ID               int64 `uri:"id"`
	IncludePublisher bool  `form:"includePublisher"`
}

type deleteRequest struct {
	ID int64 `uri:"id"`
}

// RegisterRoutes registers the website endpoints
// A publisherId query on the list endpoint scopes it to that publisher
func RegisterRoutes(rg gin.IRouter, svc *Service) {
	rg.GET("/websites", httpx.Wrap(func(c *gin.Context, req *listRequest) ([]Response, error) {
		if req.PublisherID > 0 {
			return svc.ListByPublisher(c.Request.Context(), req.PublisherID, req.IncludePublisher)
		}
		return svc.List(c.Request.Context(), req.IncludePublisher)
	}))

	rg.GET("/websites/:id", httpx.Wrap(func(c *gin.Context, req *detailRequest) (*Response, error) {
		return svc.GetByID(c.Request.Context(), req.ID, req.IncludePublisher)
	}))

	rg.PUT("/websites", httpx.Wrap(func(c *gin.Context, req *UpsertInput) (*Response, error) {
		return svc.Upsert(c.Request.Context(), req)
	}))

	rg.DELETE("/websites/:id", httpx.Wrap(func(c *gin.Context, req *deleteRequest) (gin.H, error) {
		if err := svc.Delete(c.Request.Context(), req.ID); err != nil {
			return nil, err
		}
		return gin.H{"deleted": req.ID}, nil
	}))
}
