package http

import (
	"io"

	"github.com/gin-gonic/gin"
)

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processRefreshReq binds the optional refresh body. An empty body means
// refresh every plant.
func (h *handler) processRefreshReq(c *gin.Context) (refreshReq, error) {
	var req refreshReq
	if err := c.ShouldBindJSON(&req); err != nil && err != io.EOF {
		return req, err
	}
	return req, req.validate()
}
