package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// BlobHandler serves stored photo bytes.
type BlobHandler struct {
	facade BlobFacade
}

// NewBlobHandler constructs BlobHandler.
func NewBlobHandler(facade BlobFacade) *BlobHandler {
	return &BlobHandler{facade: facade}
}

// Get handles GET /api/uploads/:key.
func (h *BlobHandler) Get(c *gin.Context) {
	b, err := h.facade.OpenBlob(c.Request.Context(), c.Param("key"))
	if err != nil {
		writeError(c, err)
		return
	}
	defer b.Body.Close()

	c.DataFromReader(http.StatusOK, b.Size, b.ContentType, b.Body, nil)
}
