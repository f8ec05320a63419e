package handlers

import (
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/polkiloo/photokiosk/internal/domain/model"
	"github.com/polkiloo/photokiosk/internal/server/http/dto"
)

// UploadField is the multipart field carrying photo files.
const UploadField = "files"

// SessionHandler manages sessions and their photos.
type SessionHandler struct {
	facade SessionFacade
}

// NewSessionHandler constructs SessionHandler.
func NewSessionHandler(facade SessionFacade) *SessionHandler {
	return &SessionHandler{facade: facade}
}

// Create handles POST /api/sessions.
func (h *SessionHandler) Create(c *gin.Context) {
	ticket, err := h.facade.CreateSession(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SessionCreateResponse{
		SessionID:  ticket.ID,
		UploadPath: ticket.UploadPath,
		ExpiresAt:  ticket.ExpiresAt,
		CreatedAt:  ticket.CreatedAt,
	})
}

// Get handles GET /api/sessions/:id.
func (h *SessionHandler) Get(c *gin.Context) {
	details, err := h.facade.Session(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	// expired sessions never reach this point
	c.JSON(http.StatusOK, dto.SessionResponse{
		SessionID:      details.ID,
		Status:         string(model.SessionStatusActive),
		CreatedAt:      details.CreatedAt,
		ExpiresAt:      details.ExpiresAt,
		PhotosCount:    len(details.Photos),
		LastUploadedAt: details.LastUploadedAt(),
		Photos:         toPhotoResponses(details.Photos),
	})
}

// Photos handles GET /api/sessions/:id/photos.
func (h *SessionHandler) Photos(c *gin.Context) {
	photos, err := h.facade.Photos(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPhotoResponses(photos))
}

// Upload handles POST /api/sessions/:id/photos. A body that is not a
// multipart form counts as an upload without files so the session is
// still checked first.
func (h *SessionHandler) Upload(c *gin.Context) {
	var files []model.UploadFile
	if form, err := c.MultipartForm(); err == nil {
		files = uploadFiles(form.File[UploadField])
	}

	photos, err := h.facade.UploadPhotos(c.Request.Context(), c.Param("id"), files)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, toPhotoResponses(photos))
}

func uploadFiles(headers []*multipart.FileHeader) []model.UploadFile {
	files := make([]model.UploadFile, 0, len(headers))
	for _, fh := range headers {
		files = append(files, model.UploadFile{
			Name:        fh.Filename,
			ContentType: fh.Header.Get("Content-Type"),
			Open: func() (io.ReadCloser, error) {
				return fh.Open()
			},
		})
	}
	return files
}
