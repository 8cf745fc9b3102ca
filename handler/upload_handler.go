package handler

import (
	"context"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"virtual-assistant-be/types"
)

const maxUploadSize = 10 << 20

// Ingestor runs the document ingestion pipeline for an uploaded file.
type Ingestor interface {
	Ingest(ctx context.Context, fileBytes []byte, filename string) (string, error)
}

type UploadHandler struct {
	ingest Ingestor
}

func NewUploadHandler(ingest Ingestor) *UploadHandler {
	return &UploadHandler{
		ingest: ingest,
	}
}

func (h *UploadHandler) HandleUpload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "missing file"})
		return
	}
	defer file.Close()

	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "file too large"})
		return
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "failed to read file"})
		return
	}

	documentID, err := h.ingest.Ingest(c.Request.Context(), fileBytes, header.Filename)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, types.UploadResponse{
		Message:    "Document processed successfully",
		DocumentID: documentID,
	})
}
