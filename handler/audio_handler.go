package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"virtual-assistant-be/types"
)

// AudioGetter resolves a response id to previously synthesized audio.
type AudioGetter interface {
	Get(id string) ([]byte, bool)
}

type AudioHandler struct {
	store AudioGetter
}

func NewAudioHandler(store AudioGetter) *AudioHandler {
	return &AudioHandler{
		store: store,
	}
}

func (h *AudioHandler) HandleGetAudio(c *gin.Context) {
	responseID := c.Param("response_id")
	audio, ok := h.store.Get(responseID)
	if !ok {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "audio not found: " + responseID})
		return
	}
	c.Data(http.StatusOK, "audio/mpeg", audio)
}
