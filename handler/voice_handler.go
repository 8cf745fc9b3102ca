package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"virtual-assistant-be/types"
)

// Speech-to-text is not implemented: every voice upload is answered against
// this fixed transcript. Kept visible rather than hidden behind a fake STT
// call so the gap is obvious to API consumers reading the response text.
const placeholderTranscript = "Extracted text from audio"

type VoiceHandler struct {
	assistant ChatTurnHandler
}

func NewVoiceHandler(assistant ChatTurnHandler) *VoiceHandler {
	return &VoiceHandler{
		assistant: assistant,
	}
}

func (h *VoiceHandler) HandleVoice(c *gin.Context) {
	audio, _, err := c.Request.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "missing audio"})
		return
	}
	defer audio.Close()

	result, err := h.assistant.HandleChatTurn(c.Request.Context(), placeholderTranscript, true)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, chatResponse(result))
}
