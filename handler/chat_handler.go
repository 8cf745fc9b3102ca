package handler

import (
	"context"
	"encoding/base64"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"virtual-assistant-be/types"
)

// ChatTurnHandler runs one retrieve-generate-(synthesize) turn.
type ChatTurnHandler interface {
	HandleChatTurn(ctx context.Context, message string, wantVoice bool) (*types.ChatResult, error)
}

type ChatHandler struct {
	assistant ChatTurnHandler
}

func NewChatHandler(assistant ChatTurnHandler) *ChatHandler {
	return &ChatHandler{
		assistant: assistant,
	}
}

func (h *ChatHandler) HandleChat(c *gin.Context) {
	message := c.PostForm("message")
	if message == "" {
		c.JSON(http.StatusBadRequest, types.ErrorResponse{Error: "missing message"})
		return
	}
	wantVoice, _ := strconv.ParseBool(c.DefaultPostForm("voice_response", "false"))

	result, err := h.assistant.HandleChatTurn(c.Request.Context(), message, wantVoice)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, chatResponse(result))
}

func chatResponse(result *types.ChatResult) types.ChatResponse {
	resp := types.ChatResponse{
		Text:       result.Text,
		ResponseID: result.ResponseID,
	}
	if result.Audio != nil {
		resp.Audio = base64.StdEncoding.EncodeToString(result.Audio)
	}
	return resp
}
