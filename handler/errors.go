package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"virtual-assistant-be/types"
)

// statusForKind maps pipeline error kinds to HTTP status codes. Unknown
// errors stay a plain 500; the underlying message is always surfaced.
func statusForKind(kind types.ErrorKind) int {
	switch kind {
	case types.ErrKindUnsupportedFormat:
		return http.StatusUnsupportedMediaType
	case types.ErrKindDocumentParse:
		return http.StatusUnprocessableEntity
	case types.ErrKindEmbedding, types.ErrKindIndex, types.ErrKindGeneration, types.ErrKindSynthesis:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	kind := types.KindOf(err)
	log.Error().Err(err).Str("kind", string(kind)).Str("path", c.Request.URL.Path).Msg("request failed")
	c.JSON(statusForKind(kind), types.ErrorResponse{
		Error: err.Error(),
		Kind:  kind,
	})
}
