// README: Voice transcript parsing handlers (rule-based and LLM-backed).
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"lushu/internal/voice"
)

// FieldParser is the slice of the AI provider the voice handler needs.
type FieldParser interface {
	ParseTravelFields(ctx context.Context, transcript string) (voice.TravelFields, error)
}

type VoiceHandler struct {
	extractor *voice.Extractor
	parser    FieldParser
}

func NewVoiceHandler(extractor *voice.Extractor, parser FieldParser) *VoiceHandler {
	return &VoiceHandler{extractor: extractor, parser: parser}
}

type parseReq struct {
	Transcript string `json:"transcript" binding:"required"`
}

// ParseLocal runs the rule-based extractor. It never fails on content: an
// unintelligible transcript just yields empty fields.
func (h *VoiceHandler) ParseLocal(c *gin.Context) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "transcript is required")
		return
	}
	fields := h.extractor.Extract(req.Transcript)
	writeJSON(c, http.StatusOK, fields)
}

// ParseLLM asks the configured LLM to extract the fields, falling back to
// the rule-based extractor when the model is unreachable or returns junk.
func (h *VoiceHandler) ParseLLM(c *gin.Context) {
	var req parseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "transcript is required")
		return
	}

	fields, err := h.parser.ParseTravelFields(c.Request.Context(), req.Transcript)
	if err != nil {
		fields = h.extractor.Extract(req.Transcript)
	}
	writeJSON(c, http.StatusOK, fields)
}
