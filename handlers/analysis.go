package handlers

import (
	"errors"
	"net/http"

	"zodiac/models"
	"zodiac/services/analysis"
	"zodiac/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AnalysisHandler serves POST /zodiac-analysis in batch or single mode.
type AnalysisHandler struct {
	Service analysis.AnalysisService
}

func NewAnalysisHandler(svc analysis.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{Service: svc}
}

// ZodiacAnalysisHandler returns every catalog section keyed by label.
// Per-section failures are placeholder text inside a 200.
func (h *AnalysisHandler) ZodiacAnalysisHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.ZodiacAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	level := models.ParseDetailLevel(req.DetailLevel)
	results, err := h.Service.AnalyzeAll(c.Request.Context(), req.Profile(), level)
	if err != nil {
		h.handleError(c, logger, err)
		return
	}

	logger.Info("Zodiac analysis completed",
		zap.String("detail_level", string(level)),
		zap.Int("sections", len(results)),
	)
	c.JSON(http.StatusOK, results)
}

// SectionAnalysisHandler returns one caller-named section. The label is not
// checked against the catalog.
func (h *AnalysisHandler) SectionAnalysisHandler(c *gin.Context) {
	logger := getLogger(c)

	var req models.SectionAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid input", err.Error())
		return
	}

	level := models.ParseDetailLevel(req.DetailLevel)
	result, err := h.Service.AnalyzeSection(c.Request.Context(), req.Profile(), models.SectionLabel(req.Section), level)
	if err != nil {
		h.handleError(c, logger, err)
		return
	}

	logger.Info("Section analysis completed",
		zap.String("section", req.Section),
		zap.String("detail_level", string(level)),
	)
	c.JSON(http.StatusOK, models.SectionAnalysisResponse{
		Section:  string(result.Section),
		Analysis: result.Text,
	})
}

func (h *AnalysisHandler) handleError(c *gin.Context, logger *zap.Logger, err error) {
	if errors.Is(err, analysis.ErrInvalidProfile) {
		utils.JSONError(c, http.StatusBadRequest, "Invalid birth profile", err.Error())
		return
	}
	logger.Error("Zodiac analysis failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Analysis failed", "")
}
