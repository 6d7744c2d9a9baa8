package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/lawfirm-api/internal/domain/content"
	"github.com/BruksfildServices01/lawfirm-api/internal/dto"
	"github.com/BruksfildServices01/lawfirm-api/internal/httpresp"
)

type ContentHandler struct {
	testimonials  content.TestimonialRepository
	practiceAreas content.PracticeAreaRepository
	logger        logrus.FieldLogger
}

func NewContentHandler(
	testimonials content.TestimonialRepository,
	practiceAreas content.PracticeAreaRepository,
	logger logrus.FieldLogger,
) *ContentHandler {
	return &ContentHandler{
		testimonials:  testimonials,
		practiceAreas: practiceAreas,
		logger:        logger,
	}
}

// GET /api/testimonials
func (h *ContentHandler) Testimonials(c *gin.Context) {
	items, err := h.testimonials.All(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	out := make([]dto.TestimonialDTO, 0, len(items))
	for _, t := range items {
		out = append(out, dto.NewTestimonialDTO(t))
	}

	h.logger.Info("Testimonials retrieved")
	httpresp.List(c, out)
}

// GET /api/practice-areas
func (h *ContentHandler) PracticeAreas(c *gin.Context) {
	items, err := h.practiceAreas.All(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	out := make([]dto.PracticeAreaDTO, 0, len(items))
	for _, pa := range items {
		out = append(out, dto.NewPracticeAreaDTO(pa))
	}

	h.logger.Info("Practice areas retrieved")
	httpresp.List(c, out)
}
