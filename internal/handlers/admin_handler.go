package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/lawfirm-api/internal/httpresp"
	"github.com/BruksfildServices01/lawfirm-api/internal/middleware"
	"github.com/BruksfildServices01/lawfirm-api/internal/seed"
)

type AdminHandler struct {
	seeder *seed.Seeder
	logger logrus.FieldLogger
}

func NewAdminHandler(seeder *seed.Seeder, logger logrus.FieldLogger) *AdminHandler {
	return &AdminHandler{seeder: seeder, logger: logger}
}

// POST /api/admin/seed
func (h *AdminHandler) Seed(c *gin.Context) {
	res, err := h.seeder.Run(c.Request.Context())
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.WithFields(logrus.Fields{
		"subject":        c.GetString(middleware.ContextAdminSubject),
		"testimonials":   res.TestimonialsSeeded,
		"practice_areas": res.PracticeAreasSeeded,
	}).Info("Seed run")

	httpresp.OK(c, res)
}
