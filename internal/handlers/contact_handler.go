package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/lawfirm-api/internal/domain/contact"
	"github.com/BruksfildServices01/lawfirm-api/internal/dto"
	"github.com/BruksfildServices01/lawfirm-api/internal/httperr"
	"github.com/BruksfildServices01/lawfirm-api/internal/httpresp"
	ucContact "github.com/BruksfildServices01/lawfirm-api/internal/usecase/contact"
)

type ContactHandler struct {
	createContact *ucContact.CreateContact
	logger        logrus.FieldLogger
}

func NewContactHandler(createContact *ucContact.CreateContact, logger logrus.FieldLogger) *ContactHandler {
	return &ContactHandler{createContact: createContact, logger: logger}
}

// POST /api/contact
func (h *ContactHandler) Create(c *gin.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Warn("Invalid contact data")
		httperr.BadRequest(c, contact.CodeInvalidContactData, "Invalid contact data")
		return
	}

	msg, err := h.createContact.Execute(c.Request.Context(), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.WithField("contact_id", msg.ID).Info("Contact message created")
	httpresp.Created(c, dto.CreatedResponse{
		Message: "Contact message sent successfully",
		ID:      msg.ID,
	})
}
