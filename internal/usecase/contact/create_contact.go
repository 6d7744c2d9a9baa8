package contact

import (
	"context"
	"strconv"

	domain "github.com/BruksfildServices01/lawfirm-api/internal/domain/contact"
	"github.com/BruksfildServices01/lawfirm-api/internal/dto"
	"github.com/BruksfildServices01/lawfirm-api/internal/httperr"
	"github.com/BruksfildServices01/lawfirm-api/internal/models"
	"github.com/BruksfildServices01/lawfirm-api/internal/notify"
	"github.com/BruksfildServices01/lawfirm-api/internal/validators"
)

type Notifier interface {
	Dispatch(n notify.Notification)
}

type CreateContact struct {
	repo     domain.Repository
	notifier Notifier
}

func NewCreateContact(repo domain.Repository, notifier Notifier) *CreateContact {
	return &CreateContact{repo: repo, notifier: notifier}
}

func (uc *CreateContact) Execute(
	ctx context.Context,
	in dto.ContactRequest,
) (*models.Contact, error) {

	if !validators.ValidateContact(in) {
		return nil, httperr.ErrBusiness(domain.CodeInvalidContactData)
	}

	c := &models.Contact{
		Name:    in.Name,
		Email:   in.Email,
		Message: in.Message,
	}
	if err := uc.repo.Insert(ctx, c); err != nil {
		return nil, err
	}

	uc.notifier.Dispatch(notify.Notification{
		Kind:    notify.KindContactCreated,
		Subject: "New Contact Message Received",
		Body: "New Contact Message Received!\n\n" +
			"Name: " + c.Name + "\n" +
			"Email: " + c.Email + "\n" +
			"Message: " + c.Message,
		Key: strconv.FormatUint(uint64(c.ID), 10),
		Payload: contactCreatedEvent{
			ID:      c.ID,
			Name:    c.Name,
			Email:   c.Email,
			Message: c.Message,
		},
	})

	return c, nil
}

type contactCreatedEvent struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
