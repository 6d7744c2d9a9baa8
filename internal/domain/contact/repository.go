package contact

import (
	"context"

	"github.com/BruksfildServices01/lawfirm-api/internal/models"
)

const CodeInvalidContactData = "invalid_contact_data"

type Repository interface {
	Insert(ctx context.Context, c *models.Contact) error
}
