package document

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/heroactions/internal/repositories/document Repository

import (
	"context"

	"github.com/KirkDiggler/heroactions/internal/models"
)

// Repository stores the documents deck entries resolve to
type Repository interface {
	SaveDocument(ctx context.Context, input *SaveDocumentInput) error
	GetDocument(ctx context.Context, input *GetDocumentInput) (*models.Document, error)
}

type SaveDocumentInput struct {
	Document *models.Document
}

type GetDocumentInput struct {
	// Reference is the full document reference
	Reference string
}
