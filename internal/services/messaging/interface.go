package messaging

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/heroactions/internal/services/messaging Service

import "context"

// Service composes the human-readable text of notices
type Service interface {
	// GetNoticeMessage returns the title and body for an outcome
	GetNoticeMessage(ctx context.Context, input *GetNoticeMessageInput) (*GetNoticeMessageOutput, error)

	// GetErrorMessage returns a user-friendly error message
	GetErrorMessage(ctx context.Context, input *GetErrorMessageInput) (*GetErrorMessageOutput, error)
}
