// Package notice delivers finished notices to whatever presents them.
package notice

//go:generate mockgen -package=mocks -destination=mocks/mock_notifier.go github.com/KirkDiggler/heroactions/internal/services/notice Notifier

import (
	"context"
	"errors"

	"github.com/KirkDiggler/heroactions/internal/models"
	"go.uber.org/zap"
)

// Notifier presents a notice to its participant
type Notifier interface {
	Notify(ctx context.Context, notice *models.Notice) error
}

type logNotifier struct {
	logger *zap.SugaredLogger
}

// NewLogNotifier writes every notice to the log
func NewLogNotifier(logger *zap.SugaredLogger) Notifier {
	return &logNotifier{
		logger: logger,
	}
}

func (l *logNotifier) Notify(ctx context.Context, notice *models.Notice) error {
	if notice == nil {
		return errors.New("notice cannot be nil")
	}

	fields := []any{
		"participant", notice.Participant,
		"kind", notice.Kind,
		"title", notice.Title,
		"message", notice.Message,
	}
	if notice.Character != "" {
		fields = append(fields, "character", notice.Character)
	}
	if notice.TradeID != "" {
		fields = append(fields, "trade", notice.TradeID)
	}

	switch notice.Level {
	case models.NoticeLevelError:
		l.logger.Errorw("notice", fields...)
	case models.NoticeLevelWarn:
		l.logger.Warnw("notice", fields...)
	default:
		l.logger.Infow("notice", fields...)
	}

	return nil
}

// Multi fans a notice out to every notifier, reporting all failures
type Multi []Notifier

func (m Multi) Notify(ctx context.Context, notice *models.Notice) error {
	var errs []error
	for _, n := range m {
		if err := n.Notify(ctx, notice); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
