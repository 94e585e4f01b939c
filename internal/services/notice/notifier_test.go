package notice

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/heroactions/internal/models"
	"github.com/KirkDiggler/heroactions/internal/services/notice/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogNotifierLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	n := NewLogNotifier(zap.New(core).Sugar())
	ctx := context.Background()

	require.NoError(t, n.Notify(ctx, &models.Notice{Participant: "p1", Kind: models.NoticeKindDraw, Level: models.NoticeLevelInfo, Title: "drawn"}))
	require.NoError(t, n.Notify(ctx, &models.Notice{Participant: "p1", Kind: models.NoticeKindTradeError, Level: models.NoticeLevelError, TradeID: "t1"}))
	assert.Error(t, n.Notify(ctx, nil))

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "t1", entries[1].ContextMap()["trade"])
}

func TestMultiReportsEveryFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockNotifier(ctrl)
	second := mocks.NewMockNotifier(ctrl)
	ctx := context.Background()
	n := &models.Notice{Participant: "p1"}

	boom := errors.New("boom")
	first.EXPECT().Notify(ctx, n).Return(boom)
	second.EXPECT().Notify(ctx, n).Return(nil)

	err := Multi{first, second}.Notify(ctx, n)
	assert.ErrorIs(t, err, boom)
}
