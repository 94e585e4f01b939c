package discord

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/heroactions/internal/handlers/discord/mocks"
	"github.com/KirkDiggler/heroactions/internal/models"
	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ChannelNotifierTestSuite struct {
	suite.Suite
	mockCtrl   *gomock.Controller
	mockSender *mocks.MockMessageSender
	ctx        context.Context
	notice     *models.Notice
}

func (s *ChannelNotifierTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockSender = mocks.NewMockMessageSender(s.mockCtrl)
	s.ctx = context.Background()
	s.notice = &models.Notice{
		ID:          "n1",
		Participant: "p1",
		Kind:        models.NoticeKindDraw,
		Level:       models.NoticeLevelInfo,
		Title:       "Hero Actions Drawn",
		Message:     "drew two",
		Timestamp:   time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *ChannelNotifierTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestChannelNotifierSuite(t *testing.T) {
	suite.Run(t, new(ChannelNotifierTestSuite))
}

func (s *ChannelNotifierTestSuite) TestFixedChannelWins() {
	notifier := NewChannelNotifier(s.mockSender, "notices")
	notifier.Remember("p1", "table")

	s.mockSender.EXPECT().
		ChannelMessageSendEmbed("notices", gomock.Any(), gomock.Any()).
		DoAndReturn(func(channelID string, embed *discordgo.MessageEmbed, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
			s.Equal("Hero Actions Drawn", embed.Title)
			s.Equal("<@p1> drew two", embed.Description)
			s.Equal(colorInfo, embed.Color)
			return &discordgo.Message{}, nil
		})

	s.NoError(notifier.Notify(s.ctx, s.notice))
}

func (s *ChannelNotifierTestSuite) TestLastChannelIsUsed() {
	notifier := NewChannelNotifier(s.mockSender, "")
	notifier.Remember("p1", "table")
	notifier.Remember("p1", "other-table")

	s.mockSender.EXPECT().
		ChannelMessageSendEmbed("other-table", gomock.Any(), gomock.Any()).
		Return(&discordgo.Message{}, nil)

	s.NoError(notifier.Notify(s.ctx, s.notice))
}

func (s *ChannelNotifierTestSuite) TestNoChannel() {
	notifier := NewChannelNotifier(s.mockSender, "")

	err := notifier.Notify(s.ctx, s.notice)
	s.ErrorIs(err, ErrNoNoticeChannel)
}

func (s *ChannelNotifierTestSuite) TestSendFailure() {
	notifier := NewChannelNotifier(s.mockSender, "notices")
	sendErr := errors.New("rate limited")

	s.mockSender.EXPECT().
		ChannelMessageSendEmbed("notices", gomock.Any(), gomock.Any()).
		Return(nil, sendErr)

	err := notifier.Notify(s.ctx, s.notice)
	s.ErrorIs(err, sendErr)
}

func (s *ChannelNotifierTestSuite) TestNilNotice() {
	notifier := NewChannelNotifier(s.mockSender, "notices")
	s.Error(notifier.Notify(s.ctx, nil))
}
