package deck

import (
	"context"
	"errors"
	"testing"

	"github.com/KirkDiggler/heroactions/internal/models"
	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
	ctx    context.Context
	deck   *models.Deck
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
	s.ctx = context.Background()

	s.deck = &models.Deck{
		ID:          "deck-1",
		Name:        "Hero Actions",
		Formula:     "1d3",
		Replacement: false,
		Owners:      []string{"gm-1"},
		Entries: []models.DeckEntry{
			{ID: "a", Type: models.EntryTypeText, Text: "@UUID[Item.a]{Parry}", Weight: 1, Range: [2]int{1, 1}},
			{ID: "b", Type: models.EntryTypeText, Text: "@UUID[Item.b]{Rally}", Weight: 1, Range: [2]int{2, 2}},
			{ID: "c", Type: models.EntryTypeText, Text: "@UUID[Item.c]{Dodge}", Weight: 1, Range: [2]int{3, 3}},
		},
	}
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetDeck() {
	s.Require().NoError(s.repo.SaveDeck(s.ctx, &SaveDeckInput{Deck: s.deck}))

	retrieved, err := s.repo.GetDeck(s.ctx, &GetDeckInput{DeckID: "deck-1"})
	s.Require().NoError(err)
	s.Equal(s.deck, retrieved)

	byName, err := s.repo.GetDeckByName(s.ctx, &GetDeckByNameInput{Name: "Hero Actions"})
	s.Require().NoError(err)
	s.Equal("deck-1", byName.ID)
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentDeck() {
	_, err := s.repo.GetDeck(s.ctx, &GetDeckInput{DeckID: "missing"})
	s.Equal(ErrDeckNotFound, err)

	_, err = s.repo.GetDeckByName(s.ctx, &GetDeckByNameInput{Name: "missing"})
	s.Equal(ErrDeckNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestListAndDeleteDecks() {
	s.Require().NoError(s.repo.SaveDeck(s.ctx, &SaveDeckInput{Deck: s.deck}))
	s.Require().NoError(s.repo.SaveDeck(s.ctx, &SaveDeckInput{Deck: &models.Deck{ID: "deck-2", Name: "Other"}}))

	output, err := s.repo.ListDecks(s.ctx, &ListDecksInput{})
	s.Require().NoError(err)
	s.Len(output.Decks, 2)

	s.Require().NoError(s.repo.DeleteDeck(s.ctx, &DeleteDeckInput{DeckID: "deck-2"}))

	output, err = s.repo.ListDecks(s.ctx, &ListDecksInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Decks, 1)
	s.Equal("deck-1", output.Decks[0].ID)
}

func (s *RedisRepositoryTestSuite) TestUpdateDeck() {
	s.Require().NoError(s.repo.SaveDeck(s.ctx, &SaveDeckInput{Deck: s.deck}))

	updated, err := s.repo.UpdateDeck(s.ctx, &UpdateDeckInput{
		DeckID: "deck-1",
		Mutate: func(d *models.Deck) error {
			d.Entries[1].Drawn = true
			return nil
		},
	})
	s.Require().NoError(err)
	s.True(updated.Entries[1].Drawn)

	stored, err := s.repo.GetDeck(s.ctx, &GetDeckInput{DeckID: "deck-1"})
	s.Require().NoError(err)
	s.False(stored.Entries[0].Drawn)
	s.True(stored.Entries[1].Drawn)
}

func (s *RedisRepositoryTestSuite) TestUpdateDeckMutateErrorLeavesDeck() {
	s.Require().NoError(s.repo.SaveDeck(s.ctx, &SaveDeckInput{Deck: s.deck}))

	boom := errors.New("boom")
	_, err := s.repo.UpdateDeck(s.ctx, &UpdateDeckInput{
		DeckID: "deck-1",
		Mutate: func(d *models.Deck) error {
			d.Formula = ""
			return boom
		},
	})
	s.ErrorIs(err, boom)

	stored, err := s.repo.GetDeck(s.ctx, &GetDeckInput{DeckID: "deck-1"})
	s.Require().NoError(err)
	s.Equal("1d3", stored.Formula)
}

func (s *RedisRepositoryTestSuite) TestCustomDeckRef() {
	ref, err := s.repo.GetCustomDeckRef(s.ctx)
	s.Require().NoError(err)
	s.Empty(ref)

	s.Require().NoError(s.repo.SetCustomDeckRef(s.ctx, &SetCustomDeckRefInput{DeckRef: "deck-1"}))
	ref, err = s.repo.GetCustomDeckRef(s.ctx)
	s.Require().NoError(err)
	s.Equal("deck-1", ref)

	s.Require().NoError(s.repo.SetCustomDeckRef(s.ctx, &SetCustomDeckRefInput{}))
	ref, err = s.repo.GetCustomDeckRef(s.ctx)
	s.Require().NoError(err)
	s.Empty(ref)
}
