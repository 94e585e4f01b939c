package character

import (
	"context"
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

	s.Require().NoError(s.repo.SaveCharacter(s.ctx, &SaveCharacterInput{
		Character: &models.Character{
			ID:         "char-1",
			Name:       "Mira",
			Type:       models.CharacterTypeCharacter,
			Owners:     []string{"user-1"},
			HeroPoints: 2,
		},
	}))
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestSaveAndGetCharacter() {
	c, err := s.repo.GetCharacter(s.ctx, &GetCharacterInput{CharacterID: "char-1"})
	s.Require().NoError(err)
	s.Equal("Mira", c.Name)
	s.Equal(models.CharacterTypeCharacter, c.Type)
	s.Equal([]string{"user-1"}, c.Owners)
	s.Equal(2, c.HeroPoints)
}

func (s *RedisRepositoryTestSuite) TestGetNonExistentCharacter() {
	_, err := s.repo.GetCharacter(s.ctx, &GetCharacterInput{CharacterID: "ghost"})
	s.Require().Error(err)
	s.Equal(ErrCharacterNotFound, err)
}

func (s *RedisRepositoryTestSuite) TestSpendPoints() {
	output, err := s.repo.SpendPoints(s.ctx, &SpendPointsInput{CharacterID: "char-1", Amount: 1})
	s.Require().NoError(err)
	s.Equal(1, output.Remaining)

	output, err = s.repo.SpendPoints(s.ctx, &SpendPointsInput{CharacterID: "char-1", Amount: 1})
	s.Require().NoError(err)
	s.Equal(0, output.Remaining)

	// Exhausted: the balance is left alone
	_, err = s.repo.SpendPoints(s.ctx, &SpendPointsInput{CharacterID: "char-1", Amount: 1})
	s.ErrorIs(err, ErrInsufficientPoints)

	c, err := s.repo.GetCharacter(s.ctx, &GetCharacterInput{CharacterID: "char-1"})
	s.Require().NoError(err)
	s.Equal(0, c.HeroPoints)
}

func (s *RedisRepositoryTestSuite) TestSpendPointsMissingCharacter() {
	_, err := s.repo.SpendPoints(s.ctx, &SpendPointsInput{CharacterID: "ghost", Amount: 1})
	s.ErrorIs(err, ErrCharacterNotFound)
}

func (s *RedisRepositoryTestSuite) TestAddPointsClampsAtZero() {
	output, err := s.repo.AddPoints(s.ctx, &AddPointsInput{CharacterID: "char-1", Amount: 3})
	s.Require().NoError(err)
	s.Equal(5, output.Total)

	output, err = s.repo.AddPoints(s.ctx, &AddPointsInput{CharacterID: "char-1", Amount: -10})
	s.Require().NoError(err)
	s.Equal(0, output.Total)
}
