// file: controllers/mock_league_service_test.go
package controllers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go-league-table/models"
	"go-league-table/services"
)

// MockLeagueService implements services.LeagueServiceInterface for testing.
type MockLeagueService struct {
	mock.Mock
}

func (m *MockLeagueService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	args := m.Called(ctx, username, password)
	return args.Get(0).(models.User), args.Error(1)
}

func (m *MockLeagueService) ListTeams(ctx context.Context) ([]models.Team, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Team), args.Error(1)
}

func (m *MockLeagueService) AddTeam(ctx context.Context, name string) (models.Team, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(models.Team), args.Error(1)
}

func (m *MockLeagueService) ListMatches(ctx context.Context) ([]models.Match, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.Match), args.Error(1)
}

func (m *MockLeagueService) GetMatch(ctx context.Context, id string) (models.Match, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Match), args.Error(1)
}

func (m *MockLeagueService) AddMatch(ctx context.Context, in services.MatchInput) (models.Match, error) {
	args := m.Called(ctx, in)
	return args.Get(0).(models.Match), args.Error(1)
}

func (m *MockLeagueService) UpdateMatch(ctx context.Context, id string, in services.MatchInput) (models.Match, error) {
	args := m.Called(ctx, id, in)
	return args.Get(0).(models.Match), args.Error(1)
}

func (m *MockLeagueService) RemoveMatch(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockLeagueService) Schedule(ctx context.Context) (services.Schedule, error) {
	args := m.Called(ctx)
	return args.Get(0).(services.Schedule), args.Error(1)
}

func (m *MockLeagueService) Standings(ctx context.Context) ([]models.StandingsRow, error) {
	args := m.Called(ctx)
	return args.Get(0).([]models.StandingsRow), args.Error(1)
}

func (m *MockLeagueService) Summary(ctx context.Context) (services.Summary, error) {
	args := m.Called(ctx)
	return args.Get(0).(services.Summary), args.Error(1)
}

func (m *MockLeagueService) GoalsByTeam(ctx context.Context) (services.ChartData, error) {
	args := m.Called(ctx)
	return args.Get(0).(services.ChartData), args.Error(1)
}

// MockPublisher records metric counts.
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) Count(name string, dimensions map[string]string) {
	m.Called(name, dimensions)
}
