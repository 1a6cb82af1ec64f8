// File: services/league_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go-league-table/logger"
	"go-league-table/models"
	"go-league-table/store"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTeamNameRequired   = errors.New("team name is required")
	ErrDuplicateTeam      = errors.New("this team already exists")
	ErrTeamsRequired      = errors.New("both teams are required")
	ErrSameTeams          = errors.New("home and away teams must be different")
	ErrInvalidDate        = errors.New("invalid date")
	ErrInvalidGoals       = errors.New("goals are invalid or missing")
	ErrMatchNotFound      = errors.New("match not found")

	// errNoChange aborts an update without saving.
	errNoChange = errors.New("no change")
)

var validationErrors = []error{
	ErrTeamNameRequired, ErrDuplicateTeam, ErrTeamsRequired,
	ErrSameTeams, ErrInvalidDate, ErrInvalidGoals,
}

// IsValidationError reports whether err is a form problem the user can fix.
func IsValidationError(err error) bool {
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// LeagueServiceInterface is what the controllers depend on.
type LeagueServiceInterface interface {
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	ListTeams(ctx context.Context) ([]models.Team, error)
	AddTeam(ctx context.Context, name string) (models.Team, error)

	ListMatches(ctx context.Context) ([]models.Match, error)
	GetMatch(ctx context.Context, id string) (models.Match, error)
	AddMatch(ctx context.Context, in MatchInput) (models.Match, error)
	UpdateMatch(ctx context.Context, id string, in MatchInput) (models.Match, error)
	RemoveMatch(ctx context.Context, id string) (bool, error)

	Schedule(ctx context.Context) (Schedule, error)
	Standings(ctx context.Context) ([]models.StandingsRow, error)
	Summary(ctx context.Context) (Summary, error)
	GoalsByTeam(ctx context.Context) (ChartData, error)
}

// MatchInput is the raw match form.
type MatchInput struct {
	Date      string
	Home      string
	Away      string
	Played    bool
	HomeGoals string
	AwayGoals string
}

// toMatch validates the form. Checks run in a fixed order so the first
// problem reported is always the same for a given input.
func (in MatchInput) toMatch(loc *time.Location) (models.Match, error) {
	home := strings.TrimSpace(in.Home)
	away := strings.TrimSpace(in.Away)
	if home == "" || away == "" {
		return models.Match{}, ErrTeamsRequired
	}
	if strings.EqualFold(home, away) {
		return models.Match{}, ErrSameTeams
	}

	date := strings.TrimSpace(in.Date)
	if _, err := ParseMatchDate(date, loc); err != nil {
		return models.Match{}, ErrInvalidDate
	}

	m := models.Match{Date: date, Home: home, Away: away, Played: in.Played}
	if in.Played {
		homeGoals, err := parseGoals(in.HomeGoals)
		if err != nil {
			return models.Match{}, err
		}
		awayGoals, err := parseGoals(in.AwayGoals)
		if err != nil {
			return models.Match{}, err
		}
		m.HomeGoals = &homeGoals
		m.AwayGoals = &awayGoals
	}
	return m, nil
}

func parseGoals(value string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || n < 0 {
		return 0, ErrInvalidGoals
	}
	return n, nil
}

// LeagueService applies league operations to the stored document. Every call
// loads a fresh copy; mutations are saved with the store's version check.
type LeagueService struct {
	store store.Store
	now   func() time.Time
}

func NewLeagueService(s store.Store) *LeagueService {
	return &LeagueService{store: s, now: time.Now}
}

// WithClock replaces the clock used by the schedule view.
func (s *LeagueService) WithClock(now func() time.Time) *LeagueService {
	s.now = now
	return s
}

func (s *LeagueService) load(ctx context.Context) (*models.Document, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load league: %w", err)
	}
	return doc, nil
}

// update loads the document, applies fn and saves the result. Nothing is
// written if fn fails.
func (s *LeagueService) update(ctx context.Context, fn func(doc *models.Document) error) error {
	doc, err := s.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	if err := s.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("save league: %w", err)
	}
	return nil
}

// ------------------ users ------------------

func (s *LeagueService) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return models.User{}, err
	}
	user, ok := doc.FindUser(username)
	if !ok || !checkPassword(user.Password, password) {
		return models.User{}, ErrInvalidCredentials
	}
	return user, nil
}

// EnsureAdmin seeds an admin account when the document has no users.
func (s *LeagueService) EnsureAdmin(ctx context.Context, username, password string) (bool, error) {
	if username == "" || password == "" {
		return false, nil
	}
	err := s.update(ctx, func(doc *models.Document) error {
		if len(doc.Users) > 0 {
			return errNoChange
		}
		hashed, err := HashPassword(password)
		if err != nil {
			return err
		}
		doc.Users = append(doc.Users, models.User{Username: username, Password: hashed, Role: models.RoleAdmin})
		return nil
	})
	if errors.Is(err, errNoChange) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	logger.Info.Printf("EnsureAdmin: seeded admin user %s", username)
	return true, nil
}

// ------------------ teams ------------------

func (s *LeagueService) ListTeams(ctx context.Context) ([]models.Team, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Teams, nil
}

func (s *LeagueService) AddTeam(ctx context.Context, name string) (models.Team, error) {
	team := models.Team{Name: strings.TrimSpace(name)}
	if team.Name == "" {
		return models.Team{}, ErrTeamNameRequired
	}
	err := s.update(ctx, func(doc *models.Document) error {
		if doc.HasTeam(team.Name) {
			return ErrDuplicateTeam
		}
		doc.Teams = append(doc.Teams, team)
		return nil
	})
	if err != nil {
		return models.Team{}, err
	}
	logger.Info.Printf("AddTeam: team %q added", team.Name)
	return team, nil
}

// ------------------ matches ------------------

func (s *LeagueService) ListMatches(ctx context.Context) ([]models.Match, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Matches, nil
}

func (s *LeagueService) GetMatch(ctx context.Context, id string) (models.Match, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return models.Match{}, err
	}
	i := doc.MatchIndex(id)
	if i < 0 {
		return models.Match{}, ErrMatchNotFound
	}
	return doc.Matches[i], nil
}

func (s *LeagueService) AddMatch(ctx context.Context, in MatchInput) (models.Match, error) {
	m, err := in.toMatch(s.now().Location())
	if err != nil {
		return models.Match{}, err
	}
	m.ID = uuid.NewString()
	err = s.update(ctx, func(doc *models.Document) error {
		doc.Matches = append(doc.Matches, m)
		return nil
	})
	if err != nil {
		return models.Match{}, err
	}
	logger.Info.Printf("AddMatch: %s (%s) on %s", m.ScoreLine(), m.ID, m.Date)
	return m, nil
}

// UpdateMatch replaces the match with the given id, keeping the id.
func (s *LeagueService) UpdateMatch(ctx context.Context, id string, in MatchInput) (models.Match, error) {
	m, err := in.toMatch(s.now().Location())
	if err != nil {
		return models.Match{}, err
	}
	m.ID = id
	err = s.update(ctx, func(doc *models.Document) error {
		i := doc.MatchIndex(id)
		if i < 0 {
			return ErrMatchNotFound
		}
		doc.Matches[i] = m
		return nil
	})
	if err != nil {
		return models.Match{}, err
	}
	logger.Info.Printf("UpdateMatch: %s (%s)", m.ScoreLine(), m.ID)
	return m, nil
}

// RemoveMatch deletes the match with the given id. An unknown id is a no-op
// and reports false.
func (s *LeagueService) RemoveMatch(ctx context.Context, id string) (bool, error) {
	err := s.update(ctx, func(doc *models.Document) error {
		i := doc.MatchIndex(id)
		if i < 0 {
			return errNoChange
		}
		doc.Matches = append(doc.Matches[:i], doc.Matches[i+1:]...)
		return nil
	})
	if errors.Is(err, errNoChange) {
		logger.Debug.Printf("RemoveMatch: no match with id %s", id)
		return false, nil
	}
	if err != nil {
		return false, err
	}
	logger.Info.Printf("RemoveMatch: match %s removed", id)
	return true, nil
}

// ------------------ views ------------------

func (s *LeagueService) Schedule(ctx context.Context) (Schedule, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return Schedule{}, err
	}
	return ClassifyFixtures(doc.Matches, s.now()), nil
}

func (s *LeagueService) Standings(ctx context.Context) ([]models.StandingsRow, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	return BuildStandings(doc.Matches), nil
}

func (s *LeagueService) Summary(ctx context.Context) (Summary, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return Summary{}, err
	}
	return Summarize(doc.Matches), nil
}

func (s *LeagueService) GoalsByTeam(ctx context.Context) (ChartData, error) {
	doc, err := s.load(ctx)
	if err != nil {
		return ChartData{}, err
	}
	return GoalsByTeam(doc.Matches), nil
}
