package stats

import (
	"sort"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"

	"github.com/refleksjon/coach-sync/pkg/matchtype"
	club "github.com/refleksjon/coach-sync/repos/club"
)

type StatsService struct {
	firestoreClient *firestore.Client
	firebaseApp     *firebase.App
	clubService     *club.Service
	options         Options
}

func NewStatsService(firestoreClient *firestore.Client, firebaseApp *firebase.App, clubService *club.Service, options Options) *StatsService {
	return &StatsService{
		firestoreClient: firestoreClient,
		firebaseApp:     firebaseApp,
		clubService:     clubService,
		options:         options,
	}
}

// SeasonStats aggregates every ENDED canonical match, optionally restricted
// to one match type. Both the english tags and the legacy Norwegian ones
// select the same matches.
func (s *StatsService) SeasonStats(c *gin.Context, typeFilter string) ([]PlayerStatLine, error) {
	matches, err := s.clubService.ListEndedMatches(c)
	if err != nil {
		return nil, err
	}

	if typeFilter != "" {
		matches = FilterByType(matches, typeFilter)
	}

	return Aggregate(matches, s.options), nil
}

// MatchStats aggregates a single match.
func (s *StatsService) MatchStats(c *gin.Context, matchID string) ([]PlayerStatLine, error) {
	match, err := s.clubService.GetMatch(c, matchID)
	if err != nil {
		return nil, err
	}

	return Aggregate([]club.Match{*match}, s.options), nil
}

// FilterByType keeps the matches whose meta.type denotes the given type,
// across english and legacy spellings.
func FilterByType(matches []club.Match, typeFilter string) []club.Match {
	var out []club.Match
	for _, match := range matches {
		if matchtype.Same(match.Meta.Type, typeFilter) {
			out = append(out, match)
		}
	}
	return out
}

// Aggregate folds a match set into one stat line per player. Cost is linear
// in total events plus total playingTime entries; nothing is cached. An
// UPCOMING match contributes nothing.
func Aggregate(matches []club.Match, options Options) []PlayerStatLine {
	lines := map[string]*PlayerStatLine{}
	var order []string

	line := func(playerID, name string) *PlayerStatLine {
		if existing, ok := lines[playerID]; ok {
			return existing
		}
		created := &PlayerStatLine{PlayerID: playerID, Name: name}
		lines[playerID] = created
		order = append(order, playerID)
		return created
	}

	for _, match := range matches {
		if match.Status != club.StatusEnded {
			continue
		}

		for _, entry := range match.PlayingTime {
			stat := line(entry.PlayerID, entry.Name)
			stat.Matches++
			stat.Minutes += entry.Minutes

			for _, card := range entry.Cards {
				switch card.Type {
				case club.CardYellow:
					stat.Yellow++
				case club.CardRed:
					stat.Red++
				}
			}
		}

		for _, event := range match.Events {
			if event.Type != club.EventGoal || event.Team != club.TeamHome || event.PlayerID == "" {
				continue
			}
			stat, ok := lines[event.PlayerID]
			if !ok {
				if !options.CountUnrosteredScorers {
					// Scorer never appears in any playingTime list. Dropped,
					// matching the original record keeping.
					continue
				}
				stat = line(event.PlayerID, "")
			}
			stat.Goals++
		}
	}

	out := make([]PlayerStatLine, 0, len(order))
	for _, playerID := range order {
		out = append(out, *lines[playerID])
	}

	// Descending by minutes, ties keep encounter order.
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Minutes > out[j].Minutes
	})
	return out
}
