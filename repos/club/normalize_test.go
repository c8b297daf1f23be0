package club

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xorcare/pointer"
)

func TestCalculateScore(t *testing.T) {
	events := []Event{
		{Type: EventGoal, Team: TeamHome, PlayerID: "p1", Text: "1-0 p1"},
		{Type: EventGoal, Team: TeamAway, Text: "1-1"},
		{Type: "substitution", Team: TeamHome, Text: "p2 inn"},
		{Type: EventGoal, Team: TeamHome, PlayerID: "p2", Text: "2-1 p2"},
	}

	score := CalculateScore(events)
	assert.Equal(t, 2, score.Our)
	assert.Equal(t, 1, score.Their)
}

func TestCalculateScoreEmpty(t *testing.T) {
	score := CalculateScore(nil)
	assert.Equal(t, 0, score.Our)
	assert.Equal(t, 0, score.Their)
}

// Deleting an event must leave the score a pure function of what remains.
func TestCalculateScoreAfterDelete(t *testing.T) {
	events := []Event{
		{Type: EventGoal, Team: TeamHome, PlayerID: "p1"},
		{Type: EventGoal, Team: TeamHome, PlayerID: "p1"},
		{Type: EventGoal, Team: TeamAway},
	}

	remaining := append([]Event{}, events[1:]...)
	score := CalculateScore(remaining)
	assert.Equal(t, 1, score.Our)
	assert.Equal(t, 1, score.Their)
}

func TestMatchUpdatesPartial(t *testing.T) {
	updates := MatchUpdates(MatchUpdate{
		Opponent: pointer.String("Vardeneset"),
		Status:   pointer.String(StatusEnded),
	})

	assert.Len(t, updates, 2)
	assert.Equal(t, "meta.opponent", updates[0].Path)
	assert.Equal(t, "Vardeneset", updates[0].Value)
	assert.Equal(t, "status", updates[1].Path)
}

func TestMatchUpdatesNormalizesType(t *testing.T) {
	updates := MatchUpdates(MatchUpdate{Type: pointer.String("seriekamp")})

	assert.Len(t, updates, 1)
	assert.Equal(t, "meta.type", updates[0].Path)
	assert.Equal(t, "league", updates[0].Value)
}

func TestApplyEdits(t *testing.T) {
	match := Match{
		Meta:   MatchMeta{Opponent: "Viking", Type: "seriekamp", Venue: "home"},
		Status: StatusUpcoming,
	}

	edited := ApplyEdits(match, MatchUpdate{
		Our:    pointer.Int(2),
		Their:  pointer.Int(1),
		Status: pointer.String(StatusEnded),
	})

	assert.Equal(t, StatusEnded, edited.Status)
	assert.Equal(t, &Score{Our: 2, Their: 1}, edited.Score)
	// untouched fields survive
	assert.Equal(t, "Viking", edited.Meta.Opponent)
	// source match is not mutated
	assert.Equal(t, StatusUpcoming, match.Status)
	assert.Nil(t, match.Score)
}

func TestMatchUpdateValidate(t *testing.T) {
	assert.NoError(t, MatchUpdate{Status: pointer.String(StatusEnded)}.Validate())
	assert.Error(t, MatchUpdate{Status: pointer.String("CANCELLED")}.Validate())
	assert.Error(t, MatchUpdate{Our: pointer.Int(-1)}.Validate())
}

func TestNormalizeMatchDefaults(t *testing.T) {
	match := Match{ID: "m1"}
	assert.NoError(t, normalizeMatch(&match))
	assert.Equal(t, StatusEnded, match.Status)
	assert.Equal(t, SourceOfficial, match.Source)
}

func TestNormalizeMatchRejectsUnknownStatus(t *testing.T) {
	match := Match{ID: "m1", Status: "LIVE"}
	assert.Error(t, normalizeMatch(&match))
}

func TestNormalizeMatchLegacyType(t *testing.T) {
	match := Match{ID: "m1", Status: StatusEnded, Meta: MatchMeta{Type: "treningskamp"}}
	assert.NoError(t, normalizeMatch(&match))
	assert.Equal(t, "friendly", match.Meta.Type)
}
