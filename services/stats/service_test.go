package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"

	club "github.com/refleksjon/coach-sync/repos/club"
)

func endedMatch(id string, playingTime []club.PlayingTime, events []club.Event) club.Match {
	return club.Match{
		ID:          id,
		Status:      club.StatusEnded,
		PlayingTime: playingTime,
		Events:      events,
	}
}

func TestAggregateMinutesAndCards(t *testing.T) {
	matches := []club.Match{
		endedMatch("m1", []club.PlayingTime{
			{PlayerID: "p1", Name: "Ola", Minutes: 60, Cards: []club.Card{{Type: club.CardYellow}}},
			{PlayerID: "p2", Name: "Kari", Minutes: 70},
		}, nil),
		endedMatch("m2", []club.PlayingTime{
			{PlayerID: "p1", Name: "Ola", Minutes: 30, Cards: []club.Card{{Type: club.CardYellow}, {Type: club.CardRed}}},
		}, nil),
	}

	lines := Aggregate(matches, Options{})

	assert.Len(t, lines, 2)

	byID := map[string]PlayerStatLine{}
	for _, line := range lines {
		byID[line.PlayerID] = line
	}

	assert.Equal(t, 2, byID["p1"].Matches)
	assert.Equal(t, 90, byID["p1"].Minutes)
	assert.Equal(t, 2, byID["p1"].Yellow)
	assert.Equal(t, 1, byID["p1"].Red)
	assert.Equal(t, 1, byID["p2"].Matches)
	assert.Equal(t, 70, byID["p2"].Minutes)
}

// Missing minutes contribute 0, the appearance still counts.
func TestAggregateMissingMinutes(t *testing.T) {
	matches := []club.Match{
		endedMatch("m1", []club.PlayingTime{{PlayerID: "p1", Name: "Ola"}}, nil),
	}

	lines := Aggregate(matches, Options{})

	assert.Len(t, lines, 1)
	assert.Equal(t, 1, lines[0].Matches)
	assert.Equal(t, 0, lines[0].Minutes)
}

func TestAggregateGoalAttribution(t *testing.T) {
	matches := []club.Match{
		endedMatch("m1",
			[]club.PlayingTime{{PlayerID: "p1", Name: "Ola", Minutes: 90}},
			[]club.Event{
				{Type: club.EventGoal, Team: club.TeamHome, PlayerID: "p1"},
				{Type: club.EventGoal, Team: club.TeamHome, PlayerID: "p2"}, // no playing time anywhere
				{Type: club.EventGoal, Team: club.TeamAway, PlayerID: "p1"}, // opponent goal, never credited
				{Type: club.EventGoal, Team: club.TeamHome},                 // no player reference
			}),
	}

	lines := Aggregate(matches, Options{})

	assert.Len(t, lines, 1)
	assert.Equal(t, "p1", lines[0].PlayerID)
	assert.Equal(t, 1, lines[0].Goals)
}

func TestAggregateUnrosteredScorersOption(t *testing.T) {
	matches := []club.Match{
		endedMatch("m1",
			[]club.PlayingTime{{PlayerID: "p1", Name: "Ola", Minutes: 90}},
			[]club.Event{{Type: club.EventGoal, Team: club.TeamHome, PlayerID: "p2"}}),
	}

	lines := Aggregate(matches, Options{CountUnrosteredScorers: true})

	assert.Len(t, lines, 2)

	byID := map[string]PlayerStatLine{}
	for _, line := range lines {
		byID[line.PlayerID] = line
	}
	assert.Equal(t, 1, byID["p2"].Goals)
	assert.Equal(t, 0, byID["p2"].Matches)
}

// An UPCOMING match must not change the result.
func TestAggregateIgnoresUpcoming(t *testing.T) {
	ended := []club.Match{
		endedMatch("m1", []club.PlayingTime{{PlayerID: "p1", Name: "Ola", Minutes: 45}}, nil),
	}
	withUpcoming := append([]club.Match{}, ended...)
	withUpcoming = append(withUpcoming, club.Match{
		ID:          "m2",
		Status:      club.StatusUpcoming,
		PlayingTime: []club.PlayingTime{{PlayerID: "p9", Name: "Per", Minutes: 90}},
	})

	assert.Equal(t, Aggregate(ended, Options{}), Aggregate(withUpcoming, Options{}))
}

func TestAggregateIdempotent(t *testing.T) {
	matches := []club.Match{
		endedMatch("m1",
			[]club.PlayingTime{
				{PlayerID: "p1", Name: "Ola", Minutes: 90},
				{PlayerID: "p2", Name: "Kari", Minutes: 60},
			},
			[]club.Event{{Type: club.EventGoal, Team: club.TeamHome, PlayerID: "p2"}}),
	}

	assert.Equal(t, Aggregate(matches, Options{}), Aggregate(matches, Options{}))
}

func TestAggregateSortedByMinutesDesc(t *testing.T) {
	matches := []club.Match{
		endedMatch("m1", []club.PlayingTime{
			{PlayerID: "p1", Name: "A", Minutes: 30},
			{PlayerID: "p2", Name: "B", Minutes: 90},
			{PlayerID: "p3", Name: "C", Minutes: 10},
		}, nil),
	}

	lines := Aggregate(matches, Options{})

	minutes := []int{lines[0].Minutes, lines[1].Minutes, lines[2].Minutes}
	assert.Equal(t, []int{90, 30, 10}, minutes)
}

// Ties keep encounter order.
func TestAggregateSortStable(t *testing.T) {
	matches := []club.Match{
		endedMatch("m1", []club.PlayingTime{
			{PlayerID: "p1", Name: "A", Minutes: 45},
			{PlayerID: "p2", Name: "B", Minutes: 45},
		}, nil),
	}

	lines := Aggregate(matches, Options{})

	assert.Equal(t, "p1", lines[0].PlayerID)
	assert.Equal(t, "p2", lines[1].PlayerID)
}

func TestFilterByTypeSynonyms(t *testing.T) {
	matches := []club.Match{
		{ID: "m1", Meta: club.MatchMeta{Type: "league"}},
		{ID: "m2", Meta: club.MatchMeta{Type: "cup"}},
		{ID: "m3", Meta: club.MatchMeta{Type: "seriekamp"}},
	}

	for _, filter := range []string{"league", "seriekamp"} {
		got := FilterByType(matches, filter)
		if len(got) != 2 {
			t.Errorf("Expected 2 league matches for filter %q, got %d", filter, len(got))
			continue
		}
		if got[0].ID != "m1" || got[1].ID != "m3" {
			t.Errorf("Unexpected matches for filter %q: %+v", filter, got)
		}
	}
}

func TestAggregateEmpty(t *testing.T) {
	assert.Empty(t, Aggregate(nil, Options{}))
}
