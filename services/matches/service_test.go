package matches

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xorcare/pointer"

	club "github.com/refleksjon/coach-sync/repos/club"
)

func testRows() []club.Match {
	return []club.Match{
		{ID: "m1", Source: club.SourceAssistant, AssistantUID: "asst-1",
			Status: club.StatusEnded, Meta: club.MatchMeta{Date: "2025-05-01", Opponent: "Viking"}},
		{ID: "m2", Source: club.SourceAssistant, AssistantUID: "asst-2", ApprovedToMatches: true,
			Status: club.StatusEnded, Meta: club.MatchMeta{Date: "2025-04-20", Opponent: "Brodd"}},
		{ID: "m2", Source: club.SourceOfficial, ApprovedFromAssistant: "asst-2",
			Status: club.StatusEnded, Meta: club.MatchMeta{Date: "2025-04-20", Opponent: "Brodd"}},
		{ID: "m3", Source: club.SourceOfficial,
			Status: club.StatusUpcoming, Meta: club.MatchMeta{Date: "2025-06-10", Opponent: "Hinna"}},
	}
}

// The default bucket hides drafts that were already promoted, so the same
// logical match never shows up twice.
func TestFilterRowsDefaultHidesPromotedDrafts(t *testing.T) {
	rows := FilterRows(testRows(), AssistantAll, FilterAll)

	assert.Len(t, rows, 3)
	for _, row := range rows {
		if row.Source == club.SourceAssistant {
			assert.False(t, row.ApprovedToMatches)
		}
	}
}

func TestFilterRowsPending(t *testing.T) {
	rows := FilterRows(testRows(), AssistantAll, FilterPending)

	assert.Len(t, rows, 1)
	assert.Equal(t, "m1", rows[0].ID)
	assert.Equal(t, club.SourceAssistant, rows[0].Source)
}

func TestFilterRowsApprovedIsCanonicalOnly(t *testing.T) {
	rows := FilterRows(testRows(), AssistantAll, FilterApproved)

	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, club.SourceOfficial, row.Source)
	}
}

func TestFilterRowsStatusBuckets(t *testing.T) {
	upcoming := FilterRows(testRows(), AssistantAll, FilterUpcoming)
	assert.Len(t, upcoming, 1)
	assert.Equal(t, "m3", upcoming[0].ID)

	ended := FilterRows(testRows(), AssistantAll, FilterEnded)
	assert.Len(t, ended, 1)
	assert.Equal(t, "m2", ended[0].ID)
}

// Archive shows the retained drafts whose ID also exists canonically, for
// audit, and ignores the assistant filter.
func TestFilterRowsArchive(t *testing.T) {
	rows := FilterRows(testRows(), "asst-1", FilterArchive)

	assert.Len(t, rows, 1)
	assert.Equal(t, "m2", rows[0].ID)
	assert.Equal(t, club.SourceAssistant, rows[0].Source)
	assert.True(t, rows[0].ApprovedToMatches)
}

func TestFilterRowsByAssistant(t *testing.T) {
	// matches the draft owner and the canonical backlink
	rows := FilterRows(testRows(), "asst-2", FilterAll)

	assert.Len(t, rows, 1)
	assert.Equal(t, club.SourceOfficial, rows[0].Source)
	assert.Equal(t, "asst-2", rows[0].ApprovedFromAssistant)
}

func TestFilterRowsOfficialOnly(t *testing.T) {
	rows := FilterRows(testRows(), AssistantOfficial, FilterAll)

	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.Equal(t, club.SourceOfficial, row.Source)
	}
}

func TestFilterRowsEmptyInput(t *testing.T) {
	assert.Empty(t, FilterRows(nil, AssistantAll, FilterAll))
}

// Promotion is a total function over the draft and the coach edits.
func TestBuildCanonical(t *testing.T) {
	draft := club.Match{
		ID:     "m9",
		Source: club.SourceAssistant,
		Status: club.StatusUpcoming,
		Meta:   club.MatchMeta{Date: "2025-05-01", Opponent: "X", Type: "seriekamp"},
		Score:  &club.Score{Our: 2, Their: 1},
	}

	merged := club.ApplyEdits(draft, club.MatchUpdate{Status: pointer.String(club.StatusEnded)})
	canonical := buildCanonical(merged, "asst-9", "coach-1")

	assert.Equal(t, club.StatusEnded, canonical["status"])
	assert.Equal(t, true, canonical["approved"])
	assert.Equal(t, true, canonical["approvedToMatches"])
	assert.Equal(t, "asst-9", canonical["approvedFromAssistant"])
	assert.Equal(t, "coach-1", canonical["approvedBy"])
	assert.Equal(t, club.SourceOfficial, canonical["source"])
	assert.Equal(t, club.Score{Our: 2, Their: 1}, canonical["score"])

	meta := canonical["meta"].(club.MatchMeta)
	assert.Equal(t, "X", meta.Opponent)
	assert.Equal(t, "league", meta.Type)
}

// A draft without a score must not write a null score into the canonical set.
func TestBuildCanonicalNoScore(t *testing.T) {
	canonical := buildCanonical(club.Match{Status: club.StatusUpcoming}, "asst-1", "coach-1")

	_, ok := canonical["score"]
	assert.False(t, ok)
	assert.Equal(t, club.StatusEnded, canonical["status"])
}
