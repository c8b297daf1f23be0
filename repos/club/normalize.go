package club

import (
	"fmt"

	"cloud.google.com/go/firestore"
	"golang.org/x/xerrors"

	"github.com/refleksjon/coach-sync/pkg/matchtype"
)

// DocToMatch decodes a match document and normalizes the loose shapes the
// first web client wrote: legacy Norwegian type tags, missing status, missing
// source. Unknown status values are rejected instead of being passed through.
func DocToMatch(doc *firestore.DocumentSnapshot) (*Match, error) {
	var match Match
	if err := doc.DataTo(&match); err != nil {
		// If this fails, we have an inconsistency error as we control both the data written to
		// Firestore and the shape of our document structs.
		return nil, xerrors.Errorf(
			"consistency error. Converting %+v to internal match struct failed: %w",
			doc.Ref.ID,
			err,
		)
	}
	match.ID = doc.Ref.ID

	if err := normalizeMatch(&match); err != nil {
		return nil, err
	}
	return &match, nil
}

func normalizeMatch(match *Match) error {
	if match.Status == "" {
		match.Status = StatusEnded
	}
	if match.Status != StatusUpcoming && match.Status != StatusEnded {
		return fmt.Errorf("match %s: unknown status %q", match.ID, match.Status)
	}
	if match.Source == "" {
		match.Source = SourceOfficial
	}
	if canonical, ok := matchtype.Normalize(match.Meta.Type); ok {
		match.Meta.Type = canonical
	}
	if match.Score != nil {
		if match.Score.Our < 0 || match.Score.Their < 0 {
			return fmt.Errorf("match %s: negative score", match.ID)
		}
	}
	return nil
}

// MatchUpdates translates coach edits into a partial Firestore update,
// touching only the fields that were actually set.
func MatchUpdates(edits MatchUpdate) []firestore.Update {
	var updates []firestore.Update

	if edits.Date != nil {
		updates = append(updates, firestore.Update{Path: "meta.date", Value: *edits.Date})
	}
	if edits.StartTime != nil {
		updates = append(updates, firestore.Update{Path: "meta.startTime", Value: *edits.StartTime})
	}
	if edits.Opponent != nil {
		updates = append(updates, firestore.Update{Path: "meta.opponent", Value: *edits.Opponent})
	}
	if edits.Type != nil {
		value := *edits.Type
		if canonical, ok := matchtype.Normalize(value); ok {
			value = canonical
		}
		updates = append(updates, firestore.Update{Path: "meta.type", Value: value})
	}
	if edits.Venue != nil {
		updates = append(updates, firestore.Update{Path: "meta.venue", Value: *edits.Venue})
	}
	if edits.VenueName != nil {
		updates = append(updates, firestore.Update{Path: "meta.venueName", Value: *edits.VenueName})
	}
	if edits.Our != nil {
		updates = append(updates, firestore.Update{Path: "score.our", Value: *edits.Our})
	}
	if edits.Their != nil {
		updates = append(updates, firestore.Update{Path: "score.their", Value: *edits.Their})
	}
	if edits.Status != nil {
		updates = append(updates, firestore.Update{Path: "status", Value: *edits.Status})
	}

	return updates
}

// ApplyEdits merges coach edits into a decoded match in memory. Used when the
// full merged document has to be written, not patched.
func ApplyEdits(match Match, edits MatchUpdate) Match {
	if edits.Date != nil {
		match.Meta.Date = *edits.Date
	}
	if edits.StartTime != nil {
		match.Meta.StartTime = *edits.StartTime
	}
	if edits.Opponent != nil {
		match.Meta.Opponent = *edits.Opponent
	}
	if edits.Type != nil {
		match.Meta.Type = *edits.Type
		if canonical, ok := matchtype.Normalize(match.Meta.Type); ok {
			match.Meta.Type = canonical
		}
	}
	if edits.Venue != nil {
		match.Meta.Venue = *edits.Venue
	}
	if edits.VenueName != nil {
		match.Meta.VenueName = *edits.VenueName
	}
	if edits.Our != nil || edits.Their != nil {
		if match.Score == nil {
			match.Score = &Score{}
		}
		if edits.Our != nil {
			match.Score.Our = *edits.Our
		}
		if edits.Their != nil {
			match.Score.Their = *edits.Their
		}
	}
	if edits.Status != nil {
		match.Status = *edits.Status
	}
	return match
}

// Validate rejects edits that would leave the document in a shape the rest of
// the system cannot interpret.
func (u MatchUpdate) Validate() error {
	if u.Status != nil && *u.Status != StatusUpcoming && *u.Status != StatusEnded {
		return fmt.Errorf("unknown status %q", *u.Status)
	}
	if u.Our != nil && *u.Our < 0 {
		return fmt.Errorf("negative score %d", *u.Our)
	}
	if u.Their != nil && *u.Their < 0 {
		return fmt.Errorf("negative score %d", *u.Their)
	}
	return nil
}
