package matches

import (
	"context"
	"errors"
	"log"
	"sort"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"

	authpkg "github.com/refleksjon/coach-sync/pkg/auth"
	club "github.com/refleksjon/coach-sync/repos/club"
)

var (
	ErrDraftNotFound = club.ErrDraftNotFound
	ErrMatchNotFound = club.ErrMatchNotFound
	ErrEventNotFound = errors.New("event index out of range")
)

type MatchesService struct {
	firestoreClient *firestore.Client
	firebaseApp     *firebase.App
	clubService     *club.Service
}

func NewMatchesService(firestoreClient *firestore.Client, firebaseApp *firebase.App, clubService *club.Service) *MatchesService {
	return &MatchesService{
		firestoreClient: firestoreClient,
		firebaseApp:     firebaseApp,
		clubService:     clubService,
	}
}

// ApproveDraft promotes an assistant draft into the canonical matches
// collection. Both documents move inside one transaction: the draft is flagged
// approved and the canonical copy is written under the same ID, so a listing
// never sees a promoted draft without its canonical counterpart. The draft is
// kept as an audit record. Re-approving overwrites with the same result.
func (s *MatchesService) ApproveDraft(c *gin.Context, assistantUID, matchID string, edits club.MatchUpdate) error {
	coachUID := authpkg.UID(c)

	if err := edits.Validate(); err != nil {
		return err
	}

	draftRef := s.clubService.Drafts(assistantUID).Doc(matchID)
	matchRef := s.clubService.Matches().Doc(matchID)

	err := s.firestoreClient.RunTransaction(c, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(draftRef)
		if err != nil || !doc.Exists() {
			return ErrDraftNotFound
		}

		draft, err := club.DocToMatch(doc)
		if err != nil {
			return err
		}

		merged := club.ApplyEdits(*draft, edits)

		draftUpdates := append(club.MatchUpdates(edits),
			firestore.Update{Path: "approvedToMatches", Value: true},
			firestore.Update{Path: "approvedAt", Value: firestore.ServerTimestamp},
			firestore.Update{Path: "approvedBy", Value: coachUID},
			firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp},
			firestore.Update{Path: "editedBy", Value: coachUID},
		)
		if err := tx.Update(draftRef, draftUpdates); err != nil {
			return err
		}

		return tx.Set(matchRef, buildCanonical(merged, assistantUID, coachUID), firestore.MergeAll)
	})
	if err != nil {
		if err != ErrDraftNotFound {
			log.Printf("Failed to approve draft %s/%s: %v\n", assistantUID, matchID, err)
		}
		return err
	}
	return nil
}

// buildCanonical shapes the canonical match document written during
// promotion. Status is forced to ENDED and the provenance fields always point
// back at the originating assistant.
func buildCanonical(merged club.Match, assistantUID, coachUID string) map[string]interface{} {
	canonical := map[string]interface{}{
		"meta":                  merged.Meta,
		"events":                merged.Events,
		"playingTime":           merged.PlayingTime,
		"status":                club.StatusEnded,
		"approved":              true,
		"approvedToMatches":     true,
		"approvedAt":            firestore.ServerTimestamp,
		"approvedBy":            coachUID,
		"approvedFromAssistant": assistantUID,
		"source":                club.SourceOfficial,
		"updatedAt":             firestore.ServerTimestamp,
		"editedBy":              coachUID,
	}
	if merged.Score != nil {
		canonical["score"] = *merged.Score
	}
	return canonical
}

// EditMatch updates a canonical match directly. No promotion semantics, just
// updatedAt/editedBy stamping.
func (s *MatchesService) EditMatch(c *gin.Context, matchID string, edits club.MatchUpdate) error {
	coachUID := authpkg.UID(c)

	if err := edits.Validate(); err != nil {
		return err
	}

	if _, err := s.clubService.GetMatch(c, matchID); err != nil {
		return err
	}

	updates := append(club.MatchUpdates(edits),
		firestore.Update{Path: "updatedAt", Value: firestore.ServerTimestamp},
		firestore.Update{Path: "editedBy", Value: coachUID},
	)

	_, err := s.clubService.Matches().Doc(matchID).Update(c, updates)
	if err != nil {
		log.Printf("Failed to update match in Firestore: %v\n", err)
		return err
	}
	return nil
}

// DeleteMatch removes a match document for good. Statistics are always
// recomputed from the remaining set, so nothing derived has to be cleaned up.
func (s *MatchesService) DeleteMatch(c *gin.Context, source, assistantUID, matchID string) error {
	var ref *firestore.DocumentRef
	if source == club.SourceAssistant {
		if _, err := s.clubService.GetDraft(c, assistantUID, matchID); err != nil {
			return err
		}
		ref = s.clubService.Drafts(assistantUID).Doc(matchID)
	} else {
		if _, err := s.clubService.GetMatch(c, matchID); err != nil {
			return err
		}
		ref = s.clubService.Matches().Doc(matchID)
	}

	_, err := ref.Delete(c)
	if err != nil {
		log.Printf("Failed to delete match from Firestore: %v\n", err)
		return err
	}
	return nil
}

func (s *MatchesService) GetMatch(c *gin.Context, source, assistantUID, matchID string) (*club.Match, error) {
	if source == club.SourceAssistant {
		return s.clubService.GetDraft(c, assistantUID, matchID)
	}
	return s.clubService.GetMatch(c, matchID)
}

// AddEvent appends an event and persists the recomputed score in the same
// document write.
func (s *MatchesService) AddEvent(c *gin.Context, matchID string, event club.Event) error {
	return s.mutateEvents(c, matchID, func(events []club.Event) ([]club.Event, error) {
		return append(events, event), nil
	})
}

// UpdateEventText rewrites the description of the event at the given index.
func (s *MatchesService) UpdateEventText(c *gin.Context, matchID string, index int, text string) error {
	return s.mutateEvents(c, matchID, func(events []club.Event) ([]club.Event, error) {
		if index < 0 || index >= len(events) {
			return nil, ErrEventNotFound
		}
		events[index].Text = text
		return events, nil
	})
}

// DeleteEvent removes the event at the given index.
func (s *MatchesService) DeleteEvent(c *gin.Context, matchID string, index int) error {
	return s.mutateEvents(c, matchID, func(events []club.Event) ([]club.Event, error) {
		if index < 0 || index >= len(events) {
			return nil, ErrEventNotFound
		}
		return append(events[:index], events[index+1:]...), nil
	})
}

func (s *MatchesService) mutateEvents(c *gin.Context, matchID string, mutate func([]club.Event) ([]club.Event, error)) error {
	coachUID := authpkg.UID(c)
	matchRef := s.clubService.Matches().Doc(matchID)

	err := s.firestoreClient.RunTransaction(c, func(ctx context.Context, tx *firestore.Transaction) error {
		doc, err := tx.Get(matchRef)
		if err != nil || !doc.Exists() {
			return ErrMatchNotFound
		}

		match, err := club.DocToMatch(doc)
		if err != nil {
			return err
		}

		events, err := mutate(match.Events)
		if err != nil {
			return err
		}
		if events == nil {
			events = []club.Event{}
		}

		score := club.CalculateScore(events)

		return tx.Update(matchRef, []firestore.Update{
			{Path: "events", Value: events},
			{Path: "score", Value: score},
			{Path: "updatedAt", Value: firestore.ServerTimestamp},
			{Path: "editedBy", Value: coachUID},
		})
	})
	if err != nil {
		if err != ErrMatchNotFound && err != ErrEventNotFound {
			log.Printf("Failed to update events for match %s: %v\n", matchID, err)
		}
		return err
	}
	return nil
}

// ListMatches returns the union of canonical matches and every assistant's
// drafts, run through the assistant and status filters.
func (s *MatchesService) ListMatches(c *gin.Context, assistantFilter, statusFilter string) ([]club.Match, error) {
	assistants, err := s.clubService.ListAssistants(c)
	if err != nil {
		return nil, err
	}

	var rows []club.Match
	for _, assistant := range assistants {
		drafts, err := s.clubService.ListDrafts(c, assistant.UID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, drafts...)
	}

	official, err := s.clubService.ListMatches(c)
	if err != nil {
		return nil, err
	}
	rows = append(rows, official...)

	filtered := FilterRows(rows, assistantFilter, statusFilter)

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Meta.Date > filtered[j].Meta.Date
	})
	return filtered, nil
}
