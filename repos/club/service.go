package club

import (
	"context"
	"errors"
	"log"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

var (
	ErrMatchNotFound = errors.New("match not found")
	ErrDraftNotFound = errors.New("assistant match not found")
	ErrUserNotFound  = errors.New("user not found")
)

const (
	RoleCoach          = "coach"
	RoleAssistantCoach = "assistantCoach"
	RolePlayer         = "player"
)

// Service wraps the club's Firestore collections behind typed accessors.
type Service struct {
	Client *firestore.Client
}

// NewService creates a new empty service.
func NewService(client *firestore.Client) *Service {
	return &Service{
		Client: client,
	}
}

func (s Service) Matches() *firestore.CollectionRef {
	return s.Client.Collection("matches")
}

func (s Service) Drafts(assistantUID string) *firestore.CollectionRef {
	return s.Client.Collection("assistantMatches").Doc(assistantUID).Collection("matches")
}

func (s Service) GetUser(ctx context.Context, uid string) (*User, error) {
	doc, err := s.Client.Collection("users").Doc(uid).Get(ctx)
	if err != nil {
		log.Printf("Failed to get user from Firestore: %v\n", err)
		return nil, ErrUserNotFound
	}

	var user User
	if err := doc.DataTo(&user); err != nil {
		log.Printf("Failed to decode user document: %v\n", err)
		return nil, err
	}
	user.UID = doc.Ref.ID
	return &user, nil
}

// ListAssistants returns every user carrying the assistantCoach role, sorted
// by the Firestore default document order.
func (s Service) ListAssistants(ctx context.Context) ([]User, error) {
	docs, err := s.Client.Collection("users").
		Where("role", "==", RoleAssistantCoach).
		Documents(ctx).
		GetAll()
	if err != nil {
		log.Printf("Failed to list assistants from Firestore: %v\n", err)
		return nil, err
	}

	var assistants []User
	for _, doc := range docs {
		var user User
		if err := doc.DataTo(&user); err != nil {
			log.Printf("Failed to decode user document: %v\n", err)
			return nil, err
		}
		user.UID = doc.Ref.ID
		assistants = append(assistants, user)
	}
	return assistants, nil
}

func (s Service) GetMatch(ctx context.Context, matchID string) (*Match, error) {
	doc, err := s.Matches().Doc(matchID).Get(ctx)
	if err != nil {
		return nil, ErrMatchNotFound
	}
	match, err := DocToMatch(doc)
	if err != nil {
		return nil, err
	}
	match.Source = SourceOfficial
	return match, nil
}

func (s Service) GetDraft(ctx context.Context, assistantUID, matchID string) (*Match, error) {
	doc, err := s.Drafts(assistantUID).Doc(matchID).Get(ctx)
	if err != nil {
		return nil, ErrDraftNotFound
	}
	draft, err := DocToMatch(doc)
	if err != nil {
		return nil, err
	}
	draft.Source = SourceAssistant
	draft.AssistantUID = assistantUID
	return draft, nil
}

func (s Service) ListMatches(ctx context.Context) ([]Match, error) {
	iter := s.Matches().Documents(ctx)
	defer iter.Stop()

	var matches []Match
	for {
		doc, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			log.Printf("Failed to get match document: %v\n", err)
			return nil, err
		}

		match, err := DocToMatch(doc)
		if err != nil {
			return nil, err
		}
		match.Source = SourceOfficial
		matches = append(matches, *match)
	}
	return matches, nil
}

// ListEndedMatches returns the canonical matches that count for statistics.
func (s Service) ListEndedMatches(ctx context.Context) ([]Match, error) {
	matches, err := s.ListMatches(ctx)
	if err != nil {
		return nil, err
	}

	var ended []Match
	for _, match := range matches {
		if match.Status == StatusEnded {
			ended = append(ended, match)
		}
	}
	return ended, nil
}

func (s Service) ListDrafts(ctx context.Context, assistantUID string) ([]Match, error) {
	iter := s.Drafts(assistantUID).Documents(ctx)
	defer iter.Stop()

	var drafts []Match
	for {
		doc, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			log.Printf("Failed to get draft document: %v\n", err)
			return nil, err
		}

		draft, err := DocToMatch(doc)
		if err != nil {
			return nil, err
		}
		draft.Source = SourceAssistant
		draft.AssistantUID = assistantUID
		drafts = append(drafts, *draft)
	}
	return drafts, nil
}

func (s Service) ListReflections(ctx context.Context, playerID string) ([]Reflection, error) {
	docs, err := s.Client.Collection("refleksjoner").Doc(playerID).Collection("entries").
		Documents(ctx).
		GetAll()
	if err != nil {
		log.Printf("Failed to list reflections from Firestore: %v\n", err)
		return nil, err
	}

	var reflections []Reflection
	for _, doc := range docs {
		var entry Reflection
		if err := doc.DataTo(&entry); err != nil {
			log.Printf("Failed to decode reflection document: %v\n", err)
			return nil, err
		}
		reflections = append(reflections, entry)
	}
	return reflections, nil
}
