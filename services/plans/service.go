package plans

import (
	"errors"
	"log"
	"sort"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"

	club "github.com/refleksjon/coach-sync/repos/club"
)

var ErrPlanNotFound = errors.New("development plan not found")

type PlansService struct {
	firestoreClient *firestore.Client
	firebaseApp     *firebase.App
	bank            *Bank
}

func NewPlansService(firestoreClient *firestore.Client, firebaseApp *firebase.App, bank *Bank) *PlansService {
	return &PlansService{
		firestoreClient: firestoreClient,
		firebaseApp:     firebaseApp,
		bank:            bank,
	}
}

// PlanRequest carries a new development plan for a player.
type PlanRequest struct {
	MainFocus      string `json:"mainFocus"`
	Utviklingsmaal string `json:"utviklingsmaal"`
	TrainingGoal   string `json:"trainingGoal"`
	MatchBehaviour string `json:"matchBehaviour"`
	Measurement    string `json:"measurement"`
}

// PlanView is a stored plan with the focus area resolved against the bank.
type PlanView struct {
	club.Plan
	FocusArea *FocusArea `json:"focusArea,omitempty"`
}

func (s *PlansService) planRef(playerID string) *firestore.DocumentRef {
	return s.firestoreClient.Collection("utviklingsplan").Doc(playerID)
}

func (s *PlansService) GetPlan(c *gin.Context, playerID, position string) (*PlanView, error) {
	doc, err := s.planRef(playerID).Get(c)
	if err != nil || !doc.Exists() {
		return nil, ErrPlanNotFound
	}

	var plan club.Plan
	if err := doc.DataTo(&plan); err != nil {
		log.Printf("Failed to decode plan document: %v\n", err)
		return nil, err
	}

	view := &PlanView{Plan: plan}
	if area, ok := s.bank.Find(plan.MainFocus, position); ok {
		view.FocusArea = &area
	}
	return view, nil
}

// SavePlan stores a new plan version. Any existing plan is first copied into
// the historikk subcollection with an archive stamp, so older versions stay
// readable.
func (s *PlansService) SavePlan(c *gin.Context, playerID string, request PlanRequest) error {
	planRef := s.planRef(playerID)

	existing, err := planRef.Get(c)
	if err == nil && existing.Exists() {
		data := existing.Data()
		data["archivedAt"] = firestore.ServerTimestamp

		_, _, err = planRef.Collection("historikk").Add(c, data)
		if err != nil {
			log.Printf("Failed to archive plan to Firestore: %v\n", err)
			return err
		}
	}

	_, err = planRef.Set(c, map[string]interface{}{
		"mainFocus":      request.MainFocus,
		"utviklingsmaal": request.Utviklingsmaal,
		"trainingGoal":   request.TrainingGoal,
		"matchBehaviour": request.MatchBehaviour,
		"measurement":    request.Measurement,
		"updatedAt":      firestore.ServerTimestamp,
	})
	if err != nil {
		log.Printf("Failed to write plan to Firestore: %v\n", err)
		return err
	}
	return nil
}

// ListHistory returns archived plan versions, newest first.
func (s *PlansService) ListHistory(c *gin.Context, playerID string) ([]club.Plan, error) {
	docs, err := s.planRef(playerID).Collection("historikk").Documents(c).GetAll()
	if err != nil {
		log.Printf("Failed to list plan history from Firestore: %v\n", err)
		return nil, err
	}

	var history []club.Plan
	for _, doc := range docs {
		var plan club.Plan
		if err := doc.DataTo(&plan); err != nil {
			log.Printf("Failed to decode archived plan: %v\n", err)
			return nil, err
		}
		history = append(history, plan)
	}

	sort.Slice(history, func(i, j int) bool {
		return history[i].ArchivedAt.After(history[j].ArchivedAt)
	})
	return history, nil
}

func (s *PlansService) BankFor(c *gin.Context, position string) []FocusArea {
	return s.bank.AreasFor(position)
}

// ReloadBank re-reads the reference file, replacing the cached buckets.
func (s *PlansService) ReloadBank(c *gin.Context) error {
	return s.bank.Load()
}
