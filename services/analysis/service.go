package analysis

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/gin-gonic/gin"
	"github.com/samborkent/uuidv7"
	openai "github.com/sashabaranov/go-openai"

	timehelper "github.com/refleksjon/coach-sync/pkg/timehelper"
	club "github.com/refleksjon/coach-sync/repos/club"
	resend "github.com/refleksjon/coach-sync/repos/resend"
)

var (
	ErrNoReflections    = errors.New("no reflections found")
	ErrFeedbackNotFound = errors.New("feedback not found")
	ErrNotJSON          = errors.New("model did not answer with JSON")
)

type AnalysisService struct {
	firestoreClient *firestore.Client
	firebaseApp     *firebase.App
	clubService     *club.Service
	resendService   *resend.Service
	openaiClient    *openai.Client
	model           string
}

func NewAnalysisService(firestoreClient *firestore.Client, firebaseApp *firebase.App, clubService *club.Service, resendService *resend.Service, apiKey string) *AnalysisService {
	return &AnalysisService{
		firestoreClient: firestoreClient,
		firebaseApp:     firebaseApp,
		clubService:     clubService,
		resendService:   resendService,
		openaiClient:    openai.NewClient(apiKey),
		model:           openai.GPT4oMini,
	}
}

// Calibration summarizes the numeric side of a player's reflections: the
// self-rated averages and, where coach scores exist, the coach-vs-player
// deltas. A positive delta means the player underrates themselves.
type Calibration struct {
	Count       int
	AvgEffort   float64
	AvgEnergy   float64
	CoachCount  int
	EffortDelta float64
	EnergyDelta float64
}

func Calibrate(reflections []club.Reflection) Calibration {
	cal := Calibration{Count: len(reflections)}
	if cal.Count == 0 {
		return cal
	}

	for _, r := range reflections {
		if r.Effort != nil {
			cal.AvgEffort += *r.Effort
		}
		if r.Energy != nil {
			cal.AvgEnergy += *r.Energy
		}
	}
	cal.AvgEffort /= float64(cal.Count)
	cal.AvgEnergy /= float64(cal.Count)

	for _, r := range reflections {
		if r.CoachEffort == nil || r.CoachEnergy == nil {
			continue
		}
		cal.CoachCount++
		effort, energy := 0.0, 0.0
		if r.Effort != nil {
			effort = *r.Effort
		}
		if r.Energy != nil {
			energy = *r.Energy
		}
		cal.EffortDelta += *r.CoachEffort - effort
		cal.EnergyDelta += *r.CoachEnergy - energy
	}
	if cal.CoachCount > 0 {
		cal.EffortDelta /= float64(cal.CoachCount)
		cal.EnergyDelta /= float64(cal.CoachCount)
	}
	return cal
}

// ExtractJSON cuts the first JSON object out of a model answer that may be
// wrapped in prose or code fences.
func ExtractJSON(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start == -1 || end == -1 || end < start {
		return "", ErrNotJSON
	}
	return raw[start : end+1], nil
}

// GeneratePlayerAnalysis reads every reflection for the player, runs the
// model over them and stores the structured result under aiAnalysis.
func (s *AnalysisService) GeneratePlayerAnalysis(c *gin.Context, playerID string) (*club.Analysis, error) {
	reflections, err := s.clubService.ListReflections(c, playerID)
	if err != nil {
		return nil, err
	}
	if len(reflections) == 0 {
		return nil, ErrNoReflections
	}

	cal := Calibrate(reflections)
	prompt := analysisPrompt(reflections, cal)

	response, err := s.openaiClient.CreateChatCompletion(c, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "Du er en strukturert og presis fotballanalytiker."},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		Temperature: 0.3,
	})
	if err != nil {
		log.Printf("Analysis completion failed: %v\n", err)
		return nil, err
	}
	if len(response.Choices) == 0 {
		return nil, ErrNotJSON
	}

	payload, err := ExtractJSON(response.Choices[0].Message.Content)
	if err != nil {
		return nil, err
	}

	parsed, err := decodeAnalysis(payload)
	if err != nil {
		return nil, err
	}

	_, err = s.firestoreClient.Collection("aiAnalysis").Doc(playerID).Set(c, map[string]interface{}{
		"summary": parsed.Summary,
		"keyPatterns": map[string]interface{}{
			"performanceTrend": parsed.KeyPatterns.PerformanceTrend,
			"mentalProfile":    parsed.KeyPatterns.MentalProfile,
		},
		"calibrationAnalysis": parsed.CalibrationAnalysis,
		"riskFlags":           parsed.RiskFlags,
		"coachingFocus":       parsed.CoachingFocus,
		"generatedAt":         firestore.ServerTimestamp,
	})
	if err != nil {
		log.Printf("Failed to write analysis to Firestore: %v\n", err)
		return nil, err
	}
	return parsed, nil
}

func (s *AnalysisService) GetAnalysis(c *gin.Context, playerID string) (*club.Analysis, error) {
	doc, err := s.firestoreClient.Collection("aiAnalysis").Doc(playerID).Get(c)
	if err != nil || !doc.Exists() {
		return nil, ErrNoReflections
	}

	var analysis club.Analysis
	if err := doc.DataTo(&analysis); err != nil {
		log.Printf("Failed to decode analysis document: %v\n", err)
		return nil, err
	}
	return &analysis, nil
}

// GeneratePlayerFeedback produces a short motivational text and stores it as
// a draft feedback document. The coach can edit it before sending.
func (s *AnalysisService) GeneratePlayerFeedback(c *gin.Context, playerID string) (*club.Feedback, error) {
	reflections, err := s.clubService.ListReflections(c, playerID)
	if err != nil {
		return nil, err
	}
	if len(reflections) == 0 {
		return nil, ErrNoReflections
	}

	response, err := s.openaiClient.CreateChatCompletion(c, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: "Du skriver konkrete og motiverende trener-tilbakemeldinger."},
			{Role: openai.ChatMessageRoleUser, Content: feedbackPrompt(reflections)},
		},
		Temperature: 0.6,
	})
	if err != nil {
		log.Printf("Feedback completion failed: %v\n", err)
		return nil, err
	}
	if len(response.Choices) == 0 {
		return nil, errors.New("empty completion")
	}

	text := response.Choices[0].Message.Content
	year, week := timehelper.CurrentWeek()

	feedback := club.Feedback{
		ID:            uuidv7.New().String(),
		PlayerID:      playerID,
		Type:          "weekly",
		Week:          week,
		Year:          year,
		GeneratedText: text,
		EditedText:    text,
		Status:        "draft",
	}

	_, err = s.firestoreClient.Collection("feedback").Doc(feedback.ID).Set(c, map[string]interface{}{
		"playerId":      feedback.PlayerID,
		"type":          feedback.Type,
		"week":          feedback.Week,
		"year":          feedback.Year,
		"generatedText": feedback.GeneratedText,
		"editedText":    feedback.EditedText,
		"status":        feedback.Status,
		"createdAt":     firestore.ServerTimestamp,
		"updatedAt":     firestore.ServerTimestamp,
	})
	if err != nil {
		log.Printf("Failed to write feedback to Firestore: %v\n", err)
		return nil, err
	}
	return &feedback, nil
}

// SendFeedback flips a draft to sent and mails the edited text to the player.
func (s *AnalysisService) SendFeedback(c *gin.Context, feedbackID string) error {
	ref := s.firestoreClient.Collection("feedback").Doc(feedbackID)

	doc, err := ref.Get(c)
	if err != nil || !doc.Exists() {
		return ErrFeedbackNotFound
	}

	var feedback club.Feedback
	if err := doc.DataTo(&feedback); err != nil {
		log.Printf("Failed to decode feedback document: %v\n", err)
		return err
	}

	player, err := s.clubService.GetUser(c, feedback.PlayerID)
	if err != nil {
		return err
	}

	_, err = ref.Update(c, []firestore.Update{
		{Path: "status", Value: "sent"},
		{Path: "updatedAt", Value: firestore.ServerTimestamp},
	})
	if err != nil {
		log.Printf("Failed to update feedback in Firestore: %v\n", err)
		return err
	}

	if player.Email == "" {
		log.Printf("Player %s has no email, feedback marked sent without mail\n", player.UID)
		return nil
	}

	return s.resendService.SendFeedback(c, resend.FeedbackMail{
		Email:      player.Email,
		PlayerName: player.Name,
		Text:       feedback.EditedText,
	})
}

func floatOrZero(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}

func reflectionHistory(reflections []club.Reflection) string {
	var sb strings.Builder
	for i, r := range reflections {
		kind := "Trening"
		if r.Type == "match" {
			kind = "Kamp"
		}
		fmt.Fprintf(&sb, "\nRefleksjon %d:\nType: %s\nInnsats: %.0f\nEnergi: %.0f\n",
			i+1, kind, floatOrZero(r.Effort), floatOrZero(r.Energy))

		if r.Type == "match" {
			fmt.Fprintf(&sb, "Situasjon: %s\nGjorde bra: %s\nVil prøve neste gang: %s\n",
				r.MatchSituation, r.MatchGood, r.MatchImprove)
		} else {
			fmt.Fprintf(&sb, "God ting: %s\nForbedre: %s\nCoach-notat: %s\n",
				r.GoodThing, r.ImproveThing, r.CoachNote)
		}
	}
	return sb.String()
}
