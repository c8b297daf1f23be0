package club

import (
	"time"
)

const (
	StatusUpcoming = "UPCOMING"
	StatusEnded    = "ENDED"

	SourceOfficial  = "official"
	SourceAssistant = "assistant"

	CardYellow = "yellow"
	CardRed    = "red"

	EventGoal = "goal"

	TeamHome = "home"
	TeamAway = "away"
)

type MatchMeta struct {
	Date      string `firestore:"date" json:"date"`
	StartTime string `firestore:"startTime" json:"startTime"`
	Opponent  string `firestore:"opponent" json:"opponent"`
	Type      string `firestore:"type" json:"type"`
	Venue     string `firestore:"venue" json:"venue"`
	VenueName string `firestore:"venueName" json:"venueName"`
}

type Score struct {
	Our   int `firestore:"our" json:"our"`
	Their int `firestore:"their" json:"their"`
}

type Event struct {
	Type     string `firestore:"type" json:"type"`
	Team     string `firestore:"team" json:"team"`
	PlayerID string `firestore:"playerId" json:"playerId"`
	Text     string `firestore:"text" json:"text"`
}

type Card struct {
	Type string `firestore:"type" json:"type"`
}

type PlayingTime struct {
	PlayerID string `firestore:"id" json:"id"`
	Name     string `firestore:"name" json:"name"`
	Minutes  int    `firestore:"minutes" json:"minutes"`
	Cards    []Card `firestore:"cards" json:"cards"`
}

// Match is a document in the canonical "matches" collection, or an assistant
// draft under "assistantMatches/{assistantUid}/matches". Source and
// AssistantUID distinguish the two once rows are flattened into one list.
type Match struct {
	ID          string        `firestore:"-" json:"id"`
	Meta        MatchMeta     `firestore:"meta" json:"meta"`
	Status      string        `firestore:"status" json:"status"`
	Score       *Score        `firestore:"score" json:"score,omitempty"`
	Events      []Event       `firestore:"events" json:"events"`
	PlayingTime []PlayingTime `firestore:"playingTime" json:"playingTime"`

	Source       string `firestore:"source" json:"source"`
	AssistantUID string `firestore:"assistantUid" json:"assistantUid,omitempty"`

	Approved              bool      `firestore:"approved" json:"approved"`
	ApprovedToMatches     bool      `firestore:"approvedToMatches" json:"approvedToMatches"`
	ApprovedAt            time.Time `firestore:"approvedAt" json:"approvedAt,omitempty"`
	ApprovedBy            string    `firestore:"approvedBy" json:"approvedBy,omitempty"`
	ApprovedFromAssistant string    `firestore:"approvedFromAssistant" json:"approvedFromAssistant,omitempty"`

	UpdatedAt time.Time `firestore:"updatedAt" json:"updatedAt,omitempty"`
	EditedBy  string    `firestore:"editedBy" json:"editedBy,omitempty"`
}

// MatchUpdate carries coach edits for a match or draft. Nil fields are left
// untouched in the stored document.
type MatchUpdate struct {
	Date      *string `json:"date"`
	StartTime *string `json:"startTime"`
	Opponent  *string `json:"opponent"`
	Type      *string `json:"type"`
	Venue     *string `json:"venue"`
	VenueName *string `json:"venueName"`
	Our       *int    `json:"our"`
	Their     *int    `json:"their"`
	Status    *string `json:"status"`
}

type User struct {
	UID      string `firestore:"-" json:"uid"`
	Name     string `firestore:"name" json:"name"`
	Email    string `firestore:"email" json:"email"`
	Role     string `firestore:"role" json:"role"`
	Approved bool   `firestore:"approved" json:"approved"`
}

type Reflection struct {
	Type         string   `firestore:"type" json:"type"`
	Week         int      `firestore:"week" json:"week"`
	Year         int      `firestore:"year" json:"year"`
	Effort       *float64 `firestore:"effort" json:"effort"`
	Energy       *float64 `firestore:"energy" json:"energy"`
	GoodThing    string   `firestore:"goodThing" json:"goodThing"`
	ImproveThing string   `firestore:"improveThing" json:"improveThing"`
	CoachNote    string   `firestore:"coachNote" json:"coachNote"`
	CoachEffort  *float64 `firestore:"coachEffort" json:"coachEffort"`
	CoachEnergy  *float64 `firestore:"coachEnergy" json:"coachEnergy"`

	MatchSituation string `firestore:"matchSituation" json:"matchSituation"`
	MatchGood      string `firestore:"matchGood" json:"matchGood"`
	MatchImprove   string `firestore:"matchImprove" json:"matchImprove"`

	CreatedAt time.Time `firestore:"createdAt" json:"createdAt"`
}

type Plan struct {
	MainFocus      string    `firestore:"mainFocus" json:"mainFocus"`
	Utviklingsmaal string    `firestore:"utviklingsmaal" json:"utviklingsmaal"`
	TrainingGoal   string    `firestore:"trainingGoal" json:"trainingGoal"`
	MatchBehaviour string    `firestore:"matchBehaviour" json:"matchBehaviour"`
	Measurement    string    `firestore:"measurement" json:"measurement"`
	UpdatedAt      time.Time `firestore:"updatedAt" json:"updatedAt"`
	ArchivedAt     time.Time `firestore:"archivedAt" json:"archivedAt,omitempty"`
}

type Feedback struct {
	ID            string    `firestore:"-" json:"id"`
	PlayerID      string    `firestore:"playerId" json:"playerId"`
	Type          string    `firestore:"type" json:"type"`
	Week          int       `firestore:"week" json:"week"`
	Year          int       `firestore:"year" json:"year"`
	GeneratedText string    `firestore:"generatedText" json:"generatedText"`
	EditedText    string    `firestore:"editedText" json:"editedText"`
	Status        string    `firestore:"status" json:"status"`
	CreatedAt     time.Time `firestore:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `firestore:"updatedAt" json:"updatedAt"`
}

type KeyPatterns struct {
	PerformanceTrend string `firestore:"performanceTrend" json:"performanceTrend"`
	MentalProfile    string `firestore:"mentalProfile" json:"mentalProfile"`
}

type Analysis struct {
	Summary             string      `firestore:"summary" json:"summary"`
	KeyPatterns         KeyPatterns `firestore:"keyPatterns" json:"keyPatterns"`
	CalibrationAnalysis string      `firestore:"calibrationAnalysis" json:"calibrationAnalysis"`
	RiskFlags           []string    `firestore:"riskFlags" json:"riskFlags"`
	CoachingFocus       string      `firestore:"coachingFocus" json:"coachingFocus"`
	GeneratedAt         time.Time   `firestore:"generatedAt" json:"generatedAt"`
}

// CalculateScore derives the authoritative score from the event list. Every
// write that touches events must persist the recomputed score in the same
// document update.
func CalculateScore(events []Event) Score {
	var score Score
	for _, ev := range events {
		if ev.Type != EventGoal {
			continue
		}
		switch ev.Team {
		case TeamHome:
			score.Our++
		case TeamAway:
			score.Their++
		}
	}
	return score
}
