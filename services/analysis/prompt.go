package analysis

import (
	"encoding/json"
	"fmt"

	club "github.com/refleksjon/coach-sync/repos/club"
)

func analysisPrompt(reflections []club.Reflection, cal Calibration) string {
	return fmt.Sprintf(`
Du er en erfaren og strukturert fotballfaglig analyseassistent for en ungdomstrener (G14).

Du skal analysere både:
1) Spillerens skriftlige refleksjoner
2) Kvantitative data for innsats og energi

Data:
- Antall refleksjoner: %d
- Snitt innsats: %.2f
- Snitt energi: %.2f
- Antall refleksjoner med trener-score: %d
- Snitt avvik innsats (trener - spiller): %.2f
- Snitt avvik energi (trener - spiller): %.2f

Retningslinjer:
- Kommenter alltid alle feltene.
- Bruk trenerfaglig og presist språk.
- Integrer tallene aktivt i vurderingen.
- Vurder om det er samsvar eller avvik mellom tekst og tall.
- Ikke spekuler i personlighet.
- Ikke finn opp nye problemområder som ikke har grunnlag i refleksjonene.
- Dersom datagrunnlaget er begrenset, presiser det.

Hvis både Kamp og Trening finnes i datagrunnlaget, analyser dem separat før
du gir en samlet vurdering.

Svar KUN i gyldig JSON:

{
  "summary": "",
  "performanceTrend": "",
  "mentalProfile": "",
  "calibrationAnalysis": "",
  "riskFlags": [],
  "coachingFocus": ""
}

Refleksjoner:
%s
`, cal.Count, cal.AvgEffort, cal.AvgEnergy, cal.CoachCount, cal.EffortDelta, cal.EnergyDelta,
		reflectionHistory(reflections))
}

func feedbackPrompt(reflections []club.Reflection) string {
	return fmt.Sprintf(`
Du er en fotballtrener som gir en konkret og motiverende tilbakemelding til en 14 år gammel spiller.

Basert på følgende refleksjoner:
%s

Skriv maks 100 ord.
`, reflectionHistory(reflections))
}

type analysisPayload struct {
	Summary             string   `json:"summary"`
	PerformanceTrend    string   `json:"performanceTrend"`
	MentalProfile       string   `json:"mentalProfile"`
	CalibrationAnalysis string   `json:"calibrationAnalysis"`
	RiskFlags           []string `json:"riskFlags"`
	CoachingFocus       string   `json:"coachingFocus"`
}

func decodeAnalysis(payload string) (*club.Analysis, error) {
	var parsed analysisPayload
	if err := json.Unmarshal([]byte(payload), &parsed); err != nil {
		return nil, fmt.Errorf("decode analysis answer: %w", err)
	}

	riskFlags := parsed.RiskFlags
	if riskFlags == nil {
		riskFlags = []string{}
	}

	return &club.Analysis{
		Summary: parsed.Summary,
		KeyPatterns: club.KeyPatterns{
			PerformanceTrend: parsed.PerformanceTrend,
			MentalProfile:    parsed.MentalProfile,
		},
		CalibrationAnalysis: parsed.CalibrationAnalysis,
		RiskFlags:           riskFlags,
		CoachingFocus:       parsed.CoachingFocus,
	}, nil
}
