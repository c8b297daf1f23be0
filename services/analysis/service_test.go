package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xorcare/pointer"

	club "github.com/refleksjon/coach-sync/repos/club"
)

func TestCalibrate(t *testing.T) {
	reflections := []club.Reflection{
		{Effort: pointer.Float64(3), Energy: pointer.Float64(4),
			CoachEffort: pointer.Float64(4), CoachEnergy: pointer.Float64(4)},
		{Effort: pointer.Float64(5), Energy: pointer.Float64(2)},
		{Effort: pointer.Float64(4), Energy: pointer.Float64(3),
			CoachEffort: pointer.Float64(3), CoachEnergy: pointer.Float64(4)},
	}

	cal := Calibrate(reflections)

	assert.Equal(t, 3, cal.Count)
	assert.InDelta(t, 4.0, cal.AvgEffort, 0.001)
	assert.InDelta(t, 3.0, cal.AvgEnergy, 0.001)
	assert.Equal(t, 2, cal.CoachCount)
	// (4-3) + (3-4) = 0 over two scored reflections
	assert.InDelta(t, 0.0, cal.EffortDelta, 0.001)
	// (4-4) + (4-3) = 1 over two scored reflections
	assert.InDelta(t, 0.5, cal.EnergyDelta, 0.001)
}

func TestCalibrateEmpty(t *testing.T) {
	cal := Calibrate(nil)
	assert.Equal(t, 0, cal.Count)
	assert.Equal(t, 0, cal.CoachCount)
}

// A reflection with only one coach score carries no calibration signal.
func TestCalibrateRequiresBothCoachScores(t *testing.T) {
	reflections := []club.Reflection{
		{Effort: pointer.Float64(3), Energy: pointer.Float64(3),
			CoachEffort: pointer.Float64(5)},
	}

	cal := Calibrate(reflections)
	assert.Equal(t, 0, cal.CoachCount)
}

func TestExtractJSON(t *testing.T) {
	payload, err := ExtractJSON("Her er analysen:\n```json\n{\"summary\":\"ok\"}\n```\nHilsen modellen")
	assert.NoError(t, err)
	assert.Equal(t, `{"summary":"ok"}`, payload)
}

func TestExtractJSONNoObject(t *testing.T) {
	_, err := ExtractJSON("beklager, jeg kan ikke svare i JSON")
	assert.Equal(t, ErrNotJSON, err)
}

func TestDecodeAnalysis(t *testing.T) {
	analysis, err := decodeAnalysis(`{
		"summary": "Jevn utvikling",
		"performanceTrend": "Stabil",
		"mentalProfile": "Selvkritisk",
		"calibrationAnalysis": "God kalibrering",
		"riskFlags": ["Lav energi i kamp"],
		"coachingFocus": "Flere avslutninger"
	}`)

	assert.NoError(t, err)
	assert.Equal(t, "Jevn utvikling", analysis.Summary)
	assert.Equal(t, "Stabil", analysis.KeyPatterns.PerformanceTrend)
	assert.Equal(t, []string{"Lav energi i kamp"}, analysis.RiskFlags)
}

// Missing riskFlags must decode to an empty list, never null.
func TestDecodeAnalysisDefaultsRiskFlags(t *testing.T) {
	analysis, err := decodeAnalysis(`{"summary": "ok"}`)

	assert.NoError(t, err)
	assert.NotNil(t, analysis.RiskFlags)
	assert.Empty(t, analysis.RiskFlags)
}

func TestDecodeAnalysisInvalid(t *testing.T) {
	_, err := decodeAnalysis(`{"summary": `)
	assert.Error(t, err)
}

func TestReflectionHistoryByType(t *testing.T) {
	history := reflectionHistory([]club.Reflection{
		{Type: "match", Effort: pointer.Float64(4), MatchSituation: "Bakrom"},
		{Type: "training", Effort: pointer.Float64(3), GoodThing: "Pasninger"},
	})

	assert.Contains(t, history, "Type: Kamp")
	assert.Contains(t, history, "Situasjon: Bakrom")
	assert.Contains(t, history, "Type: Trening")
	assert.Contains(t, history, "God ting: Pasninger")
}
