package wellness

import (
	"errors"
	"fmt"

	"alliswell/models"
)

// Band maps a score range (total <= Max, checked in order) to a
// category with guidance. The two band tables below share the same
// boundaries; only the wording and granularity differ.
type Band struct {
	Max         int // -1 means the open-ended top band
	Category    string
	Description string
	Suggestions []string
}

// DefaultBands is the detailed table shown to the user after completing
// the questionnaire. The thresholds are fixed constants with no
// clinical provenance; do not change without domain sign-off.
var DefaultBands = []Band{
	{
		Max:         7,
		Category:    "Generally Well",
		Description: "You seem to be managing well overall. Keep practicing self-care and maintain the positive habits that work for you.",
		Suggestions: []string{
			"Continue your current self-care practices",
			"Maintain regular sleep and exercise routines",
			"Stay connected with supportive people",
		},
	},
	{
		Max:         15,
		Category:    "Mild Distress",
		Description: "You may be experiencing some mild stress or emotional challenges. This is normal, and some self-care strategies might be helpful.",
		Suggestions: []string{
			"Try stress-reduction techniques like deep breathing",
			"Consider guided meditation or mindfulness practices",
			"Reach out to trusted friends or family for support",
		},
	},
	{
		Max:         23,
		Category:    "Moderate Distress",
		Description: "You might be going through a challenging time. Consider reaching out to trusted people in your life or exploring professional support options.",
		Suggestions: []string{
			"Consider speaking with a counselor or therapist",
			"Practice regular stress-reduction techniques",
			"Maintain check-ins with your support network",
		},
	},
	{
		Max:         -1,
		Category:    "High Distress",
		Description: "You may be experiencing significant distress. We strongly encourage you to reach out for professional support. Remember, seeking help is a sign of strength.",
		Suggestions: []string{
			"Strongly consider contacting a mental health professional",
			"Reach out to crisis support resources if needed",
			"Connect with trusted friends, family, or support groups",
		},
	},
}

// resourceBands is the coarse server-side table returned by the
// assessment API. Boundaries must stay numerically identical to
// DefaultBands; a test asserts this.
var resourceBands = []Band{
	{
		Max:      7,
		Category: "well",
		Suggestions: []string{
			"Continue daily self-care practices",
			"Maintain regular sleep schedule",
			"Keep connecting with supportive people",
		},
	},
	{
		Max:      15,
		Category: "mild",
		Suggestions: []string{
			"Practice deep breathing exercises",
			"Consider guided meditation",
			"Reach out to trusted friends or family",
		},
	},
	{
		Max:      23,
		Category: "moderate",
		Suggestions: []string{
			"Consider speaking with a counselor",
			"Practice stress-reduction techniques",
			"Maintain regular check-ins with support network",
		},
	},
	{
		Max:      -1,
		Category: "high",
		Suggestions: []string{
			"Strongly consider professional support",
			"Contact mental health resources",
			"Reach out to crisis support if needed",
		},
	},
}

// Result is the outcome of scoring a full set of responses.
type Result struct {
	Score       int      `json:"score"`
	MaxScore    int      `json:"maxScore"`
	Category    string   `json:"category"`
	Description string   `json:"description"`
	Suggestions []string `json:"suggestions"`
}

var ErrBadResponses = errors.New("wellness: invalid responses")

// bandFor walks a band table in order and returns the first band whose
// Max admits the score. The table's last band must be open-ended.
func bandFor(bands []Band, score int) Band {
	for _, b := range bands {
		if b.Max < 0 || score <= b.Max {
			return b
		}
	}
	return bands[len(bands)-1]
}

// Score sums a full set of responses and maps the total onto the
// detailed band table. It requires exactly one response per question,
// in question order, with each value inside that question's option
// range. Pure: no side effects, deterministic for a given input.
func Score(responses []models.AssessmentAnswer) (Result, error) {
	return ScoreWith(DefaultQuestions, DefaultBands, responses)
}

// ScoreWith scores against explicit question and band tables, so the
// defaults stay configurable data rather than baked-in behavior.
func ScoreWith(questions []Question, bands []Band, responses []models.AssessmentAnswer) (Result, error) {
	if len(responses) != len(questions) {
		return Result{}, fmt.Errorf("%w: got %d responses, want %d", ErrBadResponses, len(responses), len(questions))
	}

	total := 0
	for i, resp := range responses {
		if resp.QuestionIndex != i {
			return Result{}, fmt.Errorf("%w: response %d out of order", ErrBadResponses, i)
		}
		if resp.Value < 0 || resp.Value > questions[i].maxValue() {
			return Result{}, fmt.Errorf("%w: value %d out of range for question %d", ErrBadResponses, resp.Value, i+1)
		}
		total += resp.Value
	}

	band := bandFor(bands, total)
	return Result{
		Score:       total,
		MaxScore:    MaxScore(questions),
		Category:    band.Category,
		Description: band.Description,
		Suggestions: band.Suggestions,
	}, nil
}

// ResourcesForScore maps a total score onto the coarse resource table
// used by the assessment API.
func ResourcesForScore(score int) models.AssessmentResources {
	band := bandFor(resourceBands, score)
	return models.AssessmentResources{
		Category:    band.Category,
		Suggestions: band.Suggestions,
	}
}
