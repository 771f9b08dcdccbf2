package wellness

import (
	"testing"

	"alliswell/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// responsesForTotal builds a valid full response set summing to total,
// distributing values greedily across the questions.
func responsesForTotal(t *testing.T, total int) []models.AssessmentAnswer {
	t.Helper()
	require.LessOrEqual(t, total, MaxScore(DefaultQuestions))

	remaining := total
	responses := make([]models.AssessmentAnswer, len(DefaultQuestions))
	for i, q := range DefaultQuestions {
		v := q.maxValue()
		if v > remaining {
			v = remaining
		}
		responses[i] = models.AssessmentAnswer{QuestionIndex: i, Value: v}
		remaining -= v
	}
	require.Zero(t, remaining, "cannot reach total %d", total)
	return responses
}

func TestScoreEqualsSum(t *testing.T) {
	t.Parallel()

	responses := []models.AssessmentAnswer{
		{QuestionIndex: 0, Value: 1},
		{QuestionIndex: 1, Value: 2},
		{QuestionIndex: 2, Value: 3},
		{QuestionIndex: 3, Value: 0},
		{QuestionIndex: 4, Value: 4},
		{QuestionIndex: 5, Value: 1},
		{QuestionIndex: 6, Value: 2},
		{QuestionIndex: 7, Value: 0},
	}

	result, err := Score(responses)
	require.NoError(t, err)
	assert.Equal(t, 13, result.Score)
	assert.Equal(t, 28, result.MaxScore)
}

func TestScoreDeterministic(t *testing.T) {
	t.Parallel()

	responses := responsesForTotal(t, 17)

	first, err := Score(responses)
	require.NoError(t, err)
	second, err := Score(responses)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestBandBoundaries(t *testing.T) {
	t.Parallel()

	cases := []struct {
		total    int
		category string
	}{
		{7, "Generally Well"},
		{8, "Mild Distress"},
		{15, "Mild Distress"},
		{16, "Moderate Distress"},
		{23, "Moderate Distress"},
		{24, "High Distress"},
	}

	for _, tc := range cases {
		result, err := Score(responsesForTotal(t, tc.total))
		require.NoError(t, err)
		assert.Equal(t, tc.category, result.Category, "total %d", tc.total)
		assert.Equal(t, tc.total, result.Score)
		assert.NotEmpty(t, result.Description)
		assert.Len(t, result.Suggestions, 3)
	}
}

// The detailed client-facing table and the coarse resource table must
// agree on the band tier at every boundary.
func TestResourceBandsAgreeWithScoreBands(t *testing.T) {
	t.Parallel()

	tierByCategory := map[string]int{
		"Generally Well":    0,
		"Mild Distress":     1,
		"Moderate Distress": 2,
		"High Distress":     3,
	}
	tierByResource := map[string]int{
		"well":     0,
		"mild":     1,
		"moderate": 2,
		"high":     3,
	}

	for _, total := range []int{7, 8, 15, 16, 23, 24} {
		result, err := Score(responsesForTotal(t, total))
		require.NoError(t, err)

		resources := ResourcesForScore(total)
		assert.Equal(t,
			tierByCategory[result.Category],
			tierByResource[resources.Category],
			"tier mismatch at total %d", total)
		assert.Len(t, resources.Suggestions, 3)
	}
}

func TestResourceBandTableBoundariesIdentical(t *testing.T) {
	t.Parallel()

	require.Equal(t, len(DefaultBands), len(resourceBands))
	for i := range DefaultBands {
		assert.Equal(t, DefaultBands[i].Max, resourceBands[i].Max, "band %d", i)
	}
}

func TestScoreRejectsBadResponses(t *testing.T) {
	t.Parallel()

	// Too few responses.
	_, err := Score([]models.AssessmentAnswer{{QuestionIndex: 0, Value: 1}})
	assert.ErrorIs(t, err, ErrBadResponses)

	// Value above the question's option range (question 1 caps at 3).
	bad := responsesForTotal(t, 0)
	bad[0].Value = 4
	_, err = Score(bad)
	assert.ErrorIs(t, err, ErrBadResponses)

	// Negative value.
	bad = responsesForTotal(t, 0)
	bad[3].Value = -1
	_, err = Score(bad)
	assert.ErrorIs(t, err, ErrBadResponses)

	// Out-of-order response index.
	bad = responsesForTotal(t, 0)
	bad[2].QuestionIndex = 5
	_, err = Score(bad)
	assert.ErrorIs(t, err, ErrBadResponses)
}

func TestMaxScore(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 28, MaxScore(DefaultQuestions))
}
