package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"alliswell/models"
	"alliswell/wellness"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postAssessment(t *testing.T, body string) (*httptest.ResponseRecorder, models.AssessmentResponse) {
	t.Helper()
	h := NewAssessmentHandler()
	req := httptest.NewRequest("POST", "/api/assessment", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	h.Submit(context.Background(), rec, req)

	var resp models.AssessmentResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	return rec, resp
}

func TestAssessmentReturnsResourcesForScore(t *testing.T) {
	t.Parallel()

	rec, resp := postAssessment(t, `{
		"responses":[{"questionIndex":0,"value":2}],
		"score":18,
		"category":"Moderate Distress",
		"timestamp":"2025-09-01T10:00:00Z"
	}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, resp.Success)
	assert.Equal(t, "Assessment saved successfully", resp.Message)

	require.NotNil(t, resp.Resources)
	want := wellness.ResourcesForScore(18)
	assert.Equal(t, want.Category, resp.Resources.Category)
	assert.Equal(t, want.Suggestions, resp.Resources.Suggestions)
}

func TestAssessmentRejectsBadPayloads(t *testing.T) {
	t.Parallel()

	bad := []string{
		`{"score":10}`, // responses missing
		`{"responses":[{"questionIndex":0,"value":1}]}`, // score missing
		`{"responses":[],"score":"ten"}`,                // score not numeric
		`not json`,
	}
	for _, body := range bad {
		rec, resp := postAssessment(t, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, "body %q", body)
		assert.False(t, resp.Success)
		assert.Equal(t, "Invalid assessment data", resp.Error)
	}
}

func TestAssessmentAcceptsZeroScore(t *testing.T) {
	t.Parallel()

	rec, resp := postAssessment(t, `{"responses":[],"score":0}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, resp.Resources)
	assert.Equal(t, "well", resp.Resources.Category)
}

func TestQuestionsServesScorerData(t *testing.T) {
	t.Parallel()

	h := NewAssessmentHandler()
	req := httptest.NewRequest("GET", "/api/assessment/questions", nil)
	rec := httptest.NewRecorder()

	h.Questions(context.Background(), rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var questions []wellness.Question
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&questions))
	assert.Len(t, questions, len(wellness.DefaultQuestions))
	assert.Equal(t, wellness.DefaultQuestions[0].Text, questions[0].Text)
}
