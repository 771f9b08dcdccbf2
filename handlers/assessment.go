package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"alliswell/models"
	"alliswell/wellness"

	"go.uber.org/zap"
)

// AssessmentHandler serves the assessment API. The client owns the
// detailed scoring; the server validates the payload shape and answers
// with the coarse resource table for the reported score. Nothing is
// persisted server-side.
type AssessmentHandler struct{}

func NewAssessmentHandler() *AssessmentHandler {
	return &AssessmentHandler{}
}

// Submit handles POST /api/assessment. 400 when responses are missing
// or score is not numeric.
func (h *AssessmentHandler) Submit(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	var req models.AssessmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logRequest(ctx, "error", "Invalid assessment body", zap.Error(err))
		writeJSON(w, http.StatusBadRequest, models.AssessmentResponse{
			Success: false,
			Error:   "Invalid assessment data",
		})
		return
	}

	if req.Responses == nil || req.Score == nil {
		logRequest(ctx, "error", "Missing responses or score")
		writeJSON(w, http.StatusBadRequest, models.AssessmentResponse{
			Success: false,
			Error:   "Invalid assessment data",
		})
		return
	}

	score := int(*req.Score)
	resources := wellness.ResourcesForScore(score)

	logRequest(ctx, "info", "Assessment saved",
		zap.Int("score", score),
		zap.String("category", req.Category),
		zap.String("timestamp", req.Timestamp))

	writeJSON(w, http.StatusOK, models.AssessmentResponse{
		Success:   true,
		Message:   "Assessment saved successfully",
		Resources: &resources,
	})
}

// Questions handles GET /api/assessment/questions - serves the fixed
// question list so the client renders from the same data the scorer
// validates against.
func (h *AssessmentHandler) Questions(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	logRequest(ctx, "debug", "Questions served")
	writeJSON(w, http.StatusOK, wellness.DefaultQuestions)
}
