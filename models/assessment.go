package models

// AssessmentAnswer is one answered question, in question order.
type AssessmentAnswer struct {
	QuestionIndex int `json:"questionIndex"`
	Value         int `json:"value"`
}

// AssessmentRequest is the POST /api/assessment payload. Score is a
// pointer so a missing or non-numeric score is distinguishable from zero.
type AssessmentRequest struct {
	Responses []AssessmentAnswer `json:"responses"`
	Score     *float64           `json:"score"`
	Category  string             `json:"category"`
	Timestamp string             `json:"timestamp"`
}

// AssessmentResources is the coarse category/suggestion set returned to
// the client alongside the save confirmation.
type AssessmentResources struct {
	Category    string   `json:"category"`
	Suggestions []string `json:"suggestions"`
}

// AssessmentResponse is the POST /api/assessment response body.
type AssessmentResponse struct {
	Success   bool                 `json:"success"`
	Message   string               `json:"message,omitempty"`
	Resources *AssessmentResources `json:"resources,omitempty"`
	Error     string               `json:"error,omitempty"`
}
