package wellness

// Option is one selectable answer with its score contribution.
type Option struct {
	Text  string `json:"text"`
	Value int    `json:"value"`
}

// Question is one item of the fixed self-assessment questionnaire.
type Question struct {
	ID      int      `json:"id"`
	Text    string   `json:"text"`
	Options []Option `json:"options"`
}

// DefaultQuestions is the fixed questionnaire. The texts and option
// values are not clinically validated and must not be edited without
// domain sign-off.
var DefaultQuestions = []Question{
	{
		ID:   1,
		Text: "Over the past two weeks, how often have you felt down, depressed, or hopeless?",
		Options: []Option{
			{Text: "Not at all", Value: 0},
			{Text: "Several days", Value: 1},
			{Text: "More than half the days", Value: 2},
			{Text: "Nearly every day", Value: 3},
		},
	},
	{
		ID:   2,
		Text: "How often have you felt nervous, anxious, or on edge?",
		Options: []Option{
			{Text: "Not at all", Value: 0},
			{Text: "Several days", Value: 1},
			{Text: "More than half the days", Value: 2},
			{Text: "Nearly every day", Value: 3},
		},
	},
	{
		ID:   3,
		Text: "How would you rate your overall stress level recently?",
		Options: []Option{
			{Text: "Very low", Value: 0},
			{Text: "Low", Value: 1},
			{Text: "Moderate", Value: 2},
			{Text: "High", Value: 3},
			{Text: "Very high", Value: 4},
		},
	},
	{
		ID:   4,
		Text: "How well have you been sleeping?",
		Options: []Option{
			{Text: "Very well", Value: 0},
			{Text: "Fairly well", Value: 1},
			{Text: "Not very well", Value: 2},
			{Text: "Not well at all", Value: 3},
		},
	},
	{
		ID:   5,
		Text: "How often do you feel overwhelmed by daily responsibilities?",
		Options: []Option{
			{Text: "Never", Value: 0},
			{Text: "Rarely", Value: 1},
			{Text: "Sometimes", Value: 2},
			{Text: "Often", Value: 3},
			{Text: "Always", Value: 4},
		},
	},
	{
		ID:   6,
		Text: "How satisfied are you with your social connections and relationships?",
		Options: []Option{
			{Text: "Very satisfied", Value: 0},
			{Text: "Satisfied", Value: 1},
			{Text: "Neutral", Value: 2},
			{Text: "Dissatisfied", Value: 3},
		},
	},
	{
		ID:   7,
		Text: "How often do you engage in activities you enjoy?",
		Options: []Option{
			{Text: "Daily", Value: 0},
			{Text: "Several times a week", Value: 1},
			{Text: "Once a week", Value: 2},
			{Text: "Rarely", Value: 3},
			{Text: "Never", Value: 4},
		},
	},
	{
		ID:   8,
		Text: "How hopeful do you feel about the future?",
		Options: []Option{
			{Text: "Very hopeful", Value: 0},
			{Text: "Somewhat hopeful", Value: 1},
			{Text: "Neutral", Value: 2},
			{Text: "Not very hopeful", Value: 3},
			{Text: "Not hopeful at all", Value: 4},
		},
	},
}

// maxValue returns the highest option value of a question.
func (q Question) maxValue() int {
	max := 0
	for _, opt := range q.Options {
		if opt.Value > max {
			max = opt.Value
		}
	}
	return max
}

// MaxScore is the highest total the questionnaire can produce.
func MaxScore(questions []Question) int {
	total := 0
	for _, q := range questions {
		total += q.maxValue()
	}
	return total
}
