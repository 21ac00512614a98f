package dto

// QuestionAnswerRequest is the body of /get-ideal-answer, /check-answer and /evaluate
// @Description A question and the user's answer to it
type QuestionAnswerRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// TextAnalysisRequest is the body of /analyze-text
// @Description A transcript and, optionally, the question it answers
type TextAnalysisRequest struct {
	Text     string  `json:"text"`
	Question *string `json:"question"`
}
