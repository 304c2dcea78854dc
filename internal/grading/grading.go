// Package grading checks submitted answers against challenges and quiz
// questions. Everything here is pure: no logging, no state.
package grading

import "github.com/p-n-ai/pai-curriculum/internal/curriculum"

// QuizResult is the outcome of grading a quiz question. Explanation is always
// filled, whether or not the answer was correct.
type QuizResult struct {
	Correct     bool   `json:"correct"`
	Explanation string `json:"explanation"`
}

// GradeChallenge reports whether submitted is the challenge's correct key.
// Comparison is exact and case-sensitive.
func GradeChallenge(c curriculum.Challenge, submitted curriculum.AnswerKey) bool {
	return submitted == c.CorrectAnswer()
}

// GradeQuizQuestion grades submitted against q's correct choice.
func GradeQuizQuestion(q curriculum.QuizQuestion, submitted curriculum.AnswerKey) QuizResult {
	return QuizResult{
		Correct:     submitted == q.CorrectChoice(),
		Explanation: q.Explanation(),
	}
}
