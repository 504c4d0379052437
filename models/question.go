package models

import "encoding/json"

// QuestionType is the discriminant selecting which variant payload a question
// carries. It is set at creation and never changes afterwards.
type QuestionType string

const (
	QuestionMatching       QuestionType = "matching"
	QuestionOrdering       QuestionType = "ordering"
	QuestionGap            QuestionType = "gap"
	QuestionMultipleChoice QuestionType = "multiple_choice"
)

// KnownQuestionType reports whether t is one of the supported discriminants.
func KnownQuestionType(t QuestionType) bool {
	switch t {
	case QuestionMatching, QuestionOrdering, QuestionGap, QuestionMultipleChoice:
		return true
	}
	return false
}

// TextPair is one side of a matching exercise.
type TextPair struct {
	Value  string `json:"value"`
	PairID string `json:"pairId,omitempty"`
}

// Question is the flat record shape the backend returns; which of the
// optional fields are populated depends on TypeQuestion.
type Question struct {
	ID                string       `json:"_id"`
	LessonID          string       `json:"lessonId"`
	TypeQuestion      QuestionType `json:"typeQuestion"`
	DisplayOrder      int          `json:"displayOrder"`
	Title             string       `json:"title,omitempty"`
	LeftText          []TextPair   `json:"leftText,omitempty"`
	RightText         []TextPair   `json:"rightText,omitempty"`
	CorrectAnswer     string       `json:"correctAnswer,omitempty"`
	FragmentText      []string     `json:"fragmentText,omitempty"`
	ExactFragmentText string       `json:"exactFragmentText,omitempty"`
	Answers           []string     `json:"answers,omitempty"`
	MediaURL          string       `json:"mediaUrl,omitempty"`
	CreatedAt         string       `json:"createdAt,omitempty"`
	UpdatedAt         string       `json:"updatedAt,omitempty"`
}

// QuestionPayload is the variant half of a question write. Exactly one
// concrete payload type exists per discriminant value, so fields belonging to
// other variants can never leak into a submitted body.
type QuestionPayload interface {
	questionType() QuestionType
}

type MatchingPayload struct {
	LeftText  []TextPair `json:"leftText"`
	RightText []TextPair `json:"rightText"`
}

type OrderingPayload struct {
	FragmentText      []string `json:"fragmentText"`
	ExactFragmentText string   `json:"exactFragmentText"`
}

type GapPayload struct {
	CorrectAnswer string `json:"correctAnswer"`
	MediaURL      string `json:"mediaUrl,omitempty"`
}

type MultipleChoicePayload struct {
	Title         string   `json:"title"`
	CorrectAnswer string   `json:"correctAnswer"`
	Answers       []string `json:"answers"`
	MediaURL      string   `json:"mediaUrl,omitempty"`
}

func (MatchingPayload) questionType() QuestionType       { return QuestionMatching }
func (OrderingPayload) questionType() QuestionType       { return QuestionOrdering }
func (GapPayload) questionType() QuestionType            { return QuestionGap }
func (MultipleChoicePayload) questionType() QuestionType { return QuestionMultipleChoice }

// QuestionInput is a validated question write: the base fields plus exactly
// one variant payload. It marshals flat, the way the backend expects.
type QuestionInput struct {
	LessonID     string
	TypeQuestion QuestionType
	DisplayOrder *int
	Payload      QuestionPayload
}

func (q QuestionInput) MarshalJSON() ([]byte, error) {
	body := map[string]interface{}{
		"lessonId":     q.LessonID,
		"typeQuestion": q.TypeQuestion,
	}
	if q.DisplayOrder != nil {
		body["displayOrder"] = *q.DisplayOrder
	}
	if q.Payload != nil {
		raw, err := json.Marshal(q.Payload)
		if err != nil {
			return nil, err
		}
		var fields map[string]interface{}
		if err := json.Unmarshal(raw, &fields); err != nil {
			return nil, err
		}
		for name, v := range fields {
			body[name] = v
		}
	}
	return json.Marshal(body)
}
