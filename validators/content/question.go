package contentValidator

import (
	"strings"

	"lingadmin/middleware"
	"lingadmin/models"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// questionRequest accepts the union of every variant's fields; buildQuestion
// keeps only the ones belonging to the active discriminant.
type questionRequest struct {
	LessonID          string              `json:"lessonId"`
	TypeQuestion      models.QuestionType `json:"typeQuestion"`
	DisplayOrder      *int                `json:"displayOrder"`
	Title             string              `json:"title"`
	LeftText          []models.TextPair   `json:"leftText"`
	RightText         []models.TextPair   `json:"rightText"`
	CorrectAnswer     string              `json:"correctAnswer"`
	FragmentText      []string            `json:"fragmentText"`
	ExactFragmentText string              `json:"exactFragmentText"`
	Answers           []string            `json:"answers"`
	MediaURL          string              `json:"mediaUrl"`
}

// buildQuestion applies the schema of exactly one variant and assembles the
// payload from that variant's fields alone. Fields of other variants are
// neither validated nor forwarded.
func buildQuestion(req *questionRequest) (models.QuestionInput, map[string]string) {
	errors := make(map[string]string)

	if strings.TrimSpace(req.LessonID) == "" {
		errors["lessonId"] = "Lesson is required!"
	}
	if !models.KnownQuestionType(req.TypeQuestion) {
		errors["typeQuestion"] = "Unknown question type!"
		return models.QuestionInput{}, errors
	}

	input := models.QuestionInput{
		LessonID:     req.LessonID,
		TypeQuestion: req.TypeQuestion,
		DisplayOrder: req.DisplayOrder,
	}

	switch req.TypeQuestion {
	case models.QuestionMatching:
		if len(req.LeftText) < 1 {
			errors["leftText"] = "At least one left text entry is required!"
		}
		if len(req.RightText) < 1 {
			errors["rightText"] = "At least one right text entry is required!"
		}
		for _, pair := range req.LeftText {
			if strings.TrimSpace(pair.Value) == "" {
				errors["leftText"] = "Left text entries cannot be empty!"
			}
		}
		for _, pair := range req.RightText {
			if strings.TrimSpace(pair.Value) == "" {
				errors["rightText"] = "Right text entries cannot be empty!"
			}
		}
		input.Payload = models.MatchingPayload{LeftText: req.LeftText, RightText: req.RightText}

	case models.QuestionOrdering:
		if len(req.FragmentText) < 1 {
			errors["fragmentText"] = "At least one fragment is required!"
		}
		for _, fragment := range req.FragmentText {
			if strings.TrimSpace(fragment) == "" {
				errors["fragmentText"] = "Fragments cannot be empty!"
			}
		}
		if strings.TrimSpace(req.ExactFragmentText) == "" {
			errors["exactFragmentText"] = "Exact fragment text is required!"
		}
		input.Payload = models.OrderingPayload{
			FragmentText:      req.FragmentText,
			ExactFragmentText: req.ExactFragmentText,
		}

	case models.QuestionGap:
		if strings.TrimSpace(req.CorrectAnswer) == "" {
			errors["correctAnswer"] = "Correct answer is required!"
		}
		if err := validate.Var(req.MediaURL, "omitempty,url"); err != nil {
			errors["mediaUrl"] = "Media URL must be a valid URL!"
		}
		input.Payload = models.GapPayload{CorrectAnswer: req.CorrectAnswer, MediaURL: req.MediaURL}

	case models.QuestionMultipleChoice:
		if strings.TrimSpace(req.Title) == "" {
			errors["title"] = "Title is required!"
		}
		if strings.TrimSpace(req.CorrectAnswer) == "" {
			errors["correctAnswer"] = "Correct answer is required!"
		}
		if len(req.Answers) < 2 {
			errors["answers"] = "At least two answer options are required!"
		}
		for _, answer := range req.Answers {
			if strings.TrimSpace(answer) == "" {
				errors["answers"] = "Answer options cannot be empty!"
			}
		}
		if err := validate.Var(req.MediaURL, "omitempty,url"); err != nil {
			errors["mediaUrl"] = "Media URL must be a valid URL!"
		}
		input.Payload = models.MultipleChoicePayload{
			Title:         req.Title,
			CorrectAnswer: req.CorrectAnswer,
			Answers:       req.Answers,
			MediaURL:      req.MediaURL,
		}
	}

	return input, errors
}

func CreateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(questionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		input, errors := buildQuestion(reqData)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestion", input)
		return c.Next()
	}
}

// UpdateQuestion validates the same way as create; the controller also
// rejects a discriminant that differs from the stored record.
func UpdateQuestion() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(questionRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		input, errors := buildQuestion(reqData)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedQuestionUpdate", input)
		return c.Next()
	}
}
