package contentValidator

import (
	"strings"

	"lingadmin/middleware"
	"lingadmin/models"

	"github.com/gofiber/fiber/v2"
)

type theoryRequest struct {
	UnitID       string            `json:"unitId"`
	TypeTheory   models.TheoryType `json:"typeTheory"`
	DisplayOrder *int              `json:"displayOrder"`
	Title        string            `json:"title"`
	Content      string            `json:"content"`
	Example      string            `json:"example"`
	PhraseText   string            `json:"phraseText"`
	Translation  string            `json:"translation"`
	Term         string            `json:"term"`
	IPA          string            `json:"ipa"`
	PartOfSpeech string            `json:"partOfSpeech"`
	Audio        string            `json:"audio"`
	Image        string            `json:"image"`
}

// buildTheory mirrors BuildQuestion for the theory discriminant.
func buildTheory(req *theoryRequest) (models.TheoryInput, map[string]string) {
	errors := make(map[string]string)

	if strings.TrimSpace(req.UnitID) == "" {
		errors["unitId"] = "Unit is required!"
	}
	if !models.KnownTheoryType(req.TypeTheory) {
		errors["typeTheory"] = "Unknown theory type!"
		return models.TheoryInput{}, errors
	}

	input := models.TheoryInput{
		UnitID:       req.UnitID,
		TypeTheory:   req.TypeTheory,
		DisplayOrder: req.DisplayOrder,
	}

	switch req.TypeTheory {
	case models.TheoryGrammar:
		if strings.TrimSpace(req.Title) == "" {
			errors["title"] = "Title is required!"
		}
		input.Payload = models.GrammarPayload{
			Title:   req.Title,
			Content: req.Content,
			Example: req.Example,
		}

	case models.TheoryPhrase:
		if strings.TrimSpace(req.PhraseText) == "" {
			errors["phraseText"] = "Phrase text is required!"
		}
		if err := validate.Var(req.Audio, "omitempty,url"); err != nil {
			errors["audio"] = "Audio must be a valid URL!"
		}
		input.Payload = models.PhrasePayload{
			PhraseText:  req.PhraseText,
			Translation: req.Translation,
			Audio:       req.Audio,
		}

	case models.TheoryFlashcard:
		if strings.TrimSpace(req.Term) == "" {
			errors["term"] = "Term is required!"
		}
		if err := validate.Var(req.Audio, "omitempty,url"); err != nil {
			errors["audio"] = "Audio must be a valid URL!"
		}
		if err := validate.Var(req.Image, "omitempty,url"); err != nil {
			errors["image"] = "Image must be a valid URL!"
		}
		input.Payload = models.FlashcardPayload{
			Term:         req.Term,
			Translation:  req.Translation,
			IPA:          req.IPA,
			PartOfSpeech: req.PartOfSpeech,
			Audio:        req.Audio,
			Image:        req.Image,
		}
	}

	return input, errors
}

func CreateTheory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(theoryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		input, errors := buildTheory(reqData)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTheory", input)
		return c.Next()
	}
}

func UpdateTheory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(theoryRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		input, errors := buildTheory(reqData)
		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedTheoryUpdate", input)
		return c.Next()
	}
}
