package contentValidator

import (
	"encoding/json"
	"testing"

	"lingadmin/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalledFields(t *testing.T, v interface{}) map[string]interface{} {
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	fields := make(map[string]interface{})
	require.NoError(t, json.Unmarshal(raw, &fields))
	return fields
}

func TestBuildQuestionMultipleChoice(t *testing.T) {
	input, errs := buildQuestion(&questionRequest{
		LessonID:      "l1",
		TypeQuestion:  models.QuestionMultipleChoice,
		Title:         "Pick the article",
		CorrectAnswer: "der",
		Answers:       []string{"der", "die", "das"},
	})
	require.Empty(t, errs)

	payload, ok := input.Payload.(models.MultipleChoicePayload)
	require.True(t, ok)
	assert.Equal(t, "der", payload.CorrectAnswer)
	assert.Len(t, payload.Answers, 3)
}

func TestBuildQuestionMultipleChoiceNeedsTwoAnswers(t *testing.T) {
	_, errs := buildQuestion(&questionRequest{
		LessonID:      "l1",
		TypeQuestion:  models.QuestionMultipleChoice,
		Title:         "Pick the article",
		CorrectAnswer: "der",
		Answers:       []string{"der"},
	})
	assert.Contains(t, errs, "answers")
}

func TestBuildQuestionMatchingRejectsEmptyEntries(t *testing.T) {
	_, errs := buildQuestion(&questionRequest{
		LessonID:     "l1",
		TypeQuestion: models.QuestionMatching,
		LeftText:     []models.TextPair{{Value: "  "}},
		RightText:    []models.TextPair{{Value: "perro"}},
	})
	assert.Contains(t, errs, "leftText")
	assert.NotContains(t, errs, "rightText")
}

func TestBuildQuestionOrderingNeedsExactText(t *testing.T) {
	_, errs := buildQuestion(&questionRequest{
		LessonID:     "l1",
		TypeQuestion: models.QuestionOrdering,
		FragmentText: []string{"ich", "bin", "hier"},
	})
	assert.Contains(t, errs, "exactFragmentText")
}

func TestBuildQuestionGapRejectsBadMediaURL(t *testing.T) {
	_, errs := buildQuestion(&questionRequest{
		LessonID:      "l1",
		TypeQuestion:  models.QuestionGap,
		CorrectAnswer: "estoy",
		MediaURL:      "not a url",
	})
	assert.Contains(t, errs, "mediaUrl")
}

func TestBuildQuestionRejectsUnknownType(t *testing.T) {
	_, errs := buildQuestion(&questionRequest{
		LessonID:     "l1",
		TypeQuestion: "true_false",
	})
	assert.Contains(t, errs, "typeQuestion")
}

// A request may arrive carrying fields of several variants at once, e.g. after
// the user switched the type selector mid-edit. Only the active variant's
// fields may reach the backend.
func TestBuildQuestionDropsForeignVariantFields(t *testing.T) {
	input, errs := buildQuestion(&questionRequest{
		LessonID:     "l1",
		TypeQuestion: models.QuestionMatching,
		LeftText:     []models.TextPair{{Value: "dog"}},
		RightText:    []models.TextPair{{Value: "perro"}},

		// leftovers from other variants
		CorrectAnswer: "stale",
		Answers:       []string{"a", "b"},
		FragmentText:  []string{"x"},
		Title:         "stale title",
	})
	require.Empty(t, errs)

	fields := marshalledFields(t, input)
	assert.Contains(t, fields, "leftText")
	assert.Contains(t, fields, "rightText")
	assert.NotContains(t, fields, "correctAnswer")
	assert.NotContains(t, fields, "answers")
	assert.NotContains(t, fields, "fragmentText")
	assert.NotContains(t, fields, "title")
}

func TestQuestionInputMarshalsFlat(t *testing.T) {
	order := 3
	input, errs := buildQuestion(&questionRequest{
		LessonID:          "l1",
		TypeQuestion:      models.QuestionOrdering,
		DisplayOrder:      &order,
		FragmentText:      []string{"ich", "bin"},
		ExactFragmentText: "ich bin",
	})
	require.Empty(t, errs)

	fields := marshalledFields(t, input)
	assert.Equal(t, "l1", fields["lessonId"])
	assert.Equal(t, "ordering", fields["typeQuestion"])
	assert.Equal(t, float64(3), fields["displayOrder"])
	assert.Equal(t, "ich bin", fields["exactFragmentText"])
	assert.NotContains(t, fields, "Payload")
}
