package models

import "encoding/json"

// TheoryType is the discriminant for theory records, immutable once set.
type TheoryType string

const (
	TheoryGrammar   TheoryType = "grammar"
	TheoryPhrase    TheoryType = "phrase"
	TheoryFlashcard TheoryType = "flashcard"
)

// KnownTheoryType reports whether t is one of the supported discriminants.
func KnownTheoryType(t TheoryType) bool {
	switch t {
	case TheoryGrammar, TheoryPhrase, TheoryFlashcard:
		return true
	}
	return false
}

// Theory is the flat record shape the backend returns.
type Theory struct {
	ID           string     `json:"_id"`
	UnitID       string     `json:"unitId"`
	TypeTheory   TheoryType `json:"typeTheory"`
	DisplayOrder int        `json:"displayOrder"`
	Title        string     `json:"title,omitempty"`
	Content      string     `json:"content,omitempty"`
	Example      string     `json:"example,omitempty"`
	PhraseText   string     `json:"phraseText,omitempty"`
	Translation  string     `json:"translation,omitempty"`
	Term         string     `json:"term,omitempty"`
	IPA          string     `json:"ipa,omitempty"`
	PartOfSpeech string     `json:"partOfSpeech,omitempty"`
	Audio        string     `json:"audio,omitempty"`
	Image        string     `json:"image,omitempty"`
	CreatedAt    string     `json:"createdAt,omitempty"`
	UpdatedAt    string     `json:"updatedAt,omitempty"`
}

// TheoryPayload is the variant half of a theory write.
type TheoryPayload interface {
	theoryType() TheoryType
}

type GrammarPayload struct {
	Title   string `json:"title"`
	Content string `json:"content,omitempty"`
	Example string `json:"example,omitempty"`
}

type PhrasePayload struct {
	PhraseText  string `json:"phraseText"`
	Translation string `json:"translation,omitempty"`
	Audio       string `json:"audio,omitempty"`
}

type FlashcardPayload struct {
	Term         string `json:"term"`
	Translation  string `json:"translation,omitempty"`
	IPA          string `json:"ipa,omitempty"`
	PartOfSpeech string `json:"partOfSpeech,omitempty"`
	Audio        string `json:"audio,omitempty"`
	Image        string `json:"image,omitempty"`
}

func (GrammarPayload) theoryType() TheoryType   { return TheoryGrammar }
func (PhrasePayload) theoryType() TheoryType    { return TheoryPhrase }
func (FlashcardPayload) theoryType() TheoryType { return TheoryFlashcard }

// TheoryInput is a validated theory write, marshalled flat.
type TheoryInput struct {
	UnitID       string
	TypeTheory   TheoryType
	DisplayOrder *int
	Payload      TheoryPayload
}

func (t TheoryInput) MarshalJSON() ([]byte, error) {
	body := map[string]interface{}{
		"unitId":     t.UnitID,
		"typeTheory": t.TypeTheory,
	}
	if t.DisplayOrder != nil {
		body["displayOrder"] = *t.DisplayOrder
	}
	if t.Payload != nil {
		raw, err := json.Marshal(t.Payload)
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
