package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// QuestionKey is the natural key of a review question.
type QuestionKey struct {
	Word         string
	LearningLang string
	NativeLang   string
}

// NewQuestionKey builds a key with the word lowercased and inner whitespace
// collapsed, and language codes lowercased.
func NewQuestionKey(word, learningLang, nativeLang string) QuestionKey {
	return QuestionKey{
		Word:         NormalizeText(word),
		LearningLang: NormalizeLang(learningLang),
		NativeLang:   NormalizeLang(nativeLang),
	}
}

func (k QuestionKey) String() string {
	return fmt.Sprintf("%s (%s→%s)", k.Word, k.LearningLang, k.NativeLang)
}

// Question is one unit of review content. It is immutable once fetched;
// the queue hands out the same pointer from every peek until it is committed.
type Question struct {
	Key     QuestionKey
	CardID  uuid.UUID
	Prompt  string
	Payload QuestionPayload
}

// QuestionPayload is the rendering data of a question. The queue never looks at it.
type QuestionPayload struct {
	State         CardState
	Definitions   []string
	Examples      []string
	Transcription *string
}

// Batch is the result of one QuestionSource call.
type Batch struct {
	Questions []*Question
	HasMore   bool
}

// Len returns the number of questions in the batch.
func (b Batch) Len() int { return len(b.Questions) }

// Cursor is the continuation token passed to the question source. The
// source drops answered cards from the front of its queue, so Offset counts
// only the questions the client holds but has not answered yet.
type Cursor struct {
	Offset int
}

// FilterParams scope a fetch to a learner and language pair.
type FilterParams struct {
	LearnerID    uuid.UUID
	LearningLang string
	NativeLang   string
}
