package api

import (
	"encoding/json"
	"time"
)

// gqlRequest is the standard GraphQL-over-HTTP request body.
type gqlRequest struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables,omitempty"`
}

// gqlResponse is the standard GraphQL response envelope.
type gqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []gqlError      `json:"errors"`
}

type gqlError struct {
	Message    string         `json:"message"`
	Path       []any          `json:"path"`
	Extensions map[string]any `json:"extensions"`
}

func (e gqlError) code() string {
	code, _ := e.Extensions["code"].(string)
	return code
}

// studyQueueData is the data payload of the StudyQueue operation.
type studyQueueData struct {
	StudyQueue []apiEntry `json:"studyQueue"`
}

type apiEntry struct {
	ID             string             `json:"id"`
	Text           string             `json:"text"`
	Card           *apiCard           `json:"card"`
	Senses         []apiSense         `json:"senses"`
	Pronunciations []apiPronunciation `json:"pronunciations"`
}

type apiCard struct {
	ID    string     `json:"id"`
	State string     `json:"state"`
	Due   *time.Time `json:"due"`
}

type apiSense struct {
	Definition *string      `json:"definition"`
	Examples   []apiExample `json:"examples"`
}

type apiExample struct {
	Sentence string `json:"sentence"`
}

type apiPronunciation struct {
	Transcription *string `json:"transcription"`
}

// reviewCardData is the data payload of the ReviewCard mutation.
type reviewCardData struct {
	ReviewCard *struct {
		Card       apiCard `json:"card"`
		ScoreDelta int     `json:"scoreDelta"`
		Milestone  *string `json:"milestone"`
	} `json:"reviewCard"`
}
