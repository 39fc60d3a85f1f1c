package api

import (
	_ "embed"
	"fmt"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

//go:embed schema.graphql
var schemaSDL string

const studyQueueQuery = `query StudyQueue($limit: Int!, $offset: Int!, $learningLanguage: String!, $nativeLanguage: String!) {
  studyQueue(limit: $limit, offset: $offset, learningLanguage: $learningLanguage, nativeLanguage: $nativeLanguage) {
    id
    text
    card { id state due }
    senses { definition examples { sentence } }
    pronunciations { transcription }
  }
}`

const reviewCardMutation = `mutation ReviewCard($input: ReviewCardInput!) {
  reviewCard(input: $input) {
    card { id state due }
    scoreDelta
    milestone
  }
}`

// operation is a validated GraphQL document ready to send.
type operation struct {
	name  string
	query string
}

type operations struct {
	studyQueue operation
	reviewCard operation
}

// loadOperations validates every operation against the bundled schema so a
// broken query fails when the client is built, not on the first request.
func loadOperations() (operations, error) {
	schema, err := gqlparser.LoadSchema(&ast.Source{Name: "schema.graphql", Input: schemaSDL})
	if err != nil {
		return operations{}, fmt.Errorf("load schema: %w", err)
	}

	var ops operations
	for _, def := range []struct {
		dst   *operation
		query string
	}{
		{&ops.studyQueue, studyQueueQuery},
		{&ops.reviewCard, reviewCardMutation},
	} {
		op, err := parseOperation(schema, def.query)
		if err != nil {
			return operations{}, err
		}
		*def.dst = op
	}
	return ops, nil
}

func parseOperation(schema *ast.Schema, query string) (operation, error) {
	doc, errs := gqlparser.LoadQuery(schema, query)
	if errs != nil {
		return operation{}, fmt.Errorf("invalid operation: %w", errs)
	}
	if len(doc.Operations) != 1 || doc.Operations[0].Name == "" {
		return operation{}, fmt.Errorf("document must hold exactly one named operation")
	}
	return operation{name: doc.Operations[0].Name, query: query}, nil
}
