package cli

import (
	"fmt"
	"io"
	"time"

	"github.com/heartmarshall/myenglish-client/internal/domain"
)

const rule = "----------------------------------------"

func renderPrompt(out io.Writer, q *domain.Question) {
	fmt.Fprintf(out, "\n%s\n%s", rule, q.Prompt)
	if q.Payload.Transcription != nil {
		fmt.Fprintf(out, "  %s", *q.Payload.Transcription)
	}
	fmt.Fprintf(out, "  [%s]\n%s\n", q.Payload.State, rule)
}

func renderAnswer(out io.Writer, q *domain.Question) {
	if len(q.Payload.Definitions) == 0 {
		fmt.Fprintln(out, "(no definitions)")
	}
	for i, d := range q.Payload.Definitions {
		fmt.Fprintf(out, "%d. %s\n", i+1, d)
	}
	for _, ex := range q.Payload.Examples {
		fmt.Fprintf(out, "   e.g. %s\n", ex)
	}
}

func renderResult(out io.Writer, res *domain.ReviewResult) {
	fmt.Fprint(out, "Saved.")
	if !res.Due.IsZero() {
		fmt.Fprintf(out, " Next review %s.", res.Due.Local().Format(time.DateTime))
	}
	if res.ScoreDelta != 0 {
		fmt.Fprintf(out, " %+d points.", res.ScoreDelta)
	}
	if res.Milestone != nil {
		fmt.Fprintf(out, " Milestone: %s!", *res.Milestone)
	}
	fmt.Fprintln(out)
}
