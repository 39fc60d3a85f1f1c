package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/myenglish-client/internal/domain"
	"github.com/heartmarshall/myenglish-client/internal/queue"
	"github.com/heartmarshall/myenglish-client/internal/service/review"
)

type reviewSession interface {
	Current(ctx context.Context) (*domain.Question, error)
	Answer(ctx context.Context, grade domain.ReviewGrade, took time.Duration) (*domain.ReviewResult, error)
	Refresh(ctx context.Context) error
	Stats() review.Stats
}

func newReviewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "review",
		Short: "Start an interactive review session",
		Long: `Start an interactive review session.
Each word is shown first; press Enter to reveal its definitions, then grade
your recall: 1 again, 2 hard, 3 good, 4 easy. Type r to reload the queue
from the server and q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			updates := a.Queue.Subscribe()
			defer a.Queue.Unsubscribe(updates)

			return runReview(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), a.Session, updates)
		},
	}
}

// runReview drives the review loop until the queue is exhausted, the learner
// quits or input ends. Failed background refills seen on updates are
// reported before the next question; updates may be nil.
func runReview(ctx context.Context, in io.Reader, out io.Writer, s reviewSession, updates <-chan queue.Snapshot) error {
	lines := bufio.NewScanner(in)
	read := func() (string, bool) {
		if !lines.Scan() {
			return "", false
		}
		return strings.ToLower(strings.TrimSpace(lines.Text())), true
	}

	defer func() {
		st := s.Stats()
		fmt.Fprintf(out, "\nReviewed %d word(s)", st.Answered)
		if st.Failed > 0 {
			fmt.Fprintf(out, ", %d answer(s) could not be saved", st.Failed)
		}
		fmt.Fprintln(out, ".")
	}()

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		for _, err := range failedRefills(updates) {
			fmt.Fprintf(out, "Background refill failed: %v\n", err)
		}

		q, err := s.Current(ctx)
		if err != nil {
			failedRefills(updates)
			fmt.Fprintf(out, "Could not load reviews: %v\n", err)
			fmt.Fprint(out, "Press Enter to retry or q to quit: ")
			line, ok := read()
			if !ok || line == "q" {
				return nil
			}
			continue
		}
		if q == nil {
			fmt.Fprintln(out, "All done, nothing left to review.")
			return nil
		}

		renderPrompt(out, q)
		fmt.Fprint(out, "Press Enter to reveal: ")
		shown := time.Now()
		line, ok := read()
		if !ok || line == "q" {
			return nil
		}
		if line == "r" {
			refresh(ctx, out, s, updates)
			continue
		}

		renderAnswer(out, q)
		if !gradeLoop(ctx, out, read, s, updates, shown) {
			return nil
		}
	}
}

// gradeLoop reads grades until one is saved or the learner asks for a
// refresh. It returns false when the learner quits.
func gradeLoop(ctx context.Context, out io.Writer, read func() (string, bool), s reviewSession, updates <-chan queue.Snapshot, shown time.Time) bool {
	for {
		fmt.Fprint(out, "Grade [1 again, 2 hard, 3 good, 4 easy, r refresh, q quit]: ")
		line, ok := read()
		if !ok || line == "q" {
			return false
		}
		if line == "r" {
			refresh(ctx, out, s, updates)
			return true
		}

		grade, ok := domain.GradeFromKey(line)
		if !ok {
			fmt.Fprintln(out, "Please type 1, 2, 3 or 4.")
			continue
		}

		res, err := s.Answer(ctx, grade, time.Since(shown))
		if err != nil {
			fmt.Fprintf(out, "Not saved: %v\nThe word stays in the queue, grade it again to retry.\n", err)
			continue
		}
		renderResult(out, res)
		return true
	}
}

func refresh(ctx context.Context, out io.Writer, s reviewSession, updates <-chan queue.Snapshot) {
	if err := s.Refresh(ctx); err != nil {
		failedRefills(updates)
		fmt.Fprintf(out, "Refresh failed: %v\n", err)
		return
	}
	fmt.Fprintln(out, "Queue reloaded.")
}

// failedRefills drains the snapshots queued on updates without blocking and
// returns the fetch errors they carry.
func failedRefills(updates <-chan queue.Snapshot) []error {
	var errs []error
	for {
		select {
		case snap, ok := <-updates:
			if !ok {
				return errs
			}
			if snap.Err != nil {
				errs = append(errs, snap.Err)
			}
		default:
			return errs
		}
	}
}
