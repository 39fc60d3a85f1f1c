package domain

// CardState mirrors the backend's FSRS learning state of a card.
type CardState string

const (
	CardStateNew        CardState = "NEW"
	CardStateLearning   CardState = "LEARNING"
	CardStateReview     CardState = "REVIEW"
	CardStateRelearning CardState = "RELEARNING"
)

func (s CardState) String() string { return string(s) }

func (s CardState) IsValid() bool {
	switch s {
	case CardStateNew, CardStateLearning, CardStateReview, CardStateRelearning:
		return true
	}
	return false
}

// ReviewGrade represents the user's self-assessed recall quality.
type ReviewGrade string

const (
	ReviewGradeAgain ReviewGrade = "AGAIN"
	ReviewGradeHard  ReviewGrade = "HARD"
	ReviewGradeGood  ReviewGrade = "GOOD"
	ReviewGradeEasy  ReviewGrade = "EASY"
)

func (g ReviewGrade) String() string { return string(g) }

func (g ReviewGrade) IsValid() bool {
	switch g {
	case ReviewGradeAgain, ReviewGradeHard, ReviewGradeGood, ReviewGradeEasy:
		return true
	}
	return false
}

// GradeFromKey maps the 1-4 answer keys of the review screen to a grade.
func GradeFromKey(key string) (ReviewGrade, bool) {
	switch key {
	case "1":
		return ReviewGradeAgain, true
	case "2":
		return ReviewGradeHard, true
	case "3":
		return ReviewGradeGood, true
	case "4":
		return ReviewGradeEasy, true
	}
	return "", false
}

// FetchState is the refill state of the prefetch queue.
type FetchState string

const (
	FetchStateIdle     FetchState = "IDLE"
	FetchStateFetching FetchState = "FETCHING"
)

func (s FetchState) String() string { return string(s) }

func (s FetchState) IsValid() bool {
	return s == FetchStateIdle || s == FetchStateFetching
}
