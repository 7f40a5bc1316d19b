package quiz

// Mode is the screen the quiz is currently on. Exactly one is active.
type Mode int

const (
	ModeInProgress Mode = iota // Serving questions
	ModeCompleted              // Showing the final score
	ModeReviewing              // Listing missed questions
)

func (m Mode) String() string {
	switch m {
	case ModeInProgress:
		return "in-progress"
	case ModeCompleted:
		return "completed"
	case ModeReviewing:
		return "reviewing"
	default:
		return "unknown"
	}
}

// Miss records a question answered incorrectly.
type Miss[T any] struct {
	Item       T
	UserAnswer string
}

// State is a point-in-time copy of an engine's state, handed to the
// presentation layer on every render.
type State[T any] struct {
	// Mode is the active screen.
	Mode Mode

	// Index is the position of the current question, 0 <= Index < Total.
	Index int

	// Total is the number of questions in the run.
	Total int

	// Current is the item being asked.
	Current T

	// Answer is the correct answer for Current.
	Answer string

	// Correct and Incorrect count answered questions.
	Correct   int
	Incorrect int

	// Answered is true once the current question has been answered.
	Answered bool

	// Selected is the user's choice for the current question ("" until answered).
	Selected string

	// Options are the choices presented for the current question.
	Options []string

	// Missed lists incorrect answers in the order they were given.
	Missed []Miss[T]
}

// IsCorrect reports whether the current question was answered correctly.
func (s State[T]) IsCorrect() bool {
	return s.Answered && s.Selected == s.Answer
}

// Attempted returns the number of questions answered so far.
func (s State[T]) Attempted() int {
	return s.Correct + s.Incorrect
}

// Accuracy returns Correct / Attempted, or 0 before any answer.
func (s State[T]) Accuracy() float64 {
	if s.Attempted() == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Attempted())
}
