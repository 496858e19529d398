package wizard

import "fmt"

// TransitionError is returned for a transition that is not legal from the
// current state, such as back() from the first step.
type TransitionError struct {
	From   Step
	Op     string
	Reason string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("wizard: cannot %s from step %d (%s): %s", e.Op, e.From, e.From, e.Reason)
}

// IndexError is returned when removing an item by a position that does not
// exist.
type IndexError struct {
	Collection string
	Index      int
	Len        int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("wizard: %s index %d out of range [0,%d)", e.Collection, e.Index, e.Len)
}
