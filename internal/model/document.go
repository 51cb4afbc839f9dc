package model

// Document is an editor document as seen by the companion switcher.
type Document struct {
	ID       string
	Name     string
	Location Path // empty for documents that were never saved
}

// HasLocation reports whether the document is backed by a file.
func (d Document) HasLocation() bool {
	return d.Location != ""
}

// Action describes an editor action contributed to the host's menus.
type Action struct {
	Name        string
	Label       string
	Accelerator string
	Tooltip     string
}

// SwitchOutcome reports what the companion switcher did.
type SwitchOutcome int

const (
	// OutcomeNone means nothing happened (no document, no companion).
	OutcomeNone SwitchOutcome = iota
	// OutcomeFocused means an already open view of the companion was focused.
	OutcomeFocused
	// OutcomeOpened means a new view was opened for the companion.
	OutcomeOpened
)

func (o SwitchOutcome) String() string {
	switch o {
	case OutcomeFocused:
		return "focused"
	case OutcomeOpened:
		return "opened"
	case OutcomeNone:
		return "none"
	}

	return "unknown"
}
