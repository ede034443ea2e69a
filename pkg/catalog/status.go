package catalog

import "github.com/go-errors/errors"

// Status is the translation state of a message
type Status int

const (
	// Finished translations have been reviewed
	Finished Status = iota
	// Unfinished translations are used but flagged for review
	Unfinished
	// Obsolete entries are kept for history and never looked up
	Obsolete
	// Vanished is how Qt 5 lupdate marks obsolete entries
	Vanished
)

// String returns the value of the translation type attribute, which is empty
// for finished messages
func (s Status) String() string {
	switch s {
	case Unfinished:
		return "unfinished"
	case Obsolete:
		return "obsolete"
	case Vanished:
		return "vanished"
	}
	return ""
}

// Name is like String but gives finished messages a name too
func (s Status) Name() string {
	if s == Finished {
		return "finished"
	}
	return s.String()
}

// IsObsolete is true for both obsolete and vanished messages
func (s Status) IsObsolete() bool {
	return s == Obsolete || s == Vanished
}

// ParseStatus maps a translation type attribute to a Status
func ParseStatus(attr string) (Status, error) {
	switch attr {
	case "", "finished":
		return Finished, nil
	case "unfinished":
		return Unfinished, nil
	case "obsolete":
		return Obsolete, nil
	case "vanished":
		return Vanished, nil
	}
	return Finished, errors.Errorf("unknown translation type %q", attr)
}
