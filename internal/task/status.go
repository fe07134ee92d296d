package task

// Status is one of the three fixed task buckets. The string values are the
// persisted wire form.
type Status string

const (
	StatusToDo       Status = "to-do"
	StatusInProgress Status = "in-progress"
	StatusDone       Status = "done"
)

// AllStatuses lists the buckets in the order the UI cycles through them.
var AllStatuses = []Status{StatusToDo, StatusInProgress, StatusDone}

func (s Status) Valid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// Label is the human-readable form shown in the UI.
func (s Status) Label() string {
	switch s {
	case StatusDone:
		return "Done"
	case StatusInProgress:
		return "In Progress"
	case StatusToDo:
		return "To Do"
	}
	return string(s)
}

// Next returns the bucket after s in AllStatuses order, wrapping around.
func (s Status) Next() Status {
	for i, st := range AllStatuses {
		if st == s {
			return AllStatuses[(i+1)%len(AllStatuses)]
		}
	}
	return StatusToDo
}

// Prev returns the bucket before s in AllStatuses order, wrapping around.
func (s Status) Prev() Status {
	for i, st := range AllStatuses {
		if st == s {
			return AllStatuses[(i+len(AllStatuses)-1)%len(AllStatuses)]
		}
	}
	return StatusToDo
}
