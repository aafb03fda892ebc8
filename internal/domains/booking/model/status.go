package model

import "strings"

// Status is the internal booking lifecycle state. The historical data mixed
// English and Indonesian labels for the same states; inputs are normalized
// to this single vocabulary and localized labels live in the presentation
// mapping only.
type Status string

const (
	StatusPending    Status = "pending"
	StatusScheduled  Status = "scheduled"
	StatusWaiting    Status = "waiting"
	StatusConfirmed  Status = "confirmed"
	StatusInProgress Status = "in_progress"
	StatusDone       Status = "done"
	StatusCancelled  Status = "cancelled"
)

// statusSynonyms maps the accreted legacy vocabulary onto the internal one.
var statusSynonyms = map[string]Status{
	"pending":           StatusPending,
	"dijadwalkan":       StatusScheduled,
	"scheduled":         StatusScheduled,
	"menunggu":          StatusWaiting,
	"waiting":           StatusWaiting,
	"dikonfirmasi":      StatusConfirmed,
	"confirmed":         StatusConfirmed,
	"sedang dikerjakan": StatusInProgress,
	"in_progress":       StatusInProgress,
	"selesai":           StatusDone,
	"completed":         StatusDone,
	"done":              StatusDone,
	"dibatalkan":        StatusCancelled,
	"cancelled":         StatusCancelled,
}

// statusLabels maps internal states to their display strings.
var statusLabels = map[Status]string{
	StatusPending:    "Menunggu",
	StatusScheduled:  "Dijadwalkan",
	StatusWaiting:    "Menunggu",
	StatusConfirmed:  "Dikonfirmasi",
	StatusInProgress: "Sedang Dikerjakan",
	StatusDone:       "Selesai",
	StatusCancelled:  "Dibatalkan",
}

var statusTransitions = map[Status][]Status{
	StatusPending:    {StatusScheduled, StatusWaiting, StatusConfirmed, StatusCancelled},
	StatusScheduled:  {StatusInProgress, StatusCancelled},
	StatusWaiting:    {StatusInProgress, StatusCancelled},
	StatusConfirmed:  {StatusInProgress, StatusCancelled},
	StatusInProgress: {StatusDone, StatusCancelled},
}

// ParseStatus normalizes any known status spelling to the internal value.
// The second return reports whether the input was recognized.
func ParseStatus(value string) (Status, bool) {
	status, ok := statusSynonyms[strings.ToLower(strings.TrimSpace(value))]

	return status, ok
}

// Label returns the display string for a status. Unmapped values render
// verbatim.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}

	return string(s)
}

// IsTerminal reports whether no further transition is allowed.
func (s Status) IsTerminal() bool {
	return s == StatusDone || s == StatusCancelled
}

// CanTransitionTo reports whether moving to the target state is legal.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range statusTransitions[s] {
		if next == target {
			return true
		}
	}

	return false
}

// Payable reports whether the booking can be paid; payment is offered only
// once the work is done.
func (s Status) Payable() bool {
	return s == StatusDone
}

func (s Status) String() string {
	return string(s)
}
