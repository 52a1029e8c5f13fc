package projection

import (
	"errors"
	"fmt"

	"github.com/captainwycliffe/omnimed/models"
)

// ErrInvalidState marks a status value outside the closed enum. That is a
// data-integrity problem upstream, so it is surfaced per record instead of
// being defaulted to some badge.
var ErrInvalidState = errors.New("invalid appointment status")

// Badge is the visual rendering of one appointment status.
type Badge struct {
	Label string `json:"label"`
	Icon  string `json:"icon"`
	Style string `json:"style"`
}

var badges = map[string]Badge{
	models.StatusPending:   {Label: "pending", Icon: "/assets/icons/pending.svg", Style: "bg-blue-600"},
	models.StatusScheduled: {Label: "scheduled", Icon: "/assets/icons/check.svg", Style: "bg-green-600"},
	models.StatusCancelled: {Label: "cancelled", Icon: "/assets/icons/cancelled.svg", Style: "bg-red-600"},
}

// BadgeFor maps a status to its badge. Total over the three valid statuses,
// ErrInvalidState for everything else.
func BadgeFor(status string) (Badge, error) {
	badge, ok := badges[status]
	if !ok {
		return Badge{}, fmt.Errorf("%w: %q", ErrInvalidState, status)
	}
	return badge, nil
}

// CanTransition reports whether an appointment may move from one status to
// another. Scheduling confirms a pending request, cancelling is allowed from
// either live state, and cancelled is terminal.
func CanTransition(from, to string) bool {
	switch {
	case from == models.StatusPending && to == models.StatusScheduled:
		return true
	case from == models.StatusPending && to == models.StatusCancelled:
		return true
	case from == models.StatusScheduled && to == models.StatusCancelled:
		return true
	default:
		return false
	}
}
