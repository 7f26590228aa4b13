package trades

import "github.com/trogers1052/trade-transparency/internal/models"

// Status is the user-facing classification of a trade
type Status string

const (
	StatusActive       Status = "ACTIVE"
	StatusWaiting      Status = "WAITING"
	StatusExpired      Status = "EXPIRED"
	StatusClosedProfit Status = "CLOSED_PROFIT"
	StatusClosedLoss   Status = "CLOSED_LOSS"
)

// Classify maps a trade to exactly one display status. A closed trade with a
// result of exactly 0 is a loss.
func Classify(t models.Trade) Status {
	switch t.ExecutionStatus {
	case models.ExecutionExpired:
		return StatusExpired
	case models.ExecutionActive:
		if t.HasFill() {
			return StatusActive
		}
		return StatusWaiting
	}
	if t.ResultPercent > 0 {
		return StatusClosedProfit
	}
	return StatusClosedLoss
}

// MessageID returns the translation key of the status label
func (s Status) MessageID() string {
	switch s {
	case StatusActive:
		return "status.active"
	case StatusWaiting:
		return "status.waiting"
	case StatusExpired:
		return "status.expired"
	case StatusClosedProfit:
		return "status.closedProfit"
	default:
		return "status.closedLoss"
	}
}
