package trades

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/trogers1052/trade-transparency/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		trade models.Trade
		want  Status
	}{
		{
			name:  "expired ignores everything else",
			trade: models.Trade{ExecutionStatus: models.ExecutionExpired, ResultPercent: 50, ActualEntryPrice: ptr(10)},
			want:  StatusExpired,
		},
		{
			name:  "active with fill",
			trade: models.Trade{ExecutionStatus: models.ExecutionActive, ActualEntryPrice: ptr(100)},
			want:  StatusActive,
		},
		{
			name:  "active with zero fill is still filled",
			trade: models.Trade{ExecutionStatus: models.ExecutionActive, ActualEntryPrice: ptr(0)},
			want:  StatusActive,
		},
		{
			name:  "active without fill",
			trade: models.Trade{ExecutionStatus: models.ExecutionActive, ResultPercent: 12},
			want:  StatusWaiting,
		},
		{
			name:  "closed in profit",
			trade: models.Trade{ExecutionStatus: models.ExecutionClosed, ResultPercent: 20},
			want:  StatusClosedProfit,
		},
		{
			name:  "closed at loss",
			trade: models.Trade{ExecutionStatus: models.ExecutionClosed, ResultPercent: -4.2},
			want:  StatusClosedLoss,
		},
		{
			name:  "closed flat resolves to loss",
			trade: models.Trade{ExecutionStatus: models.ExecutionClosed, ResultPercent: 0},
			want:  StatusClosedLoss,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.trade))
		})
	}
}

func TestStatus_MessageID(t *testing.T) {
	assert.Equal(t, "status.active", StatusActive.MessageID())
	assert.Equal(t, "status.waiting", StatusWaiting.MessageID())
	assert.Equal(t, "status.expired", StatusExpired.MessageID())
	assert.Equal(t, "status.closedProfit", StatusClosedProfit.MessageID())
	assert.Equal(t, "status.closedLoss", StatusClosedLoss.MessageID())
}
