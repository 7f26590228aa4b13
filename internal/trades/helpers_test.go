package trades

import "github.com/trogers1052/trade-transparency/internal/models"

func ptr(v float64) *float64 { return &v }

// tradeAt builds a trade published at the given DD.MM.YYYY HH:mm:ss text
func tradeAt(id, published string) models.Trade {
	return models.Trade{
		ID:              id,
		TraderID:        "trader-1",
		ExecutionStatus: models.ExecutionClosed,
		ParsedSignal: models.ParsedSignal{
			Source: models.SignalSource{PublishedAtText: published},
			Signal: models.Signal{
				SymbolRaw: "ETHUSDT",
				Side:      models.SideShort,
				LeverageX: 20,
				Entry:     models.SignalEntry{Type: models.EntryTypeRange, Range: &models.EntryRange{Low: 95, High: 105}},
				TakeProfits: []models.TakeProfit{
					{Price: 90},
					{Price: 80},
				},
				StopLoss: models.StopLoss{Price: 112},
			},
		},
	}
}
