package models

// Trader is a tracked signal channel and its aggregate performance snapshot
type Trader struct {
	ID                string  `json:"id" yaml:"id"`
	Name              string  `json:"name" yaml:"name"`
	TelegramChannel   string  `json:"telegramChannel" yaml:"telegramChannel"`
	TelegramLink      string  `json:"telegramLink" yaml:"telegramLink"`
	Description       string  `json:"description,omitempty" yaml:"description"`
	TrackingStartDate string  `json:"trackingStartDate" yaml:"trackingStartDate"`
	TotalPnlPercent   float64 `json:"totalPnlPercent" yaml:"totalPnlPercent"`
	TotalPnlUsdt      float64 `json:"totalPnlUsdt" yaml:"totalPnlUsdt"`
	TotalTrades       int     `json:"totalTrades" yaml:"totalTrades"`
	WinRate           float64 `json:"winRate" yaml:"winRate"`
	ActiveTrades      int     `json:"activeTrades" yaml:"activeTrades"`
	AvatarURL         string  `json:"avatarUrl,omitempty" yaml:"avatarUrl"`
}

// IsProfitable reports whether the trader's aggregate P&L is non-negative
func (t Trader) IsProfitable() bool {
	return t.TotalPnlPercent >= 0
}

// Initial returns the first letter of the trader's name, used by avatar placeholders
func (t Trader) Initial() string {
	for _, r := range t.Name {
		return string(r)
	}
	return "?"
}
