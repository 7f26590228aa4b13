package models

// ExecutionStatus is the lifecycle bucket of a trade, independent of profitability
type ExecutionStatus string

const (
	ExecutionActive  ExecutionStatus = "active"
	ExecutionClosed  ExecutionStatus = "closed"
	ExecutionExpired ExecutionStatus = "expired"
)

// Side is the direction of a signal
type Side string

const (
	SideLong  Side = "LONG"
	SideShort Side = "SHORT"
)

// Market is the kind of instrument a signal targets
type Market string

const (
	MarketUSDTPerp Market = "USDT_PERP"
	MarketCoinPerp Market = "COIN_PERP"
	MarketSpot     Market = "SPOT"
)

// EntryType describes how the entry of a signal is specified
type EntryType string

const (
	EntryTypeMarket EntryType = "MARKET"
	EntryTypeLimit  EntryType = "LIMIT"
	EntryTypeRange  EntryType = "RANGE"
)

// SignalStatus is the status carried by the parsed signal itself
type SignalStatus string

const (
	SignalActive    SignalStatus = "ACTIVE"
	SignalClosed    SignalStatus = "CLOSED"
	SignalExpired   SignalStatus = "EXPIRED"
	SignalCancelled SignalStatus = "CANCELLED"
)

// SignalSource identifies where a signal was published
type SignalSource struct {
	ChannelName string `json:"channelName" yaml:"channelName"`
	MessageLink string `json:"messageLink" yaml:"messageLink"`
	// PublishedAtText is formatted as DD.MM.YYYY HH:mm:ss
	PublishedAtText string `json:"publishedAtText" yaml:"publishedAtText"`
}

// EntryRange is a low/high entry zone
type EntryRange struct {
	Low  float64 `json:"low" yaml:"low"`
	High float64 `json:"high" yaml:"high"`
}

// SignalEntry holds either a point price, a range, or neither for a market order
type SignalEntry struct {
	Type  EntryType   `json:"type" yaml:"type"`
	Price *float64    `json:"price" yaml:"price"`
	Range *EntryRange `json:"range" yaml:"range"`
}

// TakeProfit is a single target level
type TakeProfit struct {
	Price   float64  `json:"price" yaml:"price"`
	Portion *float64 `json:"portion" yaml:"portion"`
}

// StopLoss is the protective exit of a signal
type StopLoss struct {
	Price float64 `json:"price" yaml:"price"`
	Hard  bool    `json:"hard" yaml:"hard"`
}

// SignalMeta carries parser metadata
type SignalMeta struct {
	Confidence float64 `json:"confidence" yaml:"confidence"`
	Notes      string  `json:"notes" yaml:"notes"`
}

// Signal is a structured trade instruction as parsed from a channel post
type Signal struct {
	SymbolRaw   string       `json:"symbolRaw" yaml:"symbolRaw"`
	Market      Market       `json:"market" yaml:"market"`
	Side        Side         `json:"side" yaml:"side"`
	LeverageX   float64      `json:"leverageX" yaml:"leverageX"`
	Entry       SignalEntry  `json:"entry" yaml:"entry"`
	TakeProfits []TakeProfit `json:"takeProfits" yaml:"takeProfits"`
	StopLoss    StopLoss     `json:"stopLoss" yaml:"stopLoss"`
	Status      SignalStatus `json:"status" yaml:"status"`
	Author      *string      `json:"author" yaml:"author"`
	UpdateOfID  *string      `json:"updateOfId" yaml:"updateOfId"`
	ExternalID  *string      `json:"externalId" yaml:"externalId"`
}

// ParsedSignal is the full parser output for one channel post
type ParsedSignal struct {
	Source  SignalSource `json:"source" yaml:"source"`
	Signal  Signal       `json:"signal" yaml:"signal"`
	Meta    SignalMeta   `json:"meta" yaml:"meta"`
	Version string       `json:"version" yaml:"version"`
}

// OriginalPost is the untouched channel post a signal was parsed from
type OriginalPost struct {
	ScreenshotURL string `json:"screenshotUrl" yaml:"screenshotUrl"`
	Text          string `json:"text" yaml:"text"`
}

// TimelineEvent is a recorded execution event. Recorded events are carried
// through the API but the detail view derives its own timeline.
type TimelineEvent struct {
	ID             string   `json:"id" yaml:"id"`
	Type           string   `json:"type" yaml:"type"`
	Timestamp      string   `json:"timestamp" yaml:"timestamp"`
	Price          float64  `json:"price" yaml:"price"`
	PositionChange string   `json:"positionChange,omitempty" yaml:"positionChange"`
	PnlChange      *float64 `json:"pnlChange,omitempty" yaml:"pnlChange"`
	Description    string   `json:"description" yaml:"description"`
}

// Trade is a parsed signal together with its execution outcome
type Trade struct {
	ID               string          `json:"id" yaml:"id"`
	TraderID         string          `json:"traderId" yaml:"traderId"`
	TradeNumber      int             `json:"tradeNumber" yaml:"tradeNumber"`
	ParsedSignal     ParsedSignal    `json:"parsedSignal" yaml:"parsedSignal"`
	ResultPercent    float64         `json:"resultPercent" yaml:"resultPercent"`
	PnlUsdt          float64         `json:"pnlUsdt" yaml:"pnlUsdt"`
	ExecutionStatus  ExecutionStatus `json:"executionStatus" yaml:"executionStatus"`
	ActualEntryPrice *float64        `json:"actualEntryPrice,omitempty" yaml:"actualEntryPrice"`
	ExitPrice        *float64        `json:"exitPrice,omitempty" yaml:"exitPrice"`
	EntryAmountUsdt  *float64        `json:"entryAmountUsdt,omitempty" yaml:"entryAmountUsdt"`
	AssetVolume      *float64        `json:"assetVolume,omitempty" yaml:"assetVolume"`
	Timeline         []TimelineEvent `json:"timeline" yaml:"timeline"`
	OriginalPost     OriginalPost    `json:"originalPost" yaml:"originalPost"`
}
