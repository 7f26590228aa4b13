package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/trogers1052/trade-transparency/internal/dashboard"
	"github.com/trogers1052/trade-transparency/internal/models"
)

const tradeColumns = `
		id, trader_id, trade_number, parsed_signal,
		result_percent, pnl_usdt, execution_status,
		actual_entry_price, exit_price, entry_amount_usdt, asset_volume,
		timeline, screenshot_url, original_text`

// TradesByTrader returns a trader's trades, newest first. An unknown trader
// is reported as not found rather than as an empty list.
func (db *DB) TradesByTrader(ctx context.Context, traderID string) ([]models.Trade, error) {
	var exists bool
	err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM traders WHERE id = $1)`, traderID,
	).Scan(&exists)
	if err != nil {
		return nil, fmt.Errorf("failed to check trader %s: %w", traderID, err)
	}
	if !exists {
		return nil, fmt.Errorf("trader %s: %w", traderID, dashboard.ErrNotFound)
	}

	query := `SELECT` + tradeColumns + `
		FROM trades
		WHERE trader_id = $1
		ORDER BY trade_number DESC
	`

	rows, err := db.conn.QueryContext(ctx, query, traderID)
	if err != nil {
		return nil, fmt.Errorf("failed to query trades for %s: %w", traderID, err)
	}
	defer rows.Close()

	trades := []models.Trade{}
	for rows.Next() {
		t, err := scanTrade(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trade: %w", err)
		}
		trades = append(trades, *t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trades: %w", err)
	}

	return trades, nil
}

// Trade retrieves a trade by ID
func (db *DB) Trade(ctx context.Context, id string) (*models.Trade, error) {
	query := `SELECT` + tradeColumns + `
		FROM trades
		WHERE id = $1
	`

	t, err := scanTrade(db.conn.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("trade %s: %w", id, dashboard.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trade %s: %w", id, err)
	}

	return t, nil
}

func scanTrade(row scanner) (*models.Trade, error) {
	var (
		t             models.Trade
		status        string
		parsedSignal  []byte
		timeline      []byte
		entryPrice    sql.NullFloat64
		exitPrice     sql.NullFloat64
		entryAmount   sql.NullFloat64
		assetVolume   sql.NullFloat64
		screenshotURL sql.NullString
		originalText  sql.NullString
	)

	err := row.Scan(
		&t.ID, &t.TraderID, &t.TradeNumber, &parsedSignal,
		&t.ResultPercent, &t.PnlUsdt, &status,
		&entryPrice, &exitPrice, &entryAmount, &assetVolume,
		&timeline, &screenshotURL, &originalText,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(parsedSignal, &t.ParsedSignal); err != nil {
		return nil, fmt.Errorf("failed to decode parsed signal of %s: %w", t.ID, err)
	}
	if len(timeline) > 0 {
		if err := json.Unmarshal(timeline, &t.Timeline); err != nil {
			return nil, fmt.Errorf("failed to decode timeline of %s: %w", t.ID, err)
		}
	}

	t.ExecutionStatus = models.ExecutionStatus(status)
	t.ActualEntryPrice = nullFloat(entryPrice)
	t.ExitPrice = nullFloat(exitPrice)
	t.EntryAmountUsdt = nullFloat(entryAmount)
	t.AssetVolume = nullFloat(assetVolume)
	t.OriginalPost = models.OriginalPost{
		ScreenshotURL: screenshotURL.String,
		Text:          originalText.String,
	}
	if err := t.CheckFinite(); err != nil {
		return nil, err
	}
	return &t, nil
}

func nullFloat(v sql.NullFloat64) *float64 {
	if !v.Valid {
		return nil
	}
	f := v.Float64
	return &f
}

var _ dashboard.Provider = (*DB)(nil)
