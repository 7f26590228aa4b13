package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/trogers1052/trade-transparency/internal/dashboard"
	"github.com/trogers1052/trade-transparency/internal/models"
)

const traderColumns = `
		id, name, telegram_channel, telegram_link, description,
		tracking_start_date, total_pnl_percent, total_pnl_usdt,
		total_trades, win_rate, active_trades, avatar_url`

// Traders returns all traders ordered by display position
func (db *DB) Traders(ctx context.Context) ([]models.Trader, error) {
	query := `SELECT` + traderColumns + `
		FROM traders
		ORDER BY position, id
	`

	rows, err := db.conn.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query traders: %w", err)
	}
	defer rows.Close()

	var traders []models.Trader
	for rows.Next() {
		t, err := scanTrader(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trader: %w", err)
		}
		traders = append(traders, *t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating traders: %w", err)
	}

	return traders, nil
}

// Trader retrieves a trader by ID
func (db *DB) Trader(ctx context.Context, id string) (*models.Trader, error) {
	query := `SELECT` + traderColumns + `
		FROM traders
		WHERE id = $1
	`

	t, err := scanTrader(db.conn.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("trader %s: %w", id, dashboard.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trader %s: %w", id, err)
	}

	return t, nil
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanTrader(row scanner) (*models.Trader, error) {
	var (
		t           models.Trader
		description sql.NullString
		avatarURL   sql.NullString
		trackedFrom time.Time
	)

	err := row.Scan(
		&t.ID, &t.Name, &t.TelegramChannel, &t.TelegramLink, &description,
		&trackedFrom, &t.TotalPnlPercent, &t.TotalPnlUsdt,
		&t.TotalTrades, &t.WinRate, &t.ActiveTrades, &avatarURL,
	)
	if err != nil {
		return nil, err
	}

	t.Description = description.String
	t.AvatarURL = avatarURL.String
	t.TrackingStartDate = trackedFrom.Format(dashboard.TrackingDateLayout)
	return &t, nil
}
