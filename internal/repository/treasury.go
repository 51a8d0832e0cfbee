package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/models"
)

// LatestTreasuryFigures retrieves the most recent treasury row, or nil
// when none has ever been captured.
func (r *Repository) LatestTreasuryFigures() (*models.TreasuryFigures, error) {
	figures := &models.TreasuryFigures{}
	query := `
		SELECT id, cash_on_hand, partner_capital, updated_at
		FROM financiera.treasury_figures
		ORDER BY id DESC
		LIMIT 1`
	err := r.db.QueryRow(query).
		Scan(&figures.ID, &figures.CashOnHand, &figures.PartnerCapital, &figures.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find treasury figures: %w", err)
	}
	return figures, nil
}

// SaveTreasuryFigures overwrites the current treasury row, creating it on
// first use. Both amounts are replaced wholesale; no history is kept.
func (r *Repository) SaveTreasuryFigures(cashOnHand, partnerCapital string) (*models.TreasuryFigures, error) {
	current, err := r.LatestTreasuryFigures()
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	figures := &models.TreasuryFigures{
		CashOnHand:     cashOnHand,
		PartnerCapital: partnerCapital,
		UpdatedAt:      now,
	}
	if current == nil {
		query := `
			INSERT INTO financiera.treasury_figures (cash_on_hand, partner_capital, updated_at)
			VALUES ($1, $2, $3)
			RETURNING id`
		if err := r.db.QueryRow(query, cashOnHand, partnerCapital, now).Scan(&figures.ID); err != nil {
			return nil, fmt.Errorf("failed to create treasury figures: %w", err)
		}
		return figures, nil
	}

	query := `
		UPDATE financiera.treasury_figures
		SET cash_on_hand = $1, partner_capital = $2, updated_at = $3
		WHERE id = $4`
	if _, err := r.db.Exec(query, cashOnHand, partnerCapital, now, current.ID); err != nil {
		return nil, fmt.Errorf("failed to update treasury figures: %w", err)
	}
	figures.ID = current.ID
	return figures, nil
}
