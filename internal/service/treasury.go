package service

import (
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/models"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/portfolio"
)

// PortfolioSummary computes the fleet-wide figures: status counts,
// outstanding balance, combined treasury total and the monthly
// origination histogram. year zero selects the default year.
func (s *Service) PortfolioSummary(year int) (*portfolio.Summary, error) {
	credits, err := s.repo.ListCredits()
	if err != nil {
		return nil, err
	}
	treasury, err := s.repo.LatestTreasuryFigures()
	if err != nil {
		return nil, err
	}
	summary := portfolio.Aggregate(credits, treasury, s.now(), year)
	return &summary, nil
}

// UpdateTreasuryFigures replaces both treasury amounts wholesale
func (s *Service) UpdateTreasuryFigures(cashRaw, partnersRaw string) (*models.TreasuryFigures, error) {
	cash, ok := parseAmount(cashRaw)
	if !ok {
		return nil, invalid("cash_on_hand", "must be a number")
	}
	partners, ok := parseAmount(partnersRaw)
	if !ok {
		return nil, invalid("partner_capital", "must be a number")
	}

	figures, err := s.repo.SaveTreasuryFigures(cash.String(), partners.String())
	if err != nil {
		return nil, err
	}

	s.log.Infof("Treasury figures updated: cash %s, partners %s", figures.CashOnHand, figures.PartnerCapital)
	return figures, nil
}
