package service

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/dates"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/ledger"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/models"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/portfolio"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/schedule"
)

// CreditView decorates a stored credit with its derived status and the
// owning client's name.
type CreditView struct {
	models.Credit
	Status     ledger.Status `json:"status"`
	ClientName string        `json:"client_name,omitempty"`
}

// CreditList is the computed view of the credits page
type CreditList struct {
	Credits        []CreditView `json:"credits"`
	TotalCredits   int          `json:"total_credits"`
	ActiveCredits  int          `json:"active_credits"`
	OverdueCredits int          `json:"overdue_credits"`
}

// CreditDetail is the computed view of a single credit: the expected due
// dates alongside the payments actually posted. Payments are matched to
// schedule slots by date equality, so both sides use ISO date strings.
type CreditDetail struct {
	Credit        CreditView       `json:"credit"`
	Client        *models.Client   `json:"client"`
	ScheduleDates []string         `json:"schedule_dates"`
	Payments      []models.Payment `json:"payments"`
}

// CreateCredit validates and persists a new credit. The interest amount
// and totals are fixed here and never recomputed.
func (s *Service) CreateCredit(clientID int64, principalRaw, rateRaw, installmentsRaw, startRaw, endRaw string) (*models.Credit, error) {
	principal, ok := parsePositive(principalRaw)
	if !ok {
		return nil, invalid("principal", "must be a positive amount")
	}
	rate, ok := parsePositive(rateRaw)
	if !ok {
		return nil, invalid("interest_rate", "must be a positive percentage")
	}
	installments, err := strconv.Atoi(strings.TrimSpace(installmentsRaw))
	if err != nil || installments <= 0 {
		return nil, invalid("installments", "must be a positive integer")
	}
	start, ok := dates.Normalize(startRaw)
	if !ok {
		return nil, invalid("start_date", "must be YYYY-MM-DD or DD/MM/YYYY")
	}
	end, ok := dates.Normalize(endRaw)
	if !ok {
		return nil, invalid("end_date", "must be YYYY-MM-DD or DD/MM/YYYY")
	}

	if _, err := s.repo.FindClientByID(clientID); err != nil {
		return nil, err
	}

	terms := ledger.ComputeTerms(principal, rate)
	credit := &models.Credit{
		ClientID:      clientID,
		Principal:     terms.Principal.String(),
		InterestRate:  rate.String(),
		Total:         terms.Total.String(),
		OriginalTotal: terms.Total.String(),
		Installments:  strconv.Itoa(installments),
		StartDate:     dates.Format(start),
		EndDate:       dates.Format(end),
	}
	if err := s.repo.CreateCredit(credit); err != nil {
		return nil, err
	}

	s.log.Infof("Credit %d created for client %d: total %s over %d installments",
		credit.ID, clientID, credit.Total, installments)
	return credit, nil
}

// ListCredits returns every credit with its derived status plus the
// active/overdue headcounts shown on the credits page.
func (s *Service) ListCredits() (*CreditList, error) {
	credits, err := s.repo.ListCredits()
	if err != nil {
		return nil, err
	}
	clients, err := s.repo.ListClients()
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(clients))
	for i := range clients {
		names[clients[i].ID] = clients[i].FullName()
	}

	today := s.now()
	views := make([]CreditView, 0, len(credits))
	for _, c := range credits {
		views = append(views, CreditView{
			Credit:     c,
			Status:     s.statusOf(c),
			ClientName: names[c.ClientID],
		})
	}

	agg := portfolio.Aggregate(credits, nil, today, 0)
	return &CreditList{
		Credits:        views,
		TotalCredits:   agg.TotalCredits,
		ActiveCredits:  agg.ActiveCredits,
		OverdueCredits: agg.OverdueCredits,
	}, nil
}

// CreditDetail returns a single credit with its schedule and payments
func (s *Service) CreditDetail(creditID int64) (*CreditDetail, error) {
	credit, err := s.repo.FindCreditByID(creditID)
	if err != nil {
		return nil, err
	}
	client, err := s.repo.FindClientByID(credit.ClientID)
	if err != nil {
		return nil, err
	}
	payments, err := s.repo.ListPaymentsByCredit(creditID)
	if err != nil {
		return nil, err
	}

	var scheduleDates []string
	if start, ok := dates.Normalize(credit.StartDate); ok {
		if n, err := strconv.Atoi(strings.TrimSpace(credit.Installments)); err == nil {
			for _, due := range schedule.Generate(start, n) {
				scheduleDates = append(scheduleDates, dates.Format(due))
			}
		}
	}

	return &CreditDetail{
		Credit:        CreditView{Credit: *credit, Status: s.statusOf(*credit), ClientName: client.FullName()},
		Client:        client,
		ScheduleDates: scheduleDates,
		Payments:      payments,
	}, nil
}

// DeleteCredit removes a credit and its payments
func (s *Service) DeleteCredit(id int64) error {
	if err := s.repo.DeleteCredit(id); err != nil {
		return err
	}
	s.log.Infof("Credit %d deleted", id)
	return nil
}

// statusOf derives a credit's status from its running total and end date.
// An unreadable total renders as zero here, matching how the legacy book
// displayed such rows.
func (s *Service) statusOf(c models.Credit) ledger.Status {
	total, _ := parseAmount(c.Total)
	end, endKnown := dates.Normalize(c.EndDate)
	return ledger.DeriveStatus(total, end, endKnown, s.now())
}

func parsePositive(raw string) (decimal.Decimal, bool) {
	d, ok := parseAmount(raw)
	return d, ok && d.IsPositive()
}
