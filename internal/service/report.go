package service

import (
	"fmt"
	"sort"

	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/dates"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/ledger"
	"github.com/EnriqueVilledaGarcia/Financiera-App/internal/report"
)

// CreditsReport renders the portfolio as a PDF: overdue credits first,
// then those due within the upcoming window, then the rest.
func (s *Service) CreditsReport() ([]byte, error) {
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
	type ranked struct {
		row  report.Row
		rank int
	}
	rows := make([]ranked, 0, len(credits))
	for _, c := range credits {
		status := s.statusOf(c)
		label := string(status)
		rank := 2
		if end, ok := dates.Normalize(c.EndDate); ok {
			switch status {
			case ledger.StatusOverdue:
				label = fmt.Sprintf("Overdue (%dd)", -ledger.DaysBetween(today, end))
				rank = 0
			case ledger.StatusUpcoming:
				label = fmt.Sprintf("Due in %dd", ledger.DaysBetween(today, end))
				rank = 1
			}
		}

		original, _ := parseAmount(c.OriginalTotal)
		remaining, _ := parseAmount(c.Total)
		rows = append(rows, ranked{
			rank: rank,
			row: report.Row{
				Status:        label,
				ClientName:    names[c.ClientID],
				StartDate:     displayDate(c.StartDate),
				EndDate:       displayDate(c.EndDate),
				OriginalTotal: report.FormatMoney(original),
				Remaining:     report.FormatMoney(remaining),
			},
		})
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].rank < rows[j].rank })

	out := make([]report.Row, len(rows))
	for i, r := range rows {
		out[i] = r.row
	}
	return report.Render(out, today)
}

// OverdueCredits returns the credits currently overdue, for the reminder
// job.
func (s *Service) OverdueCredits() ([]CreditView, error) {
	list, err := s.ListCredits()
	if err != nil {
		return nil, err
	}
	var overdue []CreditView
	for _, v := range list.Credits {
		if v.Status == ledger.StatusOverdue {
			overdue = append(overdue, v)
		}
	}
	return overdue, nil
}

// displayDate shows dates as DD/MM/YYYY, passing unreadable values
// through untouched.
func displayDate(raw string) string {
	if d, ok := dates.Normalize(raw); ok {
		return d.Format(dates.DayMonthYear)
	}
	return raw
}
