package billing

import (
	"sort"
	"strings"

	"courtside/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BuildAccountsReport runs the opening/current-month computation across every
// client for one month, producing the academy-wide receivables report.
//
// Per client: opening balance over all of the client's players combined, the
// month's session count, fee total, cancellation credit total, payment total,
// and closing balance = opening + fees - credits - payments. Rows sort
// descending by closing balance so the largest outstanding balances surface
// first. Unlike the per-player statement, clients with no activity and a zero
// opening balance still get a row. Payment totals come straight from the
// client's payments, so money that cannot be attributed to any player still
// counts here.
func BuildAccountsReport(snap *models.Snapshot, month, nameFilter string) models.AccountsReport {
	report := models.AccountsReport{
		Month: month,
		Rows:  []models.AccountsReportRow{},
		Totals: models.AccountsReportRow{
			OpeningBalance: decimal.Zero,
			FeeTotal:       decimal.Zero,
			CreditTotal:    decimal.Zero,
			PaymentTotal:   decimal.Zero,
			ClosingBalance: decimal.Zero,
		},
	}

	filter := strings.ToLower(strings.TrimSpace(nameFilter))
	voided := snap.VoidedDates()
	monthStart := month + "-01"

	for i := range snap.Clients {
		client := &snap.Clients[i]
		if filter != "" && !strings.Contains(strings.ToLower(client.Name), filter) {
			continue
		}

		row := clientRow(client, snap, voided, month, monthStart)

		report.Rows = append(report.Rows, row)
		report.Totals.OpeningBalance = report.Totals.OpeningBalance.Add(row.OpeningBalance)
		report.Totals.SessionCount += row.SessionCount
		report.Totals.FeeTotal = report.Totals.FeeTotal.Add(row.FeeTotal)
		report.Totals.CreditTotal = report.Totals.CreditTotal.Add(row.CreditTotal)
		report.Totals.PaymentTotal = report.Totals.PaymentTotal.Add(row.PaymentTotal)
		report.Totals.ClosingBalance = report.Totals.ClosingBalance.Add(row.ClosingBalance)
	}

	sort.SliceStable(report.Rows, func(i, j int) bool {
		return report.Rows[i].ClosingBalance.GreaterThan(report.Rows[j].ClosingBalance)
	})

	return report
}

func clientRow(client *models.Client, snap *models.Snapshot, voided map[string]struct{}, month, monthStart string) models.AccountsReportRow {
	row := models.AccountsReportRow{
		ClientID:       client.ID,
		ClientName:     client.Name,
		OpeningBalance: decimal.Zero,
		FeeTotal:       decimal.Zero,
		CreditTotal:    decimal.Zero,
		PaymentTotal:   decimal.Zero,
	}

	playerIDs := make(map[uuid.UUID]struct{})
	for _, p := range snap.PlayersOf(client.ID) {
		playerIDs[p.ID] = struct{}{}
	}

	for i := range snap.Sessions {
		session := &snap.Sessions[i]
		c := Classify(session, playerIDs, voided)
		if c.InvolvedCount == 0 || c.Status == StatusRain {
			continue
		}

		switch {
		case session.Date < monthStart:
			row.OpeningBalance = row.OpeningBalance.Add(c.Charge).Sub(c.Credit)
		case session.Month() == month:
			row.SessionCount++
			row.FeeTotal = row.FeeTotal.Add(c.Charge)
			row.CreditTotal = row.CreditTotal.Add(c.Credit)
		}
	}

	for i := range client.Payments {
		payment := &client.Payments[i]
		amount := safeAmount(payment.Amount, "amount", payment.ID.String())

		switch {
		case payment.Date < monthStart:
			row.OpeningBalance = row.OpeningBalance.Sub(amount)
		case len(payment.Date) >= 7 && payment.Date[:7] == month:
			row.PaymentTotal = row.PaymentTotal.Add(amount)
		}
	}

	row.ClosingBalance = row.OpeningBalance.
		Add(row.FeeTotal).
		Sub(row.CreditTotal).
		Sub(row.PaymentTotal)

	return row
}
