package billing

import (
	"courtside/internal/models"

	"github.com/shopspring/decimal"
)

// BuildStatement produces a client's statement for one "YYYY-MM" month: one
// section per scoped player with its own opening balance (the carry-forward
// of every entry strictly before the month's first day), the in-month rows
// with running balances, and a subtotal. Sections with no rows and a zero
// opening balance are suppressed. The grand total sums the displayed
// sections' subtotals.
//
// The computation is a pure function of its inputs: viewing the same month
// twice over the same snapshot yields identical output.
func BuildStatement(client *models.Client, scope Scope, snap *models.Snapshot, month string) models.Statement {
	statement := models.Statement{
		ClientID:   client.ID,
		ClientName: client.Name,
		Month:      month,
		Scope:      scope.Kind(),
		Sections:   []models.StatementSection{},
		GrandTotal: decimal.Zero,
	}

	ledger := BuildLedger(client, scope, snap)

	for _, player := range scopedPlayers(client, scope, snap) {
		section := buildSection(player, ledger, month)
		if len(section.Rows) == 0 && section.OpeningBalance.IsZero() {
			continue
		}
		statement.Sections = append(statement.Sections, section)
		statement.GrandTotal = statement.GrandTotal.Add(section.Subtotal)
	}

	return statement
}

func buildSection(player models.Player, ledger []models.LedgerEntry, month string) models.StatementSection {
	section := models.StatementSection{
		PlayerID:       player.ID,
		PlayerName:     player.Name,
		OpeningBalance: decimal.Zero,
		Rows:           []models.StatementRow{},
	}

	for i := range ledger {
		entry := &ledger[i]
		if entry.PlayerID != player.ID {
			continue
		}
		if entry.Before(month) {
			section.OpeningBalance = section.OpeningBalance.Add(entry.Delta())
		}
	}

	running := section.OpeningBalance
	for i := range ledger {
		entry := &ledger[i]
		if entry.PlayerID != player.ID || !entry.InMonth(month) {
			continue
		}
		running = running.Add(entry.Delta())
		section.Rows = append(section.Rows, models.StatementRow{
			Date:           entry.Date,
			Description:    entry.Description,
			Kind:           entry.Kind,
			Debit:          entry.Debit,
			Credit:         entry.Credit,
			RunningBalance: running,
			ProofURL:       entry.ProofURL,
		})
	}

	// Entries dated after the month are ignored entirely, so the final
	// running balance is the section subtotal.
	section.Subtotal = running

	return section
}
