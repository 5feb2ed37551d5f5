package billing

import (
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"
)

// SplitEvenly splits an amount into n shares rounded to cents, with the last
// share absorbing the rounding remainder so the shares always sum back to the
// original amount exactly. n <= 0 returns nil.
func SplitEvenly(amount decimal.Decimal, n int) []decimal.Decimal {
	if n <= 0 {
		return nil
	}

	shares := make([]decimal.Decimal, n)
	if n == 1 {
		shares[0] = amount.Round(2)
		return shares
	}

	share := amount.DivRound(decimal.NewFromInt(int64(n)), 2)
	allocated := decimal.Zero
	for i := 0; i < n-1; i++ {
		shares[i] = share
		allocated = allocated.Add(share)
	}
	shares[n-1] = amount.Sub(allocated)

	return shares
}

// safeAmount guards against malformed money on input records. Negative or
// uninitialized amounts are treated as zero so a single bad record can never
// abort a statement; the record is flagged for operator review.
func safeAmount(amount decimal.Decimal, field, recordID string) decimal.Decimal {
	if amount.IsNegative() {
		slog.Warn("malformed amount treated as zero",
			"field", field,
			"record_id", recordID,
			"amount", amount.String())
		return decimal.Zero
	}
	return amount
}

// FormatAmount renders an amount with two decimals, a thousands separator,
// and a currency symbol prefix, e.g. FormatAmount(d, "R") -> "R1,234.56".
// Negative amounts render as "-R1,234.56".
func FormatAmount(amount decimal.Decimal, symbol string) string {
	fixed := amount.Abs().StringFixed(2)

	intPart := fixed[:len(fixed)-3]
	fracPart := fixed[len(fixed)-3:]

	var b strings.Builder
	if amount.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(symbol)

	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
		if len(intPart) > lead {
			b.WriteByte(',')
		}
	}
	for i := lead; i < len(intPart); i += 3 {
		b.WriteString(intPart[i : i+3])
		if i+3 < len(intPart) {
			b.WriteByte(',')
		}
	}
	b.WriteString(fracPart)

	return b.String()
}
