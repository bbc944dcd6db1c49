package report

import (
	"fmt"
	"strings"
	"time"

	"token-radar/internal/sources"
)

const borderLine = "======================================================================"

// RenderText renders the report in the scanner's console format.
func RenderText(r *Report) string {
	var sb strings.Builder

	if r.AvgCapRecentCount > 0 {
		sb.WriteString(fmt.Sprintf("Average Market Cap of ALL tokens created in last 24 hours: %s\n",
			groupInt(int64(r.AvgCapRecent))))
	} else {
		sb.WriteString("No tokens found created in last 24 hours (ALL tokens).\n")
	}
	if r.AvgCapFilteredCount > 0 {
		sb.WriteString(fmt.Sprintf("Average Market Cap of ALL tokens matching your filters: %s\n\n",
			groupInt(int64(r.AvgCapFiltered))))
	} else {
		sb.WriteString("No tokens found matching your filters.\n\n")
	}

	renderSection(&sb, "Top 5 Tokens Created in Last 24 Hours by Market Cap", r.TopByCap, false)
	renderSection(&sb, "Top 5 Tokens Created in Last 24 Hours by Volume", r.TopByVolume, true)

	sb.WriteString(fmt.Sprintf("\n%d Tokens Matching Market Cap Filter (%s - %s), Sorted by Market Cap (Ascending):\n\n",
		len(r.Filtered), groupInt(int64(r.MinCap)), groupInt(int64(r.MaxCap))))
	renderRows(&sb, r.Filtered, false)

	return sb.String()
}

func renderSection(sb *strings.Builder, title string, rows []Row, withVolume bool) {
	sb.WriteString("\n" + borderLine + "\n")
	sb.WriteString(title + "\n")
	sb.WriteString(borderLine + "\n\n")
	renderRows(sb, rows, withVolume)
	sb.WriteString(borderLine + "\n")
}

func renderRows(sb *strings.Builder, rows []Row, withVolume bool) {
	for i, row := range rows {
		sb.WriteString(fmt.Sprintf("%d. %s\n", i+1, row.Name))
		sb.WriteString(fmt.Sprintf("Ticker: %s\n", row.Symbol))
		sb.WriteString(fmt.Sprintf("ca: %s\n", row.Address))
		sb.WriteString(fmt.Sprintf("Created: %s\n", row.CreatedAgo))
		sb.WriteString(fmt.Sprintf("Launchpad: %s\n", row.Launchpad))
		sb.WriteString(fmt.Sprintf("Liquidity: %s | Holders: %d | Market Cap: %s\n",
			groupInt(row.Liquidity), row.HolderCount, groupInt(row.MarketCap)))
		if withVolume {
			sb.WriteString(fmt.Sprintf("Volume (24h): %s\n", groupInt(row.Volume24h)))
		}
		sb.WriteString(fmt.Sprintf("DEX Paid: %s\n\n", paymentLabel(row.PaymentStatus)))
	}
}

func paymentLabel(status string) string {
	if status == sources.PaymentApproved {
		return "✅"
	}
	return status
}

// TimeAgo renders a timestamp relative to now, e.g. "42 minutes ago".
// A nil timestamp renders "N/A".
func TimeAgo(ts *time.Time, now time.Time) string {
	if ts == nil {
		return "N/A"
	}
	seconds := int64(now.Sub(*ts).Seconds())
	if seconds < 60 {
		return fmt.Sprintf("%d seconds ago", seconds)
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf("%d minutes ago", minutes)
	}
	hours := minutes / 60
	if hours < 24 {
		return fmt.Sprintf("%d hours ago", hours)
	}
	return fmt.Sprintf("%d days ago", hours/24)
}

// groupInt formats n with thousands separators.
func groupInt(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		out = "-" + out
	}
	return out
}
