package report

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Dash is rendered wherever the API reported a null numeric field.
const Dash = "—"

// formatFloatWithComma renders f with the given number of decimals and
// thousands separators in the integer part.
func formatFloatWithComma(f float64, decimals int) string {
	str := strconv.FormatFloat(f, 'f', decimals, 64)

	neg := strings.HasPrefix(str, "-")
	if neg {
		str = str[1:]
	}

	parts := strings.Split(str, ".")
	intPart := parts[0]
	decPart := ""
	if len(parts) > 1 {
		decPart = parts[1]
	}

	nStr := ""
	for i, v := range intPart {
		if i != 0 && (len(intPart)-i)%3 == 0 {
			nStr += ","
		}
		nStr += string(v)
	}

	if neg {
		nStr = "-" + nStr
	}
	if decimals > 0 {
		return nStr + "." + decPart
	}
	return nStr
}

// FormatPrice renders a live price with tiered precision: low-priced tokens
// get more decimals so they stay readable, sub-micro prices fall back to
// scientific notation.
func FormatPrice(price *float64) string {
	if price == nil {
		return Dash
	}
	x := *price
	ax := math.Abs(x)
	switch {
	case ax >= 100:
		return "$" + formatFloatWithComma(x, 2)
	case ax >= 1:
		return "$" + formatFloatWithComma(x, 4)
	case ax >= 0.01:
		return "$" + formatFloatWithComma(x, 6)
	case ax >= 0.000001:
		return "$" + formatFloatWithComma(x, 8)
	default:
		return fmt.Sprintf("$%.2e", x)
	}
}

// FormatChange renders a percent change with an explicit sign.
func FormatChange(change *float64) string {
	if change == nil {
		return Dash
	}
	return fmt.Sprintf("%+.2f%%", *change)
}

// FormatMarketCap renders a market cap as a whole dollar amount.
func FormatMarketCap(marketCap *float64) string {
	if marketCap == nil {
		return Dash
	}
	return "$" + formatFloatWithComma(*marketCap, 0)
}
