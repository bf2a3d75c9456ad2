package locale

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

const currencySuffix = "ر.س"

// FormatPrice renders an amount with thousands separators and the
// riyal suffix. Whole amounts drop the fraction, others keep two
// digits: 450000 -> "450,000 ر.س", 1250.5 -> "1,250.50 ر.س".
func FormatPrice(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	cents := int64(math.Round(amount * 100))
	whole := cents / 100
	fraction := cents % 100

	out := groupThousands(strconv.FormatInt(whole, 10))
	if fraction != 0 {
		out += fmt.Sprintf(".%02d", fraction)
	}
	if negative {
		out = "-" + out
	}
	return out + " " + currencySuffix
}

// FormatCompactPrice shortens large amounts for cards and tickers:
// 2500000 -> "2.5 مليون ر.س", 450000 -> "450 ألف ر.س".
func FormatCompactPrice(amount float64) string {
	switch {
	case amount >= 1_000_000:
		return trimZeros(amount/1_000_000) + " مليون " + currencySuffix
	case amount >= 1_000:
		return trimZeros(amount/1_000) + " ألف " + currencySuffix
	default:
		return FormatPrice(amount)
	}
}

// FormatArea renders square meters: 450 -> "450 م²", 10000 -> "10,000 م²".
func FormatArea(sqm float64) string {
	tenths := int64(math.Round(sqm * 10))
	whole := tenths / 10
	fraction := tenths % 10

	out := groupThousands(strconv.FormatInt(whole, 10))
	if fraction != 0 {
		out += fmt.Sprintf(".%d", fraction)
	}
	return out + " م²"
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func trimZeros(v float64) string {
	s := strconv.FormatFloat(v, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
