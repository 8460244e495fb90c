package tailwind

import (
	"fmt"
	"strconv"
	"strings"
)

// SizeKind classifies how a width/height token sizes its box.
type SizeKind string

const (
	SizeFixed      SizeKind = "fixed"
	SizePercentage SizeKind = "percentage"
	SizeAuto       SizeKind = "auto"
	SizeFlex       SizeKind = "flex"
	SizeFitContent SizeKind = "fit-content"
)

// SizeValue interprets the suffix of a sizing token (the part after "w-" or
// "h-") against the fixed default scale. vertical selects vh over vw for the
// screen keyword. Theme-driven values are out of scope; anything unrecognized
// is treated as auto.
func SizeValue(suffix string, vertical bool) (SizeKind, string) {
	switch suffix {
	case "auto":
		return SizeAuto, ""
	case "full":
		return SizePercentage, "100%"
	case "screen":
		if vertical {
			return SizeFixed, "100vh"
		}
		return SizeFixed, "100vw"
	case "fit", "min", "max":
		return SizeFitContent, suffix
	case "px":
		return SizeFixed, "1px"
	case "0":
		return SizeFixed, "0"
	}

	if strings.HasPrefix(suffix, "[") && strings.HasSuffix(suffix, "]") {
		return SizeFixed, suffix[1 : len(suffix)-1]
	}

	if numerator, denominator, ok := strings.Cut(suffix, "/"); ok {
		n, errN := strconv.ParseFloat(numerator, 64)
		d, errD := strconv.ParseFloat(denominator, 64)
		if errN == nil && errD == nil && d != 0 {
			return SizePercentage, formatNumber(n/d*100) + "%"
		}
		return SizeAuto, ""
	}

	if n, err := strconv.ParseFloat(suffix, 64); err == nil {
		return SizeFixed, SpacingValue(n)
	}

	return SizeAuto, ""
}

// SpacingValue converts a step on the default spacing scale to rem.
func SpacingValue(step float64) string {
	return formatNumber(step*0.25) + "rem"
}

func formatNumber(v float64) string {
	formatted := strconv.FormatFloat(v, 'f', -1, 64)
	// Cap runaway fractions from thirds and the like.
	if dot := strings.IndexByte(formatted, '.'); dot >= 0 && len(formatted)-dot-1 > 6 {
		formatted = fmt.Sprintf("%.6f", v)
		formatted = strings.TrimRight(formatted, "0")
		formatted = strings.TrimRight(formatted, ".")
	}
	return formatted
}

// GridColumnCount extracts N from grid-cols-N, 0 when the template is not a
// plain numeric column count (grid-cols-none, arbitrary values).
func GridColumnCount(token string) int {
	suffix, ok := strings.CutPrefix(token, "grid-cols-")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(suffix)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
