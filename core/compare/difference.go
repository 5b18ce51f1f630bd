package compare

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Sentinels returned by Difference when a numeric delta cannot be computed.
const (
	DifferenceNotApplicable = "N/A"
	DifferenceNonNumeric    = "Text difference"
)

var diffPrinter = message.NewPrinter(language.English)

// Difference formats the signed numeric delta a-b with thousands separators
// and two decimals. A blank side yields "N/A"; a non-numeric side yields
// "Text difference". It never fails.
func Difference(a, b string) string {
	aBlank := IsBlank(a)
	bBlank := IsBlank(b)

	aNum, aOK := ParseNumber(a)
	bNum, bOK := ParseNumber(b)

	if (aOK || aBlank) && (bOK || bBlank) {
		if aBlank || bBlank {
			return DifferenceNotApplicable
		}
		return diffPrinter.Sprintf("%.2f", aNum-bNum)
	}

	return DifferenceNonNumeric
}
