package reconcile

import (
	"fmt"
	"regexp"
	"strings"

	"parcel-recon/core/compare"
)

const zillowURLBase = "https://www.zillow.com/homes/"

const parcelURLTemplate = "https://iasworld.starkcountyohio.gov/iasworld/Maintain/Transact.aspx?" +
	"txtMaskedPin=%s&selYear=&userYear=&selJur=&chkShowHistory=False&chkShowChanges=&" +
	"chkShowDeactivated=&PinValue=%s&pin=&trans_key=&windowId=%s&submitFlag=true&" +
	"TransPopUp=&ACflag=False&ACflag2=False"

var (
	unitSuffixRe = regexp.MustCompile(`(?i)\s+(Apt|Unit|#|Suite)\s*[\w-]*$`)
	punctRe      = regexp.MustCompile(`[^\w\s-]`)
	spaceRe      = regexp.MustCompile(`\s+`)
)

// ParcelURL builds the county record-lookup link for a parcel. The windowId
// is an opaque session token supplied by the operator; without one no link
// can be built and the result is empty.
func ParcelURL(windowID, parcelID string) string {
	if compare.IsBlank(windowID) || compare.IsBlank(parcelID) {
		return ""
	}
	return fmt.Sprintf(parcelURLTemplate, parcelID, parcelID, windowID)
}

// ZillowURL builds a listing-search link from address components. Any of
// address, city, or zip being blank yields an empty link, never an error.
func ZillowURL(address, city, zip string) string {
	if compare.IsBlank(address) || compare.IsBlank(city) || compare.IsBlank(zip) {
		return ""
	}

	// Unit designators confuse the search; drop a trailing "Apt 4B" etc.
	addr := unitSuffixRe.ReplaceAllString(strings.TrimSpace(address), "")
	addr = slugify(addr)
	citySlug := slugify(strings.TrimSpace(city))

	// Zip+4 extensions are not part of the search slug.
	zipClean := strings.SplitN(strings.TrimSpace(zip), "-", 2)[0]

	return fmt.Sprintf("%s%s-%s-OH-%s_rb/", zillowURLBase, addr, citySlug, zipClean)
}

func slugify(s string) string {
	s = punctRe.ReplaceAllString(s, "")
	return spaceRe.ReplaceAllString(s, "-")
}
