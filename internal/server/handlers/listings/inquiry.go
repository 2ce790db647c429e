package listings

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/foodloop/foodloop/internal/collections"
	"github.com/foodloop/foodloop/internal/views"
)

const (
	inquiryRecipient    = "seller@foodloop.dev"
	notSpecified        = "Not specified"
	untitledListing     = "Untitled Listing"
	fallbackSubjectName = "Food Waste Listing"
)

// newInquiry assembles the templated seller-contact email for a listing.
// Absent optional attributes are substituted with display defaults; the total
// value is derived fresh and rendered with two decimals.
func newInquiry(listing *collections.MarketplaceListing) InquiryResponse {
	title := listing.ListingTitle
	if title == "" {
		title = untitledListing
	}

	subjectName := listing.ListingTitle
	if subjectName == "" {
		subjectName = fallbackSubjectName
	}

	wasteType := listing.WasteType
	if wasteType == "" {
		wasteType = notSpecified
	}

	unit := listing.UnitOfMeasure
	if unit == "" {
		unit = "units"
	}

	perUnit := listing.UnitOfMeasure
	if perUnit == "" {
		perUnit = "unit"
	}

	location := listing.Location
	if location == "" {
		location = notSpecified
	}

	total := views.FormatAmount(views.TotalValue(listing.PricePerUnit, listing.Quantity))

	subject := "Interest in " + subjectName
	body := fmt.Sprintf(`Hi, I'm interested in your food waste listing: %s.

Details:
- Waste Type: %s
- Quantity: %g %s
- Price: %g per %s
- Total Value: %s
- Location: %s

Please let me know about availability and pickup details.`,
		title, wasteType, listing.Quantity, unit, listing.PricePerUnit, perUnit, total, location)

	return InquiryResponse{
		Recipient:  inquiryRecipient,
		Subject:    subject,
		Body:       body,
		MailtoURL:  mailtoURL(inquiryRecipient, subject, body),
		TotalValue: total,
	}
}

func mailtoURL(recipient, subject, body string) string {
	return "mailto:" + recipient +
		"?subject=" + escape(subject) +
		"&body=" + escape(body)
}

// escape percent-encodes a mailto component; QueryEscape renders spaces as
// "+", which mail clients do not decode.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
