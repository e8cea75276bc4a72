package webconnect

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"
)

// ErrUnparsable is wrapped by every extraction failure caused by a missing
// or empty required field.
var ErrUnparsable = errors.New("could not be parsed")

// Tag names recognized in Web Connect text.
const (
	TagBankID    = "INTU.BID"
	TagOrg       = "ORG"
	TagAccountID = "ACCTID"
	TagDateStart = "DTSTART"
	TagDateEnd   = "DTEND"
)

// Pre-compiled, read-only tag patterns. A value runs from the end of the tag
// up to the next '<', '/' or carriage return.
var (
	reBankID    = tagPattern(TagBankID)
	reOrg       = tagPattern(TagOrg)
	reAccountID = tagPattern(TagAccountID)
	reDateStart = tagPattern(TagDateStart)
	reDateEnd   = tagPattern(TagDateEnd)
)

func tagPattern(tag string) *regexp.Regexp {
	return regexp.MustCompile(`(?i)<` + regexp.QuoteMeta(tag) + `>([^<\r/]*)`)
}

// Metadata is the set of fields scraped from one file. Values are trimmed.
type Metadata struct {
	BankID        string
	OrgName       string
	AccountNumber string
	StartDate     string
	EndDate       string
}

// Extract scans text for the five Web Connect tags. It fails with an error
// wrapping [ErrUnparsable] when the account number, start date or end date
// is absent or blank; bank id and org name may be empty.
func Extract(text string) (Metadata, error) {
	m := Metadata{
		BankID:        lookup(reBankID, text),
		OrgName:       lookup(reOrg, text),
		AccountNumber: lookup(reAccountID, text),
		StartDate:     lookup(reDateStart, text),
		EndDate:       lookup(reDateEnd, text),
	}

	var missing []string
	if m.AccountNumber == "" {
		missing = append(missing, TagAccountID)
	}
	if m.StartDate == "" {
		missing = append(missing, TagDateStart)
	}
	if m.EndDate == "" {
		missing = append(missing, TagDateEnd)
	}
	if len(missing) > 0 {
		return m, fmt.Errorf("%w: missing %s", ErrUnparsable, strings.Join(missing, ", "))
	}
	return m, nil
}

// ExtractFile reads the whole file at path and runs [Extract] on its text.
// Errors name the path.
func ExtractFile(path string) (Metadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Metadata{}, fmt.Errorf("read %s: %w", path, err)
	}
	m, err := Extract(string(data))
	if err != nil {
		return m, fmt.Errorf("'%s' %w", path, err)
	}
	return m, nil
}

// lookup returns the trimmed first capture of re in text, or "" when the
// tag does not occur.
func lookup(re *regexp.Regexp, text string) string {
	sm := re.FindStringSubmatch(text)
	if sm == nil {
		return ""
	}
	return strings.TrimSpace(sm[1])
}
