package naming

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/backmassage/qfxrenamer/internal/webconnect"
)

// ErrInvalidDate is wrapped when a raw statement date does not start with
// a YYYYMMDD prefix of ASCII digits.
var ErrInvalidDate = errors.New("invalid statement date")

// rawDateLen is the length of the YYYYMMDD prefix every Web Connect
// date-time carries.
const rawDateLen = 8

// FormatDate turns the YYYYMMDD prefix of raw into YYYY-MM-DD. Anything
// after the first eight characters (time of day, timezone) is dropped.
// The prefix must be eight ASCII digits.
func FormatDate(raw string) (string, error) {
	if len(raw) < rawDateLen {
		return "", fmt.Errorf("%w %q (need at least %d characters)", ErrInvalidDate, raw, rawDateLen)
	}
	for i := 0; i < rawDateLen; i++ {
		if raw[i] < '0' || raw[i] > '9' {
			return "", fmt.Errorf("%w %q (want YYYYMMDD digits)", ErrInvalidDate, raw)
		}
	}
	return raw[0:4] + "-" + raw[4:6] + "-" + raw[6:8], nil
}

// BankLabel picks the display name for the institution: the org name, else
// the bank id, else fallback.
func BankLabel(m webconnect.Metadata, fallback string) string {
	if m.OrgName != "" {
		return m.OrgName
	}
	if m.BankID != "" {
		return m.BankID
	}
	return fallback
}

// BuildFilename returns the target base name for a statement:
//
//	{bankLabel} {accountNumber} {YYYY-MM-DD} to {YYYY-MM-DD}{ext}
//
// ext is appended as given, leading dot included.
func BuildFilename(m webconnect.Metadata, ext, fallback string) (string, error) {
	start, err := FormatDate(m.StartDate)
	if err != nil {
		return "", fmt.Errorf("start date: %w", err)
	}
	end, err := FormatDate(m.EndDate)
	if err != nil {
		return "", fmt.Errorf("end date: %w", err)
	}
	return fmt.Sprintf("%s %s %s to %s%s", BankLabel(m, fallback), m.AccountNumber, start, end, ext), nil
}

// TargetPath places filename in the same directory as src.
func TargetPath(src, filename string) string {
	return filepath.Join(filepath.Dir(src), filename)
}
