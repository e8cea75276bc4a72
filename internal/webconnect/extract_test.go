package webconnect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sgmlSample is a trimmed QFX body in the SGML dialect: no closing tags,
// CRLF line endings.
const sgmlSample = "OFXHEADER:100\r\nDATA:OFXSGML\r\n\r\n<OFX>\r\n<SIGNONMSGSRSV1><SONRS>\r\n" +
	"<FI>\r\n<ORG>First Bank \r\n<FID>1001\r\n</FI>\r\n<INTU.BID>6526 \r\n</SONRS></SIGNONMSGSRSV1>\r\n" +
	"<BANKMSGSRSV1><STMTTRNRS><STMTRS>\r\n<BANKACCTFROM>\r\n<ACCTID>4339930014105821\r\n</BANKACCTFROM>\r\n" +
	"<BANKTRANLIST>\r\n<DTSTART>20120605120000\r\n<DTEND>20120919120000\r\n</BANKTRANLIST>\r\n"

// xmlSample is the same data in the XML dialect with closing tags on one line.
const xmlSample = `<?xml version="1.0"?><OFX><SIGNONMSGSRSV1><SONRS><FI><ORG>First Bank</ORG></FI>` +
	`<INTU.BID>6526</INTU.BID></SONRS></SIGNONMSGSRSV1><BANKMSGSRSV1><STMTTRNRS><STMTRS>` +
	`<BANKACCTFROM><ACCTID>1234567890</ACCTID></BANKACCTFROM>` +
	`<BANKTRANLIST><DTSTART>20120605120000</DTSTART><DTEND>20120919120000</DTEND></BANKTRANLIST>`

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Metadata
	}{
		{
			name: "sgml dialect",
			text: sgmlSample,
			want: Metadata{
				BankID: "6526", OrgName: "First Bank", AccountNumber: "4339930014105821",
				StartDate: "20120605120000", EndDate: "20120919120000",
			},
		},
		{
			name: "xml dialect",
			text: xmlSample,
			want: Metadata{
				BankID: "6526", OrgName: "First Bank", AccountNumber: "1234567890",
				StartDate: "20120605120000", EndDate: "20120919120000",
			},
		},
		{
			name: "lowercase tags",
			text: "<acctid>42<dtstart>20200101<dtend>20200131",
			want: Metadata{AccountNumber: "42", StartDate: "20200101", EndDate: "20200131"},
		},
		{
			name: "value stops at slash",
			text: "<ORG>Bank/Trust<ACCTID>9<DTSTART>20200101<DTEND>20200131",
			want: Metadata{OrgName: "Bank", AccountNumber: "9", StartDate: "20200101", EndDate: "20200131"},
		},
		{
			name: "first occurrence wins",
			text: "<ACCTID>111<DTSTART>20200101<DTEND>20200131<ACCTID>222",
			want: Metadata{AccountNumber: "111", StartDate: "20200101", EndDate: "20200131"},
		},
		{
			name: "LF line endings are trimmed",
			text: "<ORG>  Credit Union  \n<ACCTID> 77 \n<DTSTART>20200101\n<DTEND>20200131\n",
			want: Metadata{OrgName: "Credit Union", AccountNumber: "77", StartDate: "20200101", EndDate: "20200131"},
		},
		{
			name: "dot in tag is literal",
			text: "<INTUXBID>1<INTU.BID>2<ACCTID>3<DTSTART>20200101<DTEND>20200131",
			want: Metadata{BankID: "2", AccountNumber: "3", StartDate: "20200101", EndDate: "20200131"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Extract(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_MissingRequired(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		missing []string
	}{
		{"no account", "<DTSTART>20200101<DTEND>20200131", []string{TagAccountID}},
		{"empty account", "<ACCTID></ACCTID><DTSTART>20200101<DTEND>20200131", []string{TagAccountID}},
		{"blank account", "<ACCTID>   \r\n<DTSTART>20200101<DTEND>20200131", []string{TagAccountID}},
		{"no start", "<ACCTID>1<DTEND>20200131", []string{TagDateStart}},
		{"no end", "<ACCTID>1<DTSTART>20200101", []string{TagDateEnd}},
		{"nothing", "hello", []string{TagAccountID, TagDateStart, TagDateEnd}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Extract(tt.text)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrUnparsable)
			for _, tag := range tt.missing {
				assert.Contains(t, err.Error(), tag)
			}
		})
	}
}

func TestExtract_OptionalFieldsMayBeAbsent(t *testing.T) {
	m, err := Extract("<ACCTID>1<DTSTART>20200101<DTEND>20200131")
	require.NoError(t, err)
	assert.Empty(t, m.BankID)
	assert.Empty(t, m.OrgName)
}

func TestExtractFile(t *testing.T) {
	dir := t.TempDir()

	good := filepath.Join(dir, "download.qfx")
	require.NoError(t, os.WriteFile(good, []byte(xmlSample), 0o644))
	m, err := ExtractFile(good)
	require.NoError(t, err)
	assert.Equal(t, "1234567890", m.AccountNumber)

	bad := filepath.Join(dir, "broken.qbo")
	require.NoError(t, os.WriteFile(bad, []byte("<ORG>First Bank</ORG>"), 0o644))
	_, err = ExtractFile(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnparsable)
	assert.Contains(t, err.Error(), bad)

	_, err = ExtractFile(filepath.Join(dir, "missing.qfx"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
