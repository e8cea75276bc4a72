// Package webconnect extracts statement metadata from Intuit Web Connect
// downloads (QFX and QBO files).
//
// Extraction is deliberate text scraping rather than SGML/XML parsing: each
// tag is looked up independently with a pre-compiled pattern, so a file only
// needs the five markers to appear somewhere in its text. Malformed or
// partial markup is tolerated.
//
//	<INTU.BID>  bank id        optional
//	<ORG>       org name       optional
//	<ACCTID>    account number required
//	<DTSTART>   start date     required
//	<DTEND>     end date       required
package webconnect
