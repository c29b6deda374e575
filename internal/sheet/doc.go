// Package sheet tokenizes rows of the pathway spreadsheet.
//
// A data row is tab separated with at least seven columns:
//
//	0 module id   1 target compound   2 -   3 expression fragment
//	4 -           5 module refs (a/b) 6 pathway maps (a/b)
//
// Column 3 is either a connector (AND, OR, "--", punctuation) or a list of
// enzyme identifiers. Sheet is domain-only; it never touches files.
package sheet
