// Package pipeline streams a pathway spreadsheet, splits it into module
// blocks at blank lines, and calls a visit callback once per finished block.
//
// It owns line handling only: decoding, header, boundaries, EOF finalization.
// What happens to a block (render, write, skip) is the caller's business.
package pipeline
