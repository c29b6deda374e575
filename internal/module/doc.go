// Package module accumulates spreadsheet rows into module blocks.
//
// An Accumulator is a two-state machine (Idle, Accumulating). Each block is a
// fresh *Block value; nothing carries over from one block to the next.
package module
