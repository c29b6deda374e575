// cmd/keggmod/main.go
//
// keggmod converts a pathway spreadsheet (Amino_Acids.txt, Vitamins.txt, ...)
// into KEGG-style module files, one per blank-line separated block.
//
// Usage:
//
//	keggmod [flags] <input.txt> <kegg-dir> [output-dir]
package main

import (
	"keggmod/internal/app"
	"keggmod/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
