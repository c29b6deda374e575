// Package writers puts rendered module records on disk.
//
//   • One file per module, named exactly as the module id.
//   • Writes go through a temp file + rename, so a reader never sees half a record.
//   • Rendering stays in output; writers only knows bytes and paths.
package writers
