// internal/textio/open.go
package textio

import (
	"compress/gzip"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Supported input encodings.
const (
	UTF8        = "utf-8"
	Windows1252 = "windows-1252"
	Latin1      = "latin1"
)

// Stdin makes Open read standard input.
const Stdin = "-"

// Open opens path for reading; "-" is stdin and a ".gz" suffix is gunzipped.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			fh.Close()
			return nil, errors.Wrapf(err, "%s", path)
		}
		return struct {
			io.Reader
			io.Closer
		}{Reader: gr, Closer: fh}, nil
	}
	return fh, nil
}

// Decoder returns the x/text decoder for name. UTF-8 input has a leading BOM
// removed; the legacy charsets are converted to UTF-8.
func Decoder(name string) (*encoding.Decoder, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", UTF8, "utf8":
		return unicode.UTF8BOM.NewDecoder(), nil
	case Windows1252, "cp1252":
		return charmap.Windows1252.NewDecoder(), nil
	case Latin1, "iso-8859-1":
		return charmap.ISO8859_1.NewDecoder(), nil
	}
	return nil, errors.Errorf("unsupported encoding %q (want %s, %s or %s)", name, UTF8, Windows1252, Latin1)
}

// NewReader wraps r so it yields UTF-8 text in the named encoding.
func NewReader(r io.Reader, enc string) (io.Reader, error) {
	dec, err := Decoder(enc)
	if err != nil {
		return nil, err
	}
	return transform.NewReader(r, dec), nil
}
