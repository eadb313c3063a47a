package lambdautil

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
)

// The reference brotli encoder's defaults, which produced the compressed
// fixture bytes.
const (
	BrotliQuality = 11
	BrotliLGWin   = 22
)

// Brotli compresses s with the default quality and window so that its output
// is byte-for-byte what other brotli implementations produce by default.
func Brotli(s string) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := brotli.NewWriterOptions(buf, brotli.WriterOptions{
		Quality: BrotliQuality,
		LGWin:   BrotliLGWin,
	})
	if _, err := io.WriteString(w, s); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unbrotli(b []byte) (string, error) {
	out, err := io.ReadAll(brotli.NewReader(bytes.NewReader(b)))
	if err != nil {
		return "", err
	}
	return string(out), nil
}
