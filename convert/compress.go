package convert

import (
	"fmt"
	"io"
	"os"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"
	"go.uber.org/zap"

	"github.com/bratpeki/bookgen/config"
)

// precompress writes compressed copies next to a generated document so
// static file servers can hand them out without compressing on the fly.
func precompress(path string, mode config.Compression, log *zap.Logger) error {
	var modes []config.Compression
	switch mode {
	case config.CompressionGzip, config.CompressionBrotli:
		modes = []config.Compression{mode}
	case config.CompressionAll:
		modes = []config.Compression{config.CompressionGzip, config.CompressionBrotli}
	default:
		return nil
	}

	for _, m := range modes {
		if err := compressSibling(path, m, log); err != nil {
			return err
		}
	}
	return nil
}

// compressSibling writes the compressed copy of path under the same name
// plus the mode's extension.
func compressSibling(path string, mode config.Compression, log *zap.Logger) (err error) {
	src, err := os.Open(path)
	if err != nil {
		return err
	}
	defer src.Close()

	sibling := path + mode.Ext()
	dst, err := os.Create(sibling)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := dst.Close(); err == nil {
			err = cerr
		}
	}()

	var w io.WriteCloser
	switch mode {
	case config.CompressionGzip:
		if w, err = gzip.NewWriterLevel(dst, gzip.BestCompression); err != nil {
			return err
		}
	case config.CompressionBrotli:
		w = brotli.NewWriterLevel(dst, brotli.BestCompression)
	default:
		// this should never happen
		panic("no compressor for mode " + mode.String())
	}

	if _, err = io.Copy(w, src); err != nil {
		w.Close()
		return fmt.Errorf("unable to compress %s: %w", sibling, err)
	}
	if err = w.Close(); err != nil {
		return fmt.Errorf("unable to compress %s: %w", sibling, err)
	}

	log.Debug("Wrote precompressed copy", zap.String("file", sibling))
	return nil
}
