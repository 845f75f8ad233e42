package book

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"io"
	"mime"
	"os"
	"path/filepath"
	"slices"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/disintegration/imaging"
	"github.com/h2non/filetype"
	"github.com/h2non/filetype/types"
	"go.uber.org/zap"
	_ "golang.org/x/image/webp"

	"github.com/bratpeki/bookgen/common"
	"github.com/bratpeki/bookgen/config"
	"github.com/bratpeki/bookgen/jpegquality"
	"github.com/bratpeki/bookgen/markup"
)

// Image emits an img element referencing src as is. The attribute value is
// escaped, the file is not touched.
func (b *Book) Image(src string, attrs ...string) error {
	if b.err != nil {
		return b.err
	}
	args := append([]string{markup.Attr("src", src)}, attrs...)
	if err := b.w.Void("img", args...); err != nil {
		return b.fail(err)
	}
	return nil
}

// EmbedImage emits an img element whose src attribute carries the asset as a
// base64 data URI. The payload streams from the file straight into the sink,
// the asset is buffered only when downscaling asks for a decode. The MIME
// type comes from content sniffing with the file extension as fallback.
//
// A file that cannot be opened follows the configured missing-asset policy:
// fail poisons the session, skip logs and emits nothing.
func (b *Book) EmbedImage(path string, attrs ...string) error {
	if b.err != nil {
		return b.err
	}

	f, err := os.Open(path)
	if err != nil {
		return b.missingAsset(path, err)
	}
	defer f.Close()

	// filetype needs at most 262 bytes to classify
	header := make([]byte, 262)
	n, err := io.ReadFull(f, header)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return b.fail(fmt.Errorf("unable to read asset %q: %w", path, err))
	}
	header = header[:n]

	mimeType := "application/octet-stream"
	kind, _ := filetype.Match(header)
	if kind != types.Unknown {
		mimeType = kind.MIME.Value
	} else if byExt := mime.TypeByExtension(filepath.Ext(path)); byExt != "" {
		mimeType = byExt
	}

	var payload io.Reader = io.MultiReader(bytes.NewReader(header), f)
	if b.cfg.Assets.ScaleWidth > 0 && filetype.IsImage(header) {
		data, err := io.ReadAll(payload)
		if err != nil {
			return b.fail(fmt.Errorf("unable to read asset %q: %w", path, err))
		}
		if scaled, ok := b.downscale(path, data); ok {
			data, mimeType = scaled, "image/jpeg"
		}
		payload = bytes.NewReader(data)
	}

	closing := ">"
	if b.cfg.Dialect == common.DialectXhtml {
		closing = "/>"
	}

	if err := b.w.StartLine(); err != nil {
		return b.fail(err)
	}
	b.w.Raw(`<img src="data:` + mimeType + `;base64,`)
	enc := base64.NewEncoder(base64.StdEncoding, b.w.RawWriter())
	if _, err := io.Copy(enc, payload); err != nil {
		return b.fail(fmt.Errorf("unable to encode asset %q: %w", path, err))
	}
	if err := enc.Close(); err != nil {
		return b.fail(fmt.Errorf("unable to encode asset %q: %w", path, err))
	}
	b.w.Raw(`"`)
	for _, a := range attrs {
		if a != "" {
			b.w.Raw(" " + a)
		}
	}
	if err := b.w.Raw(closing + "\n"); err != nil {
		return b.fail(err)
	}

	b.assets = append(b.assets, path)
	b.log.Debug("Embedded asset", zap.String("path", path), zap.String("mime", mimeType))
	return nil
}

// Assets returns the paths of everything embedded so far.
func (b *Book) Assets() []string {
	return slices.Clone(b.assets)
}

func (b *Book) missingAsset(path string, err error) error {
	if b.cfg.Assets.Missing == config.MissingAssetModeSkip {
		b.log.Warn("Skipping unreadable asset", zap.String("path", path), zap.Error(err))
		return nil
	}
	b.log.Error("Unable to read asset", zap.String("path", path), zap.Error(err))
	return b.fail(fmt.Errorf("asset %q: %w", path, ErrAssetMissing))
}

// downscale re-encodes an image wider than the configured limit as JPEG at
// the target width. Anything that fails to decode is embedded as is.
func (b *Book) downscale(path string, data []byte) ([]byte, bool) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		b.log.Warn("Unable to decode image for downscaling, embedding as is", zap.String("path", path), zap.Error(err))
		return nil, false
	}
	width := b.cfg.Assets.ScaleWidth
	if img.Bounds().Dx() <= width {
		return nil, false
	}

	quality := b.cfg.Assets.JPEGQuality
	if jr, err := jpegquality.NewWithBytes(data); err == nil && jr.Quality() < quality {
		b.log.Debug("JPEG quality level already lower than requested, keeping it",
			zap.String("path", path), zap.Int("detected", jr.Quality()), zap.Int("requested", quality))
		quality = jr.Quality()
	}

	resized := imaging.Resize(img, width, 0, imaging.Lanczos)
	buf := new(bytes.Buffer)
	if err := imaging.Encode(buf, resized, imaging.JPEG, imaging.JPEGQuality(quality)); err != nil {
		b.log.Warn("Unable to re-encode downscaled image, embedding as is", zap.String("path", path), zap.Error(err))
		return nil, false
	}
	b.log.Debug("Downscaled embedded image",
		zap.String("path", path),
		zap.Int("from", img.Bounds().Dx()),
		zap.Int("to", width))
	return buf.Bytes(), true
}
