package convert

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"github.com/bratpeki/bookgen/archive"
	"github.com/bratpeki/bookgen/book"
	"github.com/bratpeki/bookgen/common"
	"github.com/bratpeki/bookgen/config"
	"github.com/bratpeki/bookgen/state"
)

// Run implements the convert subcommand. It resolves the source argument to
// a Markdown file, a directory tree or a zip archive and converts every
// document found.
func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("convert")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	if name := cmd.String("dialect"); len(name) != 0 {
		if env.Cfg.Document.Dialect, err = common.ParseDialect(name); err != nil {
			return fmt.Errorf("unsupported output dialect requested: %w", err)
		}
	}
	if cmd.Bool("precompress") {
		env.Cfg.Document.Compress = config.CompressionAll
	}

	tocPath := cmd.String("toc")
	if len(tocPath) > 0 {
		if tocPath, err = filepath.Abs(tocPath); err != nil {
			return err
		}
	}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	return process(ctx, src, dst, tocPath, log)
}

// process handles the core conversion logic independently of the CLI
// framework. It determines the input type (directory, archive, or single
// file, possibly a path inside an archive) and processes accordingly.
func process(ctx context.Context, src, dst, tocPath string, log *zap.Logger) error {
	var head, tail string
	for head = src; len(head) != 0; head, tail = filepath.Split(head) {
		if err := ctx.Err(); err != nil {
			return err
		}

		head = strings.TrimSuffix(head, string(filepath.Separator))

		fi, err := os.Stat(head)
		if err != nil {
			// does not exist - probably path in archive
			continue
		}

		if fi.Mode().IsDir() {
			if len(tail) != 0 {
				// directory cannot have tail - it would be simple file
				return fmt.Errorf("input source was not found (%s) => (%s)", head, strings.TrimPrefix(src, head))
			}
			if err := processDir(ctx, head, dst, tocPath, log); err != nil {
				return fmt.Errorf("unable to process directory: %w", err)
			}
			break
		}

		if !fi.Mode().IsRegular() {
			return fmt.Errorf("unexpected path mode for (%s) => (%s)", head, strings.TrimPrefix(src, head))
		}

		arc, err := isArchiveFile(head)
		if err != nil {
			// checking format - but cannot open target file
			return fmt.Errorf("unable to check archive type: %w", err)
		}
		if arc {
			// we need to look inside to see if path makes sense
			tail = strings.TrimPrefix(strings.TrimPrefix(src, head), string(filepath.Separator))
			if err := processArchive(ctx, head, tail, "", dst, tocPath, log); err != nil {
				return fmt.Errorf("unable to process archive: %w", err)
			}
			break
		}

		if isDocumentFile(head) && len(tail) == 0 {
			if file, err := os.Open(head); err != nil {
				log.Error("Unable to process file", zap.String("file", head), zap.Error(err))
			} else {
				defer file.Close()
				if err := processDocument(ctx, file, filepath.Base(head), filepath.Dir(head), dst, tocPath, log); err != nil {
					log.Error("Unable to process file", zap.String("file", head), zap.Error(err))
				}
			}
			break
		}
		return fmt.Errorf("input was not recognized as Markdown source (%s)", head)
	}
	if len(head) == 0 {
		return fmt.Errorf("input source was not found (%s)", src)
	}
	return nil
}

// processDir walks directory tree finding Markdown files and archives and
// processes them.
func processDir(ctx context.Context, dir, dst, tocPath string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		arc, err := isArchiveFile(path)
		if err != nil {
			// checking format - but cannot open target file
			log.Warn("Skipping file", zap.String("file", path), zap.Error(err))
			return nil
		}
		if arc {
			if err := processArchive(ctx, path, "", filepath.Dir(strings.TrimPrefix(path, dir)), dst, tocPath, log); err != nil {
				log.Error("Unable to process archive", zap.String("file", path), zap.Error(err))
			}
			return nil
		}

		if !isDocumentFile(path) {
			log.Debug("Skipping file, not recognized as Markdown or archive", zap.String("file", path))
			return nil
		}

		count++

		file, err := os.Open(path)
		if err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
			return nil
		}
		defer file.Close()

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processDocument(ctx, file, src, filepath.Dir(path), dst, tocPath, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	return err
}

// processArchive walks Markdown entries of a zip archive, converting those
// under "pathIn" when it is not empty. Results are placed under "pathOut"
// relative to the destination.
func processArchive(ctx context.Context, path, pathIn, pathOut, dst, tocPath string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("archive", path))
		}
	}()

	prefix := filepath.ToSlash(pathIn)

	err = archive.Walk(path, documentExt, func(arc string, f *zip.File) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		name := f.FileHeader.Name
		if len(prefix) != 0 && !strings.HasPrefix(name, prefix) {
			return nil
		}

		count++

		r, err := f.Open()
		if err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", arc), zap.String("file", name), zap.Error(err))
			return nil
		}
		defer r.Close()

		// archive entries carry no asset directory, relative images stay
		// references
		if err := processDocument(ctx, r, filepath.Join(pathOut, filepath.FromSlash(name)), "", dst, tocPath, log); err != nil {
			log.Error("Unable to process file in archive",
				zap.String("archive", arc), zap.String("file", name), zap.Error(err))
		}
		return nil
	})
	return err
}

// processDocument converts a single Markdown source. "src" is part of the
// source path (always including file name) relative to the original path:
// for a file given directly it is the base name, for directory and archive
// sources it keeps the relative path inside. "assetDir" is where relative
// image paths resolve, empty for archive entries. "dst" is the destination
// directory the converted file is written under.
func processDocument(ctx context.Context, r io.Reader, src, assetDir, dst, tocPath string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var refID, outputName string

	log.Info("Conversion starting", zap.String("from", src))
	defer func(start time.Time) {
		// when multiple documents are being processed one bad source should
		// not stop the batch
		if r := recover(); r != nil {
			log.Error("Conversion ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("conversion panic: %v", r)
		} else {
			log.Info("Conversion completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.String("ref_id", refID))
		}
	}(time.Now())

	doc, err := prepare(r, src, assetDir)
	if err != nil {
		return fmt.Errorf("unable to parse Markdown source (%s): %w", src, err)
	}

	id, err := book.ResolveID(env.Cfg.Document.Identifier)
	if err != nil {
		return fmt.Errorf("unable to allocate document identifier: %w", err)
	}
	refID = id.String()

	// Determine output file name and path based on input and configuration.
	outputName = buildOutputPath(doc, refID, src, dst, env)

	// Check if output file already exists
	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	out, err := os.Create(outputName)
	if err != nil {
		return fmt.Errorf("unable to create output file: %w", err)
	}

	// The session must see the identifier the output was named after.
	docCfg := env.Cfg.Document
	docCfg.Identifier = refID

	b, err := generate(ctx, doc, out, &docCfg, log)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return fmt.Errorf("unable to generate output: %w", err)
	}

	if err := precompress(outputName, docCfg.Compress, log); err != nil {
		return err
	}

	if len(tocPath) > 0 {
		if err := exportTOC(b, tocPath, env, log); err != nil {
			return err
		}
	}

	// Store conversion artifacts for debugging
	if env.Rpt != nil {
		env.Rpt.StoreData(fmt.Sprintf("src-%s-%s", refID, filepath.Base(src)), doc.Data)
		var dump bytes.Buffer
		if err := b.DumpState(&dump); err != nil {
			log.Warn("Unable to dump session state", zap.Error(err))
		} else {
			env.Rpt.StoreData(fmt.Sprintf("state-%s.txt", refID), dump.Bytes())
		}
		env.Rpt.Store(fmt.Sprintf("result-%s%s", refID, filepath.Ext(outputName)), outputName)
	}

	return nil
}

// exportTOC writes the session's TOC store as JSON. With batch sources every
// document writes the same path, the last one wins.
func exportTOC(b *book.Book, path string, env *state.LocalEnv, log *zap.Logger) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create TOC export: %w", err)
	}
	err = b.ExportTOC(f)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	log.Debug("Exported table of contents", zap.String("file", path))
	if env.Rpt != nil {
		env.Rpt.Store("toc-"+b.ID().String()+".json", path)
	}
	return nil
}
