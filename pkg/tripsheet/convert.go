package tripsheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/mapper"
	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/models"
	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/parser"
	"github.com/ukaji3/tripsheet-go/pkg/tripsheet/sorter"
)

// Convert reads the trip file at path and converts it.
func Convert(ctx context.Context, path string, opts Options) (*models.Conversion, error) {
	name := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, NewConversionError(name, "open", fmt.Errorf("%w: %s", ErrFileNotFound, path))
		}
		return nil, NewConversionError(name, "open", err)
	}
	defer f.Close()

	return ConvertReader(ctx, f, name, opts)
}

// ConvertReader parses a source trip file from r and converts it. name is
// the display name and selects the format unless opts.Format is set.
// Parsing is abandoned once opts' timeout or ctx expires; the returned
// conversion is either complete or nil.
func ConvertReader(ctx context.Context, r io.Reader, name string, opts Options) (*models.Conversion, error) {
	format := opts.SourceFormat(name)

	source, err := parseWithTimeout(ctx, opts.ParseTimeout(), func() (models.Matrix, error) {
		return readSource(r, format, opts.SheetName)
	})
	if err != nil {
		return nil, NewConversionError(name, "parse", err)
	}

	matrix := sorter.Sort(mapper.Map(source))
	return &models.Conversion{
		Name:      name,
		SheetName: opts.OutputSheetName(),
		Records:   matrix.Records(),
		CreatedAt: time.Now(),
		Matrix:    matrix,
	}, nil
}

// ConvertAll converts each path independently, running at most limit
// conversions at once (limit <= 0 means no limit). Results keep the order
// of paths. The first failure cancels the remaining conversions.
func ConvertAll(ctx context.Context, paths []string, opts Options, limit int) ([]*models.Conversion, error) {
	results := make([]*models.Conversion, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}
	for i, path := range paths {
		g.Go(func() error {
			c, err := Convert(gctx, path, opts)
			if err != nil {
				return err
			}
			results[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

type parseResult struct {
	matrix models.Matrix
	err    error
}

func parseWithTimeout(ctx context.Context, timeout time.Duration, parse func() (models.Matrix, error)) (models.Matrix, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	done := make(chan parseResult, 1)
	go func() {
		m, err := parse()
		done <- parseResult{matrix: m, err: err}
	}()

	select {
	case res := <-done:
		if res.err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFormat, res.err)
		}
		return res.matrix, nil
	case <-ctx.Done():
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w: %w", ErrParseTimeout, ctx.Err())
		}
		return nil, ctx.Err()
	}
}

func readSource(r io.Reader, format parser.Format, sheetName string) (models.Matrix, error) {
	switch format {
	case parser.FormatXLSX:
		f, err := excelize.OpenReader(r)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return parser.ReadWorkbook(f, sheetName)
	case parser.FormatXLS:
		rs, ok := r.(io.ReadSeeker)
		if !ok {
			data, err := io.ReadAll(r)
			if err != nil {
				return nil, err
			}
			rs = bytes.NewReader(data)
		}
		return parser.ReadXLS(rs)
	default:
		return parser.ReadCSV(r)
	}
}
