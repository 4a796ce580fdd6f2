// Package report turns scan-execution records into the two-sheet usage
// workbook: a named data table of write-time constants plus
// row-relative formulas, and a summary sheet of table-relative
// aggregate formulas.
package report

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/locvowork/scaninsight/internal/model"
)

// Option configures a report run.
type Option func(*runConfig)

type runConfig struct {
	force            bool
	lenient          bool
	progressInterval int
	tableStyle       string
}

func defaultRunConfig() *runConfig {
	return &runConfig{progressInterval: 500}
}

// WithForce permits overwriting an existing output artifact.
func WithForce(force bool) Option {
	return func(c *runConfig) {
		c.force = force
	}
}

// WithLenient downgrades malformed records from run-aborting errors to
// logged skips. The default is strict: one bad record fails the run so
// the report never silently undercounts.
func WithLenient(lenient bool) Option {
	return func(c *runConfig) {
		c.lenient = lenient
	}
}

// WithTableStyle overrides the built-in style of the scans table. An
// empty name keeps the default.
func WithTableStyle(name string) Option {
	return func(c *runConfig) {
		c.tableStyle = name
	}
}

// WithProgressInterval sets how many rows are written between progress
// log lines.
func WithProgressInterval(n int) Option {
	return func(c *runConfig) {
		if n > 0 {
			c.progressInterval = n
		}
	}
}

// Service runs the report pipeline: normalize, build schema, assemble
// the table, aggregate the summary, finalize the artifact.
type Service interface {
	// Generate writes the workbook for records to outPath. The artifact
	// is staged to a temporary file and renamed into place only on
	// success; no half-written file survives an error.
	Generate(ctx context.Context, records []model.ScanRecord, outPath string, opts ...Option) error
	// GenerateBytes builds the same workbook in memory.
	GenerateBytes(ctx context.Context, records []model.ScanRecord, opts ...Option) ([]byte, error)
}

type service struct {
	customer string
	company  string
	author   string
	registry *LanguageRegistry
	log      zerolog.Logger
}

func NewService(customer, company, author string, registry *LanguageRegistry, log zerolog.Logger) Service {
	return &service{
		customer: customer,
		company:  company,
		author:   author,
		registry: registry,
		log:      log,
	}
}

func (s *service) Generate(ctx context.Context, records []model.ScanRecord, outPath string, opts ...Option) error {
	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	// Conflict detection happens before any sheet is built.
	if _, err := os.Stat(outPath); err == nil {
		if !cfg.force {
			return fmt.Errorf("%s: %w (use force to overwrite)", outPath, ErrOutputConflict)
		}
		s.log.Warn().Str("path", outPath).Msg("Output file exists, overwriting")
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("check output file %s: %v: %w", outPath, err, ErrOutputWriteFailure)
	}

	rctx, err := s.buildWorkbook(ctx, records, cfg)
	if err != nil {
		return err
	}
	defer rctx.Close()

	if err := s.commit(rctx, outPath); err != nil {
		return err
	}
	s.log.Info().Str("path", outPath).Int("scans", len(records)).Msg("Report written")
	return nil
}

func (s *service) GenerateBytes(ctx context.Context, records []model.ScanRecord, opts ...Option) ([]byte, error) {
	cfg := defaultRunConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	rctx, err := s.buildWorkbook(ctx, records, cfg)
	if err != nil {
		return nil, err
	}
	defer rctx.Close()

	buf := new(bytes.Buffer)
	if _, err := rctx.File.WriteTo(buf); err != nil {
		return nil, fmt.Errorf("serialize workbook: %v: %w", err, ErrOutputWriteFailure)
	}
	return buf.Bytes(), nil
}

// buildWorkbook runs the single-pass pipeline into a fresh workbook.
func (s *service) buildWorkbook(ctx context.Context, records []model.ScanRecord, cfg *runConfig) (*Context, error) {
	rctx, err := NewContext(s.customer, s.company, s.author, s.registry)
	if err != nil {
		return nil, err
	}

	rows, err := s.normalizeAll(records, cfg)
	if err != nil {
		rctx.Close()
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		rctx.Close()
		return nil, err
	}

	assembler := NewAssembler(s.log, cfg.progressInterval, cfg.tableStyle)
	table, err := assembler.WriteScansSheet(rctx, rows)
	if err != nil {
		rctx.Close()
		return nil, err
	}

	if err := WriteSummarySheet(rctx, table.Name()); err != nil {
		rctx.Close()
		return nil, fmt.Errorf("write summary sheet: %w", err)
	}

	return rctx, nil
}

func (s *service) normalizeAll(records []model.ScanRecord, cfg *runConfig) ([]Row, error) {
	normalizer := NewNormalizer(s.registry)
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		row, err := normalizer.Normalize(rec)
		if err != nil {
			if cfg.lenient && errors.Is(err, ErrMalformedRecord) {
				s.log.Warn().Err(err).Msg("Skipping malformed scan record")
				continue
			}
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// commit stages the workbook next to the destination and renames it
// into place, so an aborted run leaves nothing behind.
func (s *service) commit(rctx *Context, outPath string) error {
	dir := filepath.Dir(outPath)
	tmp, err := os.CreateTemp(dir, filepath.Base(outPath)+".*.tmp")
	if err != nil {
		return fmt.Errorf("stage output file: %v: %w", err, ErrOutputWriteFailure)
	}
	tmpPath := tmp.Name()

	if _, err := rctx.File.WriteTo(tmp); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write workbook: %v: %w", err, ErrOutputWriteFailure)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("flush workbook: %v: %w", err, ErrOutputWriteFailure)
	}
	if err := os.Rename(tmpPath, outPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("commit output file: %v: %w", err, ErrOutputWriteFailure)
	}
	return nil
}
