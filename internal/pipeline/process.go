package pipeline

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"ecoclean/internal"
	"ecoclean/internal/config"
)

type Service struct {
	cfg    config.Config
	logger *log.Logger
}

func NewService(cfg config.Config, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.Default()
	}
	return &Service{cfg: cfg, logger: logger}
}

type CleanResult struct {
	Rows    int
	Amended int
}

type RunResult struct {
	TraceID string
	Input   string
	Output  string
	Rows    int
	Amended int
	Elapsed time.Duration
}

// Clean runs the numeric filter, the amendment extraction and the event
// composition over table in place.
func (s *Service) Clean(table *internal.AnnouncementTable) (CleanResult, error) {
	for _, col := range internal.RequiredColumns {
		if err := table.RequireColumn(col); err != nil {
			return CleanResult{}, err
		}
	}
	if err := NormalizeNumericColumns(table, internal.NumericColumns); err != nil {
		return CleanResult{}, err
	}
	amended, err := ApplyAmendments(table, s.codes())
	if err != nil {
		return CleanResult{}, err
	}
	if err := ComposeEvents(table); err != nil {
		return CleanResult{}, err
	}
	return CleanResult{Rows: table.Len(), Amended: amended}, nil
}

// Run loads the configured input, cleans it and writes the configured
// output. Nothing is written unless every earlier step succeeded.
func (s *Service) Run() (RunResult, error) {
	return s.RunFiles(s.cfg.InputPath(), s.cfg.OutputPath())
}

func (s *Service) RunFiles(inputPath, outputPath string) (RunResult, error) {
	start := time.Now()
	id := traceID()
	logger := s.logger.With("trace_id", id)
	res := RunResult{TraceID: id, Input: inputPath, Output: outputPath}

	logger.Info("loading feed", "input", inputPath)
	table, err := LoadTable(inputPath)
	if err != nil {
		return res, err
	}
	logger.Debug("feed loaded", "rows", table.Len(), "columns", len(table.Columns), "elapsed", time.Since(start))

	cleaned, err := s.Clean(table)
	if err != nil {
		return res, err
	}
	logger.Debug("feed cleaned", "rows", cleaned.Rows, "amended", cleaned.Amended, "elapsed", time.Since(start))

	if err := WriteTable(table, outputPath); err != nil {
		return res, err
	}

	res.Rows = cleaned.Rows
	res.Amended = cleaned.Amended
	res.Elapsed = time.Since(start)
	logger.Info("feed written", "output", outputPath, "rows", res.Rows, "amended", res.Amended, "elapsed", res.Elapsed)
	return res, nil
}

// Convert re-writes a table in another format without cleaning it.
func (s *Service) Convert(inputPath, outputPath string) (int, error) {
	table, err := LoadTable(inputPath)
	if err != nil {
		return 0, err
	}
	if err := WriteTable(table, outputPath); err != nil {
		return 0, err
	}
	s.logger.Info("table converted", "input", inputPath, "output", outputPath, "rows", table.Len())
	return table.Len(), nil
}

func (s *Service) codes() []string {
	if len(s.cfg.AmendmentCodes) == 0 {
		return DefaultAmendmentCodes
	}
	return s.cfg.AmendmentCodes
}

func traceID() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("run-%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
