package main

import (
	"fmt"
	"io"
	"os"

	"GradeBook/internal/book"
	"GradeBook/internal/config"
	"GradeBook/internal/logger"
	"GradeBook/internal/recorder"
	"GradeBook/internal/report"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
)

func main() {
	var configPath string
	var verbose bool
	flag.StringVarP(&configPath, "config", "c", "", "Path to the YAML config file")
	flag.BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
	flag.Parse()

	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatal().Err(err).Msg("load .env")
	}

	cfgPath := config.ResolvePath(configPath)
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("config validation")
	}

	level := cfg.Log.Level
	if verbose {
		level = zerolog.LevelDebugValue
	}
	if err := logger.Init(level, *cfg.Log.Console); err != nil {
		log.Fatal().Err(err).Msg("init logger")
	}
	log.Debug().Str("path", cfgPath).Msg("config loaded")

	rec := newRecorder(cfg, log.Logger)
	runErr := run(cfg, os.Stdout, rec, log.Logger)
	if err := rec.Close(); err != nil {
		log.Error().Err(err).Msg("close recorder")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("gradebook failed")
	}
}

// newRecorder logs snapshots unless recording is switched off, in which case they are discarded.
func newRecorder(cfg *config.Config, l zerolog.Logger) recorder.Recorder {
	if cfg.Log.Record != nil && !*cfg.Log.Record {
		l.Debug().Msg("statistics recording disabled, using noop recorder")
		return recorder.NewNoopRecorder()
	}
	return recorder.NewLogRecorder(l)
}

// run fills a book from the config, computes its statistics and writes the report to out.
func run(cfg *config.Config, out io.Writer, rec recorder.Recorder, l zerolog.Logger) error {
	l = l.With().Str("component", "gradebook").Logger()

	b := book.New(cfg.Book.Name)
	for _, g := range cfg.Book.Grades {
		b.AddGrade(g)
		l.Debug().Str("book", b.Name()).Float64("grade", g).Msg("grade added")
	}

	stats, err := b.GetStatistics()
	if err != nil {
		return err
	}

	if err := rec.RecordStatistics(&recorder.Snapshot{
		BookName:   b.Name(),
		GradeCount: b.Count(),
		Stats:      stats,
	}); err != nil {
		l.Error().Err(err).Msg("record statistics")
	}

	if _, err := io.WriteString(out, report.FormatStatistics(stats)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
