package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"path/filepath"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/trainpulse/internal/logger"
	"github.com/guttosm/trainpulse/internal/metrics"
	"github.com/guttosm/trainpulse/internal/storage"
)

const (
	filePattern      = "*.csv"
	defaultBatchSize = 5000
	maxParallelFiles = 8
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.SessionsRepository {
	return storage.NewSessionsRepository(db)
}

// ProcessDirectory imports every *.csv file in dir as training sessions.
//
//   - dir: directory containing the exported session files.
//   - db:  open *sql.DB (PostgreSQL).
//   - parallel: files processed at once; <= 0 means min(8, NumCPU).
//   - force: re-import files already recorded in import_log.
//
// Behavior:
//   - Each file is imported at most once, keyed by its base name.
//   - With force, rows previously loaded from the same file are deleted first.
//   - A file that fails midway has its partial rows removed.
//   - The first failing file cancels the rest and its error is returned.
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, parallel int, force bool) error {
	repo := repoCtor(db)
	log := logger.Component("import")

	files, err := filepath.Glob(filepath.Join(dir, filePattern))
	if err != nil {
		return fmt.Errorf("list %s: %w", dir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found in %s", filePattern, dir)
	}
	sort.Strings(files)

	maxParallel := maxParallelFiles
	if parallel > 0 {
		if parallel < maxParallel {
			maxParallel = parallel
		}
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	log.Info().Int("files", len(files)).Str("dir", dir).Int("max_parallel", maxParallel).Bool("force", force).Msg("import start")

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxParallel)

	for i, file := range files {
		idx, f := i, file
		g.Go(func() error {
			err := importFile(gctx, repo, f, force, idx+1, len(files))
			if err != nil {
				metrics.RecordImportFile(metrics.ImportFailed)
			}
			return err
		})
	}

	return g.Wait()
}

func importFile(ctx context.Context, repo storage.SessionsRepository, path string, force bool, idx, total int) error {
	log := logger.Component("import")
	start := time.Now()
	source := filepath.Base(path)

	exists, err := repo.HasImport(ctx, source)
	if err != nil {
		log.Error().Str("file", source).Err(err).Msg("check import log failed")
		return fmt.Errorf("file %s: check import log: %w", source, err)
	}
	if exists && !force {
		metrics.RecordImportFile(metrics.ImportSkipped)
		log.Info().Int("idx", idx).Int("total", total).Str("file", source).Bool("skipped", true).Msg("already imported")
		return nil
	}
	if exists {
		if err := repo.DeleteSessionsBySource(ctx, source); err != nil {
			log.Error().Str("file", source).Err(err).Msg("delete previous import failed")
			return fmt.Errorf("file %s: delete previous import: %w", source, err)
		}
	}

	rows, err := parseAndPersistFile(ctx, path, source, repo, defaultBatchSize)
	if err != nil {
		// Earlier batches may already be committed.
		cleanupCtx := context.WithoutCancel(ctx)
		if cleanupErr := repo.DeleteSessionsBySource(cleanupCtx, source); cleanupErr != nil {
			log.Error().Str("file", source).Err(cleanupErr).Msg("cleanup of partial import failed")
		}
		// The previous rows are gone, so the file must be picked up again.
		if exists {
			if cleanupErr := repo.DeleteImportLog(cleanupCtx, source); cleanupErr != nil {
				log.Error().Str("file", source).Err(cleanupErr).Msg("clear import log failed")
			}
		}
		log.Error().Str("file", source).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
		return fmt.Errorf("file %s: %w", source, err)
	}

	if err := repo.UpsertImportLog(ctx, source, rows); err != nil {
		log.Error().Str("file", source).Err(err).Msg("update import log failed")
		return fmt.Errorf("file %s: upsert import log: %w", source, err)
	}

	metrics.RecordImportFile(metrics.ImportLoaded)
	metrics.RecordImportedRows(rows)
	log.Info().Int("idx", idx).Int("total", total).Str("file", source).Int("rows", rows).Dur("elapsed", time.Since(start)).Msg("file done")
	return nil
}
