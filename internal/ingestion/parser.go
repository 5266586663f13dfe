package ingestion

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/guttosm/trainpulse/internal/domain/models"
	"github.com/shopspring/decimal"
)

// expectedHeaders enforces strict column ordering for session exports.
// If the header doesn't match EXACTLY (order + count), the import fails.
var expectedHeaders = []string{
	"competitor_id",
	"modality_id",
	"training_date",
	"hours",
	"status",
}

// batchInserter is the part of the sessions repository the parser needs.
type batchInserter interface {
	InsertSessionsBatch(ctx context.Context, source string, sessions []models.TrainingSession) error
}

// parseAndPersistFile loads one file into the repository in batches tagged
// with source. It fails on:
//   - header not matching expected order/length
//   - rows with the wrong column count or invalid values
//   - unrecoverable I/O errors
//
// Returns the number of sessions inserted.
func parseAndPersistFile(ctx context.Context, path, source string, repo batchInserter, batch int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // checked explicitly for clearer errors

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return 0, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
		if !strings.EqualFold(h, expectedHeaders[i]) {
			return 0, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	buf := make([]models.TrainingSession, 0, batch)
	lineNumber := 1
	total := 0

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertSessionsBatch(ctx, source, buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return 0, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) == 1 && strings.TrimSpace(rec[0]) == "" {
			continue
		}
		if len(rec) != len(expectedHeaders) {
			return 0, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeaders), len(rec))
		}

		s, err := recordToSession(rec)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		buf = append(buf, s)
		total++
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return 0, fmt.Errorf("flush batch ending line %d: %w", lineNumber, err)
			}
		}
	}

	if err := flush(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}
	return total, nil
}

// recordToSession converts one validated record into a TrainingSession.
//
// Column order:
//
//	0 competitor_id  → CompetitorID (UUID)
//	1 modality_id    → ModalityID (UUID)
//	2 training_date  → TrainingDate ("2006-01-02")
//	3 hours          → Hours (> 0, comma or dot decimals)
//	4 status         → Status (pending|approved|rejected, empty means pending)
func recordToSession(rec []string) (models.TrainingSession, error) {
	var s models.TrainingSession

	competitor := strings.TrimSpace(rec[0])
	if _, err := uuid.Parse(competitor); err != nil {
		return s, fmt.Errorf("invalid competitor_id %q: %v", competitor, err)
	}
	s.CompetitorID = competitor

	modality := strings.TrimSpace(rec[1])
	if _, err := uuid.Parse(modality); err != nil {
		return s, fmt.Errorf("invalid modality_id %q: %v", modality, err)
	}
	s.ModalityID = modality

	date := strings.TrimSpace(rec[2])
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return s, fmt.Errorf("invalid training_date: %v", err)
	}
	s.TrainingDate = d.Format("2006-01-02")

	raw := strings.ReplaceAll(strings.TrimSpace(rec[3]), ",", ".")
	hours, err := decimal.NewFromString(raw)
	if err != nil {
		return s, fmt.Errorf("invalid hours %q: %v", rec[3], err)
	}
	if !hours.IsPositive() {
		return s, fmt.Errorf("hours must be positive, got %s", hours.String())
	}
	s.Hours = hours.InexactFloat64()

	status := models.SessionStatus(strings.ToLower(strings.TrimSpace(rec[4])))
	if status == "" {
		status = models.StatusPending
	}
	if !status.Valid() {
		return s, fmt.Errorf("invalid status %q", rec[4])
	}
	s.Status = status

	return s, nil
}
