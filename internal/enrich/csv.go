package enrich

import (
	"encoding/csv"
	"fmt"
	"io"

	"salesops/sales-analytics/internal/fileutils"
	"salesops/sales-analytics/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/sirupsen/logrus"
)

// Delimiter is the field separator of the enriched output file, matching
// the input format.
var Delimiter rune = '|'

// SetDelimiter allows overriding the delimiter for the enriched output.
func SetDelimiter(delim rune) {
	Delimiter = delim
}

// WriteEnrichedFile writes the enriched transactions to a pipe-delimited
// file with the 12-column header. Absent enrichment fields serialize as
// empty tokens and API_Match as a literal boolean token; a nil slice is an
// error, an empty one writes just the header.
func WriteEnrichedFile(enriched []models.EnrichedTransaction, path string) error {
	if enriched == nil {
		return fmt.Errorf("cannot write nil enriched transactions")
	}

	log.WithFields(logrus.Fields{
		"file":  path,
		"count": len(enriched),
	}).Info("Writing enriched transactions")

	file, err := fileutils.CreateFile(path)
	if err != nil {
		log.WithError(err).Error("Failed to create enriched output file")
		return fmt.Errorf("error creating enriched output file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	writer := csv.NewWriter(file)
	writer.Comma = Delimiter
	if err := gocsv.MarshalCSV(&enriched, gocsv.NewSafeCSVWriter(writer)); err != nil {
		log.WithError(err).Error("Failed to marshal enriched transactions")
		return fmt.Errorf("error writing enriched output: %w", err)
	}
	return nil
}

// ReadEnrichedFile reads a previously written enriched file back into
// memory. Mainly used by the validate command and round-trip checks.
func ReadEnrichedFile(path string) ([]models.EnrichedTransaction, error) {
	file, err := fileutils.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file")
		}
	}()

	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = Delimiter
		return r
	})
	defer gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		return csv.NewReader(in)
	})

	var enriched []models.EnrichedTransaction
	if err := gocsv.UnmarshalFile(file, &enriched); err != nil {
		return nil, fmt.Errorf("error parsing enriched file: %w", err)
	}
	// gocsv materializes the empty rating token as a pointer to zero.
	// An unmatched record carries no rating at all.
	for i := range enriched {
		if !enriched[i].APIMatch {
			enriched[i].APIRating = nil
		}
	}
	return enriched, nil
}
