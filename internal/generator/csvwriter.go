package generator

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spatsahani4100-alt/salesgen/internal/models"
)

// CSVWriter is a buffered, streaming CSV file writer. Rows go straight
// to the buffer, so memory use is flat regardless of file size.
type CSVWriter struct {
	file     *os.File
	buffer   *bufio.Writer
	writer   *csv.Writer
	rowCount int64
	closed   bool
}

// CSVWriterConfig holds settings for creating a CSV writer.
type CSVWriterConfig struct {
	// Directory where the file will be created (created if absent)
	OutputDir string
	// Filename without extension (e.g., "sales_2020_01")
	Filename string
	// Column headers, written immediately on creation
	Headers []string
	// Buffer size in bytes (default: 64KB)
	BufferSize int
}

// NewCSVWriter creates the output file and writes the header row.
func NewCSVWriter(cfg CSVWriterConfig) (*CSVWriter, error) {
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	bufSize := cfg.BufferSize
	if bufSize <= 0 {
		bufSize = 64 * 1024
	}

	path := filepath.Join(cfg.OutputDir, cfg.Filename+".csv")
	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create file %s: %w", path, err)
	}

	buffer := bufio.NewWriterSize(file, bufSize)
	writer := csv.NewWriter(buffer)

	cw := &CSVWriter{
		file:   file,
		buffer: buffer,
		writer: writer,
	}

	if len(cfg.Headers) > 0 {
		if err := writer.Write(cfg.Headers); err != nil {
			file.Close()
			return nil, fmt.Errorf("failed to write headers: %w", err)
		}
	}

	return cw, nil
}

// WriteRow writes a single data row.
func (w *CSVWriter) WriteRow(row []string) error {
	if w.closed {
		return fmt.Errorf("writer is closed")
	}

	if err := w.writer.Write(row); err != nil {
		return fmt.Errorf("failed to write row: %w", err)
	}
	w.rowCount++

	return nil
}

// Close flushes remaining data and closes the file. Errors surface
// here rather than silently truncating the file.
func (w *CSVWriter) Close() error {
	if w.closed {
		return nil
	}
	w.closed = true

	w.writer.Flush()
	if err := w.writer.Error(); err != nil {
		w.file.Close()
		return fmt.Errorf("csv flush error: %w", err)
	}

	if err := w.buffer.Flush(); err != nil {
		w.file.Close()
		return fmt.Errorf("buffer flush error: %w", err)
	}

	return w.file.Close()
}

// RowCount returns the number of data rows written (excludes header).
func (w *CSVWriter) RowCount() int64 {
	return w.rowCount
}

// Path returns the full path to the output file.
func (w *CSVWriter) Path() string {
	return w.file.Name()
}

// MonthFilename returns the bare filename (no extension) for a month's
// output file, e.g. "sales_2020_01".
func MonthFilename(year int, month time.Month) string {
	return fmt.Sprintf("sales_%d_%02d", year, int(month))
}

// WriteMonthCSV persists one month's batch as sales_<YYYY>_<MM>.csv in
// outputDir and returns the written file's path.
func WriteMonthCSV(sales []models.Sale, outputDir string, year int, month time.Month) (string, error) {
	writer, err := NewCSVWriter(CSVWriterConfig{
		OutputDir: outputDir,
		Filename:  MonthFilename(year, month),
		Headers:   models.SaleCSVHeaders(),
	})
	if err != nil {
		return "", err
	}

	for i := range sales {
		if err := writer.WriteRow(sales[i].CSVRow()); err != nil {
			writer.Close()
			return writer.Path(), err
		}
	}

	if err := writer.Close(); err != nil {
		return writer.Path(), err
	}

	return writer.Path(), nil
}
