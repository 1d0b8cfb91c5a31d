package journal

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"bullion/internal/model"
)

const (
	precisionOunce = 2
	precisionGram  = 4
)

// Journal appends price records to two durable artifacts: a semicolon
// delimited table file and a plain-text log. Each append opens, writes,
// syncs and closes its file, so nothing is buffered across runs.
type Journal struct {
	logger    *slog.Logger
	tableFile string
	logFile   string
	currency  string
	out       io.Writer
}

func New(logger *slog.Logger, tableFile, logFile, currency string) *Journal {
	return &Journal{
		logger:    logger.With("component", "journal"),
		tableFile: tableFile,
		logFile:   logFile,
		currency:  currency,
		out:       os.Stdout,
	}
}

// SetOutput redirects the console mirror, for tests.
func (that *Journal) SetOutput(w io.Writer) {
	that.out = w
}

// Append writes the record to the table file and the plain-text log, then
// mirrors a summary table to the console unless quiet. Both appends are
// attempted even if the first fails; their errors are joined.
func (that *Journal) Append(record *model.PriceRecord, quiet bool) error {
	tableErr := that.appendTable(record)
	logErr := that.appendLine(that.formatLogLine(record))

	if !quiet {
		that.printSummary(record)
	}

	return errors.Join(tableErr, logErr)
}

// AppendError writes a single error line to the plain-text log and echoes
// it to the console unless quiet. The table file is left untouched.
func (that *Journal) AppendError(timestamp time.Time, message string, quiet bool) error {
	line := fmt.Sprintf("[%s] Error: %s\n", timestamp.Format(time.RFC3339), message)

	if !quiet {
		_, _ = fmt.Fprint(that.out, line)
	}

	return that.appendLine(line)
}

func (that *Journal) appendTable(record *model.PriceRecord) error {
	_, statErr := os.Stat(that.tableFile)
	writeHeader := os.IsNotExist(statErr)

	file, err := os.OpenFile(that.tableFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open table file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	writer.Comma = ';'

	if writeHeader {
		cur := strings.ToLower(that.currency)
		header := []string{
			"timestamp (UTC)",
			"gold_usd_per_ounce",
			"silver_usd_per_ounce",
			"gold_" + cur + "_per_ounce",
			"silver_" + cur + "_per_ounce",
			"gold_usd_per_gram",
			"silver_usd_per_gram",
			"gold_" + cur + "_per_gram",
			"silver_" + cur + "_per_gram",
		}
		if err := writer.Write(header); err != nil {
			return fmt.Errorf("write table header: %w", err)
		}
	}

	row := []string{
		record.Timestamp.Format(time.RFC3339),
		ounce(record.GoldUSDOunce),
		ounce(record.SilverUSDOunce),
		ounce(record.GoldLocalOunce),
		ounce(record.SilverLocalOunce),
		gram(record.GoldUSDGram),
		gram(record.SilverUSDGram),
		gram(record.GoldLocalGram),
		gram(record.SilverLocalGram),
	}
	if err := writer.Write(row); err != nil {
		return fmt.Errorf("write table row: %w", err)
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush table file: %w", err)
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("sync table file: %w", err)
	}

	return nil
}

func (that *Journal) appendLine(line string) error {
	file, err := os.OpenFile(that.logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer file.Close()

	if _, err := file.WriteString(line); err != nil {
		return fmt.Errorf("write log line: %w", err)
	}

	if err := file.Sync(); err != nil {
		return fmt.Errorf("sync log file: %w", err)
	}

	return nil
}

func (that *Journal) formatLogLine(record *model.PriceRecord) string {
	return fmt.Sprintf("[%s] Gold (oz/g): %s/%s USD, %s/%s %s | Silver (oz/g): %s/%s USD, %s/%s %s\n",
		record.Timestamp.Format(time.RFC3339),
		ounce(record.GoldUSDOunce), gram(record.GoldUSDGram),
		ounce(record.GoldLocalOunce), gram(record.GoldLocalGram), that.currency,
		ounce(record.SilverUSDOunce), gram(record.SilverUSDGram),
		ounce(record.SilverLocalOunce), gram(record.SilverLocalGram), that.currency,
	)
}

func (that *Journal) printSummary(record *model.PriceRecord) {
	_, _ = fmt.Fprintln(that.out, "\n=== Latest Prices ===")
	_, _ = fmt.Fprintf(that.out, "Timestamp: %s\n", record.Timestamp.Format(time.RFC3339))
	_, _ = fmt.Fprintf(that.out, "%-10s %-14s %-14s %-14s %-14s\n",
		"Metal", "USD (oz)", that.currency+" (oz)", "USD (g)", that.currency+" (g)")
	_, _ = fmt.Fprintf(that.out, "%-10s %-14s %-14s %-14s %-14s\n",
		"Gold", ounce(record.GoldUSDOunce), ounce(record.GoldLocalOunce), gram(record.GoldUSDGram), gram(record.GoldLocalGram))
	_, _ = fmt.Fprintf(that.out, "%-10s %-14s %-14s %-14s %-14s\n",
		"Silver", ounce(record.SilverUSDOunce), ounce(record.SilverLocalOunce), gram(record.SilverUSDGram), gram(record.SilverLocalGram))
	_, _ = fmt.Fprintln(that.out, "====================")
	_, _ = fmt.Fprintf(that.out, "Data appended to %s. Open in a spreadsheet for full table view.\n", that.tableFile)
}

func ounce(v float64) string {
	return strconv.FormatFloat(v, 'f', precisionOunce, 64)
}

func gram(v float64) string {
	return strconv.FormatFloat(v, 'f', precisionGram, 64)
}
