package sheets

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"google.golang.org/api/option"
	sheetsapi "google.golang.org/api/sheets/v4"

	"github.com/tanvirdev/officebook/internal/config"
	"github.com/tanvirdev/officebook/internal/domain/models"
)

// Exporter pushes daily summary rows to an external spreadsheet.
type Exporter interface {
	AppendDailySummary(ctx context.Context, summary models.DailySummary) error
}

// GoogleSheetExporter implements Exporter using the official Google Sheets API.
type GoogleSheetExporter struct {
	service       *sheetsapi.Service
	spreadsheetID string
	writeRange    string
	logger        *zap.Logger
}

// NewGoogleSheetExporter builds a Google Sheets backed exporter instance.
func NewGoogleSheetExporter(ctx context.Context, cfg config.SheetsConfig, logger *zap.Logger) (Exporter, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	service, err := sheetsapi.NewService(ctx, option.WithCredentialsFile(cfg.CredentialsPath), option.WithScopes(sheetsapi.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("failed to initialize sheets client: %w", err)
	}

	return &GoogleSheetExporter{
		service:       service,
		spreadsheetID: cfg.SpreadsheetID,
		writeRange:    cfg.WriteRange,
		logger:        logger,
	}, nil
}

// AppendDailySummary appends one summary as a spreadsheet row.
func (e *GoogleSheetExporter) AppendDailySummary(ctx context.Context, summary models.DailySummary) error {
	row := []interface{}{
		summary.Date,
		summary.TotalAdvance,
		summary.AdvanceCount,
		summary.PresentCount,
		summary.AbsentCount,
		summary.RateEntryCount,
	}
	payload := &sheetsapi.ValueRange{Values: [][]interface{}{row}}

	call := e.service.Spreadsheets.Values.Append(e.spreadsheetID, e.writeRange, payload).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx)

	if _, err := call.Do(); err != nil {
		return fmt.Errorf("append summary row into range %s: %w", e.writeRange, err)
	}

	e.logger.Debug("summary row appended to sheet", zap.String("date", summary.Date))
	return nil
}
