package mcp

import (
	"context"
	"fmt"

	"github.com/honeycarbs/manage-jobs/internal/card"
	"github.com/honeycarbs/manage-jobs/internal/domain"
	sheetsclient "github.com/honeycarbs/manage-jobs/pkg/sheets"
)

type sheetsWriter interface {
	AppendRows(ctx context.Context, spreadsheetID, tab string, rows [][]interface{}) error
	ClearTab(ctx context.Context, spreadsheetID, tab string) error
}

type sheetsExporter struct {
	client sheetsWriter
}

func newSheetsExporter(client *sheetsclient.Client) *sheetsExporter {
	return &sheetsExporter{client: client}
}

func (e *sheetsExporter) Export(ctx context.Context, spreadsheetID, tab string, clear bool, jobs []domain.JobSummary) error {
	if e == nil || e.client == nil {
		return fmt.Errorf("sheets: client not configured (GOOGLE_SHEETS_CREDENTIALS_PATH not set)")
	}

	if clear {
		if err := e.client.ClearTab(ctx, spreadsheetID, tab); err != nil {
			return err
		}
	}

	if len(jobs) == 0 {
		return nil
	}

	return e.client.AppendRows(ctx, spreadsheetID, tab, jobRows(jobs))
}

func jobRows(jobs []domain.JobSummary) [][]interface{} {
	rows := make([][]interface{}, len(jobs))
	for i, j := range jobs {
		status := fmt.Sprintf("%d", j.Status)
		if j.Expired() {
			status = card.ExpiredLabel
		}
		rows[i] = []interface{}{
			j.ID,
			j.Title,
			j.Location.City,
			j.Location.Country,
			j.Summary,
			status,
			j.NoOfSuggestions,
		}
	}
	return rows
}
