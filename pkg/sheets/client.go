package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

const defaultTab = "Sheet1"

type Client struct {
	service *sheets.Service
}

type Config struct {
	CredentialsPath string
	CredentialsJSON []byte
}

func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	var opts []option.ClientOption

	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	} else if len(cfg.CredentialsJSON) > 0 {
		opts = append(opts, option.WithCredentialsJSON(cfg.CredentialsJSON))
	} else {
		return nil, fmt.Errorf("sheets: credentials path or JSON is required")
	}

	service, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("sheets: failed to create service: %w", err)
	}

	return &Client{
		service: service,
	}, nil
}

// AppendRows appends rows after the last non-empty row of tab
func (c *Client) AppendRows(ctx context.Context, spreadsheetID, tab string, rows [][]interface{}) error {
	if c == nil || c.service == nil {
		return fmt.Errorf("sheets: service is nil")
	}

	_, err := c.service.Spreadsheets.Values.Append(spreadsheetID, AppendRange(tab), &sheets.ValueRange{Values: rows}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("sheets: append rows: %w", err)
	}
	return nil
}

// ClearTab removes every row of tab except the header
func (c *Client) ClearTab(ctx context.Context, spreadsheetID, tab string) error {
	if c == nil || c.service == nil {
		return fmt.Errorf("sheets: service is nil")
	}

	_, err := c.service.Spreadsheets.Values.Clear(spreadsheetID, ClearRange(tab), &sheets.ClearValuesRequest{}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sheets: clear tab: %w", err)
	}
	return nil
}

// AppendRange is the A1 anchor used for appends
func AppendRange(tab string) string {
	if tab == "" {
		tab = defaultTab
	}
	return fmt.Sprintf("%s!A1", tab)
}

// ClearRange covers all data rows below the header
func ClearRange(tab string) string {
	if tab == "" {
		tab = defaultTab
	}
	return fmt.Sprintf("%s!A2:Z", tab)
}
