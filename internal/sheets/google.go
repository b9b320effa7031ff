package sheets

import (
	"context"
	"fmt"

	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// Google is a Client backed by the Google Sheets API. Authentication uses a
// service account key file.
type Google struct {
	service       *sheets.Service
	spreadsheetID string
}

var _ Client = (*Google)(nil)

// NewGoogle creates a Google Sheets client for the given spreadsheet using
// the service account credentials at credentialsFile.
func NewGoogle(ctx context.Context, credentialsFile string, spreadsheetID string) (*Google, error) {
	service, err := sheets.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(sheets.SpreadsheetsScope))
	if err != nil {
		return nil, fmt.Errorf("could not create sheets service: %w", err)
	}

	return &Google{
		service:       service,
		spreadsheetID: spreadsheetID,
	}, nil
}

func (g *Google) Values(ctx context.Context, worksheet string) ([][]string, error) {
	resp, err := g.service.Spreadsheets.Values.
		Get(g.spreadsheetID, worksheet).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("could not read worksheet %q: %w", worksheet, err)
	}

	rows := make([][]string, len(resp.Values))
	for i, row := range resp.Values {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = fmt.Sprint(cell)
		}
		rows[i] = cells
	}

	return rows, nil
}

func (g *Google) Append(ctx context.Context, worksheet string, rows [][]string) error {
	if len(rows) == 0 {
		return nil
	}

	values := make([][]any, len(rows))
	for i, row := range rows {
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		values[i] = cells
	}

	_, err := g.service.Spreadsheets.Values.
		Append(g.spreadsheetID, worksheet, &sheets.ValueRange{Values: values}).
		ValueInputOption("USER_ENTERED").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("could not append to worksheet %q: %w", worksheet, err)
	}

	return nil
}
