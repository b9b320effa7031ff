// Package exporter writes the served meals of a session to an Excel workbook.
package exporter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"registro/pkg/domain"
	"registro/pkg/logger"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// forbiddenFilenameChars matches characters that are unsafe in workbook file
// names across platforms.
var forbiddenFilenameChars = regexp.MustCompile(`[\\/*?:"<>|\[\]]`)

// maxComponentLength bounds each file name component.
const maxComponentLength = 30

var (
	headerCells  = []any{"Matrícula", "Data", "Nome", "Turma", "Refeição", "Hora"}
	columnWidths = []float64{12, 12, 40, 25, 30, 10}
)

// Exporter writes session serving reports as .xlsx workbooks into a fixed
// output directory.
type Exporter struct {
	outputDir string
}

// New creates an Exporter writing workbooks into outputDir.
func New(outputDir string) *Exporter {
	return &Exporter{outputDir: outputDir}
}

// sanitizeComponent makes a file name component safe: colons become dots,
// forbidden characters are dropped and the result is truncated.
func sanitizeComponent(component string) string {
	component = strings.ReplaceAll(component, ":", ".")
	component = forbiddenFilenameChars.ReplaceAllString(component, "")
	if runes := []rune(component); len(runes) > maxComponentLength {
		component = string(runes[:maxComponentLength])
	}

	return strings.TrimSpace(component)
}

// Filename derives the workbook file name for a session.
func Filename(session *domain.Session) string {
	return fmt.Sprintf("%s %s %s.xlsx",
		sanitizeComponent(string(session.Meal)),
		sanitizeComponent(session.Date),
		sanitizeComponent(session.Time))
}

// ExportSession writes the served meals of a session to a workbook and
// returns its path. No file is left behind when writing fails.
func (e *Exporter) ExportSession(ctx context.Context,
	session *domain.Session,
	meals []domain.ServedMeal) (string, error) {
	if err := os.MkdirAll(e.outputDir, 0o750); err != nil {
		return "", fmt.Errorf("could not create output directory: %w", err)
	}

	path := filepath.Join(e.outputDir, Filename(session))
	if err := writeWorkbook(path, session, meals); err != nil {
		if removeErr := os.Remove(path); removeErr != nil && !os.IsNotExist(removeErr) {
			logger.Warn(ctx, "could not remove partial workbook", zap.Error(removeErr))
		}

		return "", err
	}

	logger.Info(ctx, "exported session workbook",
		zap.String("path", path),
		zap.Int("rows", len(meals)))

	return path, nil
}

func writeWorkbook(path string, session *domain.Session, meals []domain.ServedMeal) error {
	book := excelize.NewFile()
	defer func() {
		_ = book.Close()
	}()

	sheet := book.GetSheetName(0)

	headerStyle, err := book.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("could not create header style: %w", err)
	}

	if err := book.SetSheetRow(sheet, "A1", &headerCells); err != nil {
		return fmt.Errorf("could not write header row: %w", err)
	}
	if err := book.SetCellStyle(sheet, "A1", "F1", headerStyle); err != nil {
		return fmt.Errorf("could not style header row: %w", err)
	}

	for i, width := range columnWidths {
		column, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return fmt.Errorf("could not resolve column name: %w", err)
		}
		if err := book.SetColWidth(sheet, column, column, width); err != nil {
			return fmt.Errorf("could not set column width: %w", err)
		}
	}

	if err := book.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("could not freeze header row: %w", err)
	}

	for i, meal := range meals {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("could not resolve row cell: %w", err)
		}
		row := []any{meal.Badge, session.Date, meal.Name, meal.Groups, meal.Dish, meal.ServedAt}
		if err := book.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("could not write meal row: %w", err)
		}
	}

	if err := book.SaveAs(path); err != nil {
		return fmt.Errorf("could not save workbook: %w", err)
	}

	return nil
}
