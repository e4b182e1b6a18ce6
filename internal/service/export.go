package service

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"leave-planner-bot/internal/models"
	"leave-planner-bot/pkg/dates"
	"leave-planner-bot/pkg/workdays"

	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ExportService renders the planner state into an .xlsx report: one sheet
// per base period plus a summary sheet. It only consumes aggregation output,
// never mutates planner state.
type ExportService struct {
	exportDir string
}

func NewExportService(exportDir string) *ExportService {
	return &ExportService{exportDir: exportDir}
}

var fileNameSanitizer = regexp.MustCompile(`[^a-zA-Z0-9]`)

// GenerateFileName builds the export file name from the personal info and
// the current timestamp, with unsafe characters replaced.
func GenerateFileName(info models.PersonalInfo, now time.Time) string {
	first := info.FirstName
	if first == "" {
		first = "user"
	}
	last := info.LastName
	if last == "" {
		last = "report"
	}
	first = fileNameSanitizer.ReplaceAllString(first, "_")
	last = fileNameSanitizer.ReplaceAllString(last, "_")
	timestamp := strings.NewReplacer(":", "-", ".", "-").Replace(now.Format("2006-01-02T15:04:05"))
	return fmt.Sprintf("%s_%s_SMK_%s.xlsx", first, last, timestamp)
}

// ExportToExcel writes the report file and returns its path. The caller
// passes a snapshot of the state; nothing is re-read mid-export.
func (s *ExportService) ExportToExcel(
	info models.PersonalInfo,
	periods []models.Period,
	ranges []models.ColoredRange,
) (string, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close workbook")
		}
	}()

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return "", fmt.Errorf("failed to create style: %w", err)
	}

	sheetCount := 0
	for i, period := range periods {
		if !period.IsComplete() {
			continue
		}
		name := fmt.Sprintf("Rok %d", i+1)
		if _, err := f.NewSheet(name); err != nil {
			return "", fmt.Errorf("failed to create sheet %s: %w", name, err)
		}
		sheetCount++

		filtered := filterRangesForPeriod(ranges, period)
		total := workdays.WorkingDaysInRange(period.Start, period.End)
		if err := s.writeSheet(f, name, bold, info, total, filtered, periods); err != nil {
			return "", err
		}
	}

	// Summary sheet across all periods and ranges.
	if _, err := f.NewSheet("Suma"); err != nil {
		return "", fmt.Errorf("failed to create summary sheet: %w", err)
	}
	allWorkingDays := 0
	for _, p := range periods {
		if p.IsComplete() {
			allWorkingDays += workdays.WorkingDaysInRange(p.Start, p.End)
		}
	}
	if err := s.writeSheet(f, "Suma", bold, info, allWorkingDays, ranges, periods); err != nil {
		return "", err
	}

	if sheetCount > 0 {
		f.DeleteSheet("Sheet1")
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(s.exportDir, GenerateFileName(info, time.Now()))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}

func (s *ExportService) writeSheet(
	f *excelize.File,
	sheet string,
	boldStyle int,
	info models.PersonalInfo,
	totalWorkingDays int,
	ranges []models.ColoredRange,
	periods []models.Period,
) error {
	row := 1
	f.SetCellValue(sheet, cell("A", row), "Imię i nazwisko:")
	f.SetCellValue(sheet, cell("B", row), strings.TrimSpace(info.FirstName+" "+info.LastName))
	row++
	f.SetCellValue(sheet, cell("A", row), "Wygenerowano:")
	f.SetCellValue(sheet, cell("B", row), time.Now().Format("02.01.2006 15:04"))
	row += 2

	// Main stats: the base-period total and every legend type, zero-filled.
	f.SetCellValue(sheet, cell("A", row), "Liczba dni roboczych")
	f.SetCellValue(sheet, cell("B", row), totalWorkingDays)
	f.SetCellStyle(sheet, cell("A", row), cell("B", row), boldStyle)
	row++

	byType, _ := WorkingDaysByType(ranges)
	allTypes := make([]string, 0, len(models.LegendItems))
	for _, item := range models.LegendItems {
		if !item.Special {
			allTypes = append(allTypes, item.Label)
		}
	}
	sort.Strings(allTypes)
	for _, typ := range allTypes {
		f.SetCellValue(sheet, cell("A", row), typ)
		f.SetCellValue(sheet, cell("B", row), byType[typ])
		row++
	}
	row++

	// Range breakdown, chronological.
	headers := []string{"Zakres", "Typ", "Dni kalendarzowe", "Dni robocze"}
	for i, h := range headers {
		col := string(rune('A' + i))
		f.SetCellValue(sheet, cell(col, row), h)
	}
	f.SetCellStyle(sheet, cell("A", row), cell("D", row), boldStyle)
	row++

	for _, r := range SortRangesChronologically(ranges) {
		rangeText := r.Start
		if r.Start != r.End {
			rangeText = fmt.Sprintf("%s - %s", r.Start, r.End)
		}
		f.SetCellValue(sheet, cell("A", row), rangeText)
		f.SetCellValue(sheet, cell("B", row), r.Type)
		f.SetCellValue(sheet, cell("C", row), workdays.CalendarDaysInRange(r.Start, r.End))
		f.SetCellValue(sheet, cell("D", row), workdays.WorkingDaysInRange(r.Start, r.End))
		row++
	}

	s.writeDutyOverview(f, sheet, boldStyle, ranges, periods)

	f.SetColWidth(sheet, "A", "A", 26)
	f.SetColWidth(sheet, "B", "D", 18)
	f.SetColWidth(sheet, "F", "F", 10)
	f.SetColWidth(sheet, "G", "G", 15)
	return nil
}

// writeDutyOverview lists every duty (special) range date in columns F/G,
// labeled with the period it falls into.
func (s *ExportService) writeDutyOverview(
	f *excelize.File,
	sheet string,
	boldStyle int,
	ranges []models.ColoredRange,
	periods []models.Period,
) {
	var duties []models.ColoredRange
	for _, r := range ranges {
		if r.Special {
			duties = append(duties, r)
		}
	}
	if len(duties) == 0 {
		return
	}

	f.SetCellValue(sheet, "F1", "Rok")
	f.SetCellValue(sheet, "G1", "Dyżury")
	f.SetCellStyle(sheet, "F1", "G1", boldStyle)

	row := 2
	for _, duty := range SortRangesChronologically(duties) {
		label := "Poza zakresem"
		if date, ok := dates.Parse(duty.Start); ok {
			for i := range periods {
				if IsDateInBasePeriod(date, periods, i) {
					label = fmt.Sprintf("Rok %d", i+1)
					break
				}
			}
		}
		f.SetCellValue(sheet, cell("F", row), label)
		f.SetCellValue(sheet, cell("G", row), duty.Start)
		row++
	}
}

// filterRangesForPeriod keeps the ranges intersecting the period's interval.
func filterRangesForPeriod(ranges []models.ColoredRange, period models.Period) []models.ColoredRange {
	pStart, pEnd, ok := period.Bounds()
	if !ok {
		return nil
	}
	var filtered []models.ColoredRange
	for _, r := range ranges {
		rStart, sok := r.StartDate()
		rEnd, eok := r.EndDate()
		if !sok || !eok {
			continue
		}
		if !rStart.After(pEnd) && !rEnd.Before(pStart) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
