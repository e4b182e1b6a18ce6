package service

import (
	"path/filepath"
	"testing"
	"time"

	"leave-planner-bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestGenerateFileName(t *testing.T) {
	now := time.Date(2024, 5, 10, 14, 30, 45, 0, time.Local)

	name := GenerateFileName(models.PersonalInfo{FirstName: "Jan", LastName: "Kowalski"}, now)
	assert.Equal(t, "Jan_Kowalski_SMK_2024-05-10T14-30-45.xlsx", name)

	// Missing names fall back, unsafe characters are replaced.
	name = GenerateFileName(models.PersonalInfo{LastName: "Nowak-Wiśniewska"}, now)
	assert.Equal(t, "user_Nowak_Wi_niewska_SMK_2024-05-10T14-30-45.xlsx", name)
}

func TestExportToExcel(t *testing.T) {
	dir := t.TempDir()
	svc := NewExportService(dir)

	periods := []models.Period{
		{ChatID: testChatID, Position: 0, Start: "2024-01-01", End: "2024-06-30"},
	}
	duty, _ := models.FindLegendItem("Dyżur")
	ranges := []models.ColoredRange{
		paintedRange(day(2024, time.January, 8), day(2024, time.January, 12), "Urlop"),
		models.NewColoredRange(testChatID, day(2024, time.February, 10), day(2024, time.February, 10), duty, ""),
	}
	info := models.PersonalInfo{ChatID: testChatID, FirstName: "Jan", LastName: "Kowalski"}

	path, err := svc.ExportToExcel(info, periods, ranges)
	require.NoError(t, err)
	assert.Equal(t, dir, filepath.Dir(path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	sheets := f.GetSheetList()
	assert.Contains(t, sheets, "Rok 1")
	assert.Contains(t, sheets, "Suma")
	assert.NotContains(t, sheets, "Sheet1")

	owner, err := f.GetCellValue("Rok 1", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Jan Kowalski", owner)

	// Duty overview present on the sheet.
	dutyHeader, err := f.GetCellValue("Rok 1", "G1")
	require.NoError(t, err)
	assert.Equal(t, "Dyżury", dutyHeader)

	dutyYear, err := f.GetCellValue("Rok 1", "F2")
	require.NoError(t, err)
	assert.Equal(t, "Rok 1", dutyYear)
}
