package service

import (
	"fmt"
	"os"
	"path/filepath"

	"shopops/backend/internal/repository/postgres/checkin"

	"github.com/xuri/excelize/v2"
)

const exportDir = "statics/exports"

// ExportCheckIns writes one work day's check-ins to an xlsx file and returns
// its path.
func ExportCheckIns(rows []checkin.ExportRow, workDay string) (string, error) {
	if err := os.MkdirAll(exportDir, os.ModePerm); err != nil {
		return "", err
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	headers := []string{"Employee ID", "Full Name", "Come Time", "Late Status", "Penalty %", "Exemption", "Meal Allowance", "Shop WiFi"}
	for i, header := range headers {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheet, cell, header)
	}

	rowNum := 2
	for _, entry := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), entry.EmployeeID)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), entry.Fullname)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), entry.ComeTime)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), entry.LateStatus)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), entry.Penalty)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), entry.Exempted)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", rowNum), entry.MealAllowance)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", rowNum), entry.TrustedWifi)
		rowNum++
	}

	fileName := filepath.Join(exportDir, fmt.Sprintf("checkins-%s.xlsx", workDay))
	if err := f.SaveAs(fileName); err != nil {
		return "", fmt.Errorf("error saving file: %w", err)
	}

	return fileName, nil
}
