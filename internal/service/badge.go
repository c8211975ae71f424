package service

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"shopops/backend/internal/repository/postgres/employee"

	"github.com/jung-kurt/gofpdf/v2"
	qrcode "github.com/skip2/go-qrcode"
	"golang.org/x/image/draw"
)

const badgeDir = "statics/badges"

// BadgeQR generates the check-in QR PNG for one employee, caching it on disk.
func BadgeQR(employeeID string) (string, error) {
	path := filepath.Join(badgeDir, employeeID+".png")
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	if err := os.MkdirAll(badgeDir, os.ModePerm); err != nil {
		return "", err
	}

	if err := qrcode.WriteFile(employeeID, qrcode.Medium, 512, path); err != nil {
		return "", fmt.Errorf("generating badge qr: %w", err)
	}

	return path, nil
}

// scaleQR downsamples a generated QR image to the badge-sheet cell size.
func scaleQR(src image.Image, size int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst
}

// BadgeSheet lays every employee badge onto an A4 PDF, three per row, and
// returns the written file path.
func BadgeSheet(rows []employee.BadgeRow) (string, error) {
	if err := os.MkdirAll(badgeDir, os.ModePerm); err != nil {
		return "", err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetFont("Arial", "", 10)

	opts := gofpdf.ImageOptions{ImageType: "PNG"}

	for i, row := range rows {
		if i%9 == 0 {
			pdf.AddPage()
		}

		qr, err := qrcode.New(row.EmployeeID, qrcode.Medium)
		if err != nil {
			return "", fmt.Errorf("generating qr for %s: %w", row.EmployeeID, err)
		}

		var buf bytes.Buffer
		if err = png.Encode(&buf, scaleQR(qr.Image(512), 256)); err != nil {
			return "", fmt.Errorf("encoding qr for %s: %w", row.EmployeeID, err)
		}

		name := "qr-" + row.EmployeeID
		pdf.RegisterImageOptionsReader(name, opts, &buf)

		cell := i % 9
		x := 15.0 + float64(cell%3)*65.0
		y := 20.0 + float64(cell/3)*85.0

		pdf.ImageOptions(name, x, y, 50, 50, false, opts, 0, "")
		pdf.SetXY(x, y+52)
		pdf.CellFormat(50, 5, fmt.Sprintf("%s  %s", row.EmployeeID, row.FullName), "", 0, "C", false, 0, "")
	}

	path := filepath.Join(badgeDir, "badge_sheet.pdf")
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("writing badge sheet: %w", err)
	}

	return path, nil
}
