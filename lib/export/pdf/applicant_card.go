package pdfexport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
	applicantapimodels "recruitment-desk-backend/models/api/applicant"
)

const (
	fontName     = "Arial"
	fontFile     = "Arial.ttf"
	fontBoldFile = "Arial Bold.ttf"
)

type cardLine struct {
	label string
	value string
}

// GenerateApplicantCard карточка оценки кандидата. Без файлов шрифтов в fontDir
// используется встроенный Helvetica (только латиница)
func GenerateApplicantCard(view applicantapimodels.ApplicantView, fontDir string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateApplicantCard panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", fontDir)
	family, tr := setupFont(pdf, fontDir)
	pdf.AddPage()
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.SetFont(family, "B", 16)
	pdf.CellFormat(0, 12, tr("Applicant evaluation card"), "", 1, "L", false, 0, "")
	pdf.SetFont(family, "", 11)
	pdf.CellFormat(0, 6, tr(fmt.Sprintf("#%d, generated %s", view.ID, time.Now().UTC().Format("02.01.2006"))), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	for _, line := range cardLines(view) {
		pdf.SetFont(family, "B", 11)
		pdf.CellFormat(55, 8, tr(line.label), "1", 0, "L", false, 0, "")
		pdf.SetFont(family, "", 11)
		pdf.CellFormat(0, 8, tr(line.value), "1", 1, "L", false, 0, "")
	}
	if view.BelowThreshold {
		pdf.Ln(4)
		pdf.SetTextColor(200, 0, 0)
		pdf.CellFormat(0, 8, tr("Current stage rating is below the pass threshold"), "", 1, "L", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	if view.CoverLetter != "" {
		pdf.Ln(4)
		pdf.SetFont(family, "B", 11)
		pdf.CellFormat(0, 8, tr("Cover letter"), "", 1, "L", false, 0, "")
		pdf.SetFont(family, "", 10)
		pdf.MultiCell(0, 5, tr(view.CoverLetter), "", "L", false)
	}

	buf := new(bytes.Buffer)
	err = pdf.Output(buf)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func setupFont(pdf *fpdf.Fpdf, fontDir string) (family string, tr func(string) string) {
	if fontDir != "" && fileExists(filepath.Join(fontDir, fontFile)) && fileExists(filepath.Join(fontDir, fontBoldFile)) {
		pdf.AddUTF8Font(fontName, "", fontFile)
		pdf.AddUTF8Font(fontName, "B", fontBoldFile)
		return fontName, func(s string) string { return s }
	}
	return "Helvetica", pdf.UnicodeTranslatorFromDescriptor("")
}

func cardLines(view applicantapimodels.ApplicantView) []cardLine {
	return []cardLine{
		{"Name", view.FullName},
		{"Email", view.Email},
		{"Department", view.DepartmentName},
		{"Job position", view.JobPosition},
		{"Date applied", formatDate(&view.DateApplied)},
		{"Status", string(view.Status)},
		{"Stage", string(view.Stage)},
		{"Test rating", formatRating(view.TestRating)},
		{"Interview rating", formatRating(view.InterviewRating)},
		{"Total score", formatRating(view.TotalScore)},
		{"Date processed", formatDate(view.DateProcessed)},
	}
}

func formatRating(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprint(*v)
}

func formatDate(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format("02.01.2006")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
