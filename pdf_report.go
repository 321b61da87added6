package main

import (
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

// PDF report of a loan schedule and a savings projection, for callers who
// want something printable rather than JSON.

const pdfContentWidth = 190.0

// PDFReport builds one report document
type PDFReport struct {
	pdf *fpdf.Fpdf
}

// NewPDFReport creates an empty A4 portrait report
func NewPDFReport() *PDFReport {
	r := &PDFReport{pdf: fpdf.New("P", "mm", "A4", "")}
	r.pdf.SetMargins(10, 10, 10)
	return r
}

func (r *PDFReport) title(text string) {
	r.pdf.SetFont("Arial", "B", 20)
	r.pdf.CellFormat(pdfContentWidth, 12, text, "", 1, "C", false, 0, "")
	r.pdf.SetFont("Arial", "I", 9)
	r.pdf.CellFormat(pdfContentWidth, 6,
		fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "C", false, 0, "")
	r.pdf.Ln(6)
}

func (r *PDFReport) sectionHeader(text string) {
	r.pdf.SetFillColor(245, 247, 250)
	r.pdf.SetFont("Arial", "B", 12)
	r.pdf.CellFormat(pdfContentWidth, 8, text, "1", 1, "C", true, 0, "")
	r.pdf.SetFont("Arial", "", 10)
}

func (r *PDFReport) row(cells []string, widths []float64) {
	for i, cell := range cells {
		r.pdf.CellFormat(widths[i], 6, cell, "1", 0, "R", false, 0, "")
	}
	r.pdf.Ln(-1)
}

// AddLoanSchedule adds the yearly amortization schedule to the report
func (r *PDFReport) AddLoanSchedule(input LoanInput, result LoanResult) {
	r.pdf.AddPage()
	r.title("Loan Amortization Schedule")

	r.sectionHeader(fmt.Sprintf("%s at %s over %d years  -  payment %s",
		FormatMoney(input.Principal), FormatPercent(input.AnnualRate),
		input.TermYears, FormatMoneyFull(RoundCents(result.Payment))))
	r.pdf.Ln(2)

	widths := []float64{25, 41, 41, 41, 42}
	r.pdf.SetFont("Arial", "B", 10)
	r.row([]string{"Year", "Paid", "Principal", "Interest", "Balance"}, widths)

	r.pdf.SetFont("Arial", "", 9)
	for i, rec := range result.Schedule {
		r.row([]string{
			fmt.Sprintf("%d", i+1),
			FormatMoneyFull(RoundWhole(rec.Withdrawal)),
			FormatMoneyFull(RoundWhole(rec.Contribution)),
			FormatMoneyFull(RoundWhole(rec.Interest)),
			FormatMoneyFull(RoundWhole(rec.Balance)),
		}, widths)
	}

	r.pdf.Ln(4)
	r.pdf.SetFont("Arial", "B", 10)
	r.pdf.CellFormat(pdfContentWidth, 6,
		fmt.Sprintf("Total paid %s, of which interest %s",
			FormatMoneyFull(RoundWhole(result.TotalPaid)),
			FormatMoneyFull(RoundWhole(result.TotalInterest))),
		"", 1, "L", false, 0, "")
}

// AddSavingsProjection adds the yearly savings projection to the report
func (r *PDFReport) AddSavingsProjection(input SavingsInput, result SavingsResult) {
	r.pdf.AddPage()
	r.title("Savings Projection")

	r.sectionHeader(fmt.Sprintf("Start %s, %s/month, %s return, %s fees",
		FormatMoney(input.InitialBalance), FormatMoneyFull(input.MonthlyContribution),
		FormatPercent(input.AnnualReturnRate), FormatPercent(input.FeeRate)))
	r.pdf.Ln(2)

	widths := []float64{25, 55, 55, 55}
	r.pdf.SetFont("Arial", "B", 10)
	r.row([]string{"Year", "Contributed", "Earned", "Balance"}, widths)

	r.pdf.SetFont("Arial", "", 9)
	for i, rec := range result.Timeline {
		r.row([]string{
			fmt.Sprintf("%d", i+1),
			FormatMoneyFull(RoundWhole(rec.CumulativeContribution)),
			FormatMoneyFull(RoundWhole(rec.CumulativeInterest)),
			FormatMoneyFull(RoundWhole(rec.Balance)),
		}, widths)
	}
}

// Save writes the report to disk
func (r *PDFReport) Save(filename string) error {
	return r.pdf.OutputFileAndClose(filename)
}
