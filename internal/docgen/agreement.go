package docgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/Danielrod221/agriwater-live-app/internal/models"
	"github.com/Danielrod221/agriwater-live-app/internal/utils"
	"github.com/go-pdf/fpdf"
)

// Generator renders lease agreements as PDFs under its output directory.
type Generator struct {
	outputDir string
}

func NewGenerator(outputDir string) *Generator {
	return &Generator{outputDir: filepath.Join(outputDir, "agreements")}
}

// LeaseAgreement renders the agreement for a settled listing and returns
// the path of the written file. The path is the handle the e-signature
// dispatch needs, so a nil error guarantees a non-empty path to a file that
// exists.
func (g *Generator) LeaseAgreement(listing *models.Listing, seller, buyer *models.User) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", err
	}

	totalCents := utils.TotalCents(listing.PriceCentsAF, listing.AmountMilliAF)

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Temporary Water Lease Agreement", "", 1, "C", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	today := time.Now().Format("January 2, 2006")
	pdf.MultiCell(0, 5, fmt.Sprintf("This agreement is made on %s between the following parties:", today), "", "L", false)
	pdf.Ln(5)
	pdf.MultiCell(0, 5, fmt.Sprintf("SELLER: %s (%s)", seller.Name, seller.Email), "", "L", false)
	pdf.MultiCell(0, 5, fmt.Sprintf("BUYER: %s (%s)", buyer.Name, buyer.Email), "", "L", false)
	pdf.Ln(10)

	pdf.MultiCell(0, 5, fmt.Sprintf(
		"The Seller agrees to lease and the Buyer agrees to receive the following water allocation for the duration of: %s.",
		listing.LeaseDuration), "", "L", false)
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(40, 10, "Water District:", "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, " "+listing.WaterDistrict, "1", 1, "", false, 0, "")
	pdf.CellFormat(40, 10, "Amount:", "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, fmt.Sprintf(" %g Acre-Feet", utils.MilliAFToAF(listing.AmountMilliAF)), "1", 1, "", false, 0, "")
	pdf.CellFormat(40, 10, "Total Price:", "1", 0, "", false, 0, "")
	pdf.CellFormat(0, 10, " "+formatUSD(totalCents), "1", 1, "", false, 0, "")
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 12)
	pdf.MultiCell(0, 5,
		"This agreement serves as a formal request to the specified water district to make the necessary ledger adjustments for this temporary transfer.",
		"", "L", false)
	pdf.Ln(20)

	pdf.CellFormat(90, 10, "Seller Signature:", "", 0, "", false, 0, "")
	pdf.CellFormat(90, 10, "Buyer Signature:", "", 1, "", false, 0, "")
	pdf.Ln(10)
	pdf.CellFormat(90, 10, "_________________________", "", 0, "", false, 0, "")
	pdf.CellFormat(90, 10, "_________________________", "", 0, "", false, 0, "")

	path := filepath.Join(g.outputDir, fmt.Sprintf("lease_%d_%d.pdf", listing.ID, time.Now().Unix()))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", err
	}
	return path, nil
}

// formatUSD renders integer cents as $1,234.56.
func formatUSD(cents int64) string {
	dollars := cents / 100
	rem := cents % 100

	digits := fmt.Sprintf("%d", dollars)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	return fmt.Sprintf("$%s.%02d", strings.Join(groups, ","), rem)
}
