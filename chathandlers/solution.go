package chathandlers

import (
	"bytes"
	"fmt"
	"net/http"

	"otto/catalog"
	"otto/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// GetCurrentSolution handles GET /api/solutions/current.
func GetCurrentSolution(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sol := chatStore.CurrentSolution()
	if sol == nil {
		utils.RespondWithError(w, http.StatusNotFound, "No solution yet")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, sol)
}

// SolutionPDF handles GET /api/solutions/current/pdf: a printable summary of
// the current solution with a QR code per item linking to its store page.
func SolutionPDF(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	sol := chatStore.CurrentSolution()
	if sol == nil {
		utils.RespondWithError(w, http.StatusNotFound, "No solution yet")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, sol.Title)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, sol.Description, "", "L", false)
	pdf.Ln(6)

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	for i, item := range sol.Items {
		pdf.SetFont("Arial", "B", 12)
		pdf.Cell(0, 8, fmt.Sprintf("%s: %s", item.Role, item.Product.Name))
		pdf.Ln(7)

		pdf.SetFont("Arial", "", 11)
		pdf.Cell(0, 6, fmt.Sprintf("%s - %s %.0f - delivery in %d days",
			item.Product.Store, item.Product.Currency, item.Product.Price, item.Product.DeliveryDays))

		if item.Product.StoreURL != "" {
			qrPNG, err := qrcode.Encode(item.Product.StoreURL, qrcode.Medium, 256)
			if err == nil {
				name := fmt.Sprintf("qr-%d", i)
				pdf.RegisterImageOptionsReader(name, imageOpts, bytes.NewReader(qrPNG))
				pdf.ImageOptions(name, 170, pdf.GetY()-5, 20, 20, false, imageOpts, 0, "")
			}
		}
		pdf.Ln(16)
	}

	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 10, fmt.Sprintf("Total: %s %.0f", sol.Currency, sol.TotalPrice))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=solution-"+sol.ID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// ProductQR handles GET /api/cart/qr/:productid: a PNG QR code linking to
// the product's store page.
func ProductQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	product, ok := catalog.ProductByID(ps.ByName("productid"))
	if !ok {
		utils.RespondWithError(w, http.StatusNotFound, "Product not found")
		return
	}

	qrPNG, err := qrcode.Encode(product.StoreURL, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(qrPNG)
}
