package infra

// pdf.go — receipt generation using go-pdf/fpdf.
// Renders an A7-size thermal-style receipt for a stored order:
//   - venue header
//   - order id (short) and timestamp
//   - one row per cart line, mixer lines indented under their spirit
//   - bold total and the payment method tag

import (
	"bytes"
	"fmt"

	"github.com/Digga-coder/POS-FRECUENZY/internal/model"

	"github.com/go-pdf/fpdf"
)

var paymentLabels = map[string]string{
	model.PaymentCash:         "Efectivo / Tarjeta",
	model.PaymentTicketNormal: "Ticket Entrada",
	model.PaymentTicketVIP:    "Ticket VIP",
	model.PaymentInvitation:   "Invitacion Staff",
}

// truncateLabel shortens a line to max runes. Byte slicing would bisect the
// accented characters all over the catalog.
func truncateLabel(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}

// GenerateReceiptPDF renders an order as a PDF receipt and returns the bytes.
func GenerateReceiptPDF(order *model.Order) ([]byte, error) {
	// A7 ≈ 74mm × 105mm — close to thermal receipt paper
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "mm",
		Size:           fpdf.SizeType{Wd: 74, Ht: 105},
	})
	pdf.SetMargins(4, 4, 4)
	pdf.AddPage()

	pageW, _ := pdf.GetPageSize()
	contentW := pageW - 8

	pdf.SetFont("Helvetica", "B", 13)
	pdf.CellFormat(contentW, 7, "FRECUENZY", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 8)
	pdf.CellFormat(contentW, 5, "Comprobante de consumo", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 8)
	pdf.CellFormat(contentW, 5, fmt.Sprintf("Pedido %s", order.ID.String()[:8]), "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, order.CreatedAt.Format("02/01/2006  15:04"), "", 0, "L", false, 0, "")
	pdf.CellFormat(0, 4, order.WaiterName, "", 1, "R", false, 0, "")
	pdf.Ln(2)

	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	col1 := contentW * 0.68
	col2 := contentW * 0.32

	pdf.SetFont("Helvetica", "B", 7)
	pdf.CellFormat(col1, 5, "Producto", "B", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 5, "Importe", "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	for _, item := range order.Items {
		pdf.CellFormat(col1, 5, truncateLabel(item.Product.Name, 26), "", 0, "L", false, 0, "")
		pdf.CellFormat(col2, 5, item.Product.Price.StringFixed(2)+" EUR", "", 1, "R", false, 0, "")
		if item.Mixer != nil {
			pdf.CellFormat(col1, 4, truncateLabel("+ "+item.Mixer.Name, 26), "", 0, "L", false, 0, "")
			pdf.CellFormat(col2, 4, item.Mixer.Price.StringFixed(2)+" EUR", "", 1, "R", false, 0, "")
		}
	}

	pdf.Ln(2)
	pdf.Line(4, pdf.GetY(), pageW-4, pdf.GetY())
	pdf.Ln(2)

	pdf.SetFont("Helvetica", "B", 9)
	pdf.CellFormat(col1, 6, "TOTAL:", "", 0, "L", false, 0, "")
	pdf.CellFormat(col2, 6, order.TotalAmount.StringFixed(2)+" EUR", "", 1, "R", false, 0, "")

	label := paymentLabels[order.PaymentMethod]
	if label == "" {
		label = order.PaymentMethod
	}
	pdf.SetFont("Helvetica", "", 7)
	pdf.CellFormat(contentW, 4, "Pago: "+label, "", 1, "L", false, 0, "")

	pdf.Ln(3)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(contentW, 4, "Gracias por tu visita", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf: render receipt: %w", err)
	}
	return buf.Bytes(), nil
}
