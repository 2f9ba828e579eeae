package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Digga-coder/POS-FRECUENZY/internal/infra"

	"github.com/rs/zerolog/log"
)

// StockAlertWorker emails the operator when a sale leaves a product at or
// below its minimum stock. Alerts are advisory: a delivery failure never
// touches the sales path.
type StockAlertWorker struct {
	mailer     *infra.Mailer
	alertEmail string
}

func NewStockAlertWorker(mailer *infra.Mailer, alertEmail string) *StockAlertWorker {
	return &StockAlertWorker{mailer: mailer, alertEmail: alertEmail}
}

func (w *StockAlertWorker) Handle(_ context.Context, payload json.RawMessage) error {
	var p LowStockPayload
	if err := json.Unmarshal(payload, &p); err != nil {
		return fmt.Errorf("stock_alert: decode payload: %w", err)
	}

	if w.alertEmail == "" {
		log.Debug().Str("product", p.ProductName).Msg("stock alert skipped: no ALERT_EMAIL configured")
		return nil
	}

	subject := fmt.Sprintf("Stock bajo: %s (%d uds)", p.ProductName, p.StockCurrent)
	body := fmt.Sprintf(
		"El producto %q quedó en %d unidades (mínimo %d).\nReponer antes de la próxima sesión.",
		p.ProductName, p.StockCurrent, p.StockMinimum,
	)
	if err := w.mailer.SendAlert(w.alertEmail, subject, body); err != nil {
		return fmt.Errorf("stock_alert: send email: %w", err)
	}

	log.Info().Str("product", p.ProductName).Int("stock", p.StockCurrent).Msg("low stock alert sent")
	return nil
}
