package infra

import (
	"testing"
	"unicode/utf8"

	"github.com/Digga-coder/POS-FRECUENZY/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateLabelKeepsRunesIntact(t *testing.T) {
	// Accented name longer than the column: the cut must land on a rune
	// boundary, never mid-encoding.
	long := "Barceló Añejo Reserva Especial Limón"
	out := truncateLabel(long, 26)
	assert.True(t, utf8.ValidString(out))
	assert.Equal(t, 26, len([]rune(out)))
	assert.Equal(t, "…", string([]rune(out)[25]))

	// Short names pass through untouched
	assert.Equal(t, "Fanta Limón", truncateLabel("Fanta Limón", 26))
}

func TestGenerateReceiptPDFWithAccentedNames(t *testing.T) {
	mixer := model.ProductSnapshot{ID: 403, Name: "Fanta Limón", Price: decimal.RequireFromString("3.00")}
	order := &model.Order{
		ID:            uuid.New(),
		WaiterID:      uuid.New(),
		WaiterName:    "Juan Pérez",
		TotalAmount:   decimal.RequireFromString("11.00"),
		PaymentMethod: model.PaymentCash,
		Items: model.OrderItems{
			{
				UniqueID:   uuid.NewString(),
				Product:    model.ProductSnapshot{ID: 101, Name: "Barceló Añejo Reserva Especial Limón", Price: decimal.RequireFromString("8.00")},
				Mixer:      &mixer,
				Quantity:   1,
				TotalPrice: decimal.RequireFromString("11.00"),
			},
		},
	}

	pdf, err := GenerateReceiptPDF(order)
	require.NoError(t, err)
	assert.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
}
