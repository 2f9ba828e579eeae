// Package seed holds the fixed startup catalog. Categories never change at
// runtime; products are only inserted when the products table is empty.
package seed

import (
	"github.com/Digga-coder/POS-FRECUENZY/internal/model"

	"github.com/shopspring/decimal"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

// Categories is the fixed category list shown on the waiter grid.
var Categories = []model.Category{
	{ID: 1, Name: "Licores", ColorHex: "bg-red-600"},
	{ID: 2, Name: "Cervezas/Calimocho", ColorHex: "bg-amber-500"},
	{ID: 3, Name: "Cócteles", ColorHex: "bg-purple-600"},
	{ID: 4, Name: "Refrescos", ColorHex: "bg-blue-500"},
	{ID: 5, Name: "Chupitos", ColorHex: "bg-green-600"},
}

// Products is the initial catalog. The "Solo / Hielo" entry is a zero-price
// pseudo-mixer with effectively infinite stock so spirits can be served neat
// through the same pairing flow.
var Products = []model.Product{
	// Licores (require mixer)
	{ID: 101, CategoryID: 1, Name: "Beefeater", Price: dec("8.00"), Cost: dec("1.5"), StockCurrent: 50, RequiresMixer: true},
	{ID: 102, CategoryID: 1, Name: "Barceló", Price: dec("8.00"), Cost: dec("1.4"), StockCurrent: 40, RequiresMixer: true},
	{ID: 103, CategoryID: 1, Name: "Absolut", Price: dec("8.00"), Cost: dec("1.3"), StockCurrent: 35, RequiresMixer: true},

	// Cervezas
	{ID: 201, CategoryID: 2, Name: "Heineken", Price: dec("4.00"), Cost: dec("0.8"), StockCurrent: 100},
	{ID: 202, CategoryID: 2, Name: "Corona", Price: dec("4.50"), Cost: dec("0.9"), StockCurrent: 80},

	// Cócteles
	{ID: 301, CategoryID: 3, Name: "Mojito", Price: dec("10.00"), Cost: dec("2.0"), StockCurrent: 20},

	// Refrescos (mixers)
	{ID: 401, CategoryID: 4, Name: "Coca-Cola", Price: dec("3.00"), Cost: dec("0.3"), StockCurrent: 200, IsMixer: true},
	{ID: 402, CategoryID: 4, Name: "Tónica", Price: dec("3.00"), Cost: dec("0.3"), StockCurrent: 150, IsMixer: true},
	{ID: 403, CategoryID: 4, Name: "Fanta Limón", Price: dec("3.00"), Cost: dec("0.3"), StockCurrent: 120, IsMixer: true},
	{ID: 404, CategoryID: 4, Name: "Sprite", Price: dec("3.00"), Cost: dec("0.3"), StockCurrent: 100, IsMixer: true},

	// "No mixer" option, modeled as a mixer so the pairing flow stays uniform
	{ID: 999, CategoryID: 4, Name: "Solo / Hielo", Price: dec("0"), Cost: dec("0"), StockCurrent: 9999, IsMixer: true},

	// Chupitos
	{ID: 501, CategoryID: 5, Name: "Jagger", Price: dec("3.00"), Cost: dec("0.8"), StockCurrent: 30},
}
