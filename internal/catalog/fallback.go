package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/communica-av/quoter-backend/pkg/enums"
)

// Fallback returns the compiled-in catalog used whenever the items table is
// unreachable or empty. Prices default to zero until the commercial team loads
// real ones.
func Fallback() []Item {
	zero := decimal.Zero
	return []Item{
		{ItemKey: "MIC_WIRELESS", Category: "Microfonía", Label: "Micrófono inalámbrico", Emoji: "🎤", Unit: "pieza", QuantityMode: enums.QuantityModeUnit, BasePrice: zero},
		{ItemKey: "PA_151_400", Category: "Audio", Label: "PA para 151–400", Emoji: "🔊", Unit: "evento", QuantityMode: enums.QuantityModeUnit, BasePrice: zero},
		{ItemKey: "LIGHT_AMBIENT", Category: "Iluminación", Label: "Ambiente premium", Emoji: "💡", Unit: "evento", QuantityMode: enums.QuantityModeUnit, BasePrice: zero},
		{ItemKey: "LED_M2", Category: "Pantallas", Label: "Pantalla LED (m²)", Emoji: "📺", Unit: "m2", QuantityMode: enums.QuantityModeArea, BasePrice: zero},
		{ItemKey: "CAM_1", Category: "Cámaras", Label: "Cámara 1", Emoji: "📹", Unit: "evento", QuantityMode: enums.QuantityModeUnit, BasePrice: zero},
		{ItemKey: "CAM_ROBOT_1", Category: "Cámaras", Label: "Cámara robótica", Emoji: "🤖", Unit: "evento", QuantityMode: enums.QuantityModeUnit, BasePrice: zero},
		{ItemKey: "OP_VIDEO", Category: "Staff", Label: "Operador video/LED", Emoji: "🧑‍💻", Unit: "dia", QuantityMode: enums.QuantityModeUnit, BasePrice: zero},
	}
}
