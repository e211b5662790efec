package advisor

import (
	"fmt"
	"strconv"

	"github.com/agroclima/agroclima-api/internal/domain"
)

// missingValue is what an absent field renders as inside the prompt.
const missingValue = "None"

const promptTemplate = "Para el cultivo %s en %s: Viabilidad %s (puntuación %s). " +
	"Condiciones: %s°C, humedad del suelo %s%%, precipitación %s mm. " +
	"¿Qué recomendaciones puedes dar al agricultor?"

// BuildPrompt maps a recommendation request to the fixed Spanish prompt.
// Pure: same request, same string.
func BuildPrompt(req domain.RecommendationRequest) string {
	return fmt.Sprintf(promptTemplate,
		render(req.CropName),
		render(req.LocationName),
		render(req.FeasibilityLevel),
		render(req.FeasibilityScore),
		render(req.Temperature),
		render(req.SoilMoisture),
		render(req.Precipitation),
	)
}

// render turns a permissively decoded JSON value into prompt text.
// JSON numbers arrive as float64 and render in shortest form (25, 0.9).
func render(v any) string {
	switch n := v.(type) {
	case nil:
		return missingValue
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'g', -1, 64)
	default:
		return fmt.Sprintf("%v", n)
	}
}
