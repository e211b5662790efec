package advisor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/agroclima/agroclima-api/internal/domain"
)

func TestBuildPromptFullRequest(t *testing.T) {
	req := domain.RecommendationRequest{
		CropName:         "maíz",
		FeasibilityLevel: "alta",
		FeasibilityScore: 0.9,
		Temperature:      25.0,
		SoilMoisture:     40.0,
		Precipitation:    120.0,
		LocationName:     "Valle",
	}

	want := "Para el cultivo maíz en Valle: Viabilidad alta (puntuación 0.9). " +
		"Condiciones: 25°C, humedad del suelo 40%, precipitación 120 mm. " +
		"¿Qué recomendaciones puedes dar al agricultor?"
	require.Equal(t, want, BuildPrompt(req))

	// Pure: same request, same string.
	require.Equal(t, BuildPrompt(req), BuildPrompt(req))
}

func TestBuildPromptAllFieldsAbsent(t *testing.T) {
	want := "Para el cultivo None en None: Viabilidad None (puntuación None). " +
		"Condiciones: None°C, humedad del suelo None%, precipitación None mm. " +
		"¿Qué recomendaciones puedes dar al agricultor?"
	require.Equal(t, want, BuildPrompt(domain.RecommendationRequest{}))
}

func TestRenderValueKinds(t *testing.T) {
	require.Equal(t, "None", render(nil))
	require.Equal(t, "texto", render("texto"))
	require.Equal(t, "25", render(25.0))
	require.Equal(t, "0.9", render(0.9))
	require.Equal(t, "true", render(true))
}
