package krishi

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/krishigpt/krishi-go/pkg/core"
	"github.com/krishigpt/krishi-go/pkg/core/providers/gemini"
	"github.com/krishigpt/krishi-go/pkg/core/schema"
	"github.com/krishigpt/krishi-go/pkg/core/types"
)

var weatherSchema = gemini.MustConvertSchema(schema.Weather())

// GetWeather produces a current-conditions snapshot and a short daily
// forecast for the location. Unlike advisories there is no degraded
// fallback: an empty or unparsable response is an error.
func (c *Client) GetWeather(ctx context.Context, location string, locale Locale) (*types.WeatherForecast, error) {
	language := LanguageName(locale)

	resp, err := c.provider.Generate(ctx, &gemini.GenerateRequest{
		Model:          ModelDefault,
		Prompt:         buildWeatherPrompt(location, language),
		ResponseSchema: weatherSchema,
	})
	if err != nil {
		return nil, err
	}

	text := stripFences(resp.Text)
	if text == "" {
		return nil, core.NewEmptyResponseError("weather")
	}

	var forecast types.WeatherForecast
	if err := json.Unmarshal([]byte(text), &forecast); err != nil {
		return nil, core.NewMalformedOutputError("weather", err)
	}

	return &forecast, nil
}

func buildWeatherPrompt(location, language string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Provide the current weather and a 5-day forecast for %s. ", location)
	fmt.Fprintf(&b, "Write condition descriptions in %s. ", language)
	b.WriteString("The icon field must be one of exactly: ")
	for i, icon := range types.WeatherIcons {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(string(icon))
	}
	b.WriteString(". Map conditions to icons sensibly: clear skies are sunny, ")
	b.WriteString("light cloud cover is partly_cloudy, overcast is cloudy, any rain is rainy, ")
	b.WriteString("thunderstorms are stormy, snowfall is snowy, mist or haze is foggy. ")
	b.WriteString("Temperatures are in degrees Celsius.")
	return b.String()
}
