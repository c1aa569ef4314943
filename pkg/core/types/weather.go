package types

// WeatherIcon is the closed icon vocabulary of the weather contract.
// Any other string coming back from the model is a contract violation.
type WeatherIcon string

const (
	IconSunny        WeatherIcon = "sunny"
	IconPartlyCloudy WeatherIcon = "partly_cloudy"
	IconCloudy       WeatherIcon = "cloudy"
	IconRainy        WeatherIcon = "rainy"
	IconStormy       WeatherIcon = "stormy"
	IconSnowy        WeatherIcon = "snowy"
	IconFoggy        WeatherIcon = "foggy"
)

// WeatherIcons lists every valid icon, in prompt order.
var WeatherIcons = []WeatherIcon{
	IconSunny, IconPartlyCloudy, IconCloudy, IconRainy, IconStormy, IconSnowy, IconFoggy,
}

// Valid reports whether the icon is one of the seven contract values.
func (i WeatherIcon) Valid() bool {
	for _, v := range WeatherIcons {
		if i == v {
			return true
		}
	}
	return false
}

// WeatherForecast is the validated structured output of the weather
// generator.
type WeatherForecast struct {
	Current CurrentWeather  `json:"current"`
	Daily   []DailyForecast `json:"daily"`
}

// CurrentWeather is the present condition at the requested location.
type CurrentWeather struct {
	Temperature float64     `json:"temperature"`
	Condition   string      `json:"condition"`
	Icon        WeatherIcon `json:"icon"`
}

// DailyForecast is one day of the multi-day outlook.
type DailyForecast struct {
	Day       string      `json:"day"`
	HighTemp  float64     `json:"high_temp"`
	LowTemp   float64     `json:"low_temp"`
	Condition string      `json:"condition"`
	Icon      WeatherIcon `json:"icon"`
}
