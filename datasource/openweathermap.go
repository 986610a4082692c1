package datasource

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"weather-dashboard/aggregate"
	"weather-dashboard/models"
)

// OpenWeatherMapProvider implements both WeatherProvider and ForecastSource interfaces
type OpenWeatherMapProvider struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewOpenWeatherMapProvider creates a new OpenWeatherMap provider
func NewOpenWeatherMapProvider(apiKey string) *OpenWeatherMapProvider {
	return &OpenWeatherMapProvider{
		apiKey:  apiKey,
		baseURL: "https://api.openweathermap.org/data/2.5",
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name returns the provider name
func (p *OpenWeatherMapProvider) Name() string {
	return "OpenWeatherMap"
}

// get performs a single GET against an endpoint and returns the raw body.
// Non-2xx responses become *APIError; transport failures (including the
// 10-second timeout) are wrapped and returned verbatim, never retried.
func (p *OpenWeatherMapProvider) get(ctx context.Context, endpoint, city string, units models.UnitSystem) ([]byte, error) {
	params := url.Values{}
	params.Add("q", city)
	params.Add("appid", p.apiKey)
	params.Add("units", string(units))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	return body, nil
}

// GetWeather fetches current conditions for a city
func (p *OpenWeatherMapProvider) GetWeather(ctx context.Context, city string, units models.UnitSystem) (models.CurrentConditions, error) {
	body, err := p.get(ctx, "/weather", city, units)
	if err != nil {
		return models.CurrentConditions{}, err
	}
	return DecodeCurrent(body)
}

// FetchForecast fetches the 3-hour-step forecast for a city and reduces it
// to at most `days` daily summaries
func (p *OpenWeatherMapProvider) FetchForecast(ctx context.Context, city string, units models.UnitSystem, days int) ([]models.DailySummary, error) {
	body, err := p.get(ctx, "/forecast", city, units)
	if err != nil {
		return nil, err
	}

	samples, err := DecodeForecast(body)
	if err != nil {
		return nil, err
	}

	return aggregate.DailySummaries(samples, days), nil
}

// currentEnvelope mirrors the /weather response. Every nested object and
// numeric field is optional: the upstream payload shape is not guaranteed
// field by field, so the projection must tolerate any of them being absent.
type currentEnvelope struct {
	Name string `json:"name"`
	Main *struct {
		Temp      *float64 `json:"temp"`
		FeelsLike *float64 `json:"feels_like"`
		Humidity  *float64 `json:"humidity"`
		Pressure  *float64 `json:"pressure"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind *struct {
		Speed *float64 `json:"speed"`
	} `json:"wind"`
	Clouds *struct {
		All *float64 `json:"all"`
	} `json:"clouds"`
	Rain *struct {
		OneHour *float64 `json:"1h"`
	} `json:"rain"`
	Sys *struct {
		Country string `json:"country"`
		Sunrise *int64 `json:"sunrise"`
		Sunset  *int64 `json:"sunset"`
	} `json:"sys"`
	Dt *int64 `json:"dt"`
}

// DecodeCurrent projects a raw /weather body into CurrentConditions. It is
// separate from the network call so it can be tested against literal
// response fixtures. Only a body that fails to parse as the envelope at all
// yields an error; missing optional fields map to nil (or 0 for rainfall).
func DecodeCurrent(body []byte) (models.CurrentConditions, error) {
	var env currentEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return models.CurrentConditions{}, &MalformedResponseError{Err: err}
	}

	cond := models.CurrentConditions{
		City:       env.Name,
		ObservedAt: env.Dt,
	}

	if env.Main != nil {
		cond.Temp = env.Main.Temp
		cond.FeelsLike = env.Main.FeelsLike
		cond.Humidity = env.Main.Humidity
		cond.Pressure = env.Main.Pressure
	}
	if len(env.Weather) > 0 {
		cond.Description = env.Weather[0].Description
		cond.Icon = env.Weather[0].Icon
	}
	if env.Wind != nil {
		cond.WindSpeed = env.Wind.Speed
	}
	if env.Clouds != nil {
		cond.Clouds = env.Clouds.All
	}
	if env.Rain != nil && env.Rain.OneHour != nil {
		cond.Rain1h = *env.Rain.OneHour
	}
	if env.Sys != nil {
		cond.Country = env.Sys.Country
		cond.Sunrise = env.Sys.Sunrise
		cond.Sunset = env.Sys.Sunset
	}

	return cond, nil
}

// forecastEnvelope mirrors the /forecast response list.
type forecastEnvelope struct {
	List []struct {
		Dt   *int64 `json:"dt"`
		Main *struct {
			Temp *float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
			Icon        string `json:"icon"`
		} `json:"weather"`
		Rain *struct {
			ThreeHours *float64 `json:"3h"`
		} `json:"rain"`
	} `json:"list"`
}

// DecodeForecast projects a raw /forecast body into forecast samples. A
// well-formed body with an empty or absent list yields an empty slice, not
// an error; the caller decides how to present "no forecast available".
func DecodeForecast(body []byte) ([]models.ForecastSample, error) {
	var env forecastEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &MalformedResponseError{Err: err}
	}

	samples := make([]models.ForecastSample, 0, len(env.List))
	for _, item := range env.List {
		sample := models.ForecastSample{Timestamp: item.Dt}
		if item.Main != nil {
			sample.Temp = item.Main.Temp
		}
		if len(item.Weather) > 0 {
			sample.Description = item.Weather[0].Description
			sample.Icon = item.Weather[0].Icon
		}
		if item.Rain != nil && item.Rain.ThreeHours != nil {
			sample.Rain3h = *item.Rain.ThreeHours
		}
		samples = append(samples, sample)
	}

	return samples, nil
}

// Verify that the provider implements both interfaces
var (
	_ WeatherProvider = (*OpenWeatherMapProvider)(nil)
	_ ForecastSource  = (*OpenWeatherMapProvider)(nil)
)
