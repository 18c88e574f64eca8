package weatherapi

// Wire types for the WeatherAPI.com /v1/forecast.json payload. Field names
// on the wire are snake_case; the json tags carry the full mapping so the
// decoder needs no per-field logic. Optional fields (provider coverage
// varies by location) are pointers so absence survives a decode/encode
// round trip.

// Location identifies the place the forecast was resolved for.
type Location struct {
	Name           string  `json:"name"`
	Region         string  `json:"region"`
	Country        string  `json:"country"`
	Lat            float64 `json:"lat"`
	Lon            float64 `json:"lon"`
	TzID           string  `json:"tz_id"`
	LocaltimeEpoch int64   `json:"localtime_epoch"`
	Localtime      string  `json:"localtime"`
}

// Condition is the free-text weather description with the provider's own
// icon reference and numeric code. Classification ignores everything but
// the text.
type Condition struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
	Code int    `json:"code"`
}

// Current is the conditions snapshot taken at fetch time.
type Current struct {
	LastUpdatedEpoch int64     `json:"last_updated_epoch"`
	LastUpdated      string    `json:"last_updated"`
	TempC            float64   `json:"temp_c"`
	TempF            float64   `json:"temp_f"`
	IsDay            int       `json:"is_day"`
	Condition        Condition `json:"condition"`
	WindMph          float64   `json:"wind_mph"`
	WindKph          float64   `json:"wind_kph"`
	WindDegree       int       `json:"wind_degree"`
	WindDir          string    `json:"wind_dir"`
	PressureMb       float64   `json:"pressure_mb"`
	PressureIn       float64   `json:"pressure_in"`
	PrecipMm         float64   `json:"precip_mm"`
	PrecipIn         float64   `json:"precip_in"`
	Humidity         int       `json:"humidity"`
	Cloud            int       `json:"cloud"`
	FeelslikeC       float64   `json:"feelslike_c"`
	FeelslikeF       float64   `json:"feelslike_f"`
	WindchillC       *float64  `json:"windchill_c,omitempty"`
	WindchillF       *float64  `json:"windchill_f,omitempty"`
	HeatindexC       *float64  `json:"heatindex_c,omitempty"`
	HeatindexF       *float64  `json:"heatindex_f,omitempty"`
	DewpointC        *float64  `json:"dewpoint_c,omitempty"`
	DewpointF        *float64  `json:"dewpoint_f,omitempty"`
	VisKm            float64   `json:"vis_km"`
	VisMiles         float64   `json:"vis_miles"`
	UV               float64   `json:"uv"`
	GustMph          float64   `json:"gust_mph"`
	GustKph          float64   `json:"gust_kph"`

	// Solar radiation extras, absent for most locations.
	ShortRad *float64 `json:"short_rad,omitempty"`
	DiffRad  *float64 `json:"diff_rad,omitempty"`
	DNI      *float64 `json:"dni,omitempty"`
	GTI      *float64 `json:"gti,omitempty"`
}

// HourForecast is one hour's readings within a forecast day.
type HourForecast struct {
	TimeEpoch    int64     `json:"time_epoch"`
	Time         string    `json:"time"`
	TempC        float64   `json:"temp_c"`
	TempF        float64   `json:"temp_f"`
	IsDay        int       `json:"is_day"`
	Condition    Condition `json:"condition"`
	WindMph      float64   `json:"wind_mph"`
	WindKph      float64   `json:"wind_kph"`
	WindDegree   int       `json:"wind_degree"`
	WindDir      string    `json:"wind_dir"`
	PressureMb   float64   `json:"pressure_mb"`
	PressureIn   float64   `json:"pressure_in"`
	PrecipMm     float64   `json:"precip_mm"`
	PrecipIn     float64   `json:"precip_in"`
	Humidity     int       `json:"humidity"`
	Cloud        int       `json:"cloud"`
	FeelslikeC   float64   `json:"feelslike_c"`
	FeelslikeF   float64   `json:"feelslike_f"`
	WindchillC   *float64  `json:"windchill_c,omitempty"`
	WindchillF   *float64  `json:"windchill_f,omitempty"`
	HeatindexC   *float64  `json:"heatindex_c,omitempty"`
	HeatindexF   *float64  `json:"heatindex_f,omitempty"`
	DewpointC    *float64  `json:"dewpoint_c,omitempty"`
	DewpointF    *float64  `json:"dewpoint_f,omitempty"`
	WillItRain   *int      `json:"will_it_rain,omitempty"`
	ChanceOfRain *int      `json:"chance_of_rain,omitempty"`
	WillItSnow   *int      `json:"will_it_snow,omitempty"`
	ChanceOfSnow *int      `json:"chance_of_snow,omitempty"`
	VisKm        float64   `json:"vis_km"`
	VisMiles     float64   `json:"vis_miles"`
	GustMph      float64   `json:"gust_mph"`
	GustKph      float64   `json:"gust_kph"`
	UV           float64   `json:"uv"`
	ShortRad     *float64  `json:"short_rad,omitempty"`
	DiffRad      *float64  `json:"diff_rad,omitempty"`
	DNI          *float64  `json:"dni,omitempty"`
	GTI          *float64  `json:"gti,omitempty"`
}

// Astro holds the sun/moon data for one day. The "is up" fields are
// integer flags on the wire, kept as ints.
type Astro struct {
	Sunrise          string `json:"sunrise"`
	Sunset           string `json:"sunset"`
	Moonrise         string `json:"moonrise"`
	Moonset          string `json:"moonset"`
	MoonPhase        string `json:"moon_phase"`
	MoonIllumination int    `json:"moon_illumination"`
	IsMoonUp         int    `json:"is_moon_up"`
	IsSunUp          int    `json:"is_sun_up"`
}

// DayForecast is the daily aggregate block of a forecast day.
type DayForecast struct {
	MaxtempC          float64   `json:"maxtemp_c"`
	MaxtempF          float64   `json:"maxtemp_f"`
	MintempC          float64   `json:"mintemp_c"`
	MintempF          float64   `json:"mintemp_f"`
	AvgtempC          float64   `json:"avgtemp_c"`
	AvgtempF          float64   `json:"avgtemp_f"`
	MaxwindMph        float64   `json:"maxwind_mph"`
	MaxwindKph        float64   `json:"maxwind_kph"`
	TotalprecipMm     float64   `json:"totalprecip_mm"`
	TotalprecipIn     float64   `json:"totalprecip_in"`
	TotalsnowCm       float64   `json:"totalsnow_cm"`
	AvgvisKm          float64   `json:"avgvis_km"`
	AvgvisMiles       float64   `json:"avgvis_miles"`
	Avghumidity       float64   `json:"avghumidity"`
	DailyWillItRain   int       `json:"daily_will_it_rain"`
	DailyChanceOfRain int       `json:"daily_chance_of_rain"`
	DailyWillItSnow   int       `json:"daily_will_it_snow"`
	DailyChanceOfSnow int       `json:"daily_chance_of_snow"`
	Condition         Condition `json:"condition"`
	UV                float64   `json:"uv"`
}

// ForecastDay is one calendar day: aggregates, astronomy and the ordered
// hourly breakdown. The provider sends 24 hours for a full day but
// consumers must not rely on that.
type ForecastDay struct {
	Date      string         `json:"date"`
	DateEpoch int64          `json:"date_epoch"`
	Day       DayForecast    `json:"day"`
	Astro     Astro          `json:"astro"`
	Hour      []HourForecast `json:"hour"`
}

// Forecast wraps the day list. The wire key is "forecastday"; this is the
// one deliberate rename in the whole model.
type Forecast struct {
	Days []ForecastDay `json:"forecastday"`
}

// Snapshot is one fully decoded forecast response. It replaces any prior
// snapshot wholesale and is never mutated after decode.
type Snapshot struct {
	Location Location  `json:"location"`
	Current  Current   `json:"current"`
	Forecast *Forecast `json:"forecast,omitempty"`
}
