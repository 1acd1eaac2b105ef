package chart

// Kind is the chart type the shell should render.
type Kind string

const (
	KindLine Kind = "line"
	KindBar  Kind = "bar"
)

// Chart is chart-ready data plus the few options the shell cannot infer.
type Chart struct {
	Kind     Kind      `json:"type"`
	Title    string    `json:"title,omitempty"`
	Labels   []string  `json:"labels"`
	Datasets []Dataset `json:"datasets"`
	Stacked  bool      `json:"stacked,omitempty"`
}

type Dataset struct {
	Label           string    `json:"label"`
	Data            []float64 `json:"data"`
	BorderColor     string    `json:"borderColor,omitempty"`
	BackgroundColor string    `json:"backgroundColor,omitempty"`
	Stack           string    `json:"stack,omitempty"`
	Tension         float64   `json:"tension,omitempty"`
	BorderWidth     int       `json:"borderWidth,omitempty"`
	Fill            bool      `json:"fill,omitempty"`
}

// CountryTotal is a country's revenue summed over the window.
type CountryTotal struct {
	Country string  `json:"country"`
	Revenue float64 `json:"revenue"`
}

// Empty reports whether there is nothing to draw.
func (c Chart) Empty() bool {
	return len(c.Labels) == 0 || len(c.Datasets) == 0
}

func emptyChart(kind Kind, title string) Chart {
	return Chart{Kind: kind, Title: title, Labels: []string{}, Datasets: []Dataset{}}
}
