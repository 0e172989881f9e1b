package dashboard

// Selections are the user's filter choices. Competitor is the dependent
// third selection; when empty, the top-ranked competitor is used.
type Selections struct {
	Country    string
	TireSize   string
	Competitor string
}

// Bar is one category/value pair of a bar chart.
type Bar struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// BarChart is a titled list of bars in display order.
type BarChart struct {
	Title string `json:"title"`
	Bars  []Bar  `json:"bars"`
}

// Slice is one segment of a pie chart.
type Slice struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// PieChart is a titled list of slices in display order.
type PieChart struct {
	Title  string  `json:"title"`
	Slices []Slice `json:"slices"`
}

// Metric is a single formatted scalar display.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// CompetitorRow is one row of the top-competitors table. Share is
// preformatted as a percentage string.
type CompetitorRow struct {
	Brand string  `json:"brand"`
	Sales float64 `json:"sales"`
	Share string  `json:"share"`
}

// Callout surfaces the leading competitor's brand and formatted share.
type Callout struct {
	Brand string `json:"brand"`
	Share string `json:"share"`
}

// View is everything the dashboard page shows for one set of selections.
// It is a pure function of the table and the selections; nothing here is
// cached between requests.
type View struct {
	Country  string `json:"country"`
	TireSize string `json:"tireSize"`

	Sales           BarChart        `json:"sales"`
	MarketShare     Metric          `json:"marketShare"`
	CompetitorSales BarChart        `json:"competitorSales"`
	BrandShare      PieChart        `json:"brandShare"`
	TopCompetitors  []CompetitorRow `json:"topCompetitors"`
	TopCompetitor   *Callout        `json:"topCompetitor"`
	Competitor      string          `json:"competitor,omitempty"`
	PatternSales    PieChart        `json:"patternSales"`
	Fitments        []string        `json:"fitments"`
}
