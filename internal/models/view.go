package models

// PriceKind tells the front end which price layout to use
type PriceKind string

const (
	PriceFree       PriceKind = "free"
	PriceCustom     PriceKind = "custom"
	PriceDiscounted PriceKind = "discounted"
	PriceRegular    PriceKind = "regular"
)

// PriceDisplay is the rendered price block of a card
type PriceDisplay struct {
	Kind     PriceKind `json:"kind"`
	Text     string    `json:"text,omitempty"`
	Original string    `json:"original,omitempty"`
	Current  string    `json:"current,omitempty"`
	Badge    string    `json:"badge,omitempty"`
}

// StatusBadge is the label shown in a card header
type StatusBadge struct {
	Class string `json:"class"`
	Text  string `json:"text"`
}

// Stars is a rating rendered as glyphs
type Stars struct {
	Full   int    `json:"full"`
	Half   bool   `json:"half"`
	Glyphs string `json:"glyphs"`
}

// Card is the presentation of one project in the grid
type Card struct {
	ID               int          `json:"id"`
	Title            string       `json:"title"`
	Client           string       `json:"client"`
	Year             int          `json:"year"`
	Category         Category     `json:"category"`
	Icon             string       `json:"icon"`
	Featured         bool         `json:"featured"`
	Status           *StatusBadge `json:"status,omitempty"`
	Tags             []string     `json:"tags"`
	Description      string       `json:"description"`
	Stars            Stars        `json:"stars"`
	Rating           string       `json:"rating"`
	Reviews          int          `json:"reviews"`
	Price            PriceDisplay `json:"price"`
	GitHubURL        string       `json:"github_url,omitempty"`
	AnimationDelayMs int          `json:"animation_delay_ms"`
}

// Detail is the content of the project modal
type Detail struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Client      string       `json:"client"`
	Year        int          `json:"year"`
	Icon        string       `json:"icon"`
	Description string       `json:"description"`
	Tags        []string     `json:"tags"`
	Status      Status       `json:"status"`
	Badge       *StatusBadge `json:"badge,omitempty"`
	Rating      string       `json:"rating"`
	Reviews     int          `json:"reviews"`
	Category    Category     `json:"category"`
	Price       PriceDisplay `json:"price"`
	LiveURL     string       `json:"live_url,omitempty"`
	GitHubURL   string       `json:"github_url,omitempty"`
}

// View is one full render of the catalog grid
type View struct {
	Category string  `json:"category"`
	Query    string  `json:"query"`
	Sort     string  `json:"sort"`
	Cards    []Card  `json:"cards"`
	Count    int     `json:"count"`
	Total    int     `json:"total"`
	Empty    bool    `json:"empty"`
	Detail   *Detail `json:"detail,omitempty"`
}

// CategoryCount is a filter button with the number of matching projects
type CategoryCount struct {
	Category Category `json:"category"`
	Icon     string   `json:"icon"`
	Count    int      `json:"count"`
}
