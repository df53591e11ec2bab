package models

// Category is the enumerated tag a project is filed under
type Category string

const (
	CategoryAll        Category = "all"
	CategoryWeb        Category = "web"
	CategoryMobile     Category = "mobile"
	CategoryAI         Category = "ai"
	CategoryGameDev    Category = "gamedev"
	CategoryBackend    Category = "backend"
	CategoryFrontend   Category = "frontend"
	CategoryFullstack  Category = "fullstack"
	CategoryOpenSource Category = "opensource"
)

// Status is the delivery state of a project
type Status string

const (
	StatusCompleted     Status = "completed"
	StatusInDevelopment Status = "in-development"
	StatusOpenSource    Status = "opensource"
)

// Project represents a portfolio project
type Project struct {
	ID          int      `json:"id" validate:"required,gt=0"`
	Title       string   `json:"title" validate:"required"`
	Category    Category `json:"category" validate:"required"`
	Tags        []string `json:"tags"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Featured    bool     `json:"featured"`
	Price       Price    `json:"price"`
	Discount    int      `json:"discount" validate:"gte=0,lte=100"`
	Rating      float64  `json:"rating" validate:"gte=0,lte=5"`
	Reviews     int      `json:"reviews" validate:"gte=0"`
	Status      Status   `json:"status"`
	Year        int      `json:"year"`
	Client      string   `json:"client"`
	GitHubURL   string   `json:"github_url,omitempty"`
	LiveURL     string   `json:"live_url,omitempty"`
}

// ProjectList wraps the array of projects
type ProjectList struct {
	Projects []Project `json:"projects" validate:"dive"`
}

// Clone returns a copy that shares no slices with p
func (p Project) Clone() Project {
	if p.Tags != nil {
		p.Tags = append([]string(nil), p.Tags...)
	}
	return p
}
