// Package render turns project records into the card and modal
// presentations the front end draws. Every function here is pure.
package render

import (
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"folio.dev/internal/models"
)

const (
	fullStar    = "⭐"
	halfStar    = "✨"
	maxStars    = 5
	defaultIcon = "📦"

	// StaggerMs is the reveal delay added per card position
	StaggerMs = 100
)

var icons = map[models.Category]string{
	models.CategoryWeb:        "🌐",
	models.CategoryMobile:     "📱",
	models.CategoryAI:         "🤖",
	models.CategoryGameDev:    "🎮",
	models.CategoryBackend:    "⚙️",
	models.CategoryFrontend:   "🎨",
	models.CategoryFullstack:  "💻",
	models.CategoryOpenSource: "📂",
}

var badges = map[models.Status]models.StatusBadge{
	models.StatusCompleted:     {Class: "completed", Text: "COMPLETED"},
	models.StatusInDevelopment: {Class: "in-progress", Text: "IN PROGRESS"},
	models.StatusOpenSource:    {Class: "opensource", Text: "OPEN SOURCE"},
}

// Cards renders projects in order
func Cards(projects []models.Project) []models.Card {
	cards := make([]models.Card, 0, len(projects))
	for i, p := range projects {
		cards = append(cards, Card(p, i))
	}
	return cards
}

// Card renders a single project at grid position index
func Card(p models.Project, index int) models.Card {
	return models.Card{
		ID:               p.ID,
		Title:            p.Title,
		Client:           p.Client,
		Year:             p.Year,
		Category:         p.Category,
		Icon:             Icon(p.Category),
		Featured:         p.Featured,
		Status:           Status(p.Status),
		Tags:             tags(p.Tags),
		Description:      p.Description,
		Stars:            Stars(p.Rating),
		Rating:           formatRating(p.Rating),
		Reviews:          p.Reviews,
		Price:            Price(p),
		GitHubURL:        p.GitHubURL,
		AnimationDelayMs: index * StaggerMs,
	}
}

// View renders a visible subset. total is the size of the full catalog.
func View(projects []models.Project, total int) models.View {
	return models.View{
		Cards: Cards(projects),
		Count: len(projects),
		Total: total,
		Empty: len(projects) == 0,
	}
}

// Detail renders the modal content for a project
func Detail(p models.Project) models.Detail {
	return models.Detail{
		ID:          p.ID,
		Title:       p.Title,
		Client:      p.Client,
		Year:        p.Year,
		Icon:        Icon(p.Category),
		Description: p.Description,
		Tags:        tags(p.Tags),
		Status:      p.Status,
		Badge:       Status(p.Status),
		Rating:      formatRating(p.Rating),
		Reviews:     p.Reviews,
		Category:    p.Category,
		Price:       Price(p),
		LiveURL:     p.LiveURL,
		GitHubURL:   p.GitHubURL,
	}
}

// Price renders the price block.
// Numeric zero is FREE, labels are shown verbatim, and a positive
// discount shows the original price, the rounded current price and a badge.
func Price(p models.Project) models.PriceDisplay {
	switch {
	case p.Price.IsFree():
		return models.PriceDisplay{Kind: models.PriceFree, Text: "FREE"}
	case !p.Price.IsNumeric():
		return models.PriceDisplay{Kind: models.PriceCustom, Text: p.Price.Label()}
	case p.Discount > 0:
		current, _ := p.DiscountedPrice()
		return models.PriceDisplay{
			Kind:     models.PriceDiscounted,
			Original: money(p.Price.Amount()),
			Current:  money(current),
			Badge:    "-" + strconv.Itoa(min(p.Discount, 100)) + "%",
		}
	default:
		amount := money(p.Price.Amount())
		return models.PriceDisplay{Kind: models.PriceRegular, Text: amount, Current: amount}
	}
}

// Status returns the header badge for a status, nil when unknown
func Status(s models.Status) *models.StatusBadge {
	b, ok := badges[s]
	if !ok {
		return nil
	}
	return &b
}

// Icon returns the glyph for a category
func Icon(c models.Category) string {
	if icon, ok := icons[c]; ok {
		return icon
	}
	return defaultIcon
}

// Stars renders floor(rating) full glyphs and a half glyph for a
// fractional rating, never more than five full stars.
func Stars(rating float64) models.Stars {
	if math.IsNaN(rating) || rating < 0 {
		rating = 0
	}

	floor := math.Floor(rating)
	full := int(min(floor, maxStars))
	half := rating != floor && full < maxStars

	glyphs := strings.Repeat(fullStar, full)
	if half {
		glyphs += halfStar
	}

	return models.Stars{Full: full, Half: half, Glyphs: glyphs}
}

func money(d decimal.Decimal) string {
	return "$" + d.String()
}

func formatRating(r float64) string {
	return strconv.FormatFloat(r, 'f', -1, 64)
}

func tags(in []string) []string {
	if in == nil {
		return []string{}
	}
	return append([]string(nil), in...)
}
