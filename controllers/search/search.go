package controllers

import (
	"egrow/database"
	"egrow/models"
	courseModels "egrow/models/course"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Default relevance weights, used when the search_weights table has no row
// for a source.
const (
	defaultCourseWeight        = 0.9
	defaultResourceWeight      = 0.8
	defaultCommunityWeight     = 0.7
	defaultStaticPrimaryWeight = 0.95
)

const (
	maxResults      = 20
	perSourceLimit  = 10
	snippetMaxChars = 150
)

// SearchResult is the common shape all sources are mapped into
type SearchResult struct {
	Type        string  `json:"type"` // page, course, resource, community
	Title       string  `json:"title"`
	Description string  `json:"description"`
	URL         string  `json:"url"`
	Relevance   float64 `json:"relevance"`
}

// loadWeights reads the relevance tuning table, falling back to the built-in
// defaults for missing sources. static_base has no compiled default: absent a
// row, each registry entry keeps its own tuned BaseScore.
func loadWeights(db *gorm.DB) map[string]float64 {
	weights := map[string]float64{
		"course":         defaultCourseWeight,
		"resource":       defaultResourceWeight,
		"community":      defaultCommunityWeight,
		"static_primary": defaultStaticPrimaryWeight,
	}

	var rows []models.SearchWeight
	if err := db.Where("is_deleted = ?", false).Find(&rows).Error; err != nil {
		log.Printf("[SEARCH] Could not load search weights, using defaults: %v", err)
		return weights
	}
	for _, row := range rows {
		weights[row.Source] = row.Weight
	}
	return weights
}

// matchStaticPage reports whether the page matches the query: the whole query
// as a substring of title/description/tags, or any query token longer than
// two characters partially matching them.
func matchStaticPage(page StaticPage, query string, tokens []string) bool {
	haystack := strings.ToLower(page.Title + " " + page.Description + " " + strings.Join(page.Tags, " "))
	if strings.Contains(haystack, query) {
		return true
	}
	for _, token := range tokens {
		if strings.Contains(haystack, token) {
			return true
		}
	}
	return false
}

// truncate cuts s to max characters without splitting a multibyte rune
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}

// GlobalSearch merges the static page registry with bounded substring queries
// over courses, resources and community posts, ranked by a scalar relevance.
// A failing source contributes zero results instead of failing the search.
func GlobalSearch(c *fiber.Ctx) error {
	query := strings.ToLower(strings.TrimSpace(c.Query("q")))
	if query == "" {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"results": []SearchResult{}})
	}

	db := database.Database.Db
	weights := loadWeights(db)

	var tokens []string
	for _, token := range strings.Fields(query) {
		if len(token) > 2 {
			tokens = append(tokens, token)
		}
	}

	var results []SearchResult

	// 1. Static page registry
	for _, page := range staticPages {
		if !matchStaticPage(page, query, tokens) {
			continue
		}
		// A static_base row overrides the per-entry tuned score; the primary
		// keyword boost wins over both.
		score := page.BaseScore
		if base, ok := weights["static_base"]; ok {
			score = base
		}
		if strings.Contains(query, page.PrimaryKeyword) {
			score = weights["static_primary"]
		}
		results = append(results, SearchResult{
			Type:        "page",
			Title:       page.Title,
			Description: page.Description,
			URL:         page.Path,
			Relevance:   score,
		})
	}

	pattern := "%" + query + "%"

	// 2. Courses
	var courses []courseModels.Course
	err := db.Where("is_deleted = ? AND is_published = ?", false, true).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Limit(perSourceLimit).Find(&courses).Error
	if err != nil {
		log.Printf("[SEARCH] Course query failed: %v", err)
	} else {
		for _, course := range courses {
			results = append(results, SearchResult{
				Type:        "course",
				Title:       course.Title,
				Description: course.Description,
				URL:         "/curso/" + course.Slug,
				Relevance:   weights["course"],
			})
		}
	}

	// 3. Resources
	var resources []models.Resource
	err = db.Where("is_deleted = ? AND is_published = ?", false, true).
		Where("LOWER(title) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern).
		Limit(perSourceLimit).Find(&resources).Error
	if err != nil {
		log.Printf("[SEARCH] Resource query failed: %v", err)
	} else {
		for _, resource := range resources {
			results = append(results, SearchResult{
				Type:        "resource",
				Title:       resource.Title,
				Description: resource.Description,
				URL:         "/recursos/" + resource.Slug,
				Relevance:   weights["resource"],
			})
		}
	}

	// 4. Community posts
	var posts []models.CommunityPost
	err = db.Where("is_deleted = ?", false).
		Where("LOWER(title) LIKE ? OR LOWER(content) LIKE ?", pattern, pattern).
		Limit(perSourceLimit).Find(&posts).Error
	if err != nil {
		log.Printf("[SEARCH] Community query failed: %v", err)
	} else {
		for _, post := range posts {
			results = append(results, SearchResult{
				Type:        "community",
				Title:       post.Title,
				Description: truncate(post.Content, snippetMaxChars),
				URL:         fmt.Sprintf("/comunidad/%d", post.ID),
				Relevance:   weights["community"],
			})
		}
	}

	// Stable sort keeps concatenation order for ties
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Relevance > results[j].Relevance
	})
	if len(results) > maxResults {
		results = results[:maxResults]
	}
	if results == nil {
		results = []SearchResult{}
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"results": results})
}
