package specification

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AllCategories is the client's sentinel for "no category filter".
const AllCategories = "All"

// ByCategory filters by exact category. Empty and "All" match everything.
type ByCategory struct {
	Category string
}

func (s ByCategory) Apply(db *gorm.DB) *gorm.DB {
	if s.Category == "" || s.Category == AllCategories {
		return db
	}
	return db.Where("category = ?", s.Category)
}

// ByTemplateType filters templates by type. Empty and "All" match everything.
type ByTemplateType struct {
	Type string
}

func (s ByTemplateType) Apply(db *gorm.DB) *gorm.DB {
	if s.Type == "" || s.Type == AllCategories {
		return db
	}
	return db.Where("type = ?", s.Type)
}

// SearchText matches the query case-insensitively against any of Columns.
// A blank query matches everything.
type SearchText struct {
	Query   string
	Columns []string
}

func (s SearchText) Apply(db *gorm.DB) *gorm.DB {
	query := strings.TrimSpace(s.Query)
	if query == "" || len(s.Columns) == 0 {
		return db
	}
	pattern := "%" + query + "%"

	clauses := make([]string, len(s.Columns))
	args := make([]interface{}, len(s.Columns))
	for i, col := range s.Columns {
		clauses[i] = col + " ILIKE ?"
		args[i] = pattern
	}
	return db.Where(strings.Join(clauses, " OR "), args...)
}

// PromptSearch covers the prompt library search box.
func PromptSearch(query string) SearchText {
	return SearchText{Query: query, Columns: []string{"title", "description", "tags::text"}}
}

// TemplateSearch covers the template gallery search box.
func TemplateSearch(query string) SearchText {
	return SearchText{Query: query, Columns: []string{"title", "description"}}
}

type FeaturedFirst struct{}

func (s FeaturedFirst) Apply(db *gorm.DB) *gorm.DB {
	return db.Order("is_featured DESC").Order("created_at DESC")
}

// ByItem selects rows attached to one library item.
type ByItem struct {
	ItemType string
	ItemID   uuid.UUID
}

func (s ByItem) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("item_type = ? AND item_id = ?", s.ItemType, s.ItemID)
}

type ByItemType struct {
	ItemType string
}

func (s ByItemType) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("item_type = ?", s.ItemType)
}

// ByTitle matches an exact title. Seeding uses it to stay idempotent.
type ByTitle struct {
	Title string
}

func (s ByTitle) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("title = ?", s.Title)
}
