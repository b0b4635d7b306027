package entity

import (
	"time"

	"github.com/google/uuid"
)

const (
	ItemTypePrompt   = "prompt"
	ItemTypeTemplate = "template"
)

// ValidItemType reports whether t names a library item kind.
func ValidItemType(t string) bool {
	return t == ItemTypePrompt || t == ItemTypeTemplate
}

type Prompt struct {
	Id          uuid.UUID
	Title       string
	Description string
	Content     string
	Category    string
	Tags        []string
	CopyCount   int
	LikeCount   int
	Rating      float64
	IsFeatured  bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

func (p *Prompt) RefTitle() string    { return p.Title }
func (p *Prompt) RefCategory() string { return p.Category }

type Template struct {
	Id            uuid.UUID
	Title         string
	Description   string
	Content       string
	Category      string
	Type          string
	Tags          []string
	FileType      string
	FileSize      int64
	DownloadCount int
	LikeCount     int
	Rating        float64
	IsFeatured    bool
	CreatedAt     time.Time
	UpdatedAt     *time.Time
}

func (t *Template) RefTitle() string    { return t.Title }
func (t *Template) RefCategory() string { return t.Category }
