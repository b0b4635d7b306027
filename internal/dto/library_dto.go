package dto

import (
	"time"

	"github.com/google/uuid"
)

type ListPromptsRequest struct {
	Search   string `query:"search"`
	Category string `query:"category"`
}

type PromptResponse struct {
	Id          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Content     string     `json:"content"`
	Category    string     `json:"category"`
	Tags        []string   `json:"tags"`
	CopyCount   int        `json:"copy_count"`
	LikeCount   int        `json:"like_count"`
	Rating      float64    `json:"rating"`
	IsFeatured  bool       `json:"is_featured"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type ShowPromptResponse struct {
	PromptResponse
	ContentHtml string `json:"content_html"`
}

type CopyPromptResponse struct {
	Id        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	CopyCount int       `json:"copy_count"`
}

type ListTemplatesRequest struct {
	Search   string `query:"search"`
	Category string `query:"category"`
	Type     string `query:"type"`
}

type TemplateResponse struct {
	Id            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Description   string     `json:"description"`
	Category      string     `json:"category"`
	Type          string     `json:"type"`
	Tags          []string   `json:"tags"`
	FileType      string     `json:"file_type"`
	FileSize      int64      `json:"file_size"`
	FileSizeLabel string     `json:"file_size_label"`
	DownloadCount int        `json:"download_count"`
	LikeCount     int        `json:"like_count"`
	Rating        float64    `json:"rating"`
	IsFeatured    bool       `json:"is_featured"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type ShowTemplateResponse struct {
	TemplateResponse
	Content     string `json:"content"`
	PreviewHtml string `json:"preview_html"`
}

// TemplateDownload is served as an attachment, not JSON.
type TemplateDownload struct {
	FileName string
	Content  []byte
}
