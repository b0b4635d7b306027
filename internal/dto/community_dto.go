package dto

import (
	"time"

	"grantflow-be/pkg/community"

	"github.com/google/uuid"
)

type FavoriteStatusResponse struct {
	ItemType    string    `json:"item_type"`
	ItemId      uuid.UUID `json:"item_id"`
	IsFavorited bool      `json:"is_favorited"`
}

type FavoritesResponse struct {
	Prompts   []*PromptResponse   `json:"prompts"`
	Templates []*TemplateResponse `json:"templates"`
}

type CreateCommentRequest struct {
	Content         string     `json:"content" validate:"required,max=5000"`
	ParentCommentId *uuid.UUID `json:"parent_comment_id"`
}

type CommentResponse struct {
	Id              uuid.UUID  `json:"id"`
	UserId          uuid.UUID  `json:"user_id"`
	AuthorName      string     `json:"author_name"`
	ItemType        string     `json:"item_type"`
	ItemId          uuid.UUID  `json:"item_id"`
	ParentCommentId *uuid.UUID `json:"parent_comment_id,omitempty"`
	Content         string     `json:"content"`
	LikeCount       int        `json:"like_count"`
	CreatedAt       time.Time  `json:"created_at"`
}

type LeaderboardEntryResponse struct {
	Rank                int       `json:"rank"`
	UserId              uuid.UUID `json:"user_id"`
	Name                string    `json:"name"`
	Institution         string    `json:"institution"`
	Points              int64     `json:"points"`
	Level               int       `json:"level"`
	Title               string    `json:"title"`
	PromptsCopied       int64     `json:"prompts_copied"`
	TemplatesDownloaded int64     `json:"templates_downloaded"`
	Comments            int64     `json:"comments"`
}

type LeaderboardResponse struct {
	Entries     []*LeaderboardEntryResponse `json:"entries"`
	RefreshedAt *time.Time                  `json:"refreshed_at"`
}

type CommunityStatsResponse struct {
	Prompts        int64  `json:"prompts"`
	Templates      int64  `json:"templates"`
	Downloads      int64  `json:"downloads"`
	DownloadsLabel string `json:"downloads_label"`
	Members        int64  `json:"members"`
	ActiveMembers  int64  `json:"active_members"`
}

type UpdateProfileRequest struct {
	Name         string `json:"name" validate:"required,max=255"`
	Email        string `json:"email" validate:"omitempty,email,max=255"`
	Institution  string `json:"institution" validate:"max=255"`
	Department   string `json:"department" validate:"max=255"`
	ResearchArea string `json:"research_area" validate:"max=255"`
	Website      string `json:"website" validate:"omitempty,url,max=255"`
	Bio          string `json:"bio" validate:"max=2000"`
}

type ProfileStats struct {
	StepsCompleted      int    `json:"steps_completed"`
	WorkflowsCompleted  int64  `json:"workflows_completed"`
	Favorites           int64  `json:"favorites"`
	Comments            int64  `json:"comments"`
	PromptsCopied       int64  `json:"prompts_copied"`
	TemplatesDownloaded int64  `json:"templates_downloaded"`
	Points              int64  `json:"points"`
	Level               int    `json:"level"`
	PointsToNextLevel   int64  `json:"points_to_next_level"`
	Title               string `json:"title"`
}

type ProfileResponse struct {
	UserId       uuid.UUID               `json:"user_id"`
	Name         string                  `json:"name"`
	Email        string                  `json:"email"`
	Institution  string                  `json:"institution"`
	Department   string                  `json:"department"`
	ResearchArea string                  `json:"research_area"`
	Website      string                  `json:"website"`
	Bio          string                  `json:"bio"`
	Stats        ProfileStats            `json:"stats"`
	Achievements []community.Achievement `json:"achievements"`
}
