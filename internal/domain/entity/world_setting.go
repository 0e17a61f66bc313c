package entity

import (
	"time"

	"github.com/google/uuid"
)

// WorldSettingCategory 世界观设定分类
type WorldSettingCategory string

const (
	WorldSettingBackground WorldSettingCategory = "background"
	WorldSettingEra        WorldSettingCategory = "era"
	WorldSettingRegion     WorldSettingCategory = "region"
	WorldSettingCulture    WorldSettingCategory = "culture"
	WorldSettingPolitics   WorldSettingCategory = "politics"
	WorldSettingEconomy    WorldSettingCategory = "economy"
	WorldSettingOther      WorldSettingCategory = "other"
)

// WorldSetting 世界观设定条目
type WorldSetting struct {
	ID        string               `json:"id"`
	Category  WorldSettingCategory `json:"category"`
	Title     string               `json:"title"`
	Content   string               `json:"content"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

// WorldSettingDraft 创建世界观设定时调用方提供的字段
type WorldSettingDraft struct {
	Category WorldSettingCategory
	Title    string
	Content  string
}

// NewWorldSetting 创建新世界观设定
func NewWorldSetting(draft WorldSettingDraft) *WorldSetting {
	now := time.Now()
	return &WorldSetting{
		ID:        uuid.New().String(),
		Category:  draft.Category,
		Title:     draft.Title,
		Content:   draft.Content,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// WorldSettingPatch 世界观设定部分更新，nil 字段保持原值
type WorldSettingPatch struct {
	Category *WorldSettingCategory
	Title    *string
	Content  *string
}

// Apply 将补丁合并到世界观设定上
func (p *WorldSettingPatch) Apply(ws *WorldSetting) {
	if p.Category != nil {
		ws.Category = *p.Category
	}
	if p.Title != nil {
		ws.Title = *p.Title
	}
	if p.Content != nil {
		ws.Content = *p.Content
	}
}
