package dto

import (
	"novel-maker-api/internal/domain/entity"
)

// CreateItemRequest 创建物品请求
// Owner 是指向角色的弱引用 ID，不校验角色是否存在
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Type        string `json:"type" binding:"required,oneof=weapon armor accessory consumable magic skill other"`
	Description string `json:"description" binding:"required"`
	Effects     string `json:"effects,omitempty"`
	Rarity      string `json:"rarity,omitempty" binding:"omitempty,oneof=common uncommon rare epic legendary"`
	Owner       string `json:"owner,omitempty"`
}

// ToDraft 转换为物品草稿
func (r *CreateItemRequest) ToDraft() entity.ItemDraft {
	return entity.ItemDraft{
		Name:        r.Name,
		Type:        entity.ItemType(r.Type),
		Description: r.Description,
		Effects:     r.Effects,
		Rarity:      entity.ItemRarity(r.Rarity),
		Owner:       r.Owner,
	}
}

// UpdateItemRequest 更新物品请求，缺省字段保持原值
type UpdateItemRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Type        *string `json:"type,omitempty" binding:"omitempty,oneof=weapon armor accessory consumable magic skill other"`
	Description *string `json:"description,omitempty"`
	Effects     *string `json:"effects,omitempty"`
	Rarity      *string `json:"rarity,omitempty" binding:"omitempty,oneof=common uncommon rare epic legendary"`
	Owner       *string `json:"owner,omitempty"`
}

// ToPatch 转换为物品补丁
func (r *UpdateItemRequest) ToPatch() entity.ItemPatch {
	patch := entity.ItemPatch{
		Name:        r.Name,
		Description: r.Description,
		Effects:     r.Effects,
		Owner:       r.Owner,
	}
	if r.Type != nil {
		itemType := entity.ItemType(*r.Type)
		patch.Type = &itemType
	}
	if r.Rarity != nil {
		rarity := entity.ItemRarity(*r.Rarity)
		patch.Rarity = &rarity
	}
	return patch
}
