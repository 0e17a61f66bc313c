package entity

import (
	"time"

	"github.com/google/uuid"
)

// ItemType 物品类型
type ItemType string

const (
	ItemTypeWeapon     ItemType = "weapon"
	ItemTypeArmor      ItemType = "armor"
	ItemTypeAccessory  ItemType = "accessory"
	ItemTypeConsumable ItemType = "consumable"
	ItemTypeMagic      ItemType = "magic"
	ItemTypeSkill      ItemType = "skill"
	ItemTypeOther      ItemType = "other"
)

// ItemRarity 物品稀有度
type ItemRarity string

const (
	ItemRarityCommon    ItemRarity = "common"
	ItemRarityUncommon  ItemRarity = "uncommon"
	ItemRarityRare      ItemRarity = "rare"
	ItemRarityEpic      ItemRarity = "epic"
	ItemRarityLegendary ItemRarity = "legendary"
)

// Item 物品/技能
// Owner 是指向角色的弱引用 ID，角色删除后不会级联清理
type Item struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Type        ItemType   `json:"type"`
	Description string     `json:"description"`
	Effects     string     `json:"effects,omitempty"`
	Rarity      ItemRarity `json:"rarity,omitempty"`
	Owner       string     `json:"owner,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// ItemDraft 创建物品时调用方提供的字段
type ItemDraft struct {
	Name        string
	Type        ItemType
	Description string
	Effects     string
	Rarity      ItemRarity
	Owner       string
}

// NewItem 创建新物品
func NewItem(draft ItemDraft) *Item {
	now := time.Now()
	return &Item{
		ID:          uuid.New().String(),
		Name:        draft.Name,
		Type:        draft.Type,
		Description: draft.Description,
		Effects:     draft.Effects,
		Rarity:      draft.Rarity,
		Owner:       draft.Owner,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// ItemPatch 物品部分更新，nil 字段保持原值
type ItemPatch struct {
	Name        *string
	Type        *ItemType
	Description *string
	Effects     *string
	Rarity      *ItemRarity
	Owner       *string
}

// Apply 将补丁合并到物品上
func (p *ItemPatch) Apply(it *Item) {
	if p.Name != nil {
		it.Name = *p.Name
	}
	if p.Type != nil {
		it.Type = *p.Type
	}
	if p.Description != nil {
		it.Description = *p.Description
	}
	if p.Effects != nil {
		it.Effects = *p.Effects
	}
	if p.Rarity != nil {
		it.Rarity = *p.Rarity
	}
	if p.Owner != nil {
		it.Owner = *p.Owner
	}
}
