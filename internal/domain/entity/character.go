package entity

import (
	"time"

	"github.com/google/uuid"
)

// MBTIOptions 可选的 16 个 MBTI 类型
var MBTIOptions = []string{
	"INTJ", "INTP", "ENTJ", "ENTP",
	"INFJ", "INFP", "ENFJ", "ENFP",
	"ISTJ", "ISFJ", "ESTJ", "ESFJ",
	"ISTP", "ISFP", "ESTP", "ESFP",
}

// BloodTypeOptions 可选的血型
var BloodTypeOptions = []string{"A", "B", "AB", "O"}

// Character 登场角色，除名字外均为可选
type Character struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Age         string    `json:"age,omitempty"`
	Occupation  string    `json:"occupation,omitempty"`
	Personality string    `json:"personality,omitempty"`
	Appearance  string    `json:"appearance,omitempty"`
	Family      string    `json:"family,omitempty"`
	MBTI        string    `json:"mbti,omitempty"`
	BloodType   string    `json:"bloodType,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	Image       string    `json:"image,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CharacterDraft 创建角色时调用方提供的字段
type CharacterDraft struct {
	Name        string
	Age         string
	Occupation  string
	Personality string
	Appearance  string
	Family      string
	MBTI        string
	BloodType   string
	Notes       string
	Image       string
}

// NewCharacter 创建新角色
func NewCharacter(draft CharacterDraft) *Character {
	now := time.Now()
	return &Character{
		ID:          uuid.New().String(),
		Name:        draft.Name,
		Age:         draft.Age,
		Occupation:  draft.Occupation,
		Personality: draft.Personality,
		Appearance:  draft.Appearance,
		Family:      draft.Family,
		MBTI:        draft.MBTI,
		BloodType:   draft.BloodType,
		Notes:       draft.Notes,
		Image:       draft.Image,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// CharacterPatch 角色部分更新，nil 字段保持原值
type CharacterPatch struct {
	Name        *string
	Age         *string
	Occupation  *string
	Personality *string
	Appearance  *string
	Family      *string
	MBTI        *string
	BloodType   *string
	Notes       *string
	Image       *string
}

// Apply 将补丁合并到角色上
func (p *CharacterPatch) Apply(c *Character) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Age != nil {
		c.Age = *p.Age
	}
	if p.Occupation != nil {
		c.Occupation = *p.Occupation
	}
	if p.Personality != nil {
		c.Personality = *p.Personality
	}
	if p.Appearance != nil {
		c.Appearance = *p.Appearance
	}
	if p.Family != nil {
		c.Family = *p.Family
	}
	if p.MBTI != nil {
		c.MBTI = *p.MBTI
	}
	if p.BloodType != nil {
		c.BloodType = *p.BloodType
	}
	if p.Notes != nil {
		c.Notes = *p.Notes
	}
	if p.Image != nil {
		c.Image = *p.Image
	}
}
