package dto

import (
	"novel-maker-api/internal/domain/entity"
)

// CreateCharacterRequest 创建角色请求
type CreateCharacterRequest struct {
	Name        string `json:"name" binding:"required,max=255"`
	Age         string `json:"age,omitempty" binding:"omitempty,max=50"`
	Occupation  string `json:"occupation,omitempty" binding:"omitempty,max=255"`
	Personality string `json:"personality,omitempty"`
	Appearance  string `json:"appearance,omitempty"`
	Family      string `json:"family,omitempty"`
	MBTI        string `json:"mbti,omitempty" binding:"omitempty,oneof=INTJ INTP ENTJ ENTP INFJ INFP ENFJ ENFP ISTJ ISFJ ESTJ ESFJ ISTP ISFP ESTP ESFP"`
	BloodType   string `json:"bloodType,omitempty" binding:"omitempty,oneof=A B AB O"`
	Notes       string `json:"notes,omitempty"`
	Image       string `json:"image,omitempty"`
}

// ToDraft 转换为角色草稿
func (r *CreateCharacterRequest) ToDraft() entity.CharacterDraft {
	return entity.CharacterDraft{
		Name:        r.Name,
		Age:         r.Age,
		Occupation:  r.Occupation,
		Personality: r.Personality,
		Appearance:  r.Appearance,
		Family:      r.Family,
		MBTI:        r.MBTI,
		BloodType:   r.BloodType,
		Notes:       r.Notes,
		Image:       r.Image,
	}
}

// UpdateCharacterRequest 更新角色请求，缺省字段保持原值
type UpdateCharacterRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,max=255"`
	Age         *string `json:"age,omitempty" binding:"omitempty,max=50"`
	Occupation  *string `json:"occupation,omitempty" binding:"omitempty,max=255"`
	Personality *string `json:"personality,omitempty"`
	Appearance  *string `json:"appearance,omitempty"`
	Family      *string `json:"family,omitempty"`
	MBTI        *string `json:"mbti,omitempty" binding:"omitempty,oneof=INTJ INTP ENTJ ENTP INFJ INFP ENFJ ENFP ISTJ ISFJ ESTJ ESFJ ISTP ISFP ESTP ESFP"`
	BloodType   *string `json:"bloodType,omitempty" binding:"omitempty,oneof=A B AB O"`
	Notes       *string `json:"notes,omitempty"`
	Image       *string `json:"image,omitempty"`
}

// ToPatch 转换为角色补丁
func (r *UpdateCharacterRequest) ToPatch() entity.CharacterPatch {
	return entity.CharacterPatch{
		Name:        r.Name,
		Age:         r.Age,
		Occupation:  r.Occupation,
		Personality: r.Personality,
		Appearance:  r.Appearance,
		Family:      r.Family,
		MBTI:        r.MBTI,
		BloodType:   r.BloodType,
		Notes:       r.Notes,
		Image:       r.Image,
	}
}
