package story

import (
	"fmt"
	"strings"

	"novel-maker-api/internal/domain/entity"
	"novel-maker-api/pkg/errors"
)

// BuildStoryboardPrompt 装配分镜生成提示词
// 前置条件：回次必须已有小说正文，否则返回前置条件错误。
// cutCount 由调用方给定，装配器本身不做范围钳制。
func BuildStoryboardPrompt(project *entity.Project, episode *entity.Episode, cutCount int) (string, error) {
	if !episode.HasNovelContent() {
		return "", errors.ErrNovelContentMissing
	}

	var b strings.Builder
	fmt.Fprintf(&b, "당신은 최고의 상업 웹툰 콘티 작가입니다. 반드시 %d컷을 모두 완성해주세요.\n\n", cutCount)

	b.WriteString("【절대 준수 사항】\n")
	fmt.Fprintf(&b, "1. 반드시 컷 1부터 컷 %d까지 빠짐없이 모든 컷을 완성\n", cutCount)
	b.WriteString("2. 중간에 절대 끊지 말고 마지막 컷까지 완료\n")
	b.WriteString("3. 각 컷마다 아래 형식을 정확히 준수\n")

	b.WriteString(`
【콘티 형식】
컷 [번호]: [크기/앵글]
배경: [배경 상세 묘사]
인물: [인물 동작/표정 상세 묘사]
대사: [인물명] "[대사 내용]"
생각: [인물명] ([생각 내용])
효과음: "[효과음]"
나레이션: "[나레이션 내용]"
`)

	b.WriteString("\n【작품 정보】\n")
	fmt.Fprintf(&b, "- 제목: %s\n", project.Title)
	fmt.Fprintf(&b, "- 회차: %d화 - %s\n", episode.Number, episode.Title)
	fmt.Fprintf(&b, "- 장르: %s\n", strings.Join(project.Genres, ", "))

	b.WriteString("\n【등장인물 상세 정보】\n")
	b.WriteString(storyboardCharactersSection(project, episode))

	b.WriteString("\n\n【세계관 배경 설정】\n")
	b.WriteString(storyboardWorldSettingsSection(project))

	b.WriteString("\n\n【등장인물의 아이템/무기/마법】\n")
	b.WriteString(storyboardItemsSection(project, episode))

	fmt.Fprintf(&b, "\n\n【소설 내용 (이 내용을 %d컷으로 완전히 변환)】\n", cutCount)
	b.WriteString(episode.NovelContent)

	b.WriteString("\n\n【콘티 작성 시작】\n")
	fmt.Fprintf(&b, "지금부터 위 소설 내용을 바탕으로 정확히 %d컷의 상업 콘티를 작성합니다.\n", cutCount)
	fmt.Fprintf(&b, "반드시 컷 1부터 시작해서 컷 %d까지 완성하세요:", cutCount)

	return b.String(), nil
}

// storyboardCharactersSection 分镜用的角色信息，只取画面表现需要的字段
func storyboardCharactersSection(project *entity.Project, episode *entity.Episode) string {
	if len(episode.AppearingCharacters) == 0 {
		return "등장인물 정보 없음"
	}
	chars := project.ResolveCharacters(episode.AppearingCharacters)
	if len(chars) == 0 {
		return "등장인물 정보 없음"
	}
	parts := make([]string, 0, len(chars))
	for _, c := range chars {
		var details []string
		if c.Name != "" {
			details = append(details, "이름: "+c.Name)
		}
		if c.Personality != "" {
			details = append(details, "성격: "+c.Personality)
		}
		if c.Appearance != "" {
			details = append(details, "외모: "+c.Appearance)
		}
		if c.Occupation != "" {
			details = append(details, "직업: "+c.Occupation)
		}
		parts = append(parts, strings.Join(details, ", "))
	}
	return strings.Join(parts, "\n")
}

// storyboardWorldSettingsSection 只取画面背景相关的设定类别
func storyboardWorldSettingsSection(project *entity.Project) string {
	if len(project.WorldSettings) == 0 {
		return "세계관 배경 정보 없음"
	}
	parts := make([]string, 0, len(project.WorldSettings))
	for _, ws := range project.WorldSettings {
		switch ws.Category {
		case entity.WorldSettingBackground,
			entity.WorldSettingRegion,
			entity.WorldSettingEra:
			parts = append(parts, fmt.Sprintf("%s: %s", ws.Title, ws.Content))
		}
	}
	return strings.Join(parts, "\n")
}

// storyboardItemsSection 只取武器、防具、魔法类物品
func storyboardItemsSection(project *entity.Project, episode *entity.Episode) string {
	if len(episode.AppearingCharacters) == 0 {
		return "등장인물 관련 아이템/마법 없음"
	}
	items := project.ItemsOwnedBy(episode.AppearingCharacters)
	parts := make([]string, 0, len(items))
	for _, it := range items {
		switch it.Type {
		case entity.ItemTypeWeapon, entity.ItemTypeArmor, entity.ItemTypeMagic:
		default:
			continue
		}
		ownerName := "미지"
		if owner := project.CharacterByID(it.Owner); owner != nil && owner.Name != "" {
			ownerName = owner.Name
		}
		parts = append(parts, fmt.Sprintf("%s: %s (%s) - %s", ownerName, it.Name, it.Type, it.Description))
	}
	if len(parts) == 0 {
		return "등장인물 관련 아이템/마법 없음"
	}
	return strings.Join(parts, "\n")
}
