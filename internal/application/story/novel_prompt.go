package story

import (
	"fmt"
	"sort"
	"strings"

	"novel-maker-api/internal/domain/entity"
	"novel-maker-api/pkg/errors"
)

// priorContentDigestLimit 前情摘要中每回正文截取的最大字符数
const priorContentDigestLimit = 500

// BuildNovelPrompt 装配小说生成提示词
// 只读不改：装配过程不会对项目做任何变更。
// customStyle 非空时覆盖项目级文体设置。
func BuildNovelPrompt(project *entity.Project, episode *entity.Episode, customStyle string) (string, error) {
	if strings.TrimSpace(episode.Summary) == "" {
		return "", errors.ErrSummaryEmpty
	}

	styleValue := customStyle
	if styleValue == "" {
		styleValue = project.WritingStyle
	}
	style := FindWritingStyle(styleValue)

	var b strings.Builder
	b.WriteString("당신은 최고의 S급 웹소설 작가입니다. 다음 웹소설의 회차를 5000자 이상의 분량으로 자세히 작성해주세요.\n\n")

	b.WriteString("【작품 기본 정보】\n")
	fmt.Fprintf(&b, "- 제목: %s\n", project.Title)
	fmt.Fprintf(&b, "- 장르: %s\n", strings.Join(project.Genres, ", "))
	fmt.Fprintf(&b, "- 시놉시스: %s\n", project.Synopsis)
	if style != nil {
		fmt.Fprintf(&b, "- 문체 스타일: %s (%s)\n", style.Label, style.Description)
	}

	b.WriteString("\n【세계관 설정】\n")
	b.WriteString(worldSettingsSection(project))

	b.WriteString("\n\n【용어사전】\n")
	b.WriteString(termsSection(project))

	b.WriteString("\n\n【주요 사건 및 배경】\n")
	b.WriteString(eventsSection(project))

	b.WriteString("\n\n【등장인물의 아이템/마법】\n")
	b.WriteString(characterItemsSection(project, episode))

	b.WriteString("\n\n【작가 메모 및 참고사항】\n")
	b.WriteString(memosSection(project))

	b.WriteString("\n\n【S급 웹소설 작가의 문체 특징】\n")
	b.WriteString(`1. 강력한 몰입감을 주는 생생한 현장감
2. 캐릭터의 감정과 내면을 섬세하게 표현
3. 긴장감 있는 장면 전환과 속도감 있는 전개
4. 독자의 호기심을 자극하는 복선과 반전
5. 감정이입을 돕는 감각적인 묘사
6. 캐릭터만의 개성있는 말투와 습관
7. 웹소설에 최적화된 간결하고 강렬한 문장
8. 절정 장면에서의 압도적인 연출
9. 독자의 기대를 배신하지 않는 탄탄한 구성
10. 중독성 있는 문장 끊기와 호흡`)

	b.WriteString("\n\n【이번 회차 등장인물】\n")
	b.WriteString(appearingCharactersSection(project, episode))

	b.WriteString("\n\n【이전 회차 정보】\n")
	b.WriteString(priorEpisodesSection(project, episode))

	b.WriteString("\n\n【현재 회차 정보】\n")
	fmt.Fprintf(&b, "- 회차: %d화\n", episode.Number)
	fmt.Fprintf(&b, "- 제목: %s\n", episode.Title)
	fmt.Fprintf(&b, "- 줄거리: %s\n", episode.Summary)

	b.WriteString("\n【작성 요구사항】\n")
	b.WriteString("1. 반드시 5000자 이상으로 작성 (매우 중요!)\n")
	b.WriteString("2. 한국어 웹소설 스타일 (대화체와 서술체의 조화)\n")
	if style != nil {
		fmt.Fprintf(&b, "3. %s 스타일로 작성 - %s\n", style.Label, style.Description)
	} else {
		b.WriteString("3. 자연스러운 문체로 작성\n")
	}
	b.WriteString(`4. 등장인물들의 성격과 특징을 정확히 반영
5. 시놉시스의 세계관과 설정을 충실히 반영
6. 이전 회차와의 연결성 고려
7. 생생한 묘사와 감정 표현
8. 독자의 몰입감을 높이는 전개
9. 대화는 따옴표("")로 표시
10. 장면 전환 시 적절한 여백 활용
11. 회차의 줄거리를 자세히 풀어서 작성
12. S급 웹소설 작가들의 문체 특징을 최대한 반영
13. 캐릭터의 성격은 자연스럽게 행동과 대화를 통해 표현 (MBTI나 혈액형 등은 직접적으로 언급하지 않음)`)

	b.WriteString("\n\n【참고사항】\n")
	fmt.Fprintf(&b, "- 이 회차에서 일어나야 할 주요 사건: %s\n", episode.Summary)
	b.WriteString(`- 등장인물들의 관계와 갈등을 자세히 묘사
- 감정의 변화와 심리 묘사에 중점
- 대화를 통한 캐릭터 개성 표현
- 작가 메모의 설정과 아이디어를 적극 활용
- S급 웹소설의 특징인 강한 몰입감과 중독성 있는 문체 사용
- 각 장면마다 독자가 현장에 있는 것처럼 생생하게 묘사
- 캐릭터의 대사와 행동을 통해 자연스러운 성격 표현`)
	if style != nil {
		fmt.Fprintf(&b, "\n- %s의 특징을 살려 문장을 구성", style.Label)
	}

	b.WriteString("\n\n반드시 5000자 이상의 완성도 높은 소설로 작성해주세요.")

	return b.String(), nil
}

// worldSettingsSection 汇总全部世界观设定
func worldSettingsSection(project *entity.Project) string {
	if len(project.WorldSettings) == 0 {
		return "세계관 설정이 없습니다."
	}
	parts := make([]string, 0, len(project.WorldSettings))
	for _, ws := range project.WorldSettings {
		parts = append(parts, fmt.Sprintf("【%s】 %s: %s", ws.Category, ws.Title, ws.Content))
	}
	return strings.Join(parts, "\n\n")
}

// termsSection 汇总用语辞典
func termsSection(project *entity.Project) string {
	if len(project.Terms) == 0 {
		return "용어사전이 없습니다."
	}
	parts := make([]string, 0, len(project.Terms))
	for _, t := range project.Terms {
		line := fmt.Sprintf("%s: %s", t.Term, t.Definition)
		if t.Category != "" {
			line += fmt.Sprintf(" (%s)", t.Category)
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, "\n")
}

// eventsSection 汇总高、中重要度事件
// 有事件但全是低重要度时输出为空，不回退到占位文案
func eventsSection(project *entity.Project) string {
	if len(project.Events) == 0 {
		return "주요 사건이 없습니다."
	}
	parts := make([]string, 0, len(project.Events))
	for _, ev := range project.Events {
		if ev.Importance != entity.EventImportanceHigh && ev.Importance != entity.EventImportanceMedium {
			continue
		}
		line := fmt.Sprintf("%s: %s", ev.Title, ev.Description)
		if ev.Date != "" {
			line += fmt.Sprintf(" (%s)", ev.Date)
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, "\n")
}

// characterItemsSection 汇总本回出场角色持有的物品和魔法
// 物品的 owner 是弱引用，持有者已删除时显示为未知
func characterItemsSection(project *entity.Project, episode *entity.Episode) string {
	if len(episode.AppearingCharacters) == 0 {
		return "등장인물 관련 아이템/마법이 없습니다."
	}
	items := project.ItemsOwnedBy(episode.AppearingCharacters)
	if len(items) == 0 {
		return "등장인물 관련 아이템/마법이 없습니다."
	}
	parts := make([]string, 0, len(items))
	for _, it := range items {
		ownerName := "미지"
		if owner := project.CharacterByID(it.Owner); owner != nil && owner.Name != "" {
			ownerName = owner.Name
		}
		line := fmt.Sprintf("%s의 %s (%s): %s", ownerName, it.Name, it.Type, it.Description)
		if it.Effects != "" {
			line += fmt.Sprintf(" - 효과: %s", it.Effects)
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, "\n")
}

// memosSection 汇总作者备忘
func memosSection(project *entity.Project) string {
	if len(project.Memos) == 0 {
		return "작가 메모가 없습니다."
	}
	parts := make([]string, 0, len(project.Memos))
	for _, m := range project.Memos {
		parts = append(parts, m.Content)
	}
	return strings.Join(parts, "\n\n")
}

// appearingCharactersSection 汇总本回出场角色的详细信息
// MBTI 代码经映射表转成性格描述短语并入性格一栏，不直接输出代码
func appearingCharactersSection(project *entity.Project, episode *entity.Episode) string {
	if len(episode.AppearingCharacters) == 0 {
		return "이번 회차에 등장하는 인물이 지정되지 않았습니다."
	}
	chars := project.ResolveCharacters(episode.AppearingCharacters)
	if len(chars) == 0 {
		return "이번 회차에 등장하는 인물이 지정되지 않았습니다."
	}
	parts := make([]string, 0, len(chars))
	for _, c := range chars {
		var details []string
		if c.Name != "" {
			details = append(details, "이름: "+c.Name)
		}
		if c.Age != "" {
			details = append(details, "나이: "+c.Age)
		}
		if c.Occupation != "" {
			details = append(details, "직업: "+c.Occupation)
		}
		var personality []string
		if c.Personality != "" {
			personality = append(personality, c.Personality)
		}
		if traits := MBTITraits(c.MBTI); traits != "" {
			personality = append(personality, traits)
		}
		if len(personality) > 0 {
			details = append(details, "성격: "+strings.Join(personality, ", "))
		}
		if c.Appearance != "" {
			details = append(details, "외모: "+c.Appearance)
		}
		if c.Family != "" {
			details = append(details, "가족관계: "+c.Family)
		}
		if c.BloodType != "" {
			details = append(details, "혈액형: "+c.BloodType)
		}
		if c.Notes != "" {
			details = append(details, "특이사항: "+c.Notes)
		}
		parts = append(parts, strings.Join(details, ", "))
	}
	return strings.Join(parts, "\n\n")
}

// priorEpisodesSection 汇总序号严格小于当前回的前情
// 按序号升序排列，序号相同时保持插入顺序；正文只截取开头一段
func priorEpisodesSection(project *entity.Project, episode *entity.Episode) string {
	var prior []*entity.Episode
	for _, ep := range project.Episodes {
		if ep.Number < episode.Number {
			prior = append(prior, ep)
		}
	}
	if len(prior) == 0 {
		return "이전 회차가 없습니다."
	}
	sort.SliceStable(prior, func(i, j int) bool {
		return prior[i].Number < prior[j].Number
	})
	parts := make([]string, 0, len(prior))
	for _, ep := range prior {
		entry := fmt.Sprintf("%d화: %s\n줄거리: %s", ep.Number, ep.Title, ep.Summary)
		if ep.NovelContent != "" {
			entry += "\n내용: " + truncateRunes(ep.NovelContent, priorContentDigestLimit) + "..."
		}
		parts = append(parts, entry)
	}
	return strings.Join(parts, "\n\n==========\n\n")
}

// truncateRunes 按字符数截断，不会把多字节字符截成半个
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
