package story

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novel-maker-api/internal/domain/entity"
	"novel-maker-api/pkg/errors"
)

func testProject() *entity.Project {
	p := &entity.Project{
		ID:       "p1",
		Title:    "달빛 기사단",
		Synopsis: "몰락한 기사가 다시 일어서는 이야기",
		Genres:   []string{"판타지", "액션"},
	}
	p.Normalize()
	return p
}

func testEpisode() *entity.Episode {
	return &entity.Episode{
		ID:      "e1",
		Number:  3,
		Title:   "재회",
		Summary: "주인공이 옛 동료를 만난다",
	}
}

func TestBuildNovelPromptEmptySummary(t *testing.T) {
	project := testProject()
	episode := testEpisode()
	episode.Summary = "   "

	_, err := BuildNovelPrompt(project, episode, "")

	require.Error(t, err)
	assert.Equal(t, errors.ErrSummaryEmpty.Code, errors.AsAppError(err).Code)
}

func TestBuildNovelPromptBasicInfo(t *testing.T) {
	prompt, err := BuildNovelPrompt(testProject(), testEpisode(), "")
	require.NoError(t, err)

	assert.Contains(t, prompt, "- 제목: 달빛 기사단")
	assert.Contains(t, prompt, "- 장르: 판타지, 액션")
	assert.Contains(t, prompt, "- 회차: 3화")
	assert.Contains(t, prompt, "- 줄거리: 주인공이 옛 동료를 만난다")
	assert.Contains(t, prompt, "반드시 5000자 이상")
}

func TestBuildNovelPromptEmptyCollectionFallbacks(t *testing.T) {
	prompt, err := BuildNovelPrompt(testProject(), testEpisode(), "")
	require.NoError(t, err)

	assert.Contains(t, prompt, "세계관 설정이 없습니다.")
	assert.Contains(t, prompt, "용어사전이 없습니다.")
	assert.Contains(t, prompt, "주요 사건이 없습니다.")
	assert.Contains(t, prompt, "등장인물 관련 아이템/마법이 없습니다.")
	assert.Contains(t, prompt, "작가 메모가 없습니다.")
	assert.Contains(t, prompt, "이전 회차가 없습니다.")
	assert.Contains(t, prompt, "이번 회차에 등장하는 인물이 지정되지 않았습니다.")
}

func TestBuildNovelPromptMBTIMappedNotEchoed(t *testing.T) {
	project := testProject()
	project.Characters = []*entity.Character{{
		ID:          "c1",
		Name:        "세라",
		Personality: "냉정함",
		MBTI:        "INTJ",
	}}
	episode := testEpisode()
	episode.AppearingCharacters = []string{"c1"}

	prompt, err := BuildNovelPrompt(project, episode, "")
	require.NoError(t, err)

	assert.Contains(t, prompt, "성격: 냉정함, 분석적이고 전략적이며 독립적인")
	assert.NotContains(t, prompt, "INTJ")
}

func TestBuildNovelPromptDanglingCharacterRefs(t *testing.T) {
	project := testProject()
	episode := testEpisode()
	episode.AppearingCharacters = []string{"ghost-id"}

	prompt, err := BuildNovelPrompt(project, episode, "")
	require.NoError(t, err)

	assert.Contains(t, prompt, "이번 회차에 등장하는 인물이 지정되지 않았습니다.")
}

func TestBuildNovelPromptWritingStyleOverride(t *testing.T) {
	project := testProject()
	project.WritingStyle = "serious"

	prompt, err := BuildNovelPrompt(project, testEpisode(), "casual")
	require.NoError(t, err)

	style := FindWritingStyle("casual")
	require.NotNil(t, style)
	assert.Contains(t, prompt, "- 문체 스타일: "+style.Label)
}

func TestBuildNovelPromptUnknownStyleFallsBack(t *testing.T) {
	prompt, err := BuildNovelPrompt(testProject(), testEpisode(), "no-such-style")
	require.NoError(t, err)

	assert.NotContains(t, prompt, "- 문체 스타일:")
	assert.Contains(t, prompt, "3. 자연스러운 문체로 작성")
}

func TestBuildNovelPromptEventsImportanceFilter(t *testing.T) {
	project := testProject()
	project.Events = []*entity.Event{
		{ID: "ev1", Title: "대전쟁", Description: "왕국 간 전쟁", Importance: entity.EventImportanceHigh},
		{ID: "ev2", Title: "소소한 일", Description: "마을 축제", Importance: entity.EventImportanceLow},
		{ID: "ev3", Title: "배신", Description: "동료의 배신", Date: "왕국력 512년", Importance: entity.EventImportanceMedium},
	}

	prompt, err := BuildNovelPrompt(project, testEpisode(), "")
	require.NoError(t, err)

	assert.Contains(t, prompt, "대전쟁: 왕국 간 전쟁")
	assert.Contains(t, prompt, "배신: 동료의 배신 (왕국력 512년)")
	assert.NotContains(t, prompt, "소소한 일")
}

func TestBuildNovelPromptPriorEpisodes(t *testing.T) {
	project := testProject()
	project.Episodes = []*entity.Episode{
		{ID: "e2", Number: 2, Title: "2화", Summary: "추격", NovelContent: strings.Repeat("가", 600)},
		{ID: "e0", Number: 1, Title: "1화", Summary: "시작"},
		{ID: "e9", Number: 9, Title: "9화", Summary: "미래"},
	}

	prompt, err := BuildNovelPrompt(project, testEpisode(), "")
	require.NoError(t, err)

	// 序号严格小于当前回的回次按升序出现
	idx1 := strings.Index(prompt, "1화: 1화\n줄거리: 시작")
	idx2 := strings.Index(prompt, "2화: 2화\n줄거리: 추격")
	require.Greater(t, idx1, -1)
	require.Greater(t, idx2, -1)
	assert.Less(t, idx1, idx2)
	assert.NotContains(t, prompt, "9화: 9화")

	// 正文截取 500 字符后缀省略号
	assert.Contains(t, prompt, "내용: "+strings.Repeat("가", 500)+"...")
	assert.NotContains(t, prompt, strings.Repeat("가", 501))

	assert.Contains(t, prompt, "\n\n==========\n\n")
}

func TestBuildNovelPromptItemOwnerFallback(t *testing.T) {
	project := testProject()
	project.Items = []*entity.Item{{
		ID:          "i1",
		Name:        "달빛검",
		Type:        entity.ItemTypeWeapon,
		Description: "달빛을 머금은 검",
		Effects:     "야간 공격력 상승",
		Owner:       "deleted-character",
	}}
	episode := testEpisode()
	episode.AppearingCharacters = []string{"deleted-character"}

	prompt, err := BuildNovelPrompt(project, episode, "")
	require.NoError(t, err)

	assert.Contains(t, prompt, "미지의 달빛검 (weapon): 달빛을 머금은 검 - 효과: 야간 공격력 상승")
}

func TestMBTITraitsUnknownCode(t *testing.T) {
	assert.Equal(t, "", MBTITraits(""))
	assert.Equal(t, "", MBTITraits("ZZZZ"))
	assert.Equal(t, "분석적이고 전략적이며 독립적인", MBTITraits("INTJ"))
}

func TestTruncateRunesMultibyteSafe(t *testing.T) {
	s := strings.Repeat("한", 10)
	assert.Equal(t, strings.Repeat("한", 4), truncateRunes(s, 4))
	assert.Equal(t, s, truncateRunes(s, 10))
	assert.Equal(t, s, truncateRunes(s, 100))
}
