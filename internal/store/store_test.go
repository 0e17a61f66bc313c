package store

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novel-maker-api/internal/domain/entity"
)

// memRepo 内存快照仓储，供测试使用
type memRepo struct {
	mu      sync.Mutex
	data    []byte
	version int
	found   bool
	saves   int
}

func (r *memRepo) Load(_ context.Context) ([]byte, int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.data, r.version, r.found, nil
}

func (r *memRepo) Save(_ context.Context, version int, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append([]byte(nil), data...)
	r.version = version
	r.found = true
	r.saves++
	return nil
}

func newTestStore(t *testing.T) *ProjectStore {
	t.Helper()
	s := New(&memRepo{})
	require.NoError(t, s.Load(context.Background()))
	return s
}

func TestCreateProjectAssignsUniqueIDs(t *testing.T) {
	s := newTestStore(t)

	id1 := s.CreateProject(entity.ProjectDraft{Title: "첫 작품"})
	id2 := s.CreateProject(entity.ProjectDraft{Title: "둘째 작품"})

	assert.NotEmpty(t, id1)
	assert.NotEmpty(t, id2)
	assert.NotEqual(t, id1, id2)
}

func TestCreateProjectBecomesCurrent(t *testing.T) {
	s := newTestStore(t)

	id := s.CreateProject(entity.ProjectDraft{Title: "작품"})

	current := s.CurrentProject()
	require.NotNil(t, current)
	assert.Equal(t, id, current.ID)
}

func TestCreateProjectInitializesCollections(t *testing.T) {
	s := newTestStore(t)

	id := s.CreateProject(entity.ProjectDraft{Title: "작품"})
	p := s.GetProject(id)
	require.NotNil(t, p)

	assert.NotNil(t, p.Episodes)
	assert.NotNil(t, p.Characters)
	assert.NotNil(t, p.Memos)
	assert.NotNil(t, p.WorldSettings)
	assert.NotNil(t, p.Terms)
	assert.NotNil(t, p.Events)
	assert.NotNil(t, p.Items)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestUpdateProjectPartialMerge(t *testing.T) {
	s := newTestStore(t)
	id := s.CreateProject(entity.ProjectDraft{Title: "원제", Synopsis: "시놉시스"})

	newTitle := "개정판"
	updated := s.UpdateProject(id, entity.ProjectPatch{Title: &newTitle})

	require.NotNil(t, updated)
	assert.Equal(t, "개정판", updated.Title)
	assert.Equal(t, "시놉시스", updated.Synopsis)
}

func TestUpdatedAtStrictlyIncreases(t *testing.T) {
	s := newTestStore(t)
	id := s.CreateProject(entity.ProjectDraft{Title: "작품"})

	prev := s.GetProject(id).UpdatedAt
	title := "x"
	for i := 0; i < 50; i++ {
		updated := s.UpdateProject(id, entity.ProjectPatch{Title: &title})
		require.NotNil(t, updated)
		assert.True(t, updated.UpdatedAt.After(prev),
			"updatedAt must strictly increase on every mutation")
		prev = updated.UpdatedAt
	}
}

func TestUpdateMissingProjectIsSilentNoOp(t *testing.T) {
	s := newTestStore(t)
	s.CreateProject(entity.ProjectDraft{Title: "작품"})

	title := "유령"
	assert.Nil(t, s.UpdateProject("no-such-id", entity.ProjectPatch{Title: &title}))
	assert.Len(t, s.Projects(), 1)
}

func TestDeleteProjectRemovesExactlyOne(t *testing.T) {
	s := newTestStore(t)
	id1 := s.CreateProject(entity.ProjectDraft{Title: "남는 작품"})
	id2 := s.CreateProject(entity.ProjectDraft{Title: "지울 작품"})

	s.DeleteProject(id2)

	projects := s.Projects()
	require.Len(t, projects, 1)
	assert.Equal(t, id1, projects[0].ID)

	// 已删除 ID 再删一次仍是静默 no-op
	s.DeleteProject(id2)
	assert.Len(t, s.Projects(), 1)
}

func TestDeleteCurrentProjectClearsPointer(t *testing.T) {
	s := newTestStore(t)
	id := s.CreateProject(entity.ProjectDraft{Title: "작품"})

	s.DeleteProject(id)

	assert.Nil(t, s.CurrentProject())
}

func TestSetCurrentProjectDoesNotValidate(t *testing.T) {
	s := newTestStore(t)

	// 当前指针是盲写的，指向不存在的项目时读取侧返回 nil
	s.SetCurrentProject("dangling")
	assert.Nil(t, s.CurrentProject())

	s.SetCurrentProject("")
	assert.Nil(t, s.CurrentProject())
}

func TestGetProjectReturnsClone(t *testing.T) {
	s := newTestStore(t)
	id := s.CreateProject(entity.ProjectDraft{Title: "작품"})

	p := s.GetProject(id)
	p.Title = "몰래 고친 제목"

	assert.Equal(t, "작품", s.GetProject(id).Title)
}

func TestEpisodeLifecycle(t *testing.T) {
	s := newTestStore(t)
	pid := s.CreateProject(entity.ProjectDraft{Title: "작품"})

	ep := s.AddEpisode(pid, entity.EpisodeDraft{Number: 1, Title: "1화", Summary: "시작"})
	require.NotNil(t, ep)
	assert.NotEmpty(t, ep.ID)

	content := "생성된 소설 본문"
	updated := s.UpdateEpisode(pid, ep.ID, entity.EpisodePatch{NovelContent: &content})
	require.NotNil(t, updated)
	assert.Equal(t, content, updated.NovelContent)
	assert.Equal(t, "1화", updated.Title)
	assert.True(t, updated.UpdatedAt.After(ep.UpdatedAt))

	s.DeleteEpisode(pid, ep.ID)
	assert.Empty(t, s.GetProject(pid).Episodes)
}

func TestChildMutationBumpsProjectUpdatedAt(t *testing.T) {
	s := newTestStore(t)
	pid := s.CreateProject(entity.ProjectDraft{Title: "작품"})
	before := s.GetProject(pid).UpdatedAt

	s.AddEpisode(pid, entity.EpisodeDraft{Number: 1, Title: "1화"})

	assert.True(t, s.GetProject(pid).UpdatedAt.After(before))
}

func TestAddEpisodeToMissingProject(t *testing.T) {
	s := newTestStore(t)

	assert.Nil(t, s.AddEpisode("no-such-project", entity.EpisodeDraft{Title: "1화"}))
}

func TestReorderEpisodes(t *testing.T) {
	s := newTestStore(t)
	pid := s.CreateProject(entity.ProjectDraft{Title: "작품"})
	e1 := s.AddEpisode(pid, entity.EpisodeDraft{Number: 1, Title: "1화"})
	e2 := s.AddEpisode(pid, entity.EpisodeDraft{Number: 2, Title: "2화"})
	e3 := s.AddEpisode(pid, entity.EpisodeDraft{Number: 3, Title: "3화"})

	s.ReorderEpisodes(pid, []string{e3.ID, "unknown", e1.ID})

	episodes := s.GetProject(pid).Episodes
	require.Len(t, episodes, 3)
	assert.Equal(t, e3.ID, episodes[0].ID)
	assert.Equal(t, e1.ID, episodes[1].ID)
	// 未列出的回次保持原相对顺序排在末尾
	assert.Equal(t, e2.ID, episodes[2].ID)
}

func TestDeleteCharacterLeavesWeakRefs(t *testing.T) {
	s := newTestStore(t)
	pid := s.CreateProject(entity.ProjectDraft{Title: "작품"})
	c := s.AddCharacter(pid, entity.CharacterDraft{Name: "앨리스"})
	ep := s.AddEpisode(pid, entity.EpisodeDraft{
		Number:              1,
		Title:               "1화",
		AppearingCharacters: []string{c.ID},
	})

	s.DeleteCharacter(pid, c.ID)

	p := s.GetProject(pid)
	got := p.EpisodeByID(ep.ID)
	require.NotNil(t, got)
	// 悬空 ID 留在存储里，读取侧过滤
	assert.Equal(t, []string{c.ID}, got.AppearingCharacters)
	assert.Empty(t, p.ResolveCharacters(got.AppearingCharacters))
	assert.Empty(t, p.FilterCharacterIDs(got.AppearingCharacters))
}

func TestGrokAPIKeyRoundTrip(t *testing.T) {
	s := newTestStore(t)

	assert.Empty(t, s.GrokAPIKey())
	s.SetGrokAPIKey("xai-test-key")
	assert.Equal(t, "xai-test-key", s.GrokAPIKey())
}

func TestClearAllData(t *testing.T) {
	s := newTestStore(t)
	s.CreateProject(entity.ProjectDraft{Title: "작품"})
	s.SetGrokAPIKey("xai-test-key")

	s.ClearAllData()

	assert.Empty(t, s.Projects())
	assert.Nil(t, s.CurrentProject())
	assert.Empty(t, s.GrokAPIKey())
}

func TestMutationsWriteThrough(t *testing.T) {
	repo := &memRepo{}
	s := New(repo)
	require.NoError(t, s.Load(context.Background()))

	pid := s.CreateProject(entity.ProjectDraft{Title: "작품"})
	s.AddEpisode(pid, entity.EpisodeDraft{Number: 1, Title: "1화"})

	repo.mu.Lock()
	saves := repo.saves
	repo.mu.Unlock()
	assert.Equal(t, 2, saves)

	// 重新水合后状态一致
	s2 := New(repo)
	require.NoError(t, s2.Load(context.Background()))
	p := s2.GetProject(pid)
	require.NotNil(t, p)
	assert.Len(t, p.Episodes, 1)
}
