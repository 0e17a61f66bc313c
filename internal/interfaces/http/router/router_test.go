package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"novel-maker-api/internal/application/story"
	"novel-maker-api/internal/config"
	"novel-maker-api/internal/infrastructure/llm"
	"novel-maker-api/internal/store"
)

// memRepo 内存快照仓储
type memRepo struct {
	mu   sync.Mutex
	data []byte
}

func (r *memRepo) Load(_ context.Context) ([]byte, int, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.data == nil {
		return nil, 0, false, nil
	}
	return r.data, store.SchemaVersion, true, nil
}

func (r *memRepo) Save(_ context.Context, _ int, data []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data = append([]byte(nil), data...)
	return nil
}

// stubPinger 永远健康的存储探活桩
type stubPinger struct{}

func (stubPinger) HealthCheck(_ context.Context) error { return nil }

// stubGenerator 固定返回成功结果的文本生成桩
type stubGenerator struct {
	content string
	model   string
}

func (s *stubGenerator) Generate(_ context.Context, _ string) (*llm.Result, error) {
	return &llm.Result{Content: s.content, Model: s.model}, nil
}

func setupRouter(t *testing.T) (*gin.Engine, *store.ProjectStore) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.App.Env = "test"
	cfg.Security.CORS.AllowedOrigins = []string{"*"}

	st := store.New(&memRepo{})
	require.NoError(t, st.Load(context.Background()))

	gen := &stubGenerator{content: "생성된 본문", model: "grok-3"}
	svc := story.NewService(st, gen)

	return New(cfg, st, svc, stubPinger{}).Engine(), st
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func decodeData(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data, _ := resp["data"].(map[string]any)
	return data
}

func TestHealthEndpoints(t *testing.T) {
	engine, _ := setupRouter(t)

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := doJSON(t, engine, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestProjectCRUDFlow(t *testing.T) {
	engine, _ := setupRouter(t)

	// 创建
	w := doJSON(t, engine, http.MethodPost, "/v1/projects", gin.H{
		"title":    "달빛 기사단",
		"synopsis": "몰락한 기사의 이야기",
		"genres":   []string{"판타지"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id, _ := decodeData(t, w)["id"].(string)
	require.NotEmpty(t, id)

	// 创建后自动成为当前项目
	w = doJSON(t, engine, http.MethodGet, "/v1/projects/current", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, id, decodeData(t, w)["id"])

	// 列表
	w = doJSON(t, engine, http.MethodGet, "/v1/projects", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, id, data["currentProjectId"])
	assert.Len(t, data["projects"], 1)

	// 部分更新
	w = doJSON(t, engine, http.MethodPut, "/v1/projects/"+id, gin.H{"title": "개정판"})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decodeData(t, w)
	assert.Equal(t, "개정판", updated["title"])
	assert.Equal(t, "몰락한 기사의 이야기", updated["synopsis"])

	// 删除
	w = doJSON(t, engine, http.MethodDelete, "/v1/projects/"+id, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/v1/projects/"+id, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// 当前指针随删除清空
	w = doJSON(t, engine, http.MethodGet, "/v1/projects/current", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateProjectValidation(t *testing.T) {
	engine, _ := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost, "/v1/projects", gin.H{"synopsis": "제목 없음"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestEpisodeRoutes(t *testing.T) {
	engine, st := setupRouter(t)
	pid := createProject(t, engine)

	w := doJSON(t, engine, http.MethodPost, "/v1/projects/"+pid+"/episodes", gin.H{
		"number": 1, "title": "1화", "summary": "시작",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	eid, _ := decodeData(t, w)["id"].(string)
	require.NotEmpty(t, eid)

	w = doJSON(t, engine, http.MethodPost, "/v1/projects/"+pid+"/episodes", gin.H{
		"number": 2, "title": "2화",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	eid2, _ := decodeData(t, w)["id"].(string)

	// 重排
	w = doJSON(t, engine, http.MethodPut, "/v1/projects/"+pid+"/episodes/reorder", gin.H{
		"episodeIds": []string{eid2, eid},
	})
	require.Equal(t, http.StatusNoContent, w.Code)
	episodes := st.GetProject(pid).Episodes
	require.Len(t, episodes, 2)
	assert.Equal(t, eid2, episodes[0].ID)

	// 更新
	w = doJSON(t, engine, http.MethodPut,
		fmt.Sprintf("/v1/projects/%s/episodes/%s", pid, eid), gin.H{"title": "개정 1화"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "개정 1화", decodeData(t, w)["title"])

	// 删除
	w = doJSON(t, engine, http.MethodDelete,
		fmt.Sprintf("/v1/projects/%s/episodes/%s", pid, eid2), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Len(t, st.GetProject(pid).Episodes, 1)
}

func TestGenerateNovelRoute(t *testing.T) {
	engine, st := setupRouter(t)
	pid := createProject(t, engine)

	w := doJSON(t, engine, http.MethodPost, "/v1/projects/"+pid+"/episodes", gin.H{
		"number": 1, "title": "1화", "summary": "시작",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	eid, _ := decodeData(t, w)["id"].(string)

	// 空请求体也允许
	w = doJSON(t, engine, http.MethodPost,
		fmt.Sprintf("/v1/projects/%s/episodes/%s/novel", pid, eid), nil)
	require.Equal(t, http.StatusOK, w.Code)

	data := decodeData(t, w)
	assert.Equal(t, "생성된 본문", data["content"])
	assert.Equal(t, "grok-3", data["model"])
	assert.Equal(t, "생성된 본문", st.GetProject(pid).EpisodeByID(eid).NovelContent)
}

func TestGenerateStoryboardPrecondition(t *testing.T) {
	engine, _ := setupRouter(t)
	pid := createProject(t, engine)

	w := doJSON(t, engine, http.MethodPost, "/v1/projects/"+pid+"/episodes", gin.H{
		"number": 1, "title": "1화", "summary": "시작",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	eid, _ := decodeData(t, w)["id"].(string)

	// 没有小说正文时返回前置条件错误
	w = doJSON(t, engine, http.MethodPost,
		fmt.Sprintf("/v1/projects/%s/episodes/%s/storyboard", pid, eid), gin.H{"cutCount": 40})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp["error_code"])
}

func TestGenerateNovelUnknownProject(t *testing.T) {
	engine, _ := setupRouter(t)

	w := doJSON(t, engine, http.MethodPost,
		"/v1/projects/missing/episodes/missing/novel", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestExportImportRoutes(t *testing.T) {
	engine, _ := setupRouter(t)
	pid := createProject(t, engine)

	w := doJSON(t, engine, http.MethodGet, "/v1/projects/"+pid+"/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	require.True(t, json.Valid(w.Body.Bytes()))
	exported := w.Body.Bytes()

	req := httptest.NewRequest(http.MethodPost, "/v1/projects/import", bytes.NewReader(exported))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	newID, _ := decodeData(t, w)["id"].(string)
	assert.NotEmpty(t, newID)
	assert.NotEqual(t, pid, newID)
}

func TestImportInvalidPayload(t *testing.T) {
	engine, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/projects/import", strings.NewReader("{broken"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAPIKeyRoutes(t *testing.T) {
	engine, _ := setupRouter(t)

	w := doJSON(t, engine, http.MethodGet, "/v1/settings/api-key", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, false, decodeData(t, w)["configured"])

	w = doJSON(t, engine, http.MethodPut, "/v1/settings/api-key", gin.H{"apiKey": "xai-test"})
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, engine, http.MethodGet, "/v1/settings/api-key", nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decodeData(t, w)
	assert.Equal(t, true, data["configured"])
	assert.Equal(t, "xai-test", data["apiKey"])
}

func TestClearAllDataRoute(t *testing.T) {
	engine, st := setupRouter(t)
	createProject(t, engine)

	w := doJSON(t, engine, http.MethodDelete, "/v1/data", nil)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, st.Projects())
}

func createProject(t *testing.T, engine *gin.Engine) string {
	t.Helper()
	w := doJSON(t, engine, http.MethodPost, "/v1/projects", gin.H{
		"title":  "달빛 기사단",
		"genres": []string{"판타지"},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id, _ := decodeData(t, w)["id"].(string)
	require.NotEmpty(t, id)
	return id
}
