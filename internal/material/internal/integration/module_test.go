// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

//go:build e2e

package integration

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/qcmbank/internal/ai"
	"github.com/ecodeclub/qcmbank/internal/material"
	"github.com/ecodeclub/qcmbank/internal/material/internal/web"
	"github.com/ecodeclub/qcmbank/internal/test"
	testioc "github.com/ecodeclub/qcmbank/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 123

// kbStub 收集推到知识库的文件
type kbStub struct {
	mu    sync.Mutex
	files []ai.KnowledgeBaseFile
}

func (k *kbStub) UploadFile(ctx context.Context, file ai.KnowledgeBaseFile) error {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.files = append(k.files, file)
	return nil
}

func (k *kbStub) uploaded() []ai.KnowledgeBaseFile {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.files
}

type ModuleTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
	module *material.Module
	kb     *kbStub
	// 模拟外部文件存储
	files *httptest.Server
	blobs map[string]string
}

func (s *ModuleTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	s.kb = &kbStub{}
	s.blobs = make(map[string]string)
	s.files = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		content, ok := s.blobs[r.URL.Path]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(content))
	}))

	module, err := material.InitModule(s.db, &ai.Module{KnowledgeBaseSvc: s.kb})
	require.NoError(s.T(), err)
	s.module = module

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
			Data: map[string]string{
				"creator": "true",
			},
		}))
	})
	module.AdminHdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *ModuleTestSuite) TearDownSuite() {
	s.files.Close()
}

func (s *ModuleTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `module_context_files`").Error
	require.NoError(s.T(), err)
	s.kb.mu.Lock()
	s.kb.files = nil
	s.kb.mu.Unlock()
}

func (s *ModuleTestSuite) ctx() context.Context {
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	s.T().Cleanup(cancel)
	return c
}

func (s *ModuleTestSuite) save(f web.ModuleContextFile) int64 {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/material/save", iox.NewJSONReader(web.SaveFileReq{File: f}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[int64]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	require.Equal(t, 0, resp.Code)
	require.True(t, resp.Data > 0)
	return resp.Data
}

func (s *ModuleTestSuite) list(moduleId int64) []web.ModuleContextFile {
	t := s.T()
	req, err := http.NewRequest(http.MethodPost,
		"/material/list", iox.NewJSONReader(web.ListFilesReq{ModuleId: moduleId}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[web.ListFilesResp]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	return recorder.MustScan().Data.Files
}

func (s *ModuleTestSuite) TestSaveListDelete() {
	t := s.T()
	id1 := s.save(web.ModuleContextFile{
		ModuleId: 7, Filename: "cours.txt",
		Url: s.files.URL + "/cours.txt", Size: 20,
	})
	s.save(web.ModuleContextFile{
		ModuleId: 7, Filename: "td.md",
		Url: s.files.URL + "/td.md", Size: 11,
	})
	s.save(web.ModuleContextFile{
		ModuleId: 8, Filename: "autre.txt",
		Url: s.files.URL + "/autre.txt", Size: 5,
	})

	files := s.list(7)
	require.Len(t, files, 2)
	for _, f := range files {
		assert.Equal(t, int64(7), f.ModuleId)
		assert.True(t, f.Utime > 0)
	}

	// 同一条再存一遍是更新
	s.save(web.ModuleContextFile{
		Id: id1, ModuleId: 7, Filename: "cours-v2.txt",
		Url: s.files.URL + "/cours-v2.txt", Size: 22,
	})
	files = s.list(7)
	require.Len(t, files, 2)

	req, err := http.NewRequest(http.MethodPost,
		"/material/delete", iox.NewJSONReader(web.DeleteFileReq{Id: id1}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	files = s.list(7)
	require.Len(t, files, 1)
	assert.Equal(t, "td.md", files[0].Filename)
}

func (s *ModuleTestSuite) extract(filename, content string) *test.JSONResponseRecorder[web.ExtractResp] {
	t := s.T()
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, err := http.NewRequest(http.MethodPost, "/material/extract", &body)
	require.NoError(t, err)
	req.Header.Set("content-type", writer.FormDataContentType())
	recorder := test.NewJSONResponseRecorder[web.ExtractResp]()
	s.server.ServeHTTP(recorder, req)
	return recorder
}

func (s *ModuleTestSuite) TestExtract() {
	t := s.T()
	recorder := s.extract("notes.txt", "La liaison covalente partage des électrons.")
	require.Equal(t, 200, recorder.Code)
	resp := recorder.MustScan()
	assert.Equal(t, 0, resp.Code)
	assert.Equal(t, "La liaison covalente partage des électrons.", resp.Data.Text)
	assert.Equal(t, len([]rune(resp.Data.Text)), resp.Data.Length)

	// 不支持的格式
	recorder = s.extract("slides.pdf", "%PDF-1.4")
	require.Equal(t, 500, recorder.Code)
	assert.Equal(t, 519002, recorder.MustScan().Code)
}

func (s *ModuleTestSuite) TestSync() {
	t := s.T()
	s.blobs["/doc1.txt"] = "La chimie organique étudie le carbone."
	s.save(web.ModuleContextFile{
		ModuleId: 9, Filename: "doc1.txt",
		Url: s.files.URL + "/doc1.txt", Size: 10,
	})
	// 这个下载会 404，同步时跳过
	s.save(web.ModuleContextFile{
		ModuleId: 9, Filename: "absent.txt",
		Url: s.files.URL + "/absent.txt", Size: 10,
	})

	req, err := http.NewRequest(http.MethodPost,
		"/material/kb/sync", iox.NewJSONReader(web.SyncReq{ModuleId: 9}))
	require.NoError(t, err)
	req.Header.Set("content-type", "application/json")
	recorder := test.NewJSONResponseRecorder[any]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	assert.Equal(t, 0, recorder.MustScan().Code)

	uploaded := s.kb.uploaded()
	require.Len(t, uploaded, 1)
	assert.Equal(t, "material", uploaded[0].Biz)
	assert.Equal(t, "module_9_doc1.txt", uploaded[0].Name)
	assert.Equal(t, "La chimie organique étudie le carbone.", string(uploaded[0].Data))
}

func (s *ModuleTestSuite) TestBuildContext() {
	t := s.T()
	s.blobs["/chap1.txt"] = "Chapitre 1 : les alcanes."
	s.blobs["/chap2.md"] = "Chapitre 2 : les alcènes."
	s.save(web.ModuleContextFile{
		ModuleId: 10, Filename: "chap1.txt",
		Url: s.files.URL + "/chap1.txt", Size: 10,
	})
	s.save(web.ModuleContextFile{
		ModuleId: 10, Filename: "chap2.md",
		Url: s.files.URL + "/chap2.md", Size: 10,
	})
	// 拉不下来的文件只跳过
	s.save(web.ModuleContextFile{
		ModuleId: 10, Filename: "cassé.txt",
		Url: s.files.URL + "/cassé.txt", Size: 10,
	})

	res, err := s.module.Svc.BuildContext(s.ctx(), 10, nil)
	require.NoError(t, err)
	assert.Contains(t, res, "--- chap1.txt ---")
	assert.Contains(t, res, "Chapitre 1 : les alcanes.")
	assert.Contains(t, res, "Chapitre 2 : les alcènes.")
	assert.NotContains(t, res, "cassé")
}

func TestMaterialModule(t *testing.T) {
	suite.Run(t, new(ModuleTestSuite))
}
