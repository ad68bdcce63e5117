package store

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-scanner-go/internal/constants"
	"resume-scanner-go/internal/types"
)

func sampleRecord(id string) types.ParsedRecord {
	return types.ParsedRecord{
		DocumentID: id,
		SourceName: id + ".pdf",
		Name:       "Jane Doe",
		Contact: types.ContactInfo{
			Email:    "jane@mail.com",
			Phone:    "+1 415 555 0131",
			LinkedIn: constants.NotFound,
			GitHub:   constants.NotFound,
		},
		Sections: types.SectionMap{
			types.SectionSummary: "Experienced engineer.",
			types.SectionSkills:  "Python, SQL",
		},
		RawText: "Jane Doe\nExperienced engineer.",
	}
}

func TestNewFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	_, err := NewFileStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestNewFileStoreRejectsEmptyDir(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	want := sampleRecord("doc-1")
	path, err := s.Save(want)
	require.NoError(t, err)
	assert.FileExists(t, path)
	assert.Equal(t, "doc-1.json", filepath.Base(path), "文件名应取文档ID")

	got, err := s.Load("doc-1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveRejectsMissingDocumentID(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Save(types.ParsedRecord{})
	assert.Error(t, err)
}

func TestLoadMissingRecord(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, err = s.Load("nope")
	assert.Error(t, err)
}

func TestListNewestFirst(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	for _, id := range []string{"old", "mid", "new"} {
		_, err := s.Save(sampleRecord(id))
		require.NoError(t, err)
	}
	// 文件系统时间精度不可靠，显式拉开修改时间
	now := time.Now()
	require.NoError(t, os.Chtimes(filepath.Join(dir, "old.json"), now, now.Add(-2*time.Hour)))
	require.NoError(t, os.Chtimes(filepath.Join(dir, "mid.json"), now, now.Add(-1*time.Hour)))
	require.NoError(t, os.Chtimes(filepath.Join(dir, "new.json"), now, now))

	records, err := s.List()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "new", records[0].DocumentID)
	assert.Equal(t, "mid", records[1].DocumentID)
	assert.Equal(t, "old", records[2].DocumentID)
}

func TestListSkipsCorruptAndForeignFiles(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFileStore(dir)
	require.NoError(t, err)

	_, err = s.Save(sampleRecord("good"))
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignore me"), 0644))

	records, err := s.List()
	require.NoError(t, err)
	require.Len(t, records, 1, "损坏文件和非json文件应被跳过")
	assert.Equal(t, "good", records[0].DocumentID)
}

func TestListEmptyDir(t *testing.T) {
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	records, err := s.List()
	require.NoError(t, err)
	assert.Empty(t, records)
}
