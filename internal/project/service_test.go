package project

import (
	"context"
	"testing"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&Project{}))
	return gdb
}

func TestCreateStartsEmpty(t *testing.T) {
	svc := &Service{DB: testDB(t)}
	ctx := context.Background()

	id, err := svc.Create(ctx, 1, CreateInput{Title: "Plan", DocType: "docx", Topic: "AI"})
	require.NoError(t, err)
	require.NotZero(t, id)

	p, err := svc.Get(ctx, 1, id)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), p.UserID)
	assert.Equal(t, "docx", p.DocType)
	assert.Empty(t, p.Outline)
	assert.Empty(t, p.Content)
	assert.Empty(t, p.History)
}

func TestCreateAcceptsUnknownDocType(t *testing.T) {
	svc := &Service{DB: testDB(t)}
	ctx := context.Background()

	id, err := svc.Create(ctx, 1, CreateInput{Title: "X", DocType: "odt", Topic: "T"})
	require.NoError(t, err)

	p, err := svc.Get(ctx, 1, id)
	require.NoError(t, err)
	assert.Equal(t, "odt", p.DocType)
}

func TestGetOtherOwnerIsNotFound(t *testing.T) {
	svc := &Service{DB: testDB(t)}
	ctx := context.Background()

	id, err := svc.Create(ctx, 1, CreateInput{Title: "Mine", DocType: "docx", Topic: "AI"})
	require.NoError(t, err)

	_, err = svc.Get(ctx, 2, id)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Get(ctx, 1, 9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListScopedToOwner(t *testing.T) {
	svc := &Service{DB: testDB(t)}
	ctx := context.Background()

	_, err := svc.Create(ctx, 1, CreateInput{Title: "A", DocType: "docx", Topic: "t"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 1, CreateInput{Title: "B", DocType: "pptx", Topic: "t"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, 2, CreateInput{Title: "C", DocType: "docx", Topic: "t"})
	require.NoError(t, err)

	mine, err := svc.List(ctx, 1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "A", mine[0].Title)
	assert.Equal(t, "B", mine[1].Title)
}

func TestSetOutlineReplaces(t *testing.T) {
	svc := &Service{DB: testDB(t)}
	ctx := context.Background()

	id, err := svc.Create(ctx, 1, CreateInput{Title: "Plan", DocType: "docx", Topic: "AI"})
	require.NoError(t, err)

	require.NoError(t, svc.SetOutline(ctx, 1, id, []string{"A", "B"}))
	require.NoError(t, svc.SetOutline(ctx, 1, id, []string{"C"}))

	p, err := svc.Get(ctx, 1, id)
	require.NoError(t, err)
	assert.Equal(t, OutlineList{"C"}, p.Outline)
}

func TestSetOutlineOwnership(t *testing.T) {
	svc := &Service{DB: testDB(t)}
	ctx := context.Background()

	id, err := svc.Create(ctx, 1, CreateInput{Title: "Plan", DocType: "docx", Topic: "AI"})
	require.NoError(t, err)

	err = svc.SetOutline(ctx, 2, id, []string{"Hijack"})
	assert.ErrorIs(t, err, ErrNotFound)

	p, err := svc.Get(ctx, 1, id)
	require.NoError(t, err)
	assert.Empty(t, p.Outline)
}

func TestSetOutlineKeepsOrphansByDefault(t *testing.T) {
	gdb := testDB(t)
	svc := &Service{DB: gdb}
	ctx := context.Background()

	id, err := svc.Create(ctx, 1, CreateInput{Title: "Plan", DocType: "docx", Topic: "AI"})
	require.NoError(t, err)

	seed := Project{
		Content: ContentMap{"A": "text a", "B": "text b"},
		History: HistoryMap{"A": {FeedbackEvent("like")}},
	}
	require.NoError(t, gdb.Model(&Project{}).Where("id = ?", id).Updates(map[string]any{
		"content": seed.Content,
		"history": seed.History,
	}).Error)

	require.NoError(t, svc.SetOutline(ctx, 1, id, []string{"B"}))

	p, err := svc.Get(ctx, 1, id)
	require.NoError(t, err)
	assert.Equal(t, "text a", p.Content["A"])
	assert.Equal(t, "text b", p.Content["B"])
	assert.Len(t, p.History["A"], 1)
}

func TestSetOutlinePruneRemoved(t *testing.T) {
	gdb := testDB(t)
	svc := &Service{DB: gdb, PruneRemoved: true}
	ctx := context.Background()

	id, err := svc.Create(ctx, 1, CreateInput{Title: "Plan", DocType: "docx", Topic: "AI"})
	require.NoError(t, err)

	require.NoError(t, gdb.Model(&Project{}).Where("id = ?", id).Updates(map[string]any{
		"content": ContentMap{"A": "text a", "B": "text b"},
		"history": HistoryMap{"A": {FeedbackEvent("like")}},
	}).Error)

	require.NoError(t, svc.SetOutline(ctx, 1, id, []string{"B"}))

	p, err := svc.Get(ctx, 1, id)
	require.NoError(t, err)
	assert.NotContains(t, p.Content, "A")
	assert.Equal(t, "text b", p.Content["B"])
	// history survives pruning
	assert.Len(t, p.History["A"], 1)
}

func TestSuggestOutline(t *testing.T) {
	docx := SuggestOutline("docx")
	assert.Equal(t, []string{"Introduction", "Background", "Problem Statement", "Analysis", "Solution", "Conclusion"}, docx)

	pptx := SuggestOutline("pptx")
	assert.Equal(t, []string{"Title Slide", "Agenda", "Problem", "Approach", "Results", "Conclusion"}, pptx)

	// unknown types fall through to the slide list
	assert.Equal(t, pptx, SuggestOutline("odt"))

	assert.Equal(t, []string{"Introduction", "Industry Background", "Market Analysis", "Future Trends", "Conclusion"},
		SuggestOutlineForProject())
}
