package content

import (
	"context"
	"fmt"
	"testing"

	"drafter/internal/project"

	sqlite "github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// stubLLM returns deterministic text so tests can assert exact history
// payloads.
type stubLLM struct{}

func (stubLLM) GenerateSection(_ context.Context, topic, section string) string {
	return fmt.Sprintf("generated %s/%s", topic, section)
}

func (stubLLM) Refine(_ context.Context, existing, instruction string) string {
	return fmt.Sprintf("%s (%s)", existing, instruction)
}

func setup(t *testing.T) (*Service, *project.Service) {
	t.Helper()

	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, gdb.AutoMigrate(&project.Project{}))

	return &Service{DB: gdb, LLM: stubLLM{}}, &project.Service{DB: gdb}
}

func newProject(t *testing.T, projects *project.Service, userID uint64, outline ...string) uint64 {
	t.Helper()

	id, err := projects.Create(context.Background(), userID, project.CreateInput{
		Title: "Plan", DocType: "docx", Topic: "AI",
	})
	require.NoError(t, err)
	if len(outline) > 0 {
		require.NoError(t, projects.SetOutline(context.Background(), userID, id, outline))
	}
	return id
}

func TestGenerateKeysFollowOutline(t *testing.T) {
	svc, projects := setup(t)
	ctx := context.Background()

	id := newProject(t, projects, 1, "A", "B")

	got, err := svc.Generate(ctx, 1, id)
	require.NoError(t, err)
	assert.Equal(t, project.ContentMap{
		"A": "generated AI/A",
		"B": "generated AI/B",
	}, got)

	// shrinking the outline and regenerating drops the stale sections
	require.NoError(t, projects.SetOutline(ctx, 1, id, []string{"C"}))

	got, err = svc.Generate(ctx, 1, id)
	require.NoError(t, err)
	assert.Equal(t, project.ContentMap{"C": "generated AI/C"}, got)

	stored, err := svc.Content(ctx, 1, id)
	require.NoError(t, err)
	assert.Equal(t, got, stored)
}

func TestGenerateKeepsHistoryForDroppedSections(t *testing.T) {
	svc, projects := setup(t)
	ctx := context.Background()

	id := newProject(t, projects, 1, "A")
	_, err := svc.Generate(ctx, 1, id)
	require.NoError(t, err)

	_, err = svc.Refine(ctx, 1, id, "A", "shorten")
	require.NoError(t, err)

	require.NoError(t, projects.SetOutline(ctx, 1, id, []string{"B"}))
	_, err = svc.Generate(ctx, 1, id)
	require.NoError(t, err)

	c, err := svc.Content(ctx, 1, id)
	require.NoError(t, err)
	assert.NotContains(t, c, "A")

	h, err := svc.History(ctx, 1, id)
	require.NoError(t, err)
	assert.Len(t, h["A"], 1)
}

func TestRefineUnknownSection(t *testing.T) {
	svc, projects := setup(t)
	ctx := context.Background()

	id := newProject(t, projects, 1, "A")
	_, err := svc.Generate(ctx, 1, id)
	require.NoError(t, err)

	_, err = svc.Refine(ctx, 1, id, "Nope", "shorten")
	assert.ErrorIs(t, err, ErrSectionNotFound)

	// nothing changed
	h, err := svc.History(ctx, 1, id)
	require.NoError(t, err)
	assert.Empty(t, h)

	c, err := svc.Content(ctx, 1, id)
	require.NoError(t, err)
	assert.Equal(t, "generated AI/A", c["A"])
}

func TestRefineTwiceAppendsInOrder(t *testing.T) {
	svc, projects := setup(t)
	ctx := context.Background()

	id := newProject(t, projects, 1, "Intro")
	_, err := svc.Generate(ctx, 1, id)
	require.NoError(t, err)

	first, err := svc.Refine(ctx, 1, id, "Intro", "shorten")
	require.NoError(t, err)
	assert.Equal(t, "generated AI/Intro (shorten)", first)

	second, err := svc.Refine(ctx, 1, id, "Intro", "shorten")
	require.NoError(t, err)
	assert.Equal(t, "generated AI/Intro (shorten) (shorten)", second)

	h, err := svc.History(ctx, 1, id)
	require.NoError(t, err)
	require.Len(t, h["Intro"], 2)

	ev := h["Intro"][0]
	require.NotNil(t, ev.OldText)
	assert.Equal(t, "generated AI/Intro", *ev.OldText)
	assert.Equal(t, first, *ev.NewText)
	assert.Equal(t, "shorten", *ev.Instruction)

	ev = h["Intro"][1]
	assert.Equal(t, first, *ev.OldText)
	assert.Equal(t, second, *ev.NewText)

	c, err := svc.Content(ctx, 1, id)
	require.NoError(t, err)
	assert.Equal(t, second, c["Intro"])
}

func TestFeedbackAndCommentWithoutContent(t *testing.T) {
	svc, projects := setup(t)
	ctx := context.Background()

	// no outline, no content; history appends still work
	id := newProject(t, projects, 1)

	require.NoError(t, svc.AddFeedback(ctx, 1, id, "Intro", "like"))
	require.NoError(t, svc.AddComment(ctx, 1, id, "Intro", "needs numbers"))
	require.NoError(t, svc.AddFeedback(ctx, 1, id, "Intro", "dislike"))

	h, err := svc.History(ctx, 1, id)
	require.NoError(t, err)
	require.Len(t, h["Intro"], 3)

	assert.Equal(t, "like", *h["Intro"][0].Feedback)
	assert.Equal(t, "needs numbers", *h["Intro"][1].Comment)
	assert.Equal(t, "dislike", *h["Intro"][2].Feedback)
}

func TestHistoryEmptyForUnknownSection(t *testing.T) {
	svc, projects := setup(t)
	ctx := context.Background()

	id := newProject(t, projects, 1)

	h, err := svc.History(ctx, 1, id)
	require.NoError(t, err)
	assert.NotNil(t, h)
	assert.Empty(t, h["Anything"])
}

func TestOwnershipEnforcedEverywhere(t *testing.T) {
	svc, projects := setup(t)
	ctx := context.Background()

	id := newProject(t, projects, 1, "A")

	_, err := svc.Generate(ctx, 2, id)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Refine(ctx, 2, id, "A", "shorten")
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, svc.AddFeedback(ctx, 2, id, "A", "like"), ErrNotFound)
	assert.ErrorIs(t, svc.AddComment(ctx, 2, id, "A", "hello"), ErrNotFound)

	_, err = svc.History(ctx, 2, id)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Content(ctx, 2, id)
	assert.ErrorIs(t, err, ErrNotFound)
}
