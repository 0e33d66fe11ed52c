package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/coursekey/internal/domain"
)

func TestContentServiceBuildsHierarchy(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	c, err := f.course.Create(ctx, CreateCourseInput{Name: "CHBE241"})
	require.NoError(t, err)

	week, err := f.content.AddDivision(ctx, c.ID, DivisionInput{Title: "Week 1", Kind: "Week"})
	require.NoError(t, err)
	assert.Equal(t, "2c9064c2adf6", week.ID)
	assert.Equal(t, domain.DivisionKindWeek, week.Kind)

	item, err := f.content.AddItem(ctx, week.ID, ItemInput{Title: "Intro"})
	require.NoError(t, err)
	assert.Equal(t, "2b89664f91a5", item.ID)

	obj, err := f.content.AddObjective(ctx, item.ID, ObjectiveInput{Text: "Define enthalpy"})
	require.NoError(t, err)
	assert.Equal(t, "018d0a5f62f9", obj.ID)

	mat, err := f.content.AddMaterial(ctx, item.ID, MaterialInput{
		Name:        "slides.pdf",
		ContentType: "application/pdf",
		Metadata:    map[string]any{"pages": 12},
	})
	require.NoError(t, err)
	assert.Equal(t, "312a06491122", mat.ID)
	assert.JSONEq(t, `{"pages":12}`, string(mat.Metadata))

	tree, err := f.content.Tree(ctx, c.ID)
	require.NoError(t, err)
	require.Len(t, tree.Divisions, 1)
	require.Len(t, tree.Divisions[0].Items, 1)
	node := tree.Divisions[0].Items[0]
	assert.Equal(t, item.ID, node.ID)
	require.Len(t, node.Objectives, 1)
	require.Len(t, node.Materials, 1)
}

func TestContentServiceSameTitleUnderDifferentParents(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, err := f.course.Create(ctx, CreateCourseInput{Name: "CHBE241"})
	require.NoError(t, err)

	w1, err := f.content.AddDivision(ctx, c.ID, DivisionInput{Title: "Week 1"})
	require.NoError(t, err)
	w2, err := f.content.AddDivision(ctx, c.ID, DivisionInput{Title: "Week 2", Position: 1})
	require.NoError(t, err)

	a, err := f.content.AddItem(ctx, w1.ID, ItemInput{Title: "Intro"})
	require.NoError(t, err)
	b, err := f.content.AddItem(ctx, w2.ID, ItemInput{Title: "Intro"})
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
	assert.True(t, a.CreatedAt.Equal(b.CreatedAt))
}

func TestContentServiceErrors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, err := f.course.Create(ctx, CreateCourseInput{Name: "CHBE241"})
	require.NoError(t, err)

	_, err = f.content.AddDivision(ctx, "ffffffffffff", DivisionInput{Title: "Week 1"})
	requireAPIStatus(t, err, http.StatusNotFound)

	_, err = f.content.AddDivision(ctx, c.ID, DivisionInput{Title: "Week 1", Kind: "semester"})
	requireAPIStatus(t, err, http.StatusBadRequest)

	_, err = f.content.AddDivision(ctx, c.ID, DivisionInput{Title: ""})
	requireAPIStatus(t, err, http.StatusBadRequest)

	_, err = f.content.AddItem(ctx, "ffffffffffff", ItemInput{Title: "Intro"})
	requireAPIStatus(t, err, http.StatusNotFound)

	_, err = f.content.AddObjective(ctx, "ffffffffffff", ObjectiveInput{Text: "x"})
	requireAPIStatus(t, err, http.StatusNotFound)
}
