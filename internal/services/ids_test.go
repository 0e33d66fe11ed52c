package services

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yungbote/coursekey/internal/idgen"
	"github.com/yungbote/coursekey/internal/platform/logger"
)

func TestIDServicePreview(t *testing.T) {
	s := NewIDService(logger.Nop(), 2)
	assert.Equal(t, "55e8751841e6", s.Hash("test-input"))

	res, err := s.Preview(idgen.Spec{Kind: idgen.KindCourse, CourseName: "CHBE241", Timestamp: "2024-09-03T17:30:00.000Z"})
	require.NoError(t, err)
	assert.Equal(t, "a4baf56df0c8", res.ID)
	assert.Equal(t, "K6T1OK", res.Code)

	res, err = s.Preview(idgen.Spec{Kind: idgen.KindDivision, Title: "Week 1", CourseName: "CHBE241", Timestamp: "2024-09-03T17:30:00.000Z"})
	require.NoError(t, err)
	assert.Equal(t, "2c9064c2adf6", res.ID)
	assert.Empty(t, res.Code)

	_, err = s.Preview(idgen.Spec{Kind: idgen.KindCourse})
	requireAPIStatus(t, err, http.StatusBadRequest)
}

func TestIDServiceBatchKeepsOrderAndReportsErrors(t *testing.T) {
	s := NewIDService(logger.Nop(), 4)
	specs := make([]idgen.Spec, 0, 101)
	for i := 0; i < 100; i++ {
		specs = append(specs, idgen.Spec{
			Kind:       idgen.KindCourse,
			CourseName: fmt.Sprintf("COURSE%03d", i),
			Timestamp:  "2024-09-03T17:30:00.000Z",
		})
	}
	specs = append(specs, idgen.Spec{Kind: idgen.KindItem, Title: "Intro"})

	out, err := s.Batch(context.Background(), specs)
	require.NoError(t, err)
	require.Len(t, out, len(specs))
	seen := map[string]bool{}
	for i, res := range out[:100] {
		assert.Equal(t, i, res.Index)
		want, err := specs[i].ID()
		require.NoError(t, err)
		assert.Equal(t, want, res.ID)
		assert.Len(t, res.Code, idgen.CodeLength)
		assert.False(t, seen[res.ID], "duplicate id %s", res.ID)
		seen[res.ID] = true
	}
	last := out[100]
	assert.Equal(t, 100, last.Index)
	assert.Empty(t, last.ID)
	assert.Contains(t, last.Error, "timestamp")
}

func TestIDServiceBatchCancelled(t *testing.T) {
	s := NewIDService(logger.Nop(), 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.Batch(ctx, []idgen.Spec{{Kind: idgen.KindUser, PUID: "1", DisplayName: "a", Affiliation: "b"}})
	require.ErrorIs(t, err, context.Canceled)
}
