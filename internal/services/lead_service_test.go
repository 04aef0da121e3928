package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sponsorcrm/internal/models"
)

func lead(stage models.Stage, value *float64) *models.Lead {
	return &models.Lead{Stage: stage, Value: value}
}

func TestBuildBoardPartitionsByStage(t *testing.T) {
	leads := []*models.Lead{
		lead(models.StageNew, floatp(10000)),
		lead(models.StageNew, nil),
		lead(models.StageProposal, floatp(25000)),
		lead(models.StageWon, floatp(80000)),
	}

	cols := BuildBoard(leads)
	require.Len(t, cols, len(models.Stages))

	byStage := map[models.Stage]models.BoardColumn{}
	for _, c := range cols {
		byStage[c.Stage] = c
	}

	assert.Len(t, byStage[models.StageNew].Leads, 2)
	// nil values count as zero in column totals
	assert.Equal(t, 10000.0, byStage[models.StageNew].TotalValue)
	assert.Equal(t, 25000.0, byStage[models.StageProposal].TotalValue)
	assert.Equal(t, 80000.0, byStage[models.StageWon].TotalValue)

	// empty columns still render, with a non-nil lead slice
	assert.NotNil(t, byStage[models.StageContacted].Leads)
	assert.Empty(t, byStage[models.StageContacted].Leads)
}

func TestBuildBoardColumnMetadata(t *testing.T) {
	cols := BuildBoard(nil)
	require.Len(t, cols, 8)

	// board order follows the stage order, active pipeline first
	assert.Equal(t, models.StageNew, cols[0].Stage)
	assert.Equal(t, models.StageLost, cols[7].Stage)

	for _, c := range cols {
		assert.Equal(t, models.StageLabels[c.Stage], c.Label)
		assert.Equal(t, !c.Stage.IsTerminal(), c.Active, string(c.Stage))
	}
}

func TestFirstNonEmpty(t *testing.T) {
	assert.Equal(t, "a", firstNonEmpty(strp("a"), strp("b")))
	assert.Equal(t, "b", firstNonEmpty(nil, strp("b")))
	assert.Equal(t, "b", firstNonEmpty(strp(""), strp("b")))
	assert.Equal(t, "", firstNonEmpty(nil, nil))
}
