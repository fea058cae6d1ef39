package pipeline_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	activitylog "github.com/growthfarm/opsboard-lambda/internal/activity_log"
	"github.com/growthfarm/opsboard-lambda/internal/auth"
	"github.com/growthfarm/opsboard-lambda/internal/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) pipeline.Service {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&pipeline.PipelineStage{},
		&pipeline.PipelineCard{},
		&activitylog.ActivityLog{},
	))
	audit := activitylog.NewService(activitylog.NewRepository(db))
	return pipeline.NewService(pipeline.NewRepository(db), audit)
}

func userCtx() context.Context {
	return auth.WithClaims(context.Background(), &auth.UserClaims{
		UserID: uuid.NewString(),
		Role:   "user",
	})
}

func TestBoardSeedsDefaultStages(t *testing.T) {
	svc := newTestService(t)
	ctx := userCtx()

	board, err := svc.Board(ctx, pipeline.TypeBD)
	require.NoError(t, err)
	require.Len(t, board.Stages, 7)
	assert.Equal(t, "Lead", board.Stages[0].Name)
	assert.Equal(t, "Lost", board.Stages[6].Name)

	// Re-reading must not duplicate stages.
	board, err = svc.Board(ctx, pipeline.TypeBD)
	require.NoError(t, err)
	assert.Len(t, board.Stages, 7)

	// Every pipeline type gets its own stage set.
	finance, err := svc.Board(ctx, pipeline.TypeFinance)
	require.NoError(t, err)
	assert.Len(t, finance.Stages, 3)

	_, err = svc.Board(ctx, pipeline.PipelineType("marketing"))
	assert.ErrorIs(t, err, pipeline.ErrInvalidPipeline)
}

func TestCardLifecycle(t *testing.T) {
	svc := newTestService(t)
	ctx := userCtx()

	board, err := svc.Board(ctx, pipeline.TypeBD)
	require.NoError(t, err)
	lead, proposal := board.Stages[0], board.Stages[2]

	card, err := svc.CreateCard(ctx, pipeline.CreateCardDTO{
		StageID:     lead.ID,
		Title:       "Nedbank Digital",
		Description: "Design sprint",
		Value:       "320000",
		Tags:        []string{"banking"},
	})
	require.NoError(t, err)
	require.NotNil(t, card.Value)
	assert.Equal(t, "320000", card.Value.String())

	moved, err := svc.MoveCard(ctx, card.ID, pipeline.MoveCardDTO{StageID: proposal.ID, Position: 0})
	require.NoError(t, err)
	assert.Equal(t, proposal.ID, moved.StageID)

	refreshed, err := svc.Board(ctx, pipeline.TypeBD)
	require.NoError(t, err)
	assert.Empty(t, refreshed.Cards[lead.ID.String()])
	assert.Len(t, refreshed.Cards[proposal.ID.String()], 1)

	require.NoError(t, svc.DeleteCard(ctx, card.ID))
	assert.ErrorIs(t, svc.DeleteCard(ctx, card.ID), pipeline.ErrCardNotFound)
}

func TestMoveCardAcrossPipelinesRejected(t *testing.T) {
	svc := newTestService(t)
	ctx := userCtx()

	bd, err := svc.Board(ctx, pipeline.TypeBD)
	require.NoError(t, err)
	ventures, err := svc.Board(ctx, pipeline.TypeVentures)
	require.NoError(t, err)

	card, err := svc.CreateCard(ctx, pipeline.CreateCardDTO{
		StageID: bd.Stages[0].ID,
		Title:   "Misfiled deal",
	})
	require.NoError(t, err)

	_, err = svc.MoveCard(ctx, card.ID, pipeline.MoveCardDTO{StageID: ventures.Stages[0].ID})
	assert.ErrorIs(t, err, pipeline.ErrStageMismatch)
}

func TestVentureMetadata(t *testing.T) {
	svc := newTestService(t)
	ctx := userCtx()

	board, err := svc.Board(ctx, pipeline.TypeVentures)
	require.NoError(t, err)

	card, err := svc.CreateCard(ctx, pipeline.CreateCardDTO{
		StageID: board.Stages[3].ID,
		Title:   "FinTech App",
		Venture: &pipeline.VentureMetadataDTO{
			Status:        "Beta testing",
			BurnRate:      "85000",
			TargetBurn:    "100000",
			DaysToRevenue: 45,
		},
	})
	require.NoError(t, err)
	require.NotNil(t, card.Venture)
	assert.Equal(t, "85000", card.Venture.BurnRate.String())
	assert.Equal(t, 45, card.Venture.DaysToRevenue)

	_, err = svc.CreateCard(ctx, pipeline.CreateCardDTO{
		StageID: board.Stages[0].ID,
		Title:   "Bad burn",
		Venture: &pipeline.VentureMetadataDTO{BurnRate: "lots"},
	})
	assert.ErrorIs(t, err, pipeline.ErrInvalidValue)
}
