package service

import (
	"testing"
	"time"

	"leave-planner-bot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlannerService() (*PlannerService, *mockPeriodRepository, *mockColoredRangeRepository) {
	periodRepo := &mockPeriodRepository{}
	rangeRepo := &mockColoredRangeRepository{}
	return NewPlannerService(periodRepo, rangeRepo), periodRepo, rangeRepo
}

func TestPlannerService_CommitPersistsRanges(t *testing.T) {
	svc, periodRepo, rangeRepo := newPlannerService()
	require.NoError(t, periodRepo.Create(&models.Period{
		ChatID: testChatID, Position: 0, Start: "2024-07-01", End: "2024-12-31",
	}))

	out, err := svc.HandleDayClick(testChatID, 0, day(2024, time.July, 1), "Urlop", models.RangeSelection{})
	require.NoError(t, err)
	require.True(t, out.Selection.Pending())

	out, err = svc.HandleDayClick(testChatID, 0, day(2024, time.July, 5), "Urlop", out.Selection)
	require.NoError(t, err)
	require.True(t, out.Changed)

	stored, err := rangeRepo.GetByChatID(testChatID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "01.07.2024", stored[0].Start)
	assert.Equal(t, "05.07.2024", stored[0].End)
}

func TestPlannerService_CrossPeriodNotPersisted(t *testing.T) {
	svc, periodRepo, rangeRepo := newPlannerService()
	require.NoError(t, periodRepo.Create(&models.Period{
		ChatID: testChatID, Position: 0, Start: "2024-07-01", End: "2024-07-10",
	}))

	sel := pending(day(2024, time.July, 8))
	out, err := svc.HandleDayClick(testChatID, 0, day(2024, time.July, 15), "Urlop", sel)
	require.NoError(t, err)

	assert.NotEmpty(t, out.Message)
	stored, err := rangeRepo.GetByChatID(testChatID)
	require.NoError(t, err)
	assert.Empty(t, stored)
}

func TestPlannerService_CommitLabeled(t *testing.T) {
	svc, periodRepo, rangeRepo := newPlannerService()
	require.NoError(t, periodRepo.Create(&models.Period{
		ChatID: testChatID, Position: 0, Start: "2024-07-01", End: "2024-12-31",
	}))

	sel := pending(day(2024, time.July, 1))
	out, err := svc.HandleDayClick(testChatID, 0, day(2024, time.July, 3), "Kursy", sel)
	require.NoError(t, err)
	require.NotNil(t, out.LabelRequest)

	// Nothing persisted while the commit is suspended.
	stored, err := rangeRepo.GetByChatID(testChatID)
	require.NoError(t, err)
	assert.Empty(t, stored)

	ranges, err := svc.CommitLabeled(out.LabelRequest, "kurs ATLS")
	require.NoError(t, err)
	require.Len(t, ranges, 1)

	stored, err = rangeRepo.GetByChatID(testChatID)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "kurs ATLS", stored[0].Label)
}
