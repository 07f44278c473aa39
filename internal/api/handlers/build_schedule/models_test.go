package build_schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SPA-BookingService/internal/domain"
	buildSchedule "github.com/m04kA/SPA-BookingService/internal/usecase/build_schedule"
)

func TestFromUseCaseResponse(t *testing.T) {
	day1 := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day1.AddDate(0, 0, 2)

	resp := FromUseCaseResponse(&buildSchedule.Response{
		CenterID:  "center-1",
		Guest:     &domain.Guest{ID: "guest-1"},
		Therapist: &domain.Therapist{ID: "t1", DisplayName: "Anna K"},
		Days: []domain.ScheduleDay{
			{
				Date:      day1,
				BookingID: "draft-1",
				Slots: []domain.Slot{
					{Time: "2025-06-01T10:00:00", Available: true, Priority: 1},
				},
			},
			{
				Date:      day2,
				BookingID: "draft-2",
				Slots: []domain.Slot{
					{Time: "2025-06-02T10:00:00", Available: false, Priority: 1},
				},
			},
			{
				Date:          day3,
				Slots:         []domain.Slot{},
				Failed:        true,
				FailureReason: "failed to create booking draft",
			},
		},
		PartialFailure: true,
	})

	assert.Equal(t, "center-1", resp.CenterID)
	assert.Equal(t, "guest-1", resp.GuestID)
	require.NotNil(t, resp.Therapist)
	assert.Equal(t, "Anna K", resp.Therapist.FullName)
	assert.True(t, resp.PartialFailure)

	require.Len(t, resp.Days, 3)
	assert.Equal(t, "2025-06-01", resp.Days[0].Date)
	assert.True(t, resp.Days[0].HasAvailability)

	// Day with only taken slots has no availability to offer
	assert.False(t, resp.Days[1].HasAvailability)

	assert.True(t, resp.Days[2].Failed)
	assert.False(t, resp.Days[2].HasAvailability)
	assert.Empty(t, resp.Days[2].BookingID)
}
