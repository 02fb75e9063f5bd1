package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/garageflow/garageflow/internal/models"
)

func TestAddJobCardDerivesTotalCost(t *testing.T) {
	s := newTestStore(t)

	id := s.AddJobCard(models.JobCard{
		VehicleID:  "v1",
		CustomerID: "c1",
		MechanicID: "2",
		PartsUsed: []models.PartUsed{
			{Name: "Oil filter", Quantity: 2, Price: 45},
		},
		LaborCosts: []models.LaborCost{
			{Description: "diagnosis", Hours: 1, HourlyRate: 80, TotalCost: 80},
		},
		// A bogus incoming total must be overwritten by the derived one.
		TotalCost: 99999,
	})

	jc, found := s.JobCard(id)
	require.True(t, found)
	assert.Equal(t, models.JobCardPending, jc.Status)
	assert.InDelta(t, 170, jc.TotalCost, 0.001)
	assert.False(t, jc.CreatedAt.IsZero())
	assert.Nil(t, jc.CompletedAt)
}

func TestUpdateJobCardRecomputesTotal(t *testing.T) {
	s := newTestStore(t)
	id := s.AddJobCard(models.JobCard{VehicleID: "v1", CustomerID: "c1", MechanicID: "2"})

	parts := []models.PartUsed{{Name: "Brake pad set", Quantity: 1, Price: 120}}
	labor := []models.LaborCost{{Description: "brake job", Hours: 2, HourlyRate: 80, TotalCost: 160}}
	require.True(t, s.UpdateJobCard(id, models.JobCardUpdate{PartsUsed: &parts, LaborCosts: &labor}))

	jc, _ := s.JobCard(id)
	assert.InDelta(t, 280, jc.TotalCost, 0.001)
	assert.True(t, jc.UpdatedAt.After(jc.CreatedAt) || jc.UpdatedAt.Equal(jc.CreatedAt))
}

func TestJobCardCompletedAtSetOnce(t *testing.T) {
	s := newTestStore(t)
	id := s.AddJobCard(models.JobCard{VehicleID: "v1", CustomerID: "c1", MechanicID: "2"})

	completed := models.JobCardCompleted
	require.True(t, s.UpdateJobCard(id, models.JobCardUpdate{Status: &completed}))

	jc, _ := s.JobCard(id)
	require.NotNil(t, jc.CompletedAt)
	first := *jc.CompletedAt

	time.Sleep(5 * time.Millisecond)
	issues := []string{"follow-up note"}
	require.True(t, s.UpdateJobCard(id, models.JobCardUpdate{Issues: &issues}))

	jc, _ = s.JobCard(id)
	require.NotNil(t, jc.CompletedAt)
	assert.Equal(t, first, *jc.CompletedAt, "completedAt must not move after the first completion")
}

func TestJobCardStatusOnlyMovesForward(t *testing.T) {
	s := newTestStore(t)
	id := s.AddJobCard(models.JobCard{VehicleID: "v1", CustomerID: "c1", MechanicID: "2"})

	inProgress := models.JobCardInProgress
	require.True(t, s.UpdateJobCard(id, models.JobCardUpdate{Status: &inProgress}))

	pending := models.JobCardPending
	require.True(t, s.UpdateJobCard(id, models.JobCardUpdate{Status: &pending}))

	jc, _ := s.JobCard(id)
	assert.Equal(t, models.JobCardInProgress, jc.Status, "backward transition must be ignored")
}

func TestJobCardCompletionDoesNotTouchVehicle(t *testing.T) {
	s := newTestStore(t)

	customerID := s.AddCustomer(models.Customer{Name: "Ali"})
	vehicleID := s.AddVehicle(models.Vehicle{PlateNumber: "12-A-345", CustomerID: customerID, Status: models.VehicleInRepair})
	jobCardID := s.AddJobCard(models.JobCard{VehicleID: vehicleID, CustomerID: customerID, MechanicID: "2"})

	completed := models.JobCardCompleted
	require.True(t, s.UpdateJobCard(jobCardID, models.JobCardUpdate{Status: &completed}))

	v, _ := s.Vehicle(vehicleID)
	assert.Equal(t, models.VehicleInRepair, v.Status, "vehicle status changes are explicit separate calls")
}

func TestPartRequestProcessedAtSetOnce(t *testing.T) {
	s := newTestStore(t)
	id := s.AddPartRequest(models.PartRequest{
		MechanicID: "2",
		VehicleID:  "v1",
		Parts:      []models.RequestedPart{{Name: "Spark plug", Quantity: 4, Urgency: models.UrgencyHigh}},
	})

	pr, found := s.PartRequest(id)
	require.True(t, found)
	assert.Equal(t, models.PartRequestPending, pr.Status)
	assert.Nil(t, pr.ProcessedAt)

	approved := models.PartRequestApproved
	by := "1"
	require.True(t, s.UpdatePartRequest(id, models.PartRequestUpdate{Status: &approved, ProcessedBy: &by}))

	pr, _ = s.PartRequest(id)
	require.NotNil(t, pr.ProcessedAt)
	first := *pr.ProcessedAt
	assert.Equal(t, "1", pr.ProcessedBy)

	delivered := models.PartRequestDelivered
	require.True(t, s.UpdatePartRequest(id, models.PartRequestUpdate{Status: &delivered}))

	pr, _ = s.PartRequest(id)
	assert.Equal(t, models.PartRequestDelivered, pr.Status)
	assert.Equal(t, first, *pr.ProcessedAt)
}

func TestPartRequestStatusOnlyMovesForward(t *testing.T) {
	s := newTestStore(t)
	id := s.AddPartRequest(models.PartRequest{MechanicID: "2", VehicleID: "v1"})

	rejected := models.PartRequestRejected
	require.True(t, s.UpdatePartRequest(id, models.PartRequestUpdate{Status: &rejected}))

	// Neither back to pending nor sideways to approved.
	pending := models.PartRequestPending
	require.True(t, s.UpdatePartRequest(id, models.PartRequestUpdate{Status: &pending}))
	approved := models.PartRequestApproved
	require.True(t, s.UpdatePartRequest(id, models.PartRequestUpdate{Status: &approved}))

	pr, _ := s.PartRequest(id)
	assert.Equal(t, models.PartRequestRejected, pr.Status)
}
