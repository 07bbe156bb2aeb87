package intervention

import (
	"context"
	"testing"

	"zeefreeze/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeInterventionRepo struct {
	byID map[string]*models.Intervention
}

func newFakeInterventionRepo() *fakeInterventionRepo {
	return &fakeInterventionRepo{byID: make(map[string]*models.Intervention)}
}

func (f *fakeInterventionRepo) Create(_ context.Context, iv *models.Intervention) error {
	cp := *iv
	f.byID[iv.ID] = &cp
	return nil
}

func (f *fakeInterventionRepo) GetByID(_ context.Context, id string) (*models.Intervention, error) {
	iv, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *iv
	return &cp, nil
}

func (f *fakeInterventionRepo) GetAll(context.Context) ([]models.Intervention, error) {
	return nil, nil
}
func (f *fakeInterventionRepo) GetByClientID(context.Context, string) ([]models.Intervention, error) {
	return nil, nil
}
func (f *fakeInterventionRepo) GetByTechnicianID(context.Context, string) ([]models.Intervention, error) {
	return nil, nil
}
func (f *fakeInterventionRepo) GetByStatus(context.Context, string) ([]models.Intervention, error) {
	return nil, nil
}

func (f *fakeInterventionRepo) Update(_ context.Context, iv *models.Intervention) error {
	cp := *iv
	f.byID[iv.ID] = &cp
	return nil
}

func (f *fakeInterventionRepo) Delete(_ context.Context, id string) error {
	delete(f.byID, id)
	return nil
}

type fakeEventRepo struct {
	events []models.ScheduledEvent
}

func (f *fakeEventRepo) Create(_ context.Context, ev *models.ScheduledEvent) error {
	f.events = append(f.events, *ev)
	return nil
}

func (f *fakeEventRepo) GetByTechnicianAndRange(context.Context, string, string, string) ([]models.ScheduledEvent, error) {
	return f.events, nil
}

func (f *fakeEventRepo) GetByReferenceID(_ context.Context, referenceID string) ([]models.ScheduledEvent, error) {
	var out []models.ScheduledEvent
	for _, ev := range f.events {
		if ev.ReferenceID == referenceID {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) DeleteByReferenceID(_ context.Context, referenceID string) error {
	kept := f.events[:0]
	for _, ev := range f.events {
		if ev.ReferenceID != referenceID {
			kept = append(kept, ev)
		}
	}
	f.events = kept
	return nil
}

// stubAvailability answers SlotOpen from a canned (technician, date, slot) set.
type stubAvailability struct {
	open map[string]bool
}

func key(technicianID, date, slot string) string { return technicianID + "|" + date + "|" + slot }

func (s *stubAvailability) GetSet(context.Context, string) (*models.AvailabilityDTO, error) {
	return nil, nil
}
func (s *stubAvailability) ReplaceSet(context.Context, string, models.AvailabilitySet) (*models.AvailabilityDTO, error) {
	return nil, nil
}
func (s *stubAvailability) ToggleSlot(context.Context, string, string, string) (*models.AvailabilityDTO, error) {
	return nil, nil
}
func (s *stubAvailability) ToggleDay(context.Context, string, string) (*models.AvailabilityDTO, error) {
	return nil, nil
}
func (s *stubAvailability) SlotOpen(_ context.Context, technicianID, date, slot string) (bool, error) {
	return s.open[key(technicianID, date, slot)], nil
}
func (s *stubAvailability) OpenDaysInRange(context.Context, string, string, string) (int, error) {
	return 0, nil
}

type recordingNotifier struct {
	notified []string
}

func (r *recordingNotifier) Notify(_ context.Context, accountID, _, nType, _, _ string, _ map[string]string) error {
	r.notified = append(r.notified, accountID+":"+nType)
	return nil
}
func (r *recordingNotifier) GetForAccount(context.Context, string, bool) ([]models.Notification, error) {
	return nil, nil
}
func (r *recordingNotifier) CountUnread(context.Context, string) (int64, error) { return 0, nil }
func (r *recordingNotifier) MarkRead(context.Context, string, string) error     { return nil }
func (r *recordingNotifier) MarkAllRead(context.Context, string) error          { return nil }

func newTestService(t *testing.T, avail *stubAvailability) (*DefaultInterventionService, *fakeInterventionRepo, *fakeEventRepo, *recordingNotifier) {
	t.Helper()
	repo := newFakeInterventionRepo()
	events := &fakeEventRepo{}
	notifier := &recordingNotifier{}
	svc, err := NewDefaultInterventionService(repo, events, avail, notifier)
	require.NoError(t, err)
	return svc, repo, events, notifier
}

func createPending(t *testing.T, svc *DefaultInterventionService) *models.Intervention {
	t.Helper()
	iv, err := svc.Create(context.Background(), "client-1", models.CreateInterventionRequest{
		Equipment:   "cold room",
		Description: "compressor not starting",
		Location:    "14 Quai des Chartrons, Bordeaux",
	})
	require.NoError(t, err)
	require.Equal(t, models.InterventionPending, iv.Status)
	return iv
}

func TestAssign_BooksOpenSlot(t *testing.T) {
	avail := &stubAvailability{open: map[string]bool{
		key("tech-1", "2025-06-03", models.SlotMorning): true,
	}}
	svc, _, events, notifier := newTestService(t, avail)
	iv := createPending(t, svc)

	out, err := svc.Assign(context.Background(), iv.ID, models.AssignInterventionRequest{
		TechnicianID: "tech-1",
		Date:         "2025-06-03",
		Slot:         models.SlotMorning,
	})
	require.NoError(t, err)
	assert.Equal(t, models.InterventionAssigned, out.Status)
	assert.Equal(t, "tech-1", out.TechnicianID)
	assert.Equal(t, "2025-06-03", out.Date)
	assert.Equal(t, models.SlotMorning, out.Slot)

	require.Len(t, events.events, 1)
	ev := events.events[0]
	assert.Equal(t, models.EventIntervention, ev.Type)
	assert.Equal(t, iv.ID, ev.ReferenceID)
	assert.Equal(t, 8*60, ev.Start)
	assert.Equal(t, 12*60, ev.End)

	require.Len(t, notifier.notified, 1)
	assert.Equal(t, "tech-1:assignment", notifier.notified[0])
}

func TestAssign_RejectsClosedSlot(t *testing.T) {
	avail := &stubAvailability{open: map[string]bool{}}
	svc, repo, events, _ := newTestService(t, avail)
	iv := createPending(t, svc)

	_, err := svc.Assign(context.Background(), iv.ID, models.AssignInterventionRequest{
		TechnicianID: "tech-1",
		Date:         "2025-06-03",
		Slot:         models.SlotAfternoon,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not available")

	stored := repo.byID[iv.ID]
	assert.Equal(t, models.InterventionPending, stored.Status)
	assert.Empty(t, stored.TechnicianID)
	assert.Empty(t, events.events)
}

func TestAssign_ReassignReplacesAgendaEntry(t *testing.T) {
	avail := &stubAvailability{open: map[string]bool{
		key("tech-1", "2025-06-03", models.SlotMorning):   true,
		key("tech-2", "2025-06-04", models.SlotAfternoon): true,
	}}
	svc, _, events, _ := newTestService(t, avail)
	iv := createPending(t, svc)
	ctx := context.Background()

	_, err := svc.Assign(ctx, iv.ID, models.AssignInterventionRequest{
		TechnicianID: "tech-1", Date: "2025-06-03", Slot: models.SlotMorning,
	})
	require.NoError(t, err)

	out, err := svc.Assign(ctx, iv.ID, models.AssignInterventionRequest{
		TechnicianID: "tech-2", Date: "2025-06-04", Slot: models.SlotAfternoon,
	})
	require.NoError(t, err)
	assert.Equal(t, "tech-2", out.TechnicianID)

	require.Len(t, events.events, 1, "previous agenda entry should be replaced")
	assert.Equal(t, "tech-2", events.events[0].TechnicianID)
	assert.Equal(t, 13*60, events.events[0].Start)
}

func TestStartAndComplete_Lifecycle(t *testing.T) {
	avail := &stubAvailability{open: map[string]bool{
		key("tech-1", "2025-06-03", models.SlotMorning): true,
	}}
	svc, _, _, notifier := newTestService(t, avail)
	iv := createPending(t, svc)
	ctx := context.Background()

	_, err := svc.Assign(ctx, iv.ID, models.AssignInterventionRequest{
		TechnicianID: "tech-1", Date: "2025-06-03", Slot: models.SlotMorning,
	})
	require.NoError(t, err)

	// The wrong technician cannot start it.
	_, err = svc.Start(ctx, iv.ID, "tech-2")
	require.Error(t, err)

	out, err := svc.Start(ctx, iv.ID, "tech-1")
	require.NoError(t, err)
	assert.Equal(t, models.InterventionInProgress, out.Status)

	out, err = svc.Complete(ctx, iv.ID, "tech-1", "https://res.example.com/report.pdf")
	require.NoError(t, err)
	assert.Equal(t, models.InterventionCompleted, out.Status)
	assert.Equal(t, "https://res.example.com/report.pdf", out.ReportURL)

	assert.Contains(t, notifier.notified, "client-1:intervention_completed")
}

func TestCancel_ClearsAgendaAndNotifiesTechnician(t *testing.T) {
	avail := &stubAvailability{open: map[string]bool{
		key("tech-1", "2025-06-03", models.SlotMorning): true,
	}}
	svc, _, events, notifier := newTestService(t, avail)
	iv := createPending(t, svc)
	ctx := context.Background()

	_, err := svc.Assign(ctx, iv.ID, models.AssignInterventionRequest{
		TechnicianID: "tech-1", Date: "2025-06-03", Slot: models.SlotMorning,
	})
	require.NoError(t, err)

	out, err := svc.Cancel(ctx, iv.ID)
	require.NoError(t, err)
	assert.Equal(t, models.InterventionCancelled, out.Status)
	assert.Empty(t, events.events)
	assert.Contains(t, notifier.notified, "tech-1:assignment_cancelled")
}

func TestCancel_RejectsCompleted(t *testing.T) {
	avail := &stubAvailability{open: map[string]bool{
		key("tech-1", "2025-06-03", models.SlotMorning): true,
	}}
	svc, _, _, _ := newTestService(t, avail)
	iv := createPending(t, svc)
	ctx := context.Background()

	_, err := svc.Assign(ctx, iv.ID, models.AssignInterventionRequest{
		TechnicianID: "tech-1", Date: "2025-06-03", Slot: models.SlotMorning,
	})
	require.NoError(t, err)
	_, err = svc.Start(ctx, iv.ID, "tech-1")
	require.NoError(t, err)
	_, err = svc.Complete(ctx, iv.ID, "tech-1", "")
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, iv.ID)
	require.Error(t, err)
}
