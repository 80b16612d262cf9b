package catalog

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"

	"eraflix/models"
	"eraflix/services/apperr"
)

// fakeSlotRepo is an in-memory SlotRepository for catalog tests.
type fakeSlotRepo struct {
	slots  []models.TimeSlot
	nextID int
}

func (r *fakeSlotRepo) Create(ctx context.Context, slot models.TimeSlot) (string, error) {
	if slot.ID == "" {
		r.nextID++
		slot.ID = string(rune('a' + r.nextID - 1))
	}
	r.slots = append(r.slots, slot)
	return slot.ID, nil
}

func (r *fakeSlotRepo) Update(ctx context.Context, slot models.TimeSlot) error {
	for i := range r.slots {
		if r.slots[i].ID == slot.ID {
			r.slots[i] = slot
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeSlotRepo) DeleteByID(ctx context.Context, slotID string) error {
	for i := range r.slots {
		if r.slots[i].ID == slotID {
			r.slots = append(r.slots[:i], r.slots[i+1:]...)
			return nil
		}
	}
	return mongo.ErrNoDocuments
}

func (r *fakeSlotRepo) GetByID(ctx context.Context, slotID string) (*models.TimeSlot, error) {
	for i := range r.slots {
		if r.slots[i].ID == slotID {
			slot := r.slots[i]
			return &slot, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (r *fakeSlotRepo) GetActiveByWindow(ctx context.Context, screenID, start, end string) (*models.TimeSlot, error) {
	for i := range r.slots {
		s := r.slots[i]
		if s.ScreenID == screenID && s.Start == start && s.End == end && s.Active {
			return &s, nil
		}
	}
	return nil, nil
}

func (r *fakeSlotRepo) List(ctx context.Context, screenID string) ([]models.TimeSlot, error) {
	var out []models.TimeSlot
	for _, s := range r.slots {
		if screenID == "" || s.ScreenID == screenID {
			out = append(out, s)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Start != out[j].Start {
			return out[i].Start < out[j].Start
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

func (r *fakeSlotRepo) EnsureIndexes() error { return nil }

func newCatalog() (*DefaultCatalogService, *fakeSlotRepo) {
	repo := &fakeSlotRepo{}
	return &DefaultCatalogService{Repo: repo}, repo
}

func TestCreateSlot(t *testing.T) {
	svc, _ := newCatalog()

	slot, err := svc.CreateSlot(context.Background(), models.CreateSlotRequest{
		ScreenID: "S1", Name: "Morning", Start: "10:00", End: "12:00",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, slot.ID)
	assert.True(t, slot.Active)
	assert.Equal(t, "10:00", slot.Start)
	assert.Equal(t, "12:00", slot.End)
}

func TestCreateSlot_RejectsInvertedWindow(t *testing.T) {
	svc, _ := newCatalog()

	_, err := svc.CreateSlot(context.Background(), models.CreateSlotRequest{
		ScreenID: "S1", Name: "Backwards", Start: "11:00", End: "09:00",
	})
	require.Error(t, err)

	var validationErr *apperr.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestCreateSlot_RejectsMalformedTimes(t *testing.T) {
	svc, _ := newCatalog()
	var validationErr *apperr.ValidationError

	for _, tc := range []models.CreateSlotRequest{
		{ScreenID: "S1", Name: "x", Start: "9:00", End: "11:00"},
		{ScreenID: "S1", Name: "x", Start: "09:00", End: "25:00"},
		{ScreenID: "S1", Name: "x", Start: "09:61", End: "11:00"},
		{ScreenID: "", Name: "x", Start: "09:00", End: "11:00"},
	} {
		_, err := svc.CreateSlot(context.Background(), tc)
		require.Error(t, err, "%+v", tc)
		assert.ErrorAs(t, err, &validationErr)
	}
}

func TestCreateSlot_RejectsDuplicateWindow(t *testing.T) {
	svc, _ := newCatalog()

	_, err := svc.CreateSlot(context.Background(), models.CreateSlotRequest{
		ScreenID: "S1", Name: "Morning", Start: "10:00", End: "12:00",
	})
	require.NoError(t, err)

	_, err = svc.CreateSlot(context.Background(), models.CreateSlotRequest{
		ScreenID: "S1", Name: "Duplicate", Start: "10:00", End: "12:00",
	})
	require.Error(t, err)

	var conflictErr *apperr.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
}

func TestCreateSlot_SameWindowOnOtherScreenAllowed(t *testing.T) {
	svc, _ := newCatalog()

	_, err := svc.CreateSlot(context.Background(), models.CreateSlotRequest{
		ScreenID: "S1", Name: "Morning", Start: "10:00", End: "12:00",
	})
	require.NoError(t, err)

	_, err = svc.CreateSlot(context.Background(), models.CreateSlotRequest{
		ScreenID: "S2", Name: "Morning", Start: "10:00", End: "12:00",
	})
	assert.NoError(t, err)
}

func TestUpdateSlot(t *testing.T) {
	svc, _ := newCatalog()

	slot, err := svc.CreateSlot(context.Background(), models.CreateSlotRequest{
		ScreenID: "S1", Name: "Morning", Start: "10:00", End: "12:00",
	})
	require.NoError(t, err)

	newName := "Matinee"
	newEnd := "13:00"
	updated, err := svc.UpdateSlot(context.Background(), slot.ID, models.UpdateSlotRequest{
		Name: &newName, End: &newEnd,
	})
	require.NoError(t, err)
	assert.Equal(t, "Matinee", updated.Name)
	assert.Equal(t, "13:00", updated.End)
	assert.Equal(t, "10:00", updated.Start)
}

func TestUpdateSlot_UnknownID(t *testing.T) {
	svc, _ := newCatalog()

	name := "x"
	_, err := svc.UpdateSlot(context.Background(), "missing", models.UpdateSlotRequest{Name: &name})
	require.Error(t, err)

	var notFoundErr *apperr.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestUpdateSlot_CollisionWithOtherSlot(t *testing.T) {
	svc, _ := newCatalog()

	_, err := svc.CreateSlot(context.Background(), models.CreateSlotRequest{
		ScreenID: "S1", Name: "Morning", Start: "10:00", End: "12:00",
	})
	require.NoError(t, err)
	second, err := svc.CreateSlot(context.Background(), models.CreateSlotRequest{
		ScreenID: "S1", Name: "Midday", Start: "12:00", End: "14:00",
	})
	require.NoError(t, err)

	start := "10:00"
	end := "12:00"
	_, err = svc.UpdateSlot(context.Background(), second.ID, models.UpdateSlotRequest{Start: &start, End: &end})
	require.Error(t, err)

	var conflictErr *apperr.ConflictError
	assert.ErrorAs(t, err, &conflictErr)
}

func TestUpdateSlot_NoSelfConflict(t *testing.T) {
	svc, _ := newCatalog()

	slot, err := svc.CreateSlot(context.Background(), models.CreateSlotRequest{
		ScreenID: "S1", Name: "Morning", Start: "10:00", End: "12:00",
	})
	require.NoError(t, err)

	// Renaming without touching the window must not collide with itself.
	name := "Renamed"
	_, err = svc.UpdateSlot(context.Background(), slot.ID, models.UpdateSlotRequest{Name: &name})
	assert.NoError(t, err)
}

func TestDeleteSlot(t *testing.T) {
	svc, repo := newCatalog()

	slot, err := svc.CreateSlot(context.Background(), models.CreateSlotRequest{
		ScreenID: "S1", Name: "Morning", Start: "10:00", End: "12:00",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteSlot(context.Background(), slot.ID))
	assert.Empty(t, repo.slots)

	err = svc.DeleteSlot(context.Background(), slot.ID)
	require.Error(t, err)
	var notFoundErr *apperr.NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}

func TestListSlots_SortedAndFiltered(t *testing.T) {
	svc, _ := newCatalog()

	for _, req := range []models.CreateSlotRequest{
		{ScreenID: "S1", Name: "Evening", Start: "18:00", End: "20:00"},
		{ScreenID: "S1", Name: "Morning", Start: "10:00", End: "12:00"},
		{ScreenID: "S2", Name: "Morning", Start: "10:00", End: "12:00"},
	} {
		_, err := svc.CreateSlot(context.Background(), req)
		require.NoError(t, err)
	}

	slots, err := svc.ListSlots(context.Background(), "S1")
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, "10:00", slots[0].Start)
	assert.Equal(t, "18:00", slots[1].Start)

	all, err := svc.ListSlots(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}
