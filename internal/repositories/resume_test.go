package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"seekr/backend/internal/models"
)

func newResume(company, position string) *models.Resume {
	return &models.Resume{
		CompanyName:  company,
		PositionName: position,
		ResumeJSON:   datatypes.JSON(`{"firstName":"Ann"}`),
	}
}

func TestResumeRepository_CreateAndFind(t *testing.T) {
	repo := NewResumeRepository(newTestDB(t), 0)

	resume := newResume("Acme", "Backend Engineer")
	require.NoError(t, repo.Create(resume))
	require.NotZero(t, resume.ID)

	found, err := repo.FindByID(resume.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", found.CompanyName)
	assert.JSONEq(t, `{"firstName":"Ann"}`, string(found.ResumeJSON))
	assert.WithinDuration(t, time.Now().Add(models.DefaultResumeTTL), found.TTL, time.Minute)
}

func TestResumeRepository_CreateDuplicate(t *testing.T) {
	repo := NewResumeRepository(newTestDB(t), 0)

	require.NoError(t, repo.Create(newResume("Acme", "Backend Engineer")))
	require.NoError(t, repo.Create(newResume("Acme", "Frontend Engineer")))

	err := repo.Create(newResume("Acme", "Backend Engineer"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDuplicate), "got %v", err)
}

func TestResumeRepository_FindMissing(t *testing.T) {
	repo := NewResumeRepository(newTestDB(t), 0)

	_, err := repo.FindByID(42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResumeRepository_ListFiltersAndPaginates(t *testing.T) {
	repo := NewResumeRepository(newTestDB(t), 0)

	for _, r := range []*models.Resume{
		newResume("Acme Corp", "Engineer"),
		newResume("acme labs", "Engineer"),
		newResume("Globex", "Engineer"),
	} {
		require.NoError(t, repo.Create(r))
	}

	all, err := repo.List(ResumeFilter{Page: Page{Number: 1, Size: 10}})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	acme, err := repo.List(ResumeFilter{CompanyName: "ACME", Page: Page{Number: 1, Size: 10}})
	require.NoError(t, err)
	require.Len(t, acme, 2)
	assert.Equal(t, "Acme Corp", acme[0].CompanyName)

	second, err := repo.List(ResumeFilter{Page: Page{Number: 2, Size: 2}})
	require.NoError(t, err)
	require.Len(t, second, 1)
	assert.Equal(t, "Globex", second[0].CompanyName)

	empty, err := repo.List(ResumeFilter{Page: Page{Number: 5, Size: 2}})
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestResumeRepository_UpdatePartial(t *testing.T) {
	repo := NewResumeRepository(newTestDB(t), time.Hour)

	resume := newResume("Acme", "Engineer")
	require.NoError(t, repo.Create(resume))
	firstTTL := resume.TTL

	position := "Staff Engineer"
	updated, err := repo.Update(resume.ID, &ResumeUpdateData{PositionName: &position})
	require.NoError(t, err)
	assert.Equal(t, "Acme", updated.CompanyName)
	assert.Equal(t, "Staff Engineer", updated.PositionName)
	assert.JSONEq(t, `{"firstName":"Ann"}`, string(updated.ResumeJSON))
	assert.False(t, updated.TTL.Before(firstTTL))

	updated, err = repo.Update(resume.ID, &ResumeUpdateData{ResumeJSON: datatypes.JSON(`{"firstName":"Bob"}`)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"firstName":"Bob"}`, string(updated.ResumeJSON))
}

func TestResumeRepository_UpdateConflict(t *testing.T) {
	repo := NewResumeRepository(newTestDB(t), 0)

	require.NoError(t, repo.Create(newResume("Acme", "Engineer")))
	other := newResume("Acme", "Manager")
	require.NoError(t, repo.Create(other))

	position := "Engineer"
	_, err := repo.Update(other.ID, &ResumeUpdateData{PositionName: &position})
	assert.ErrorIs(t, err, ErrDuplicate)

	_, err = repo.Update(999, &ResumeUpdateData{PositionName: &position})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResumeRepository_Delete(t *testing.T) {
	repo := NewResumeRepository(newTestDB(t), 0)

	resume := newResume("Acme", "Engineer")
	require.NoError(t, repo.Create(resume))

	require.NoError(t, repo.Delete(resume.ID))
	assert.ErrorIs(t, repo.Delete(resume.ID), ErrNotFound)

	_, err := repo.FindByID(resume.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestResumeRepository_DeleteExpired(t *testing.T) {
	db := newTestDB(t)
	repo := NewResumeRepository(db, time.Hour)

	fresh := newResume("Acme", "Engineer")
	require.NoError(t, repo.Create(fresh))

	stale := newResume("Globex", "Engineer")
	require.NoError(t, repo.Create(stale))
	require.NoError(t, db.Model(stale).Update("ttl", time.Now().UTC().Add(-time.Minute)).Error)

	deleted, err := repo.DeleteExpired(time.Now())
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	_, err = repo.FindByID(fresh.ID)
	assert.NoError(t, err)
	_, err = repo.FindByID(stale.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
