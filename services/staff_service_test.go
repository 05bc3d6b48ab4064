package services

import (
	"testing"

	"backend/entity"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaffAssignByUsername(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(repository.NewUserRepository(db))
	seedUser(t, db, "alice", entity.RoleCustomer)

	user, err := svc.Assign(&AssignStaffIn{Username: "alice"}, entity.RoleManager)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleManager, user.Role)

	managers, err := svc.List(entity.RoleManager)
	require.NoError(t, err)
	require.Len(t, managers, 1)
	assert.Equal(t, "alice", managers[0].Username)
}

func TestStaffAssignByID(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(repository.NewUserRepository(db))
	u := seedUser(t, db, "bob", entity.RoleCustomer)

	user, err := svc.Assign(&AssignStaffIn{ID: u.ID}, entity.RoleDelivery)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleDelivery, user.Role)
}

func TestStaffAssignRequiresIdentifier(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(repository.NewUserRepository(db))

	_, err := svc.Assign(&AssignStaffIn{}, entity.RoleManager)
	assert.ErrorIs(t, err, ErrEmptyUpdate)
}

func TestStaffAssignUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(repository.NewUserRepository(db))

	_, err := svc.Assign(&AssignStaffIn{Username: "ghost"}, entity.RoleManager)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStaffRemoveRevertsToCustomer(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(repository.NewUserRepository(db))
	u := seedUser(t, db, "carol", entity.RoleDelivery)

	user, err := svc.Remove(u.ID, entity.RoleDelivery)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCustomer, user.Role)

	crew, err := svc.List(entity.RoleDelivery)
	require.NoError(t, err)
	assert.Empty(t, crew)
}

func TestStaffRemoveNotInGroup(t *testing.T) {
	db := newTestDB(t)
	svc := NewStaffService(repository.NewUserRepository(db))
	u := seedUser(t, db, "dave", entity.RoleCustomer)

	_, err := svc.Remove(u.ID, entity.RoleManager)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Remove(9999, entity.RoleManager)
	assert.ErrorIs(t, err, ErrNotFound)
}
