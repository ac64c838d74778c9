package profile

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peoplehub/hrm-backend-go/internal/domain/profile"
)

type fakeProfileRepo struct {
	byUserID    map[string]profile.Profile
	updateCalls int
}

func (f *fakeProfileRepo) GetByUserID(ctx context.Context, userID string) (profile.Profile, error) {
	if p, ok := f.byUserID[userID]; ok {
		return p, nil
	}
	return profile.Profile{}, profile.ErrProfileNotFound
}

func (f *fakeProfileRepo) List(ctx context.Context) ([]profile.Profile, error) {
	var out []profile.Profile
	for _, p := range f.byUserID {
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeProfileRepo) UpdateContact(ctx context.Context, userID string, phone, address string) error {
	p, ok := f.byUserID[userID]
	if !ok {
		return profile.ErrProfileNotFound
	}
	f.updateCalls++
	p.Phone = &phone
	p.Address = &address
	f.byUserID[userID] = p
	return nil
}

func (f *fakeProfileRepo) UpdateByAdmin(ctx context.Context, profileID string, req profile.AdminUpdateProfileRequest) error {
	for userID, p := range f.byUserID {
		if p.ID == profileID {
			f.updateCalls++
			p.Department = &req.Department
			p.Position = &req.Position
			f.byUserID[userID] = p
			return nil
		}
	}
	return profile.ErrProfileNotFound
}

func (f *fakeProfileRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byUserID)), nil
}

func seedProfiles() *fakeProfileRepo {
	return &fakeProfileRepo{byUserID: map[string]profile.Profile{
		"user-1": {
			ID:         "prof-1",
			UserID:     "user-1",
			EmployeeID: "EMP001",
			FirstName:  "Ari",
			LastName:   "Wibowo",
			Email:      "ari@example.com",
		},
	}}
}

func TestProfileService_GetMine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewProfileService(seedProfiles())

	result, err := svc.GetMine(ctx, "user-1")

	require.NoError(t, err)
	assert.Equal(t, "EMP001", result.EmployeeID)
	assert.Equal(t, "Ari", result.FirstName)
}

func TestProfileService_GetMine_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewProfileService(seedProfiles())

	_, err := svc.GetMine(ctx, "user-9")

	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}

func TestProfileService_UpdateMine(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := seedProfiles()
	svc := NewProfileService(repo)

	result, err := svc.UpdateMine(ctx, "user-1", profile.UpdateMyProfileRequest{
		Phone:   "555-0102",
		Address: "12 Garden Street",
	})

	require.NoError(t, err)
	require.NotNil(t, result.Phone)
	assert.Equal(t, "555-0102", *result.Phone)
	require.NotNil(t, result.Address)
	assert.Equal(t, "12 Garden Street", *result.Address)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestProfileService_UpdateMine_TooLong_NoWrite(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := seedProfiles()
	svc := NewProfileService(repo)

	_, err := svc.UpdateMine(ctx, "user-1", profile.UpdateMyProfileRequest{
		Address: strings.Repeat("x", 501),
	})

	assert.Error(t, err)
	assert.Equal(t, 0, repo.updateCalls)
}

func TestProfileService_AdminUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	repo := seedProfiles()
	svc := NewProfileService(repo)

	err := svc.Update(ctx, "prof-1", profile.AdminUpdateProfileRequest{
		Department: "Engineering",
		Position:   "Backend Engineer",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, repo.updateCalls)
}

func TestProfileService_AdminUpdate_NotFound(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := NewProfileService(seedProfiles())

	err := svc.Update(ctx, "prof-9", profile.AdminUpdateProfileRequest{
		Department: "Engineering",
	})

	assert.ErrorIs(t, err, profile.ErrProfileNotFound)
}
