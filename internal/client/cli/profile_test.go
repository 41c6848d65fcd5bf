package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

func TestUpdateProfile_SendsFields(t *testing.T) {
	f := &fakeAuth{user: models.User{"id": 1}, updateRet: models.User{"id": 1, "name": "Ann"}}
	a, out := newTestApp(f, "name = Ann\nphone=+7 900\n\n")

	require.NoError(t, a.UpdateProfile(context.Background()))
	assert.Equal(t, models.Profile{"name": "Ann", "phone": "+7 900"}, f.profile)
	assert.Contains(t, out.String(), "Profile updated")
}

func TestUpdateProfile_InvalidLine(t *testing.T) {
	f := &fakeAuth{user: models.User{"id": 1}}
	a, out := newTestApp(f, "just-a-word\n\n")

	require.Error(t, a.UpdateProfile(context.Background()))
	assert.Nil(t, f.profile)
	assert.Contains(t, out.String(), "expected name=value")
}

func TestUpdateProfile_Empty(t *testing.T) {
	f := &fakeAuth{user: models.User{"id": 1}}
	a, out := newTestApp(f, "\n")

	require.ErrorIs(t, a.UpdateProfile(context.Background()), errNothingToUpdate)
	assert.Contains(t, out.String(), "Nothing to update")
}

func TestUpdateProfile_BackendError(t *testing.T) {
	f := &fakeAuth{user: models.User{"id": 1}, updateErr: errors.New("400")}
	a, out := newTestApp(f, "phone=abc\n\n")

	require.Error(t, a.UpdateProfile(context.Background()))
	assert.Contains(t, out.String(), "Profile update failed: bad phone")
}

func TestParseProfile(t *testing.T) {
	p, err := parseProfile([]string{"a=1", "b==2", "c="})
	require.NoError(t, err)
	assert.Equal(t, models.Profile{"a": "1", "b": "=2", "c": ""}, p)

	_, err = parseProfile([]string{"=x"})
	require.Error(t, err)
}

func TestWhoAmI(t *testing.T) {
	f := &fakeAuth{}
	a, out := newTestApp(f, "")
	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), "Not logged in")

	f.user = models.User{"email": "ann@example.com"}
	out.Reset()
	require.NoError(t, a.WhoAmI(context.Background()))
	assert.Contains(t, out.String(), `"email": "ann@example.com"`)
}
