package permission_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/quotehub/quote-api/internal/domain/entity"
	"github.com/quotehub/quote-api/internal/domain/permission"
)

func membership(role string) *entity.CompanyUser {
	return &entity.CompanyUser{
		ID:          "m-1",
		CompanyID:   "c-1",
		UserID:      "u-1",
		Role:        role,
		Permissions: permission.ForRole(role),
	}
}

func quoteBy(userID string) *entity.Quote {
	return &entity.Quote{ID: "q-1", CompanyID: "c-1", CreatedBy: userID}
}

func TestForRole_AdminGetsAllFlags(t *testing.T) {
	p := permission.ForRole(entity.RoleAdmin)
	assert.True(t, p.CanCreateQuotes)
	assert.True(t, p.CanEditOwnQuotes)
	assert.True(t, p.CanEditAllQuotes)
	assert.True(t, p.CanEditCompany)
}

func TestForRole_UserGetsOwnQuoteFlagsOnly(t *testing.T) {
	p := permission.ForRole(entity.RoleUser)
	assert.True(t, p.CanCreateQuotes)
	assert.True(t, p.CanEditOwnQuotes)
	assert.False(t, p.CanEditAllQuotes)
	assert.False(t, p.CanEditCompany)
}

func TestForRole_UnknownRoleTreatedAsUser(t *testing.T) {
	p := permission.ForRole("intern")
	assert.False(t, p.CanEditAllQuotes)
	assert.False(t, p.CanEditCompany)
}

func TestCanEditQuote_TruthTable(t *testing.T) {
	cases := []struct {
		name       string
		editAll    bool
		editOwn    bool
		createdBy  string
		wantEdit   bool
	}{
		{"edit_all grants regardless of creator", true, false, "someone-else", true},
		{"edit_own grants only own quote", false, true, "u-1", true},
		{"edit_own denies foreign quote", false, true, "someone-else", false},
		{"no flags denies own quote", false, false, "u-1", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := membership(entity.RoleUser)
			m.Permissions.CanEditAllQuotes = tc.editAll
			m.Permissions.CanEditOwnQuotes = tc.editOwn
			got := permission.CanEditQuote(m, "u-1", quoteBy(tc.createdBy))
			assert.Equal(t, tc.wantEdit, got)
		})
	}
}

func TestCanDeleteQuote_MirrorsEdit(t *testing.T) {
	m := membership(entity.RoleUser)
	own := quoteBy("u-1")
	foreign := quoteBy("u-2")
	assert.Equal(t, permission.CanEditQuote(m, "u-1", own), permission.CanDeleteQuote(m, "u-1", own))
	assert.Equal(t, permission.CanEditQuote(m, "u-1", foreign), permission.CanDeleteQuote(m, "u-1", foreign))
}

func TestCanEditQuote_NilMembershipDenied(t *testing.T) {
	assert.False(t, permission.CanEditQuote(nil, "u-1", quoteBy("u-1")))
	assert.False(t, permission.CanCreateQuote(nil))
}

func TestCanEditCompany_RoleGate(t *testing.T) {
	assert.True(t, permission.CanEditCompany(membership(entity.RoleAdmin)))
	assert.False(t, permission.CanEditCompany(membership(entity.RoleUser)))
}
