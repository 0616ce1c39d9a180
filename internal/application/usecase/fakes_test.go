package usecase_test

import (
	"context"
	"errors"

	"github.com/quotehub/quote-api/internal/application/session"
	"github.com/quotehub/quote-api/internal/domain/entity"
	"github.com/quotehub/quote-api/internal/domain/permission"
	"github.com/quotehub/quote-api/internal/domain/repository"
)

// In-memory fakes for the persistence ports. They reproduce the scoping
// contract of the real adapters: lookups match on (company_id, id), so an
// id of another tenant behaves like a missing record.

type fakeUsers struct {
	byID    map[string]*entity.User
	byEmail map[string]*entity.User
}

func newFakeUsers(users ...*entity.User) *fakeUsers {
	f := &fakeUsers{byID: map[string]*entity.User{}, byEmail: map[string]*entity.User{}}
	for _, u := range users {
		f.byID[u.ID] = u
		f.byEmail[u.Email] = u
	}
	return f
}

func (f *fakeUsers) Create(ctx context.Context, u *entity.User) error {
	f.byID[u.ID] = u
	f.byEmail[u.Email] = u
	return nil
}
func (f *fakeUsers) GetByID(ctx context.Context, id string) (*entity.User, error) {
	return f.byID[id], nil
}
func (f *fakeUsers) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return f.byEmail[email], nil
}
func (f *fakeUsers) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.User, error) {
	out := map[string]*entity.User{}
	for _, id := range ids {
		if u := f.byID[id]; u != nil {
			out[id] = u
		}
	}
	return out, nil
}

type fakeCustomers struct {
	items []*entity.Customer
}

func (f *fakeCustomers) Create(ctx context.Context, c *entity.Customer) error {
	f.items = append(f.items, c)
	return nil
}
func (f *fakeCustomers) GetByID(ctx context.Context, companyID, id string) (*entity.Customer, error) {
	for _, c := range f.items {
		if c.CompanyID == companyID && c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCustomers) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*entity.Customer, error) {
	var out []*entity.Customer
	for _, c := range f.items {
		if c.CompanyID == companyID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeCustomers) Update(ctx context.Context, c *entity.Customer) error { return nil }
func (f *fakeCustomers) Delete(ctx context.Context, companyID, id string) error {
	for i, c := range f.items {
		if c.CompanyID == companyID && c.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeQuotes struct {
	items []*entity.Quote
}

func (f *fakeQuotes) Create(ctx context.Context, q *entity.Quote) error {
	cp := *q
	f.items = append(f.items, &cp)
	return nil
}
func (f *fakeQuotes) GetByID(ctx context.Context, companyID, id string) (*entity.Quote, error) {
	for _, q := range f.items {
		if q.CompanyID == companyID && q.ID == id {
			cp := *q
			return &cp, nil
		}
	}
	return nil, nil
}
func (f *fakeQuotes) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*repository.QuoteListItem, error) {
	var out []*repository.QuoteListItem
	for i := len(f.items) - 1; i >= 0; i-- { // newest first, insertion order
		q := f.items[i]
		if q.CompanyID == companyID {
			out = append(out, &repository.QuoteListItem{Quote: *q})
		}
	}
	return out, nil
}
func (f *fakeQuotes) LastQuoteNumber(ctx context.Context, companyID string) (string, error) {
	last := ""
	for _, q := range f.items {
		if q.CompanyID == companyID {
			last = q.QuoteNumber
		}
	}
	return last, nil
}
func (f *fakeQuotes) Update(ctx context.Context, q *entity.Quote) error {
	for i, existing := range f.items {
		if existing.CompanyID == q.CompanyID && existing.ID == q.ID {
			cp := *q
			f.items[i] = &cp
			return nil
		}
	}
	return nil
}
func (f *fakeQuotes) Delete(ctx context.Context, companyID, id string) error {
	for i, q := range f.items {
		if q.CompanyID == companyID && q.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeMemberships struct {
	items []*entity.CompanyUser
}

func (f *fakeMemberships) Create(ctx context.Context, m *entity.CompanyUser) error {
	f.items = append(f.items, m)
	return nil
}
func (f *fakeMemberships) GetByUserWithCompany(ctx context.Context, userID string) (*entity.CompanyUser, *entity.Company, error) {
	return nil, nil, nil
}
func (f *fakeMemberships) GetByCompanyAndUser(ctx context.Context, companyID, userID string) (*entity.CompanyUser, error) {
	for _, m := range f.items {
		if m.CompanyID == companyID && m.UserID == userID {
			return m, nil
		}
	}
	return nil, nil
}
func (f *fakeMemberships) ListByCompany(ctx context.Context, companyID string) ([]*entity.CompanyUser, error) {
	var out []*entity.CompanyUser
	for _, m := range f.items {
		if m.CompanyID == companyID {
			out = append(out, m)
		}
	}
	return out, nil
}
func (f *fakeMemberships) UpdateRole(ctx context.Context, companyID, userID, role string, perms entity.Permissions) error {
	for _, m := range f.items {
		if m.CompanyID == companyID && m.UserID == userID {
			m.Role = role
			m.Permissions = perms
			return nil
		}
	}
	return errors.New("membership not found")
}
func (f *fakeMemberships) Delete(ctx context.Context, companyID, userID string) error {
	for i, m := range f.items {
		if m.CompanyID == companyID && m.UserID == userID {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeCompanies struct {
	items []*entity.Company
}

func (f *fakeCompanies) Create(ctx context.Context, c *entity.Company) error {
	f.items = append(f.items, c)
	return nil
}
func (f *fakeCompanies) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	for _, c := range f.items {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}
func (f *fakeCompanies) Update(ctx context.Context, c *entity.Company) error { return nil }
func (f *fakeCompanies) List(ctx context.Context, limit, offset int) ([]*entity.Company, error) {
	return f.items, nil
}

type fakeSubscriptions struct {
	items []*entity.Subscription
}

func (f *fakeSubscriptions) Create(ctx context.Context, s *entity.Subscription) error {
	f.items = append(f.items, s)
	return nil
}
func (f *fakeSubscriptions) GetByID(ctx context.Context, id string) (*entity.Subscription, error) {
	for _, s := range f.items {
		if s.ID == id {
			return s, nil
		}
	}
	return nil, nil
}
func (f *fakeSubscriptions) GetActiveByCompany(ctx context.Context, companyID string) (*entity.Subscription, error) {
	for _, s := range f.items {
		if s.CompanyID == companyID && s.Status == entity.SubscriptionActive {
			return s, nil
		}
	}
	return nil, nil
}
func (f *fakeSubscriptions) ListActive(ctx context.Context) ([]*entity.Subscription, error) {
	var out []*entity.Subscription
	for _, s := range f.items {
		if s.Status == entity.SubscriptionActive {
			out = append(out, s)
		}
	}
	return out, nil
}
func (f *fakeSubscriptions) UpdateStatus(ctx context.Context, id, status string) error {
	for _, s := range f.items {
		if s.ID == id {
			s.Status = status
			return nil
		}
	}
	return errors.New("subscription not found")
}

// fakeSetupRunner mimics the transactional contract: records land in the
// backing fakes only when the callback succeeds.
type fakeSetupRunner struct {
	companies     *fakeCompanies
	memberships   *fakeMemberships
	subscriptions *fakeSubscriptions
	failOn        string // "", "company", "membership", "subscription"
}

func (r *fakeSetupRunner) RunSetup(ctx context.Context, fn func(
	companies repository.CompanyRepository,
	memberships repository.CompanyUserRepository,
	subscriptions repository.SubscriptionRepository,
) error) error {
	stagedCompanies := &fakeCompanies{}
	stagedMemberships := &fakeMemberships{}
	stagedSubscriptions := &fakeSubscriptions{}

	err := fn(
		&failingCompanies{fakeCompanies: stagedCompanies, fail: r.failOn == "company"},
		&failingMemberships{fakeMemberships: stagedMemberships, fail: r.failOn == "membership"},
		&failingSubscriptions{fakeSubscriptions: stagedSubscriptions, fail: r.failOn == "subscription"},
	)
	if err != nil {
		return err // rollback: staged records are dropped
	}
	r.companies.items = append(r.companies.items, stagedCompanies.items...)
	r.memberships.items = append(r.memberships.items, stagedMemberships.items...)
	r.subscriptions.items = append(r.subscriptions.items, stagedSubscriptions.items...)
	return nil
}

type failingCompanies struct {
	*fakeCompanies
	fail bool
}

func (f *failingCompanies) Create(ctx context.Context, c *entity.Company) error {
	if f.fail {
		return errors.New("insert company failed")
	}
	return f.fakeCompanies.Create(ctx, c)
}

type failingMemberships struct {
	*fakeMemberships
	fail bool
}

func (f *failingMemberships) Create(ctx context.Context, m *entity.CompanyUser) error {
	if f.fail {
		return errors.New("insert membership failed")
	}
	return f.fakeMemberships.Create(ctx, m)
}

type failingSubscriptions struct {
	*fakeSubscriptions
	fail bool
}

func (f *failingSubscriptions) Create(ctx context.Context, s *entity.Subscription) error {
	if f.fail {
		return errors.New("insert subscription failed")
	}
	return f.fakeSubscriptions.Create(ctx, s)
}

// sessionFor builds a resolved session in company c-1 with the given role.
func sessionFor(userID, role string) *session.Session {
	return &session.Session{
		User:    &entity.User{ID: userID, Email: userID + "@test.co", Status: "active"},
		Company: &entity.Company{ID: "c-1", Name: "Acme"},
		Membership: &entity.CompanyUser{
			ID: "m-" + userID, CompanyID: "c-1", UserID: userID,
			Role:        role,
			Permissions: permission.ForRole(role),
		},
	}
}

// sessionWithoutCompany builds a resolved session before company setup.
func sessionWithoutCompany(userID string) *session.Session {
	return &session.Session{
		User: &entity.User{ID: userID, Email: userID + "@test.co", Status: "active"},
	}
}
