package services

import (
	"context"
	"strconv"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	"github.com/simplyinvite/showcase-backend/internal/domain/ports"
	"github.com/simplyinvite/showcase-backend/internal/domain/repositories"
)

// Fakes em memória para os testes dos services. Implementam as mesmas
// interfaces dos repositórios GORM, sem banco.

type fakeUserRepo struct {
	users map[string]*entities.User
	seq   int
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepo) Create(_ context.Context, user *entities.User) error {
	if user.ID == "" {
		r.seq++
		user.ID = "user-" + strconv.Itoa(r.seq)
	}
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) FindByID(_ context.Context, id string) (*entities.User, error) {
	return r.users[id], nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Email.String() == email {
			return u, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *entities.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) Delete(_ context.Context, id string) error {
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) List(_ context.Context, filters repositories.UserFilters) ([]*entities.User, error) {
	out := []*entities.User{}
	for _, u := range r.users {
		if filters.Role != nil && !u.Role.Is(*filters.Role) {
			continue
		}
		out = append(out, u)
	}
	return out, nil
}

type fakeCompanyRepo struct {
	companies map[string]*entities.Company
	seq       int
}

func newFakeCompanyRepo() *fakeCompanyRepo {
	return &fakeCompanyRepo{companies: make(map[string]*entities.Company)}
}

func (r *fakeCompanyRepo) Create(_ context.Context, company *entities.Company) error {
	if company.ID == "" {
		r.seq++
		company.ID = "company-" + strconv.Itoa(r.seq)
	}
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) FindByID(_ context.Context, id string) (*entities.Company, error) {
	return r.companies[id], nil
}

func (r *fakeCompanyRepo) Update(_ context.Context, company *entities.Company) error {
	r.companies[company.ID] = company
	return nil
}

func (r *fakeCompanyRepo) Delete(_ context.Context, id string) error {
	delete(r.companies, id)
	return nil
}

func (r *fakeCompanyRepo) List(_ context.Context) ([]*entities.Company, error) {
	out := []*entities.Company{}
	for _, c := range r.companies {
		out = append(out, c)
	}
	return out, nil
}

type fakeProjectRepo struct {
	projects map[string]*entities.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[string]*entities.Project)}
}

func (r *fakeProjectRepo) FindByID(_ context.Context, id string) (*entities.Project, error) {
	return r.projects[id], nil
}

func (r *fakeProjectRepo) FindByUserID(_ context.Context, userID string) ([]*entities.Project, error) {
	out := []*entities.Project{}
	for _, p := range r.projects {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeProjectRepo) List(_ context.Context) ([]*entities.Project, error) {
	out := []*entities.Project{}
	for _, p := range r.projects {
		out = append(out, p)
	}
	return out, nil
}

type fakeEvaluationRepo struct {
	evaluations map[string][]*entities.Evaluation // por projeto
}

func newFakeEvaluationRepo() *fakeEvaluationRepo {
	return &fakeEvaluationRepo{evaluations: make(map[string][]*entities.Evaluation)}
}

func (r *fakeEvaluationRepo) FindByProjectID(_ context.Context, projectID string) ([]*entities.Evaluation, error) {
	return r.evaluations[projectID], nil
}

type fakeInvitationRepo struct {
	invitations map[string]*entities.Invitation
	seq         int
}

func newFakeInvitationRepo() *fakeInvitationRepo {
	return &fakeInvitationRepo{invitations: make(map[string]*entities.Invitation)}
}

func (r *fakeInvitationRepo) Create(_ context.Context, invitation *entities.Invitation) error {
	if invitation.ID == "" {
		r.seq++
		invitation.ID = "inv-" + strconv.Itoa(r.seq)
	}
	copied := *invitation
	r.invitations[invitation.ID] = &copied
	return nil
}

func (r *fakeInvitationRepo) FindByID(_ context.Context, id string) (*entities.Invitation, error) {
	inv, ok := r.invitations[id]
	if !ok {
		return nil, nil
	}
	copied := *inv
	return &copied, nil
}

func (r *fakeInvitationRepo) FindByRecipientID(_ context.Context, recipientID string) ([]*entities.Invitation, error) {
	out := []*entities.Invitation{}
	for _, inv := range r.invitations {
		if inv.RecipientID == recipientID {
			copied := *inv
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeInvitationRepo) FindBySenderID(_ context.Context, senderID string) ([]*entities.Invitation, error) {
	out := []*entities.Invitation{}
	for _, inv := range r.invitations {
		if inv.SenderID == senderID {
			copied := *inv
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeInvitationRepo) Update(_ context.Context, invitation *entities.Invitation) error {
	copied := *invitation
	r.invitations[invitation.ID] = &copied
	return nil
}

// fakeUnitOfWork executa a função direto, sem transação real
type fakeUnitOfWork struct{}

func (fakeUnitOfWork) Begin(ctx context.Context) (context.Context, error) { return ctx, nil }
func (fakeUnitOfWork) Commit(context.Context) error                       { return nil }
func (fakeUnitOfWork) Rollback(context.Context) error                     { return nil }
func (fakeUnitOfWork) WithTransaction(ctx context.Context, fn func(context.Context) error) error {
	return fn(ctx)
}

// fakeNotifier registra as notificações enviadas
type fakeNotifier struct {
	sent []sentNotification
}

type sentNotification struct {
	userID string
	n      ports.Notification
}

func (f *fakeNotifier) Notify(userID string, n ports.Notification) {
	f.sent = append(f.sent, sentNotification{userID: userID, n: n})
}

// fakeHasher evita o custo do bcrypt nos testes
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }
func (fakeHasher) Verify(password, hash string) bool    { return "hashed:"+password == hash }

type fakeTokenIssuer struct{}

func (fakeTokenIssuer) Generate(user *entities.User) (string, error) {
	return "token-" + user.ID, nil
}

// nopLogger descarta tudo
type nopLogger struct{}

func (nopLogger) Info(string, ...any)        {}
func (nopLogger) Error(string, ...any)       {}
func (nopLogger) Debug(string, ...any)       {}
func (nopLogger) Warn(string, ...any)        {}
func (l nopLogger) With(...any) ports.Logger { return l }
