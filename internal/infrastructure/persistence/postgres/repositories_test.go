package postgres

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/simplyinvite/showcase-backend/internal/domain/entities"
	"github.com/simplyinvite/showcase-backend/internal/domain/repositories"
	"github.com/simplyinvite/showcase-backend/internal/domain/valueobjects"
)

var testDBSeq atomic.Int64

// setupTestDB abre um SQLite em memória com o mesmo schema do Postgres.
// Cada teste recebe um banco nomeado próprio para não vazar estado.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", testDBSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("falha ao abrir banco de teste: %v", err)
	}
	if err := AutoMigrate(db); err != nil {
		t.Fatalf("falha ao migrar schema: %v", err)
	}

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func testEmail(t *testing.T, s string) valueobjects.Email {
	t.Helper()
	email, err := valueobjects.NewEmail(s)
	if err != nil {
		t.Fatalf("email inválido no setup: %v", err)
	}
	return email
}

func TestUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("cria usuário com id e timestamps atribuídos", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		user := &entities.User{
			Email:        testEmail(t, "ana@example.com"),
			PasswordHash: "hash",
			FullName:     "Ana Silva",
			Role:         entities.RoleTalent,
		}
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("falha ao criar: %v", err)
		}

		if user.ID == "" {
			t.Error("esperava ID atribuído na criação")
		}
		if user.CreatedAt.IsZero() {
			t.Error("esperava CreatedAt preenchido pelo store")
		}
	})

	t.Run("busca por email", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		user := &entities.User{
			Email:        testEmail(t, "ana@example.com"),
			PasswordHash: "hash",
			FullName:     "Ana Silva",
			Role:         entities.RoleTalent,
		}
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("falha ao criar: %v", err)
		}

		found, err := repo.FindByEmail(ctx, "ana@example.com")
		if err != nil {
			t.Fatalf("falha na busca: %v", err)
		}
		if found == nil || found.ID != user.ID {
			t.Error("esperava encontrar o usuário criado")
		}

		missing, err := repo.FindByEmail(ctx, "ninguem@example.com")
		if err != nil {
			t.Fatalf("falha na busca: %v", err)
		}
		if missing != nil {
			t.Error("email desconhecido deveria resultar em nil, não erro")
		}
	})

	t.Run("lista filtrando por role", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		seed := []*entities.User{
			{Email: testEmail(t, "t1@example.com"), PasswordHash: "h", FullName: "Talento Um", Role: entities.RoleTalent},
			{Email: testEmail(t, "t2@example.com"), PasswordHash: "h", FullName: "Talento Dois", Role: entities.RoleTalent},
			{Email: testEmail(t, "rh@example.com"), PasswordHash: "h", FullName: "RH", Role: entities.RoleHR},
		}
		for _, u := range seed {
			if err := repo.Create(ctx, u); err != nil {
				t.Fatalf("falha ao criar: %v", err)
			}
		}

		role := entities.RoleTalent
		talents, err := repo.List(ctx, repositories.UserFilters{Role: &role})
		if err != nil {
			t.Fatalf("falha na listagem: %v", err)
		}
		if len(talents) != 2 {
			t.Errorf("esperava 2 talentos, obteve %d", len(talents))
		}
	})

	t.Run("atualiza e remove", func(t *testing.T) {
		repo := NewUserRepository(setupTestDB(t))

		user := &entities.User{
			Email:        testEmail(t, "ana@example.com"),
			PasswordHash: "hash",
			FullName:     "Ana Silva",
			Role:         entities.RoleTalent,
		}
		if err := repo.Create(ctx, user); err != nil {
			t.Fatalf("falha ao criar: %v", err)
		}

		user.FullName = "Ana Souza"
		if err := repo.Update(ctx, user); err != nil {
			t.Fatalf("falha ao atualizar: %v", err)
		}

		found, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("falha na busca: %v", err)
		}
		if found.FullName != "Ana Souza" {
			t.Errorf("esperava nome atualizado, obteve %q", found.FullName)
		}

		if err := repo.Delete(ctx, user.ID); err != nil {
			t.Fatalf("falha ao remover: %v", err)
		}
		gone, err := repo.FindByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("falha na busca: %v", err)
		}
		if gone != nil {
			t.Error("usuário removido não deveria ser encontrado")
		}
	})
}

func TestInvitationRepository(t *testing.T) {
	ctx := context.Background()

	newPending := func(sender, recipient string) *entities.Invitation {
		return &entities.Invitation{
			Title:       "Convite para entrevista",
			Message:     "Gostamos do seu projeto",
			SenderID:    sender,
			RecipientID: recipient,
			Status:      entities.InvitationPending,
		}
	}

	t.Run("criação define SentAt", func(t *testing.T) {
		repo := NewInvitationRepository(setupTestDB(t))

		invitation := newPending("hr-1", "talent-1")
		if err := repo.Create(ctx, invitation); err != nil {
			t.Fatalf("falha ao criar: %v", err)
		}

		if invitation.ID == "" {
			t.Error("esperava ID atribuído")
		}
		if invitation.SentAt.IsZero() {
			t.Error("esperava SentAt preenchido pelo store")
		}
	})

	t.Run("resposta persistida sobrevive à releitura", func(t *testing.T) {
		repo := NewInvitationRepository(setupTestDB(t))

		invitation := newPending("hr-1", "talent-1")
		if err := repo.Create(ctx, invitation); err != nil {
			t.Fatalf("falha ao criar: %v", err)
		}

		now := time.Now()
		if err := invitation.Respond("talent-1", entities.InvitationAccepted, now); err != nil {
			t.Fatalf("falha ao responder: %v", err)
		}
		if err := repo.Update(ctx, invitation); err != nil {
			t.Fatalf("falha ao atualizar: %v", err)
		}

		found, err := repo.FindByID(ctx, invitation.ID)
		if err != nil {
			t.Fatalf("falha na busca: %v", err)
		}
		if found.Status != entities.InvitationAccepted {
			t.Errorf("esperava status %s, obteve %s", entities.InvitationAccepted, found.Status)
		}
		if found.RespondedAt == nil {
			t.Error("esperava RespondedAt persistido")
		}
	})

	t.Run("caixas de entrada e saída", func(t *testing.T) {
		repo := NewInvitationRepository(setupTestDB(t))

		if err := repo.Create(ctx, newPending("hr-1", "talent-1")); err != nil {
			t.Fatalf("falha ao criar: %v", err)
		}
		if err := repo.Create(ctx, newPending("hr-1", "talent-2")); err != nil {
			t.Fatalf("falha ao criar: %v", err)
		}

		received, err := repo.FindByRecipientID(ctx, "talent-1")
		if err != nil {
			t.Fatalf("falha na busca: %v", err)
		}
		if len(received) != 1 {
			t.Errorf("esperava 1 convite recebido, obteve %d", len(received))
		}

		sent, err := repo.FindBySenderID(ctx, "hr-1")
		if err != nil {
			t.Fatalf("falha na busca: %v", err)
		}
		if len(sent) != 2 {
			t.Errorf("esperava 2 convites enviados, obteve %d", len(sent))
		}
	})

	t.Run("convite inexistente resulta em nil", func(t *testing.T) {
		repo := NewInvitationRepository(setupTestDB(t))

		found, err := repo.FindByID(ctx, "nao-existe")
		if err != nil {
			t.Fatalf("falha na busca: %v", err)
		}
		if found != nil {
			t.Error("esperava nil para convite inexistente")
		}
	})
}
