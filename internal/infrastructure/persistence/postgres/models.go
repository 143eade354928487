package postgres

import "gorm.io/gorm"

// UserModel é o model GORM para usuários
type UserModel struct {
	ID           string  `gorm:"type:uuid;primary_key"`
	Email        string  `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string  `gorm:"type:varchar(255);not null"`
	FullName     string  `gorm:"type:varchar(500);not null"`
	Role         string  `gorm:"type:varchar(50);not null;index"`
	AvatarURL    *string `gorm:"type:varchar(500)"`
	Phone        *string `gorm:"type:varchar(50)"`
	City         *string `gorm:"type:varchar(255)"`
	State        *string `gorm:"type:varchar(255)"`
	Bio          *string `gorm:"type:text"`
	LinkedinURL  *string `gorm:"type:varchar(500)"`
	GithubURL    *string `gorm:"type:varchar(500)"`

	// Campos de talento
	BirthDate     *int64 `gorm:""`
	InterestAreas string `gorm:"type:varchar(1000)"`
	MainSkills    string `gorm:"type:varchar(1000)"`

	// Campos de RH/Gestor
	JobTitle  *string `gorm:"type:varchar(255)"`
	CompanyID *string `gorm:"type:uuid;index"`

	OnboardingComplete bool  `gorm:"not null;default:false"`
	CreatedAt          int64 `gorm:"autoCreateTime;index"`
	UpdatedAt          int64 `gorm:"autoUpdateTime"`
}

func (UserModel) TableName() string {
	return "users"
}

// CompanyModel é o model GORM para empresas
type CompanyModel struct {
	ID          string  `gorm:"type:uuid;primary_key"`
	Name        string  `gorm:"type:varchar(255);not null"`
	TaxID       string  `gorm:"type:varchar(50);uniqueIndex;not null"`
	Sector      *string `gorm:"type:varchar(255)"`
	Location    *string `gorm:"type:varchar(500)"`
	Description *string `gorm:"type:text"`
}

func (CompanyModel) TableName() string {
	return "companies"
}

// ProjectModel é o model GORM para projetos
type ProjectModel struct {
	ID               string  `gorm:"type:uuid;primary_key"`
	Title            string  `gorm:"type:varchar(255);not null"`
	Description      string  `gorm:"type:text;not null"`
	UserID           string  `gorm:"type:uuid;not null;index"`
	VideoURL         *string `gorm:"type:varchar(500)"`
	ExternalLink     *string `gorm:"type:varchar(500)"`
	Category         *string `gorm:"type:varchar(255)"`
	SubmissionStatus *string `gorm:"type:varchar(50)"`
	SubmittedAt      *int64
	ThumbnailURL     *string `gorm:"type:varchar(500)"`

	// Avaliações são removidas junto com o projeto
	Evaluations []EvaluationModel `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE"`
}

func (ProjectModel) TableName() string {
	return "projects"
}

// EvaluationModel é o model GORM para avaliações.
// EvaluatorID é só uma referência por id, sem chave estrangeira.
type EvaluationModel struct {
	ID          string `gorm:"type:uuid;primary_key"`
	ProjectID   string `gorm:"type:uuid;not null;index"`
	EvaluatorID string `gorm:"type:uuid;not null"`
	Comment     string `gorm:"type:text;not null"`
	Score       int    `gorm:"not null"`
	EvaluatedAt *int64
}

func (EvaluationModel) TableName() string {
	return "evaluations"
}

// InvitationModel é o model GORM para convites
type InvitationModel struct {
	ID          string  `gorm:"type:uuid;primary_key"`
	Title       string  `gorm:"type:varchar(100);not null"`
	Message     string  `gorm:"type:text;not null"`
	SenderID    string  `gorm:"type:uuid;not null;index"`
	RecipientID string  `gorm:"type:uuid;not null;index"`
	ProjectID   *string `gorm:"type:uuid;index"`
	Status      string  `gorm:"type:varchar(20);not null"`
	SentAt      int64   `gorm:"autoCreateTime"`
	RespondedAt *int64
}

func (InvitationModel) TableName() string {
	return "invitations"
}

// AutoMigrate cria/atualiza o schema de todas as tabelas
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&UserModel{},
		&CompanyModel{},
		&ProjectModel{},
		&EvaluationModel{},
		&InvitationModel{},
	)
}
