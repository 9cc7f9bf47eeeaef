package service

import (
	"os"
	"testing"

	"bud35/internal/domain/entity"
	"bud35/internal/domain/policy"
	"bud35/internal/domain/sqlite/repository"
	"bud35/internal/utils"
	"bud35/internal/utils/uid"
	"bud35/internal/validators"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	uid.Init(1)
	if err := utils.InitTokenSigner("test-secret"); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Person{},
		&entity.Target{},
		&entity.AuditLog{},
		&entity.Sequence{},
	)
	require.NoError(t, err)
	return db
}

func newValidator() *validator.Validate {
	validate := validator.New()
	_ = validate.RegisterValidation("cadref", validators.CADRef)
	_ = validate.RegisterValidation("nodupes", validators.NoDupes)
	return validate
}

type fixture struct {
	db      *gorm.DB
	Persons *PersonService
	Users   *UserService
	Targets *TargetService
	Reports *ReportService
	Audit   *AuditService

	AuditRepo  *repository.DefaultAuditRepository
	PersonRepo *repository.DefaultPersonRepository
	UserRepo   *repository.DefaultUserRepository
	TargetRepo *repository.DefaultTargetRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	db := newTestDB(t)
	validate := newValidator()

	personRepo := repository.NewPersonRepository(db)
	targetRepo := repository.NewTargetRepository(db)
	userRepo := repository.NewUserRepository(db)
	auditRepo := repository.NewAuditRepository(db)
	sequenceRepo := repository.NewSequenceRepository(db)

	audit := NewAuditService(auditRepo)
	userPolicy := policy.NewUserPolicy()

	return &fixture{
		db:      db,
		Persons: NewPersonService(personRepo, sequenceRepo, audit, validate),
		Users:   NewUserService(userRepo, sequenceRepo, audit, userPolicy, validate),
		Targets: NewTargetService(targetRepo, personRepo, audit, validate),
		Reports: NewReportService(personRepo, targetRepo),
		Audit:   audit,

		AuditRepo:  auditRepo,
		PersonRepo: personRepo,
		UserRepo:   userRepo,
		TargetRepo: targetRepo,
	}
}

func adminActor() *entity.User {
	return &entity.User{
		ID:       "u_admin",
		FullName: "Admin",
		Email:    "admin@example.com",
		Role:     entity.RoleAdmin,
		CAD:      "USR-00001",
		Approved: true,
	}
}

func masterActor() *entity.User {
	actor := adminActor()
	actor.ID = "u_master"
	actor.Email = "master@example.com"
	actor.CAD = "MASTER-001"
	actor.IsMaster = true
	return actor
}

func (f *fixture) auditEntries(t *testing.T) []*entity.AuditLog {
	t.Helper()
	entries, err := f.AuditRepo.FindRecent(0)
	require.NoError(t, err)
	return entries
}

func auditDetails(entries []*entity.AuditLog) []string {
	details := make([]string, len(entries))
	for i, entry := range entries {
		details[i] = entry.Details
	}
	return details
}
