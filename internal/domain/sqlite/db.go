package sqlite

import (
	"os"
	"path/filepath"
	"time"

	"bud35/internal/domain/entity"
	"bud35/internal/utils"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func Init() (*gorm.DB, error) {
	dbPath := os.Getenv("DB_PATH")
	if dbPath == "" {
		dbPath = filepath.Join(".", "bud35.db")
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Person{},
		&entity.Target{},
		&entity.AuditLog{},
		&entity.Sequence{},
	)
	if err != nil {
		return nil, err
	}

	sqlDB, _ := db.DB()
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := Seed(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Seed populates the initial data set on first run: the master admin
// account and two sample person records. Targets and the audit log start
// empty. Sequence counters are primed from the highest CAD already issued
// so pre-seeded records keep the series intact.
func Seed(db *gorm.DB) error {
	var userCount int64
	if err := db.Model(&entity.User{}).Count(&userCount).Error; err != nil {
		return err
	}
	if userCount == 0 {
		master := &entity.User{
			ID:          "u_admin_master",
			FullName:    "Campinas Mais Segura",
			DisplayName: "Admin Master",
			Email:       "campinasmaissegura@gmail.com",
			Role:        entity.RoleAdmin,
			CAD:         "MASTER-001",
			Approved:    true,
			IsMaster:    true,
			CreatedAt:   utils.NowUTC(),
			UpdatedAt:   utils.NowUTC(),
		}
		if err := db.Create(master).Error; err != nil {
			return err
		}
	}

	var personCount int64
	if err := db.Model(&entity.Person{}).Count(&personCount).Error; err != nil {
		return err
	}
	if personCount == 0 {
		if err := db.Create(seedPersons()).Error; err != nil {
			return err
		}
	}

	return seedSequences(db)
}

func seedPersons() []*entity.Person {
	return []*entity.Person{
		{
			ID:               "p1",
			CAD:              "CAD-00001",
			FullName:         "Ricardo Mendes",
			Nickname:         "Rick",
			Status:           entity.StatusProcurado,
			Photos:           entity.StringList{"https://picsum.photos/200/200?random=1"},
			Observations:     "Indivíduo perigoso, visto pela última vez na zona norte.",
			DangerLevel:      entity.DangerAlta,
			Faccionado:       true,
			CriminalArticles: "Art. 157, Art. 33",
			BirthDate:        "1990-05-15",
			MotherName:       "Maria Mendes",
			City:             "Campinas",
			State:            "SP",
			CreatedAt:        time.Date(2023, 10, 1, 10, 0, 0, 0, time.UTC).UnixMilli(),
		},
		{
			ID:          "p2",
			CAD:         "CAD-00002",
			FullName:    "João Souza",
			Nickname:    "Jota",
			Status:      entity.StatusPreso,
			Photos:      entity.StringList{"https://picsum.photos/200/200?random=2"},
			DangerLevel: entity.DangerMedia,
			MotherName:  "Ana Souza",
			CreatedAt:   time.Date(2023, 9, 15, 14, 30, 0, 0, time.UTC).UnixMilli(),
		},
	}
}

// seedSequences primes the person and user CAD counters from the highest
// suffix found in existing records. Records of other namespaces (the master
// account's MASTER-001) contribute nothing.
func seedSequences(db *gorm.DB) error {
	var exists int64
	if err := db.Model(&entity.Sequence{}).Count(&exists).Error; err != nil {
		return err
	}
	if exists > 0 {
		return nil
	}

	var personCADs []string
	if err := db.Model(&entity.Person{}).Pluck("cad", &personCADs).Error; err != nil {
		return err
	}
	var userCADs []string
	if err := db.Model(&entity.User{}).Pluck("cad", &userCADs).Error; err != nil {
		return err
	}

	seqs := []*entity.Sequence{
		{Name: entity.SequencePersonCAD, Value: maxCADNumber("CAD", personCADs)},
		{Name: entity.SequenceUserCAD, Value: maxCADNumber("USR", userCADs)},
	}
	return db.Create(seqs).Error
}

func maxCADNumber(prefix string, cads []string) int64 {
	var max int64
	for _, cad := range cads {
		if n := utils.ParseCADNumber(prefix, cad); n > max {
			max = n
		}
	}
	return max
}
