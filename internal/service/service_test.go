package service

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/BTulkas/Foster-Finder/internal/database"
	"github.com/BTulkas/Foster-Finder/internal/models"
	"github.com/BTulkas/Foster-Finder/internal/repository"
	"github.com/BTulkas/Foster-Finder/pkg/utils"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestMain(m *testing.M) {
	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, time.Hour, time.Hour)
	os.Exit(m.Run())
}

type testEnv struct {
	db         *gorm.DB
	auth       *AuthService
	clinics    *ClinicService
	volunteers *VolunteerService
	phoneRepo  *repository.PhoneRepository
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	// A named in-memory database keeps all connections of this test on the
	// same data while isolating parallel tests from each other.
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, database.Migrate(db))

	for _, area := range []string{"north", "center", "south"} {
		require.NoError(t, db.Create(&models.Area{Area: area}).Error)
	}
	for _, species := range []string{"cat", "dog"} {
		require.NoError(t, db.Create(&models.FosterSpecies{Species: species}).Error)
	}

	log := zap.NewNop().Sugar()
	clinicRepo := repository.NewClinicRepo(db)
	volunteerRepo := repository.NewVolunteerRepo(db)
	phoneRepo := repository.NewPhoneRepo(db)
	lookupRepo := repository.NewLookupRepo(db)
	auditRepo := repository.NewAuditRepo(db)

	return &testEnv{
		db:         db,
		auth:       NewAuthService(clinicRepo, phoneRepo, lookupRepo, auditRepo, &LogMailer{Logger: log}, log),
		clinics:    NewClinicService(clinicRepo, phoneRepo, lookupRepo, auditRepo, log),
		volunteers: NewVolunteerService(volunteerRepo, phoneRepo, lookupRepo, auditRepo, log),
		phoneRepo:  phoneRepo,
	}
}

func (env *testEnv) countPhones(t *testing.T) int64 {
	t.Helper()
	var count int64
	require.NoError(t, env.db.Model(&models.PhoneNumber{}).Count(&count).Error)
	return count
}
