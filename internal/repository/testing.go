//go:build integration
// +build integration

package repository

import (
	"testing"

	"github.com/ffauzan/nc-api/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// TestContext holds the test database and repositories.
type TestContext struct {
	DB              *gorm.DB
	UserRepo        UserRepository
	CourseRepo      CourseRepository
	PreferenceRepo  PreferenceRepository
	InteractionRepo InteractionRepository
}

// SetupTestDB initializes an in-memory sqlite database with the full schema
// and returns repositories bound to it. Cleanup is automatic.
func SetupTestDB(t *testing.T) *TestContext {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "Failed to open sqlite test database")

	err = db.AutoMigrate(
		&models.User{},
		&models.Course{},
		&models.UserPreference{},
		&models.UserInteraction{},
	)
	require.NoError(t, err, "Failed to migrate schema")

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			_ = sqlDB.Close()
		}
	})

	return &TestContext{
		DB:              db,
		UserRepo:        NewUserRepository(db),
		CourseRepo:      NewCourseRepository(db),
		PreferenceRepo:  NewPreferenceRepository(db),
		InteractionRepo: NewInteractionRepository(db),
	}
}

// CreateTestUser inserts a user with a bcrypt hash of "password".
func CreateTestUser(t *testing.T, ctx *TestContext, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: string(hash),
	}
	require.NoError(t, ctx.DB.Create(user).Error)
	return user
}

// CreateTestCourse inserts a course with sane defaults.
func CreateTestCourse(t *testing.T, ctx *TestContext, courseID int64, title, subject string) *models.Course {
	t.Helper()

	course := &models.Course{
		CourseID:       courseID,
		Title:          title,
		Subject:        subject,
		Level:          "All Levels",
		IsPaid:         true,
		Price:          20,
		NumSubscribers: courseID * 10,
	}
	require.NoError(t, ctx.DB.Create(course).Error)
	return course
}

// CreateTestInteraction inserts a view interaction for the given pair.
func CreateTestInteraction(t *testing.T, ctx *TestContext, userID, courseID int64) *models.UserInteraction {
	t.Helper()

	interaction := &models.UserInteraction{
		ID:       uuid.NewString(),
		UserID:   userID,
		CourseID: courseID,
		Type:     models.InteractionView,
	}
	require.NoError(t, ctx.DB.Create(interaction).Error)
	return interaction
}
