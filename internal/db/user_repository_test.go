package db

import (
	"path/filepath"
	"testing"

	"github.com/noesis-app/noesis/internal/models"
)

func newTestRepositories(t *testing.T) *Repositories {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "noesis-repo-test.db")
	database, err := OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := database.DB()
	if err != nil {
		t.Fatalf("open sql db: %v", err)
	}
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return NewRepositories(database)
}

func TestUserRepository_NormalizedEmailLookupIsCaseInsensitive(t *testing.T) {
	repos := newTestRepositories(t)

	user := models.User{
		PublicID: "pub-1",
		Email:    "Person@Example.com",
		Username: "person",
		Role:     models.RoleStudent,
		Level:    1,
	}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	found, err := repos.Users.FindByNormalizedEmail("person@example.com")
	if err != nil {
		t.Fatalf("find by normalized email: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, found.ID)
	}

	exists, err := repos.Users.ExistsByNormalizedEmail("person@example.com")
	if err != nil {
		t.Fatalf("exists by normalized email: %v", err)
	}
	if !exists {
		t.Fatal("expected existence check to match regardless of stored case")
	}
}

func TestUserRepository_FindByProviderID(t *testing.T) {
	repos := newTestRepositories(t)

	googleID := "g-123"
	user := models.User{
		PublicID: "pub-1",
		Email:    "person@example.com",
		Username: "person",
		Role:     models.RoleStudent,
		Level:    1,
		GoogleID: &googleID,
	}
	if err := repos.Users.Create(&user); err != nil {
		t.Fatalf("create user: %v", err)
	}

	found, err := repos.Users.FindByProviderID(models.ProviderGoogle, "g-123")
	if err != nil {
		t.Fatalf("find by provider id: %v", err)
	}
	if found.ID != user.ID {
		t.Fatalf("expected user %d, got %d", user.ID, found.ID)
	}

	if _, err := repos.Users.FindByProviderID(models.ProviderGitHub, "g-123"); err == nil {
		t.Fatal("expected lookup under a different provider to miss")
	}
	if _, err := repos.Users.FindByProviderID("myspace", "g-123"); err == nil {
		t.Fatal("expected unknown provider to miss")
	}
}

func TestUserRepository_ProviderIDsAreUniquePerProvider(t *testing.T) {
	repos := newTestRepositories(t)

	firstID := "g-123"
	first := models.User{
		PublicID: "pub-1",
		Email:    "one@example.com",
		Username: "one",
		Role:     models.RoleStudent,
		Level:    1,
		GoogleID: &firstID,
	}
	if err := repos.Users.Create(&first); err != nil {
		t.Fatalf("create first user: %v", err)
	}

	duplicateID := "g-123"
	second := models.User{
		PublicID: "pub-2",
		Email:    "two@example.com",
		Username: "two",
		Role:     models.RoleStudent,
		Level:    1,
		GoogleID: &duplicateID,
	}
	if err := repos.Users.Create(&second); err == nil {
		t.Fatal("expected duplicate google id insert to fail")
	}

	// Users without a provider id do not collide with each other.
	third := models.User{PublicID: "pub-3", Email: "three@example.com", Username: "three", Role: models.RoleStudent, Level: 1}
	fourth := models.User{PublicID: "pub-4", Email: "four@example.com", Username: "four", Role: models.RoleStudent, Level: 1}
	if err := repos.Users.Create(&third); err != nil {
		t.Fatalf("create third user: %v", err)
	}
	if err := repos.Users.Create(&fourth); err != nil {
		t.Fatalf("create fourth user: %v", err)
	}
}
