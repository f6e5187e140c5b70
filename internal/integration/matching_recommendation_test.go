package integration

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"campus-link/internal/config"
	"campus-link/internal/database"
	"campus-link/internal/database/migration"
	dbpostgres "campus-link/internal/database/postgres"
	"campus-link/internal/domain/matching"
	"campus-link/internal/domain/profile"
	"campus-link/internal/domain/project"
	"campus-link/internal/repository"
	"campus-link/internal/usecase"

	"github.com/google/uuid"
)

func TestIntegration_Matching_Recommendations_Upvotes(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	db := connectTestDB(t, ctx)
	defer func() { _ = db.Close() }()

	runMigrations(t, ctx, db)

	seed := seedTestData(t, ctx, db)
	defer cleanupSeed(t, ctx, db, seed)

	profileRepo := repository.NewPostgresProfileRepository(db)
	projectRepo := repository.NewPostgresProjectRepository(db)

	matchingUC := usecase.NewMatchingUsecase(projectRepo, profileRepo, nil)

	res, err := matchingUC.FindCandidates(ctx, seed.ownerID, seed.projectID, false)
	if err != nil {
		t.Fatalf("find candidates: %v", err)
	}
	if res.AIRefined {
		t.Fatalf("expected deterministic ranking without a reranker")
	}
	if len(res.Items) == 0 {
		t.Fatalf("expected at least one candidate")
	}
	for _, item := range res.Items {
		if item.UserID == seed.ownerID {
			t.Fatalf("owner must never appear as a candidate")
		}
		if item.MatchScore < matching.MinCandidateScore || item.MatchScore > 100 {
			t.Fatalf("candidate score out of range: %d", item.MatchScore)
		}
		if item.Reason == "" {
			t.Fatalf("candidate %s has empty reason", item.Name)
		}
	}
	for i := 1; i < len(res.Items); i++ {
		if res.Items[i].MatchScore > res.Items[i-1].MatchScore {
			t.Fatalf("candidates not sorted by score desc")
		}
	}

	recommendationUC := usecase.NewRecommendationUsecase(profileRepo, projectRepo, nil)

	recs, err := recommendationUC.GetRecommendedProjects(ctx, seed.candidateID, 5)
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	if len(recs) == 0 {
		t.Fatalf("expected at least one recommendation")
	}
	for _, r := range recs {
		if r.ProjectID == uuid.Nil {
			t.Fatalf("recommendation without project id")
		}
	}
	for i := 1; i < len(recs); i++ {
		if recs[i].Score > recs[i-1].Score {
			t.Fatalf("recommendations not sorted by score desc")
		}
	}

	upvotes, err := projectRepo.Upvote(ctx, seed.projectID, seed.candidateID)
	if err != nil {
		t.Fatalf("upvote: %v", err)
	}
	if upvotes < 1 {
		t.Fatalf("upvote count not incremented, got %d", upvotes)
	}
	if _, err := projectRepo.Upvote(ctx, seed.projectID, seed.candidateID); err != repository.ErrAlreadyUpvoted {
		t.Fatalf("second upvote: expected ErrAlreadyUpvoted, got %v", err)
	}
}

func connectTestDB(t *testing.T, ctx context.Context) database.DB {
	t.Helper()

	host := stringsOrDefault(os.Getenv("CAMPUSLINK_TEST_DB_HOST"), os.Getenv("DB_HOST"))
	port := stringsOrDefault(os.Getenv("CAMPUSLINK_TEST_DB_PORT"), os.Getenv("DB_PORT"))
	name := stringsOrDefault(os.Getenv("CAMPUSLINK_TEST_DB_NAME"), os.Getenv("DB_NAME"))
	user := stringsOrDefault(os.Getenv("CAMPUSLINK_TEST_DB_USER"), os.Getenv("DB_USER"))
	pass := stringsOrDefault(os.Getenv("CAMPUSLINK_TEST_DB_PASSWORD"), os.Getenv("DB_PASSWORD"))
	ssl := stringsOrDefault(os.Getenv("CAMPUSLINK_TEST_DB_SSL_MODE"), os.Getenv("DB_SSL_MODE"))

	if host == "" || port == "" || name == "" || user == "" {
		t.Skip("missing test DB env vars: set CAMPUSLINK_TEST_DB_HOST/PORT/NAME/USER/PASSWORD (or DB_HOST/DB_PORT/DB_NAME/DB_USER/DB_PASSWORD)")
	}
	if ssl == "" {
		ssl = "disable"
	}

	dbcfg := config.DatabaseConfig{
		DBHost:     host,
		DBPort:     port,
		DBName:     name,
		DBUser:     user,
		DBPassword: pass,
		DBSSLMode:  ssl,
	}

	db, err := dbpostgres.Connect(ctx, dbcfg)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	return db
}

func runMigrations(t *testing.T, ctx context.Context, db database.DB) {
	t.Helper()

	migDir := resolveMigrationsDir(t)
	r := migration.Runner{Dir: migDir}
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
}

func resolveMigrationsDir(t *testing.T) string {
	t.Helper()

	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatalf("resolve migrations dir: runtime.Caller failed")
	}

	// this file: internal/integration/matching_recommendation_test.go
	// repo root: ../../
	repoRoot := filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
	migDir := filepath.Join(repoRoot, "migrations")

	if st, err := os.Stat(migDir); err != nil || !st.IsDir() {
		t.Fatalf("resolve migrations dir: not found or not a dir: %s", migDir)
	}
	files, _ := filepath.Glob(filepath.Join(migDir, "V*__*.sql"))
	if len(files) == 0 {
		t.Fatalf("resolve migrations dir: no migration files found in %s", migDir)
	}

	return migDir
}

type seededIDs struct {
	ownerID     uuid.UUID
	candidateID uuid.UUID
	weakID      uuid.UUID
	projectID   uuid.UUID
}

func seedTestData(t *testing.T, ctx context.Context, db database.DB) seededIDs {
	t.Helper()

	profileRepo := repository.NewPostgresProfileRepository(db)
	projectRepo := repository.NewPostgresProjectRepository(db)

	out := seededIDs{
		ownerID:     uuid.New(),
		candidateID: uuid.New(),
		weakID:      uuid.New(),
	}

	ensureProfile(t, ctx, profileRepo, profile.Profile{
		UserID:           out.ownerID,
		Name:             "IT Test Owner",
		Email:            "it-owner@campus.test",
		TechSkills:       []string{"Go"},
		Interests:        []string{"Backend"},
		PreferredRole:    "Backend Developer",
		ExperienceLevel:  "Advanced",
		Availability:     "10 hrs/week",
		PersonalityStyle: "Independent",
	})
	ensureProfile(t, ctx, profileRepo, profile.Profile{
		UserID:           out.candidateID,
		Name:             "IT Test Candidate",
		Email:            "it-candidate@campus.test",
		TechSkills:       []string{"React", "Node.js"},
		Interests:        []string{"Web"},
		PreferredRole:    "Data Scientist",
		ExperienceLevel:  "Intermediate",
		Availability:     "8 hrs/week",
		PersonalityStyle: "Collaborative",
	})
	ensureProfile(t, ctx, profileRepo, profile.Profile{
		UserID: out.weakID,
		Name:   "IT Test Weak",
		Email:  "it-weak@campus.test",
	})

	created, err := projectRepo.Create(ctx, project.Project{
		OwnerID:        out.ownerID,
		Title:          "IT Test Project",
		Description:    "Seeded by the integration test.",
		Category:       "Web",
		Tags:           []string{"Web"},
		RequiredSkills: []string{"React", "Node.js"},
	})
	if err != nil {
		t.Fatalf("seed project: %v", err)
	}
	out.projectID = created.ID

	return out
}

func ensureProfile(t *testing.T, ctx context.Context, repo repository.ProfileRepository, p profile.Profile) {
	t.Helper()
	if _, err := repo.Upsert(ctx, p); err != nil {
		t.Fatalf("seed profile %s: %v", p.Name, err)
	}
}

func cleanupSeed(t *testing.T, ctx context.Context, db database.DB, seed seededIDs) {
	t.Helper()

	if seed.projectID != uuid.Nil {
		if _, err := db.Exec(ctx, `DELETE FROM project_upvotes WHERE project_id = $1`, seed.projectID); err != nil {
			t.Logf("cleanup project_upvotes: %v", err)
		}
		if _, err := db.Exec(ctx, `DELETE FROM projects WHERE id = $1`, seed.projectID); err != nil {
			t.Logf("cleanup projects: %v", err)
		}
	}
	for _, id := range []uuid.UUID{seed.ownerID, seed.candidateID, seed.weakID} {
		if _, err := db.Exec(ctx, `DELETE FROM profiles WHERE user_id = $1`, id); err != nil {
			t.Logf("cleanup profiles: %v", err)
		}
	}
}

func stringsOrDefault(v, def string) string {
	if v != "" {
		return v
	}
	return def
}
