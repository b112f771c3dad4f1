package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/docker/go-connections/nat"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/formflowhq/formflow/internal/domain/form"
	"github.com/formflowhq/formflow/internal/domain/response"
	"github.com/formflowhq/formflow/internal/domain/user"
	"github.com/formflowhq/formflow/internal/repository"
)

// startPostgres spins up a throwaway Postgres container. Skipped under
// -short and when the docker daemon is unreachable, so the unit suite stays
// runnable everywhere.
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container test in short mode")
	}

	ctx := context.Background()
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "formflow",
			"POSTGRES_PASSWORD": "formflow",
			"POSTGRES_DB":       "formflow",
		},
		WaitingFor: wait.ForSQL("5432/tcp", "postgres", func(host string, port nat.Port) string {
			return fmt.Sprintf("postgres://formflow:formflow@%s:%s/formflow?sslmode=disable", host, port.Port())
		}).WithStartupTimeout(time.Minute),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("docker unavailable: %v", err)
	}
	t.Cleanup(func() { _ = container.Terminate(ctx) })

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=formflow password=formflow dbname=formflow sslmode=disable", host, port.Port())
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	if err := db.AutoMigrate(&user.User{}, &form.Form{}, &response.FormView{}, &response.Response{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestFormRepoPostgres(t *testing.T) {
	db := startPostgres(t)
	repos := repository.New(db)

	owner := &user.User{Username: "owner", Email: "owner@example.com", PasswordHash: "x"}
	other := &user.User{Username: "other", Email: "other@example.com", PasswordHash: "x"}
	if err := repos.User.CreateUser(owner); err != nil {
		t.Fatalf("create owner: %v", err)
	}
	if err := repos.User.CreateUser(other); err != nil {
		t.Fatalf("create other: %v", err)
	}

	f := &form.Form{
		PublicID: "pub-it-1",
		UserID:   owner.ID,
		Name:     "survey",
		Status:   form.StatusDraft,
		Questions: form.QuestionList{
			{ID: "q1", Title: "Q1", Type: form.TypeSelect, SubType: form.SubSingle, Options: []string{"a", "b"}, Logic: []form.LogicRule{
				{QuestionID: "q1", Condition: form.ConditionIs, Value: form.RuleValue{"a"}, SkipTo: "end"},
			}},
		},
	}
	if err := f.BuildSchema(); err != nil {
		t.Fatalf("schema: %v", err)
	}
	if err := repos.Form.Create(f); err != nil {
		t.Fatalf("create form: %v", err)
	}

	t.Run("jsonb round trip", func(t *testing.T) {
		got, err := repos.Form.FindByID(f.ID)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if len(got.Questions) != 1 || got.Questions[0].ID != "q1" {
			t.Fatalf("questions did not survive the round trip: %+v", got.Questions)
		}
		rule := got.Questions[0].Logic[0]
		if rule.Condition != form.ConditionIs || rule.SkipTo != "end" || len(rule.Value) != 1 {
			t.Fatalf("rule did not survive the round trip: %+v", rule)
		}
		if len(got.Schema) == 0 {
			t.Fatal("schema column is empty")
		}
	})

	t.Run("lookups are tenant scoped", func(t *testing.T) {
		if _, err := repos.Form.FindByIDForUser(f.ID, owner.ID); err != nil {
			t.Fatalf("owner lookup: %v", err)
		}
		_, err := repos.Form.FindByIDForUser(f.ID, other.ID)
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			t.Fatalf("expected record not found for the other tenant, got %v", err)
		}
	})

	t.Run("public id lookup", func(t *testing.T) {
		got, err := repos.Form.FindByPublicID("pub-it-1")
		if err != nil {
			t.Fatalf("find by public id: %v", err)
		}
		if got.ID != f.ID {
			t.Fatalf("wrong form: %d", got.ID)
		}
	})

	t.Run("update persists status", func(t *testing.T) {
		f.Status = form.StatusPublished
		if err := repos.Form.Update(f); err != nil {
			t.Fatalf("update: %v", err)
		}
		got, err := repos.Form.FindByID(f.ID)
		if err != nil {
			t.Fatalf("find: %v", err)
		}
		if got.Status != form.StatusPublished {
			t.Fatalf("expected published, got %s", got.Status)
		}
	})
}

func TestResponseRepoPostgresCounts(t *testing.T) {
	db := startPostgres(t)
	repos := repository.New(db)

	owner := &user.User{Username: "owner", Email: "owner@example.com", PasswordHash: "x"}
	if err := repos.User.CreateUser(owner); err != nil {
		t.Fatalf("create owner: %v", err)
	}
	f := &form.Form{PublicID: "pub-it-2", UserID: owner.ID, Name: "survey", Status: form.StatusPublished}
	if err := repos.Form.Create(f); err != nil {
		t.Fatalf("create form: %v", err)
	}

	now := time.Now().UTC().Truncate(time.Second)
	stamp := func(ts time.Time) gorm.Model { return gorm.Model{CreatedAt: ts} }

	views := []response.FormView{
		{Model: stamp(now.Add(-time.Hour)), FormID: f.ID},
		{Model: stamp(now.Add(-2 * 24 * time.Hour)), FormID: f.ID},
		{Model: stamp(now.Add(-10 * 24 * time.Hour)), FormID: f.ID},
	}
	for i := range views {
		if err := repos.Response.CreateView(&views[i]); err != nil {
			t.Fatalf("create view: %v", err)
		}
	}
	resp := &response.Response{Model: stamp(now.Add(-time.Hour)), FormID: f.ID, FormViewID: views[0].ID}
	resp.Answers = map[string]any{"q1": "a"}
	if err := repos.Response.CreateResponse(resp); err != nil {
		t.Fatalf("create response: %v", err)
	}

	weekAgo := now.Add(-7 * 24 * time.Hour)
	twoWeeksAgo := now.Add(-14 * 24 * time.Hour)

	count, err := repos.Response.CountViews(f.ID, weekAgo, now.Add(time.Second))
	if err != nil {
		t.Fatalf("count views: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 views in the trailing week, got %d", count)
	}

	count, err = repos.Response.CountViews(f.ID, twoWeeksAgo, weekAgo)
	if err != nil {
		t.Fatalf("count previous views: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 view in the previous week, got %d", count)
	}

	count, err = repos.Response.CountResponses(f.ID, weekAgo, now.Add(time.Second))
	if err != nil {
		t.Fatalf("count responses: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 response, got %d", count)
	}
}
