package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"usernotes-srv/internal/job"
	kafkaDelivery "usernotes-srv/internal/job/delivery/kafka"
	"usernotes-srv/internal/job/repository"
	"usernotes-srv/internal/model"
	"usernotes-srv/internal/notes"
	notesengine "usernotes-srv/internal/notes/usecase"
	"usernotes-srv/internal/user"
	"usernotes-srv/pkg/log"
	"usernotes-srv/pkg/paginator"
)

type fakeRepo struct {
	mu sync.Mutex

	runs      map[string]model.JobRun
	logs      []model.UserProcessLog
	insertErr error
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{runs: map[string]model.JobRun{}}
}

func (f *fakeRepo) CreateRun(ctx context.Context, run *model.JobRun) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.runs[run.ID] = *run
	return nil
}

func (f *fakeRepo) UpdateRun(ctx context.Context, run *model.JobRun) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.runs[run.ID]; !ok {
		return repository.ErrRunNotFound
	}
	f.runs[run.ID] = *run
	return nil
}

func (f *fakeRepo) GetRun(ctx context.Context, runID string) (model.JobRun, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	run, ok := f.runs[runID]
	if !ok {
		return model.JobRun{}, repository.ErrRunNotFound
	}
	return run, nil
}

func (f *fakeRepo) ListRuns(ctx context.Context, opts repository.ListRunsOptions) ([]model.JobRun, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.JobRun, 0, len(f.runs))
	for _, run := range f.runs {
		out = append(out, run)
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) InsertLog(ctx context.Context, processLog *model.UserProcessLog) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	processLog.ID = int64(len(f.logs) + 1)
	f.logs = append(f.logs, *processLog)
	return nil
}

func (f *fakeRepo) ListLogs(ctx context.Context, opts repository.ListLogsOptions) ([]model.UserProcessLog, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.UserProcessLog
	for _, l := range f.logs {
		if l.RunID == opts.RunID {
			out = append(out, l)
		}
	}
	return out, int64(len(out)), nil
}

func (f *fakeRepo) storedLogs() []model.UserProcessLog {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.UserProcessLog, len(f.logs))
	copy(out, f.logs)
	return out
}

type fakeProgressCache struct {
	mu       sync.Mutex
	progress map[string]repository.Progress
}

func newFakeProgressCache() *fakeProgressCache {
	return &fakeProgressCache{progress: map[string]repository.Progress{}}
}

func (f *fakeProgressCache) SetProgress(ctx context.Context, runID string, p repository.Progress) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.progress[runID] = p
	return nil
}

func (f *fakeProgressCache) GetProgress(ctx context.Context, runID string) (repository.Progress, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.progress[runID]
	if !ok {
		return repository.Progress{}, repository.ErrProgressMiss
	}
	return p, nil
}

func (f *fakeProgressCache) DeleteProgress(ctx context.Context, runID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.progress, runID)
	return nil
}

type fakeUserUC struct {
	mu sync.Mutex

	loaded  user.LoadOutput
	loadErr error

	failPersist map[string]error
	persisted   []string

	noteTypes []model.NoteType
}

func (f *fakeUserUC) LoadSet(ctx context.Context, sc model.Scope, input user.LoadSetInput) (user.LoadOutput, error) {
	return f.loaded, f.loadErr
}

func (f *fakeUserUC) LoadUsers(ctx context.Context, sc model.Scope, input user.LoadUsersInput) (user.LoadOutput, error) {
	return f.loaded, f.loadErr
}

func (f *fakeUserUC) Persist(ctx context.Context, userID string, record model.UserRecord) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err, ok := f.failPersist[userID]; ok {
		return err
	}
	f.persisted = append(f.persisted, userID)
	return nil
}

func (f *fakeUserUC) NoteTypes(ctx context.Context) ([]model.NoteType, error) {
	if f.noteTypes != nil {
		return f.noteTypes, nil
	}
	return model.DefaultNoteTypes, nil
}

func (f *fakeUserUC) persistedIDs() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.persisted))
	copy(out, f.persisted)
	return out
}

// fakePublisher records lifecycle events and signals run termination.
type fakePublisher struct {
	mu     sync.Mutex
	events []string
	done   chan model.JobRun
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{done: make(chan model.JobRun, 1)}
}

func (f *fakePublisher) PublishJobEvent(ctx context.Context, eventType string, run model.JobRun) {
	f.mu.Lock()
	f.events = append(f.events, eventType)
	f.mu.Unlock()

	if eventType == kafkaDelivery.EventTypeJobCompleted || eventType == kafkaDelivery.EventTypeJobFailed {
		f.done <- run
	}
}

func (f *fakePublisher) published() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.events))
	copy(out, f.events)
	return out
}

func (f *fakePublisher) waitForTermination(t *testing.T) model.JobRun {
	t.Helper()
	select {
	case run := <-f.done:
		return run
	case <-time.After(5 * time.Second):
		t.Fatal("run did not terminate in time")
		return model.JobRun{}
	}
}

func newJobUseCase(repo *fakeRepo, cache *fakeProgressCache, userUC *fakeUserUC, pub *fakePublisher) *implUseCase {
	return &implUseCase{
		repo:      repo,
		cacheRepo: cache,
		notesUC:   notesengine.New(log.NewNop(), time.UTC),
		userUC:    userUC,
		publisher: pub,
		l:         log.NewNop(),
	}
}

func noteRecord(id string, texts ...string) model.UserRecord {
	rec := model.UserRecord{PrimaryID: id, Notes: []model.Note{}}
	for _, text := range texts {
		rec.Notes = append(rec.Notes, model.Note{
			Text:        text,
			Type:        &model.NoteType{Value: "OTHER", Desc: "Other"},
			CreatedBy:   "exl_impl",
			CreatedDate: "2024-01-15T10:00:00Z",
		})
	}
	return rec
}

func loadedUsers(records ...model.UserRecord) user.LoadOutput {
	return user.LoadOutput{Users: records, Summary: user.Summarize(records)}
}

func deleteConfig(text string) []job.Parameter {
	return []job.Parameter{
		actionParam(notes.ActionDelete),
		textParam(text),
	}
}

func TestCreate(t *testing.T) {
	sc := model.Scope{UserID: "op-1", Username: "operator"}

	t.Run("first violation blocks the run", func(t *testing.T) {
		repo := newFakeRepo()
		userUC := &fakeUserUC{loaded: loadedUsers()}
		uc := newJobUseCase(repo, newFakeProgressCache(), userUC, newFakePublisher())

		_, err := uc.Create(context.Background(), sc, job.CreateInput{
			Parameters: deleteConfig("overdue"),
			Intake:     job.Intake{UserIDs: []string{}},
		})
		if !errors.Is(err, job.ErrNoUsersLoaded) {
			t.Errorf("got %v, want ErrNoUsersLoaded", err)
		}
		if len(repo.runs) != 0 {
			t.Errorf("got %d stored runs, want 0", len(repo.runs))
		}
	})

	t.Run("unknown note type blocks the run", func(t *testing.T) {
		userUC := &fakeUserUC{loaded: loadedUsers(noteRecord("u1", "overdue book"))}
		uc := newJobUseCase(newFakeRepo(), newFakeProgressCache(), userUC, newFakePublisher())

		_, err := uc.Create(context.Background(), sc, job.CreateInput{
			Parameters: []job.Parameter{
				actionParam(notes.ActionModify),
				textParam("overdue"),
				{ID: job.ParamNoteType, NoteType: &model.NoteType{Value: "NO_SUCH_TYPE"}},
			},
			Intake: job.Intake{UserIDs: []string{"u1"}},
		})
		if !errors.Is(err, job.ErrUnknownNoteType) {
			t.Errorf("got %v, want ErrUnknownNoteType", err)
		}
	})

	t.Run("accepted run deletes matching notes", func(t *testing.T) {
		repo := newFakeRepo()
		pub := newFakePublisher()
		userUC := &fakeUserUC{loaded: loadedUsers(
			noteRecord("u1", "overdue book", "address change"),
			noteRecord("u2", "nothing relevant"),
		)}
		uc := newJobUseCase(repo, newFakeProgressCache(), userUC, pub)

		out, err := uc.Create(context.Background(), sc, job.CreateInput{
			Parameters: deleteConfig("overdue"),
			Intake:     job.Intake{UserIDs: []string{"u1", "u2"}},
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if out.Status != model.RunStatusRunning {
			t.Errorf("status = %q, want %q", out.Status, model.RunStatusRunning)
		}

		run := pub.waitForTermination(t)
		if run.Status != model.RunStatusCompleted {
			t.Fatalf("final status = %q, want %q", run.Status, model.RunStatusCompleted)
		}
		if run.Processed != 2 || run.ModifiedUsers != 1 || run.NoMatchUsers != 1 || run.FailedUsers != 0 {
			t.Errorf("counters = processed %d modified %d nomatch %d failed %d, want 2/1/1/0",
				run.Processed, run.ModifiedUsers, run.NoMatchUsers, run.FailedUsers)
		}

		if got := userUC.persistedIDs(); len(got) != 1 || got[0] != "u1" {
			t.Errorf("persisted = %v, want [u1]", got)
		}

		events := pub.published()
		if len(events) != 2 || events[0] != kafkaDelivery.EventTypeJobStarted || events[1] != kafkaDelivery.EventTypeJobCompleted {
			t.Errorf("events = %v, want [started completed]", events)
		}

		logs := repo.storedLogs()
		if len(logs) != 2 {
			t.Fatalf("got %d logs, want 2", len(logs))
		}
		for _, l := range logs {
			if l.RunID != out.RunID {
				t.Errorf("log run id = %q, want %q", l.RunID, out.RunID)
			}
		}
	})
}

func TestRunInBackground(t *testing.T) {
	sc := model.Scope{UserID: "op-1"}
	input := func(ids ...string) job.CreateInput {
		return job.CreateInput{Parameters: deleteConfig("overdue"), Intake: job.Intake{UserIDs: ids}}
	}

	t.Run("persistence failure fails one user and the run continues", func(t *testing.T) {
		repo := newFakeRepo()
		pub := newFakePublisher()
		userUC := &fakeUserUC{
			loaded: loadedUsers(
				noteRecord("u1", "overdue book"),
				noteRecord("u2", "overdue fine"),
				noteRecord("u3", "overdue notice"),
			),
			failPersist: map[string]error{"u2": errors.New("platform said no")},
		}
		uc := newJobUseCase(repo, newFakeProgressCache(), userUC, pub)

		out, err := uc.Create(context.Background(), sc, input("u1", "u2", "u3"))
		if err != nil {
			t.Fatalf("Create: %v", err)
		}

		run := pub.waitForTermination(t)
		if run.Status != model.RunStatusCompleted {
			t.Fatalf("final status = %q, want %q", run.Status, model.RunStatusCompleted)
		}
		if run.Processed != 3 || run.ModifiedUsers != 2 || run.FailedUsers != 1 {
			t.Errorf("counters = processed %d modified %d failed %d, want 3/2/1",
				run.Processed, run.ModifiedUsers, run.FailedUsers)
		}

		logs := repo.storedLogs()
		if len(logs) != 3 {
			t.Fatalf("got %d logs, want 3", len(logs))
		}
		var failed int
		for _, l := range logs {
			if l.UpdateError != "" {
				failed++
				if l.UserID != "u2" {
					t.Errorf("failed user = %q, want u2", l.UserID)
				}
				if l.UpdateSuccessful == nil || *l.UpdateSuccessful {
					t.Errorf("update successful = %v, want false", l.UpdateSuccessful)
				}
			}
		}
		if failed != 1 {
			t.Errorf("got %d failed logs, want 1", failed)
		}

		stored, err := repo.GetRun(context.Background(), out.RunID)
		if err != nil {
			t.Fatalf("GetRun: %v", err)
		}
		if stored.CompletedAt == nil {
			t.Error("completed run should carry a completion time")
		}
	})

	t.Run("load-error record is processed without a log entry", func(t *testing.T) {
		repo := newFakeRepo()
		pub := newFakePublisher()
		userUC := &fakeUserUC{loaded: loadedUsers(
			noteRecord("u1", "overdue book"),
			model.NewLoadErrorRecord("u2", "Failed to load user details: boom"),
		)}
		uc := newJobUseCase(repo, newFakeProgressCache(), userUC, pub)

		if _, err := uc.Create(context.Background(), sc, input("u1", "u2")); err != nil {
			t.Fatalf("Create: %v", err)
		}

		run := pub.waitForTermination(t)
		if run.Processed != 2 {
			t.Errorf("processed = %d, want 2", run.Processed)
		}
		if got := len(repo.storedLogs()); got != 1 {
			t.Errorf("got %d logs, want 1", got)
		}
		if got := userUC.persistedIDs(); len(got) != 1 || got[0] != "u1" {
			t.Errorf("persisted = %v, want [u1]", got)
		}
	})
}

func TestGet(t *testing.T) {
	sc := model.Scope{UserID: "op-1"}

	t.Run("unknown run", func(t *testing.T) {
		uc := newJobUseCase(newFakeRepo(), newFakeProgressCache(), &fakeUserUC{}, newFakePublisher())
		_, err := uc.Get(context.Background(), sc, job.GetInput{RunID: "missing"})
		if !errors.Is(err, job.ErrRunNotFound) {
			t.Errorf("got %v, want ErrRunNotFound", err)
		}
	})

	t.Run("running run merges live progress", func(t *testing.T) {
		repo := newFakeRepo()
		cache := newFakeProgressCache()
		uc := newJobUseCase(repo, cache, &fakeUserUC{}, newFakePublisher())

		run := model.JobRun{ID: "r1", Status: model.RunStatusRunning, TotalUsers: 10}
		if err := repo.CreateRun(context.Background(), &run); err != nil {
			t.Fatalf("CreateRun: %v", err)
		}
		if err := cache.SetProgress(context.Background(), "r1", repository.Progress{
			Status: model.RunStatusRunning, Total: 10, Processed: 6, Modified: 4, NoMatch: 2,
		}); err != nil {
			t.Fatalf("SetProgress: %v", err)
		}

		got, err := uc.Get(context.Background(), sc, job.GetInput{RunID: "r1"})
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Processed != 6 || got.ModifiedUsers != 4 || got.NoMatchUsers != 2 {
			t.Errorf("merged counters = processed %d modified %d nomatch %d, want 6/4/2",
				got.Processed, got.ModifiedUsers, got.NoMatchUsers)
		}
	})

	t.Run("completed run ignores the cache", func(t *testing.T) {
		repo := newFakeRepo()
		cache := newFakeProgressCache()
		uc := newJobUseCase(repo, cache, &fakeUserUC{}, newFakePublisher())

		run := model.JobRun{ID: "r2", Status: model.RunStatusCompleted, Processed: 10}
		if err := repo.CreateRun(context.Background(), &run); err != nil {
			t.Fatalf("CreateRun: %v", err)
		}
		if err := cache.SetProgress(context.Background(), "r2", repository.Progress{Processed: 3}); err != nil {
			t.Fatalf("SetProgress: %v", err)
		}

		got, err := uc.Get(context.Background(), sc, job.GetInput{RunID: "r2"})
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got.Processed != 10 {
			t.Errorf("processed = %d, want 10", got.Processed)
		}
	})
}

func TestGetLogs(t *testing.T) {
	sc := model.Scope{UserID: "op-1"}

	t.Run("unknown run", func(t *testing.T) {
		uc := newJobUseCase(newFakeRepo(), newFakeProgressCache(), &fakeUserUC{}, newFakePublisher())
		_, err := uc.GetLogs(context.Background(), sc, job.GetLogsInput{RunID: "missing"})
		if !errors.Is(err, job.ErrRunNotFound) {
			t.Errorf("got %v, want ErrRunNotFound", err)
		}
	})

	t.Run("pages logs of one run", func(t *testing.T) {
		repo := newFakeRepo()
		uc := newJobUseCase(repo, newFakeProgressCache(), &fakeUserUC{}, newFakePublisher())

		run := model.JobRun{ID: "r1", Status: model.RunStatusCompleted}
		if err := repo.CreateRun(context.Background(), &run); err != nil {
			t.Fatalf("CreateRun: %v", err)
		}
		for _, id := range []string{"u1", "u2"} {
			if err := repo.InsertLog(context.Background(), &model.UserProcessLog{RunID: "r1", UserID: id}); err != nil {
				t.Fatalf("InsertLog: %v", err)
			}
		}

		out, err := uc.GetLogs(context.Background(), sc, job.GetLogsInput{
			RunID:    "r1",
			Paginate: paginator.PaginateQuery{Page: 1, Limit: 50},
		})
		if err != nil {
			t.Fatalf("GetLogs: %v", err)
		}
		if len(out.Logs) != 2 || out.Paginator.Total != 2 {
			t.Errorf("got %d logs total %d, want 2/2", len(out.Logs), out.Paginator.Total)
		}
	})
}

func TestPreview(t *testing.T) {
	sc := model.Scope{UserID: "op-1"}

	t.Run("reports every blocking reason", func(t *testing.T) {
		userUC := &fakeUserUC{loaded: loadedUsers()}
		uc := newJobUseCase(newFakeRepo(), newFakeProgressCache(), userUC, newFakePublisher())

		out, err := uc.Preview(context.Background(), sc, job.PreviewInput{})
		if err != nil {
			t.Fatalf("Preview: %v", err)
		}
		if out.CanExecute {
			t.Error("empty configuration should not be executable")
		}
		if len(out.BlockingReasons) != 3 {
			t.Errorf("got %d blocking reasons %v, want 3", len(out.BlockingReasons), out.BlockingReasons)
		}
	})

	t.Run("executable configuration", func(t *testing.T) {
		userUC := &fakeUserUC{loaded: loadedUsers(noteRecord("u1", "overdue book"))}
		uc := newJobUseCase(newFakeRepo(), newFakeProgressCache(), userUC, newFakePublisher())

		out, err := uc.Preview(context.Background(), sc, job.PreviewInput{
			Parameters: deleteConfig("overdue"),
			Intake:     job.Intake{UserIDs: []string{"u1"}},
		})
		if err != nil {
			t.Fatalf("Preview: %v", err)
		}
		if !out.CanExecute {
			t.Errorf("configuration should be executable, reasons: %v", out.BlockingReasons)
		}
		if out.Summary.Total != 1 {
			t.Errorf("summary total = %d, want 1", out.Summary.Total)
		}
	})
}
