package usecase

import (
	"context"
	"time"

	kafkaDelivery "usernotes-srv/internal/job/delivery/kafka"
	"usernotes-srv/internal/job/repository"
	"usernotes-srv/internal/model"
	"usernotes-srv/internal/notes"
)

// runTimeout bounds a whole batch. Large sets go one write at a time,
// so this is generous.
const runTimeout = 4 * time.Hour

// runInBackground drives the batch for one run. It owns the run row,
// its counters and its logs until the terminal status is written.
func (uc *implUseCase) runInBackground(run model.JobRun, users []model.UserRecord, criteria notes.SearchCriteria, options notes.ModificationOptions) {
	ctx, cancel := context.WithTimeout(context.Background(), runTimeout)
	defer cancel()

	if err := uc.processUsers(ctx, &run, users, criteria, options); err != nil {
		run.Status = model.RunStatusFailed
		run.ErrorMessage = err.Error()
	} else {
		run.Status = model.RunStatusCompleted
	}

	now := time.Now()
	run.CompletedAt = &now

	if err := uc.repo.UpdateRun(ctx, &run); err != nil {
		uc.l.Errorf(ctx, "job.usecase.runInBackground: failed to finalize run %s: %v", run.ID, err)
	}
	uc.publishProgress(ctx, &run)

	event := kafkaDelivery.EventTypeJobCompleted
	if run.Status == model.RunStatusFailed {
		event = kafkaDelivery.EventTypeJobFailed
	}
	uc.publisher.PublishJobEvent(ctx, event, run)

	uc.l.Infof(ctx, "job.usecase.runInBackground: run %s %s: %d processed, %d modified, %d failed, %d without matches",
		run.ID, run.Status, run.Processed, run.ModifiedUsers, run.FailedUsers, run.NoMatchUsers)
}

// processUsers visits every record strictly sequentially: one user is
// fully processed, its persistence call included, before the next
// begins, so at most one write to the platform is ever in flight. The
// processed counter increments exactly once per user whatever the
// outcome. Only a cancelled context aborts the run.
func (uc *implUseCase) processUsers(ctx context.Context, run *model.JobRun, users []model.UserRecord, criteria notes.SearchCriteria, options notes.ModificationOptions) error {
	for i := range users {
		// Everything before persistence is side-effect-free, so
		// between users is the safe cancellation point.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		uc.processOne(ctx, run, &users[i], criteria, options)
		run.Processed++

		uc.publishProgress(ctx, run)
	}
	return nil
}

// processOne runs select, apply, persist for a single record and
// stores its process log. A load-error record is skipped silently; a
// persistence failure lands on the log entry and the run continues.
func (uc *implUseCase) processOne(ctx context.Context, run *model.JobRun, rec *model.UserRecord, criteria notes.SearchCriteria, options notes.ModificationOptions) {
	if rec.LoadError != "" {
		return
	}

	matching := uc.notesUC.Select(ctx, rec, criteria)
	processLog := uc.notesUC.Apply(ctx, rec, matching, options)
	processLog.RunID = run.ID

	if processLog.NoMatchingNotes {
		run.NoMatchUsers++
	}

	if processLog.Changed() {
		if err := uc.userUC.Persist(ctx, rec.PrimaryID, *rec); err != nil {
			processLog.UpdateError = err.Error()
			processLog.UpdateSuccessful = boolPtr(false)
			run.FailedUsers++
		} else {
			processLog.UpdateSuccessful = boolPtr(true)
			run.ModifiedUsers++
		}
	}

	if err := uc.repo.InsertLog(ctx, &processLog); err != nil {
		uc.l.Errorf(ctx, "job.usecase.processOne: failed to store log for user %s in run %s: %v", rec.PrimaryID, run.ID, err)
	}
}

// publishProgress pushes the live counter snapshot. Best effort; the
// run row is the source of truth.
func (uc *implUseCase) publishProgress(ctx context.Context, run *model.JobRun) {
	p := repository.Progress{
		Status:    run.Status,
		Total:     run.TotalUsers,
		Processed: run.Processed,
		Modified:  run.ModifiedUsers,
		Failed:    run.FailedUsers,
		NoMatch:   run.NoMatchUsers,
	}
	if err := uc.cacheRepo.SetProgress(ctx, run.ID, p); err != nil {
		uc.l.Warnf(ctx, "job.usecase.publishProgress: run %s: %v", run.ID, err)
	}
}

func boolPtr(v bool) *bool { return &v }
