package usecase

import (
	"context"
	"errors"

	"usernotes-srv/internal/job"
	"usernotes-srv/internal/job/repository"
	"usernotes-srv/internal/model"
	"usernotes-srv/pkg/paginator"
)

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, input job.GetInput) (model.JobRun, error) {
	run, err := uc.repo.GetRun(ctx, input.RunID)
	if err != nil {
		if errors.Is(err, repository.ErrRunNotFound) {
			return model.JobRun{}, job.ErrRunNotFound
		}
		uc.l.Errorf(ctx, "job.usecase.Get: failed to get run %s: %v", input.RunID, err)
		return model.JobRun{}, err
	}

	if run.Status == model.RunStatusRunning {
		uc.mergeLiveProgress(ctx, &run)
	}

	return run, nil
}

// mergeLiveProgress overlays the cached counter snapshot onto a
// running run. The row only catches up at termination, so the cache is
// what makes GET useful mid-batch. A miss is not an error.
func (uc *implUseCase) mergeLiveProgress(ctx context.Context, run *model.JobRun) {
	p, err := uc.cacheRepo.GetProgress(ctx, run.ID)
	if err != nil {
		if !errors.Is(err, repository.ErrProgressMiss) {
			uc.l.Warnf(ctx, "job.usecase.Get: failed to get progress of run %s: %v", run.ID, err)
		}
		return
	}

	run.Processed = p.Processed
	run.ModifiedUsers = p.Modified
	run.FailedUsers = p.Failed
	run.NoMatchUsers = p.NoMatch
}

func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input job.ListInput) (job.ListOutput, error) {
	input.Paginate.Adjust()

	runs, total, err := uc.repo.ListRuns(ctx, repository.ListRunsOptions{
		Limit:  input.Paginate.Limit,
		Offset: input.Paginate.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "job.usecase.List: failed to list runs: %v", err)
		return job.ListOutput{}, err
	}

	return job.ListOutput{
		Runs: runs,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(runs)),
			PerPage:     input.Paginate.Limit,
			CurrentPage: input.Paginate.Page,
		},
	}, nil
}

func (uc *implUseCase) GetLogs(ctx context.Context, sc model.Scope, input job.GetLogsInput) (job.GetLogsOutput, error) {
	if _, err := uc.repo.GetRun(ctx, input.RunID); err != nil {
		if errors.Is(err, repository.ErrRunNotFound) {
			return job.GetLogsOutput{}, job.ErrRunNotFound
		}
		uc.l.Errorf(ctx, "job.usecase.GetLogs: failed to get run %s: %v", input.RunID, err)
		return job.GetLogsOutput{}, err
	}

	input.Paginate.Adjust()

	logs, total, err := uc.repo.ListLogs(ctx, repository.ListLogsOptions{
		RunID:  input.RunID,
		Limit:  input.Paginate.Limit,
		Offset: input.Paginate.Offset(),
	})
	if err != nil {
		uc.l.Errorf(ctx, "job.usecase.GetLogs: failed to list logs of run %s: %v", input.RunID, err)
		return job.GetLogsOutput{}, err
	}

	return job.GetLogsOutput{
		Logs: logs,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(logs)),
			PerPage:     input.Paginate.Limit,
			CurrentPage: input.Paginate.Page,
		},
	}, nil
}
