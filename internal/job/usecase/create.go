package usecase

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"usernotes-srv/internal/job"
	kafkaDelivery "usernotes-srv/internal/job/delivery/kafka"
	"usernotes-srv/internal/model"
	"usernotes-srv/pkg/locale"
)

// Create validates the configuration against every executability rule,
// records the run and starts the batch in the background. The first
// violated rule is returned as the error; the run does not start.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input job.CreateInput) (job.CreateOutput, error) {
	params, err := normalizeParams(input.Parameters)
	if err != nil {
		return job.CreateOutput{}, err
	}

	loaded, err := uc.loadIntake(ctx, sc, input.Intake)
	if err != nil {
		return job.CreateOutput{}, err
	}

	if violations := validateConfig(params, processableUsers(loaded)); len(violations) > 0 {
		return job.CreateOutput{}, violations[0]
	}

	criteria := buildCriteria(params, locale.GetLang(ctx))
	options := buildOptions(params)

	// A requested note type must exist in the catalog before anything
	// is written back.
	if options.NoteType != nil {
		catalog, err := uc.userUC.NoteTypes(ctx)
		if err != nil {
			return job.CreateOutput{}, err
		}
		if !validNoteType(catalog, *options.NoteType) {
			return job.CreateOutput{}, job.ErrUnknownNoteType
		}
	}

	run := model.JobRun{
		ID:         uuid.New().String(),
		SetID:      input.Intake.SetID,
		Status:     model.RunStatusRunning,
		Action:     options.Action,
		TotalUsers: len(loaded.Users),
	}
	if loaded.SetInfo != nil {
		run.SetName = loaded.SetInfo.Name
	}

	now := time.Now()
	run.StartedAt = &now

	if run.Params, err = json.Marshal(params); err != nil {
		return job.CreateOutput{}, err
	}
	if run.Criteria, err = json.Marshal(criteria); err != nil {
		return job.CreateOutput{}, err
	}
	if run.Options, err = json.Marshal(options); err != nil {
		return job.CreateOutput{}, err
	}

	if err := uc.repo.CreateRun(ctx, &run); err != nil {
		uc.l.Errorf(ctx, "job.usecase.Create: failed to create run: %v", err)
		return job.CreateOutput{}, err
	}

	uc.publisher.PublishJobEvent(ctx, kafkaDelivery.EventTypeJobStarted, run)

	// The batch owns the run from here; the request returns
	// immediately with the run ID.
	go uc.runInBackground(run, loaded.Users, criteria, options)

	return job.CreateOutput{
		RunID:  run.ID,
		Status: run.Status,
	}, nil
}

func validNoteType(catalog []model.NoteType, requested model.NoteType) bool {
	for _, t := range catalog {
		if t.Value == requested.Value {
			return true
		}
	}
	return false
}
