package usecase

import (
	"context"

	"usernotes-srv/internal/job"
	"usernotes-srv/internal/model"
	"usernotes-srv/internal/user"
)

// Preview normalizes the submitted configuration, loads the intake and
// reports the derived menu state plus the executability verdict with
// every specific blocking reason.
func (uc *implUseCase) Preview(ctx context.Context, sc model.Scope, input job.PreviewInput) (job.PreviewOutput, error) {
	params, err := normalizeParams(input.Parameters)
	if err != nil {
		return job.PreviewOutput{}, err
	}

	loaded, err := uc.loadIntake(ctx, sc, input.Intake)
	if err != nil {
		return job.PreviewOutput{}, err
	}

	violations := validateConfig(params, processableUsers(loaded))
	reasons := make([]string, 0, len(violations))
	for _, v := range violations {
		reasons = append(reasons, v.Error())
	}

	return job.PreviewOutput{
		Parameters:       params,
		AvailableOptions: availableOptions(params),
		CanExecute:       len(violations) == 0,
		BlockingReasons:  reasons,
		Summary:          loaded.Summary,
		SetInfo:          loaded.SetInfo,
	}, nil
}

// loadIntake resolves the record source: a platform set, or an
// explicit ID list.
func (uc *implUseCase) loadIntake(ctx context.Context, sc model.Scope, intake job.Intake) (user.LoadOutput, error) {
	if intake.SetID != "" {
		return uc.userUC.LoadSet(ctx, sc, user.LoadSetInput{SetID: intake.SetID})
	}
	return uc.userUC.LoadUsers(ctx, sc, user.LoadUsersInput{UserIDs: intake.UserIDs})
}

// processableUsers counts records that will actually be visited.
// Load-error placeholders still count: they are processed (skipped) by
// the batch, and an intake that loaded anything at all is executable.
func processableUsers(loaded user.LoadOutput) int {
	return len(loaded.Users)
}
