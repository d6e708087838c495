package store

import (
	"context"
	"fmt"
	"time"

	"github.com/mkoehler/sprechzeit/ent"
	"github.com/mkoehler/sprechzeit/ent/pathrun"
	"github.com/mkoehler/sprechzeit/ent/pathsession"
	"github.com/mkoehler/sprechzeit/ent/pathstep"
	"github.com/mkoehler/sprechzeit/ent/pathtemplate"
	"github.com/mkoehler/sprechzeit/internal/path"
)

// PathRepo persists templates, runs and sessions. It implements the
// path package's TemplateRepo, RunRepo and SessionRepo interfaces.
type PathRepo struct {
	client *ent.Client
}

// CreateTemplate authors a new template with its steps. Steps are
// validated for contiguity before anything is written.
func (r *PathRepo) CreateTemplate(ctx context.Context, tpl path.Template) (*path.Template, error) {
	if tpl.Name == "" {
		return nil, &path.ValidationError{Field: "template name", Reason: "must not be empty"}
	}
	if err := path.ValidateSteps(tpl.Steps); err != nil {
		return nil, err
	}

	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	builder := tx.PathTemplate.Create().
		SetName(tpl.Name).
		SetDescription(tpl.Description)
	if tpl.Level != "" {
		builder = builder.SetLevel(tpl.Level)
	}
	row, err := builder.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("save template: %w", err)
	}

	for _, s := range tpl.Steps {
		create := tx.PathStep.Create().
			SetStepOrder(s.Order).
			SetStepType(s.Type).
			SetTemplateID(row.ID)
		if s.Config != nil {
			create = create.SetConfig(s.Config)
		}
		if _, err := create.Save(ctx); err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("save step %d: %w", s.Order, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit template: %w", err)
	}
	return r.templateByID(ctx, row.ID)
}

// ActiveByName returns the active template with the given name including
// its steps in order, or nil if none matches.
func (r *PathRepo) ActiveByName(ctx context.Context, name string) (*path.Template, error) {
	row, err := r.client.PathTemplate.Query().
		Where(pathtemplate.Name(name), pathtemplate.IsActive(true)).
		WithSteps(func(q *ent.PathStepQuery) {
			q.Order(ent.Asc(pathstep.FieldStepOrder))
		}).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query template: %w", err)
	}
	return toTemplate(row), nil
}

// ListTemplates returns all templates with their steps, active first.
func (r *PathRepo) ListTemplates(ctx context.Context) ([]*path.Template, error) {
	rows, err := r.client.PathTemplate.Query().
		Order(ent.Desc(pathtemplate.FieldIsActive), ent.Asc(pathtemplate.FieldName)).
		WithSteps(func(q *ent.PathStepQuery) {
			q.Order(ent.Asc(pathstep.FieldStepOrder))
		}).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query templates: %w", err)
	}
	out := make([]*path.Template, len(rows))
	for i, row := range rows {
		out[i] = toTemplate(row)
	}
	return out, nil
}

func (r *PathRepo) templateByID(ctx context.Context, id int) (*path.Template, error) {
	row, err := r.client.PathTemplate.Query().
		Where(pathtemplate.ID(id)).
		WithSteps(func(q *ent.PathStepQuery) {
			q.Order(ent.Asc(pathstep.FieldStepOrder))
		}).
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("query template %d: %w", id, err)
	}
	return toTemplate(row), nil
}

// CreateRun inserts a new active run for the template.
func (r *PathRepo) CreateRun(ctx context.Context, templateID int, runID string, startedAt time.Time) (*path.Run, error) {
	row, err := r.client.PathRun.Create().
		SetRunID(runID).
		SetTemplateID(templateID).
		SetStartedAt(startedAt).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("save run: %w", err)
	}
	return toRun(row, templateID), nil
}

// LatestActive returns the most recently started active run for the
// template, or nil.
func (r *PathRepo) LatestActive(ctx context.Context, templateID int) (*path.Run, error) {
	row, err := r.client.PathRun.Query().
		Where(
			pathrun.StatusEQ(pathrun.StatusActive),
			pathrun.HasTemplateWith(pathtemplate.ID(templateID)),
		).
		Order(ent.Desc(pathrun.FieldStartedAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query active run: %w", err)
	}
	return toRun(row, templateID), nil
}

// CompleteRun marks the run completed and records the time.
func (r *PathRepo) CompleteRun(ctx context.Context, id int, at time.Time) error {
	_, err := r.client.PathRun.UpdateOneID(id).
		SetStatus(pathrun.StatusCompleted).
		SetCompletedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete run %d: %w", id, err)
	}
	return nil
}

// OpenExclusive creates an open session for the run after verifying,
// inside one transaction, that the run has no other open session. SQLite
// serializes writers, so the check-then-insert cannot interleave with a
// concurrent open.
func (r *PathRepo) OpenExclusive(ctx context.Context, runID int, step path.Step, textID *int, contentRef string, at time.Time) (*path.Session, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}

	n, err := tx.PathSession.Query().
		Where(
			pathsession.StatusEQ(pathsession.StatusOpen),
			pathsession.HasRunWith(pathrun.ID(runID)),
		).
		Count(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("check open sessions: %w", err)
	}
	if n > 0 {
		tx.Rollback()
		return nil, &path.ConflictError{Reason: fmt.Sprintf("run %d already has an open session", runID)}
	}

	create := tx.PathSession.Create().
		SetRunID(runID).
		SetStepOrder(step.Order).
		SetStepType(step.Type).
		SetStartedAt(at)
	if contentRef != "" {
		create = create.SetContentRef(contentRef)
	}
	if textID != nil {
		create = create.SetTextID(*textID)
	}
	row, err := create.Save(ctx)
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("save session: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit session: %w", err)
	}
	return r.Get(ctx, row.ID)
}

// Get returns the session by id, or nil if absent.
func (r *PathRepo) Get(ctx context.Context, id int) (*path.Session, error) {
	row, err := r.client.PathSession.Query().
		Where(pathsession.ID(id)).
		WithRun(func(q *ent.PathRunQuery) { q.WithTemplate() }).
		WithText().
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session %d: %w", id, err)
	}
	return toSession(row), nil
}

// OpenByRun returns the run's open session, most recently started first,
// or nil.
func (r *PathRepo) OpenByRun(ctx context.Context, runID int) (*path.Session, error) {
	row, err := r.client.PathSession.Query().
		Where(
			pathsession.StatusEQ(pathsession.StatusOpen),
			pathsession.HasRunWith(pathrun.ID(runID)),
		).
		Order(ent.Desc(pathsession.FieldStartedAt)).
		WithRun(func(q *ent.PathRunQuery) { q.WithTemplate() }).
		WithText().
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query open session: %w", err)
	}
	return toSession(row), nil
}

// MaxCompletedOrder returns the highest step_order among the run's
// completed sessions, or 0.
func (r *PathRepo) MaxCompletedOrder(ctx context.Context, runID int) (int, error) {
	row, err := r.client.PathSession.Query().
		Where(
			pathsession.StatusEQ(pathsession.StatusCompleted),
			pathsession.HasRunWith(pathrun.ID(runID)),
		).
		Order(ent.Desc(pathsession.FieldStepOrder)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("query completed sessions: %w", err)
	}
	return row.StepOrder, nil
}

// ByRunAndOrder returns the session with the given step order in the run,
// most recently started first, or nil.
func (r *PathRepo) ByRunAndOrder(ctx context.Context, runID, order int) (*path.Session, error) {
	row, err := r.client.PathSession.Query().
		Where(
			pathsession.StepOrder(order),
			pathsession.HasRunWith(pathrun.ID(runID)),
		).
		Order(ent.Desc(pathsession.FieldStartedAt)).
		WithRun(func(q *ent.PathRunQuery) { q.WithTemplate() }).
		WithText().
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query session order %d: %w", order, err)
	}
	return toSession(row), nil
}

// CompleteSession marks the session completed. Already-completed sessions
// are left untouched so completed_at never moves.
func (r *PathRepo) CompleteSession(ctx context.Context, id int, at time.Time) error {
	_, err := r.client.PathSession.Update().
		Where(pathsession.ID(id), pathsession.StatusEQ(pathsession.StatusOpen)).
		SetStatus(pathsession.StatusCompleted).
		SetCompletedAt(at).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("complete session %d: %w", id, err)
	}
	return nil
}

// ForceCompleteOpenByTemplate closes every open session belonging to any
// run of the template and returns how many it closed.
func (r *PathRepo) ForceCompleteOpenByTemplate(ctx context.Context, templateID int, at time.Time) (int, error) {
	n, err := r.client.PathSession.Update().
		Where(
			pathsession.StatusEQ(pathsession.StatusOpen),
			pathsession.HasRunWith(pathrun.HasTemplateWith(pathtemplate.ID(templateID))),
		).
		SetStatus(pathsession.StatusCompleted).
		SetCompletedAt(at).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("force-complete sessions: %w", err)
	}
	return n, nil
}

func toTemplate(row *ent.PathTemplate) *path.Template {
	tpl := &path.Template{
		ID:          row.ID,
		Name:        row.Name,
		Level:       row.Level,
		Description: row.Description,
		Active:      row.IsActive,
	}
	for _, s := range row.Edges.Steps {
		tpl.Steps = append(tpl.Steps, path.Step{
			Order:  s.StepOrder,
			Type:   s.StepType,
			Config: s.Config,
		})
	}
	return tpl
}

func toRun(row *ent.PathRun, templateID int) *path.Run {
	return &path.Run{
		ID:          row.ID,
		RunID:       row.RunID,
		TemplateID:  templateID,
		Status:      string(row.Status),
		StartedAt:   row.StartedAt,
		CompletedAt: row.CompletedAt,
	}
}

func toSession(row *ent.PathSession) *path.Session {
	sess := &path.Session{
		ID:          row.ID,
		StepOrder:   row.StepOrder,
		StepType:    row.StepType,
		ContentRef:  row.ContentRef,
		Status:      string(row.Status),
		StartedAt:   row.StartedAt,
		CompletedAt: row.CompletedAt,
	}
	if run := row.Edges.Run; run != nil {
		sess.RunID = run.ID
		if tpl := run.Edges.Template; tpl != nil {
			sess.TemplateID = tpl.ID
		}
	}
	if text := row.Edges.Text; text != nil {
		id := text.ID
		sess.TextID = &id
	}
	return sess
}
