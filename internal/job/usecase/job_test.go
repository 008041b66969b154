package usecase

import (
	"context"
	"errors"
	"testing"

	"autoexport-srv/internal/job"
	"autoexport-srv/internal/job/repository"
	"autoexport-srv/internal/model"
	pkgLog "autoexport-srv/pkg/log"
	"autoexport-srv/pkg/paginator"
	"autoexport-srv/pkg/session"
)

type fakeRepository struct {
	jobs map[string]model.Job
	apps map[string]model.JobApplication

	createAppCalls int
}

var _ repository.Repository = &fakeRepository{}

func newFakeRepository(jobs ...model.Job) *fakeRepository {
	m := make(map[string]model.Job, len(jobs))
	for _, j := range jobs {
		m[j.ID] = j
	}
	return &fakeRepository{jobs: m, apps: map[string]model.JobApplication{}}
}

func (f *fakeRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Job, paginator.Paginator, error) {
	var out []model.Job
	for _, j := range f.jobs {
		if opts.Filter.PublicOnly && j.Status != model.JobStatusActive {
			continue
		}
		out = append(out, j)
	}
	return out, paginator.Paginator{Total: int64(len(out))}, nil
}

func (f *fakeRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Job, error) {
	j, ok := f.jobs[id]
	if !ok {
		return model.Job{}, repository.ErrNotFound
	}
	return j, nil
}

func (f *fakeRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Job, error) {
	j := opts.Job
	if j.ID == "" {
		j.ID = "generated-id"
	}
	if j.Status == "" {
		j.Status = model.JobStatusActive
	}
	f.jobs[j.ID] = j
	return j, nil
}

func (f *fakeRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Job, error) {
	if _, ok := f.jobs[opts.Job.ID]; !ok {
		return model.Job{}, repository.ErrNotFound
	}
	f.jobs[opts.Job.ID] = opts.Job
	return opts.Job, nil
}

func (f *fakeRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, ok := f.jobs[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.jobs, id)
	return nil
}

func (f *fakeRepository) Count(ctx context.Context, sc model.Scope, opts repository.CountOptions) (int64, error) {
	return int64(len(f.jobs)), nil
}

func (f *fakeRepository) CreateApplication(ctx context.Context, sc model.Scope, opts repository.CreateApplicationOptions) (model.JobApplication, error) {
	f.createAppCalls++
	app := opts.Application
	if app.ID == "" {
		app.ID = "generated-app-id"
	}
	if app.Status == "" {
		app.Status = model.ApplicationStatusNew
	}
	f.apps[app.ID] = app
	return app, nil
}

func (f *fakeRepository) GetApplications(ctx context.Context, sc model.Scope, opts repository.GetApplicationsOptions) ([]model.JobApplication, paginator.Paginator, error) {
	var out []model.JobApplication
	for _, app := range f.apps {
		out = append(out, app)
	}
	return out, paginator.Paginator{Total: int64(len(out))}, nil
}

func (f *fakeRepository) DetailApplication(ctx context.Context, sc model.Scope, id string) (model.JobApplication, error) {
	app, ok := f.apps[id]
	if !ok {
		return model.JobApplication{}, repository.ErrNotFound
	}
	return app, nil
}

func (f *fakeRepository) UpdateApplicationStatus(ctx context.Context, sc model.Scope, id, status string) (model.JobApplication, error) {
	app, ok := f.apps[id]
	if !ok {
		return model.JobApplication{}, repository.ErrNotFound
	}
	app.Status = status
	f.apps[id] = app
	return app, nil
}

func (f *fakeRepository) DeleteApplication(ctx context.Context, sc model.Scope, id string) error {
	if _, ok := f.apps[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.apps, id)
	return nil
}

func (f *fakeRepository) CountApplications(ctx context.Context, sc model.Scope, opts repository.CountApplicationsOptions) (int64, error) {
	return int64(len(f.apps)), nil
}

func scopeFor(role session.Role) model.Scope {
	return model.Scope{Role: role}
}

func activeJob() model.Job {
	return model.Job{
		ID:     "j1",
		Title:  model.I18nText{"en": "Export Coordinator"},
		Status: model.JobStatusActive,
	}
}

func TestApply_Validation(t *testing.T) {
	closed := activeJob()
	closed.ID = "j2"
	closed.Status = model.JobStatusClosed

	tests := []struct {
		name    string
		input   job.ApplyInput
		wantErr error
	}{
		{
			name:    "missing applicant name",
			input:   job.ApplyInput{JobID: "j1", Email: "a@b.example"},
			wantErr: job.ErrApplicantRequired,
		},
		{
			name:    "missing email",
			input:   job.ApplyInput{JobID: "j1", ApplicantName: "Amina"},
			wantErr: job.ErrApplicantRequired,
		},
		{
			name:    "unknown job",
			input:   job.ApplyInput{JobID: "missing", ApplicantName: "Amina", Email: "a@b.example"},
			wantErr: job.ErrJobNotFound,
		},
		{
			name:    "closed job",
			input:   job.ApplyInput{JobID: "j2", ApplicantName: "Amina", Email: "a@b.example"},
			wantErr: job.ErrJobClosed,
		},
		{
			name:  "valid application",
			input: job.ApplyInput{JobID: "j1", ApplicantName: "Amina", Email: "a@b.example"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository(activeJob(), closed)
			uc := New(pkgLog.NewNopLogger(), repo)

			app, err := uc.Apply(context.Background(), scopeFor(session.RoleNone), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Apply err = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr != nil {
				if repo.createAppCalls != 0 {
					t.Errorf("createAppCalls = %d, want 0", repo.createAppCalls)
				}
				return
			}
			if app.Status != model.ApplicationStatusNew {
				t.Errorf("application status = %q, want %q", app.Status, model.ApplicationStatusNew)
			}
		})
	}
}

func TestCreate_RoleGate(t *testing.T) {
	repo := newFakeRepository()
	uc := New(pkgLog.NewNopLogger(), repo)

	input := job.CreateInput{Title: model.I18nText{"en": "Export Coordinator"}}

	if _, err := uc.Create(context.Background(), scopeFor(session.RoleViewer), input); !errors.Is(err, session.ErrForbidden) {
		t.Fatalf("viewer Create err = %v, want %v", err, session.ErrForbidden)
	}
	if _, err := uc.Create(context.Background(), scopeFor(session.RoleEditor), input); err != nil {
		t.Fatalf("editor Create err = %v", err)
	}
}

func TestDelete_RequiresAdmin(t *testing.T) {
	repo := newFakeRepository(activeJob())
	uc := New(pkgLog.NewNopLogger(), repo)

	if err := uc.Delete(context.Background(), scopeFor(session.RoleEditor), "j1"); !errors.Is(err, session.ErrForbidden) {
		t.Fatalf("editor Delete err = %v, want %v", err, session.ErrForbidden)
	}
	if err := uc.Delete(context.Background(), scopeFor(session.RoleAdmin), "j1"); err != nil {
		t.Fatalf("admin Delete err = %v", err)
	}
}

func TestDetail_InactiveHiddenFromAnonymous(t *testing.T) {
	closed := activeJob()
	closed.Status = model.JobStatusClosed
	repo := newFakeRepository(closed)
	uc := New(pkgLog.NewNopLogger(), repo)

	if _, err := uc.Detail(context.Background(), scopeFor(session.RoleNone), "j1"); !errors.Is(err, job.ErrJobNotFound) {
		t.Fatalf("anonymous Detail err = %v, want %v", err, job.ErrJobNotFound)
	}
	if _, err := uc.Detail(context.Background(), scopeFor(session.RoleViewer), "j1"); err != nil {
		t.Fatalf("viewer Detail err = %v", err)
	}
}

func TestUpdateApplicationStatus(t *testing.T) {
	repo := newFakeRepository(activeJob())
	uc := New(pkgLog.NewNopLogger(), repo)

	app, err := uc.Apply(context.Background(), scopeFor(session.RoleNone), job.ApplyInput{
		JobID:         "j1",
		ApplicantName: "Amina",
		Email:         "a@b.example",
	})
	if err != nil {
		t.Fatalf("Apply err = %v", err)
	}

	if _, err := uc.UpdateApplicationStatus(context.Background(), scopeFor(session.RoleEditor), job.UpdateApplicationStatusInput{
		ID:     app.ID,
		Status: "bogus",
	}); !errors.Is(err, job.ErrInvalidAppStatus) {
		t.Fatalf("invalid status err = %v, want %v", err, job.ErrInvalidAppStatus)
	}

	if _, err := uc.UpdateApplicationStatus(context.Background(), scopeFor(session.RoleViewer), job.UpdateApplicationStatusInput{
		ID:     app.ID,
		Status: model.ApplicationStatusReviewed,
	}); !errors.Is(err, session.ErrForbidden) {
		t.Fatalf("viewer status update err = %v, want %v", err, session.ErrForbidden)
	}

	got, err := uc.UpdateApplicationStatus(context.Background(), scopeFor(session.RoleEditor), job.UpdateApplicationStatusInput{
		ID:     app.ID,
		Status: model.ApplicationStatusReviewed,
	})
	if err != nil {
		t.Fatalf("editor status update err = %v", err)
	}
	if got.Status != model.ApplicationStatusReviewed {
		t.Errorf("status = %q, want %q", got.Status, model.ApplicationStatusReviewed)
	}
}
