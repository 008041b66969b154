package usecase

import (
	"context"
	"errors"
	"testing"

	"autoexport-srv/internal/model"
	"autoexport-srv/internal/vehicle"
	"autoexport-srv/internal/vehicle/repository"
	pkgLog "autoexport-srv/pkg/log"
	"autoexport-srv/pkg/paginator"
	"autoexport-srv/pkg/session"
)

// fakeRepository records writes so tests can assert that denied
// operations never reach the store.
type fakeRepository struct {
	vehicles map[string]model.Vehicle

	createCalls int
	updateCalls int
	deleteCalls int
	publicOnly  bool
}

var _ repository.Repository = &fakeRepository{}

func newFakeRepository(vehicles ...model.Vehicle) *fakeRepository {
	m := make(map[string]model.Vehicle, len(vehicles))
	for _, v := range vehicles {
		m[v.ID] = v
	}
	return &fakeRepository{vehicles: m}
}

func (f *fakeRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Vehicle, paginator.Paginator, error) {
	f.publicOnly = opts.Filter.PublicOnly
	var out []model.Vehicle
	for _, v := range f.vehicles {
		if opts.Filter.PublicOnly && v.Status == model.VehicleStatusArchived {
			continue
		}
		out = append(out, v)
	}
	return out, paginator.Paginator{Total: int64(len(out))}, nil
}

func (f *fakeRepository) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Vehicle, error) {
	vehicles, _, err := f.Get(ctx, sc, repository.GetOptions{Filter: opts.Filter})
	return vehicles, err
}

func (f *fakeRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return model.Vehicle{}, repository.ErrNotFound
	}
	return v, nil
}

func (f *fakeRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Vehicle, error) {
	f.createCalls++
	v := opts.Vehicle
	if v.ID == "" {
		v.ID = "generated-id"
	}
	f.vehicles[v.ID] = v
	return v, nil
}

func (f *fakeRepository) Update(ctx context.Context, sc model.Scope, opts repository.UpdateOptions) (model.Vehicle, error) {
	f.updateCalls++
	if _, ok := f.vehicles[opts.Vehicle.ID]; !ok {
		return model.Vehicle{}, repository.ErrNotFound
	}
	f.vehicles[opts.Vehicle.ID] = opts.Vehicle
	return opts.Vehicle, nil
}

func (f *fakeRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	f.deleteCalls++
	if _, ok := f.vehicles[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.vehicles, id)
	return nil
}

func (f *fakeRepository) ListImages(ctx context.Context, sc model.Scope, vehicleID string) ([]model.VehicleImage, error) {
	return nil, nil
}

func (f *fakeRepository) CreateImage(ctx context.Context, sc model.Scope, opts repository.CreateImageOptions) (model.VehicleImage, error) {
	return opts.Image, nil
}

func (f *fakeRepository) DeleteImage(ctx context.Context, sc model.Scope, id string) error {
	return repository.ErrNotFound
}

func (f *fakeRepository) ListCertificates(ctx context.Context, sc model.Scope, vehicleID string) ([]model.Certificate, error) {
	return nil, nil
}

func (f *fakeRepository) CreateCertificate(ctx context.Context, sc model.Scope, opts repository.CreateCertificateOptions) (model.Certificate, error) {
	return opts.Certificate, nil
}

func (f *fakeRepository) DeleteCertificate(ctx context.Context, sc model.Scope, id string) error {
	return repository.ErrNotFound
}

func (f *fakeRepository) Count(ctx context.Context, sc model.Scope, opts repository.CountOptions) (int64, error) {
	return int64(len(f.vehicles)), nil
}

func scopeFor(role session.Role) model.Scope {
	return model.Scope{Role: role}
}

func TestCreate_RoleGate(t *testing.T) {
	tests := []struct {
		name    string
		role    session.Role
		wantErr error
	}{
		{name: "anonymous denied", role: session.RoleNone, wantErr: session.ErrForbidden},
		{name: "viewer denied", role: session.RoleViewer, wantErr: session.ErrForbidden},
		{name: "editor allowed", role: session.RoleEditor},
		{name: "admin allowed", role: session.RoleAdmin},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newFakeRepository()
			uc := New(pkgLog.NewNopLogger(), repo)

			_, err := uc.Create(context.Background(), scopeFor(tt.role), vehicle.CreateInput{
				Name: model.I18nText{"en": "Truck"},
			})

			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Create err = %v, want %v", err, tt.wantErr)
			}
			wantCalls := 0
			if tt.wantErr == nil {
				wantCalls = 1
			}
			if repo.createCalls != wantCalls {
				t.Errorf("createCalls = %d, want %d", repo.createCalls, wantCalls)
			}
		})
	}
}

func TestDelete_RequiresAdmin(t *testing.T) {
	repo := newFakeRepository(model.Vehicle{ID: "v1", Status: model.VehicleStatusActive})
	uc := New(pkgLog.NewNopLogger(), repo)

	if err := uc.Delete(context.Background(), scopeFor(session.RoleEditor), "v1"); !errors.Is(err, session.ErrForbidden) {
		t.Fatalf("editor Delete err = %v, want %v", err, session.ErrForbidden)
	}
	if repo.deleteCalls != 0 {
		t.Errorf("deleteCalls = %d, want 0 after denied delete", repo.deleteCalls)
	}

	if err := uc.Delete(context.Background(), scopeFor(session.RoleAdmin), "v1"); err != nil {
		t.Fatalf("admin Delete err = %v", err)
	}
}

func TestDetail_ArchivedHiddenFromAnonymous(t *testing.T) {
	repo := newFakeRepository(model.Vehicle{ID: "v1", Status: model.VehicleStatusArchived})
	uc := New(pkgLog.NewNopLogger(), repo)

	_, err := uc.Detail(context.Background(), scopeFor(session.RoleNone), "v1")
	if !errors.Is(err, vehicle.ErrVehicleNotFound) {
		t.Fatalf("anonymous Detail err = %v, want %v", err, vehicle.ErrVehicleNotFound)
	}

	out, err := uc.Detail(context.Background(), scopeFor(session.RoleViewer), "v1")
	if err != nil {
		t.Fatalf("viewer Detail err = %v", err)
	}
	if out.Vehicle.ID != "v1" {
		t.Errorf("viewer Detail returned %q, want v1", out.Vehicle.ID)
	}
}

func TestGet_PublicOnlyFollowsScope(t *testing.T) {
	repo := newFakeRepository()
	uc := New(pkgLog.NewNopLogger(), repo)

	if _, err := uc.Get(context.Background(), scopeFor(session.RoleNone), vehicle.GetInput{}); err != nil {
		t.Fatalf("Get err = %v", err)
	}
	if !repo.publicOnly {
		t.Error("anonymous Get should filter to public listings")
	}

	if _, err := uc.Get(context.Background(), scopeFor(session.RoleViewer), vehicle.GetInput{}); err != nil {
		t.Fatalf("Get err = %v", err)
	}
	if repo.publicOnly {
		t.Error("viewer Get should see all listings")
	}
}

func TestCreate_Validation(t *testing.T) {
	min, max := 90.0, 10.0
	tests := []struct {
		name    string
		input   vehicle.CreateInput
		wantErr error
	}{
		{
			name:    "name required",
			input:   vehicle.CreateInput{},
			wantErr: vehicle.ErrNameRequired,
		},
		{
			name: "invalid status",
			input: vehicle.CreateInput{
				Name:   model.I18nText{"en": "Truck"},
				Status: "bogus",
			},
			wantErr: vehicle.ErrInvalidStatus,
		},
		{
			name: "inverted price range",
			input: vehicle.CreateInput{
				Name:          model.I18nText{"en": "Truck"},
				PriceRangeMin: &min,
				PriceRangeMax: &max,
			},
			wantErr: vehicle.ErrInvalidPriceRange,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := New(pkgLog.NewNopLogger(), newFakeRepository())
			_, err := uc.Create(context.Background(), scopeFor(session.RoleEditor), tt.input)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := newFakeRepository(model.Vehicle{
		ID:     "v1",
		Name:   model.I18nText{"en": "Old"},
		Status: model.VehicleStatusNew,
	})
	uc := New(pkgLog.NewNopLogger(), repo)

	got, err := uc.Update(context.Background(), scopeFor(session.RoleEditor), vehicle.UpdateInput{
		ID:   "v1",
		Name: model.I18nText{"en": "New name"},
	})
	if err != nil {
		t.Fatalf("Update err = %v", err)
	}
	if got.Name["en"] != "New name" {
		t.Errorf("Name = %q, want updated", got.Name["en"])
	}
	if got.Status != model.VehicleStatusNew {
		t.Errorf("Status = %q, want unchanged %q", got.Status, model.VehicleStatusNew)
	}
}
