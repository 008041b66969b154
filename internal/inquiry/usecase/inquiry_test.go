package usecase

import (
	"context"
	"errors"
	"testing"

	"autoexport-srv/internal/inquiry"
	"autoexport-srv/internal/inquiry/repository"
	"autoexport-srv/internal/model"
	vehicleRepo "autoexport-srv/internal/vehicle/repository"
	pkgLog "autoexport-srv/pkg/log"
	"autoexport-srv/pkg/locale"
	"autoexport-srv/pkg/mailer"
	"autoexport-srv/pkg/paginator"
	"autoexport-srv/pkg/session"
)

type fakeRepository struct {
	inquiries map[string]model.Inquiry
}

var _ repository.Repository = &fakeRepository{}

func newFakeRepository(inquiries ...model.Inquiry) *fakeRepository {
	m := make(map[string]model.Inquiry, len(inquiries))
	for _, inq := range inquiries {
		m[inq.ID] = inq
	}
	return &fakeRepository{inquiries: m}
}

func (f *fakeRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Inquiry, paginator.Paginator, error) {
	var out []model.Inquiry
	for _, inq := range f.inquiries {
		out = append(out, inq)
	}
	return out, paginator.Paginator{Total: int64(len(out))}, nil
}

func (f *fakeRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Inquiry, error) {
	inq, ok := f.inquiries[id]
	if !ok {
		return model.Inquiry{}, repository.ErrNotFound
	}
	return inq, nil
}

func (f *fakeRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Inquiry, error) {
	inq := opts.Inquiry
	if inq.ID == "" {
		inq.ID = "generated-id"
	}
	if inq.Status == "" {
		inq.Status = model.InquiryStatusNew
	}
	f.inquiries[inq.ID] = inq
	return inq, nil
}

func (f *fakeRepository) UpdateStatus(ctx context.Context, sc model.Scope, id, status string) (model.Inquiry, error) {
	inq, ok := f.inquiries[id]
	if !ok {
		return model.Inquiry{}, repository.ErrNotFound
	}
	inq.Status = status
	f.inquiries[id] = inq
	return inq, nil
}

func (f *fakeRepository) Delete(ctx context.Context, sc model.Scope, id string) error {
	if _, ok := f.inquiries[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.inquiries, id)
	return nil
}

func (f *fakeRepository) Count(ctx context.Context, sc model.Scope, opts repository.CountOptions) (int64, error) {
	return int64(len(f.inquiries)), nil
}

// fakeVehicleRepository only answers Detail; the embedded interface
// panics on anything else, which would flag an unexpected call.
type fakeVehicleRepository struct {
	vehicleRepo.Repository
	vehicles map[string]model.Vehicle
}

func (f *fakeVehicleRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Vehicle, error) {
	v, ok := f.vehicles[id]
	if !ok {
		return model.Vehicle{}, vehicleRepo.ErrNotFound
	}
	return v, nil
}

type fakeMailer struct {
	sent []mailer.Message
	err  error
}

func (f *fakeMailer) Send(ctx context.Context, msg mailer.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, msg)
	return nil
}

func newTestUsecase(repo repository.Repository, m mailer.Mailer, salesAddr string) inquiry.UseCase {
	vehicles := &fakeVehicleRepository{vehicles: map[string]model.Vehicle{
		"veh-1": {ID: "veh-1", Name: model.I18nText{"en": "Heavy Truck"}},
	}}
	return New(pkgLog.NewNopLogger(), repo, vehicles, m, salesAddr)
}

func validSubmit() inquiry.SubmitInput {
	return inquiry.SubmitInput{
		ContactName: "Omar",
		Email:       "omar@importer.example",
	}
}

func TestSubmit_RequiresContact(t *testing.T) {
	uc := newTestUsecase(newFakeRepository(), &fakeMailer{}, "sales@autoexport.example")

	tests := []struct {
		name  string
		input inquiry.SubmitInput
	}{
		{name: "missing name", input: inquiry.SubmitInput{Email: "a@b.example"}},
		{name: "missing email", input: inquiry.SubmitInput{ContactName: "Omar"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.Submit(context.Background(), model.Scope{}, tt.input); !errors.Is(err, inquiry.ErrContactRequired) {
				t.Errorf("Submit err = %v, want %v", err, inquiry.ErrContactRequired)
			}
		})
	}
}

func TestSubmit_SendsConfirmationAndSalesNotification(t *testing.T) {
	m := &fakeMailer{}
	uc := newTestUsecase(newFakeRepository(), m, "sales@autoexport.example")

	inq, err := uc.Submit(context.Background(), model.Scope{}, validSubmit())
	if err != nil {
		t.Fatalf("Submit err = %v", err)
	}
	if inq.Status != model.InquiryStatusNew {
		t.Errorf("status = %q, want %q", inq.Status, model.InquiryStatusNew)
	}

	if len(m.sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(m.sent))
	}
	if m.sent[0].To[0] != "omar@importer.example" {
		t.Errorf("confirmation went to %q", m.sent[0].To[0])
	}
	if m.sent[1].To[0] != "sales@autoexport.example" {
		t.Errorf("notification went to %q", m.sent[1].To[0])
	}
}

func TestSubmit_LocalizedConfirmation(t *testing.T) {
	m := &fakeMailer{}
	uc := newTestUsecase(newFakeRepository(), m, "")

	ctx := locale.SetLocaleToContext(context.Background(), locale.ES)
	if _, err := uc.Submit(ctx, model.Scope{}, validSubmit()); err != nil {
		t.Fatalf("Submit err = %v", err)
	}

	if len(m.sent) != 1 {
		t.Fatalf("sent %d emails, want confirmation only with no sales address", len(m.sent))
	}
	if got, want := m.sent[0].Subject, "Hemos recibido su consulta"; got != want {
		t.Errorf("subject = %q, want %q", got, want)
	}
}

func TestSubmit_MailerFailureDoesNotFailSubmit(t *testing.T) {
	repo := newFakeRepository()
	uc := newTestUsecase(repo, &fakeMailer{err: errors.New("relay down")}, "sales@autoexport.example")

	inq, err := uc.Submit(context.Background(), model.Scope{}, validSubmit())
	if err != nil {
		t.Fatalf("Submit err = %v, want stored despite mail failure", err)
	}
	if _, ok := repo.inquiries[inq.ID]; !ok {
		t.Error("inquiry was not stored")
	}
}

func TestSubmit_UnknownVehicle(t *testing.T) {
	uc := newTestUsecase(newFakeRepository(), &fakeMailer{}, "")

	missing := "not-a-vehicle"
	input := validSubmit()
	input.VehicleID = &missing

	if _, err := uc.Submit(context.Background(), model.Scope{}, input); !errors.Is(err, inquiry.ErrVehicleNotFound) {
		t.Fatalf("Submit err = %v, want %v", err, inquiry.ErrVehicleNotFound)
	}
}

func TestUpdateStatus_Gate(t *testing.T) {
	repo := newFakeRepository(model.Inquiry{ID: "i1", Status: model.InquiryStatusNew})
	uc := newTestUsecase(repo, &fakeMailer{}, "")

	if _, err := uc.UpdateStatus(context.Background(), model.Scope{Role: session.RoleViewer}, inquiry.UpdateStatusInput{
		ID:     "i1",
		Status: model.InquiryStatusReplied,
	}); !errors.Is(err, session.ErrForbidden) {
		t.Fatalf("viewer UpdateStatus err = %v, want %v", err, session.ErrForbidden)
	}

	if _, err := uc.UpdateStatus(context.Background(), model.Scope{Role: session.RoleEditor}, inquiry.UpdateStatusInput{
		ID:     "i1",
		Status: "bogus",
	}); !errors.Is(err, inquiry.ErrInvalidStatus) {
		t.Fatalf("invalid status err = %v, want %v", err, inquiry.ErrInvalidStatus)
	}

	got, err := uc.UpdateStatus(context.Background(), model.Scope{Role: session.RoleEditor}, inquiry.UpdateStatusInput{
		ID:     "i1",
		Status: model.InquiryStatusReplied,
	})
	if err != nil {
		t.Fatalf("editor UpdateStatus err = %v", err)
	}
	if got.Status != model.InquiryStatusReplied {
		t.Errorf("status = %q, want %q", got.Status, model.InquiryStatusReplied)
	}
}
