package service_test

import (
	"context"
	"io"
	"time"

	"github.com/pkpu-id/tagihan/internal/domain"
	"github.com/pkpu-id/tagihan/pkg/mailer"
)

type mockUserVerifyRepository struct {
	// Fields to control mock behavior
	MockFindByEmailData *domain.UserVerify
	MockExistsByCode    bool
	MockError           error

	// Fields to capture calls
	FindByEmailCalledWith string
	ExistsByCodeCalls     int
	CreateCalledWith      *domain.UserVerify
	UpdateCalledEmail     string
	UpdateCalledCode      string
	UpdateCalledExpiry    time.Time
}

func (m *mockUserVerifyRepository) FindByEmail(ctx context.Context, email string) (*domain.UserVerify, error) {
	m.FindByEmailCalledWith = email
	if m.MockError != nil {
		return nil, m.MockError
	}
	return m.MockFindByEmailData, nil
}

func (m *mockUserVerifyRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	m.ExistsByCodeCalls++
	return m.MockExistsByCode, m.MockError
}

func (m *mockUserVerifyRepository) Create(ctx context.Context, verify *domain.UserVerify) error {
	m.CreateCalledWith = verify
	return m.MockError
}

func (m *mockUserVerifyRepository) UpdateCode(ctx context.Context, email, code string, expiration time.Time) error {
	m.UpdateCalledEmail = email
	m.UpdateCalledCode = code
	m.UpdateCalledExpiry = expiration
	return m.MockError
}

type mockMailer struct {
	MockError error

	SentMessages []mailer.Message
}

func (m *mockMailer) Send(msg mailer.Message) error {
	if m.MockError != nil {
		return m.MockError
	}
	m.SentMessages = append(m.SentMessages, msg)
	return nil
}

type mockKreditorRepository struct {
	MockFindAllData []domain.Kreditor
	MockError       error

	CreateCalledWith *domain.Kreditor
}

func (m *mockKreditorRepository) CreateKreditor(ctx context.Context, kreditor *domain.Kreditor) error {
	m.CreateCalledWith = kreditor
	return m.MockError
}

func (m *mockKreditorRepository) FindAll(ctx context.Context) ([]domain.Kreditor, error) {
	return m.MockFindAllData, m.MockError
}

// mockDocstore keeps saved documents in memory and can fail on demand.
type mockDocstore struct {
	MockSaveError error
	FailOnName    string

	Saved   map[string]string
	Removed []string
}

func newMockDocstore() *mockDocstore {
	return &mockDocstore{Saved: make(map[string]string)}
}

func (m *mockDocstore) Save(name string, r io.Reader) error {
	if m.MockSaveError != nil && (m.FailOnName == "" || m.FailOnName == name) {
		return m.MockSaveError
	}
	content, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.Saved[name] = string(content)
	return nil
}

func (m *mockDocstore) Remove(name string) error {
	m.Removed = append(m.Removed, name)
	delete(m.Saved, name)
	return nil
}
