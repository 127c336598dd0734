package http_test

import (
	"context"
	"sync"

	"github.com/jhoicas/billed/internal/application/session"
	"github.com/jhoicas/billed/internal/application/store"
	"github.com/jhoicas/billed/internal/domain/entity"
)

type memUsers struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemUsers() *memUsers {
	return &memUsers{users: map[string]*entity.User{}}
}

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.users[u.Email] = u
	return nil
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.users[email], nil
}

// fakeBills cliente del almacén en memoria que registra las llamadas.
type fakeBills struct {
	mu        sync.Mutex
	list      []entity.Bill
	listErr   error
	createErr error
	updateErr error
	creates   []store.CreateRequest
	updates   []store.UpdateRequest
}

func (f *fakeBills) List(context.Context) ([]entity.Bill, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.list, nil
}

func (f *fakeBills) Create(_ context.Context, in store.CreateRequest) (*store.CreateResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, in)
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &store.CreateResult{FileURL: "https://storage.test/receipts/draft-1/" + in.FileName, Key: "draft-1"}, nil
}

func (f *fakeBills) Update(_ context.Context, in store.UpdateRequest) (*entity.Bill, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.updates = append(f.updates, in)
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	b := in.Bill
	b.ID = in.Selector
	b.Status = entity.BillStatusPending
	return &b, nil
}

type fakeStore struct{ bills *fakeBills }

func (s fakeStore) Bills() store.BillsClient { return s.bills }

// fakeStores entrega siempre el mismo cliente y recuerda la última sesión.
type fakeStores struct {
	bills    *fakeBills
	lastSess session.Session
}

func (f *fakeStores) ForSession(sess session.Session) store.Store {
	f.lastSess = sess
	return fakeStore{bills: f.bills}
}
