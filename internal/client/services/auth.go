// Package services contains application services for the storefront client.
// This file defines the auth store: the process-wide session state (current
// user, loading flag, last error) together with the login, register, profile
// update and logout operations that change it.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/models"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/logging"
)

// AuthService defines the auth store used by the CLI.
//
// Contract:
//   - Initialize: restore the user from the persisted snapshot, if any.
//   - Login / Register: authenticate against the server, replace and persist
//     the user record.
//   - UpdateProfile: send profile fields, replace and persist the user record.
//   - Logout: drop the user and the persisted snapshot; no network call.
//
// Every network operation clears the previous error, keeps Loading true for
// its whole duration, and on failure records an ErrorInfo, leaves the user
// unchanged and returns the error to the caller. Overlapping operations are
// not ordered; the last one to finish wins.
type AuthService interface {
	Initialize(ctx context.Context) error
	Login(ctx context.Context, email string, password []byte) (models.User, error)
	Register(ctx context.Context, email string, password []byte) (models.User, error)
	UpdateProfile(ctx context.Context, profile models.Profile) (models.User, error)
	Logout(ctx context.Context) error

	User() models.User
	IsAuthenticated() bool
	Loading() bool
	Error() *ErrorInfo
	State() State
	Subscribe(fn func(State)) (unsubscribe func())

	Close(ctx context.Context) error
}

type authService struct {
	client  client.Client
	storage localstorage.Repository
	log     logging.Logger

	// writeMu serializes changes of the user together with the persisted
	// snapshot, so memory and storage always agree. mu guards the fields
	// below for readers and is never held across storage calls.
	writeMu sync.Mutex

	mu       sync.Mutex
	user     models.User
	inflight int
	lastErr  *ErrorInfo

	listenersMu sync.Mutex
	listeners   map[int]func(State)
	nextID      int
}

// NewAuthService constructs an AuthService bound to the given API client and
// local storage. Call Initialize before use to restore a saved session.
func NewAuthService(c client.Client, storage localstorage.Repository, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{
		client:    c,
		storage:   storage,
		log:       log.With("component", "auth"),
		listeners: make(map[int]func(State)),
	}
}

// Initialize reads the persisted snapshot. A snapshot that cannot be decoded
// is removed and the store starts logged out.
func (a *authService) Initialize(ctx context.Context) error {
	user, err := a.restore(ctx)
	if err != nil || user == nil {
		return err
	}
	a.log.Info(ctx, "session restored", "email", user.Email())
	a.notify()
	return nil
}

func (a *authService) restore(ctx context.Context) (models.User, error) {
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	data, err := a.storage.Get(ctx, common.UserStorageKey)
	if err != nil {
		return nil, fmt.Errorf("read session: %w", err)
	}
	if data == nil {
		return nil, nil
	}

	user, err := models.DecodeUser(data)
	if err != nil {
		a.log.Warn(ctx, "discarding corrupt session snapshot", "error", err)
		if err := a.storage.Delete(ctx, common.UserStorageKey); err != nil {
			return nil, fmt.Errorf("delete corrupt session: %w", err)
		}
		return nil, nil
	}
	if user == nil {
		return nil, nil
	}

	a.mu.Lock()
	a.user = user
	a.mu.Unlock()
	return user, nil
}

// Login authenticates with email and password. The request body is built
// from a string copy of password, so wiping the caller's slice afterwards
// does not clear the bytes held by the encoder and transport buffers.
func (a *authService) Login(ctx context.Context, email string, password []byte) (models.User, error) {
	creds := models.Credentials{Email: email, Password: string(password)}
	return a.run(ctx, "login", MsgLoginFailed, func(ctx context.Context) (models.User, error) {
		return a.client.Login(ctx, creds)
	})
}

func (a *authService) Register(ctx context.Context, email string, password []byte) (models.User, error) {
	creds := models.Credentials{Email: email, Password: string(password)}
	return a.run(ctx, "register", MsgRegistrationFailed, func(ctx context.Context) (models.User, error) {
		return a.client.Register(ctx, creds)
	})
}

func (a *authService) UpdateProfile(ctx context.Context, profile models.Profile) (models.User, error) {
	a.log.Debug(ctx, "sending profile update", "fields", slices.Sorted(maps.Keys(profile)))
	return a.run(ctx, "update_profile", MsgProfileUpdateFailed, func(ctx context.Context) (models.User, error) {
		return a.client.UpdateProfile(ctx, profile)
	})
}

// run executes one backend call with the loading and error bookkeeping
// shared by all network operations.
func (a *authService) run(ctx context.Context, op, fallback string, call func(context.Context) (models.User, error)) (models.User, error) {
	log := a.log.With("op", op)

	a.mu.Lock()
	a.inflight++
	a.lastErr = nil
	a.mu.Unlock()
	a.notify()

	defer func() {
		a.mu.Lock()
		a.inflight--
		a.mu.Unlock()
		a.notify()
	}()

	user, err := call(ctx)
	if err != nil {
		info := newErrorInfo(err, fallback)
		a.setError(info)
		log.Error(ctx, "request failed", "error", err, "message", info.Message)
		return nil, err
	}

	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	a.mu.Lock()
	a.user = user
	a.mu.Unlock()

	if err := a.persist(ctx, user); err != nil {
		a.setError(&ErrorInfo{Message: MsgSessionSaveFailed})
		log.Error(ctx, "session not persisted", "error", err)
		return nil, err
	}

	log.Info(ctx, "request succeeded", "email", user.Email())
	return user.Clone(), nil
}

func (a *authService) persist(ctx context.Context, user models.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := a.storage.Set(ctx, common.UserStorageKey, data); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

func (a *authService) setError(info *ErrorInfo) {
	a.mu.Lock()
	a.lastErr = info
	a.mu.Unlock()
}

// Logout clears the in-memory user and removes the persisted snapshot.
func (a *authService) Logout(ctx context.Context) error {
	defer a.notify()
	a.writeMu.Lock()
	defer a.writeMu.Unlock()

	a.mu.Lock()
	a.user = nil
	a.mu.Unlock()

	if err := a.storage.Delete(ctx, common.UserStorageKey); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	a.log.Info(ctx, "logged out")
	return nil
}

func (a *authService) User() models.User {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user.Clone()
}

func (a *authService) IsAuthenticated() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.user != nil
}

func (a *authService) Loading() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.inflight > 0
}

func (a *authService) Error() *ErrorInfo {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr.clone()
}

func (a *authService) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return State{
		User:    a.user.Clone(),
		Loading: a.inflight > 0,
		Error:   a.lastErr.clone(),
	}
}

// Subscribe registers fn to be called with the new State after every change.
// Listeners run synchronously on the goroutine that made the change.
func (a *authService) Subscribe(fn func(State)) func() {
	a.listenersMu.Lock()
	id := a.nextID
	a.nextID++
	a.listeners[id] = fn
	a.listenersMu.Unlock()

	return func() {
		a.listenersMu.Lock()
		delete(a.listeners, id)
		a.listenersMu.Unlock()
	}
}

func (a *authService) notify() {
	a.listenersMu.Lock()
	fns := make([]func(State), 0, len(a.listeners))
	for _, id := range slices.Sorted(maps.Keys(a.listeners)) {
		fns = append(fns, a.listeners[id])
	}
	a.listenersMu.Unlock()

	if len(fns) == 0 {
		return
	}
	st := a.State()
	for _, fn := range fns {
		fn(st)
	}
}

// Close releases resources held by the underlying client.
func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
