package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/rizkyamal/nusaview/internal/client/models"
	"github.com/rizkyamal/nusaview/internal/client/supabase"
)

// ErrNotLoggedIn is returned when a write operation is attempted without a
// session. No remote call is made in that case.
var ErrNotLoggedIn = errors.New("you must be logged in first")

// Status tags the listing state.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusReady
	StatusFailed
)

// State is the observable value a screen renders from. On failure, Items
// keeps the last successfully fetched list so the screen can stay populated
// while showing the error.
type State[T any] struct {
	Status Status
	Items  []T
	Err    string
}

// listingPtr constrains the pointer side of a variant type.
type listingPtr[T any] interface {
	*T
	models.Listing
}

// Options configure one listing variant.
type Options struct {
	Table          string
	Bucket         string
	KeyPrefix      string
	KeyByUser      bool // gallery uploads are keyed under the uploader's id
	OrderByCreated bool
	CanUpdate      bool
	CanDelete      bool
}

// ListingService is the one CRUD engine behind every content tab. Earlier
// revisions of the app carried a hand-copied variant of this logic per
// screen; the table/bucket/capability differences live in Options instead.
type ListingService[T any, P listingPtr[T]] struct {
	opts    Options
	tables  supabase.Tables
	storage supabase.Storage
	session *Session

	mu    sync.Mutex
	state State[T]
	subs  []func(State[T])
}

func NewListingService[T any, P listingPtr[T]](opts Options, tables supabase.Tables, storage supabase.Storage, session *Session) *ListingService[T, P] {
	return &ListingService[T, P]{opts: opts, tables: tables, storage: storage, session: session}
}

func (s *ListingService[T, P]) CanUpdate() bool { return s.opts.CanUpdate }
func (s *ListingService[T, P]) CanDelete() bool { return s.opts.CanDelete }

// State returns a snapshot of the current listing state.
func (s *ListingService[T, P]) State() State[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Subscribe registers fn to run after every state change.
func (s *ListingService[T, P]) Subscribe(fn func(State[T])) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *ListingService[T, P]) snapshotLocked() State[T] {
	items := make([]T, len(s.state.Items))
	copy(items, s.state.Items)
	return State[T]{Status: s.state.Status, Items: items, Err: s.state.Err}
}

func (s *ListingService[T, P]) setState(mutate func(*State[T])) {
	s.mu.Lock()
	mutate(&s.state)
	snap := s.snapshotLocked()
	subs := append([]func(State[T]){}, s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap)
	}
}

func (s *ListingService[T, P]) setLoading() {
	s.setState(func(st *State[T]) {
		st.Status = StatusLoading
		st.Err = ""
	})
}

func (s *ListingService[T, P]) setReady(items []T) {
	s.setState(func(st *State[T]) {
		st.Status = StatusReady
		st.Items = items
		st.Err = ""
	})
}

// setFailed records the error and leaves the previous items in place.
func (s *ListingService[T, P]) setFailed(msg string) {
	s.setState(func(st *State[T]) {
		st.Status = StatusFailed
		st.Err = msg
	})
}

// Fetch replaces the list wholesale from the backend. On failure the previous
// list stays available alongside the stored error.
func (s *ListingService[T, P]) Fetch(ctx context.Context) error {
	s.setLoading()

	opts := supabase.SelectOptions{}
	if s.opts.OrderByCreated {
		opts.OrderBy = "created_at"
		opts.Descending = true
	}

	var items []T
	if err := s.tables.Select(ctx, s.opts.Table, opts, &items); err != nil {
		s.setFailed(fmt.Sprintf("failed to load data: %v", err))
		return err
	}

	s.setReady(items)
	return nil
}

// Create inserts a new record, uploading the image first when one is given.
// The creator id is stamped from the current session; without a session no
// remote call is made at all.
func (s *ListingService[T, P]) Create(ctx context.Context, item P, image []byte) error {
	if !s.session.Authenticated() {
		s.setFailed(ErrNotLoggedIn.Error())
		return ErrNotLoggedIn
	}

	s.setLoading()

	if image != nil {
		url, err := s.uploadImage(ctx, image)
		if err != nil {
			s.setFailed(fmt.Sprintf("image upload failed: %v", err))
			return err
		}
		item.SetImageURL(url)
	}

	item.SetOwner(s.session.UserID())

	var inserted []T
	if err := s.tables.Insert(ctx, s.opts.Table, item, &inserted); err != nil {
		s.setFailed(fmt.Sprintf("failed to add: %v", err))
		return err
	}

	return s.Fetch(ctx)
}

// Update rewrites the content fields of the record with the given id. A new
// image replaces the stored reference; otherwise the reference already on
// item is kept. Creator id and creation timestamp are never resent.
func (s *ListingService[T, P]) Update(ctx context.Context, id string, item P, newImage []byte) error {
	if !s.opts.CanUpdate {
		return fmt.Errorf("%s entries cannot be edited", s.opts.Table)
	}

	s.setLoading()

	if newImage != nil {
		url, err := s.uploadImage(ctx, newImage)
		if err != nil {
			// A failed re-upload keeps the previous image instead of
			// aborting the edit.
			log.Printf("image upload failed, keeping previous image: %v", err)
		} else {
			item.SetImageURL(url)
		}
	}

	if err := s.tables.UpdateByID(ctx, s.opts.Table, id, item.Patch()); err != nil {
		s.setFailed(fmt.Sprintf("failed to update: %v", err))
		return err
	}

	return s.Fetch(ctx)
}

// Delete removes the record with the given id.
func (s *ListingService[T, P]) Delete(ctx context.Context, id string) error {
	if !s.opts.CanDelete {
		return fmt.Errorf("%s entries cannot be deleted", s.opts.Table)
	}

	s.setLoading()

	if err := s.tables.DeleteByID(ctx, s.opts.Table, id); err != nil {
		s.setFailed(fmt.Sprintf("failed to delete: %v", err))
		return err
	}

	return s.Fetch(ctx)
}

// uploadImage stores the bytes under a fresh random key and returns the
// public URL. Keys are client-generated, unlike record ids.
func (s *ListingService[T, P]) uploadImage(ctx context.Context, data []byte) (string, error) {
	prefix := s.opts.KeyPrefix
	if s.opts.KeyByUser {
		prefix = s.session.UserID()
	}
	key := prefix + "/" + uuid.NewString() + ".jpg"

	if err := s.storage.Upload(ctx, s.opts.Bucket, key, data); err != nil {
		return "", err
	}
	return s.storage.PublicURL(s.opts.Bucket, key), nil
}
