// Package workflow contains the screen-level logic of the client application.
// Each workflow owns its in-memory state, delegates all business logic to the
// backend through the clients service, and never mutates state before the
// server has confirmed the action.
package workflow

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/clientdesk/clientdesk/internal/client/models"
	"github.com/clientdesk/clientdesk/internal/common"
	"github.com/looplab/fsm"
)

// Screen states of the client list.
const (
	StateIdle    = "idle"    // no search performed yet
	StateResults = "results" // non-empty result set shown
	StateEmpty   = "empty"   // search executed, zero matches
	StateEditing = "editing" // one record's draft fields are live
)

// ClientAPI is the backend surface the list workflow needs.
// *clients.Service satisfies it.
type ClientAPI interface {
	SearchByName(ctx context.Context, name string) ([]models.Client, error)
	SearchByPhone(ctx context.Context, phone string) (*models.Client, error)
	Update(ctx context.Context, id int64, name, phone, address string) (*models.Client, error)
	Delete(ctx context.Context, id int64) error
}

// Confirmer gates destructive actions behind an explicit user confirmation.
type Confirmer interface {
	Confirm(prompt string) bool
}

// Draft holds the unsaved edit state for a single record.
type Draft struct {
	ClientID    int64
	Name        string
	PhoneNumber string
	Address     string
}

// ListWorkflow implements the search/edit/delete screen. At most one record
// can be edited at a time; starting an edit on a different record discards
// any unsaved draft without warning.
//
// Every action that touches the network captures the current request
// generation before the call and re-checks it after: if another action has
// bumped the generation in the meantime, the late response is discarded so
// it cannot overwrite state established by the newer action.
type ListWorkflow struct {
	mu      sync.Mutex
	api     ClientAPI
	confirm Confirmer
	machine *fsm.FSM
	gen     uint64
	results []models.Client
	draft   *Draft
}

func NewListWorkflow(api ClientAPI, confirm Confirmer) *ListWorkflow {
	machine := fsm.NewFSM(
		StateIdle,
		fsm.Events{
			{Name: "show-results", Src: []string{StateIdle, StateResults, StateEmpty, StateEditing}, Dst: StateResults},
			{Name: "show-empty", Src: []string{StateIdle, StateResults, StateEmpty, StateEditing}, Dst: StateEmpty},
			{Name: "start-edit", Src: []string{StateResults, StateEditing}, Dst: StateEditing},
			{Name: "close-edit", Src: []string{StateEditing}, Dst: StateResults},
		},
		fsm.Callbacks{},
	)
	return &ListWorkflow{api: api, confirm: confirm, machine: machine}
}

// transition fires an FSM event, swallowing self-transitions.
// Call with mu held.
func (w *ListWorkflow) transition(event string) {
	err := w.machine.Event(context.Background(), event)
	if err == nil {
		return
	}
	var noTransition fsm.NoTransitionError
	if errors.As(err, &noTransition) {
		return
	}
	// Transitions are driven by our own state checks; an invalid event here
	// is a programming error.
	panic(fmt.Sprintf("workflow: invalid transition %q from %q: %v", event, w.machine.Current(), err))
}

// begin bumps the request generation, superseding any in-flight action,
// and returns the new generation for the caller's own staleness check.
func (w *ListWorkflow) begin() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.gen++
	return w.gen
}

// State returns the current screen state.
func (w *ListWorkflow) State() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.machine.Current()
}

// Results returns a copy of the currently displayed result set.
func (w *ListWorkflow) Results() []models.Client {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]models.Client, len(w.results))
	copy(out, w.results)
	return out
}

// Draft returns a copy of the live edit draft, or nil when nothing is edited.
func (w *ListWorkflow) Draft() *Draft {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft == nil {
		return nil
	}
	d := *w.draft
	return &d
}

// SearchByName replaces the result set with all clients matching the trimmed
// text. An empty match list is a valid success. Any active edit draft is
// discarded on success.
func (w *ListWorkflow) SearchByName(ctx context.Context, text string) error {
	name := strings.TrimSpace(text)
	if name == "" {
		return fmt.Errorf("%w: enter at least one letter to search by name", common.ErrValidation)
	}

	g := w.begin()
	list, err := w.api.SearchByName(ctx, name)

	w.mu.Lock()
	defer w.mu.Unlock()
	if g != w.gen {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not load clients by name: %w", err)
	}

	w.results = list
	w.draft = nil
	if len(list) == 0 {
		w.transition("show-empty")
	} else {
		w.transition("show-results")
	}
	return nil
}

// SearchByPhone looks up the single client with exactly the trimmed phone
// number. "No match" is a successful empty result, not an error. On any
// other failure the current result set is left unchanged.
func (w *ListWorkflow) SearchByPhone(ctx context.Context, text string) error {
	phone := strings.TrimSpace(text)
	if phone == "" {
		return fmt.Errorf("%w: enter a phone number to search", common.ErrValidation)
	}

	g := w.begin()
	record, err := w.api.SearchByPhone(ctx, phone)

	w.mu.Lock()
	defer w.mu.Unlock()
	if g != w.gen {
		return nil
	}
	if errors.Is(err, common.ErrNotFound) {
		w.results = nil
		w.draft = nil
		w.transition("show-empty")
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not search the client by phone: %w", err)
	}

	w.results = []models.Client{*record}
	w.draft = nil
	w.transition("show-results")
	return nil
}

// StartEdit seeds the edit draft from the displayed record with the given id,
// discarding any prior unsaved draft. The record must be in the current
// result set.
func (w *ListWorkflow) StartEdit(id int64) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	var record *models.Client
	for i := range w.results {
		if w.results[i].ID == id {
			record = &w.results[i]
			break
		}
	}
	if record == nil {
		return fmt.Errorf("%w: client %d is not in the current results", common.ErrValidation, id)
	}

	// Supersede any in-flight save/delete so its late response cannot touch
	// the new draft.
	w.gen++
	w.draft = &Draft{
		ClientID:    record.ID,
		Name:        record.Name,
		PhoneNumber: record.PhoneNumber,
		Address:     record.Address,
	}
	w.transition("start-edit")
	return nil
}

// UpdateDraft replaces the draft field values. An edit must be in progress.
func (w *ListWorkflow) UpdateDraft(name, phone, address string) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft == nil {
		return fmt.Errorf("%w: no edit in progress", common.ErrValidation)
	}
	w.draft.Name = name
	w.draft.PhoneNumber = phone
	w.draft.Address = address
	return nil
}

// CancelEdit clears the edit draft without contacting the backend. It also
// supersedes any in-flight save, so a response that arrives after the cancel
// cannot patch the discarded values into the result set.
func (w *ListWorkflow) CancelEdit() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draft == nil {
		return
	}
	w.gen++
	w.draft = nil
	w.transition("close-edit")
}

// SaveEdit persists the current draft. All three fields must be non-empty
// after trimming; validation failures never reach the backend. On success
// the matching record is patched in place with the trimmed draft values and
// the draft is cleared; order and all other records stay untouched.
func (w *ListWorkflow) SaveEdit(ctx context.Context) error {
	w.mu.Lock()
	if w.draft == nil {
		w.mu.Unlock()
		return fmt.Errorf("%w: no edit in progress", common.ErrValidation)
	}

	id := w.draft.ClientID
	name := strings.TrimSpace(w.draft.Name)
	phone := strings.TrimSpace(w.draft.PhoneNumber)
	address := strings.TrimSpace(w.draft.Address)
	if name == "" || phone == "" || address == "" {
		w.mu.Unlock()
		return fmt.Errorf("%w: all fields are required", common.ErrValidation)
	}

	w.gen++
	g := w.gen
	w.mu.Unlock()

	_, err := w.api.Update(ctx, id, name, phone, address)

	w.mu.Lock()
	defer w.mu.Unlock()
	if g != w.gen {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not update the client: %w", err)
	}

	for i := range w.results {
		if w.results[i].ID == id {
			w.results[i].Name = name
			w.results[i].PhoneNumber = phone
			w.results[i].Address = address
			break
		}
	}
	w.draft = nil
	w.transition("close-edit")
	return nil
}

// DeleteClient removes the record with the given id after an explicit user
// confirmation. On success the record disappears from the result set and,
// if the edit draft referenced it, the draft is cleared. Declining the
// confirmation aborts silently.
func (w *ListWorkflow) DeleteClient(ctx context.Context, id int64) error {
	w.mu.Lock()
	found := false
	for i := range w.results {
		if w.results[i].ID == id {
			found = true
			break
		}
	}
	w.mu.Unlock()
	if !found {
		return fmt.Errorf("%w: client %d is not in the current results", common.ErrValidation, id)
	}

	if !w.confirm.Confirm("Are you sure you want to delete this client?") {
		return nil
	}

	g := w.begin()
	err := w.api.Delete(ctx, id)

	w.mu.Lock()
	defer w.mu.Unlock()
	if g != w.gen {
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not delete the client: %w", err)
	}

	kept := w.results[:0]
	for _, c := range w.results {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	w.results = kept

	if w.draft != nil && w.draft.ClientID == id {
		w.draft = nil
		w.transition("close-edit")
	}
	// A draft for a different record stays live; only adjust the screen
	// state when no edit is in progress.
	if w.draft == nil {
		if len(w.results) == 0 {
			w.transition("show-empty")
		} else {
			w.transition("show-results")
		}
	}
	return nil
}
