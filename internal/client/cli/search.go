package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/clientdesk/clientdesk/internal/client/workflow"
	"github.com/clientdesk/clientdesk/internal/common"
)

func (a *App) state() string {
	return a.list.State()
}

func (a *App) SearchName(ctx context.Context, query string) error {
	err := a.list.SearchByName(ctx, query)
	if err != nil {
		a.notifyError(err, "Could not load clients.")
		return err
	}
	a.printResults()
	return nil
}

func (a *App) SearchPhone(ctx context.Context, query string) error {
	err := a.list.SearchByPhone(ctx, query)
	if err != nil {
		a.notifyError(err, "Could not look up the phone number.")
		return err
	}
	a.printResults()
	return nil
}

// List reprints whatever the last search produced.
func (a *App) List(ctx context.Context) error {
	a.printResults()
	return nil
}

func (a *App) printResults() {
	results := a.list.Results()
	if a.list.State() == workflow.StateIdle {
		printlnFn("Search for clients with 'name <text>' or 'phone <number>'.")
		return
	}
	if len(results) == 0 {
		printlnFn("No clients to show.")
		return
	}
	for _, c := range results {
		printlnFn(fmt.Sprintf("%6d  %-30s %-15s %s", c.ID, c.Name, c.PhoneNumber, c.Address))
	}
}

// notifyError prints a user-facing message for a failed action. Validation
// problems carry their own text; anything else gets the generic message so
// backend details never reach the screen.
func (a *App) notifyError(err error, generic string) {
	if errors.Is(err, common.ErrValidation) {
		printlnFn("Error:", err.Error())
		return
	}
	printlnFn(generic)
}
