package cli

import (
	"context"
	"strconv"
)

// Delete removes one record from the current result set. The workflow calls
// back into App.Confirm before anything is sent to the backend.
func (a *App) Delete(ctx context.Context, idArg string) error {

	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		printlnFn("Usage: delete <id>")
		return err
	}

	if err := a.list.DeleteClient(ctx, id); err != nil {
		a.notifyError(err, "Could not delete the client.")
		return err
	}

	a.printResults()
	return nil
}
