package cli

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
)

// Edit starts an inline edit for one record: it seeds the draft from the
// current result set, then prompts for each field with the current value as
// the default. The draft is not saved until the user runs "save".
func (a *App) Edit(ctx context.Context, idArg string) error {

	id, err := strconv.ParseInt(idArg, 10, 64)
	if err != nil {
		printlnFn("Usage: edit <id>")
		return err
	}

	if err := a.list.StartEdit(id); err != nil {
		a.notifyError(err, "Could not start editing.")
		return err
	}

	draft := a.list.Draft()

	name, err := GetTextDefault(a.reader, "Name", draft.Name, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	phone, err := GetTextDefault(a.reader, "Phone number", draft.PhoneNumber, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	address, err := GetTextDefault(a.reader, "Address", draft.Address, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.list.UpdateDraft(name, phone, address); err != nil {
		a.notifyError(err, "Could not update the draft.")
		return err
	}

	printlnFn(fmt.Sprintf("Editing client %d. Type 'save' to apply or 'cancel' to discard.", id))
	return nil
}

func (a *App) Save(ctx context.Context) error {
	err := a.list.SaveEdit(ctx)
	if err != nil {
		a.notifyError(err, "Could not save the client.")
		return err
	}
	printlnFn("Saved.")
	a.printResults()
	return nil
}

func (a *App) Cancel(ctx context.Context) error {
	a.list.CancelEdit()
	printlnFn("Edit discarded.")
	return nil
}
