package cli

import (
	"context"
	"fmt"
	"log"
	"os"
)

// New prompts for the three client fields and submits them. On failure the
// entered values are kept, so running "new" again offers them as defaults
// instead of starting from a blank form.
func (a *App) New(ctx context.Context) error {

	name, err := GetTextDefault(a.reader, "Name", a.createDraft.Name, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	phone, err := GetTextDefault(a.reader, "Phone number", a.createDraft.PhoneNumber, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	address, err := GetTextDefault(a.reader, "Address", a.createDraft.Address, os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	a.createDraft.Name = name
	a.createDraft.PhoneNumber = phone
	a.createDraft.Address = address

	created, err := a.create.Submit(ctx, name, phone, address)
	if err != nil {
		a.notifyError(err, "Could not create the client.")
		return err
	}

	a.createDraft.Name = ""
	a.createDraft.PhoneNumber = ""
	a.createDraft.Address = ""

	printlnFn(fmt.Sprintf("Created client %d (%s).", created.ID, created.Name))
	return nil
}
