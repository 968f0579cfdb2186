package cli

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/clientdesk/clientdesk/internal/common"
)

func (a *App) Login(ctx context.Context) error {

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	err = a.session.Login(ctx, email, password)
	if err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			printlnFn("Invalid email or password.")
		} else {
			printlnFn("Login failed, please try again.")
		}
		return err
	}

	printlnFn("Login successful.")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		log.Printf("error: %v", err)
		return err
	}
	printlnFn("Logged out.")
	return nil
}

func (a *App) Register(ctx context.Context) error {

	name, err := GetSimpleText(a.reader, "Enter name", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	email, err := GetSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(os.Stdout)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	err = a.register.Submit(ctx, name, email, password)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			printlnFn("Error:", err.Error())
		case errors.Is(err, common.ErrAlreadyExists):
			printlnFn("An account with this email already exists.")
		default:
			printlnFn("Registration failed, please try again.")
		}
		return err
	}

	printlnFn("Account created, you can log in now.")
	return nil
}
