// Package console runs the interactive inventory menu.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/saltyorg/stockroom/internal/inventory"
)

// Menu choices.
const (
	choiceAdd = iota + 1
	choiceUpdate
	choiceDelete
	choiceView
	choiceExit
)

const menu = `Inventory Management System
1. Add Item
2. Update Item
3. Delete Item
4. View Items
5. Exit
`

// Operator-facing messages.
const (
	msgAdded          = "Item added successfully."
	msgUpdated        = "Item updated successfully."
	msgDeleted        = "Item deleted successfully."
	msgInvalidChoice  = "Invalid choice. Try again."
	msgInvalidNumber  = "Invalid number. Try again."
	msgInvalidInput   = "Invalid input. Name should not be empty, and quantity should be greater than 0."
	msgInvalidID      = "Invalid ID. ID should be greater than 0."
	msgNotFound       = "Item with the specified ID not found."
	msgDatabaseError  = "Database error: "
	msgInventoryTitle = "Inventory Items:"
)

// errEndOfInput stops the loop when stdin is exhausted.
var errEndOfInput = errors.New("end of input")

// errInvalidNumber marks a prompt answer that is not an integer.
var errInvalidNumber = errors.New("invalid number")

// Inventory is the set of operations the menu dispatches to.
type Inventory interface {
	Add(ctx context.Context, name string, quantity int) (*inventory.Item, error)
	Update(ctx context.Context, id int64, name string, quantity int) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]inventory.Item, error)
}

// Console reads menu choices from in and writes prompts and results to out.
type Console struct {
	inv     Inventory
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a console over the given streams.
func New(inv Inventory, in io.Reader, out io.Writer) *Console {
	return &Console{
		inv:     inv,
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Run loops until the operator exits, input ends, or ctx is canceled.
func (c *Console) Run(ctx context.Context) error {
	log.Debug().Msg("Console started")
	defer log.Debug().Msg("Console stopped")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(c.out, menu)
		choice, err := c.promptInt("Enter your choice: ")
		switch {
		case errors.Is(err, errEndOfInput):
			return nil
		case errors.Is(err, errInvalidNumber):
			c.println(msgInvalidChoice)
			continue
		case err != nil:
			return err
		}

		if choice == choiceExit {
			return nil
		}

		if err := c.dispatch(ctx, choice); err != nil {
			if errors.Is(err, errEndOfInput) {
				return nil
			}
			if errors.Is(err, errInvalidNumber) {
				c.println(msgInvalidNumber)
				continue
			}
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return err
			}
			if isInputError(err) {
				return err
			}
			c.reportError(err)
		}
	}
}

func (c *Console) dispatch(ctx context.Context, choice int) error {
	switch choice {
	case choiceAdd:
		return c.add(ctx)
	case choiceUpdate:
		return c.update(ctx)
	case choiceDelete:
		return c.delete(ctx)
	case choiceView:
		return c.view(ctx)
	default:
		c.println(msgInvalidChoice)
		return nil
	}
}

func (c *Console) add(ctx context.Context) error {
	name, err := c.prompt("Enter item name: ")
	if err != nil {
		return err
	}
	quantity, err := c.promptInt("Enter item quantity: ")
	if err != nil {
		return err
	}

	if _, err := c.inv.Add(ctx, name, quantity); err != nil {
		return err
	}
	c.println(msgAdded)
	return nil
}

func (c *Console) update(ctx context.Context) error {
	id, err := c.promptInt("Enter item ID to update: ")
	if err != nil {
		return err
	}
	name, err := c.prompt("Enter new item name: ")
	if err != nil {
		return err
	}
	quantity, err := c.promptInt("Enter new item quantity: ")
	if err != nil {
		return err
	}

	if err := c.inv.Update(ctx, int64(id), name, quantity); err != nil {
		return err
	}
	c.println(msgUpdated)
	return nil
}

func (c *Console) delete(ctx context.Context) error {
	id, err := c.promptInt("Enter item ID to delete: ")
	if err != nil {
		return err
	}

	if err := c.inv.Delete(ctx, int64(id)); err != nil {
		return err
	}
	c.println(msgDeleted)
	return nil
}

func (c *Console) view(ctx context.Context) error {
	items, err := c.inv.List(ctx)
	if err != nil {
		return err
	}

	c.println(msgInventoryTitle)
	for _, item := range items {
		fmt.Fprintf(c.out, "ID: %d, Name: %s, Quantity: %d\n", item.ID, item.Name, item.Quantity)
	}
	return nil
}

// reportError prints the operator-facing message for a failed operation.
func (c *Console) reportError(err error) {
	var verr inventory.ValidationError
	switch {
	case errors.As(err, &verr) && verr.Field == inventory.FieldID:
		c.println(msgInvalidID)
	case errors.As(err, &verr):
		c.println(msgInvalidInput)
	case errors.Is(err, inventory.ErrNotFound):
		c.println(msgNotFound)
	default:
		log.Error().Err(err).Msg("Inventory operation failed")
		c.println(msgDatabaseError + err.Error())
	}
}

func (c *Console) prompt(label string) (string, error) {
	fmt.Fprint(c.out, label)
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", inputError{err}
		}
		return "", errEndOfInput
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

func (c *Console) promptInt(label string) (int, error) {
	text, err := c.prompt(label)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(text)
	if err != nil {
		return 0, errInvalidNumber
	}
	return n, nil
}

func (c *Console) println(msg string) {
	fmt.Fprintln(c.out, msg)
}

// inputError wraps a failure reading from the input stream.
type inputError struct {
	err error
}

func (e inputError) Error() string { return fmt.Sprintf("failed to read input: %v", e.err) }

func (e inputError) Unwrap() error { return e.err }

func isInputError(err error) bool {
	var ierr inputError
	return errors.As(err, &ierr)
}
