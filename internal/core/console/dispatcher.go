// Package console implements the interactive menu that drives the parcel
// collections. It owns all prompting and rendering; the collections only see
// fully collected field values.
package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	deliveryports "parcel-tracker/internal/features/deliveries/ports"
	orderports "parcel-tracker/internal/features/orders/ports"
	"parcel-tracker/internal/features/parcels/domain"
	returnports "parcel-tracker/internal/features/returns/ports"

	"go.uber.org/zap"
)

const (
	msgPackageAdded   = "Package has been Successfully Added!"
	msgReturnAdded    = "Package has been Successfully added to Returns!"
	msgOrderPlaced    = "Order has been Successfully Placed!"
	msgDuplicateID    = "ID already exists. Please enter a unique ID."
	msgPackageRemoved = "Package has been Successfully Removed!"
	msgPackageUpdated = "Package has been Successfully Updated!"
	msgNotFound       = "Package not found!"
	msgNoReturns      = "No returns to process."
	msgNoOrders       = "No orders to process."
	msgNoRecords      = "No records."
	msgInvalidChoice  = "Invalid choice! Please try again."
	msgInvalidNumber  = "Invalid input, please enter a number."
	msgExit           = "Exiting the system. Thank you!"

	promptChoice      = "Enter your Choice: "
	promptID          = "Enter Package ID: "
	promptWeight      = "Enter Package Weight (In Grams): "
	promptDestination = "Enter Package Destination: "
)

// Options configures a Dispatcher.
type Options struct {
	// Title is shown in the main menu banner.
	Title string
	// Color enables styled banners.
	Color bool
	// Logger receives operation logs. Nil means a no-op logger.
	Logger *zap.Logger
}

// Dispatcher translates menu choices into collection operations.
type Dispatcher struct {
	deliveries deliveryports.DeliveryRegistry
	returns    returnports.ReturnStack
	orders     orderports.OrderQueue

	input  io.Reader
	in     *lineReader
	out    io.Writer
	title  string
	styles styles
	logger *zap.Logger
}

// New creates a Dispatcher reading from in and writing to out.
func New(
	deliveries deliveryports.DeliveryRegistry,
	returns returnports.ReturnStack,
	orders orderports.OrderQueue,
	in io.Reader,
	out io.Writer,
	opts Options,
) *Dispatcher {
	l := opts.Logger
	if l == nil {
		l = zap.NewNop()
	}

	return &Dispatcher{
		deliveries: deliveries,
		returns:    returns,
		orders:     orders,
		input:      in,
		out:        out,
		title:      opts.Title,
		styles:     newStyles(out, opts.Color),
		logger:     l,
	}
}

// Run shows the main menu until the user exits, input ends, or ctx is
// cancelled. End of input is a clean exit and returns nil.
func (d *Dispatcher) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	d.in = newLineReader(d.input, done)

	d.logger.Debug("Dispatcher started")

	for {
		d.println(d.styles.title.Render(rule + " " + d.title + " " + rule))
		d.println("")
		d.println("Enter an Option to Open a Menu: ")
		d.menu([]string{
			"1. Package Menu",
			"2. Return Menu",
			"3. Orders Menu",
			"4. Display All Details",
			"0. Exit",
		})

		choice, err := d.readInt(ctx, promptChoice)
		if err != nil {
			return d.stop(err)
		}

		switch choice {
		case 1:
			err = d.packageMenu(ctx)
		case 2:
			err = d.returnMenu(ctx)
		case 3:
			err = d.orderMenu(ctx)
		case 4:
			d.displayAll()
		case 0:
			d.println(msgExit)
			d.logger.Debug("Dispatcher exited by user")
			return nil
		default:
			d.failure(msgInvalidChoice)
		}

		if err != nil {
			return d.stop(err)
		}
	}
}

// stop maps the error that ended the loop to Run's result.
func (d *Dispatcher) stop(err error) error {
	if errors.Is(err, io.EOF) {
		d.logger.Debug("Input closed, leaving dispatcher")
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		d.logger.Info("Dispatcher cancelled", zap.Error(err))
		return err
	}
	d.logger.Error("Dispatcher stopped", zap.Error(err))
	return err
}

func (d *Dispatcher) packageMenu(ctx context.Context) error {
	for {
		d.section("Package Menu")
		d.menu([]string{
			"1. Add Delivery for Package",
			"2. Remove Delivered Package",
			"3. Update Package",
			"4. Display Packages",
			"0. Return to Main Menu",
		})

		choice, err := d.readInt(ctx, promptChoice)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = d.addParcel(ctx, domain.CollectionDeliveries, d.deliveries.Exists, d.deliveries.Add, msgPackageAdded)
		case 2:
			err = d.deleteDelivery(ctx)
		case 3:
			err = d.modifyDelivery(ctx)
		case 4:
			d.listing(d.deliveries.List())
		case 0:
			return nil
		default:
			d.failure(msgInvalidChoice)
		}

		if err != nil {
			return err
		}
	}
}

func (d *Dispatcher) returnMenu(ctx context.Context) error {
	for {
		d.section("Return Menu")
		d.menu([]string{
			"1. Add Package to Returns",
			"2. Process Return",
			"3. Display Returns",
			"0. Return to Main Menu",
		})

		choice, err := d.readInt(ctx, promptChoice)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = d.addParcel(ctx, domain.CollectionReturns, d.returns.Exists, d.returns.Push, msgReturnAdded)
		case 2:
			d.processReturn()
		case 3:
			d.listing(d.returns.List())
		case 0:
			return nil
		default:
			d.failure(msgInvalidChoice)
		}

		if err != nil {
			return err
		}
	}
}

func (d *Dispatcher) orderMenu(ctx context.Context) error {
	for {
		d.section("Orders Menu")
		d.menu([]string{
			"1. Place Order",
			"2. Process Order",
			"3. Display Orders",
			"0. Return to Main Menu",
		})

		choice, err := d.readInt(ctx, promptChoice)
		if err != nil {
			return err
		}

		switch choice {
		case 1:
			err = d.addParcel(ctx, domain.CollectionOrders, d.orders.Exists, d.orders.Enqueue, msgOrderPlaced)
		case 2:
			d.processOrder()
		case 3:
			d.listing(d.orders.List())
		case 0:
			return nil
		default:
			d.failure(msgInvalidChoice)
		}

		if err != nil {
			return err
		}
	}
}

func (d *Dispatcher) displayAll() {
	d.section("All Packages")
	d.listing(d.deliveries.List())
	d.section("All Returns")
	d.listing(d.returns.List())
	d.section("All Orders")
	d.listing(d.orders.List())
}

// addParcel collects id, weight, and destination, then inserts. A known
// duplicate id is rejected before the remaining fields are asked for.
func (d *Dispatcher) addParcel(
	ctx context.Context,
	c domain.Collection,
	exists func(int) bool,
	add func(int, float64, string) error,
	success string,
) error {
	d.println("")
	id, err := d.readInt(ctx, promptID)
	if err != nil {
		return err
	}
	if exists(id) {
		d.logger.Info("Rejected duplicate parcel id", zap.String("collection", string(c)), zap.Int("parcel_id", id))
		d.failure(msgDuplicateID)
		return nil
	}

	weight, err := d.readFloat(ctx, promptWeight)
	if err != nil {
		return err
	}
	destination, err := d.readText(ctx, promptDestination)
	if err != nil {
		return err
	}

	if err := add(id, weight, destination); err != nil {
		d.report(c, id, err)
		return nil
	}

	d.logger.Debug("Parcel added",
		zap.String("collection", string(c)),
		zap.Int("parcel_id", id),
		zap.Float64("weight", weight),
		zap.String("destination", destination),
	)
	d.println("")
	d.println(success)
	return nil
}

func (d *Dispatcher) deleteDelivery(ctx context.Context) error {
	id, err := d.readInt(ctx, "Enter Package ID to remove: ")
	if err != nil {
		return err
	}

	if err := d.deliveries.Delete(id); err != nil {
		d.report(domain.CollectionDeliveries, id, err)
		return nil
	}

	d.logger.Debug("Parcel removed", zap.String("collection", string(domain.CollectionDeliveries)), zap.Int("parcel_id", id))
	d.println(msgPackageRemoved)
	return nil
}

// modifyDelivery asks for the destination before the weight.
func (d *Dispatcher) modifyDelivery(ctx context.Context) error {
	id, err := d.readInt(ctx, "Enter Package ID to search and update: ")
	if err != nil {
		return err
	}
	if !d.deliveries.Exists(id) {
		d.report(domain.CollectionDeliveries, id, domain.NewNotFoundError(domain.CollectionDeliveries, "modify", id))
		return nil
	}

	destination, err := d.readText(ctx, "Enter new destination: ")
	if err != nil {
		return err
	}
	weight, err := d.readFloat(ctx, "Enter new weight: ")
	if err != nil {
		return err
	}

	if err := d.deliveries.Modify(id, weight, destination); err != nil {
		d.report(domain.CollectionDeliveries, id, err)
		return nil
	}

	d.logger.Debug("Parcel updated", zap.String("collection", string(domain.CollectionDeliveries)), zap.Int("parcel_id", id))
	d.println(msgPackageUpdated)
	return nil
}

func (d *Dispatcher) processReturn() {
	p, err := d.returns.Pop()
	if errors.Is(err, domain.ErrEmptyCollection) {
		d.failure(msgNoReturns)
		return
	}
	if err != nil {
		d.report(domain.CollectionReturns, 0, err)
		return
	}

	d.logger.Debug("Return processed", zap.Int("parcel_id", p.ID))
	d.println(fmt.Sprintf("Processing return ID: %d", p.ID))
}

func (d *Dispatcher) processOrder() {
	p, err := d.orders.Dequeue()
	if errors.Is(err, domain.ErrEmptyCollection) {
		d.failure(msgNoOrders)
		return
	}
	if err != nil {
		d.report(domain.CollectionOrders, 0, err)
		return
	}

	d.logger.Debug("Order processed", zap.Int("parcel_id", p.ID))
	d.println(fmt.Sprintf("Processing order ID: %d", p.ID))
}

// report renders an operation failure. Expected outcomes are logged at info,
// anything else at error.
func (d *Dispatcher) report(c domain.Collection, id int, err error) {
	fields := []zap.Field{zap.String("collection", string(c)), zap.Int("parcel_id", id), zap.Error(err)}

	switch {
	case errors.Is(err, domain.ErrDuplicateID):
		d.logger.Info("Rejected duplicate parcel id", fields...)
		d.failure(msgDuplicateID)
	case errors.Is(err, domain.ErrNotFound):
		d.logger.Info("Parcel not found", fields...)
		d.failure(msgNotFound)
	default:
		d.logger.Error("Unexpected collection error", fields...)
		d.failure("Unexpected error: " + err.Error())
	}
}
