package wizard

import (
	"errors"
	"fmt"
	"time"

	"parkspot/internal/db"
	"parkspot/internal/entities"
	"parkspot/internal/payment"
)

var (
	ErrWrongStep     = errors.New("not allowed at this step")
	ErrVehicleNeeded = errors.New("select a vehicle first")
	ErrPaymentNeeded = errors.New("choose a payment method first")
)

// Wizard tracks one customer's pass through the booking flow for a
// chosen facility slot: vehicle selection, review, payment,
// confirmation. It only collects data; the actual booking creation
// happens in the service once the wizard reaches the payment step.
type Wizard struct {
	step int

	facilityID string
	slotID     string
	entryTime  time.Time
	exitTime   *time.Time

	vehicleNumber string
	vehicleType   db.VehicleType

	paymentMethod db.PaymentMethod
	upiHandle     string
}

func New(facilityID, slotID string, entryTime time.Time, exitTime *time.Time) *Wizard {
	return &Wizard{
		step:       StepVehicle,
		facilityID: facilityID,
		slotID:     slotID,
		entryTime:  entryTime,
		exitTime:   exitTime,
	}
}

func (w *Wizard) Step() int { return w.step }

// States renders the progress indicator for the wizard's current step.
func (w *Wizard) States() []StepState { return StepStates(w.step) }

// Next advances one step. Leaving the vehicle step requires a selected
// vehicle; leaving the payment step requires a chosen payment method.
func (w *Wizard) Next() error {
	switch w.step {
	case StepVehicle:
		if w.vehicleNumber == "" {
			return ErrVehicleNeeded
		}
	case StepPayment:
		if w.paymentMethod == "" {
			return ErrPaymentNeeded
		}
	case StepConfirmation:
		return fmt.Errorf("%w: already at the last step", ErrWrongStep)
	}
	w.step = Clamp(w.step + 1)
	return nil
}

// Back steps back one step. The confirmation step is terminal.
func (w *Wizard) Back() error {
	if w.step == StepConfirmation {
		return fmt.Errorf("%w: booking already confirmed", ErrWrongStep)
	}
	w.step = Clamp(w.step - 1)
	return nil
}

// SelectVehicle records the vehicle; only valid on the vehicle step.
func (w *Wizard) SelectVehicle(number string, vt db.VehicleType) error {
	if w.step != StepVehicle {
		return fmt.Errorf("%w: vehicle selection is step %d", ErrWrongStep, StepVehicle)
	}
	if number == "" {
		return errors.New("vehicle number is required")
	}
	w.vehicleNumber = number
	w.vehicleType = vt
	return nil
}

// SetPayment records the payment choice; only valid on the payment
// step. A UPI payment carries a handle validated for shape.
func (w *Wizard) SetPayment(method db.PaymentMethod, upiHandle string) error {
	if w.step != StepPayment {
		return fmt.Errorf("%w: payment is step %d", ErrWrongStep, StepPayment)
	}
	if method == db.PaymentUPI {
		upiHandle = payment.NormalizeUPI(upiHandle)
		if err := payment.ValidateUPI(upiHandle); err != nil {
			return err
		}
	}
	w.paymentMethod = method
	w.upiHandle = upiHandle
	return nil
}

// BookingRequest materializes the collected data. Only a wizard sitting
// on the payment step with vehicle and payment recorded can produce one.
func (w *Wizard) BookingRequest(customerID string) (*entities.BookingRequest, error) {
	if w.step != StepPayment {
		return nil, fmt.Errorf("%w: confirmation happens on step %d", ErrWrongStep, StepPayment)
	}
	if w.vehicleNumber == "" {
		return nil, ErrVehicleNeeded
	}
	if w.paymentMethod == "" {
		return nil, ErrPaymentNeeded
	}
	return &entities.BookingRequest{
		CustomerID:    customerID,
		FacilityID:    w.facilityID,
		SlotID:        w.slotID,
		VehicleNumber: w.vehicleNumber,
		VehicleType:   w.vehicleType,
		EntryTime:     w.entryTime,
		ExitTime:      w.exitTime,
		PaymentMethod: w.paymentMethod,
		UPIHandle:     w.upiHandle,
	}, nil
}
