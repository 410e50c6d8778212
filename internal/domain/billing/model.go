package billing

import "time"

// PaymentStatus define los estados canónicos de pago.
type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "Paid"
	PaymentPending PaymentStatus = "Pending"
	PaymentOverdue PaymentStatus = "Overdue"
)

// PaymentMethod define los medios de pago aceptados.
type PaymentMethod string

const (
	MethodCreditCard   PaymentMethod = "Credit Card"
	MethodCash         PaymentMethod = "Cash"
	MethodBankTransfer PaymentMethod = "Bank Transfer"
)

// Bill es una factura de una cita. Una cita puede tener varias facturas
// (es FK simple, no uno-a-uno).
type Bill struct {
	ID int64

	AppointmentID int64

	TotalAmount   float64
	PaymentStatus PaymentStatus
	PaymentMethod PaymentMethod
	PaidAt        time.Time
}
