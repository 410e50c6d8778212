package sqldb

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"paw-n-care/internal/domain/billing"
)

type billsRepo struct {
	db *sqlx.DB
}

func (r billsRepo) Create(ctx context.Context, b billing.Bill) (billing.Bill, error) {
	q := r.db.Rebind(`
		INSERT INTO bills (appointment_id, total_amount, payment_status, payment_method, payment_date)
		VALUES (?, ?, ?, ?, ?)
		RETURNING bill_id
	`)
	if err := r.db.QueryRowContext(ctx, q,
		b.AppointmentID, b.TotalAmount, string(b.PaymentStatus), string(b.PaymentMethod), b.PaidAt,
	).Scan(&b.ID); err != nil {
		return billing.Bill{}, err
	}
	return b, nil
}

func (r billsRepo) Update(ctx context.Context, b billing.Bill) error {
	q := r.db.Rebind(`
		UPDATE bills
		SET total_amount = ?, payment_status = ?, payment_method = ?, payment_date = ?
		WHERE bill_id = ?
	`)
	res, err := r.db.ExecContext(ctx, q,
		b.TotalAmount, string(b.PaymentStatus), string(b.PaymentMethod), b.PaidAt, b.ID,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return billing.ErrNotFound
	}
	return nil
}

func (r billsRepo) GetByID(ctx context.Context, id int64) (billing.Bill, error) {
	q := r.db.Rebind(`
		SELECT bill_id, appointment_id, total_amount, payment_status, payment_method, payment_date
		FROM bills
		WHERE bill_id = ?
	`)
	b, err := scanBill(r.db.QueryRowContext(ctx, q, id))
	if errors.Is(err, sql.ErrNoRows) {
		return billing.Bill{}, billing.ErrNotFound
	}
	return b, err
}

func (r billsRepo) List(ctx context.Context) ([]billing.Bill, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT bill_id, appointment_id, total_amount, payment_status, payment_method, payment_date
		FROM bills
		ORDER BY bill_id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]billing.Bill, 0)
	for rows.Next() {
		b, err := scanBill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func scanBill(row rowScanner) (billing.Bill, error) {
	var b billing.Bill
	var status, method string
	if err := row.Scan(
		&b.ID, &b.AppointmentID, &b.TotalAmount, &status, &method, &b.PaidAt,
	); err != nil {
		return billing.Bill{}, err
	}
	b.PaymentStatus = billing.PaymentStatus(status)
	b.PaymentMethod = billing.PaymentMethod(method)
	return b, nil
}
