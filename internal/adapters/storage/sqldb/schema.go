package sqldb

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Migrate crea el esquema si no existe. Los ON DELETE CASCADE replican la
// semántica de borrado del dominio: owner -> pets -> appointments ->
// records/bills, y vet -> appointments + records.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	pk := "BIGSERIAL PRIMARY KEY"
	if db.DriverName() == "sqlite3" {
		pk = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	stmts := []string{
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS owners (
			owner_id          %s,
			first_name        TEXT NOT NULL,
			last_name         TEXT NOT NULL,
			address           TEXT NOT NULL DEFAULT '',
			phone_number      TEXT NOT NULL DEFAULT '',
			email             TEXT NOT NULL DEFAULT '',
			registration_date TIMESTAMP NOT NULL
		)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS veterinarians (
			vet_id         %s,
			first_name     TEXT NOT NULL,
			last_name      TEXT NOT NULL,
			specialization TEXT NOT NULL DEFAULT '',
			license_number TEXT NOT NULL,
			phone_number   TEXT NOT NULL DEFAULT '',
			email          TEXT NOT NULL DEFAULT ''
		)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS pets (
			pet_id        %s,
			owner_id      BIGINT NOT NULL REFERENCES owners(owner_id) ON DELETE CASCADE,
			name          TEXT NOT NULL,
			species       TEXT NOT NULL,
			breed         TEXT NOT NULL DEFAULT '',
			date_of_birth TIMESTAMP NOT NULL,
			gender        TEXT NOT NULL,
			weight        DOUBLE PRECISION NOT NULL
		)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS appointments (
			appointment_id   %s,
			pet_id           BIGINT NOT NULL REFERENCES pets(pet_id) ON DELETE CASCADE,
			owner_id         BIGINT NOT NULL REFERENCES owners(owner_id) ON DELETE CASCADE,
			vet_id           BIGINT NOT NULL REFERENCES veterinarians(vet_id) ON DELETE CASCADE,
			appointment_date TIMESTAMP NOT NULL,
			appointment_time TEXT NOT NULL,
			reason           TEXT NOT NULL DEFAULT '',
			status           TEXT NOT NULL
		)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS medical_records (
			record_id             %s,
			appointment_id        BIGINT REFERENCES appointments(appointment_id) ON DELETE CASCADE,
			pet_id                BIGINT NOT NULL REFERENCES pets(pet_id) ON DELETE CASCADE,
			vet_id                BIGINT NOT NULL REFERENCES veterinarians(vet_id) ON DELETE CASCADE,
			visit_date            TIMESTAMP NOT NULL,
			diagnosis             TEXT NOT NULL,
			treatment             TEXT NOT NULL,
			prescribed_medication TEXT NOT NULL DEFAULT '',
			notes                 TEXT NOT NULL DEFAULT ''
		)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS bills (
			bill_id        %s,
			appointment_id BIGINT NOT NULL REFERENCES appointments(appointment_id) ON DELETE CASCADE,
			total_amount   DOUBLE PRECISION NOT NULL,
			payment_status TEXT NOT NULL,
			payment_method TEXT NOT NULL,
			payment_date   TIMESTAMP NOT NULL
		)`, pk),

		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS users (
			user_id       %s,
			username      TEXT NOT NULL UNIQUE,
			password_hash TEXT NOT NULL
		)`, pk),
	}

	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("sqldb: migrate: %w", err)
		}
	}
	return nil
}
