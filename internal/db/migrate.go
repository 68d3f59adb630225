package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// migrations are applied in order on startup. This keeps the service
// self-contained without an external migration step.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS category (
		categoryid   serial PRIMARY KEY,
		categoryname text NOT NULL UNIQUE
	)`,
	`INSERT INTO category (categoryname)
	 VALUES ('Facility'), ('Academic'), ('Technical'), ('Student Disciplinary'), ('Administrative'), ('Other')
	 ON CONFLICT (categoryname) DO NOTHING`,
	`CREATE TABLE IF NOT EXISTS complaint (
		complaintid     bigserial PRIMARY KEY,
		categoryid      int NOT NULL REFERENCES category (categoryid),
		complainantid   text,
		complaintstatus text NOT NULL DEFAULT 'Pending',
		submitteddate   timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS facilitycomplaint (
		complaintid         bigint PRIMARY KEY REFERENCES complaint (complaintid),
		typeoffacility      text,
		typeoffacilityissue text,
		facilityfloor       text
	)`,
	`CREATE TABLE IF NOT EXISTS academiccomplaint (
		complaintid          bigint PRIMARY KEY REFERENCES complaint (complaintid),
		specificationofissue text,
		modulename           text,
		currentlevel         text,
		semester             text
	)`,
	`CREATE TABLE IF NOT EXISTS technicalcomplaint (
		complaintid    bigint PRIMARY KEY REFERENCES complaint (complaintid),
		typeofissue    text,
		deviceaffected text
	)`,
	`CREATE TABLE IF NOT EXISTS studentbehaviorcomplaint (
		complaintid        bigint PRIMARY KEY REFERENCES complaint (complaintid),
		typeofbehavior     text,
		locationofincident text
	)`,
	`CREATE TABLE IF NOT EXISTS administrativecomplaint (
		complaintid         bigint PRIMARY KEY REFERENCES complaint (complaintid),
		complaintdepartment text
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		notificationid bigserial PRIMARY KEY,
		userid         text NOT NULL,
		complaint_id   bigint REFERENCES complaint (complaintid),
		type           text,
		message        text,
		is_read        boolean NOT NULL DEFAULT false,
		created_at     timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_complaint_category_status_date
	 ON complaint (categoryid, complaintstatus, submitteddate)`,
}

// RunMigrations ensures required tables exist.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range migrations {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply migrations: %w", err)
		}
	}
	return nil
}
