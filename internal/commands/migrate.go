package commands

import (
	"fmt"
	"log"

	"shopops/backend/internal/pkg/repository/postgresql"

	"github.com/pkg/errors"
)

// ErrHelp provides context that help was given.
var ErrHelp = errors.New("provided help")

type Scheme struct {
	Index       int
	Description string
	Query       string
}

var scheme = []Scheme{

	{
		Index:       1,
		Description: "CREATE TYPE \"employee_role\" AS ENUM",
		Query: `
        CREATE TYPE "employee_role" AS ENUM ('EMPLOYEE', 'ADMIN', 'DASHBOARD');`,
	},
	{
		Index:       2,
		Description: "Create table: employees.",
		Query: `
        CREATE TABLE IF NOT EXISTS employees (
            id serial primary key,
            employee_id text not null,
            full_name text,
            password text not null,
            role employee_role,
            phone varchar(255),
            email varchar(255),
            last_ip varchar(45),
            last_user_agent text,
            created_at timestamp default now(),
            created_by int references employees(id),
            updated_at timestamp,
            updated_by int references employees(id),
            deleted_at timestamp,
            deleted_by int references employees(id)
        );`,
	},
	{
		Index:       3,
		Description: "Seed employee_id: Admin01, password: 1",
		Query: `
        INSERT INTO employees(employee_id, role, password)
        SELECT 'Admin01', 'ADMIN', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2'
        WHERE NOT EXISTS (SELECT employee_id FROM employees WHERE employee_id = 'Admin01');
        `,
	},
	{
		Index:       4,
		Description: "Seed employee_id: Dashboard01, password: 1",
		Query: `
        INSERT INTO employees(employee_id, role, password)
        SELECT 'Dashboard01', 'DASHBOARD', '$2a$10$NKtnMwDPFSQLG6uOi4Zqheru5Ygbj9TWFHjpl478rRSaO5cJ9QuH2'
        WHERE NOT EXISTS (SELECT employee_id FROM employees WHERE employee_id = 'Dashboard01');
        `,
	},
	{
		Index:       5,
		Description: "Create table: checkins.",
		Query: `
        CREATE TABLE IF NOT EXISTS checkins (
            id SERIAL PRIMARY KEY,
            employee_id VARCHAR NOT NULL,
            work_day DATE NOT NULL,
            occurred_at TIMESTAMPTZ NOT NULL,
            come_time TIME NOT NULL,
            late_status VARCHAR(32) NOT NULL,
            penalty_percentage INT NOT NULL DEFAULT 0,
            exemption_applied BOOLEAN NOT NULL DEFAULT false,
            meal_allowance INT NOT NULL DEFAULT 0,
            client_ip VARCHAR(45),
            user_agent TEXT,
            network_info JSONB,
            is_trusted_network BOOLEAN,
            created_at TIMESTAMPTZ DEFAULT NOW()
        );`,
	},
	{
		Index:       6,
		Description: "One check-in per employee per work day.",
		Query: `
        CREATE UNIQUE INDEX IF NOT EXISTS checkins_employee_work_day_uq
        ON checkins (employee_id, work_day);`,
	},
	{
		Index:       7,
		Description: "Reporting index on work_day.",
		Query: `
        CREATE INDEX IF NOT EXISTS checkins_work_day_idx ON checkins (work_day);`,
	},
}

// Migrate creates the scheme in the database.
func Migrate(db *postgresql.Database) {
	for _, s := range scheme {
		if _, err := db.Query(s.Query); err != nil {
			log.Fatalln("migrate error", err)
		}
	}
}

func MigrateUP(db *postgresql.Database) {
	var (
		version int
		dirty   bool
		er      *string
	)
	err := db.QueryRow("SELECT version, dirty, error FROM schema_migrations").Scan(&version, &dirty, &er)
	if err != nil {
		if err.Error() == `ERROR: relation "schema_migrations" does not exist (SQLSTATE=42P01)` {
			if _, err = db.Exec(`
				CREATE TABLE IF NOT EXISTS schema_migrations (version int not null, dirty bool not null, error text);
				DELETE FROM schema_migrations;
				INSERT INTO schema_migrations (version, dirty) values (0, false);
			`); err != nil {
				log.Fatalln("migrate schema_migrations create error", err)
			}
			version = 0
			dirty = false
		} else {
			log.Fatalln("migrate schema_migrations scan: ", err)
		}
	}

	if dirty {
		for _, v := range scheme {
			if v.Index == version {
				if _, err = db.Exec(v.Query); err != nil {
					if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s'`, err.Error())); err != nil {
						log.Fatalln("migrate error", err)
					}
					log.Fatalln(fmt.Sprintf("migrate error version: %d", version), err)
				}
				if _, err = db.Exec(`UPDATE schema_migrations SET dirty = false, error = null`); err != nil {
					log.Fatalln("migrate error", err)
				}
			}
		}
	}

	for _, s := range scheme {
		if s.Index > version {
			if _, err = db.Exec(s.Query); err != nil {
				if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET error = '%s', version = %d, dirty = true`, err.Error(), s.Index)); err != nil {
					log.Fatalln("migrate error", err)
				}
				log.Fatalln(fmt.Sprintf("migrate error version: %d", s.Index), err)
			}
			if _, err = db.Exec(fmt.Sprintf(`UPDATE schema_migrations SET version = %d`, s.Index)); err != nil {
				log.Fatalln("migrate error", err)
			}
		}
	}
}
