package repositories

import "database/sql"

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS admins (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(50) NOT NULL,
		password_hash VARCHAR(200) NOT NULL,
		UNIQUE KEY uq_admins_username (username)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS bookings (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		booking_code VARCHAR(20) NOT NULL,
		customer_name VARCHAR(100) NOT NULL,
		contact_number VARCHAR(20) NULL,
		email VARCHAR(100) NULL,
		route_from VARCHAR(50) NOT NULL,
		route_to VARCHAR(50) NOT NULL,
		travel_date DATE NOT NULL,
		departure_time VARCHAR(10) NOT NULL,
		passengers INT NOT NULL,
		price VARCHAR(20) NOT NULL,
		route_duration VARCHAR(20) NULL,
		route_color VARCHAR(20) NULL,
		status VARCHAR(20) NOT NULL DEFAULT 'pending',
		created_at DATETIME NOT NULL,
		UNIQUE KEY uq_bookings_code (booking_code),
		KEY idx_bookings_status (status),
		KEY idx_bookings_created_at (created_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the admins and bookings tables when missing. Safe to
// run on every startup.
func EnsureSchema(db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
