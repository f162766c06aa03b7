package db

import (
	"context"
	"database/sql"
	"fmt"
)

// Tables managed by this service, in creation order.
var Tables = []string{"donations", "reported_donations", "gateway_events"}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS donations (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		order_id VARCHAR(64) NOT NULL,
		payment_id VARCHAR(64) NULL,
		amount BIGINT NOT NULL,
		currency VARCHAR(8) NOT NULL DEFAULT 'INR',
		status VARCHAR(32) NOT NULL DEFAULT 'created',
		method VARCHAR(32) NULL,
		donor_name VARCHAR(120) NULL,
		email VARCHAR(190) NULL,
		contact VARCHAR(32) NULL,
		signature VARCHAR(128) NULL,
		receipt VARCHAR(64) NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_donations_order_id (order_id),
		UNIQUE KEY uq_donations_payment_id (payment_id),
		KEY idx_donations_status (status)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS reported_donations (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		donor_name VARCHAR(120) NOT NULL,
		amount DECIMAL(12,2) NOT NULL,
		payment_method_indicated VARCHAR(32) NOT NULL DEFAULT 'other',
		status VARCHAR(32) NOT NULL DEFAULT 'reported',
		reported_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		KEY idx_reported_donations_reported_at (reported_at)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
	`CREATE TABLE IF NOT EXISTS gateway_events (
		id CHAR(36) PRIMARY KEY,
		provider VARCHAR(32) NOT NULL DEFAULT 'razorpay',
		event_type VARCHAR(64) NULL,
		order_id VARCHAR(64) NULL,
		payment_id VARCHAR(64) NULL,
		payload JSON NULL,
		signature VARCHAR(128) NULL,
		status VARCHAR(32) NOT NULL DEFAULT 'received',
		error TEXT NULL,
		received_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		processed_at DATETIME NULL,
		KEY idx_gateway_events_order_id (order_id)
	) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4`,
}

// EnsureSchema creates the service tables when missing. Safe to run on every start.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("database not connected")
	}
	for i, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create table %s: %w", Tables[i], err)
		}
	}
	return nil
}
