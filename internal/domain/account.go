package domain

import "time"

// ExternalAccount represents a virtual-cycling platform account bound to a stand
// Credentials are per-account secrets and must never appear in logs or error text.
type ExternalAccount struct {
	Identifier  string
	Email       string
	Password    string
	BaseURL     string
	DisplayName string
}

// AssignmentRecord is an append-only idempotency ledger entry marking that
// a (reservation, account) pair has been provisioned successfully.
// Created only on provisioning success, never updated.
type AssignmentRecord struct {
	ID                int64
	ReservationID     int64
	AccountIdentifier string
	CreatedAt         time.Time
}
