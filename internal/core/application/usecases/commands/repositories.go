// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"tracker/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// UnitRepoFactory provides access to the unit repository within a transaction.
	UnitRepoFactory interface {
		UnitRepository() ports.UnitRepository
	}

	// TransferRepoFactory provides access to the transfer repository within a transaction.
	TransferRepoFactory interface {
		TransferRepository() ports.TransferRepository
	}

	// LedgerRepoFactory provides access to the ledger repository within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// TimerRepoFactory provides access to the timer repository within a transaction.
	TimerRepoFactory interface {
		TimerRepository() ports.TimerRepository
	}

	// HistoryRepoFactory provides access to the history repository within a transaction.
	HistoryRepoFactory interface {
		HistoryRepository() ports.HistoryRepository
	}

	// UnitUoW manages transactions for unit lifecycle operations. Every
	// lifecycle change writes the unit and a history event; creation also
	// seeds the ledger.
	UnitUoW interface {
		TxManager
		UnitRepoFactory
		LedgerRepoFactory
		HistoryRepoFactory
	}

	// UnitUoWFactory creates new unit lifecycle unit of work instances.
	UnitUoWFactory interface {
		Create() UnitUoW
	}

	// TransferUoW manages transactions for the transfer protocol. Acceptance
	// touches the transfer, the ledger, the unit's currentArea, and history
	// in one transaction.
	TransferUoW interface {
		TxManager
		UnitRepoFactory
		TransferRepoFactory
		LedgerRepoFactory
		HistoryRepoFactory
	}

	// TransferUoWFactory creates new transfer unit of work instances.
	TransferUoWFactory interface {
		Create() TransferUoW
	}

	// TimerUoW manages transactions for area-time operations.
	TimerUoW interface {
		TxManager
		UnitRepoFactory
		TimerRepoFactory
		HistoryRepoFactory
	}

	// TimerUoWFactory creates new timer unit of work instances.
	TimerUoWFactory interface {
		Create() TimerUoW
	}
)
