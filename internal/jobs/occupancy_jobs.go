package jobs

import (
	"context"

	"bloqpoint-backend/internal/logger"
)

// AuditOccupancy reconciles the locker occupancy flag against the rents table.
// A locker must be occupied exactly when a non-delivered rent references it.
// Two kinds of drift can appear if an operator edits rows by hand or a crash
// interrupts a compensating release:
//
//   - stuck-occupied: occupied lockers with no active rent. Safe to repair by
//     releasing, and repaired when scheduler.repair_drift is enabled.
//   - unmarked: unoccupied lockers referenced by an active rent. Repairing
//     would race a concurrent claim, so these are only reported.
func (jr *JobRunner) AuditOccupancy() {
	jr.runWithRecovery("AuditOccupancy", func() {
		ctx := context.Background()

		stuck, err := jr.findDrift(ctx, stuckOccupiedQuery, "stuck_occupied")
		if err != nil {
			return
		}
		for _, id := range stuck {
			if !jr.config.Scheduler.RepairDrift {
				logger.Warn("Occupancy drift: locker occupied with no active rent", "locker_id", id)
				continue
			}
			if _, err := jr.store.LockerRepository.Release(ctx, id); err != nil {
				logger.Error("Failed to repair stuck-occupied locker", "locker_id", id, "error", err)
				continue
			}
			logger.Info("Repaired stuck-occupied locker", "locker_id", id)
		}

		unmarked, err := jr.findDrift(ctx, unmarkedQuery, "unmarked")
		if err != nil {
			return
		}
		for _, id := range unmarked {
			logger.Warn("Occupancy drift: active rent on unoccupied locker", "locker_id", id)
		}

		if len(stuck) == 0 && len(unmarked) == 0 {
			logger.Debug("Occupancy audit clean")
		}
	})
}

const stuckOccupiedQuery = `
	SELECT l.id FROM lockers l
	WHERE l.occupied = TRUE
	  AND NOT EXISTS (
		SELECT 1 FROM rents r
		WHERE r.locker_id = l.id AND r.status <> 'DELIVERED'
	  )`

const unmarkedQuery = `
	SELECT l.id FROM lockers l
	WHERE l.occupied = FALSE
	  AND EXISTS (
		SELECT 1 FROM rents r
		WHERE r.locker_id = l.id AND r.status <> 'DELIVERED'
	  )`

func (jr *JobRunner) findDrift(ctx context.Context, query, kind string) ([]string, error) {
	logger.DatabaseCall("occupancy_audit", kind)
	rows, err := jr.db.QueryContext(ctx, query)
	if err != nil {
		logger.DatabaseResult("occupancy_audit", 0, err, "kind", kind)
		return nil, err
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			logger.DatabaseResult("occupancy_audit", int64(len(ids)), err, "kind", kind)
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		logger.DatabaseResult("occupancy_audit", int64(len(ids)), err, "kind", kind)
		return nil, err
	}
	logger.DatabaseResult("occupancy_audit", int64(len(ids)), nil, "kind", kind)
	return ids, nil
}
