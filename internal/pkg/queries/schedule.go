package queries

const (
	InsertSchedule = `
		INSERT INTO professional_schedules
			(id, clinic_id, professional_id, day_of_week, start_time, end_time, max_patients_per_slot, effective_from, effective_to, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, $10, $11)
	`

	GetSchedulesByClinicAndProfessional = `
		SELECT id, clinic_id, professional_id, day_of_week, start_time, end_time, max_patients_per_slot, effective_from, effective_to, is_active, created_at, updated_at
		FROM professional_schedules
		WHERE clinic_id = $1 AND professional_id = $2
		ORDER BY day_of_week ASC, start_time ASC
	`

	// GetActiveSchedulesForDay resolves the schedules governing a concrete
	// date: active rows for that weekday whose effective range covers the
	// date. An open-ended effective_to means the schedule never expires.
	GetActiveSchedulesForDay = `
		SELECT id, clinic_id, professional_id, day_of_week, start_time, end_time, max_patients_per_slot, effective_from, effective_to, is_active, created_at, updated_at
		FROM professional_schedules
		WHERE clinic_id = $1
		  AND professional_id = $2
		  AND day_of_week = $3
		  AND is_active = TRUE
		  AND effective_from <= $4
		  AND (effective_to IS NULL OR effective_to >= $4)
		ORDER BY start_time ASC
	`

	DeactivateSchedule = `
		UPDATE professional_schedules
		SET is_active = FALSE, updated_at = $1
		WHERE id = $2 AND clinic_id = $3
	`
)
