package queries

const (
	// CountActiveAppointmentsForSlot counts bookings that still occupy
	// capacity. COMPLETED, CANCELLED and NO_SHOW rows free their seat.
	CountActiveAppointmentsForSlot = `
		SELECT COUNT(*)
		FROM appointments
		WHERE clinic_id = $1
		  AND professional_id = $2
		  AND appointment_date = $3
		  AND slot_start = $4
		  AND status IN ('SCHEDULED', 'CHECKED_IN', 'IN_PROGRESS')
	`

	// CountActiveAppointmentsForDay feeds slot listing with every occupied
	// slot of a day in one query instead of one count per generated slot.
	CountActiveAppointmentsForDay = `
		SELECT slot_start, COUNT(*)
		FROM appointments
		WHERE clinic_id = $1
		  AND professional_id = $2
		  AND appointment_date = $3
		  AND status IN ('SCHEDULED', 'CHECKED_IN', 'IN_PROGRESS')
		GROUP BY slot_start
	`

	// NextTokenNumber allocates the per-clinic per-date queue token. The
	// upsert makes the first booking of a day create the counter row; the
	// RETURNING clause hands back the freshly incremented value atomically.
	NextTokenNumber = `
		INSERT INTO appointment_counters (clinic_id, for_date, last_token)
		VALUES ($1, $2, 1)
		ON CONFLICT (clinic_id, for_date) DO UPDATE
		SET last_token = appointment_counters.last_token + 1
		RETURNING last_token
	`

	InsertAppointment = `
		INSERT INTO appointments
			(id, clinic_id, professional_id, patient_id, appointment_date, slot_start, slot_end, token_number, status, appointment_type, source, chief_complaint, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	GetAppointmentByID = `
		SELECT id, clinic_id, professional_id, patient_id, appointment_date, slot_start, slot_end, token_number, status, appointment_type, source, chief_complaint, created_at, updated_at
		FROM appointments
		WHERE id = $1
	`

	GetAppointmentsByClinicAndDate = `
		SELECT a.id, a.clinic_id, a.professional_id, a.patient_id, a.appointment_date, a.slot_start, a.slot_end, a.token_number, a.status, a.appointment_type, a.source, a.chief_complaint, a.created_at, a.updated_at
		FROM appointments a
		WHERE a.clinic_id = $1 AND a.appointment_date = $2
		ORDER BY a.slot_start ASC, a.token_number ASC
	`

	UpdateAppointmentStatus = `
		UPDATE appointments
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	CountPreviousAppointmentsForPatient = `
		SELECT COUNT(*)
		FROM appointments
		WHERE clinic_id = $1 AND professional_id = $2 AND patient_id = $3
	`
)
