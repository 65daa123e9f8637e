package queries

const (
	InsertLeave = `
		INSERT INTO professional_leaves (id, clinic_id, professional_id, leave_date, start_time, end_time, reason, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	GetLeavesForDate = `
		SELECT id, clinic_id, professional_id, leave_date, start_time, end_time, reason, created_at, updated_at
		FROM professional_leaves
		WHERE clinic_id = $1 AND professional_id = $2 AND leave_date = $3
	`

	GetLeavesByClinicAndProfessional = `
		SELECT id, clinic_id, professional_id, leave_date, start_time, end_time, reason, created_at, updated_at
		FROM professional_leaves
		WHERE clinic_id = $1 AND professional_id = $2 AND leave_date >= $3
		ORDER BY leave_date ASC
	`

	DeleteLeave = `
		DELETE FROM professional_leaves
		WHERE id = $1 AND clinic_id = $2
	`
)
