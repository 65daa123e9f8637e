package queries

const (
	GetClinicStaffByEmail = `
		SELECT id, clinic_id, email, password_hash, full_name, role, created_at, updated_at
		FROM clinic_staff
		WHERE email = $1 AND deleted_at IS NULL
	`

	InsertClinicStaff = `
		INSERT INTO clinic_staff (id, clinic_id, email, password_hash, full_name, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
)
