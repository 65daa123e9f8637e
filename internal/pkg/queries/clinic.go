package queries

const (
	GetClinicByID = `
		SELECT id, name, name_ne, address, city, phone, email, verified, patient_seq, created_at, updated_at
		FROM clinics
		WHERE id = $1 AND deleted_at IS NULL
	`

	InsertClinic = `
		INSERT INTO clinics (id, name, name_ne, address, city, phone, email, verified, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, FALSE, $8, $9)
	`

	SetClinicVerified = `
		UPDATE clinics
		SET verified = $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL
	`

	IncrementClinicPatientSeq = `
		UPDATE clinics
		SET patient_seq = patient_seq + 1, updated_at = $1
		WHERE id = $2
		RETURNING patient_seq
	`
)
