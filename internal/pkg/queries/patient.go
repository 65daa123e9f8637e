package queries

const (
	GetPatientByClinicAndPhone = `
		SELECT id, clinic_id, patient_number, full_name, phone, email, created_at, updated_at
		FROM patients
		WHERE clinic_id = $1 AND phone = $2
	`

	GetPatientByID = `
		SELECT id, clinic_id, patient_number, full_name, phone, email, created_at, updated_at
		FROM patients
		WHERE id = $1
	`

	// UpsertPatient keys on (clinic_id, phone): a returning caller with the
	// same phone reuses their patient record, refreshed with the latest name
	// and email. The patient_number passed in only applies on first insert.
	UpsertPatient = `
		INSERT INTO patients (id, clinic_id, patient_number, full_name, phone, email, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (clinic_id, phone) DO UPDATE
		SET full_name = EXCLUDED.full_name,
		    email = COALESCE(EXCLUDED.email, patients.email),
		    updated_at = EXCLUDED.updated_at
		RETURNING id, patient_number
	`
)
