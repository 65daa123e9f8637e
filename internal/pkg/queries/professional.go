package queries

const (
	GetProfessionalByID = `
		SELECT id, full_name, full_name_ne, type, specialty, council_number, city, claimed_by, created_at, updated_at
		FROM professionals
		WHERE id = $1 AND deleted_at IS NULL
	`

	// SearchProfessionals matches the free-text query against both the Latin
	// and Devanagari names plus the specialty; type and city filters are
	// optional and disabled by passing empty strings.
	SearchProfessionals = `
		SELECT id, full_name, full_name_ne, type, specialty, council_number, city, claimed_by, created_at, updated_at
		FROM professionals
		WHERE deleted_at IS NULL
		  AND ($1 = '' OR full_name ILIKE '%' || $1 || '%' OR full_name_ne ILIKE '%' || $1 || '%' OR specialty ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR type = $2)
		  AND ($3 = '' OR city ILIKE $3)
		ORDER BY full_name ASC
		LIMIT $4 OFFSET $5
	`

	CountProfessionals = `
		SELECT COUNT(*)
		FROM professionals
		WHERE deleted_at IS NULL
		  AND ($1 = '' OR full_name ILIKE '%' || $1 || '%' OR full_name_ne ILIKE '%' || $1 || '%' OR specialty ILIKE '%' || $1 || '%')
		  AND ($2 = '' OR type = $2)
		  AND ($3 = '' OR city ILIKE $3)
	`

	IsProfessionalAffiliated = `
		SELECT EXISTS (
			SELECT 1
			FROM clinic_professionals
			WHERE clinic_id = $1 AND professional_id = $2
		)
	`

	GetAffiliationsByProfessional = `
		SELECT cp.clinic_id, cp.professional_id
		FROM clinic_professionals cp
		JOIN clinics c ON c.id = cp.clinic_id
		WHERE cp.professional_id = $1 AND c.deleted_at IS NULL
	`

	SetProfessionalClaimedBy = `
		UPDATE professionals
		SET claimed_by = $1, updated_at = $2
		WHERE id = $3 AND deleted_at IS NULL
	`
)
