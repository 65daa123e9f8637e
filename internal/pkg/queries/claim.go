package queries

const (
	InsertClaimRequest = `
		INSERT INTO claim_requests (id, professional_id, phone, council_number, document_key, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	GetClaimRequestByID = `
		SELECT id, professional_id, phone, council_number, document_key, status, decided_at, created_at, updated_at
		FROM claim_requests
		WHERE id = $1
	`

	GetPendingClaimByProfessional = `
		SELECT id, professional_id, phone, council_number, document_key, status, decided_at, created_at, updated_at
		FROM claim_requests
		WHERE professional_id = $1 AND status = 'PENDING'
	`

	UpdateClaimRequestStatus = `
		UPDATE claim_requests
		SET status = $1, decided_at = $2, updated_at = $3
		WHERE id = $4
	`
)
