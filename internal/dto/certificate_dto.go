package dto

import (
	"time"

	"github.com/pawsition/pawsition-api/internal/models"
)

// CertificateCreateRequest asks for a certificate for an already achieved grade.
type CertificateCreateRequest struct {
	UserID      uint `json:"user_id" validate:"required,gt=0"`
	GradeNumber int  `json:"grade_number" validate:"required,gte=1,lte=12"`
}

// CertificateResponse is the API view of a certificate request.
type CertificateResponse struct {
	ID          uint      `json:"id"`
	GradeID     uint      `json:"grade_id"`
	GradeNumber int       `json:"grade_number"`
	PublicCode  string    `json:"public_code"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

// NewCertificateResponse maps a certificate model to its API representation.
func NewCertificateResponse(certificate models.Certificate) CertificateResponse {
	return CertificateResponse{
		ID:          certificate.ID,
		GradeID:     certificate.GradeID,
		GradeNumber: certificate.Grade.GradeNumber,
		PublicCode:  certificate.PublicCode,
		Status:      certificate.Status,
		CreatedAt:   certificate.CreatedAt,
	}
}

// NewCertificateResponseSlice maps a slice of certificates.
func NewCertificateResponseSlice(certificates []models.Certificate) []CertificateResponse {
	responses := make([]CertificateResponse, 0, len(certificates))
	for _, certificate := range certificates {
		responses = append(responses, NewCertificateResponse(certificate))
	}
	return responses
}
