// internal/models/common.go
package models

type ContentType string

const (
	ContentTypeMusic ContentType = "music"
	ContentTypeVideo ContentType = "video"
	ContentTypeImage ContentType = "image"
	ContentTypeOther ContentType = "other"
)

type Quality string

const (
	QualityLow          Quality = "low"
	QualityMedium       Quality = "medium"
	QualityHigh         Quality = "high"
	QualityProfessional Quality = "professional"
)

type UsageRights string

const (
	UsageRightsCommercial    UsageRights = "commercial"
	UsageRightsNonCommercial UsageRights = "non-commercial"
	UsageRightsExclusive     UsageRights = "exclusive"
)

type RequestStatus string

const (
	RequestStatusPending     RequestStatus = "pending"
	RequestStatusNegotiating RequestStatus = "negotiating"
	RequestStatusAccepted    RequestStatus = "accepted"
	RequestStatusRejected    RequestStatus = "rejected"
)

type AgreementStatus string

const (
	AgreementStatusActive    AgreementStatus = "active"
	AgreementStatusExpired   AgreementStatus = "expired"
	AgreementStatusCancelled AgreementStatus = "cancelled"
)
