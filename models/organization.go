package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization is keyed by its short code rather than an ObjectID.
type Organization struct {
	Code     string `json:"code" bson:"_id" validate:"required,min=3,max=10"`
	Name     string `json:"name" bson:"name" validate:"required,min=5,max=150"`
	Motto    string `json:"motto,omitempty" bson:"motto,omitempty"`
	Logo     string `json:"logo,omitempty" bson:"logo,omitempty" validate:"omitempty,url"`
	IsActive bool   `json:"is_active" bson:"is_active"`

	// Populated on single-entity reads and on list reads when requested.
	Departments []Department `json:"departments,omitempty" bson:"-"`
}

// UpdateOrganizationInput deliberately has no code field: the organization
// code is immutable once set.
type UpdateOrganizationInput struct {
	Name     *string `json:"name" validate:"omitempty,min=5,max=150"`
	Motto    *string `json:"motto"`
	Logo     *string `json:"logo" validate:"omitempty,url"`
	IsActive *bool   `json:"is_active"`
}

type Department struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Code             string             `json:"code" bson:"code"`
	Name             string             `json:"name" bson:"name"`
	Description      string             `json:"description,omitempty" bson:"description,omitempty"`
	Head             string             `json:"head" bson:"head"`
	DirectorEmail    string             `json:"director_email,omitempty" bson:"director_email,omitempty"`
	ContactPhone     string             `json:"contact_phone,omitempty" bson:"contact_phone,omitempty"`
	OrganizationCode string             `json:"organization_code" bson:"organization_code"`

	Organization *Organization `json:"organization,omitempty" bson:"-"`
}

type CreateDepartmentInput struct {
	Code             string `json:"code" validate:"required,min=2,max=20"`
	Name             string `json:"name" validate:"required,min=5,max=100"`
	Description      string `json:"description"`
	Head             string `json:"head" validate:"required,min=3,max=50"`
	DirectorEmail    string `json:"director_email" validate:"omitempty,email"`
	ContactPhone     string `json:"contact_phone" validate:"omitempty,e164"`
	OrganizationCode string `json:"organization_code" validate:"required,min=3,max=10"`
}

type UpdateDepartmentInput struct {
	Code             *string `json:"code" validate:"omitempty,min=2,max=20"`
	Name             *string `json:"name" validate:"omitempty,min=5,max=100"`
	Description      *string `json:"description"`
	Head             *string `json:"head" validate:"omitempty,min=3,max=50"`
	DirectorEmail    *string `json:"director_email" validate:"omitempty,email"`
	ContactPhone     *string `json:"contact_phone" validate:"omitempty,e164"`
	OrganizationCode *string `json:"organization_code" validate:"omitempty,min=3,max=10"`
}

// PriorityArea groups deliverables and projects under an organization.
type PriorityArea struct {
	ID               primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Area             string             `json:"area" bson:"area"`
	OrganizationCode string             `json:"organization_code" bson:"organization_code"`
}

type CreatePriorityAreaInput struct {
	Area string `json:"area" validate:"required"`
}
