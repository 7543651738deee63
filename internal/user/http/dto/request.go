package dto

import (
	"time"

	validation "github.com/jellydator/validation"

	appValidation "github.com/allisson/users/internal/validation"
)

// dobMin is the lower bound for the dob attribute.
var dobMin = time.Date(1900, time.January, 1, 0, 0, 0, 0, time.UTC)

// dobRange validates that dob falls between 1900-01-01 and now.
var dobRange = appValidation.DateBetween{Min: dobMin, Max: time.Now}

// NamePayload is the optional name sub-object of a user payload.
type NamePayload struct {
	Title string `json:"title,omitempty"`
	First string `json:"first,omitempty"`
	Last  string `json:"last,omitempty"`
}

// Validate validates the name sub-object.
func (p NamePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Title,
			validation.Length(0, 10).Error("title must be at most 10 characters"),
		),
		validation.Field(&p.First,
			validation.Length(0, 40).Error("first must be at most 40 characters"),
		),
		validation.Field(&p.Last,
			validation.Length(0, 40).Error("last must be at most 40 characters"),
		),
	)
}

// PicturePayload is the optional picture sub-object of a user payload.
type PicturePayload struct {
	Small  string `json:"small,omitempty"`
	Medium string `json:"medium,omitempty"`
	Large  string `json:"large,omitempty"`
}

// Validate validates the picture sub-object.
func (p PicturePayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Small, appValidation.URI),
		validation.Field(&p.Medium, appValidation.URI),
		validation.Field(&p.Large, appValidation.URI),
	)
}

// LocationPayload is the optional location sub-object of a user payload.
// Street, city and state are required whenever the object is supplied.
type LocationPayload struct {
	Street string `json:"street"`
	City   string `json:"city"`
	State  string `json:"state"`
	Zip    *int64 `json:"zip,omitempty"`
}

// Validate validates the location sub-object.
func (p LocationPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(&p.Street,
			validation.Required.Error("street is required"),
			validation.Length(0, 256).Error("street must be at most 256 characters"),
		),
		validation.Field(&p.City,
			validation.Required.Error("city is required"),
			validation.Length(0, 256).Error("city must be at most 256 characters"),
		),
		validation.Field(&p.State,
			validation.Required.Error("state is required"),
			validation.Length(0, 256).Error("state must be at most 256 characters"),
		),
	)
}

// CreateUserRequest represents the API request for user creation.
type CreateUserRequest struct {
	Email    string           `json:"email"`
	Username string           `json:"username"`
	Password string           `json:"password"`
	Phone    string           `json:"phone,omitempty"`
	Cell     string           `json:"cell,omitempty"`
	DOB      *Date            `json:"dob,omitempty"`
	PPS      string           `json:"pps,omitempty"`
	Gender   string           `json:"gender,omitempty"`
	Name     *NamePayload     `json:"name,omitempty"`
	Picture  *PicturePayload  `json:"picture,omitempty"`
	Location *LocationPayload `json:"location,omitempty"`
}

// Validate validates the CreateUserRequest using the jellydator/validation library.
// Email and username are normalized (lowercased, trimmed) by the use case after
// validation passes; validation itself never mutates the input.
func (r *CreateUserRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			appValidation.NotBlank,
			appValidation.Email,
		),
		validation.Field(&r.Username,
			validation.Required.Error("username is required"),
			validation.Length(4, 50).Error("username must be between 4 and 50 characters"),
			appValidation.Token,
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
			validation.Length(6, 128).Error("password must be between 6 and 128 characters"),
		),
		validation.Field(&r.DOB, dobRange),
		validation.Field(&r.PPS, appValidation.PPS),
		validation.Field(&r.Gender,
			validation.In("male", "female", "other").Error("gender must be one of male, female or other"),
		),
		validation.Field(&r.Name),
		validation.Field(&r.Picture),
		validation.Field(&r.Location),
	)
	return appValidation.WrapValidationError(err)
}

// UpdateUserRequest represents the API request for a partial user update.
// Every field is optional; a nil field leaves the stored value unchanged.
// The password attribute is not updatable through this request.
type UpdateUserRequest struct {
	Email    *string          `json:"email,omitempty"`
	Username *string          `json:"username,omitempty"`
	Phone    *string          `json:"phone,omitempty"`
	Cell     *string          `json:"cell,omitempty"`
	DOB      *Date            `json:"dob,omitempty"`
	PPS      *string          `json:"pps,omitempty"`
	Gender   *string          `json:"gender,omitempty"`
	Name     *NamePayload     `json:"name,omitempty"`
	Picture  *PicturePayload  `json:"picture,omitempty"`
	Location *LocationPayload `json:"location,omitempty"`
}

// Validate validates the UpdateUserRequest. The field rules match
// CreateUserRequest but nothing is required. A supplied field must carry a
// valid value: the format rules skip empty strings, so NilOrNotEmpty rejects
// an explicit "" that would otherwise overwrite the stored value.
func (r *UpdateUserRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Email,
			validation.NilOrNotEmpty.Error("email must not be empty"),
			appValidation.NotBlank,
			appValidation.Email,
		),
		validation.Field(&r.Username,
			validation.NilOrNotEmpty.Error("username must not be empty"),
			validation.Length(4, 50).Error("username must be between 4 and 50 characters"),
			appValidation.Token,
		),
		validation.Field(&r.Phone,
			validation.NilOrNotEmpty.Error("phone must not be empty"),
		),
		validation.Field(&r.Cell,
			validation.NilOrNotEmpty.Error("cell must not be empty"),
		),
		validation.Field(&r.DOB, dobRange),
		validation.Field(&r.PPS,
			validation.NilOrNotEmpty.Error("pps must not be empty"),
			appValidation.PPS,
		),
		validation.Field(&r.Gender,
			validation.NilOrNotEmpty.Error("gender must not be empty"),
			validation.In("male", "female", "other").Error("gender must be one of male, female or other"),
		),
		validation.Field(&r.Name),
		validation.Field(&r.Picture),
		validation.Field(&r.Location),
	)
	return appValidation.WrapValidationError(err)
}

// LoginRequest represents the API request for login verification.
// Login accepts either an email address or a username.
type LoginRequest struct {
	Login    string `json:"login"`
	Password string `json:"password"`
}

// Validate validates the LoginRequest.
func (r *LoginRequest) Validate() error {
	err := validation.ValidateStruct(r,
		validation.Field(&r.Login,
			validation.Required.Error("login is required"),
			appValidation.NotBlank,
		),
		validation.Field(&r.Password,
			validation.Required.Error("password is required"),
		),
	)
	return appValidation.WrapValidationError(err)
}
