package handler

import (
	"encoding/json"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance for request structs.
var validate = validator.New()

// ListRequest covers the list endpoints' query string. The only
// recognized parameter is `email`; anything else is ignored, not an
// error.
type ListRequest struct {
	Email string `query:"email" validate:"omitempty,email"`
}

func (r *ListRequest) Validate() error {
	return validate.Struct(r)
}

// IDRequest addresses a single record by its path id. Format checks
// happen in the service: a malformed id is handled like a missing
// record, not a validation failure.
type IDRequest struct {
	ID string `param:"id" validate:"required"`
}

func (r *IDRequest) Validate() error {
	return validate.Struct(r)
}

// CreateParcelRequest carries a new parcel: a required creator email
// plus arbitrary client-supplied fields that are kept as attributes.
type CreateParcelRequest struct {
	CreatedBy  string         `json:"created_by" validate:"required,email"`
	Attributes map[string]any `json:"-" validate:"-"`
}

// UnmarshalJSON splits the flat request document into the known
// created_by field and the open attribute bag, so clients can send
// any parcel shape without the API enumerating fields.
func (r *CreateParcelRequest) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["created_by"]; ok {
		if err := json.Unmarshal(v, &r.CreatedBy); err != nil {
			return err
		}
	}

	r.Attributes = make(map[string]any, len(raw))
	for k, v := range raw {
		if k == "created_by" {
			continue
		}
		var value any
		if err := json.Unmarshal(v, &value); err != nil {
			return err
		}
		r.Attributes[k] = value
	}

	return nil
}

func (r *CreateParcelRequest) Validate() error {
	return validate.Struct(r)
}

// RegisterUserRequest carries a registration; only the email matters,
// extra fields are ignored.
type RegisterUserRequest struct {
	Email string `json:"email" validate:"required,email"`
}

func (r *RegisterUserRequest) Validate() error {
	return validate.Struct(r)
}

// RecordPaymentRequest carries a completed checkout. Amount is
// integer cents and must be positive; a non-numeric amount already
// fails JSON binding.
type RecordPaymentRequest struct {
	ParcelID string `json:"parcelId" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Amount   int64  `json:"amount" validate:"required,gt=0"`
}

func (r *RecordPaymentRequest) Validate() error {
	return validate.Struct(r)
}

// CreateIntentRequest asks the payment gateway for an intent over the
// given amount in cents.
type CreateIntentRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

func (r *CreateIntentRequest) Validate() error {
	return validate.Struct(r)
}
