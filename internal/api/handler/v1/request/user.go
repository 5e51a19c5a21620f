package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type UpsertUserRequest struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Image   string `json:"image"`
	Address string `json:"address"`
	Role    string `json:"role"`
}

func (req *UpsertUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Role, validation.In("participant", "creator", "admin")),
	)
}

// UpdateUserRequest carries a partial update; only non-nil fields are
// applied.
type UpdateUserRequest struct {
	Name    *string `json:"name"`
	Image   *string `json:"image"`
	Address *string `json:"address"`
	Role    *string `json:"role"`
}

func (req *UpdateUserRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Role, validation.In("participant", "creator", "admin")),
	)
}

// Fields maps the set values onto column updates.
func (req *UpdateUserRequest) Fields() map[string]interface{} {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Image != nil {
		fields["image"] = *req.Image
	}
	if req.Address != nil {
		fields["address"] = *req.Address
	}
	if req.Role != nil {
		fields["role"] = *req.Role
	}

	return fields
}
