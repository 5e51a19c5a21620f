package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

type CreateSubmissionRequest struct {
	ContestID        uint   `json:"contest_id"`
	ParticipantEmail string `json:"participant_email"`
	ParticipantName  string `json:"participant_name"`
	Task             string `json:"task"`
}

func (req *CreateSubmissionRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.ContestID, validation.Required, validation.Min(uint(1))),
		validation.Field(&req.ParticipantEmail, validation.Required, is.Email),
		validation.Field(&req.Task, validation.Required),
	)
}
