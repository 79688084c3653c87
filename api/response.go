package api

import (
	"github.com/Draketheb4dass/reaction-admin/notify"
)

// OperationResponse is the facade's envelope for mutation endpoints: the
// settled status plus the notifications the operation emitted, and the
// redirect target when a successful operation navigates.
type OperationResponse struct {
	Status        string                `json:"status"` // success | error
	Notifications []notify.Notification `json:"notifications"`
	Redirect      string                `json:"redirect,omitempty"`
}

// NewOperationResponse builds the envelope from a settled operation.
func NewOperationResponse(err error, rec *notify.Recorder, redirect string) OperationResponse {
	status := "success"
	if err != nil {
		status = "error"
		redirect = ""
	}
	return OperationResponse{
		Status:        status,
		Notifications: rec.Notifications(),
		Redirect:      redirect,
	}
}
