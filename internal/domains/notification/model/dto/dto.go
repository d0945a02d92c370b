package dto

type NotifyApprovedResponse struct {
	Success    bool   `json:"success"`
	SignupLink string `json:"signup_link"`
}
