package admin

type WithdrawActionRequest struct {
	RequestID int64  `json:"request_id"`
	Reason    string `json:"reason,omitempty"` // только для reject
}

type WithdrawActionResponse struct {
	RequestID int64  `json:"request_id"`
	Status    string `json:"status"`
}
