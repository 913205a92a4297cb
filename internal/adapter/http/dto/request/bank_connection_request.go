package request

type AuthorizeBankRequest struct {
	Provider string `json:"provider" binding:"required"`
}
