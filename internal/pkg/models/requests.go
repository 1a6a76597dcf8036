package models

// ConnectWalletRequest carries the recovery phrase for address derivation.
// The phrase is consumed in memory only and is never persisted or logged.
type ConnectWalletRequest struct {
	SeedPhrase string `json:"seedPhrase" binding:"required"`
}

type ConnectWalletResponse struct {
	Address   string  `json:"address"`
	Balance   float64 `json:"balance"`
	Qualified bool    `json:"qualified"`
	FirstSeen bool    `json:"firstSeen"`
}

// SubmitLoanRequest is the loan-form payload. Field ranges mirror the
// persisted record constraints and are rejected before any quote is taken.
type SubmitLoanRequest struct {
	Wallet   string  `json:"wallet" validate:"required"`
	Amount   float64 `json:"amount" validate:"required,gte=0.1,lte=100"`
	Duration int     `json:"duration" validate:"required,gte=30,lte=365"`
	Purpose  string  `json:"purpose" validate:"required"`
	Email    string  `json:"email" validate:"omitempty,email"`
}

type QuoteResponse struct {
	Rate     float64 `json:"rate"`
	Interest float64 `json:"interest"`
	Total    float64 `json:"total"`
	DueDate  string  `json:"dueDate"`
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type UpdateRateRequest struct {
	Rate float64 `json:"rate"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ThemeRequest struct {
	Theme string `json:"theme" binding:"required"`
}
