package consts

import "github.com/emperor6007/EtherLend/internal/pkg/models"

var (
	ErrorRemoteUnavailable = &models.CustomError{
		Code:    "ETHERLEND_STORE_REMOTE_UNAVAILABLE",
		Message: "Remote store unavailable for this session",
	}
	ErrorPersistenceFailure = &models.CustomError{
		Code:    "ETHERLEND_STORE_PERSISTENCE_FAILURE",
		Message: "Both remote and local backends failed",
	}
	ErrorInvalidPhrase = &models.CustomError{
		Code:    "ETHERLEND_WALLET_VALIDATION_INVALID_PHRASE",
		Message: "Seed phrase must be a valid 12 or 24 word mnemonic",
	}
	ErrorInvalidAddress = &models.CustomError{
		Code:    "ETHERLEND_WALLET_VALIDATION_INVALID_ADDRESS",
		Message: "Wallet address is not a valid hex address",
	}
	ErrorBalanceUnavailable = &models.CustomError{
		Code:    "ETHERLEND_WALLET_BALANCE_UNAVAILABLE",
		Message: "Balance could not be verified on any RPC endpoint",
	}
	ErrorWalletNotQualified = &models.CustomError{
		Code:    "ETHERLEND_WALLET_VALIDATION_ZERO_BALANCE",
		Message: "Wallet holds no ETH balance",
	}
	ErrorLoanNotFound = &models.CustomError{
		Code:    "ETHERLEND_LOAN_NOT_FOUND",
		Message: "No loan record with the given id",
	}
	ErrorInvalidStatusTransition = &models.CustomError{
		Code:    "ETHERLEND_LOAN_VALIDATION_INVALID_STATUS_TRANSITION",
		Message: "Only pending loans can be approved or rejected",
	}
	ErrorInvalidAmount = &models.CustomError{
		Code:    "ETHERLEND_LOAN_VALIDATION_AMOUNT_OUT_OF_RANGE",
		Message: "Loan amount must be between 0.1 and 100 ETH",
	}
	ErrorInvalidDuration = &models.CustomError{
		Code:    "ETHERLEND_LOAN_VALIDATION_DURATION_OUT_OF_RANGE",
		Message: "Loan duration must be between 30 and 365 days",
	}
	ErrorInvalidPurpose = &models.CustomError{
		Code:    "ETHERLEND_LOAN_VALIDATION_PURPOSE_REQUIRED",
		Message: "Loan purpose is required",
	}
	ErrorInvalidEmail = &models.CustomError{
		Code:    "ETHERLEND_LOAN_VALIDATION_EMAIL_INVALID",
		Message: "Email address format is invalid",
	}
	ErrorInvalidRate = &models.CustomError{
		Code:    "ETHERLEND_ADMIN_VALIDATION_RATE_OUT_OF_RANGE",
		Message: "Base rate must be between 5.0 and 10.0 percent",
	}
	ErrorAdminUnauthorized = &models.CustomError{
		Code:    "ETHERLEND_ADMIN_UNAUTHORIZED",
		Message: "Incorrect admin credential",
	}
	ErrorInvalidTheme = &models.CustomError{
		Code:    "ETHERLEND_PREFERENCES_INVALID_THEME",
		Message: "Theme must be light or dark",
	}
)

// SensitiveKeys lists header names masked by the request logging middleware.
var SensitiveKeys = []string{"X-Admin-Password", "Authorization", "Cookie"}
