package consts

// Remote collection names. The config collection holds a single document
// keyed by ConfigRateDocID.
const (
	ConfigCollection      = "config"
	LoansCollection       = "loans"
	SeenWalletsCollection = "seen_wallets"

	ConfigRateDocID = "interestRate"
)

// Local backend key layout. Keys are stable and must round-trip across
// sessions; SeenWalletKeyPrefix is completed with the wallet address.
const (
	StorageKeyRate      = "etherlend_rate"
	StorageKeyLoans     = "etherlend_loans"
	StorageKeyTheme     = "etherlend_theme"
	SeenWalletKeyPrefix = "el_seen_"
)
