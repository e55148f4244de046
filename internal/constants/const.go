package constants

const (
	PaymentTypeCash     = "cash"
	PaymentTypeCashless = "cashless"
)

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

const (
	DefaultJWTSecret            = "supersecretkey"
	DefaultAccessExpiryMinutes  = 120
	DefaultRefreshExpiryMinutes = 1440
)

const (
	DefaultPage     = 1
	DefaultPageSize = 50
)

func IsValidPaymentType(t string) bool {
	return t == PaymentTypeCash || t == PaymentTypeCashless
}
