package constant

const (
	PaymentMethodCOD          = "cod"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodMomo         = "momo"
)

// SettingsScopeStore is the settings bucket holding store-wide
// configuration, including payment method enablement.
const SettingsScopeStore = "store"
