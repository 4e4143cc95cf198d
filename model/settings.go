package model

// Enablement pointers are deliberate: the stored blob distinguishes an
// explicit false from an absent field, and cod/bank_transfer/momo apply
// opposite defaults to a missing value.

type CODSettings struct {
	Enabled *bool `json:"enabled,omitempty"`
}

type BankTransferSettings struct {
	Enabled       *bool  `json:"enabled,omitempty"`
	BankName      string `json:"bankName,omitempty"`
	AccountName   string `json:"accountName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	Instruction   string `json:"instruction,omitempty"`
}

type MomoSettings struct {
	Enabled     *bool  `json:"enabled,omitempty"`
	Phone       string `json:"phone,omitempty"`
	QRImageURL  string `json:"qrImageUrl,omitempty"`
	Instruction string `json:"instruction,omitempty"`
}

type CustomPaymentMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Enabled     *bool  `json:"enabled,omitempty"`
	Instruction string `json:"instruction,omitempty"`
	QRImageURL  string `json:"qrImageUrl,omitempty"`
}

type PaymentMethodSettings struct {
	COD          *CODSettings          `json:"cod,omitempty"`
	BankTransfer *BankTransferSettings `json:"bankTransfer,omitempty"`
	Momo         *MomoSettings         `json:"momo,omitempty"`
	Custom       []CustomPaymentMethod `json:"custom,omitempty"`
}

// CODEnabled applies the default-on rule: cash on delivery stays available
// unless the admin explicitly disabled it.
func (p *PaymentMethodSettings) CODEnabled() bool {
	if p == nil || p.COD == nil || p.COD.Enabled == nil {
		return true
	}
	return *p.COD.Enabled
}

// BankTransferEnabled applies the default-off rule: only an explicit true
// enables bank transfer.
func (p *PaymentMethodSettings) BankTransferEnabled() bool {
	return p != nil && p.BankTransfer != nil && p.BankTransfer.Enabled != nil && *p.BankTransfer.Enabled
}

// MomoEnabled applies the default-off rule, same as bank transfer.
func (p *PaymentMethodSettings) MomoEnabled() bool {
	return p != nil && p.Momo != nil && p.Momo.Enabled != nil && *p.Momo.Enabled
}

// CustomEnabled reports whether a custom method with the given id exists and
// is explicitly enabled.
func (p *PaymentMethodSettings) CustomEnabled(id string) bool {
	if p == nil {
		return false
	}
	for _, c := range p.Custom {
		if c.ID == id {
			return c.Enabled != nil && *c.Enabled
		}
	}
	return false
}

// StoreSettings is the typed view of the "store" settings scope. The raw
// blob is persisted as-is; this struct only names the fields the backend
// itself derives behavior from.
type StoreSettings struct {
	StoreName        *LocalizedText         `json:"storeName,omitempty"`
	ContactEmail     string                 `json:"contactEmail,omitempty"`
	ContactPhone     string                 `json:"contactPhone,omitempty"`
	Address          string                 `json:"address,omitempty"`
	DefaultLanguage  string                 `json:"defaultLanguage,omitempty"`
	EnableVietnamese *bool                  `json:"enableVietnamese,omitempty"`
	CurrencySymbol   string                 `json:"currencySymbol,omitempty"`
	CurrencyCode     string                 `json:"currencyCode,omitempty"`
	PaymentMethods   *PaymentMethodSettings `json:"paymentMethods,omitempty"`
}

// Public payment method views carry resolved enablement booleans plus the
// display details a checkout page renders for each method.

type PublicCOD struct {
	Enabled bool `json:"enabled"`
}

type PublicBankTransfer struct {
	Enabled       bool   `json:"enabled"`
	BankName      string `json:"bankName,omitempty"`
	AccountName   string `json:"accountName,omitempty"`
	AccountNumber string `json:"accountNumber,omitempty"`
	Instruction   string `json:"instruction,omitempty"`
}

type PublicMomo struct {
	Enabled     bool   `json:"enabled"`
	Phone       string `json:"phone,omitempty"`
	QRImageURL  string `json:"qrImageUrl,omitempty"`
	Instruction string `json:"instruction,omitempty"`
}

type PublicPaymentMethods struct {
	COD          PublicCOD             `json:"cod"`
	BankTransfer PublicBankTransfer    `json:"bankTransfer"`
	Momo         PublicMomo            `json:"momo"`
	Custom       []CustomPaymentMethod `json:"custom"`
}

type PublicSettings struct {
	StoreName        *LocalizedText       `json:"storeName,omitempty"`
	DefaultLanguage  string               `json:"defaultLanguage,omitempty"`
	EnableVietnamese bool                 `json:"enableVietnamese"`
	CurrencySymbol   string               `json:"currencySymbol,omitempty"`
	CurrencyCode     string               `json:"currencyCode,omitempty"`
	PaymentMethods   PublicPaymentMethods `json:"paymentMethods"`
}

type PublicSettingsResponse struct {
	Settings PublicSettings `json:"settings"`
}
