package payload

import (
	"plusone/internal/core"

	"github.com/jellydator/validation"
)

type RegisterRequest struct {
	ProviderToken string `json:"provider_token"`
	ReferralCode  string `json:"referral_code,omitempty"`
}

func (r RegisterRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.ProviderToken, validation.Required),
		validation.Field(&r.ReferralCode, validation.Length(0, 16)),
	)
}

func (r RegisterRequest) ToMessage() core.RegisterMessage {
	return core.RegisterMessage{
		ProviderToken: r.ProviderToken,
		ReferralCode:  r.ReferralCode,
	}
}
