package identity

// SocialIdentity carries the optional social-profile metadata the provider
// attaches to a login. Absent fields are nil, never empty strings.
type SocialIdentity struct {
	Handle      *string
	DisplayName *string
	AvatarURL   *string
}

// Identity is the normalized result of a successful provider login: a stable
// external user id and the custodial wallet the provider manages for it.
type Identity struct {
	ExternalID    string
	WalletAddress string
	Social        SocialIdentity
}

type sessionResponse struct {
	UserID string `json:"user_id"`
	Wallet struct {
		Address string `json:"address"`
	} `json:"wallet"`
	Twitter struct {
		Username          string `json:"username"`
		Name              string `json:"name"`
		ProfilePictureURL string `json:"profile_picture_url"`
	} `json:"twitter"`
}
