package dto

type AccountCreateRequest struct {
	AccountTypeID FlexID    `json:"account_type_id"`
	NameAr        string    `json:"name_ar"`
	NameEn        string    `json:"name_en"`
	MobileNumber  string    `json:"mobile_number"`
	GovernmentID  FlexID    `json:"government_id"`
	LogoURL       *string   `json:"logo_url"`
	JoinFormLink  *string   `json:"join_form_link"`
	IsActive      *FlexBool `json:"is_active"`
	ShowDetails   *FlexBool `json:"show_details"`

	// When both are set, a standard console user linked to the new account is
	// provisioned in the same transaction.
	Username string `json:"username"`
	Password string `json:"password"`
}

type AccountUpdateRequest struct {
	AccountTypeID FlexID    `json:"account_type_id"`
	NameAr        string    `json:"name_ar"`
	NameEn        string    `json:"name_en"`
	MobileNumber  string    `json:"mobile_number"`
	GovernmentID  FlexID    `json:"government_id"`
	LogoURL       *string   `json:"logo_url"`
	JoinFormLink  *string   `json:"join_form_link"`
	IsActive      *FlexBool `json:"is_active"`
	ShowDetails   *FlexBool `json:"show_details"`
}
