package dto

type UserCreateRequest struct {
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	UserType  *FlexID   `json:"user_type"`
	IsActive  *FlexBool `json:"is_active"`
	AccountID *FlexID   `json:"account_id"`
}

type UserUpdateRequest struct {
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	UserType  *FlexID   `json:"user_type"`
	IsActive  *FlexBool `json:"is_active"`
	AccountID *FlexID   `json:"account_id"`
}
