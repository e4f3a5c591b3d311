package users

// Profile is the public view of an account, with the email masked
type Profile struct {
	CreatedTime string `json:"created_time"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Picture     string `json:"picture"`
}
