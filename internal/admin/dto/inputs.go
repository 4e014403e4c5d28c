package dto

// AdminLoginRequest carries the operator credential pair
type AdminLoginRequest struct {
	Email    string `json:"email" format:"email" minLength:"1" doc:"Operator email"`
	Password string `json:"password" minLength:"1" doc:"Operator password"`
}

// AdminLoginInput represents the input for operator login
type AdminLoginInput struct {
	Body AdminLoginRequest `json:"body"`
}

// AllUsersInput lists every account; requires an admin token
type AllUsersInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
}

// UserLookupInput identifies an account for inspection
type UserLookupInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
	ID            string `path:"id" doc:"Player document id"`
}

// DeleteUserInput identifies an account for removal
type DeleteUserInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token"`
	ID            string `path:"id" doc:"Player document id"`
}
