package model

// User is a registered party. Password is the shared secret used to authorize transfers.
type User struct {
	Name     string
	Id       string
	Password string
}
