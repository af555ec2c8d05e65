package consts

const (
	AdminSessionKey = "admin:session:"
)
