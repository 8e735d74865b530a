package domain

type CtxKey string

const (
	KeyPrincipal  CtxKey = "Principal"
	KeyAppRole    CtxKey = "AppRole"
	KeySystemRole CtxKey = "SystemRole"
)
