package handler

const (
	errInternalServer = "Internal server error"
	errInputData      = "Error input data"
)
